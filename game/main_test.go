package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeClock is a settable clock for deterministic timer and calendar tests.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestEngine(t *testing.T, opts Options) (*Engine, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)}
	if opts.Now == nil {
		opts.Now = clock.Now
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.HashCost == 0 {
		opts.HashCost = bcrypt.MinCost
	}
	if opts.SuperuserCode == "" {
		opts.SuperuserCode = "shadow_monarch"
	}
	return New(opts), clock
}

func mustRegister(t *testing.T, e *Engine, identity string) {
	t.Helper()
	_, err := e.Register(identity, "secret-"+identity, "")
	require.NoError(t, err)
}
