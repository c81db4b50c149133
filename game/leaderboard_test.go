package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identities(rows []Standing) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Identity)
	}
	return out
}

func TestTopNOrdersByLevelStable(t *testing.T) {
	e, _ := newTestEngine(t, Options{})
	for _, id := range []string{"ann", "bob", "cat", "dan"} {
		mustRegister(t, e, id)
	}
	_, err := e.CompleteChallenge("cat")
	require.NoError(t, err)

	rows := e.TopN(10)
	assert.Equal(t, []string{"cat", "ann", "bob", "dan"}, identities(rows))
	assert.Equal(t, 1, rows[0].Rank)
	assert.Equal(t, 14, rows[0].Level)
	assert.Equal(t, 4, rows[3].Rank)
}

func TestTopNTruncatesAndDefaults(t *testing.T) {
	e, _ := newTestEngine(t, Options{})
	for i := 0; i < 12; i++ {
		mustRegister(t, e, fmt.Sprintf("p%02d", i))
	}

	assert.Len(t, e.TopN(3), 3)
	assert.Len(t, e.TopN(0), DefaultLeaderboardSize)
	assert.Len(t, e.TopN(-5), DefaultLeaderboardSize)
	assert.Len(t, e.TopN(50), 12)
}

func TestTopNEmpty(t *testing.T) {
	e, _ := newTestEngine(t, Options{})
	assert.Empty(t, e.TopN(10))
}
