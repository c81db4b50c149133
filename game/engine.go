// Package game holds the progression economy: XP accrual, leveling, the daily
// task ledger, challenges, the shop and the leaderboard. State lives in memory
// for the lifetime of the process.
package game

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/cppla/levelup/models"
)

const (
	// TimerBonusMinutes is the session length that earns the flat bonus.
	TimerBonusMinutes = 60
	// TimerBonusXP is the flat bonus for long sessions.
	TimerBonusXP = 10
	// StudySessionMinutes is the session length that completes the daily study task.
	StudySessionMinutes = 40

	// ChallengeXP is granted per completed challenge.
	ChallengeXP = 250

	// DefaultLeaderboardSize is used when TopN is called with n <= 0.
	DefaultLeaderboardSize = 10
)

// LevelUpHook receives every level-up after the mutation that caused it is applied.
type LevelUpHook func(identity string, ev LevelUp)

// Options configures an Engine. Zero values are usable.
type Options struct {
	// SuperuserCode is the registration secret granting catalog rights. Empty disables it.
	SuperuserCode string
	// ClampXPAtZero floors banked XP at zero after penalties.
	ClampXPAtZero bool
	// DailySubmitOnce rejects a second daily submission on the same calendar day.
	DailySubmitOnce bool
	// Location defines calendar days for the daily ledger. Defaults to time.Local.
	Location *time.Location
	// HashCost is the bcrypt cost for credentials. Zero uses bcrypt.DefaultCost.
	HashCost int
	// Now overrides the clock.
	Now func() time.Time
	// Logger defaults to a no-op logger.
	Logger    *zap.Logger
	OnLevelUp LevelUpHook
}

// Engine owns every player, the shared catalog and the active timers.
// A single mutex serializes each operation so debit, credit and normalize apply as one step.
type Engine struct {
	mu   sync.Mutex
	opts Options
	log  *zap.Logger

	players map[string]*models.Player
	order   []string // registration order, used for leaderboard ties
	timers  map[string]time.Time
	daily   map[string]*models.DailyTasks

	catalog []*models.ShopItem
	items   map[string]*models.ShopItem
}

// New creates an empty Engine.
func New(opts Options) *Engine {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Engine{
		opts:    opts,
		log:     opts.Logger.Named("game"),
		players: make(map[string]*models.Player),
		timers:  make(map[string]time.Time),
		daily:   make(map[string]*models.DailyTasks),
		items:   make(map[string]*models.ShopItem),
	}
}

// Award describes the outcome of an XP-changing operation.
type Award struct {
	XPDelta  int            `json:"xp_delta"`
	LevelUps []LevelUp      `json:"level_ups"`
	Player   *models.Player `json:"player"`
}

// Stats is a coarse view of engine state.
type Stats struct {
	Players      int `json:"players"`
	Privileged   int `json:"privileged"`
	Items        int `json:"items"`
	ActiveTimers int `json:"active_timers"`
}

// Stats counts accounts, catalog items and running timers.
func (e *Engine) Stats() Stats {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := Stats{Players: len(e.players), Items: len(e.catalog), ActiveTimers: len(e.timers)}
	for _, p := range e.players {
		if p.Privileged {
			s.Privileged++
		}
	}
	return s
}

func (e *Engine) now() time.Time {
	return e.opts.Now()
}

func (e *Engine) today(t time.Time) string {
	return t.In(e.opts.Location).Format(models.DateLayout)
}

// player must be called with e.mu held.
func (e *Engine) player(identity string) (*models.Player, error) {
	p, ok := e.players[identity]
	if !ok {
		return nil, ErrUnknownIdentity
	}
	return p, nil
}

// applyXP credits or debits banked XP and normalizes. Earnings also count toward TotalXP.
// Must be called with e.mu held.
func (e *Engine) applyXP(p *models.Player, delta int, now time.Time) *Award {
	p.XP += delta
	if delta > 0 {
		p.TotalXP += delta
	}
	if e.opts.ClampXPAtZero && p.XP < 0 {
		p.XP = 0
	}

	ups := Normalize(p)
	p.UpdatedAt = now
	for _, ev := range ups {
		e.log.Info("level up",
			zap.String("identity", p.Identity),
			zap.Int("level", ev.Level),
			zap.String("title", string(ev.Title)),
		)
		if e.opts.OnLevelUp != nil {
			e.opts.OnLevelUp(p.Identity, ev)
		}
	}
	return &Award{XPDelta: delta, LevelUps: ups, Player: p.Clone()}
}
