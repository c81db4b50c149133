package game

import "github.com/cppla/levelup/models"

const (
	// InitialRequiredXP is the threshold for a freshly registered player.
	InitialRequiredXP = 10
	// MaxRequiredXP caps the per-level threshold.
	MaxRequiredXP = 60
)

// LevelUp is emitted once per level gained so the UI can render a notification.
type LevelUp struct {
	Level int          `json:"level"`
	Title models.Title `json:"title"`
}

// TitleForLevel maps a level onto its rank band, highest band first.
func TitleForLevel(level int) models.Title {
	switch {
	case level >= 10:
		return models.TitleValedictorian
	case level >= 5:
		return models.TitleVessel
	case level >= 1:
		return models.TitlePlayer
	default:
		return models.TitleNone
	}
}

// nextRequiredXP grows the threshold by one until it reaches the cap.
func nextRequiredXP(current int) int {
	if current < MaxRequiredXP {
		return current + 1
	}
	return MaxRequiredXP
}

// Normalize converts banked XP into levels. It consumes the threshold as long as
// xp covers it, growing the threshold after every level. Negative xp skips the loop.
func Normalize(p *models.Player) []LevelUp {
	if p.RequiredXP < 1 {
		p.RequiredXP = InitialRequiredXP
	}

	var ups []LevelUp
	for p.XP >= p.RequiredXP {
		p.XP -= p.RequiredXP
		p.Level++
		p.RequiredXP = nextRequiredXP(p.RequiredXP)
		p.Title = TitleForLevel(p.Level)
		ups = append(ups, LevelUp{Level: p.Level, Title: p.Title})
	}
	p.Title = TitleForLevel(p.Level)
	return ups
}

// CurveStep describes what it takes to leave one level.
type CurveStep struct {
	Level        int          `json:"level"`
	Title        models.Title `json:"title"`
	RequiredXP   int          `json:"required_xp"`
	CumulativeXP int          `json:"cumulative_xp"`
}

// Curve lists the first n levels starting from a fresh player. CumulativeXP is the
// total XP needed to reach the step's level.
func Curve(n int) []CurveStep {
	if n <= 0 {
		return nil
	}
	steps := make([]CurveStep, 0, n)
	req, total := InitialRequiredXP, 0
	for lvl := 0; lvl < n; lvl++ {
		steps = append(steps, CurveStep{
			Level:        lvl,
			Title:        TitleForLevel(lvl),
			RequiredXP:   req,
			CumulativeXP: total,
		})
		total += req
		req = nextRequiredXP(req)
	}
	return steps
}
