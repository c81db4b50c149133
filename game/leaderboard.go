package game

import (
	"sort"

	"github.com/cppla/levelup/models"
)

// Standing is one row of the leaderboard.
type Standing struct {
	Rank     int          `json:"rank"`
	Identity string       `json:"identity"`
	Level    int          `json:"level"`
	Title    models.Title `json:"title"`
	TotalXP  int          `json:"total_xp"`
}

// TopN returns the n highest-level players. Ties keep registration order.
func (e *Engine) TopN(n int) []Standing {
	if n <= 0 {
		n = DefaultLeaderboardSize
	}

	e.mu.Lock()
	rows := make([]Standing, 0, len(e.order))
	for _, id := range e.order {
		p := e.players[id]
		rows = append(rows, Standing{Identity: p.Identity, Level: p.Level, Title: p.Title, TotalXP: p.TotalXP})
	}
	e.mu.Unlock()

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Level > rows[j].Level
	})
	if len(rows) > n {
		rows = rows[:n]
	}
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}
