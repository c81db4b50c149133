package models

import "time"

// Player is one account's progression state. Credentials are stored as bcrypt hashes only.
type Player struct {
	Identity     string           `json:"identity"`
	PasswordHash string           `json:"-"`
	Privileged   bool             `json:"privileged"`
	Level        int              `json:"level"`
	XP           int              `json:"xp"`
	RequiredXP   int              `json:"required_xp"`
	Title        Title            `json:"title"`
	TotalXP      int              `json:"total_xp"`
	Inventory    []InventoryEntry `json:"inventory"`
	LastTaskDate string           `json:"last_task_date,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// Progress returns banked XP as a fraction of the next threshold, clamped to [0, 1].
func (p *Player) Progress() float64 {
	if p.RequiredXP <= 0 || p.XP <= 0 {
		return 0
	}
	f := float64(p.XP) / float64(p.RequiredXP)
	if f > 1 {
		return 1
	}
	return f
}

// Clone returns a deep copy safe to hand out of the engine.
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	c := *p
	c.Inventory = append([]InventoryEntry(nil), p.Inventory...)
	return &c
}
