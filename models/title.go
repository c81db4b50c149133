package models

import (
	"fmt"
	"strings"
)

// Title is the rank label derived from a player's level.
type Title string

const (
	TitleNone          Title = "None"
	TitlePlayer        Title = "Player"
	TitleVessel        Title = "Vessel of the Monarch"
	TitleValedictorian Title = "Valedictorian"
)

// titleOrder lists titles from lowest to highest rank.
var titleOrder = []Title{TitleNone, TitlePlayer, TitleVessel, TitleValedictorian}

// Titles returns all titles ordered from lowest to highest rank.
func Titles() []Title {
	out := make([]Title, len(titleOrder))
	copy(out, titleOrder)
	return out
}

// Rank returns the ordinal position of the title, or -1 for unknown titles.
func (t Title) Rank() int {
	for i, v := range titleOrder {
		if v == t {
			return i
		}
	}
	return -1
}

// IsValid reports whether t is one of the known titles.
func (t Title) IsValid() bool {
	return t.Rank() >= 0
}

// AtLeast reports whether t ranks at or above min. Unknown titles never qualify.
func (t Title) AtLeast(min Title) bool {
	r := t.Rank()
	return r >= 0 && min.Rank() >= 0 && r >= min.Rank()
}

// ParseTitle matches s against the known titles, ignoring case and surrounding space.
func ParseTitle(s string) (Title, error) {
	s = strings.TrimSpace(s)
	for _, t := range titleOrder {
		if strings.EqualFold(string(t), s) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown title: %q", s)
}
