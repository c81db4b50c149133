package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cppla/levelup/models"
)

func fresh() *models.Player {
	return &models.Player{RequiredXP: InitialRequiredXP, Title: models.TitleNone}
}

func TestNormalizeConsumesThresholds(t *testing.T) {
	p := fresh()
	p.XP = 25

	ups := Normalize(p)

	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 4, p.XP)
	assert.Equal(t, 12, p.RequiredXP)
	assert.Equal(t, models.TitlePlayer, p.Title)
	assert.Equal(t, []LevelUp{{Level: 1, Title: models.TitlePlayer}, {Level: 2, Title: models.TitlePlayer}}, ups)
}

func TestNormalizeBelowThreshold(t *testing.T) {
	p := fresh()
	p.XP = 9

	assert.Empty(t, Normalize(p))
	assert.Equal(t, 0, p.Level)
	assert.Equal(t, 9, p.XP)
	assert.Equal(t, 10, p.RequiredXP)
	assert.Equal(t, models.TitleNone, p.Title)
}

func TestNormalizeExactThreshold(t *testing.T) {
	p := fresh()
	p.XP = 10

	Normalize(p)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 0, p.XP)
	assert.Equal(t, 11, p.RequiredXP)
}

func TestNormalizeNegativeXPSkipsLoop(t *testing.T) {
	p := fresh()
	p.Level = 3
	p.XP = -40
	p.RequiredXP = 13

	assert.Empty(t, Normalize(p))
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, -40, p.XP)
	assert.Equal(t, models.TitlePlayer, p.Title)
}

func TestNormalizeThresholdCapsAtSixty(t *testing.T) {
	p := fresh()
	p.Level = 50
	p.RequiredXP = MaxRequiredXP
	p.XP = 125

	ups := Normalize(p)
	assert.Len(t, ups, 2)
	assert.Equal(t, 52, p.Level)
	assert.Equal(t, 5, p.XP)
	assert.Equal(t, MaxRequiredXP, p.RequiredXP)
}

func TestNormalizeRepairsZeroThreshold(t *testing.T) {
	p := &models.Player{XP: 5}
	Normalize(p)
	assert.Equal(t, InitialRequiredXP, p.RequiredXP)
	assert.Equal(t, 0, p.Level)
}

func TestTitleForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  models.Title
	}{
		{-1, models.TitleNone},
		{0, models.TitleNone},
		{1, models.TitlePlayer},
		{4, models.TitlePlayer},
		{5, models.TitleVessel},
		{9, models.TitleVessel},
		{10, models.TitleValedictorian},
		{75, models.TitleValedictorian},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TitleForLevel(tt.level), "level %d", tt.level)
	}
}

func TestCurve(t *testing.T) {
	steps := Curve(3)
	assert.Equal(t, []CurveStep{
		{Level: 0, Title: models.TitleNone, RequiredXP: 10, CumulativeXP: 0},
		{Level: 1, Title: models.TitlePlayer, RequiredXP: 11, CumulativeXP: 10},
		{Level: 2, Title: models.TitlePlayer, RequiredXP: 12, CumulativeXP: 21},
	}, steps)

	long := Curve(60)
	assert.Equal(t, MaxRequiredXP, long[50].RequiredXP)
	assert.Equal(t, MaxRequiredXP, long[59].RequiredXP)
	assert.Nil(t, Curve(0))
}
