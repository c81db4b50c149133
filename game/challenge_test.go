package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cppla/levelup/models"
)

func TestCompleteChallenge(t *testing.T) {
	e, _ := newTestEngine(t, Options{})
	mustRegister(t, e, "alice")

	award, err := e.CompleteChallenge("alice")
	require.NoError(t, err)
	assert.Equal(t, ChallengeXP, award.XPDelta)
	// 10..23 sums to 231; 19 left toward 24
	assert.Equal(t, 14, award.Player.Level)
	assert.Equal(t, 19, award.Player.XP)
	assert.Equal(t, 24, award.Player.RequiredXP)
	assert.Equal(t, models.TitleValedictorian, award.Player.Title)
	assert.Len(t, award.LevelUps, 14)

	award, err = e.CompleteChallenge("alice")
	require.NoError(t, err)
	assert.Equal(t, 500, award.Player.TotalXP)
}

func TestLevelUpHook(t *testing.T) {
	var got []LevelUp
	e, _ := newTestEngine(t, Options{OnLevelUp: func(identity string, ev LevelUp) {
		assert.Equal(t, "alice", identity)
		got = append(got, ev)
	}})
	mustRegister(t, e, "alice")

	_, err := e.CompleteChallenge("alice")
	require.NoError(t, err)
	require.Len(t, got, 14)
	assert.Equal(t, LevelUp{Level: 5, Title: models.TitleVessel}, got[4])
	assert.Equal(t, LevelUp{Level: 10, Title: models.TitleValedictorian}, got[9])
}

func TestCompleteChallengeUnknownIdentity(t *testing.T) {
	e, _ := newTestEngine(t, Options{})
	_, err := e.CompleteChallenge("ghost")
	assert.ErrorIs(t, err, ErrUnknownIdentity)
}
