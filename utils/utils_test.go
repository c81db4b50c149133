package utils

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/cppla/levelup/config"
)

func TestMain(m *testing.M) {
	config.Set(config.AppConfig{
		JWTSecret:                  "test-secret",
		RegisterMaxPerIPPerDay:     2,
		RegisterAttemptCooldownSec: 60,
	})
	os.Exit(m.Run())
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPasswordCost("hunter2", bcrypt.MinCost)
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "hunter2"))
	assert.False(t, CheckPassword(hash, "hunter3"))
	assert.False(t, CheckPassword("", "hunter2"))

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("alice", true, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Identity)
	assert.True(t, claims.Privileged)
	assert.NotEmpty(t, claims.ID)

	_, err = ParseToken(token + "x")
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("alice", false, -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestTokenBlacklistInMemory(t *testing.T) {
	assert.Nil(t, GetRedis())

	BlacklistToken("tok-1", time.Now().Add(time.Hour))
	assert.True(t, IsTokenBlacklisted("tok-1"))
	assert.False(t, IsTokenBlacklisted("tok-2"))

	// already expired tokens are not recorded
	BlacklistToken("tok-3", time.Now().Add(-time.Second))
	assert.False(t, IsTokenBlacklisted("tok-3"))
}

func TestMemoryCache(t *testing.T) {
	CacheSetJSON("cache:leaderboard:10", map[string]int{"n": 10}, time.Minute)
	CacheSetBytes("cache:other", []byte("x"), time.Minute)

	b, ok := CacheGetBytes("cache:leaderboard:10")
	require.True(t, ok)
	assert.JSONEq(t, `{"n":10}`, string(b))

	InvalidateByPrefix("cache:leaderboard:")
	_, ok = CacheGetBytes("cache:leaderboard:10")
	assert.False(t, ok)
	_, ok = CacheGetBytes("cache:other")
	assert.True(t, ok)
}

func TestRegistrationLimitsInMemory(t *testing.T) {
	ResetRegistrationLimits()
	defer ResetRegistrationLimits()

	assert.True(t, RegistrationCooldownTry("10.0.0.1"))
	assert.False(t, RegistrationCooldownTry("10.0.0.1"))
	assert.True(t, RegistrationCooldownTry("10.0.0.2"))

	assert.True(t, RegistrationDailyLimitCheck("10.0.0.1"))
	RegistrationDailyIncrement("10.0.0.1")
	RegistrationDailyIncrement("10.0.0.1")
	assert.False(t, RegistrationDailyLimitCheck("10.0.0.1"))
	assert.True(t, RegistrationDailyLimitCheck("10.0.0.2"))
}

func TestCaptchaInMemory(t *testing.T) {
	id, img, err := GenerateCaptcha()
	require.NoError(t, err)
	assert.NotEmpty(t, img)

	answer := CaptchaAnswer(id)
	require.NotEmpty(t, answer)
	assert.False(t, VerifyCaptcha(id, ""))
	assert.True(t, VerifyCaptcha(id, answer))
	// consumed
	assert.False(t, VerifyCaptcha(id, answer))
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "Golden Frame", SanitizeText("  <b>Golden</b> Frame<script>alert(1)</script> "))
	assert.Equal(t, "Tom & Jerry", SanitizeText("Tom &amp; Jerry"))
}
