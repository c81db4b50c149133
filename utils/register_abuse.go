package utils

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cppla/levelup/config"
)

// In-memory counters used when Redis is disabled.
var (
	regMu        sync.Mutex
	regCooldown  = map[string]time.Time{}
	regDailySucc = map[string]int{}
)

func regKey(parts ...string) string {
	return "reg:" + strings.Join(parts, ":")
}

// RegistrationCooldownTry enforces a short cooldown between attempts per IP.
func RegistrationCooldownTry(ip string) bool {
	cfg := config.Get()
	sec := cfg.RegisterAttemptCooldownSec
	if sec <= 0 {
		return true
	}
	window := time.Duration(sec) * time.Second
	if cli := GetRedis(); cli != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()
		ok, err := cli.SetNX(ctx, regKey("cooldown", ip), "1", window).Result()
		if err != nil {
			return true
		} // fail-open
		return ok
	}

	regMu.Lock()
	defer regMu.Unlock()
	now := time.Now()
	if until, ok := regCooldown[ip]; ok && now.Before(until) {
		return false
	}
	regCooldown[ip] = now.Add(window)
	return true
}

// RegistrationDailyLimitCheck allows up to N successful registrations per day per IP.
func RegistrationDailyLimitCheck(ip string) bool {
	cfg := config.Get()
	limit := cfg.RegisterMaxPerIPPerDay
	if limit <= 0 {
		return true
	}
	key := regKey("succday", ip, time.Now().Format("20060102"))
	if cli := GetRedis(); cli != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()
		n, err := cli.Get(ctx, key).Int()
		if err == redis.Nil {
			n = 0
		} else if err != nil {
			return true
		}
		return n < limit
	}

	regMu.Lock()
	defer regMu.Unlock()
	return regDailySucc[key] < limit
}

// RegistrationDailyIncrement increments the success counter for today.
func RegistrationDailyIncrement(ip string) {
	key := regKey("succday", ip, time.Now().Format("20060102"))
	if cli := GetRedis(); cli != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()
		if err := cli.Incr(ctx, key).Err(); err == nil {
			_ = cli.Expire(ctx, key, 24*time.Hour).Err()
		}
		return
	}

	regMu.Lock()
	regDailySucc[key]++
	regMu.Unlock()
}

// ResetRegistrationLimits clears the in-memory counters. Tests only.
func ResetRegistrationLimits() {
	regMu.Lock()
	regCooldown = map[string]time.Time{}
	regDailySucc = map[string]int{}
	regMu.Unlock()
}
