package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cppla/levelup/config"
	"github.com/cppla/levelup/game"
	"github.com/cppla/levelup/utils"
)

const (
	leaderboardCachePrefix = "cache:leaderboard:"
	maxLeaderboardSize     = 100
)

// LeaderboardController serves the public ranking.
type LeaderboardController struct {
	engine *game.Engine
}

// NewLeaderboardController creates a LeaderboardController.
func NewLeaderboardController(engine *game.Engine) *LeaderboardController {
	return &LeaderboardController{engine: engine}
}

// TopN returns the n highest-level players, n defaulting to 10.
func (l *LeaderboardController) TopN(ctx *gin.Context) {
	n := game.DefaultLeaderboardSize
	if v := strings.TrimSpace(ctx.Query("n")); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			utils.Error(ctx, http.StatusBadRequest, 40060, "n must be an integer")
			return
		}
		if parsed > 0 {
			n = parsed
		}
	}
	if n > maxLeaderboardSize {
		n = maxLeaderboardSize
	}

	key := leaderboardCachePrefix + strconv.Itoa(n)
	if b, ok := utils.CacheGetBytes(key); ok {
		ctx.Data(http.StatusOK, "application/json; charset=utf-8", b)
		return
	}

	payload := gin.H{"n": n, "standings": l.engine.TopN(n)}
	// cache wrapper for consistency
	wrapper := utils.JSONResponse{Code: 0, Message: "success", Data: payload}
	ttl := time.Duration(config.Get().LeaderboardCacheSeconds) * time.Second
	if ttl > 0 {
		utils.CacheSetJSON(key, wrapper, ttl)
	}
	utils.Success(ctx, payload)
}
