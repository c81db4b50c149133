package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cppla/levelup/game"
	"github.com/cppla/levelup/utils"
)

// ProgressController serves the XP sources: work sessions and challenges.
type ProgressController struct {
	engine *game.Engine
}

// NewProgressController creates a ProgressController.
func NewProgressController(engine *game.Engine) *ProgressController {
	return &ProgressController{engine: engine}
}

// StartTimer begins a work session. A running session is replaced.
func (p *ProgressController) StartTimer(ctx *gin.Context) {
	identity, ok := identityFrom(ctx)
	if !ok {
		return
	}

	start, err := p.engine.StartTimer(identity)
	if err != nil {
		respondError(ctx, err)
		return
	}
	utils.Success(ctx, gin.H{"started_at": start})
}

// StopTimer ends the session and credits XP. Stopping with nothing running is not a failure.
func (p *ProgressController) StopTimer(ctx *gin.Context) {
	identity, ok := identityFrom(ctx)
	if !ok {
		return
	}

	res, err := p.engine.StopTimer(identity)
	if errors.Is(err, game.ErrNoActiveTimer) {
		utils.Respond(ctx, http.StatusOK, 20010, err.Error(), gin.H{"active": false})
		return
	}
	if err != nil {
		respondError(ctx, err)
		return
	}
	invalidateLeaderboard()
	utils.Success(ctx, res)
}

// TimerStatus reports the running session and its elapsed time.
func (p *ProgressController) TimerStatus(ctx *gin.Context) {
	identity, ok := identityFrom(ctx)
	if !ok {
		return
	}

	start, elapsed, active, err := p.engine.ActiveTimer(identity)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if !active {
		utils.Success(ctx, gin.H{"active": false})
		return
	}
	utils.Success(ctx, gin.H{
		"active":          true,
		"started_at":      start,
		"elapsed_seconds": int64(elapsed.Seconds()),
		"elapsed_minutes": int(elapsed.Minutes()),
	})
}

// CompleteChallenge grants the challenge reward.
func (p *ProgressController) CompleteChallenge(ctx *gin.Context) {
	identity, ok := identityFrom(ctx)
	if !ok {
		return
	}

	award, err := p.engine.CompleteChallenge(identity)
	if err != nil {
		respondError(ctx, err)
		return
	}
	invalidateLeaderboard()
	utils.Success(ctx, award)
}
