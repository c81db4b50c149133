package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/cppla/levelup/game"
	"github.com/cppla/levelup/utils"
)

// StatsController provides aggregate counts over accounts, catalog and timers.
type StatsController struct {
	engine *game.Engine
}

// NewStatsController creates a new StatsController instance.
func NewStatsController(engine *game.Engine) *StatsController {
	return &StatsController{engine: engine}
}

// GetStats returns aggregate statistics for the service.
func (s *StatsController) GetStats(ctx *gin.Context) {
	utils.Success(ctx, s.engine.Stats())
}
