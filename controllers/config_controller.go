package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/cppla/levelup/config"
	"github.com/cppla/levelup/game"
	"github.com/cppla/levelup/models"
	"github.com/cppla/levelup/utils"
)

// rulesCurveLevels is how many rows of the threshold curve the UI receives.
const rulesCurveLevels = 12

// ConfigController serves the progression rules the UI renders.
type ConfigController struct{}

func NewConfigController() *ConfigController { return &ConfigController{} }

// GetRules returns the active XP rules, titles and the start of the threshold curve.
func (c *ConfigController) GetRules(ctx *gin.Context) {
	cfg := config.Get()
	utils.Success(ctx, gin.H{
		"titles": models.Titles(),
		"curve":  game.Curve(rulesCurveLevels),
		"timer": gin.H{
			"bonus_minutes":         game.TimerBonusMinutes,
			"bonus_xp":              game.TimerBonusXP,
			"study_session_minutes": game.StudySessionMinutes,
		},
		"daily": gin.H{
			"rewards": []gin.H{
				{"completed": 3, "xp": game.DailyReward(3)},
				{"completed": 2, "xp": game.DailyReward(2)},
				{"completed": 1, "xp": game.DailyReward(1)},
				{"completed": 0, "xp": game.DailyReward(0)},
			},
			"submit_once": cfg.DailySubmitOnce,
		},
		"challenge_xp":     game.ChallengeXP,
		"clamp_xp_at_zero": cfg.ClampXPAtZero,
		"captcha_enabled":  cfg.RegisterCaptchaEnabled,
	})
}
