package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cppla/levelup/config"
	"github.com/cppla/levelup/game"
	"github.com/cppla/levelup/middleware"
	"github.com/cppla/levelup/models"
	"github.com/cppla/levelup/utils"
)

// AuthController handles registration, login and session endpoints.
type AuthController struct {
	engine *game.Engine
}

// NewAuthController creates an AuthController.
func NewAuthController(engine *game.Engine) *AuthController {
	return &AuthController{engine: engine}
}

// playerResponse adds the progress fraction shown on the profile bar.
type playerResponse struct {
	*models.Player
	Progress float64 `json:"progress"`
}

func newPlayerResponse(p *models.Player) playerResponse {
	return playerResponse{Player: p, Progress: p.Progress()}
}

// Register creates a player and returns a bearer token.
func (a *AuthController) Register(ctx *gin.Context) {
	type request struct {
		Identity      string `json:"identity" binding:"required"`
		Credential    string `json:"credential" binding:"required"`
		SecretCode    string `json:"secret_code"`
		CaptchaID     string `json:"captcha_id"`
		CaptchaAnswer string `json:"captcha_answer"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40001, "invalid request payload")
		return
	}

	cfg := config.Get()
	if cfg.RegisterCaptchaEnabled && !utils.VerifyCaptcha(strings.TrimSpace(req.CaptchaID), strings.TrimSpace(req.CaptchaAnswer)) {
		utils.Error(ctx, http.StatusBadRequest, 40003, "invalid captcha")
		return
	}

	// Anti-abuse: cooldown and per-IP daily limit
	ip := ctx.ClientIP()
	if !utils.RegistrationCooldownTry(ip) {
		utils.Error(ctx, http.StatusTooManyRequests, 42910, "too many attempts, try again later")
		return
	}
	if !utils.RegistrationDailyLimitCheck(ip) {
		utils.Error(ctx, http.StatusTooManyRequests, 42921, "daily registration limit reached")
		return
	}

	player, err := a.engine.Register(req.Identity, req.Credential, req.SecretCode)
	if err != nil {
		respondError(ctx, err)
		return
	}
	utils.RegistrationDailyIncrement(ip)
	invalidateLeaderboard()

	token, err := utils.GenerateToken(player.Identity, player.Privileged, cfg.TokenTTL())
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50003, "failed to generate token")
		return
	}

	utils.Success(ctx, gin.H{
		"token":  token,
		"player": newPlayerResponse(player),
	})
}

// Captcha returns a fresh captcha id and base64 image (data URI).
func (a *AuthController) Captcha(ctx *gin.Context) {
	if !config.Get().RegisterCaptchaEnabled {
		utils.Success(ctx, gin.H{"enabled": false})
		return
	}
	id, b64, err := utils.GenerateCaptcha()
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50060, "failed to generate captcha")
		return
	}
	utils.Success(ctx, gin.H{"enabled": true, "captcha_id": id, "image": b64})
}

// Login checks the credential and returns a bearer token.
func (a *AuthController) Login(ctx *gin.Context) {
	type request struct {
		Identity   string `json:"identity" binding:"required"`
		Credential string `json:"credential" binding:"required"`
	}

	var req request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40001, "invalid request payload")
		return
	}

	player, err := a.engine.Authenticate(req.Identity, req.Credential)
	if err != nil {
		respondError(ctx, err)
		return
	}

	token, err := utils.GenerateToken(player.Identity, player.Privileged, config.Get().TokenTTL())
	if err != nil {
		utils.Error(ctx, http.StatusInternalServerError, 50004, "failed to generate token")
		return
	}

	utils.Success(ctx, gin.H{
		"token":  token,
		"player": newPlayerResponse(player),
	})
}

// Logout invalidates the token by blacklisting it until expiration.
func (a *AuthController) Logout(ctx *gin.Context) {
	token := ctx.GetString(middleware.ContextTokenKey)
	claimsVal, ok := ctx.Get(middleware.ContextClaimsKey)
	claims, _ := claimsVal.(*utils.Claims)
	if token == "" || !ok || claims == nil {
		utils.Error(ctx, http.StatusUnauthorized, 40105, "invalid token")
		return
	}

	expiresAt := time.Now().Add(config.Get().TokenTTL())
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	utils.BlacklistToken(token, expiresAt)
	utils.Success(ctx, gin.H{"message": "logged out"})
}

// Me returns the authenticated player's progression snapshot.
func (a *AuthController) Me(ctx *gin.Context) {
	identity, ok := identityFrom(ctx)
	if !ok {
		return
	}

	player, err := a.engine.Player(identity)
	if err != nil {
		respondError(ctx, err)
		return
	}

	utils.Success(ctx, newPlayerResponse(player))
}
