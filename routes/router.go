package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/cppla/levelup/config"
	"github.com/cppla/levelup/controllers"
	"github.com/cppla/levelup/game"
	"github.com/cppla/levelup/middleware"
	"github.com/cppla/levelup/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(engine *game.Engine) *gin.Engine {
	// Load config and set Gin mode from configuration
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Access log goes to its own rolling file; an empty GinPath keeps it on the app logger
	gl := utils.Logger
	if cfg.GinPath != "" {
		if fl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress); err == nil {
			gl = fl
		} else {
			utils.Sugar.Warnf("gin access log disabled: %v", err)
		}
	}
	r.Use(utils.Ginzap(gl, time.RFC3339, true))
	r.Use(utils.RecoveryWithZap(gl, false))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
		// credentials cannot be combined with a wildcard origin
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	authController := controllers.NewAuthController(engine)
	progressController := controllers.NewProgressController(engine)
	taskController := controllers.NewTaskController(engine)
	shopController := controllers.NewShopController(engine)
	leaderboardController := controllers.NewLeaderboardController(engine)
	statsController := controllers.NewStatsController(engine)
	configController := controllers.NewConfigController()

	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware())
	authGroup.GET("/captcha", authController.Captcha)
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/logout", middleware.AuthRequired(), authController.Logout)
	authGroup.GET("/me", middleware.AuthRequired(), authController.Me)

	// Public endpoints
	api.GET("/leaderboard", leaderboardController.TopN)
	api.GET("/stats", statsController.GetStats)
	api.GET("/config/rules", configController.GetRules)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(), middleware.RateLimitMiddleware())

	protected.GET("/timer", progressController.TimerStatus)
	protected.POST("/timer/start", progressController.StartTimer)
	protected.POST("/timer/stop", progressController.StopTimer)
	protected.POST("/challenge/complete", progressController.CompleteChallenge)

	protected.GET("/tasks/daily", taskController.GetDaily)
	protected.PATCH("/tasks/daily", taskController.UpdateDaily)
	protected.POST("/tasks/daily/submit", taskController.SubmitDaily)

	protected.GET("/shop/items", shopController.ListItems)
	protected.POST("/shop/items", shopController.CreateItem)
	protected.POST("/shop/items/:id/purchase", shopController.Purchase)
	protected.GET("/inventory", shopController.Inventory)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Error(ctx, http.StatusNotFound, 40400, "api route not found")
	})

	return r
}
