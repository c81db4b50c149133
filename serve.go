package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cppla/levelup/config"
	"github.com/cppla/levelup/game"
	"github.com/cppla/levelup/routes"
	"github.com/cppla/levelup/utils"
)

func newServeCmd() *cobra.Command {
	var (
		configPath string
		port       string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFrom(configPath)
			if err != nil {
				return err
			}
			if port != "" {
				cfg.AppPort = port
			}
			if cfg.JWTSecret == "" {
				return errors.New("JWT_SECRET must be set in environment variables or the config file")
			}
			config.Set(cfg)

			// Initialize logger early
			if err := utils.InitLogger(cfg); err != nil {
				return err
			}
			defer func() { _ = utils.Logger.Sync() }()

			engine := newEngine(cfg, utils.Logger)
			r := routes.SetupRouter(engine)

			utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
			return utils.GraceServer(cmd.Context(), ":"+cfg.AppPort, r)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "config/config.json", "path to the JSON config file")
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port, overrides AppPort")
	return cmd
}

// newEngine builds the progression engine from configuration.
func newEngine(cfg config.AppConfig, logger *zap.Logger) *game.Engine {
	return game.New(game.Options{
		SuperuserCode:   cfg.SuperuserCode,
		ClampXPAtZero:   cfg.ClampXPAtZero,
		DailySubmitOnce: cfg.DailySubmitOnce,
		Location:        cfg.Location(),
		Logger:          logger,
	})
}
