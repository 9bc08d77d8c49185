package main

import (
	"salon/config"
	"salon/di"
	"salon/helper"
	"salon/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Salon Scheduling API
// @version 1.0
// @description Availability, booking and waitlist for multi-studio salons.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
