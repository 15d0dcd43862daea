package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"summitbooking/config"
	"summitbooking/di"
	"summitbooking/helper"
	"summitbooking/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	if cfg.DB.SQLite.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}
	}

	if cfg.DB.SQLite.Seed {
		if err := di.InitializeSeeder().Run(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed database")
		}
	}

	services := di.InitializeServices()
	defer services.Close()

	log.Info().Str("env", cfg.App.Env).Msg("Booking services ready")
}
