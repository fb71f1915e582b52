package main

import (
	"context"
	"time"

	"matchmaker-backend/internal/config"
	"matchmaker-backend/internal/interfaces/router"
	"matchmaker-backend/internal/pkg/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load")
	}
	logger.Setup(cfg.LogLevel, cfg.Env)

	app, st, rdb, err := router.CreateApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("app create")
	}

	// Verify connections before serving; failures are logged, not fatal.
	timeout := cfg.DBTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	if st != nil {
		if err := st.Ping(ctx); err != nil {
			log.Error().Err(err).Msg("Database connection failed")
		} else {
			log.Info().Msg("Database connected")
		}
	}
	if rdb != nil {
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Error().Err(err).Msg("Redis connection failed")
		} else {
			log.Info().Msg("Redis connected")
		}
	}
	cancel()

	log.Info().Str("port", cfg.Port).Msgf("Server running at http://localhost:%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("listen")
	}
}
