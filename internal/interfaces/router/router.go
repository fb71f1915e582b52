package router

import (
	"matchmaker-backend/internal/application/matching"
	"matchmaker-backend/internal/config"
	"matchmaker-backend/internal/infrastructure/redisclient"
	"matchmaker-backend/internal/infrastructure/store"
	healthhandler "matchmaker-backend/internal/interfaces/handlers/health"
	searchhandler "matchmaker-backend/internal/interfaces/handlers/search"
	"matchmaker-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// CreateApp opens the configured store and Redis and wires all routes.
// A missing store is not fatal: /search answers 500 until it is configured.
func CreateApp(cfg *config.Config) (*fiber.App, store.ProjectStore, *redis.Client, error) {
	st, err := store.Open(store.Options{
		DatabaseURL: cfg.DatabaseURL,
		SupabaseURL: cfg.SupabaseURL,
		SupabaseKey: cfg.SupabaseKey,
		Timeout:     cfg.DBTimeout,
	})
	if err != nil {
		return nil, nil, nil, err
	}
	if st == nil {
		log.Warn().Msg("Supabase credentials not found in environment variables")
	}

	rdb, err := redisclient.Open(cfg.RedisURL)
	if err != nil {
		return nil, nil, nil, err
	}

	return New(cfg, st, rdb), st, rdb, nil
}

// New builds the Fiber app around already-opened dependencies. st and rdb may be nil.
func New(cfg *config.Config, st store.ProjectStore, rdb *redis.Client) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	app.Use(middleware.CORS(middleware.CORSConfig{AllowedSuffix: cfg.FrontendURLEndsWith}))
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())
	app.Use(middleware.Metrics())
	app.Use(middleware.HealthMarker(rdb))

	svc := &matching.Service{}
	hh := &healthhandler.Handlers{Rdb: rdb, HealthAdminKey: cfg.HealthAdminKey}
	if st != nil {
		svc.Store = st
		hh.Store = st
	}

	sh := &searchhandler.Handlers{Service: svc}
	app.Get("/", searchhandler.Root)
	app.Post("/search", sh.Search)
	app.Get("/districts", sh.Districts)

	app.Get("/health/json", hh.JSON)
	app.Get("/health/errors", hh.Errors)
	app.Get("/health/reset", hh.Reset)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return app
}
