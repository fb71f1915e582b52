// Command import loads a projects spreadsheet export (CSV) into the record store.
//
//	import -file projects.csv [-sink gorm|rest|copy] [-migrate] [-batch 500]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"matchmaker-backend/internal/application/importer"
	"matchmaker-backend/internal/config"
	"matchmaker-backend/internal/infrastructure/database"
	"matchmaker-backend/internal/infrastructure/store"
	"matchmaker-backend/internal/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

func main() {
	os.Exit(run())
}

// run does the import and returns the process exit code, so deferred
// closes happen before exit.
func run() int {
	file := flag.String("file", "", "path to the CSV export")
	sinkName := flag.String("sink", "", "gorm, rest or copy (default: gorm when DATABASE_URL is set, else rest)")
	migrate := flag.Bool("migrate", false, "create the projects table first (gorm and copy sinks)")
	batch := flag.Int("batch", 500, "rows per insert")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Error().Err(err).Msg("config load")
		return 1
	}
	logger.Setup(cfg.LogLevel, cfg.Env)

	if *file == "" {
		flag.Usage()
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sink, closeSink, err := openSink(ctx, cfg, *sinkName, *migrate)
	if err != nil {
		log.Error().Err(err).Msg("open sink")
		return 1
	}
	defer closeSink()

	f, err := os.Open(*file)
	if err != nil {
		log.Error().Err(err).Msg("open file")
		return 1
	}
	defer f.Close()

	im := &importer.Importer{Sink: sink, BatchSize: *batch}
	res, err := im.Run(ctx, f)
	if err != nil {
		log.Error().Err(err).Int("inserted", res.Inserted).Msg("import failed")
		return 1
	}
	fmt.Printf("SUCCESS: Inserted %d projects\n", res.Inserted)
	return 0
}

func openSink(ctx context.Context, cfg *config.Config, name string, migrate bool) (importer.Sink, func(), error) {
	noop := func() {}
	if name == "" {
		name = "rest"
		if cfg.DatabaseURL != "" {
			name = "gorm"
		}
	}
	switch name {
	case "gorm":
		if cfg.DatabaseURL == "" {
			return nil, noop, fmt.Errorf("sink gorm: DATABASE_URL not set")
		}
		db, err := database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		if migrate {
			if err := database.AutoMigrate(db); err != nil {
				return nil, noop, err
			}
		}
		return &store.GormStore{DB: db}, noop, nil
	case "rest":
		if cfg.SupabaseURL == "" || cfg.SupabaseKey == "" {
			return nil, noop, fmt.Errorf("sink rest: SUPABASE_URL or SUPABASE_KEY not set")
		}
		return store.NewRESTStore(cfg.SupabaseURL, cfg.SupabaseKey, cfg.DBTimeout), noop, nil
	case "copy":
		if cfg.DatabaseURL == "" {
			return nil, noop, fmt.Errorf("sink copy: DATABASE_URL not set")
		}
		if migrate {
			db, err := database.Open(cfg.DatabaseURL)
			if err != nil {
				return nil, noop, err
			}
			if err := database.AutoMigrate(db); err != nil {
				return nil, noop, err
			}
		}
		conn, err := pgx.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		return &importer.CopySink{Conn: conn}, func() { conn.Close(context.Background()) }, nil
	default:
		return nil, noop, fmt.Errorf("unknown sink %q", name)
	}
}
