package store

import (
	"time"

	"matchmaker-backend/internal/infrastructure/database"
)

// Options selects and configures a record store.
type Options struct {
	DatabaseURL string
	SupabaseURL string
	SupabaseKey string
	Timeout     time.Duration
}

// Open picks the store for opts: a direct Postgres DSN wins, then the
// Supabase REST API. It returns nil, nil when neither is configured.
func Open(opts Options) (ProjectStore, error) {
	switch {
	case opts.DatabaseURL != "":
		db, err := database.Open(opts.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return &GormStore{DB: db}, nil
	case opts.SupabaseURL != "" && opts.SupabaseKey != "":
		return NewRESTStore(opts.SupabaseURL, opts.SupabaseKey, opts.Timeout), nil
	default:
		return nil, nil
	}
}
