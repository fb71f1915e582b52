package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration (env + Viper).
type Config struct {
	Env                 string
	Port                string
	LogLevel            string
	DatabaseURL         string        // direct Postgres DSN (Supabase pooler); preferred when set
	SupabaseURL         string        // e.g. https://<ref>.supabase.co, used through PostgREST
	SupabaseKey         string
	DBTimeout           time.Duration // per-request timeout of the REST store client
	RedisURL            string
	FrontendURLEndsWith string
	HealthAdminKey      string
}

// Load loads config from env and optional .env file.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("PORT", "8000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_TIMEOUT", 10)

	return &Config{
		Env:                 v.GetString("APP_ENV"),
		Port:                v.GetString("PORT"),
		LogLevel:            v.GetString("LOG_LEVEL"),
		DatabaseURL:         strings.TrimSpace(v.GetString("DATABASE_URL")),
		SupabaseURL:         strings.TrimSpace(v.GetString("SUPABASE_URL")),
		SupabaseKey:         strings.TrimSpace(v.GetString("SUPABASE_KEY")),
		DBTimeout:           time.Duration(v.GetInt("DB_TIMEOUT")) * time.Second,
		RedisURL:            v.GetString("REDIS_URL"),
		FrontendURLEndsWith: v.GetString("FRONTEND_URL_ENDS_WITH"),
		HealthAdminKey:      v.GetString("HEALTH_ADMIN_KEY"),
	}, nil
}

// HasStore reports whether any record store is configured.
func (c *Config) HasStore() bool {
	return c.DatabaseURL != "" || (c.SupabaseURL != "" && c.SupabaseKey != "")
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
