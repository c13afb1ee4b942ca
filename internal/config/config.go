package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		Seed
		Log
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		URL  string // postgres DSN; sqlite at Path when empty
		Path string
	}
	Seed struct {
		DataDir string // directory holding the JSON fixture files
	}
	Log struct {
		Mode string // "dev" or "prod"
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

// postgresURL assembles a DSN from the individual POSTGRES_* variables when
// DATABASE_URL is not given directly. Returns "" when no database name is
// configured at all, which selects the sqlite fallback.
func postgresURL(v *viper.Viper) string {
	if url := v.GetString("DATABASE_URL"); url != "" {
		return url
	}
	name := v.GetString("POSTGRES_DB")
	if name == "" {
		return ""
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		v.GetString("POSTGRES_USER"),
		v.GetString("POSTGRES_PASSWORD"),
		v.GetString("POSTGRES_HOST"),
		v.GetInt("POSTGRES_PORT"),
		name,
	)
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8000)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_url", "")
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("seed_data_dir", DefaultSeedDataDir)
	v.SetDefault("log_mode", "dev")

	// Postgres connection pieces, used when DATABASE_URL is not set
	v.SetDefault("postgres_user", "postgres")
	v.SetDefault("postgres_password", "")
	v.SetDefault("postgres_host", "db")
	v.SetDefault("postgres_port", 5432)
	v.SetDefault("postgres_db", "")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			URL:  postgresURL(v),
			Path: v.GetString("DATABASE_PATH"),
		},
		Seed: Seed{
			DataDir: v.GetString("SEED_DATA_DIR"),
		},
		Log: Log{
			Mode: v.GetString("LOG_MODE"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
