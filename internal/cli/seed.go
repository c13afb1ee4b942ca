package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/edtailor/backend/internal/config"
	"github.com/edtailor/backend/internal/database"
	"github.com/edtailor/backend/internal/logger"
	"github.com/edtailor/backend/internal/seeder"
)

// SeedCommand loads the bundled JSON fixtures into the database.
type SeedCommand struct {
	DataDir      string
	DatabasePath string
}

func NewSeedCommand() *SeedCommand {
	return &SeedCommand{}
}

func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)

	fs.StringVar(&cmd.DataDir, "data", config.DefaultSeedDataDir, "Directory containing the JSON fixture files")
	fs.StringVar(&cmd.DatabasePath, "db", "", "Path to the sqlite database file (overrides DATABASE_PATH; ignored when a postgres DSN is configured)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Seed the database with the bundled educational content.\n\n")
		fmt.Fprintf(os.Stderr, "Seeding is idempotent: records whose slug or (name, language)\n")
		fmt.Fprintf(os.Stderr, "key already exists are skipped, so re-running is safe.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *SeedCommand) Run() error {
	cfg := config.NewConfig()
	if cmd.DataDir != "" {
		cfg.Seed.DataDir = cmd.DataDir
	}
	if cmd.DatabasePath != "" {
		cfg.Database.Path = cmd.DatabasePath
	}

	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer log.Sync()

	db, err := database.NewDatabase(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	seeder.New(db.DB, log).Run(cfg.Seed.DataDir)
	log.Info("database seeding completed", "data_dir", cfg.Seed.DataDir)

	return nil
}
