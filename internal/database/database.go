// Package database owns the connection lifecycle and schema migration for
// the relational store. Postgres is used when a DSN is configured; sqlite
// (with foreign keys enabled) covers local runs and tests.
package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/edtailor/backend/internal/config"
	"github.com/edtailor/backend/internal/entities"
	"github.com/edtailor/backend/internal/logger"
)

type Database struct {
	DB  *gorm.DB
	log *logger.Logger
}

// NewDatabase opens the store described by cfg.Database, registers the
// annotated join tables and migrates the schema.
func NewDatabase(cfg *config.Config, log *logger.Logger) (*Database, error) {
	dialector, target := openDialector(cfg)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Info("database initialized", "target", target)

	return &Database{DB: db, log: log}, nil
}

func openDialector(cfg *config.Config) (gorm.Dialector, string) {
	if cfg.Database.URL != "" {
		return postgres.Open(cfg.Database.URL), "postgres"
	}
	// _fk=1 turns on sqlite foreign key enforcement so cascade deletes hold.
	dsn := fmt.Sprintf("file:%s?_fk=1", cfg.Database.Path)
	return sqlite.Open(dsn), cfg.Database.Path
}

// Migrate registers the join tables that carry note columns and migrates
// every entity. Exposed so tests can migrate throwaway databases.
func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&entities.Lesson{}, "Fabrics", &entities.LessonFabric{}); err != nil {
		return fmt.Errorf("failed to register lesson_fabrics join table: %w", err)
	}
	if err := db.SetupJoinTable(&entities.Lesson{}, "Garments", &entities.LessonGarment{}); err != nil {
		return fmt.Errorf("failed to register lesson_garments join table: %w", err)
	}
	if err := db.SetupJoinTable(&entities.Fabric{}, "Garments", &entities.FabricGarment{}); err != nil {
		return fmt.Errorf("failed to register fabric_garments join table: %w", err)
	}

	err := db.AutoMigrate(
		&entities.Category{},
		&entities.Topic{},
		&entities.Lesson{},
		&entities.Fabric{},
		&entities.Garment{},
		&entities.Term{},
		&entities.Tag{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
