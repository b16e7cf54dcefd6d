// Package store owns every read and write against the learningmachine
// database. Handlers never touch gorm directly; they go through a Store
// handle constructed once at startup.
package store

import (
	"fmt"
	"time"

	"github.com/pcote/learningmachine/internal/config"
	"github.com/pcote/learningmachine/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type Store struct {
	db *gorm.DB
}

// New connects to PostgreSQL using the supplied config and returns a Store.
// Pooled connections are recycled after Database.ConnMaxLifetime seconds.
func New(cfg config.DatabaseConfig) (*Store, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)

	store, err := Open(postgres.Open(dsn))

	if err != nil {
		return nil, err
	}

	sqlDB, err := store.db.DB()

	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}

	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	return store, nil
}

// Open wraps an already-built gorm dialector. Tests use it to back a Store
// with an in-memory database.
func Open(dialector gorm.Dialector) (*Store, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// sqlite allows a single writer, and every connection to an in-memory
	// database sees a different database. Pin the pool to one connection.
	if db.Name() == "sqlite" {
		sqlDB, err := db.DB()

		if err != nil {
			return nil, fmt.Errorf("failed to access connection pool: %w", err)
		}

		sqlDB.SetMaxOpenConns(1)
	}

	return &Store{db: db}, nil
}

func (s *Store) Migrate() error {
	tables := []interface{}{
		&models.User{},
		&models.Exercise{},
		&models.Attempt{},
		&models.Resource{},
		&models.ResourceExercise{},
	}

	migrator := s.db.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := s.db.AutoMigrate(table); err != nil {
				return err
			}
		}
	}

	return nil
}
