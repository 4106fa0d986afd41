// Package postgres implements the persistence ports on top of PostgreSQL
// through GORM. Unique-key violations and missing rows are translated into
// domain sentinel errors at this boundary.
package postgres

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/devpath/tutorial-platform/internal/core/domain"
)

// Connect opens a GORM connection, configures the pool, and migrates the
// schema. TranslateError is required: repositories rely on
// gorm.ErrDuplicatedKey to detect email uniqueness conflicts.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("access sql pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := db.AutoMigrate(&domain.User{}, &domain.Profile{}, &domain.ProgressRecord{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return db, nil
}
