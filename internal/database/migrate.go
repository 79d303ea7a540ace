package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"recruit_backend/internal/database/migrations"
	"recruit_backend/internal/logger"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

// gooseRun is a seam for testing goose.RunContext.
var gooseRun = func(ctx context.Context, command string, db *sql.DB, dir string, args ...string) error {
	return goose.RunContext(ctx, command, db, dir, args...)
}

// Migrate runs a goose command ("up", "down", "status", "version", ...) using
// the embedded migrations for the given driver.
func Migrate(ctx context.Context, db *sql.DB, driver, command string, args ...string) error {
	dir, err := migrationDir(driver)
	if err != nil {
		return err
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect(dir); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := gooseRun(ctx, command, db, dir, args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}

// AutoMigrate applies all pending migrations to the gorm connection.
func AutoMigrate(ctx context.Context, db *gorm.DB, driver string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if err := Migrate(ctx, sqlDB, driver, "up"); err != nil {
		return err
	}
	logger.Info("Migrations applied", "driver", driver)
	return nil
}

func migrationDir(driver string) (string, error) {
	switch strings.ToLower(driver) {
	case "mysql":
		return "mysql", nil
	case "postgres":
		return "postgres", nil
	default:
		return "", fmt.Errorf("no migrations for driver %q", driver)
	}
}
