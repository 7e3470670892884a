package sqlite

import (
	"context"
	"embed"

	"petrecord/internal/platform/logger"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations es idempotente: goose lleva la versión aplicada y las
// sentencias usan IF NOT EXISTS (bases creadas antes de goose también sirven).
func RunMigrations(ctx context.Context, db *gorm.DB, log logger.Logger) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	goose.SetLogger(logger.Printf(log.With(map[string]any{"component": "migrate"})))

	goose.SetBaseFS(migrationsFS)
	if err := goose.UpContext(ctx, sqlDB, "migrations"); err != nil {
		return err
	}

	return nil
}
