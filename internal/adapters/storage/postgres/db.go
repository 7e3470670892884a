package postgres

import (
	"context"
	"database/sql"
	"embed"
	"time"

	"petrecord/internal/platform/logger"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// app chica: pocos escritores
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// RunMigrations aplica migrations/*.sql con goose (idempotente).
func RunMigrations(ctx context.Context, db *sql.DB, log logger.Logger) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	goose.SetLogger(logger.Printf(log.With(map[string]any{"component": "migrate"})))

	goose.SetBaseFS(migrationsFS)
	return goose.UpContext(ctx, db, "migrations")
}

// Reset borra todos los logs y mascotas y reinicia las secuencias.
func Reset(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `TRUNCATE activity_logs, pets RESTART IDENTITY`)
	return err
}
