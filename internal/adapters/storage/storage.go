// Package storage arma los repositorios concretos según la configuración:
// Postgres si hay DB_DSN, si no el archivo SQLite.
package storage

import (
	"context"
	"fmt"

	pg "petrecord/internal/adapters/storage/postgres"
	"petrecord/internal/adapters/storage/sqlite"
	"petrecord/internal/domain/activitylogs"
	"petrecord/internal/domain/pets"
	"petrecord/internal/domain/stats"
	"petrecord/internal/platform/config"
	"petrecord/internal/platform/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Store struct {
	Driver string
	Pets   pets.Repository
	Logs   activitylogs.Repository
	Stats  stats.Repository

	migrate func(ctx context.Context, log logger.Logger) error
	reset   func(ctx context.Context) error
	close   func() error
}

func Open(cfg config.Config) (*Store, error) {
	if cfg.DBDSN != "" {
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return &Store{
			Driver: DriverPostgres,
			Pets:   pg.NewPetsRepo(db),
			Logs:   pg.NewLogsRepo(db),
			Stats:  pg.NewStatsRepo(db),
			migrate: func(ctx context.Context, log logger.Logger) error {
				return pg.RunMigrations(ctx, db, log)
			},
			reset: func(ctx context.Context) error { return pg.Reset(ctx, db) },
			close: db.Close,
		}, nil
	}

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	return &Store{
		Driver: DriverSQLite,
		Pets:   sqlite.NewPetsRepo(db),
		Logs:   sqlite.NewLogsRepo(db),
		Stats:  sqlite.NewStatsRepo(db),
		migrate: func(ctx context.Context, log logger.Logger) error {
			return sqlite.RunMigrations(ctx, db, log)
		},
		reset: func(ctx context.Context) error { return sqlite.Reset(ctx, db) },
		close: func() error { return sqlite.Close(db) },
	}, nil
}

// Migrate crea las tablas si faltan.
func (s *Store) Migrate(ctx context.Context, log logger.Logger) error {
	return s.migrate(ctx, log)
}

// Reset borra todos los datos (mascotas y logs).
func (s *Store) Reset(ctx context.Context) error {
	return s.reset(ctx)
}

func (s *Store) Close() error {
	return s.close()
}
