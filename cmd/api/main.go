package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"petrecord/internal/adapters/storage"
	"petrecord/internal/platform/config"
	"petrecord/internal/platform/logger"
	"petrecord/internal/router"
	"petrecord/internal/seed"

	"github.com/urfave/cli/v3"
)

// @title           PetRecord API
// @version         1.0
// @description     API REST para registrar mascotas y sus actividades diarias.
// @BasePath        /api
func main() {
	// .env opcional; las variables ya definidas ganan.
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "load .env: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCommand().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCommand() *cli.Command {
	return &cli.Command{
		Name:  "petrecord",
		Usage: "PetRecord REST API and maintenance commands",
		Flags: config.Flags(),
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run HTTP server (default)",
				Action: serve,
			},
			{
				Name:   "migrate",
				Usage:  "Create tables and exit",
				Action: migrate,
			},
			{
				Name:   "seed",
				Usage:  "Insert sample pets and logs if the store is empty",
				Action: seedData,
			},
			{
				Name:   "reset",
				Usage:  "Delete every pet and activity log",
				Action: reset,
			},
		},
		Action: serve,
	}
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg := config.FromCommand(cmd)
	log := cfg.Logger()

	st, err := storage.Open(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Error("close store", map[string]any{"err": err.Error()})
		}
	}()

	// Una base a medio inicializar no impide levantar el server: los
	// endpoints responden 500 y el error queda en el log.
	if err := st.Migrate(ctx, log); err != nil {
		log.Error("migrations failed", map[string]any{"err": err.Error(), "driver": st.Driver})
	} else if cfg.Seed {
		if _, err := runSeed(ctx, st, log); err != nil {
			log.Error("seed failed", map[string]any{"err": err.Error()})
		}
	}

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			Store:       st,
			Logger:      log,
			CORSOrigins: cfg.CORSOrigins,
		}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":   srv.Addr,
			"driver": st.Driver,
		})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func migrate(ctx context.Context, cmd *cli.Command) error {
	cfg := config.FromCommand(cmd)
	log := cfg.Logger()

	st, err := storage.Open(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Migrate(ctx, log); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.Info("migrations applied", map[string]any{"driver": st.Driver})
	return nil
}

func seedData(ctx context.Context, cmd *cli.Command) error {
	cfg := config.FromCommand(cmd)
	log := cfg.Logger()

	st, err := storage.Open(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Migrate(ctx, log); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	inserted, err := runSeed(ctx, st, log)
	if err != nil {
		return err
	}
	if !inserted {
		log.Info("store not empty, nothing inserted", nil)
	}
	return nil
}

func reset(ctx context.Context, cmd *cli.Command) error {
	cfg := config.FromCommand(cmd)
	log := cfg.Logger()

	st, err := storage.Open(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Migrate(ctx, log); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := st.Reset(ctx); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	log.Info("database cleared", map[string]any{"driver": st.Driver})
	return nil
}

func runSeed(ctx context.Context, st *storage.Store, log logger.Logger) (bool, error) {
	data, err := seed.Default()
	if err != nil {
		return false, err
	}
	return seed.New(st.Pets, st.Logs, log).IfEmpty(ctx, data)
}
