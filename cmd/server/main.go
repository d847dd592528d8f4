// Command server runs the organizations directory.
//
//	server [serve]          start the HTTP server (default)
//	server migrate up|down  apply or revert the schema
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/orgdirectory/organizations/app"
	"github.com/orgdirectory/organizations/app/organizations"
	"github.com/orgdirectory/organizations/config"
	"github.com/orgdirectory/organizations/database"
	"github.com/orgdirectory/organizations/logging"
	"github.com/orgdirectory/organizations/models"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Error loading config: %s", err)
	}
	logger := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "serve":
		err = serve(cfg, logger)
	case "migrate":
		direction := "up"
		if len(os.Args) > 2 {
			direction = os.Args[2]
		}
		err = migrate(cfg, direction)
	default:
		err = fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		logger.Error("exiting", "command", cmd, "error", err)
		os.Exit(1)
	}
}

func migrate(cfg *config.Config, direction string) error {
	if cfg.Store != config.StorePostgres {
		return errors.New("migrate requires STORE=postgres")
	}
	db, err := database.Connect(cfg.DatabaseURL, cfg.MaxOpenConns, cfg.MaxIdleConns)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.RunMigrations(db, direction); err != nil {
		return err
	}
	slog.Info("migrations applied", "direction", direction)
	return nil
}

func openStore(cfg *config.Config) (organizations.OrganizationProvider, *sql.DB, error) {
	if cfg.Store == config.StoreMemory {
		return models.NewMemoryOrganizationsRepository(), nil, nil
	}

	db, err := database.Connect(cfg.DatabaseURL, cfg.MaxOpenConns, cfg.MaxIdleConns)
	if err != nil {
		return nil, nil, err
	}
	if err := database.RunMigrations(db, "up"); err != nil {
		db.Close()
		return nil, nil, err
	}
	gdb, err := database.OpenGorm(db)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return models.NewOrganizationsRepository(gdb), db, nil
}

func serve(cfg *config.Config, logger *slog.Logger) error {
	store, db, err := openStore(cfg)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           app.NewRouter(store, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr, "store", cfg.Store)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
