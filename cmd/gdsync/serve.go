package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"gdsync/internal/api"
	"gdsync/internal/interfaces"
	"gdsync/internal/monitor"
	"gdsync/internal/repository"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the local HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := setupLogging(cfg.GetLogging(), os.Stdout, ""); err != nil {
		return err
	}

	ctx, cancel := createContext()
	defer cancel()

	dbConfig := cfg.GetDatabase()
	repo, err := repository.New(dbConfig.Path)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer repo.Close()

	slog.Info("database initialized", "path", dbConfig.Path)

	if dbConfig.Retention > 0 {
		removed, err := repo.CleanupOldRuns(time.Now().Add(-dbConfig.Retention))
		if err != nil {
			slog.Warn("failed to clean up old runs", "error", err)
		} else if removed > 0 {
			slog.Info("removed old transfer runs", "count", removed, "retention", dbConfig.Retention)
		}
	}

	st := newStack(repo)

	if err := st.service.RecoverInterruptedRuns(); err != nil {
		slog.Warn("failed to recover interrupted runs", "error", err)
	}

	var deviceMonitor interfaces.DeviceMonitor
	if cfg.GetMonitor().Enabled {
		m := monitor.New(cfg, st.bridge)
		if err := m.Start(); err != nil {
			return fmt.Errorf("failed to start device monitor: %w", err)
		}
		defer m.Stop()
		deviceMonitor = m
	}

	if configPath := getConfigPath(); configPath != "" {
		if err := cfg.Watch(ctx, configPath); err != nil {
			slog.Warn("configuration hot reload disabled", "error", err)
		}
	}

	router := mux.NewRouter()
	handlers := api.NewHandlers(st.service, st.gatekeeper, deviceMonitor, cfg)
	handlers.RegisterRoutes(router)

	serverConfig := cfg.GetServer()
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", serverConfig.Host, serverConfig.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	go func() {
		configChanges := cfg.WatchForChanges()
		for {
			select {
			case <-ctx.Done():
				return
			case <-configChanges:
				slog.Info("configuration changed, updating logging and bridge settings")
				if err := setupLogging(cfg.GetLogging(), os.Stdout, ""); err != nil {
					slog.Error("failed to apply logging configuration", "error", err)
				}
				st.reconfigure(cfg)
			}
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received, initiating graceful shutdown")
	case err := <-serverErr:
		slog.Error("HTTP server error", "error", err)
		cancel()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), serverConfig.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	// Cancels a run in progress and waits for it to be recorded.
	if err := st.service.Shutdown(shutdownCtx); err != nil {
		slog.Error("transfer service shutdown error", "error", err)
	}

	slog.Info("shutdown completed")
	return nil
}
