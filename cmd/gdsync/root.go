package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"gdsync/internal/api"
	"gdsync/internal/config"

	"github.com/spf13/cobra"
)

var (
	cfg      *config.Config
	cfgFile  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "gdsync",
	Short: "Copy Geometry Dash saves between this PC and an Android device",
	Long: `gdsync copies the game's save files between the local save directory and
the Geode launcher's save directory on an Android device, using adb.

Usage:
  Push saves to the phone:  gdsync sync --direction pc-to-phone
  Pull saves to the PC:     gdsync sync --direction phone-to-pc --backup
  Run the HTTP API:         gdsync serve`,
	Version:       api.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := getConfigPath()

		loaded, err := config.Load(path)
		if err != nil {
			return &exitError{code: 2, err: fmt.Errorf("failed to load configuration: %w", err)}
		}
		if err := loaded.EnsureDirectories(); err != nil {
			return &exitError{code: 2, err: err}
		}
		cfg = loaded

		if err := setupLogging(cfg.GetLogging(), os.Stderr, defaultLevel(cmd)); err != nil {
			return err
		}
		slog.Debug("configuration loaded", "config_path", path)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $GDSYNC_CONFIG, then ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error (overrides the config file)")

	rootCmd.AddCommand(syncCmd, serveCmd, devicesCmd, pathsCmd, historyCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

// getConfigPath returns the flag, then $GDSYNC_CONFIG, then the first file
// found in the usual places. Empty means run on defaults.
func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	if configPath := os.Getenv("GDSYNC_CONFIG"); configPath != "" {
		return configPath
	}

	candidates := []string{"./config.yaml"}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "gdsync", "config.yaml"))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// defaultLevel overrides the configured level for commands that draw their
// own output. sync shows the run log on the console.
func defaultLevel(cmd *cobra.Command) string {
	if cmd == syncCmd {
		return "warn"
	}
	return ""
}

var (
	logMu   sync.Mutex
	logFile *os.File
)

// setupLogging installs the default slog logger. --log-level wins over
// fallback, which wins over the configured level.
func setupLogging(logConfig config.LoggingConfig, out io.Writer, fallback string) error {
	name := logConfig.Level
	if fallback != "" {
		name = fallback
	}
	if logLevel != "" {
		name = logLevel
	}

	var level slog.Level
	switch strings.ToLower(name) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logMu.Lock()
	defer logMu.Unlock()

	w := out
	var file *os.File
	if logConfig.File != "" {
		f, err := os.OpenFile(logConfig.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		file = f
		w = io.MultiWriter(out, f)
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if logConfig.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))

	if logFile != nil {
		logFile.Close()
	}
	logFile = file
	return nil
}

// createContext returns a context cancelled on SIGINT or SIGTERM.
func createContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
