package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/goccy/go-yaml"
)

// DefaultRemoteRoot is the launcher's private save directory on the device.
const DefaultRemoteRoot = "/storage/emulated/0/Android/media/com.geode.launcher/save"

// DefaultRemoteModsRoot is where the Geode launcher keeps installed mods.
const DefaultRemoteModsRoot = "/storage/emulated/0/Android/media/com.geode.launcher/game/geode/mods"

type Config struct {
	Bridge        BridgeConfig        `yaml:"bridge"`
	Paths         PathsConfig         `yaml:"paths"`
	Transfer      TransferConfig      `yaml:"transfer"`
	Gatekeeper    GatekeeperConfig    `yaml:"gatekeeper"`
	Monitor       MonitorConfig       `yaml:"monitor"`
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Logging       LoggingConfig       `yaml:"logging"`

	mu       sync.RWMutex
	watchers []chan<- struct{}
}

type BridgeConfig struct {
	// Path to the adb executable. Empty means look it up on PATH.
	Path            string        `yaml:"path"`
	Serial          string        `yaml:"serial"`
	ProbeTimeout    time.Duration `yaml:"probe_timeout"`
	ListTimeout     time.Duration `yaml:"list_timeout"`
	TransferTimeout time.Duration `yaml:"transfer_timeout"`
}

type PathsConfig struct {
	// Profile is one of native, wine, proton, custom. Empty means auto-detect.
	Profile       string `yaml:"profile"`
	CustomPath    string `yaml:"custom_path"`
	RemoteRoot    string `yaml:"remote_root"`
	CreateMissing bool   `yaml:"create_missing"`

	RemoteModsRoot string `yaml:"remote_mods_root"`
}

type TransferConfig struct {
	Direction  string `yaml:"direction"`
	Scope      string `yaml:"scope"`
	SmartSync  bool   `yaml:"smart_sync"`
	Backup     bool   `yaml:"backup"`
	GeodeMods  bool   `yaml:"geode_mods"`
	GDHReplays bool   `yaml:"gdh_replays"`

	// Refuse to start while Geometry Dash runs on this host
	CheckGameRunning bool `yaml:"check_game_running"`
}

type GatekeeperConfig struct {
	MinFreeMB int64 `yaml:"min_free_mb"`
}

type MonitorConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Interval time.Duration `yaml:"interval"`
}

type ServerConfig struct {
	Port            int           `yaml:"port"`
	Host            string        `yaml:"host"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`

	// Finished runs older than this are pruned at start-up. Zero keeps everything.
	Retention time.Duration `yaml:"retention"`
}

type NotificationsConfig struct {
	Pushover PushoverConfig `yaml:"pushover"`
}

type PushoverConfig struct {
	Token      string `yaml:"token"`
	User       string `yaml:"user"`
	Enabled    bool   `yaml:"enabled"`
	Priority   int    `yaml:"priority"`
	MaxRetries int    `yaml:"max_retries"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	dbPath := "gdsync.db"
	if dir, err := os.UserConfigDir(); err == nil {
		dbPath = filepath.Join(dir, "gdsync", "gdsync.db")
	}

	return &Config{
		Bridge: BridgeConfig{
			ProbeTimeout:    15 * time.Second,
			ListTimeout:     30 * time.Second,
			TransferTimeout: 10 * time.Minute,
		},
		Paths: PathsConfig{
			RemoteRoot:     DefaultRemoteRoot,
			RemoteModsRoot: DefaultRemoteModsRoot,
		},
		Transfer: TransferConfig{
			Direction:        "pc_to_phone",
			Scope:            "userdata",
			CheckGameRunning: true,
		},
		Gatekeeper: GatekeeperConfig{
			MinFreeMB: 64,
		},
		Monitor: MonitorConfig{
			Enabled:  true,
			Interval: 10 * time.Second,
		},
		Server: ServerConfig{
			Port:            8347,
			Host:            "127.0.0.1",
			ShutdownTimeout: 15 * time.Second,
		},
		Database: DatabaseConfig{
			Path:      dbPath,
			Retention: 90 * 24 * time.Hour,
		},
		Notifications: NotificationsConfig{
			Pushover: PushoverConfig{
				MaxRetries: 3,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configPath with environment variable expansion on top of the
// defaults. An empty configPath yields the defaults.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		cfg := Default()
		if err := cfg.validate(); err != nil {
			return nil, fmt.Errorf("config validation failed: %w", err)
		}
		return cfg, nil
	}
	return loadConfig(configPath)
}

func loadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables
	content := os.ExpandEnv(string(data))

	config := Default()
	if err := yaml.Unmarshal([]byte(content), config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := config.ensureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Paths.Profile {
	case "", "native", "wine", "proton":
	case "custom":
		if c.Paths.CustomPath == "" {
			return fmt.Errorf("paths.custom_path is required when profile is custom")
		}
	default:
		return fmt.Errorf("invalid paths.profile: %q", c.Paths.Profile)
	}

	if c.Paths.RemoteRoot == "" || !strings.HasPrefix(c.Paths.RemoteRoot, "/") {
		return fmt.Errorf("paths.remote_root must be an absolute device path")
	}

	if c.Paths.RemoteModsRoot == "" || !strings.HasPrefix(c.Paths.RemoteModsRoot, "/") {
		return fmt.Errorf("paths.remote_mods_root must be an absolute device path")
	}

	if c.Bridge.ProbeTimeout <= 0 || c.Bridge.ListTimeout <= 0 || c.Bridge.TransferTimeout <= 0 {
		return fmt.Errorf("bridge timeouts must be greater than 0")
	}

	if c.Gatekeeper.MinFreeMB < 0 {
		return fmt.Errorf("gatekeeper.min_free_mb cannot be negative")
	}

	if c.Database.Retention < 0 {
		return fmt.Errorf("database.retention cannot be negative")
	}

	if c.Monitor.Enabled && c.Monitor.Interval <= 0 {
		return fmt.Errorf("monitor.interval must be greater than 0")
	}

	if c.Notifications.Pushover.Enabled {
		if c.Notifications.Pushover.Token == "" || strings.HasPrefix(c.Notifications.Pushover.Token, "${") {
			return fmt.Errorf("pushover token is required when notifications are enabled")
		}
		if c.Notifications.Pushover.User == "" || strings.HasPrefix(c.Notifications.Pushover.User, "${") {
			return fmt.Errorf("pushover user is required when notifications are enabled")
		}
		if c.Notifications.Pushover.Priority < -2 || c.Notifications.Pushover.Priority > 1 {
			return fmt.Errorf("pushover priority must be between -2 and 1")
		}
		if c.Notifications.Pushover.MaxRetries < 0 {
			return fmt.Errorf("pushover max_retries cannot be negative")
		}
	}

	return nil
}

func (c *Config) ensureDirectories() error {
	var dirs []string

	if c.Database.Path != "" && c.Database.Path != ":memory:" {
		dirs = append(dirs, filepath.Dir(c.Database.Path))
	}

	if c.Logging.File != "" {
		dirs = append(dirs, filepath.Dir(c.Logging.File))
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// EnsureDirectories creates directories the database and log file live in.
func (c *Config) EnsureDirectories() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ensureDirectories()
}

// WatchForChanges registers a channel to receive notifications when config changes
func (c *Config) WatchForChanges() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan struct{}, 1)
	c.watchers = append(c.watchers, ch)
	return ch
}

// Watch reloads configPath whenever it is written until ctx is done.
func (c *Config) Watch(ctx context.Context, configPath string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := watcher.Add(configDir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch config directory %s: %w", configDir, err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				if filepath.Base(event.Name) == filepath.Base(configPath) &&
					(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
					slog.Info("config file changed, reloading", "file", configPath)

					// Small delay to ensure file write is complete
					time.Sleep(100 * time.Millisecond)

					if err := c.reload(configPath); err != nil {
						slog.Error("failed to reload config", "error", err)
					} else {
						c.notifyWatchers()
					}
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("config watcher error", "error", err)
			}
		}
	}()

	return nil
}

func (c *Config) reload(configPath string) error {
	newConfig, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Server and database settings need a restart; everything else is live.
	c.Bridge = newConfig.Bridge
	c.Paths = newConfig.Paths
	c.Transfer = newConfig.Transfer
	c.Gatekeeper = newConfig.Gatekeeper
	c.Monitor = newConfig.Monitor
	c.Notifications = newConfig.Notifications
	c.Logging = newConfig.Logging

	slog.Info("configuration reloaded successfully")
	return nil
}

func (c *Config) notifyWatchers() {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, watcher := range c.watchers {
		select {
		case watcher <- struct{}{}:
		default:
			// Non-blocking send - if buffer is full, skip
		}
	}
}

func (c *Config) GetBridge() BridgeConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Bridge
}

func (c *Config) GetPaths() PathsConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Paths
}

func (c *Config) GetTransfer() TransferConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Transfer
}

func (c *Config) GetGatekeeper() GatekeeperConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Gatekeeper
}

func (c *Config) GetMonitor() MonitorConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Monitor
}

// GetServer returns a copy of the server configuration
func (c *Config) GetServer() ServerConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Server
}

// GetDatabase returns a copy of the database configuration
func (c *Config) GetDatabase() DatabaseConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Database
}

// GetNotifications returns a copy of the notifications configuration
func (c *Config) GetNotifications() NotificationsConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Notifications
}

// GetLogging returns a copy of the logging configuration
func (c *Config) GetLogging() LoggingConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Logging
}
