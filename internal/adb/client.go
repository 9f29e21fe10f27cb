package adb

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"path"
	"strconv"
	"strings"
	"sync"
	"time"

	"gdsync/internal/config"
	"gdsync/internal/models"
)

// DefaultExecutable is looked up on PATH when no bridge path is configured.
const DefaultExecutable = "adb"

// Runner executes one bridge process. A non-nil error means the process
// could not be started or was killed; a non-zero exit alone is reported
// through the exit code.
type Runner func(ctx context.Context, name string, args ...string) (stdout, stderr string, exitCode int, err error)

// Observer is told about every bridge call once it returns.
type Observer func(op string, duration time.Duration, err error)

// Call classes, each with its own configured timeout
type callClass int

const (
	probeCall callClass = iota
	listCall
	transferCall
)

// Client wraps the adb executable. Every call runs under its own timeout.
type Client struct {
	mu  sync.RWMutex
	cfg config.BridgeConfig

	run      Runner
	lookPath func(string) (string, error)
	observer Observer
}

type Option func(*Client)

// WithRunner replaces process execution, used by tests.
func WithRunner(r Runner) Option {
	return func(c *Client) { c.run = r }
}

func WithLookPath(fn func(string) (string, error)) Option {
	return func(c *Client) { c.lookPath = fn }
}

func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

// NewClient creates a bridge client from the bridge configuration
func NewClient(cfg config.BridgeConfig, opts ...Option) *Client {
	c := &Client{
		run:      execRunner,
		lookPath: exec.LookPath,
	}
	c.Configure(cfg)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configure applies new bridge settings to every later call. Calls already
// running keep the settings they started with.
func (c *Client) Configure(cfg config.BridgeConfig) {
	if cfg.Path == "" {
		cfg.Path = DefaultExecutable
	}
	c.mu.Lock()
	c.cfg = cfg
	c.mu.Unlock()
}

func (c *Client) settings() config.BridgeConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg
}

func timeoutFor(cfg config.BridgeConfig, class callClass) time.Duration {
	switch class {
	case probeCall:
		return cfg.ProbeTimeout
	case listCall:
		return cfg.ListTimeout
	}
	return cfg.TransferTimeout
}

// CommandError is returned when a bridge process fails to start, times out
// or exits non-zero.
type CommandError struct {
	Op     string
	Result *models.CommandResult
	Err    error
}

func (e *CommandError) Error() string {
	if e.Result != nil && e.Result.ExitCode > 0 {
		detail := strings.TrimSpace(e.Result.Stderr)
		if detail == "" {
			detail = strings.TrimSpace(e.Result.Stdout)
		}
		if detail == "" {
			return fmt.Sprintf("adb %s exited with code %d", e.Op, e.Result.ExitCode)
		}
		return fmt.Sprintf("adb %s exited with code %d: %s", e.Op, e.Result.ExitCode, detail)
	}
	return fmt.Sprintf("adb %s failed: %v", e.Op, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code, or -1 when the process never exited normally.
func (e *CommandError) ExitCode() int {
	if e.Result == nil {
		return -1
	}
	return e.Result.ExitCode
}

// Detail is the text shown for a failed file: stderr when present, the error otherwise.
func (e *CommandError) Detail() string {
	if e.Result != nil {
		if s := strings.TrimSpace(e.Result.Stderr); s != "" {
			return s
		}
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Error()
}

// Resolve returns the absolute path of the bridge executable.
func (c *Client) Resolve() (string, error) {
	bin := c.settings().Path
	p, err := c.lookPath(bin)
	if err != nil {
		return "", fmt.Errorf("failed to locate bridge executable %q: %w", bin, err)
	}
	return p, nil
}

// Devices lists devices known to the adb server. The call itself succeeding
// says nothing about whether any of them is usable.
func (c *Client) Devices(ctx context.Context) ([]models.Device, error) {
	res, err := c.exec(ctx, "devices", probeCall, false, "devices", "-l")
	if err != nil {
		return nil, err
	}
	return ParseDevices(res.Stdout), nil
}

// Pull copies one file from the device to the host.
func (c *Client) Pull(ctx context.Context, remotePath, localPath string) (*models.CommandResult, error) {
	return c.exec(ctx, "pull", transferCall, true, "pull", remotePath, localPath)
}

// Push copies one file from the host to the device.
func (c *Client) Push(ctx context.Context, localPath, remotePath string) (*models.CommandResult, error) {
	return c.exec(ctx, "push", transferCall, true, "push", localPath, remotePath)
}

// ListFiles returns the absolute paths of regular files directly inside dir.
func (c *Client) ListFiles(ctx context.Context, dir string) ([]string, error) {
	res, err := c.exec(ctx, "list", listCall, true,
		"shell", fmt.Sprintf("find %s -maxdepth 1 -type f", shellQuote(dir)))
	if err != nil {
		return nil, err
	}

	var files []string
	for _, line := range strings.Split(res.Stdout, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		files = append(files, line)
	}
	return files, nil
}

// ModTime returns the modification time of a file on the device.
func (c *Client) ModTime(ctx context.Context, remotePath string) (time.Time, error) {
	res, err := c.exec(ctx, "stat", listCall, true,
		"shell", fmt.Sprintf("stat -c %%Y %s", shellQuote(remotePath)))
	if err != nil {
		return time.Time{}, err
	}

	secs, err := strconv.ParseInt(strings.TrimSpace(res.Stdout), 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse modification time of %s: %w", remotePath, err)
	}
	return time.Unix(secs, 0), nil
}

// DirExists reports whether dir is a directory on the device.
func (c *Client) DirExists(ctx context.Context, dir string) (bool, error) {
	res, err := c.exec(ctx, "test", listCall, true,
		"shell", fmt.Sprintf("[ -d %s ] && echo EXISTS", shellQuote(path.Clean(dir))))
	if err != nil {
		var cmdErr *CommandError
		// The shell exits 1 when the test fails.
		if errors.As(err, &cmdErr) && cmdErr.ExitCode() == 1 {
			return false, nil
		}
		return false, err
	}
	return strings.Contains(res.Stdout, "EXISTS"), nil
}

// MkdirAll creates dir and its parents on the device.
func (c *Client) MkdirAll(ctx context.Context, dir string) error {
	_, err := c.exec(ctx, "mkdir", listCall, true,
		"shell", fmt.Sprintf("mkdir -p %s", shellQuote(path.Clean(dir))))
	return err
}

func (c *Client) exec(ctx context.Context, op string, class callClass, targeted bool, args ...string) (*models.CommandResult, error) {
	cfg := c.settings()
	if targeted && cfg.Serial != "" {
		args = append([]string{"-s", cfg.Serial}, args...)
	}

	if timeout := timeoutFor(cfg, class); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	stdout, stderr, exitCode, runErr := c.run(ctx, cfg.Path, args...)
	res := &models.CommandResult{
		Args:     args,
		ExitCode: exitCode,
		Stdout:   stdout,
		Stderr:   stderr,
		Duration: time.Since(start),
	}

	var err error
	switch {
	case runErr != nil:
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(runErr, ctxErr) {
			runErr = fmt.Errorf("%w: %v", ctxErr, runErr)
		}
		err = &CommandError{Op: op, Result: res, Err: runErr}
	case exitCode != 0:
		err = &CommandError{Op: op, Result: res, Err: fmt.Errorf("exit status %d", exitCode)}
	}

	slog.Debug("bridge call finished",
		"op", op,
		"args", args,
		"exit_code", exitCode,
		"duration", res.Duration,
		"error", err)

	if c.observer != nil {
		c.observer(op, res.Duration, err)
	}

	return res, err
}

func execRunner(ctx context.Context, name string, args ...string) (string, string, int, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.String(), stderr.String(), 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		return stdout.String(), stderr.String(), exitErr.ExitCode(), nil
	}
	return stdout.String(), stderr.String(), -1, err
}

// shellQuote wraps s in single quotes for the device shell.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
