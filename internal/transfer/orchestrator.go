package transfer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gdsync/internal/adb"
	"gdsync/internal/config"
	"gdsync/internal/interfaces"
	"gdsync/internal/models"
	"gdsync/internal/sanitizer"
)

// Orchestrator enumerates the files of a request and moves them one by one
// through the bridge.
type Orchestrator struct {
	bridge interfaces.Bridge

	mu   sync.RWMutex
	opts Options
}

type Options struct {
	// CreateMissing lets a pull create a missing local root.
	CreateMissing bool

	// RemoteModsRoot is the Geode mods directory on the device. Empty means
	// config.DefaultRemoteModsRoot.
	RemoteModsRoot string

	// GameRunning reports whether the game is open on this host. Nil skips
	// the check.
	GameRunning func(ctx context.Context) (bool, error)
}

func New(bridge interfaces.Bridge, opts Options) *Orchestrator {
	o := &Orchestrator{bridge: bridge}
	o.Configure(opts)
	return o
}

// Configure replaces the options used by later runs. A run in progress
// keeps the options it started with.
func (o *Orchestrator) Configure(opts Options) {
	if opts.RemoteModsRoot == "" {
		opts.RemoteModsRoot = config.DefaultRemoteModsRoot
	}
	o.mu.Lock()
	o.opts = opts
	o.mu.Unlock()
}

func (o *Orchestrator) options() Options {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.opts
}

// CheckConfiguration validates the request and its local root. For pulls
// with CreateMissing set, a missing local root is created.
func (o *Orchestrator) CheckConfiguration(req models.TransferRequest) error {
	if err := req.Validate(); err != nil {
		return &ConfigurationError{Reason: err.Error()}
	}

	if strings.TrimSpace(req.LocalRoot) == "" {
		return &ConfigurationError{Reason: "local root is not set"}
	}

	info, err := os.Stat(req.LocalRoot)
	switch {
	case err == nil:
		if !info.IsDir() {
			return &ConfigurationError{Path: req.LocalRoot, Reason: "local root is not a directory"}
		}
		return nil

	case errors.Is(err, os.ErrNotExist):
		if req.Direction.IsPull() && o.options().CreateMissing {
			if err := os.MkdirAll(req.LocalRoot, 0755); err != nil {
				return &ConfigurationError{Path: req.LocalRoot, Reason: fmt.Sprintf("failed to create local root: %v", err)}
			}
			slog.Info("created local root", "path", req.LocalRoot)
			return nil
		}
		return &ConfigurationError{Path: req.LocalRoot, Reason: "local root does not exist"}

	default:
		return &ConfigurationError{Path: req.LocalRoot, Reason: fmt.Sprintf("cannot access local root: %v", err)}
	}
}

// Preflight checks that the game is closed on this host, the bridge is
// present and at least one authorized device is connected. It returns the
// ready devices.
func (o *Orchestrator) Preflight(ctx context.Context) ([]models.Device, error) {
	if gameRunning := o.options().GameRunning; gameRunning != nil {
		running, err := gameRunning(ctx)
		switch {
		case err != nil:
			slog.Warn("failed to check whether the game is running", "error", err)
		case running:
			return nil, &PreflightError{Reason: "Geometry Dash is running, close it before syncing"}
		}
	}

	bin, err := o.bridge.Resolve()
	if err != nil {
		return nil, &PreflightError{Reason: "bridge executable not found", Err: err}
	}

	devices, err := o.bridge.Devices(ctx)
	if err != nil {
		return nil, &PreflightError{Reason: "device probe failed", Err: err}
	}

	ready := adb.ReadyDevices(devices)
	if len(ready) == 0 {
		if len(devices) == 0 {
			return nil, &PreflightError{Reason: "no device connected"}
		}
		states := make([]string, 0, len(devices))
		for _, d := range devices {
			states = append(states, fmt.Sprintf("%s (%s)", d.Serial, d.State))
		}
		return nil, &PreflightError{Reason: "no authorized device connected: " + strings.Join(states, ", ")}
	}

	slog.Debug("preflight passed", "bridge", bin, "devices", len(ready))
	return ready, nil
}

// EnumerateLocal lists regular files directly inside root, minus excluded
// paths and backups, sorted by name. DestinationPath is left empty.
func (o *Orchestrator) EnumerateLocal(root string) ([]models.FileEntry, error) {
	dirEntries, err := os.ReadDir(root)
	if err != nil {
		return nil, &EnumerationError{Root: root, Err: err}
	}

	var entries []models.FileEntry
	for _, de := range dirEntries {
		if !de.Type().IsRegular() {
			continue
		}
		full := filepath.Join(root, de.Name())
		if ShouldExclude(full) || isBackup(de.Name()) {
			continue
		}
		entries = append(entries, models.FileEntry{Name: de.Name(), SourcePath: full})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// EnumerateRemote lists regular files directly inside root on the device.
// Excluded, unsafe, backup and duplicate names are dropped.
func (o *Orchestrator) EnumerateRemote(ctx context.Context, root string) ([]models.FileEntry, error) {
	lines, err := o.bridge.ListFiles(ctx, root)
	if err != nil {
		return nil, &EnumerationError{Root: root, Err: err}
	}

	seen := make(map[string]bool)
	var entries []models.FileEntry
	for _, line := range lines {
		line, _ = sanitizer.CleanListingLine(line)
		if line == "" || ShouldExclude(line) {
			continue
		}

		name, ok := sanitizer.SafeBaseName(line, root)
		if !ok {
			slog.Warn("ignoring unsafe remote listing entry", "entry", line)
			continue
		}
		if seen[name] || isBackup(name) {
			continue
		}
		seen[name] = true

		entries = append(entries, models.FileEntry{Name: name, SourcePath: path.Join(root, name)})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// Enumerate builds the complete entry list of a request.
func (o *Orchestrator) Enumerate(ctx context.Context, req models.TransferRequest) ([]models.FileEntry, error) {
	if req.Scope == models.ScopeUserData {
		names := UserDataFiles()
		entries := make([]models.FileEntry, 0, len(names))
		for _, name := range names {
			entries = append(entries, newEntry(req, name))
		}
		return entries, nil
	}

	var (
		listed []models.FileEntry
		err    error
	)
	if req.Direction.IsPull() {
		listed, err = o.EnumerateRemote(ctx, req.RemoteRoot)
	} else {
		listed, err = o.EnumerateLocal(req.LocalRoot)
	}
	if err != nil {
		return nil, err
	}

	entries := make([]models.FileEntry, 0, len(listed))
	for _, e := range listed {
		entries = append(entries, newEntry(req, e.Name))
	}
	return entries, nil
}

func newEntry(req models.TransferRequest, name string) models.FileEntry {
	local := filepath.Join(req.LocalRoot, name)
	remote := path.Join(req.RemoteRoot, name)
	if req.Direction.IsPull() {
		return models.FileEntry{Name: name, SourcePath: remote, DestinationPath: local}
	}
	return models.FileEntry{Name: name, SourcePath: local, DestinationPath: remote}
}

// TransferOne moves a single file. It returns nil on success.
func (o *Orchestrator) TransferOne(ctx context.Context, entry models.FileEntry, direction models.Direction) *FileError {
	_, ferr := o.transferOne(ctx, entry, direction)
	return ferr
}

func (o *Orchestrator) transferOne(ctx context.Context, entry models.FileEntry, direction models.Direction) (*models.CommandResult, *FileError) {
	var (
		res *models.CommandResult
		err error
	)

	if direction.IsPull() {
		res, err = o.bridge.Pull(ctx, entry.SourcePath, entry.DestinationPath)
	} else {
		if _, statErr := os.Stat(entry.SourcePath); statErr != nil {
			return nil, &FileError{
				Entry:    entry,
				Detail:   fmt.Sprintf("local file not found: %s", entry.SourcePath),
				ExitCode: -1,
				Err:      statErr,
			}
		}
		res, err = o.bridge.Push(ctx, entry.SourcePath, entry.DestinationPath)
	}

	if res != nil && strings.TrimSpace(res.Stdout) != "" {
		slog.Debug("bridge output", "file", entry.Name, "stdout", res.Stdout)
	}

	if err == nil {
		return res, nil
	}

	ferr := &FileError{Entry: entry, Detail: err.Error(), ExitCode: -1, Err: err}
	var cmdErr *adb.CommandError
	if errors.As(err, &cmdErr) {
		ferr.Detail = cmdErr.Detail()
		ferr.ExitCode = cmdErr.ExitCode()
	}
	return res, ferr
}

// Run checks req and its device, then executes it. See Execute.
//
// Configuration and preflight problems abort before any file is attempted.
func (o *Orchestrator) Run(ctx context.Context, req models.TransferRequest, events chan<- models.Event) (*models.TransferOutcome, error) {
	if err := o.CheckConfiguration(req); err != nil {
		emitLog(events, models.LogLevelError, "%v", err)
		return nil, err
	}

	devices, err := o.Preflight(ctx)
	if err != nil {
		emitLog(events, models.LogLevelError, "%v", err)
		return nil, err
	}
	emitLog(events, models.LogLevelInfo, "Device ready: %s", devices[0].Serial)

	return o.Execute(ctx, req, events)
}

// Execute transfers the files of an already checked request and reports
// progress on events. The caller owns events and must keep draining it
// until Execute returns.
//
// Per-file failures are recorded on the outcome and the run continues. When
// ctx is cancelled the remaining files are not attempted and the partial
// outcome is returned with ctx's error.
func (o *Orchestrator) Execute(ctx context.Context, req models.TransferRequest, events chan<- models.Event) (*models.TransferOutcome, error) {
	emit := func(ev models.Event) {
		if events != nil {
			events <- ev
		}
	}
	logf := func(level models.LogLevel, format string, args ...interface{}) {
		emitLog(events, level, format, args...)
	}

	entries, err := o.Enumerate(ctx, req)
	if err != nil {
		logf(models.LogLevelError, "%v", err)
		return nil, err
	}

	if len(entries) == 0 {
		logf(models.LogLevelWarn, "No files to transfer in %s", sourceRoot(req))
	}

	if !req.Direction.IsPull() && len(entries) > 0 {
		if err := o.bridge.MkdirAll(ctx, req.RemoteRoot); err != nil {
			slog.Warn("failed to create remote directory", "path", req.RemoteRoot, "error", err)
			logf(models.LogLevelWarn, "Could not create %s on the device: %v", req.RemoteRoot, err)
		}
	}

	entries = append(entries, o.enumerateExtras(ctx, req, logf)...)

	total := len(entries)
	if total > 0 {
		logf(models.LogLevelInfo, "Transferring %d file(s) %s", total, describeDirection(req.Direction))
	}

	outcome := &models.TransferOutcome{Failed: []models.FileFailure{}}

	for i, entry := range entries {
		if ctx.Err() != nil {
			break
		}

		emit(models.ProgressEvent(i, total, entry.Name))

		if req.SmartSync && o.upToDate(ctx, entry, req.Direction) {
			outcome.RecordSkip()
			logf(models.LogLevelInfo, "Skipped %s (up to date)", entry.Name)
			continue
		}

		if req.Backup && req.Direction.IsPull() && !IsExtra(entry.Name) {
			if backup, err := backupExisting(entry.DestinationPath); err != nil {
				ferr := &FileError{Entry: entry, Detail: fmt.Sprintf("backup failed: %v", err), ExitCode: -1, Err: err}
				outcome.RecordFailure(ferr.Failure())
				logf(models.LogLevelError, "%v", ferr)
				continue
			} else if backup != "" {
				logf(models.LogLevelInfo, "Backed up %s to %s", entry.Name, filepath.Base(backup))
			}
		}

		res, ferr := o.transferOne(ctx, entry, req.Direction)
		if res != nil {
			if out := strings.TrimSpace(res.Stdout); out != "" {
				logf(models.LogLevelInfo, "%s", out)
			}
		}

		if ferr != nil {
			outcome.RecordFailure(ferr.Failure())
			slog.Warn("file transfer failed",
				"file", entry.Name,
				"exit_code", ferr.ExitCode,
				"detail", ferr.Detail)
			logf(models.LogLevelError, "%v", ferr)
			continue
		}

		outcome.RecordSuccess()
		logf(models.LogLevelInfo, "Transferred %s", entry.Name)
	}

	outcome.Finalize()

	if err := ctx.Err(); err != nil {
		logf(models.LogLevelWarn, "Transfer cancelled after %d of %d file(s)", outcome.Attempted+outcome.Skipped, total)
		return outcome, err
	}

	emit(models.ProgressEvent(total, total, ""))
	emit(models.CompletedEvent(outcome))
	return outcome, nil
}

func emitLog(events chan<- models.Event, level models.LogLevel, format string, args ...interface{}) {
	if events != nil {
		events <- models.LogEvent(level, fmt.Sprintf(format, args...))
	}
}

func sourceRoot(req models.TransferRequest) string {
	if req.Direction.IsPull() {
		return req.RemoteRoot
	}
	return req.LocalRoot
}

func describeDirection(d models.Direction) string {
	if d.IsPull() {
		return "from phone to PC"
	}
	return "from PC to phone"
}
