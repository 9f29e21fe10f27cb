package transfer

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gdsync/internal/models"
	"gdsync/internal/sanitizer"
)

// Entry name prefixes of the optional file sets.
const (
	ModsPrefix    = "mods/"
	ReplaysPrefix = "replays/"
)

// Replays live inside the save root on both sides.
var replaysDir = []string{"geode", "mods", "tobyadd.gdh", "Macros"}

// IsExtra reports whether name belongs to the mods or replays set.
func IsExtra(name string) bool {
	return strings.HasPrefix(name, ModsPrefix) || strings.HasPrefix(name, ReplaysPrefix)
}

type extraSet struct {
	label     string
	prefix    string
	extension string
	localDir  string
	remoteDir string
}

func (o *Orchestrator) extraSets(req models.TransferRequest) []extraSet {
	var sets []extraSet
	if req.GeodeMods {
		sets = append(sets, extraSet{
			label:     "mods",
			prefix:    ModsPrefix,
			extension: ".geode",
			localDir:  filepath.Join(req.LocalRoot, "geode", "mods"),
			remoteDir: o.options().RemoteModsRoot,
		})
	}
	if req.GDHReplays {
		sets = append(sets, extraSet{
			label:     "replays",
			prefix:    ReplaysPrefix,
			extension: ".macro",
			localDir:  filepath.Join(append([]string{req.LocalRoot}, replaysDir...)...),
			remoteDir: path.Join(append([]string{req.RemoteRoot}, replaysDir...)...),
		})
	}
	return sets
}

// enumerateExtras lists the Geode mods and GDH replays a request asked for
// and prepares their destination directories. Problems with either set are
// logged and leave that set out; they never fail the run.
func (o *Orchestrator) enumerateExtras(ctx context.Context, req models.TransferRequest, logf func(models.LogLevel, string, ...interface{})) []models.FileEntry {
	var entries []models.FileEntry

	for _, set := range o.extraSets(req) {
		if req.Direction.IsPull() {
			if err := os.MkdirAll(set.localDir, 0755); err != nil {
				slog.Warn("failed to create local directory", "path", set.localDir, "error", err)
				logf(models.LogLevelWarn, "Skipping %s: could not create %s: %v", set.label, set.localDir, err)
				continue
			}

			names, err := o.listRemoteExtras(ctx, set)
			if err != nil {
				slog.Warn("failed to list remote files", "set", set.label, "path", set.remoteDir, "error", err)
				logf(models.LogLevelWarn, "Failed to list %s on the device: %v", set.label, err)
				continue
			}
			for _, name := range names {
				entries = append(entries, models.FileEntry{
					Name:            set.prefix + name,
					SourcePath:      path.Join(set.remoteDir, name),
					DestinationPath: filepath.Join(set.localDir, name),
				})
			}
			continue
		}

		if set.prefix == ModsPrefix && !o.geodeInstalled(ctx, set.remoteDir) {
			logf(models.LogLevelWarn, "Geode does not appear to be installed on the device, skipping mods")
			continue
		}

		names, err := listLocalExtras(set)
		if err != nil {
			logf(models.LogLevelWarn, "Failed to list local %s: %v", set.label, err)
			continue
		}
		if len(names) == 0 {
			logf(models.LogLevelInfo, "No local %s found to push", set.label)
			continue
		}

		if err := o.bridge.MkdirAll(ctx, set.remoteDir); err != nil {
			slog.Warn("failed to create remote directory", "path", set.remoteDir, "error", err)
			logf(models.LogLevelWarn, "Could not create %s on the device: %v", set.remoteDir, err)
		}
		for _, name := range names {
			entries = append(entries, models.FileEntry{
				Name:            set.prefix + name,
				SourcePath:      filepath.Join(set.localDir, name),
				DestinationPath: path.Join(set.remoteDir, name),
			})
		}
	}

	return entries
}

// geodeInstalled accepts the mods directory or its parent, since a fresh
// install has no mods directory yet.
func (o *Orchestrator) geodeInstalled(ctx context.Context, modsDir string) bool {
	for _, dir := range []string{modsDir, path.Dir(modsDir)} {
		ok, err := o.bridge.DirExists(ctx, dir)
		if err != nil {
			slog.Warn("failed to check remote directory", "path", dir, "error", err)
			continue
		}
		if ok {
			return true
		}
	}
	return false
}

func listLocalExtras(set extraSet) ([]string, error) {
	dirEntries, err := os.ReadDir(set.localDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var names []string
	for _, de := range dirEntries {
		if de.Type().IsRegular() && hasExtension(de.Name(), set.extension) {
			names = append(names, de.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func (o *Orchestrator) listRemoteExtras(ctx context.Context, set extraSet) ([]string, error) {
	lines, err := o.bridge.ListFiles(ctx, set.remoteDir)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var names []string
	for _, line := range lines {
		line, _ = sanitizer.CleanListingLine(line)
		if line == "" {
			continue
		}
		name, ok := sanitizer.SafeBaseName(line, set.remoteDir)
		if !ok || seen[name] || !hasExtension(name, set.extension) {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func hasExtension(name, ext string) bool {
	return strings.EqualFold(filepath.Ext(name), ext)
}
