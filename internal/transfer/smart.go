package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gdsync/internal/models"
)

// BackupSuffix is appended to a local file saved before a pull overwrites it.
const BackupSuffix = ".bak"

// isBackup reports whether name is a backup left by an earlier pull. Backups
// stay on the host and are never pushed.
func isBackup(name string) bool {
	return strings.HasSuffix(name, BackupSuffix)
}

// upToDate reports whether the destination copy of entry is at least as new
// as its source. Critical saves are never considered up to date, and any
// error reading either timestamp means the file is transferred.
func (o *Orchestrator) upToDate(ctx context.Context, entry models.FileEntry, direction models.Direction) bool {
	if IsCritical(entry.Name) {
		return false
	}

	var src, dst time.Time
	var err error
	if direction.IsPull() {
		if src, err = o.bridge.ModTime(ctx, entry.SourcePath); err != nil {
			return false
		}
		if dst, err = localModTime(entry.DestinationPath); err != nil {
			return false
		}
	} else {
		if src, err = localModTime(entry.SourcePath); err != nil {
			return false
		}
		if dst, err = o.bridge.ModTime(ctx, entry.DestinationPath); err != nil {
			return false
		}
	}

	// Device timestamps have one second resolution.
	return !dst.Before(src.Truncate(time.Second))
}

func localModTime(p string) (time.Time, error) {
	info, err := os.Stat(p)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

// backupExisting copies p to p+BackupSuffix when p exists. It returns the
// backup path, or "" when there was nothing to back up.
func backupExisting(p string) (string, error) {
	src, err := os.Open(p)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", p, err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", p, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%s is not a regular file", p)
	}

	backup := p + BackupSuffix
	dst, err := os.OpenFile(backup, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", backup, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", fmt.Errorf("failed to copy %s: %w", p, err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", backup, err)
	}

	slog.Debug("backed up local file", "path", p, "backup", backup)
	return backup, nil
}
