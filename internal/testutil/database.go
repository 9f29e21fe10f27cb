package testutil

import (
	"path/filepath"
	"testing"

	"gdsync/internal/config"
	"gdsync/internal/models"
	"gdsync/internal/repository"
)

// DatabasePath returns a fresh run database location in a test temp dir.
// Several repositories and gatekeepers opened on it behave like separate
// gdsync processes sharing one history.
func DatabasePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "gdsync.db")
}

// OpenRepository opens the run database at dbPath and closes it when the
// test ends. ":memory:" gives a private database.
func OpenRepository(t *testing.T, dbPath string) *repository.Repository {
	t.Helper()

	repo, err := repository.New(dbPath)
	if err != nil {
		t.Fatalf("failed to open run database %s: %v", dbPath, err)
	}
	t.Cleanup(func() {
		repo.Close()
	})
	return repo
}

// Config returns the default configuration with the database at dbPath and
// the free space rule off.
func Config(dbPath string) *config.Config {
	cfg := config.Default()
	cfg.Database.Path = dbPath
	cfg.Gatekeeper.MinFreeMB = 0
	return cfg
}

// SeedRuns stores runs in order, as a previous process would have left them.
func SeedRuns(t *testing.T, repo *repository.Repository, runs ...*models.TransferRun) {
	t.Helper()
	for _, run := range runs {
		if err := repo.CreateRun(run); err != nil {
			t.Fatalf("failed to seed run: %v", err)
		}
	}
}

// LeftRunning returns a run that was started and never finished.
func LeftRunning(overrides ...func(*models.TransferRun)) *models.TransferRun {
	run := CreateTestRun()
	run.MarkStarted()
	for _, override := range overrides {
		override(run)
	}
	return run
}
