package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"gdsync/internal/models"
)

// TestRemoteRoot is the device save directory used by fixtures
const TestRemoteRoot = "/storage/emulated/0/Android/media/com.geode.launcher/save"

// CreateTestRequest creates a transfer request with default values
func CreateTestRequest(overrides ...func(*models.TransferRequest)) models.TransferRequest {
	req := models.TransferRequest{
		Direction:  models.DirectionPCToPhone,
		Scope:      models.ScopeUserData,
		LocalRoot:  "/local/GeometryDash",
		RemoteRoot: TestRemoteRoot,
	}

	for _, override := range overrides {
		override(&req)
	}

	return req
}

// CreateTestRun creates a queued run for a default request
func CreateTestRun(overrides ...func(*models.TransferRun)) *models.TransferRun {
	run := models.NewTransferRun(CreateTestRequest())

	for _, override := range overrides {
		override(run)
	}

	return run
}

// CreateSaveDir creates a temporary local save directory holding the named files
func CreateSaveDir(t *testing.T, names ...string) string {
	t.Helper()

	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return dir
}
