package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"gdsync/internal/config"
	"gdsync/internal/interfaces"
	"gdsync/internal/mocks"
	"gdsync/internal/models"
	"gdsync/internal/paths"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deviceStatus(connected bool) models.DeviceStatus {
	status := models.DeviceStatus{Devices: []models.Device{}, CheckedAt: time.Now()}
	if connected {
		status.Devices = append(status.Devices, models.Device{Serial: "R58M123", State: models.DeviceStateReady})
		status.Connected = true
	}
	return status
}

func TestHealthCheck(t *testing.T) {
	h, m := setupTestHandlers(t)
	m.transfers.EXPECT().Ping().Return(nil).Once()
	m.monitor.EXPECT().GetStatus().Return(deviceStatus(true)).Once()

	rec := httptest.NewRecorder()
	h.HealthCheck(rec, httptest.NewRequest("GET", "/api/v1/health", nil))

	assert.Equal(t, 200, rec.Code)
	response := decodeResponse(t, rec)
	assert.True(t, response.Success)
	assert.Equal(t, "Service is healthy", response.Message)

	data, ok := response.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "healthy", data["status"])
	assert.NotNil(t, data["timestamp"])
	assert.NotNil(t, data["uptime"])
	assert.Equal(t, Version, data["version"])
	assert.Equal(t, true, data["device_connected"])
}

func TestHealthCheck_WithoutMonitor(t *testing.T) {
	transfers := mocks.NewMockTransferService(t)
	transfers.EXPECT().Ping().Return(nil).Once()
	h := NewHandlers(transfers, nil, nil, config.Default())

	rec := httptest.NewRecorder()
	h.HealthCheck(rec, httptest.NewRequest("GET", "/api/v1/health", nil))

	assert.Equal(t, 200, rec.Code)
	data, ok := decodeResponse(t, rec).Data.(map[string]interface{})
	require.True(t, ok)
	assert.NotContains(t, data, "device_connected")
}

func TestHealthCheck_DatabaseUnavailable(t *testing.T) {
	h, m := setupTestHandlers(t)
	m.transfers.EXPECT().Ping().Return(errors.New("database is closed")).Once()

	rec := httptest.NewRecorder()
	h.HealthCheck(rec, httptest.NewRequest("GET", "/api/v1/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	response := decodeResponse(t, rec)
	assert.False(t, response.Success)
	assert.Equal(t, "Service is unhealthy", response.Error)
}

func TestGetStatus(t *testing.T) {
	h, m := setupTestHandlers(t)

	m.transfers.EXPECT().GetSummary().Return(&models.RunSummary{TotalRuns: 2, CompletedRuns: 2}, nil).Once()
	m.transfers.EXPECT().ActiveRun().Return(nil, nil).Once()
	m.gatekeeper.EXPECT().GetStatus().Return(interfaces.GatekeeperStatus{
		MinFreeBytes: 64 * 1024 * 1024,
		DiskCheck:    "ok",
	}).Once()
	m.monitor.EXPECT().GetStatus().Return(deviceStatus(false)).Once()

	rec := httptest.NewRecorder()
	h.GetStatus(rec, httptest.NewRequest("GET", "/api/v1/status", nil))

	assert.Equal(t, 200, rec.Code)
	data, ok := decodeResponse(t, rec).Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "gdsync", data["service"])
	assert.NotNil(t, data["transfers"])
	assert.NotNil(t, data["gatekeeper"])
	assert.NotContains(t, data, "active_transfer")

	devices, ok := data["devices"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, false, devices["connected"])
}

func TestGetStatus_SummaryError(t *testing.T) {
	h, m := setupTestHandlers(t)

	m.transfers.EXPECT().GetSummary().Return(nil, errors.New("database closed")).Once()
	m.transfers.EXPECT().ActiveRun().Return(nil, nil).Once()
	m.gatekeeper.EXPECT().GetStatus().Return(interfaces.GatekeeperStatus{}).Once()
	m.monitor.EXPECT().GetStatus().Return(deviceStatus(false)).Once()

	rec := httptest.NewRecorder()
	h.GetStatus(rec, httptest.NewRequest("GET", "/api/v1/status", nil))

	assert.Equal(t, 200, rec.Code)
	data, ok := decodeResponse(t, rec).Data.(map[string]interface{})
	require.True(t, ok)
	assert.NotContains(t, data, "transfers")
}

func TestGetDevices(t *testing.T) {
	r, m := setupTestRouter(t)
	m.monitor.EXPECT().GetStatus().Return(deviceStatus(true)).Once()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/api/v1/devices", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	data, ok := decodeResponse(t, rec).Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, data["connected"])
	assert.Len(t, data["devices"], 1)
}

func TestGetDevices_MonitorDisabled(t *testing.T) {
	h := NewHandlers(mocks.NewMockTransferService(t), nil, nil, config.Default())

	rec := httptest.NewRecorder()
	h.GetDevices(rec, httptest.NewRequest("GET", "/api/v1/devices", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGetPaths(t *testing.T) {
	h, _ := setupTestHandlers(t)

	proton := filepath.Join("/home/alice", ".local", "share", "Steam", "steamapps", "compatdata", "322170",
		"pfx", "drive_c", "users", "steamuser", "AppData", "Local", "GeometryDash")
	h.platform = func() (paths.Platform, error) {
		return paths.Platform{
			OS:     "linux",
			Home:   "/home/alice",
			User:   "alice",
			Exists: func(p string) bool { return p == proton },
		}, nil
	}

	rec := httptest.NewRecorder()
	h.GetPaths(rec, httptest.NewRequest("GET", "/api/v1/paths", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	data, ok := decodeResponse(t, rec).Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "linux", data["os"])
	assert.Equal(t, "proton", data["detected_profile"])
	assert.Equal(t, proton, data["detected_root"])
	assert.Equal(t, config.DefaultRemoteRoot, data["remote_root"])
	assert.Len(t, data["candidates"], 2)
}

func TestGetPaths_NothingDetected(t *testing.T) {
	h, _ := setupTestHandlers(t)
	h.platform = func() (paths.Platform, error) {
		return paths.Platform{
			OS:     "linux",
			Home:   "/home/alice",
			User:   "alice",
			Exists: func(string) bool { return false },
		}, nil
	}

	rec := httptest.NewRecorder()
	h.GetPaths(rec, httptest.NewRequest("GET", "/api/v1/paths", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	data, ok := decodeResponse(t, rec).Data.(map[string]interface{})
	require.True(t, ok)
	assert.NotContains(t, data, "detected_profile")
}

func TestGetPaths_PlatformError(t *testing.T) {
	h, _ := setupTestHandlers(t)
	h.platform = func() (paths.Platform, error) {
		return paths.Platform{}, errors.New("failed to determine home directory")
	}

	rec := httptest.NewRecorder()
	h.GetPaths(rec, httptest.NewRequest("GET", "/api/v1/paths", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
