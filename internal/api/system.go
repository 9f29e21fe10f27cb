package api

import (
	"errors"
	"net/http"
	"time"

	"gdsync/internal/paths"
)

var startTime = time.Now()

// Version is reported by the health and status endpoints.
var Version = "dev"

func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.transfers.Ping(); err != nil {
		h.writeError(w, http.StatusServiceUnavailable, "Service is unhealthy", err)
		return
	}

	health := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(startTime).String(),
		"version":   Version,
	}

	if h.monitor != nil {
		health["device_connected"] = h.monitor.GetStatus().Connected
	}

	h.writeSuccess(w, http.StatusOK, health, "Service is healthy")
}

func (h *Handlers) GetStatus(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"service":   "gdsync",
		"version":   Version,
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(startTime).String(),
	}

	if summary, err := h.transfers.GetSummary(); err == nil {
		status["transfers"] = summary
	}

	if run, err := h.transfers.ActiveRun(); err == nil && run != nil {
		status["active_transfer"] = run
	}

	if h.gatekeeper != nil {
		status["gatekeeper"] = h.gatekeeper.GetStatus()
	}

	if h.monitor != nil {
		status["devices"] = h.monitor.GetStatus()
	}

	h.writeSuccess(w, http.StatusOK, status, "")
}

func (h *Handlers) GetDevices(w http.ResponseWriter, r *http.Request) {
	if h.monitor == nil {
		h.writeError(w, http.StatusServiceUnavailable, "Device monitor is disabled", nil)
		return
	}

	h.writeSuccess(w, http.StatusOK, h.monitor.GetStatus(), "")
}

// GetPaths reports the save directories of every fixed profile on this host
// and which one a transfer would use.
func (h *Handlers) GetPaths(w http.ResponseWriter, r *http.Request) {
	platform, err := h.platform()
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to inspect host", err)
		return
	}

	pc := h.config.GetPaths()
	data := map[string]interface{}{
		"os":          platform.OS,
		"candidates":  paths.Candidates(platform),
		"remote_root": pc.RemoteRoot,
	}

	profile, root, err := paths.Detect(platform)
	switch {
	case err == nil:
		data["detected_profile"] = profile
		data["detected_root"] = root
	case !errors.Is(err, paths.ErrNoProfileDetected):
		h.writeError(w, http.StatusInternalServerError, "Failed to detect save directory", err)
		return
	}

	if pc.Profile != "" {
		data["configured_profile"] = pc.Profile
	}

	h.writeSuccess(w, http.StatusOK, data, "")
}
