package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"gdsync/internal/config"
	"gdsync/internal/interfaces"
	"gdsync/internal/metrics"
	"gdsync/internal/paths"

	"github.com/gorilla/mux"
)

type Handlers struct {
	transfers  interfaces.TransferService
	gatekeeper interfaces.Gatekeeper
	monitor    interfaces.DeviceMonitor
	config     *config.Config

	platform func() (paths.Platform, error)
}

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// NewHandlers wires the API. monitor may be nil when device polling is
// disabled.
func NewHandlers(transfers interfaces.TransferService, gatekeeper interfaces.Gatekeeper, monitor interfaces.DeviceMonitor, cfg *config.Config) *Handlers {
	return &Handlers{
		transfers:  transfers,
		gatekeeper: gatekeeper,
		monitor:    monitor,
		config:     cfg,
		platform:   paths.CurrentPlatform,
	}
}

func (h *Handlers) RegisterRoutes(r *mux.Router) {
	r.Handle("/metrics", metrics.Handler()).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()

	// Transfer endpoints
	api.HandleFunc("/transfers", h.CreateTransfer).Methods("POST")
	api.HandleFunc("/transfers", h.GetTransfers).Methods("GET")
	api.HandleFunc("/transfers/{id:[0-9]+}", h.GetTransfer).Methods("GET")
	api.HandleFunc("/transfers/{id:[0-9]+}", h.DeleteTransfer).Methods("DELETE")
	api.HandleFunc("/transfers/summary", h.GetTransferSummary).Methods("GET")
	api.HandleFunc("/transfers/active", h.GetActiveTransfer).Methods("GET")

	// Device and host endpoints
	api.HandleFunc("/devices", h.GetDevices).Methods("GET")
	api.HandleFunc("/paths", h.GetPaths).Methods("GET")

	// System endpoints
	api.HandleFunc("/health", h.HealthCheck).Methods("GET")
	api.HandleFunc("/status", h.GetStatus).Methods("GET")

	api.Use(corsMiddleware)
	api.Use(loggingMiddleware)
	api.Use(jsonContentTypeMiddleware)
}

func (h *Handlers) writeSuccess(w http.ResponseWriter, statusCode int, data interface{}, message string) {
	w.WriteHeader(statusCode)
	response := APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, statusCode int, message string, err error) {
	w.WriteHeader(statusCode)
	response := APIResponse{
		Success: false,
		Error:   message,
	}

	if err != nil {
		slog.Error("API error", "message", message, "error", err)
	} else {
		slog.Warn("API error", "message", message)
	}

	if jsonErr := json.NewEncoder(w).Encode(response); jsonErr != nil {
		slog.Error("failed to encode error response", "error", jsonErr)
	}
}
