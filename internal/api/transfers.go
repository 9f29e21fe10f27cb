package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"gdsync/internal/models"
	"gdsync/internal/repository"
	"gdsync/internal/services"
	"gdsync/internal/transfer"

	"github.com/gorilla/mux"
)

func (h *Handlers) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	var opts models.RequestOptions
	if err := json.NewDecoder(r.Body).Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		h.writeError(w, http.StatusBadRequest, "Invalid JSON payload", err)
		return
	}

	req, err := h.transfers.NewRequest(opts)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	run, err := h.transfers.StartTransfer(r.Context(), req)
	if err != nil {
		var (
			cfgErr *transfer.ConfigurationError
			pfErr  *transfer.PreflightError
		)
		switch {
		case errors.Is(err, services.ErrRunInProgress):
			h.writeError(w, http.StatusConflict, err.Error(), nil)
		case errors.Is(err, services.ErrRejected):
			h.writeError(w, http.StatusInsufficientStorage, err.Error(), nil)
		case errors.As(err, &cfgErr):
			h.writeError(w, http.StatusBadRequest, err.Error(), nil)
		case errors.As(err, &pfErr):
			h.writeError(w, http.StatusServiceUnavailable, err.Error(), nil)
		default:
			h.writeError(w, http.StatusInternalServerError, "Failed to start transfer", err)
		}
		return
	}

	h.writeSuccess(w, http.StatusAccepted, run, "Transfer started")
}

func (h *Handlers) GetTransfers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := models.RunFilter{}

	// Parse status filter
	for _, status := range query["status"] {
		filter.Status = append(filter.Status, models.RunStatus(status))
	}

	if directionStr := query.Get("direction"); directionStr != "" {
		direction, err := models.ParseDirection(directionStr)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		filter.Direction = direction
	}

	// Parse pagination
	filter.Limit = 50
	if limitStr := query.Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 && limit <= 1000 {
			filter.Limit = limit
		}
	}

	if offsetStr := query.Get("offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil && offset >= 0 {
			filter.Offset = offset
		}
	}

	// Parse sorting
	filter.SortBy = query.Get("sort_by")
	filter.SortOrder = query.Get("sort_order")

	runs, err := h.transfers.GetRuns(filter)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to get transfers", err)
		return
	}

	h.writeSuccess(w, http.StatusOK, runs, "")
}

func (h *Handlers) GetTransfer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid transfer ID", err)
		return
	}

	run, err := h.transfers.GetRun(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "Transfer not found", nil)
			return
		}
		h.writeError(w, http.StatusInternalServerError, "Failed to get transfer", err)
		return
	}

	h.writeSuccess(w, http.StatusOK, run, "")
}

func (h *Handlers) DeleteTransfer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid transfer ID", err)
		return
	}

	if err := h.transfers.DeleteRun(id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			h.writeError(w, http.StatusNotFound, "Transfer not found", nil)
		case errors.Is(err, services.ErrRunActive):
			h.writeError(w, http.StatusConflict, err.Error(), nil)
		default:
			h.writeError(w, http.StatusInternalServerError, "Failed to delete transfer", err)
		}
		return
	}

	h.writeSuccess(w, http.StatusOK, nil, "Transfer deleted")
}

func (h *Handlers) GetTransferSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.transfers.GetSummary()
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to get transfer summary", err)
		return
	}

	h.writeSuccess(w, http.StatusOK, summary, "")
}

func (h *Handlers) GetActiveTransfer(w http.ResponseWriter, r *http.Request) {
	run, err := h.transfers.ActiveRun()
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Failed to get active transfer", err)
		return
	}

	if run == nil {
		h.writeSuccess(w, http.StatusOK, nil, "No transfer in progress")
		return
	}

	h.writeSuccess(w, http.StatusOK, run, "")
}
