// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/remaimber-it/scorecard/internal/domain/metrics"
	"github.com/remaimber-it/scorecard/internal/domain/recommendation"
	"github.com/remaimber-it/scorecard/internal/domain/record"
	"github.com/remaimber-it/scorecard/internal/service"
	"github.com/remaimber-it/scorecard/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
type Handler struct {
	analysis       *service.AnalysisService
	logger         *slog.Logger
	maxUploadBytes int64
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(analysis *service.AnalysisService, logger *slog.Logger, maxUploadBytes int64) *Handler {
	return &Handler{
		analysis:       analysis,
		logger:         logger,
		maxUploadBytes: maxUploadBytes,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes {"error": msg} with the given status code.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// handleError maps pipeline and store errors to HTTP responses. Returns true
// if an error was handled (caller should return).
func (h *Handler) handleError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}

	var (
		malformed    *record.MalformedRecordError
		inconsistent *metrics.LookupInconsistencyError
	)
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, metrics.ErrEmptyDataset):
		respondError(w, http.StatusNotFound, "no student data available")
	case errors.As(err, &malformed):
		respondError(w, http.StatusBadRequest, malformed.Error())
	case errors.As(err, &inconsistent), errors.Is(err, recommendation.ErrClassificationRequired):
		h.logger.Error("inconsistent analysis", "error", err, "entity", entity)
		respondError(w, http.StatusInternalServerError, "inconsistent analysis")
	default:
		h.logger.Error("request failed", "error", err, "entity", entity)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
