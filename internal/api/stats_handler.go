package api

import (
	"log/slog"
	"net/http"

	"github.com/dpoletti/pokertrain/internal/api/shared"
	"github.com/dpoletti/pokertrain/internal/service"
)

// StatsHandler serves user statistics and reset.
type StatsHandler struct {
	training      service.TrainingService
	defaultUserID string
	logger        *slog.Logger
}

// NewStatsHandler creates a stats handler.
func NewStatsHandler(training service.TrainingService, defaultUserID string, logger *slog.Logger) *StatsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatsHandler{
		training:      training,
		defaultUserID: defaultUserID,
		logger:        logger.With(slog.String("component", "stats_handler")),
	}
}

func (h *StatsHandler) userID(r *http.Request) string {
	if id := r.Header.Get("X-User-ID"); id != "" {
		return id
	}
	return h.defaultUserID
}

// GetStats handles GET /api/stats.
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.training.Stats(r.Context(), h.userID(r))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, newStatsResponse(stats))
}

// ResetStats handles POST /api/stats/reset.
func (h *StatsHandler) ResetStats(w http.ResponseWriter, r *http.Request) {
	if err := h.training.Reset(r.Context(), h.userID(r)); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ResetResponse{
		Success: true,
		Message: "All statistics have been reset.",
	})
}
