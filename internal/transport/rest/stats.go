package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/braindump-backend/internal/game"
	"github.com/heartmarshall/braindump-backend/internal/service/stats"
)

// statsService defines the minimal interface needed by StatsHandler.
type statsService interface {
	Stats(ctx context.Context) (*stats.StatsView, error)
	Ping(ctx context.Context) (*game.AccrualResult, error)
}

// StatsHandler serves the gamification REST endpoints.
type StatsHandler struct {
	svc statsService
	log *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc statsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, log: logger.With("handler", "stats")}
}

type statsResponse struct {
	XP         int64   `json:"xp"`
	Level      int     `json:"level"`
	Streak     int     `json:"streak"`
	LastActive string  `json:"lastActiveDate,omitempty"`
	XPFloor    int64   `json:"xpFloor"`
	XPCeil     int64   `json:"xpCeil"`
	Progress   float64 `json:"progress"`
}

// Stats handles GET /api/stats.
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Stats(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp := statsResponse{
		XP:       view.Stats.CurrentXP,
		Level:    view.Stats.CurrentLevel,
		Streak:   view.Stats.StreakCount,
		XPFloor:  view.XPFloor,
		XPCeil:   view.XPCeil,
		Progress: view.Progress,
	}
	if view.Stats.LastActiveDate != nil {
		resp.LastActive = view.Stats.LastActiveDate.Format(time.DateOnly)
	}

	writeJSON(w, http.StatusOK, resp)
}

// Ping handles POST /api/ping: the quick-capture tap that grants the capture
// reward without creating an item.
func (h *StatsHandler) Ping(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Ping(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccrualResponse(result))
}
