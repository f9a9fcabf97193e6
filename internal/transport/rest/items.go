package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/braindump-backend/internal/domain"
	"github.com/heartmarshall/braindump-backend/internal/game"
	"github.com/heartmarshall/braindump-backend/internal/service/item"
)

// itemService defines the minimal interface needed by ItemHandler.
type itemService interface {
	Capture(ctx context.Context, input item.CaptureInput) (*item.CaptureResult, error)
	ActiveItems(ctx context.Context) ([]*domain.Item, error)
	Resolve(ctx context.Context, input item.MutateInput) (*item.ResolveResult, error)
	Discard(ctx context.Context, input item.MutateInput) error
}

// ItemHandler serves the item lifecycle REST endpoints.
type ItemHandler struct {
	svc itemService
	log *slog.Logger
}

// NewItemHandler creates an ItemHandler.
func NewItemHandler(svc itemService, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{svc: svc, log: logger.With("handler", "items")}
}

type captureRequest struct {
	Content string `json:"content"`
}

type itemResponse struct {
	ID          string    `json:"id"`
	Content     string    `json:"content"`
	Status      string    `json:"status"`
	RewardValue int       `json:"rewardValue"`
	CreatedAt   time.Time `json:"createdAt"`
}

type accrualResponse struct {
	RewardGranted int    `json:"rewardGranted"`
	XP            int64  `json:"xp"`
	Level         int    `json:"level"`
	Streak        int    `json:"streak"`
	LeveledUp     bool   `json:"leveledUp"`
	LastActive    string `json:"lastActiveDate,omitempty"`
}

type captureResponse struct {
	Item    itemResponse     `json:"item"`
	Accrual *accrualResponse `json:"accrual,omitempty"`
}

type resolveResponse struct {
	ItemID      string           `json:"itemId"`
	Critical    bool             `json:"critical"`
	RewardValue int              `json:"rewardValue"`
	Accrual     *accrualResponse `json:"accrual,omitempty"`
}

// Capture handles POST /api/items.
func (h *ItemHandler) Capture(w http.ResponseWriter, r *http.Request) {
	var req captureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Capture(r.Context(), item.CaptureInput{Content: req.Content})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, captureResponse{
		Item:    toItemResponse(result.Item),
		Accrual: toAccrualResponse(result.Accrual),
	})
}

// List handles GET /api/items. Active items only, newest first.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ActiveItems(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]itemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it))
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

// Resolve handles POST /api/items/{id}/resolve.
func (h *ItemHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathItemID(w, r)
	if !ok {
		return
	}

	result, err := h.svc.Resolve(r.Context(), item.MutateInput{ItemID: itemID})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, resolveResponse{
		ItemID:      result.ItemID,
		Critical:    result.Critical,
		RewardValue: result.RewardValue,
		Accrual:     toAccrualResponse(result.Accrual),
	})
}

// Discard handles POST /api/items/{id}/discard.
func (h *ItemHandler) Discard(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathItemID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Discard(r.Context(), item.MutateInput{ItemID: itemID}); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "discarded"})
}

func pathItemID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid item id")
		return uuid.Nil, false
	}
	return id, true
}

func toItemResponse(it *domain.Item) itemResponse {
	return itemResponse{
		ID:          it.ID.String(),
		Content:     it.Content,
		Status:      it.Status.String(),
		RewardValue: it.RewardValue,
		CreatedAt:   it.CreatedAt,
	}
}

func toAccrualResponse(a *game.AccrualResult) *accrualResponse {
	if a == nil {
		return nil
	}
	resp := &accrualResponse{
		RewardGranted: a.RewardGranted,
		XP:            a.Stats.CurrentXP,
		Level:         a.Stats.CurrentLevel,
		Streak:        a.Stats.StreakCount,
		LeveledUp:     a.LeveledUp,
	}
	if a.Stats.LastActiveDate != nil {
		resp.LastActive = a.Stats.LastActiveDate.Format(time.DateOnly)
	}
	return resp
}
