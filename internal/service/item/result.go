package item

import (
	"github.com/heartmarshall/braindump-backend/internal/domain"
	"github.com/heartmarshall/braindump-backend/internal/game"
)

// CaptureResult is the outcome of a capture: the stored item plus the
// capture accrual, when it succeeded. Accrual is nil if the experience
// write failed; the item is committed either way.
type CaptureResult struct {
	Item    *domain.Item
	Accrual *game.AccrualResult
}

// ResolveResult is the outcome of resolving an item. RewardValue is the
// base reward after the critical draw, before the streak multiplier.
type ResolveResult struct {
	ItemID      string
	Critical    bool
	RewardValue int
	Accrual     *game.AccrualResult
}
