package item

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/braindump-backend/internal/domain"
	"github.com/heartmarshall/braindump-backend/pkg/ctxutil"
)

// Resolve marks a captured item as completed and accrues its reward.
// The critical draw scales the base reward before the streak multiplier.
// A transition that finds the item missing or already terminal fails
// without touching stats.
func (s *Service) Resolve(ctx context.Context, input MutateInput) (*ResolveResult, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.items.UpdateStatus(ctx, ownerID, input.ItemID, domain.StatusCaptured, domain.StatusResolved); err != nil {
		return nil, fmt.Errorf("resolve item: %w", err)
	}

	critical := s.roller.Roll()
	reward := s.cfg.ResolveReward
	if critical {
		reward = s.cfg.CriticalReward
	}

	accrual := s.accrue(ctx, ownerID, reward)

	s.log.InfoContext(ctx, "item resolved",
		slog.String("owner_id", ownerID.String()),
		slog.String("item_id", input.ItemID.String()),
		slog.Bool("critical", critical),
		slog.Int("reward", reward),
	)

	return &ResolveResult{
		ItemID:      input.ItemID.String(),
		Critical:    critical,
		RewardValue: reward,
		Accrual:     accrual,
	}, nil
}
