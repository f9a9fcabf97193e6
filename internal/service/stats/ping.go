package stats

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/braindump-backend/internal/domain"
	"github.com/heartmarshall/braindump-backend/internal/game"
	"github.com/heartmarshall/braindump-backend/pkg/ctxutil"
)

// Ping grants the capture reward without creating an item. Used by the
// quick-capture tag tap: the engagement itself is rewarded.
func (s *Service) Ping(ctx context.Context) (*game.AccrualResult, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	result, err := s.Accrue(ctx, ownerID, s.cfg.CaptureReward)
	if err != nil {
		return nil, fmt.Errorf("ping accrual: %w", err)
	}

	s.log.InfoContext(ctx, "quick-capture ping",
		slog.String("owner_id", ownerID.String()),
		slog.Int("reward", result.RewardGranted),
	)

	return result, nil
}
