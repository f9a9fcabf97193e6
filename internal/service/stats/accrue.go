package stats

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/braindump-backend/internal/game"
)

// Accrue applies baseReward to the owner's stats. The snapshot is read under
// a row lock inside a transaction, so concurrent accruals for one owner are
// serialized and never stack on a stale snapshot.
func (s *Service) Accrue(ctx context.Context, ownerID uuid.UUID, baseReward int) (*game.AccrualResult, error) {
	if baseReward <= 0 {
		return nil, fmt.Errorf("base reward must be positive (got %d)", baseReward)
	}

	var result game.AccrualResult

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.stats.GetOrCreateForUpdate(txCtx, ownerID)
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}

		result = game.Accrue(*current, baseReward, s.now())

		if err := s.stats.Update(txCtx, result.Stats); err != nil {
			return fmt.Errorf("store stats: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("accrue: %w", err)
	}

	s.log.InfoContext(ctx, "experience accrued",
		slog.String("owner_id", ownerID.String()),
		slog.Int("reward", result.RewardGranted),
		slog.Int64("xp", result.Stats.CurrentXP),
		slog.Int("level", result.Stats.CurrentLevel),
		slog.Int("streak", result.Stats.StreakCount),
		slog.Bool("leveled_up", result.LeveledUp),
	)

	return &result, nil
}
