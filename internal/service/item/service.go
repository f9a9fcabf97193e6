// Package item implements the item lifecycle: capture into the inbox,
// resolve with an experience reward, or discard without one.
package item

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/braindump-backend/internal/config"
	"github.com/heartmarshall/braindump-backend/internal/domain"
	"github.com/heartmarshall/braindump-backend/internal/game"
)

type itemRepo interface {
	Insert(ctx context.Context, ownerID uuid.UUID, content string, rewardValue int) (*domain.Item, error)
	GetByID(ctx context.Context, ownerID, itemID uuid.UUID) (*domain.Item, error)
	ListActive(ctx context.Context, ownerID uuid.UUID) ([]*domain.Item, error)
	CountActive(ctx context.Context, ownerID uuid.UUID) (int, error)
	UpdateStatus(ctx context.Context, ownerID, itemID uuid.UUID, from, to domain.ItemStatus) error
}

// accruer feeds resolved and captured rewards into the gamification engine.
type accruer interface {
	Accrue(ctx context.Context, ownerID uuid.UUID, baseReward int) (*game.AccrualResult, error)
}

// Service provides item lifecycle operations.
type Service struct {
	items   itemRepo
	rewards accruer
	roller  *game.Roller
	cfg     config.GameConfig
	log     *slog.Logger
}

// NewService creates a new item service. src may be nil to use the system
// random source for critical draws.
func NewService(
	log *slog.Logger,
	items itemRepo,
	rewards accruer,
	cfg config.GameConfig,
	src game.ChanceSource,
) *Service {
	return &Service{
		items:   items,
		rewards: rewards,
		roller:  game.NewRoller(cfg.CriticalChance, src),
		cfg:     cfg,
		log:     log.With("service", "item"),
	}
}

// accrue applies a reward and logs failures instead of propagating them:
// an accrual failure never unwinds the item transition that triggered it.
func (s *Service) accrue(ctx context.Context, ownerID uuid.UUID, baseReward int) *game.AccrualResult {
	res, err := s.rewards.Accrue(ctx, ownerID, baseReward)
	if err != nil {
		s.log.ErrorContext(ctx, "accrual failed",
			slog.String("owner_id", ownerID.String()),
			slog.Int("base_reward", baseReward),
			slog.Any("error", err),
		)
		return nil
	}
	return res
}
