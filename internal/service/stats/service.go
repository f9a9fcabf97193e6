// Package stats applies gamification accruals to persistent user stats and
// serves the current stats snapshot.
package stats

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/braindump-backend/internal/config"
	"github.com/heartmarshall/braindump-backend/internal/domain"
)

type statsRepo interface {
	GetOrCreate(ctx context.Context, ownerID uuid.UUID) (*domain.UserStats, error)
	GetOrCreateForUpdate(ctx context.Context, ownerID uuid.UUID) (*domain.UserStats, error)
	Update(ctx context.Context, stats domain.UserStats) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides stats reads and experience accruals.
type Service struct {
	stats statsRepo
	tx    txManager
	cfg   config.GameConfig
	log   *slog.Logger
	now   func() time.Time
}

// NewService creates a new stats service.
func NewService(
	log *slog.Logger,
	stats statsRepo,
	tx txManager,
	cfg config.GameConfig,
) *Service {
	return &Service{
		stats: stats,
		tx:    tx,
		cfg:   cfg,
		log:   log.With("service", "stats"),
		now:   time.Now,
	}
}
