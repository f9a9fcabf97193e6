package stats

import (
	"context"
	"fmt"

	"github.com/heartmarshall/braindump-backend/internal/domain"
	"github.com/heartmarshall/braindump-backend/internal/game"
	"github.com/heartmarshall/braindump-backend/pkg/ctxutil"
)

// StatsView is a stats snapshot enriched with the level-progress numbers
// the display layer needs.
type StatsView struct {
	Stats    domain.UserStats
	XPFloor  int64
	XPCeil   int64
	Progress float64
}

// Stats returns the current owner's stats, creating the bootstrap row on
// first read.
func (s *Service) Stats(ctx context.Context) (*StatsView, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	stats, err := s.stats.GetOrCreate(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}

	return &StatsView{
		Stats:    *stats,
		XPFloor:  game.XPFloor(stats.CurrentLevel),
		XPCeil:   game.XPCeil(stats.CurrentLevel),
		Progress: game.Progress(stats.CurrentXP),
	}, nil
}
