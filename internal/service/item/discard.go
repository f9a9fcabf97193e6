package item

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/braindump-backend/internal/domain"
	"github.com/heartmarshall/braindump-backend/pkg/ctxutil"
)

// Discard removes a captured item from the active set without granting
// experience. Same terminal-state failure semantics as Resolve.
func (s *Service) Discard(ctx context.Context, input MutateInput) error {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.items.UpdateStatus(ctx, ownerID, input.ItemID, domain.StatusCaptured, domain.StatusDiscarded); err != nil {
		return fmt.Errorf("discard item: %w", err)
	}

	s.log.InfoContext(ctx, "item discarded",
		slog.String("owner_id", ownerID.String()),
		slog.String("item_id", input.ItemID.String()),
	)

	return nil
}
