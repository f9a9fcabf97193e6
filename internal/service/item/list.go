package item

import (
	"context"
	"fmt"

	"github.com/heartmarshall/braindump-backend/internal/domain"
	"github.com/heartmarshall/braindump-backend/pkg/ctxutil"
)

// ActiveItems returns the owner's captured items, most recent first.
func (s *Service) ActiveItems(ctx context.Context) ([]*domain.Item, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	items, err := s.items.ListActive(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list active items: %w", err)
	}

	return items, nil
}
