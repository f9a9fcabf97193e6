package item

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/braindump-backend/internal/domain"
	"github.com/heartmarshall/braindump-backend/pkg/ctxutil"
)

// Capture stores a new item in the owner's inbox and accrues the capture
// reward. Content is trimmed; empty or whitespace-only content is rejected
// before any remote call.
func (s *Service) Capture(ctx context.Context, input CaptureInput) (*CaptureResult, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	content := strings.TrimSpace(input.Content)
	if len(content) > s.cfg.MaxContentLen {
		return nil, domain.NewValidationError("content", fmt.Sprintf("max %d characters", s.cfg.MaxContentLen))
	}

	count, err := s.items.CountActive(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("count active items: %w", err)
	}
	if count >= s.cfg.MaxActiveItems {
		return nil, domain.NewValidationError("inbox", fmt.Sprintf("inbox is full (max %d items)", s.cfg.MaxActiveItems))
	}

	item, err := s.items.Insert(ctx, ownerID, content, s.cfg.CaptureReward)
	if err != nil {
		return nil, fmt.Errorf("capture item: %w", err)
	}

	accrual := s.accrue(ctx, ownerID, s.cfg.CaptureReward)

	contentPreview := content
	if len(contentPreview) > 50 {
		contentPreview = contentPreview[:50]
	}

	s.log.InfoContext(ctx, "item captured",
		slog.String("owner_id", ownerID.String()),
		slog.String("item_id", item.ID.String()),
		slog.String("content", contentPreview),
	)

	return &CaptureResult{Item: item, Accrual: accrual}, nil
}
