package item

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/braindump-backend/internal/domain"
)

// CaptureInput holds the parameters for capturing an item.
type CaptureInput struct {
	Content string
}

// Validate rejects content that is empty after trimming. Length limits are
// checked by the service against its configuration.
func (i CaptureInput) Validate() error {
	if strings.TrimSpace(i.Content) == "" {
		return domain.NewValidationError("content", "required")
	}
	return nil
}

// MutateInput identifies the target of a resolve or discard.
type MutateInput struct {
	ItemID uuid.UUID
}

// Validate checks the target ID is present.
func (i MutateInput) Validate() error {
	if i.ItemID == uuid.Nil {
		return domain.NewValidationError("item_id", "required")
	}
	return nil
}
