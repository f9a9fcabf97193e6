package domain

import (
	"time"

	"github.com/google/uuid"
)

// ItemStatus represents the lifecycle state of a captured item.
// Transitions are monotonic: captured → resolved or captured → discarded,
// never back.
type ItemStatus string

const (
	StatusCaptured  ItemStatus = "captured"
	StatusResolved  ItemStatus = "resolved"
	StatusDiscarded ItemStatus = "discarded"
)

func (s ItemStatus) String() string { return string(s) }

func (s ItemStatus) IsValid() bool {
	switch s {
	case StatusCaptured, StatusResolved, StatusDiscarded:
		return true
	}
	return false
}

// IsTerminal returns true once an item has left the active working set.
func (s ItemStatus) IsTerminal() bool {
	return s == StatusResolved || s == StatusDiscarded
}

// Item is a captured unit of text awaiting resolution or discard.
type Item struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Content string
	Status  ItemStatus
	// RewardValue is the base experience granted when the item is resolved.
	// Fixed at capture time; never altered retroactively.
	RewardValue int
	CreatedAt   time.Time
}

// IsActive reports whether the item is still in the owner's working set.
func (i *Item) IsActive() bool {
	return i.Status == StatusCaptured
}
