package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserStats holds the per-user gamification state: cumulative experience,
// the cached level derived from it, and the daily streak.
// CurrentXP is monotonically non-decreasing; CurrentLevel must always equal
// the level derived from CurrentXP.
type UserStats struct {
	OwnerID      uuid.UUID
	CurrentXP    int64
	CurrentLevel int
	StreakCount  int
	// LastActiveDate is the calendar day (no time component, UTC) of the
	// last accrual. Nil before the first accrual.
	LastActiveDate *time.Time
	UpdatedAt      time.Time
}

// NewUserStats returns the bootstrap row for a user with no stats yet:
// level 1, zero experience, zero streak, no active date.
func NewUserStats(ownerID uuid.UUID) UserStats {
	return UserStats{
		OwnerID:      ownerID,
		CurrentXP:    0,
		CurrentLevel: 1,
		StreakCount:  0,
	}
}
