package game

import (
	"math"
	"time"

	"github.com/heartmarshall/braindump-backend/internal/domain"
)

// StreakBonus is the linear per-day multiplier bonus: each day of streak
// adds 10% to every reward.
const StreakBonus = 0.1

// AccrualResult is the outcome of applying a reward to a stats snapshot.
type AccrualResult struct {
	Stats         domain.UserStats
	RewardGranted int
	LeveledUp     bool
}

// Accrue applies baseReward to a stats snapshot on the given day and returns
// the new stats. Pure: the caller is responsible for serializing concurrent
// accruals per user and for persisting the result.
//
// Streak transitions over LastActiveDate:
//   - nil            → streak 1 (first ever accrual)
//   - same day       → streak unchanged
//   - yesterday      → streak + 1
//   - older          → streak 0; the breaking accrual does not restart the
//     streak at 1 — that only happens on the following day's accrual.
//   - in the future (clock skew) → treated as same day
func Accrue(stats domain.UserStats, baseReward int, today time.Time) AccrualResult {
	multiplier := 1 + StreakBonus*float64(stats.StreakCount)
	granted := int(math.Round(float64(baseReward) * multiplier))

	newXP := stats.CurrentXP + int64(granted)
	newLevel := Level(newXP)

	day := DateOnly(today)
	newStreak := stats.StreakCount
	if stats.LastActiveDate == nil {
		newStreak = 1
	} else {
		switch diff := DaysBetween(*stats.LastActiveDate, day); {
		case diff == 1:
			newStreak = stats.StreakCount + 1
		case diff > 1:
			newStreak = 0
		}
		// diff <= 0: same day or skew, keep streak
	}

	out := stats
	out.CurrentXP = newXP
	out.CurrentLevel = newLevel
	out.StreakCount = newStreak
	out.LastActiveDate = &day

	return AccrualResult{
		Stats:         out,
		RewardGranted: granted,
		LeveledUp:     newLevel > stats.CurrentLevel,
	}
}

// DateOnly truncates t to its calendar day in UTC.
func DateOnly(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from a to b.
// Both arguments are truncated to their UTC day first.
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)) / (24 * time.Hour))
}
