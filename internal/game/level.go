// Package game implements the gamification rules: the leveling curve,
// the streak and experience accrual engine, and the critical-outcome draw.
// Everything here is pure; persistence and transport live elsewhere.
package game

import "math"

// Level maps cumulative experience to a level: floor(sqrt(xp/100)) + 1.
// Level(0) == 1 and the mapping is non-decreasing in xp.
func Level(xp int64) int {
	if xp < 0 {
		return 1
	}
	l := int(math.Sqrt(float64(xp)/100)) + 1
	// Guard against float rounding at exact square boundaries.
	for XPCeil(l) <= xp {
		l++
	}
	for l > 1 && XPFloor(l) > xp {
		l--
	}
	return l
}

// XPFloor returns the minimum experience required to be at level.
func XPFloor(level int) int64 {
	n := int64(level - 1)
	return n * n * 100
}

// XPCeil returns the experience at which level+1 is reached.
func XPCeil(level int) int64 {
	n := int64(level)
	return n * n * 100
}

// Progress returns the fraction of the current level completed, in [0,1].
func Progress(xp int64) float64 {
	l := Level(xp)
	floor := XPFloor(l)
	ceil := XPCeil(l)
	p := float64(xp-floor) / float64(ceil-floor)
	return math.Min(1, math.Max(0, p))
}
