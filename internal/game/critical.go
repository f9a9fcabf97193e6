package game

import "math/rand/v2"

// ChanceSource yields values in [0,1). It exists so tests can force both
// outcomes of the critical draw deterministically.
type ChanceSource interface {
	Float64() float64
}

// systemSource draws from the process-wide PRNG.
type systemSource struct{}

func (systemSource) Float64() float64 { return rand.Float64() }

// SystemSource returns the default, non-deterministic chance source.
func SystemSource() ChanceSource { return systemSource{} }

// Roller decides whether a resolution is a critical outcome.
type Roller struct {
	chance float64
	src    ChanceSource
}

// NewRoller creates a Roller with the given critical probability.
// A nil src falls back to the system source.
func NewRoller(chance float64, src ChanceSource) *Roller {
	if src == nil {
		src = SystemSource()
	}
	return &Roller{chance: chance, src: src}
}

// Roll draws once. Reward shaping only — no determinism requirement.
func (r *Roller) Roll() bool {
	return r.src.Float64() < r.chance
}
