package framework

import (
	"fmt"
	"math/rand/v2"
)

// Optimum is the direction the search prefers when ranking agents.
type Optimum string

const (
	// Minimum ranks lower fitness first.
	Minimum Optimum = "Minimum"
	// Maximum ranks higher fitness first.
	Maximum Optimum = "Maximum"
)

// ParseOptimum accepts the canonical names and their lowercase / short forms.
func ParseOptimum(s string) (Optimum, error) {
	switch s {
	case "Minimum", "minimum", "min":
		return Minimum, nil
	case "Maximum", "maximum", "max":
		return Maximum, nil
	default:
		return "", fmt.Errorf("unknown optimum %q, want Minimum or Maximum", s)
	}
}

// ObjectiveFunc is the one-dimensional function being searched.
// It must be pure: the same position always yields the same value.
type ObjectiveFunc func(float64) float64

// Rand is the entropy the engine draws from. *rand.Rand from math/rand/v2
// satisfies it, so tests can pass a seeded source.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// GlobalRand draws from the process-wide math/rand/v2 source.
type GlobalRand struct{}

func (GlobalRand) Float64() float64 { return rand.Float64() }

func (GlobalRand) IntN(n int) int { return rand.IntN(n) }

// GenerationData is the ranked population of one generation, split into the
// half that is carried over and the half that is dropped.
type GenerationData struct {
	Survivors []Agent
	Discarded []Agent
}

// Size is the population size this snapshot describes.
func (g GenerationData) Size() int {
	return len(g.Survivors) + len(g.Discarded)
}

// Problem describes a named objective with a suggested sampling interval.
type Problem interface {
	Name() string
	Objective() ObjectiveFunc
	// Bounds returns the default [a, b] sampling interval.
	Bounds() (float64, float64)
}
