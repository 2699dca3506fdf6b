package framework

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Compare orders a before b when a is the better agent under opt. Both agents
// must be evaluated with a finite fitness.
func Compare(a, b Agent, opt Optimum) (int, error) {
	fa, err := rankable(a)
	if err != nil {
		return 0, err
	}
	fb, err := rankable(b)
	if err != nil {
		return 0, err
	}
	switch opt {
	case Maximum:
		return cmp.Compare(fb, fa), nil
	case Minimum:
		return cmp.Compare(fa, fb), nil
	default:
		return 0, fmt.Errorf("unknown optimum %q", opt)
	}
}

// Rank sorts the population best-first under opt. Equal fitness keeps the
// incoming order. The population is left untouched if any agent cannot be
// ranked.
func Rank(population []Agent, opt Optimum) error {
	if opt != Minimum && opt != Maximum {
		return fmt.Errorf("unknown optimum %q", opt)
	}
	for i := range population {
		if _, err := rankable(population[i]); err != nil {
			return fmt.Errorf("agent %d: %w", i, err)
		}
	}
	slices.SortStableFunc(population, func(a, b Agent) int {
		// Both operands were checked above.
		c, _ := Compare(a, b, opt)
		return c
	})
	return nil
}

// Best returns the best agent under opt, or false for an empty slice.
func Best(agents []Agent, opt Optimum) (Agent, bool, error) {
	if len(agents) == 0 {
		return Agent{}, false, nil
	}
	best := agents[0]
	for _, a := range agents {
		c, err := Compare(a, best, opt)
		if err != nil {
			return Agent{}, false, err
		}
		if c < 0 {
			best = a
		}
	}
	return best, true, nil
}

func rankable(a Agent) (float64, error) {
	if !a.evaluated {
		return 0, fmt.Errorf("x=%v: %w", a.Position, ErrUnevaluated)
	}
	if math.IsNaN(a.fitness) || math.IsInf(a.fitness, 0) {
		return 0, &EvaluationError{Position: a.Position, Value: a.fitness}
	}
	return a.fitness, nil
}
