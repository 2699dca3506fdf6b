// Package stats condenses generation snapshots into per-generation numbers.
package stats

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/mihai-snyk/extremum-search/pkg/extremum/framework"
)

// GenerationSummary describes one ranked generation.
type GenerationSummary struct {
	Generation int `json:"generation"`

	BestPosition float64 `json:"bestPosition"`
	BestFitness  float64 `json:"bestFitness"`
	// WorstFitness is the last discarded agent's fitness.
	WorstFitness float64 `json:"worstFitness"`

	MeanFitness   float64 `json:"meanFitness"`
	StdDevFitness float64 `json:"stdDevFitness"`
	MeanPosition  float64 `json:"meanPosition"`
	// Spread is max(position) - min(position).
	Spread float64 `json:"spread"`
	// Cutoff is the fitness of the worst survivor.
	Cutoff float64 `json:"cutoff"`
}

// Summarize reduces one snapshot. The snapshot must be ranked, as the engine
// produces it.
func Summarize(gen int, g framework.GenerationData) (GenerationSummary, error) {
	all := make([]framework.Agent, 0, g.Size())
	all = append(all, g.Survivors...)
	all = append(all, g.Discarded...)
	if len(all) == 0 {
		return GenerationSummary{}, fmt.Errorf("generation %d is empty", gen)
	}

	fitness := make([]float64, len(all))
	positions := make([]float64, len(all))
	for i, a := range all {
		y, ok := a.Fitness()
		if !ok {
			return GenerationSummary{}, fmt.Errorf("generation %d agent %d: %w", gen, i, framework.ErrUnevaluated)
		}
		fitness[i] = y
		positions[i] = a.Position
	}

	mean, std := stat.MeanStdDev(fitness, nil)
	s := GenerationSummary{
		Generation:    gen,
		BestPosition:  all[0].Position,
		BestFitness:   fitness[0],
		WorstFitness:  fitness[len(fitness)-1],
		MeanFitness:   mean,
		StdDevFitness: std,
		MeanPosition:  stat.Mean(positions, nil),
		Spread:        floats.Max(positions) - floats.Min(positions),
	}
	if n := len(g.Survivors); n > 0 {
		s.Cutoff = fitness[n-1]
	}
	if len(all) == 1 {
		// MeanStdDev returns NaN for a single sample.
		s.StdDevFitness = 0
	}
	return s, nil
}

// SummarizeHistory summarizes every generation in order.
func SummarizeHistory(history []framework.GenerationData) ([]GenerationSummary, error) {
	out := make([]GenerationSummary, len(history))
	for i, g := range history {
		s, err := Summarize(i, g)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// BestOverall returns the best survivor across the whole history and the
// generation it was recorded in.
func BestOverall(history []framework.GenerationData, opt framework.Optimum) (framework.Agent, int, bool, error) {
	var (
		best    framework.Agent
		bestGen = -1
	)
	for i, g := range history {
		candidate, ok, err := framework.Best(g.Survivors, opt)
		if err != nil {
			return framework.Agent{}, 0, false, fmt.Errorf("generation %d: %w", i, err)
		}
		if !ok {
			continue
		}
		if bestGen < 0 {
			best, bestGen = candidate, i
			continue
		}
		c, err := framework.Compare(candidate, best, opt)
		if err != nil {
			return framework.Agent{}, 0, false, err
		}
		if c < 0 {
			best, bestGen = candidate, i
		}
	}
	return best, bestGen, bestGen >= 0, nil
}
