package algorithms

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihai-snyk/extremum-search/pkg/extremum/benchmarks"
	"github.com/mihai-snyk/extremum-search/pkg/extremum/framework"
	"github.com/mihai-snyk/extremum-search/pkg/extremum/framework/fake"
)

func identity(x float64) float64 { return x }

func baseConfig() Config {
	return Config{
		A:                   0,
		B:                   10,
		PopulationSize:      10,
		Generations:         5,
		MutationIntensity:   0.5,
		MutationProbability: 0.1,
		Optimum:             framework.Minimum,
		Objective:           identity,
	}
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestRunPopulationInvariants(t *testing.T) {
	for _, size := range []int{2, 3, 4, 7, 10, 51} {
		cfg := baseConfig()
		cfg.PopulationSize = size
		cfg.Generations = 8

		history, err := Run(cfg, WithRand(seeded(uint64(size))))
		require.NoError(t, err)
		require.Len(t, history, cfg.Generations)

		for gen, g := range history {
			assert.Equal(t, size, g.Size(), "generation %d", gen)
			assert.Len(t, g.Survivors, size/2, "generation %d", gen)
			assert.Len(t, g.Discarded, size-size/2, "generation %d", gen)
		}
	}
}

func TestRunRankingDirection(t *testing.T) {
	for _, opt := range []framework.Optimum{framework.Minimum, framework.Maximum} {
		t.Run(string(opt), func(t *testing.T) {
			cfg := baseConfig()
			cfg.Optimum = opt
			cfg.Objective = benchmarks.SinPlusThird{}.Objective()
			cfg.Generations = 10

			history, err := Run(cfg, WithRand(seeded(7)))
			require.NoError(t, err)

			for gen, g := range history {
				for _, s := range g.Survivors {
					for _, d := range g.Discarded {
						if opt == framework.Maximum {
							assert.GreaterOrEqual(t, s.MustFitness(), d.MustFitness(), "generation %d", gen)
						} else {
							assert.LessOrEqual(t, s.MustFitness(), d.MustFitness(), "generation %d", gen)
						}
					}
				}
			}
		})
	}
}

func TestRunZeroGenerations(t *testing.T) {
	cfg := baseConfig()
	cfg.Generations = 0

	rng := &fake.Rand{}
	history, err := Run(cfg, WithRand(rng))
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}

func TestRunDeterministicUnderFixedSource(t *testing.T) {
	cfg := baseConfig()
	cfg.Generations = 20
	cfg.MutationProbability = 0.4

	first, err := Run(cfg, WithRand(seeded(42)))
	require.NoError(t, err)
	second, err := Run(cfg, WithRand(seeded(42)))
	require.NoError(t, err)

	if diff := cmp.Diff(first, second, cmp.AllowUnexported(framework.Agent{})); diff != "" {
		t.Errorf("histories differ (-first +second):\n%s", diff)
	}
}

// With four agents and no mutation the only Float64 draws are the initial
// positions followed by one mutation trigger per agent.
func TestRunMinimumIdentityScenario(t *testing.T) {
	cfg := baseConfig()
	cfg.PopulationSize = 4
	cfg.Generations = 1
	cfg.MutationProbability = 0

	rng := &fake.Rand{
		Floats: []float64{0.7, 0.1, 0.9, 0.3, 0.5, 0.5, 0.5, 0.5},
		Ints:   []int{0, 1, 1, 1},
	}
	history, err := Run(cfg, WithRand(rng))
	require.NoError(t, err)
	require.Len(t, history, 1)

	assert.InDeltaSlice(t, []float64{1, 3}, positionsOf(history[0].Survivors), 1e-12)
	assert.InDeltaSlice(t, []float64{7, 9}, positionsOf(history[0].Discarded), 1e-12)
	floats, ints := rng.Remaining()
	assert.Zero(t, floats)
	assert.Zero(t, ints)
}

func TestRunPairPopulationCarriesSurvivor(t *testing.T) {
	cfg := baseConfig()
	cfg.PopulationSize = 2
	cfg.Generations = 6
	cfg.MutationProbability = 0

	history, err := Run(cfg, WithRand(seeded(3)))
	require.NoError(t, err)

	for gen, g := range history {
		require.Len(t, g.Survivors, 1)
		require.Len(t, g.Discarded, 1)
		if gen == 0 {
			continue
		}
		// Both members of this generation descend from the previous survivor.
		prev := history[gen-1].Survivors[0].Position
		assert.Equal(t, prev, g.Survivors[0].Position, "generation %d", gen)
		assert.Equal(t, prev, g.Discarded[0].Position, "generation %d", gen)
	}
}

func TestMutateAllWithZeroProbabilityKeepsPositions(t *testing.T) {
	cfg := baseConfig()
	cfg.MutationProbability = 0
	g, err := NewTruncationGA(cfg, WithRand(seeded(11)))
	require.NoError(t, err)

	pop, err := g.Initialize()
	require.NoError(t, err)
	before := positionsOf(pop)

	require.NoError(t, g.MutateAll(pop))
	assert.Equal(t, before, positionsOf(pop))
	for _, a := range pop {
		assert.True(t, a.Evaluated())
	}
}

func TestReproduceCarriesSurvivorsAndAveragesParents(t *testing.T) {
	cfg := baseConfig()
	cfg.PopulationSize = 5
	rng := &fake.Rand{Ints: []int{0, 1, 1, 1, 0, 0}}
	g, err := NewTruncationGA(cfg, WithRand(rng))
	require.NoError(t, err)

	survivors := []framework.Agent{framework.NewEvaluatedAgent(2, 2), framework.NewEvaluatedAgent(4, 4)}
	next, err := g.Reproduce(survivors)
	require.NoError(t, err)

	assert.Equal(t, []float64{2, 4, 3, 4, 2}, positionsOf(next))
	for _, a := range next {
		assert.True(t, a.Evaluated())
	}
}

func TestReproduceRejectsEmptySurvivors(t *testing.T) {
	g, err := NewTruncationGA(baseConfig())
	require.NoError(t, err)
	_, err = g.Reproduce(nil)
	assert.Error(t, err)
}

func TestSplitCopiesHalves(t *testing.T) {
	g, err := NewTruncationGA(baseConfig())
	require.NoError(t, err)

	ranked := []framework.Agent{
		framework.NewEvaluatedAgent(1, 1),
		framework.NewEvaluatedAgent(2, 2),
		framework.NewEvaluatedAgent(3, 3),
	}
	snap := g.Split(ranked)
	ranked[0].Position = 100

	assert.Equal(t, []float64{1}, positionsOf(snap.Survivors))
	assert.Equal(t, []float64{2, 3}, positionsOf(snap.Discarded))
}

func TestRunAbortsOnNonComparableFitness(t *testing.T) {
	cfg := baseConfig()
	cfg.Objective = func(x float64) float64 {
		if x > 5 {
			return math.NaN()
		}
		return x
	}

	history, err := Run(cfg, WithRand(&fake.Rand{Floats: []float64{0.2, 0.8}}))
	var evalErr *framework.EvaluationError
	require.True(t, errors.As(err, &evalErr), "got %v", err)
	assert.Equal(t, 8.0, evalErr.Position)
	assert.Nil(t, history)
}

func TestRunAbortsWhenMutationLeavesDomain(t *testing.T) {
	cfg := baseConfig()
	cfg.PopulationSize = 2
	cfg.Generations = 3
	cfg.MutationProbability = 1
	cfg.MutationIntensity = 1
	cfg.Objective = math.Log // NaN below zero, -Inf at zero

	_, err := Run(cfg, WithRand(&fake.Rand{
		Floats: []float64{0.05, 0.06, 0.5, 0.1},
		Ints:   []int{0, 0},
	}))
	var evalErr *framework.EvaluationError
	require.True(t, errors.As(err, &evalErr), "got %v", err)
}

func TestMaximumConvergesOnLinearObjective(t *testing.T) {
	cfg := baseConfig()
	cfg.Optimum = framework.Maximum
	cfg.Generations = 30
	cfg.MutationProbability = 0.3
	cfg.MutationIntensity = 0.25

	history, err := Run(cfg, WithRand(seeded(99)))
	require.NoError(t, err)

	first := history[0].Survivors[0].MustFitness()
	last := history[len(history)-1].Survivors[0].MustFitness()
	assert.Greater(t, last, first)
}

func positionsOf(agents []framework.Agent) []float64 {
	out := make([]float64, len(agents))
	for i, a := range agents {
		out[i] = a.Position
	}
	return out
}
