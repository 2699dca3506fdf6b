package framework_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihai-snyk/extremum-search/pkg/extremum/framework"
)

func evaluated(t *testing.T, xs ...float64) []framework.Agent {
	t.Helper()
	out := make([]framework.Agent, len(xs))
	for i, x := range xs {
		out[i] = framework.NewAgent(x)
		require.NoError(t, out[i].Evaluate(identity))
	}
	return out
}

func positions(agents []framework.Agent) []float64 {
	out := make([]float64, len(agents))
	for i, a := range agents {
		out[i] = a.Position
	}
	return out
}

func TestRankDirection(t *testing.T) {
	pop := evaluated(t, 3, 1, 4, 1.5, 9)

	require.NoError(t, framework.Rank(pop, framework.Minimum))
	assert.Equal(t, []float64{1, 1.5, 3, 4, 9}, positions(pop))

	require.NoError(t, framework.Rank(pop, framework.Maximum))
	assert.Equal(t, []float64{9, 4, 3, 1.5, 1}, positions(pop))
}

func TestRankIsStableOnTies(t *testing.T) {
	flat := func(float64) float64 { return 0 }
	pop := []framework.Agent{framework.NewAgent(5), framework.NewAgent(2), framework.NewAgent(8)}
	for i := range pop {
		require.NoError(t, pop[i].Evaluate(flat))
	}

	require.NoError(t, framework.Rank(pop, framework.Maximum))
	assert.Equal(t, []float64{5, 2, 8}, positions(pop))
}

func TestRankRejectsUnevaluated(t *testing.T) {
	pop := evaluated(t, 2, 1)
	pop = append(pop, framework.NewAgent(0))

	err := framework.Rank(pop, framework.Minimum)
	assert.True(t, errors.Is(err, framework.ErrUnevaluated))
	assert.Equal(t, []float64{2, 1, 0}, positions(pop), "population must not be reordered on error")
}

func TestRankRejectsUnknownOptimum(t *testing.T) {
	assert.Error(t, framework.Rank(evaluated(t, 1), framework.Optimum("sideways")))
}

func TestBest(t *testing.T) {
	pop := evaluated(t, 3, -2, 7)

	best, ok, err := framework.Best(pop, framework.Minimum)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, -2.0, best.Position)

	best, _, err = framework.Best(pop, framework.Maximum)
	require.NoError(t, err)
	assert.Equal(t, 7.0, best.Position)

	_, ok, err = framework.Best(nil, framework.Maximum)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParseOptimum(t *testing.T) {
	for in, want := range map[string]framework.Optimum{
		"min": framework.Minimum, "Minimum": framework.Minimum,
		"max": framework.Maximum, "maximum": framework.Maximum,
	} {
		got, err := framework.ParseOptimum(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := framework.ParseOptimum("median")
	assert.Error(t, err)
}
