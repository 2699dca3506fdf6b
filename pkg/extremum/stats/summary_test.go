package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihai-snyk/extremum-search/pkg/extremum/framework"
)

func agent(x, y float64) framework.Agent {
	return framework.NewEvaluatedAgent(x, y)
}

func TestSummarize(t *testing.T) {
	g := framework.GenerationData{
		Survivors: []framework.Agent{agent(1, 1), agent(2, 2)},
		Discarded: []framework.Agent{agent(3, 3), agent(6, 6)},
	}

	s, err := Summarize(4, g)
	require.NoError(t, err)

	assert.Equal(t, 4, s.Generation)
	assert.Equal(t, 1.0, s.BestPosition)
	assert.Equal(t, 1.0, s.BestFitness)
	assert.Equal(t, 6.0, s.WorstFitness)
	assert.Equal(t, 2.0, s.Cutoff)
	assert.InDelta(t, 3.0, s.MeanFitness, 1e-12)
	assert.InDelta(t, 3.0, s.MeanPosition, 1e-12)
	assert.Equal(t, 5.0, s.Spread)
	// Sample standard deviation of {1,2,3,6}.
	assert.InDelta(t, 2.160246899, s.StdDevFitness, 1e-9)
}

func TestSummarizeRejectsUnevaluated(t *testing.T) {
	g := framework.GenerationData{
		Survivors: []framework.Agent{agent(1, 1)},
		Discarded: []framework.Agent{framework.NewAgent(2)},
	}
	_, err := Summarize(0, g)
	assert.ErrorIs(t, err, framework.ErrUnevaluated)

	_, err = Summarize(0, framework.GenerationData{})
	assert.Error(t, err)
}

func TestSummarizeHistory(t *testing.T) {
	history := []framework.GenerationData{
		{Survivors: []framework.Agent{agent(1, 1)}, Discarded: []framework.Agent{agent(2, 2)}},
		{Survivors: []framework.Agent{agent(0.5, 0.5)}, Discarded: []framework.Agent{agent(1, 1)}},
	}
	out, err := SummarizeHistory(history)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 1, out[1].Generation)
	assert.Equal(t, 0.5, out[1].BestFitness)
}

func TestBestOverall(t *testing.T) {
	history := []framework.GenerationData{
		{Survivors: []framework.Agent{agent(1, 5)}, Discarded: []framework.Agent{agent(2, 9)}},
		{Survivors: []framework.Agent{agent(3, 2)}, Discarded: []framework.Agent{agent(4, 7)}},
		{Survivors: []framework.Agent{agent(5, 4)}, Discarded: []framework.Agent{agent(6, 8)}},
	}

	best, gen, ok, err := BestOverall(history, framework.Minimum)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 3.0, best.Position)
	assert.Equal(t, 1, gen)

	// Discarded agents never count, even when they would win.
	best, gen, ok, err = BestOverall(history, framework.Maximum)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1.0, best.Position)
	assert.Equal(t, 0, gen)

	_, _, ok, err = BestOverall(nil, framework.Maximum)
	require.NoError(t, err)
	assert.False(t, ok)
}
