package framework

import (
	"fmt"
	"math"
)

// Agent is one candidate solution: a position on the real line and, once
// evaluated, the objective value at that position.
//
// Agents are plain values; copying one duplicates its state.
type Agent struct {
	Position float64

	fitness   float64
	evaluated bool
}

// NewAgent returns an unevaluated agent at position x.
func NewAgent(x float64) Agent {
	return Agent{Position: x}
}

// NewEvaluatedAgent builds an agent with a known fitness. Used when loading
// persisted snapshots.
func NewEvaluatedAgent(x, fitness float64) Agent {
	return Agent{Position: x, fitness: fitness, evaluated: true}
}

// Fitness returns the last evaluated objective value and whether the agent
// has been evaluated since its position last changed.
func (a Agent) Fitness() (float64, bool) {
	return a.fitness, a.evaluated
}

// Evaluated reports whether the fitness reflects the current position.
func (a Agent) Evaluated() bool {
	return a.evaluated
}

// MustFitness returns the fitness and panics on an unevaluated agent.
// Only for agents taken out of a GenerationData, which are always evaluated.
func (a Agent) MustFitness() float64 {
	if !a.evaluated {
		panic(fmt.Sprintf("agent at %v has not been evaluated", a.Position))
	}
	return a.fitness
}

// Evaluate sets the fitness to objective(Position). A NaN or infinite value
// cannot be ranked, so it leaves the agent unevaluated and returns an
// *EvaluationError.
func (a *Agent) Evaluate(objective ObjectiveFunc) error {
	y := objective(a.Position)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		a.evaluated = false
		return &EvaluationError{Position: a.Position, Value: y}
	}
	a.fitness = y
	a.evaluated = true
	return nil
}

// Mutate shifts the position by +intensity or -intensity (equally likely)
// when a uniform draw falls below probability. A shift invalidates the
// fitness; the agent must be evaluated again before ranking.
func (a *Agent) Mutate(rng Rand, intensity, probability float64) bool {
	if rng.Float64() >= probability {
		return false
	}
	if rng.Float64() >= 0.5 {
		a.Position += intensity
	} else {
		a.Position -= intensity
	}
	a.evaluated = false
	return true
}

// Crossover returns the unevaluated child at the midpoint of both parents.
func (a Agent) Crossover(other Agent) Agent {
	return NewAgent((a.Position + other.Position) / 2)
}

func (a Agent) String() string {
	if !a.evaluated {
		return fmt.Sprintf("{x=%g}", a.Position)
	}
	return fmt.Sprintf("{x=%g y=%g}", a.Position, a.fitness)
}

// CloneAgents copies a slice of agents.
func CloneAgents(agents []Agent) []Agent {
	out := make([]Agent, len(agents))
	copy(out, agents)
	return out
}
