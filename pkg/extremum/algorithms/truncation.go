package algorithms

import (
	"fmt"

	"github.com/go-logr/logr"
	"k8s.io/klog/v2"

	"github.com/mihai-snyk/extremum-search/pkg/extremum/framework"
)

const (
	Name = "TruncationGA"
)

// Config is everything one run needs. It is read-only to the engine.
type Config struct {
	// A and B bound the interval the initial population is sampled from.
	A float64
	B float64

	PopulationSize int
	Generations    int

	// MutationIntensity is the signed step a mutation adds or subtracts.
	MutationIntensity   float64
	MutationProbability float64

	Optimum   framework.Optimum
	Objective framework.ObjectiveFunc
}

// TruncationGA keeps the better half of each ranked generation, refills the
// population with midpoint children of random survivor pairs and applies
// additive mutation to everyone.
//
// A TruncationGA owns its population while Run executes and must not be shared
// between concurrent runs.
type TruncationGA struct {
	Config

	rng    framework.Rand
	logger logr.Logger
}

type Option func(*TruncationGA)

// WithRand replaces the process-wide random source.
func WithRand(rng framework.Rand) Option {
	return func(g *TruncationGA) {
		g.rng = rng
	}
}

func WithLogger(logger logr.Logger) Option {
	return func(g *TruncationGA) {
		g.logger = logger
	}
}

// NewTruncationGA validates cfg and returns an engine ready to Run.
func NewTruncationGA(cfg Config, opts ...Option) (*TruncationGA, error) {
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	g := &TruncationGA{
		Config: cfg,
		rng:    framework.GlobalRand{},
		logger: klog.Background(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Run is shorthand for NewTruncationGA followed by Run.
func Run(cfg Config, opts ...Option) ([]framework.GenerationData, error) {
	g, err := NewTruncationGA(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return g.Run()
}

func (g *TruncationGA) Name() string {
	return Name
}

// Initialize samples PopulationSize agents uniformly from [A, B] and
// evaluates each one.
func (g *TruncationGA) Initialize() ([]framework.Agent, error) {
	population := make([]framework.Agent, g.PopulationSize)
	for i := range population {
		population[i] = framework.NewAgent(g.A + g.rng.Float64()*(g.B-g.A))
		if err := population[i].Evaluate(g.Objective); err != nil {
			return nil, fmt.Errorf("initial agent %d: %w", i, err)
		}
		g.logger.V(5).Info("initial agent", "index", i, "agent", population[i])
	}
	return population, nil
}

// Split divides a ranked population into the best floor(n/2) agents and the
// rest. Both halves are copies.
func (g *TruncationGA) Split(ranked []framework.Agent) framework.GenerationData {
	cut := len(ranked) / 2
	return framework.GenerationData{
		Survivors: framework.CloneAgents(ranked[:cut]),
		Discarded: framework.CloneAgents(ranked[cut:]),
	}
}

// Reproduce carries the survivors over unchanged and appends evaluated
// midpoint children of two survivors drawn uniformly with replacement until
// the population is full again.
func (g *TruncationGA) Reproduce(survivors []framework.Agent) ([]framework.Agent, error) {
	if len(survivors) == 0 {
		return nil, fmt.Errorf("cannot reproduce from an empty survivor set")
	}
	next := make([]framework.Agent, len(survivors), g.PopulationSize)
	copy(next, survivors)
	for len(next) < g.PopulationSize {
		p1 := survivors[g.rng.IntN(len(survivors))]
		p2 := survivors[g.rng.IntN(len(survivors))]
		child := p1.Crossover(p2)
		if err := child.Evaluate(g.Objective); err != nil {
			return nil, fmt.Errorf("child of x=%v and x=%v: %w", p1.Position, p2.Position, err)
		}
		next = append(next, child)
	}
	return next, nil
}

// MutateAll applies the mutation operator to every agent, then re-evaluates
// every agent.
func (g *TruncationGA) MutateAll(population []framework.Agent) error {
	for i := range population {
		population[i].Mutate(g.rng, g.MutationIntensity, g.MutationProbability)
		if err := population[i].Evaluate(g.Objective); err != nil {
			return fmt.Errorf("mutated agent %d: %w", i, err)
		}
	}
	return nil
}

// Step ranks the population, snapshots the selection and builds the next
// generation from it. The snapshot reflects the population before
// reproduction and mutation.
func (g *TruncationGA) Step(population []framework.Agent) (framework.GenerationData, []framework.Agent, error) {
	if err := framework.Rank(population, g.Optimum); err != nil {
		return framework.GenerationData{}, nil, err
	}
	snapshot := g.Split(population)

	next, err := g.Reproduce(snapshot.Survivors)
	if err != nil {
		return framework.GenerationData{}, nil, err
	}
	if err := g.MutateAll(next); err != nil {
		return framework.GenerationData{}, nil, err
	}
	return snapshot, next, nil
}

// Run executes the configured number of generations and returns one snapshot
// per generation in order.
func (g *TruncationGA) Run() ([]framework.GenerationData, error) {
	history := make([]framework.GenerationData, 0, g.Generations)
	if g.Generations == 0 {
		return history, nil
	}

	population, err := g.Initialize()
	if err != nil {
		return nil, err
	}

	for gen := 0; gen < g.Generations; gen++ {
		snapshot, next, err := g.Step(population)
		if err != nil {
			return nil, fmt.Errorf("generation %d: %w", gen, err)
		}
		history = append(history, snapshot)
		population = next

		if g.logger.V(4).Enabled() {
			best := snapshot.Survivors[0]
			g.logger.V(4).Info("generation ranked", "algorithm", g.Name(), "generation", gen,
				"bestPosition", best.Position, "bestFitness", best.MustFitness())
		}
	}
	return history, nil
}
