package extremum

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/validation/field"
	"k8s.io/klog/v2"
	"k8s.io/utils/clock"

	"github.com/mihai-snyk/extremum-search/apis/search/v1alpha1"
	"github.com/mihai-snyk/extremum-search/pkg/extremum/algorithms"
	"github.com/mihai-snyk/extremum-search/pkg/extremum/framework"
	"github.com/mihai-snyk/extremum-search/pkg/extremum/metrics"
	"github.com/mihai-snyk/extremum-search/pkg/extremum/stats"
	"github.com/mihai-snyk/extremum-search/pkg/extremum/storage"
)

const (
	Name = "Extremum"
)

// Runner turns SearchRun documents into engine runs and keeps their records.
// Store and metrics are optional.
type Runner struct {
	store   storage.Store
	metrics *metrics.PrometheusMetrics
	clock   clock.PassiveClock
	newRand func(seed *uint64) framework.Rand
	newID   func() string
}

type Option func(*Runner)

func WithStore(store storage.Store) Option {
	return func(r *Runner) { r.store = store }
}

func WithMetrics(m *metrics.PrometheusMetrics) Option {
	return func(r *Runner) { r.metrics = m }
}

func WithClock(c clock.PassiveClock) Option {
	return func(r *Runner) { r.clock = c }
}

// WithRandFactory overrides how a run's random source is built from its seed.
func WithRandFactory(f func(seed *uint64) framework.Rand) Option {
	return func(r *Runner) { r.newRand = f }
}

func WithIDGenerator(f func() string) Option {
	return func(r *Runner) { r.newID = f }
}

func New(opts ...Option) *Runner {
	r := &Runner{
		clock:   clock.RealClock{},
		newRand: SeededRand,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SeededRand returns a PCG source for a seed, or the process-wide source when
// seed is nil.
func SeededRand(seed *uint64) framework.Rand {
	if seed == nil {
		return framework.GlobalRand{}
	}
	return rand.New(rand.NewPCG(*seed, *seed))
}

// ConfigFor builds the engine configuration from a defaulted spec.
func ConfigFor(spec v1alpha1.SearchRunSpec, problem framework.Problem) algorithms.Config {
	a, b := problem.Bounds()
	return algorithms.Config{
		A:                   a,
		B:                   b,
		PopulationSize:      deref(spec.PopulationSize),
		Generations:         deref(spec.Generations),
		MutationIntensity:   deref(spec.MutationIntensity),
		MutationProbability: deref(spec.MutationProbability),
		Optimum:             framework.Optimum(spec.Optimum),
		Objective:           problem.Objective(),
	}
}

// Run defaults and validates the document, runs the engine to completion and
// returns the record. When the objective produces a value that cannot be
// ranked the record has phase Failed and the error is returned alongside it.
// Configuration errors return no record and wrap
// framework.ErrInvalidConfiguration.
func (r *Runner) Run(ctx context.Context, in v1alpha1.SearchRun) (storage.RunRecord, error) {
	logger := klog.FromContext(ctx).WithName(Name)
	if err := ctx.Err(); err != nil {
		return storage.RunRecord{}, err
	}

	run := in.DeepCopy()
	v1alpha1.SetDefaults_SearchRun(run)
	run.Status = v1alpha1.SearchRunStatus{}

	problem, err := ProblemFor(run.Spec)
	if err != nil {
		return storage.RunRecord{}, fmt.Errorf("%w: %v", framework.ErrInvalidConfiguration,
			field.Invalid(field.NewPath("spec", "function"), run.Spec.Function, err.Error()))
	}
	run.Spec.Function = problem.Name()

	var evaluations int64
	objective := problem.Objective()
	cfg := ConfigFor(run.Spec, problem)
	cfg.Objective = func(x float64) float64 {
		evaluations++
		return objective(x)
	}
	if errs := algorithms.ValidateConfig(cfg, field.NewPath("spec")); len(errs) > 0 {
		return storage.RunRecord{}, fmt.Errorf("%w: %v", framework.ErrInvalidConfiguration, errs.ToAggregate())
	}

	ga, err := algorithms.NewTruncationGA(cfg,
		algorithms.WithRand(r.newRand(run.Spec.Seed)),
		algorithms.WithLogger(logger.WithValues("function", problem.Name())))
	if err != nil {
		return storage.RunRecord{}, err
	}

	id := r.newID()
	if run.Name == "" {
		run.Name = id
	}
	logger.V(2).Info("starting search run", "id", id, "function", problem.Name(), "optimum", cfg.Optimum,
		"populationSize", cfg.PopulationSize, "generations", cfg.Generations)

	start := r.clock.Now()
	history, runErr := ga.Run()
	end := r.clock.Now()

	record := storage.RunRecord{
		ID:        id,
		CreatedAt: start,
		Run:       *run,
		History:   history,
	}
	record.Run.Status.StartTime = &metav1.Time{Time: start}
	record.Run.Status.CompletionTime = &metav1.Time{Time: end}
	record.Run.Status.Evaluations = evaluations

	if runErr != nil {
		record.History = nil
		record.Run.Status.Phase = v1alpha1.SearchRunPhaseFailed
		record.Run.Status.Message = runErr.Error()
		logger.Error(runErr, "search run failed", "id", id)
	} else if err := summarize(&record, cfg.Optimum); err != nil {
		return storage.RunRecord{}, err
	}

	r.recordMetrics(record, end.Sub(start))

	if r.store != nil {
		if err := r.store.SaveRun(ctx, record); err != nil {
			return record, errors.Join(runErr, fmt.Errorf("save run %s: %w", id, err))
		}
	}

	if runErr == nil {
		logger.V(2).Info("search run finished", "id", id, "evaluations", evaluations, "duration", end.Sub(start))
	}
	return record, runErr
}

// Get loads a stored run.
func (r *Runner) Get(ctx context.Context, id string) (storage.RunRecord, bool, error) {
	if r.store == nil {
		return storage.RunRecord{}, false, errors.New("runner has no store")
	}
	return r.store.GetRun(ctx, id)
}

// List returns stored runs, newest first.
func (r *Runner) List(ctx context.Context) ([]storage.RunInfo, error) {
	if r.store == nil {
		return nil, errors.New("runner has no store")
	}
	return r.store.ListRuns(ctx)
}

func summarize(record *storage.RunRecord, opt framework.Optimum) error {
	summaries, err := stats.SummarizeHistory(record.History)
	if err != nil {
		return err
	}
	record.Summaries = summaries
	record.Run.Status.Phase = v1alpha1.SearchRunPhaseSucceeded

	best, gen, ok, err := stats.BestOverall(record.History, opt)
	if err != nil {
		return err
	}
	if ok {
		record.Run.Status.Best = &v1alpha1.AgentValue{Position: best.Position, Fitness: best.MustFitness()}
		record.Run.Status.BestGeneration = gen
	}
	return nil
}

func (r *Runner) recordMetrics(record storage.RunRecord, d time.Duration) {
	if r.metrics == nil {
		return
	}
	spec := record.Run.Spec
	status := record.Run.Status
	r.metrics.RecordRun(spec.Function, string(spec.Optimum), string(status.Phase),
		d, len(record.History), status.Evaluations)
	if status.Best != nil {
		r.metrics.RecordBest(spec.Function, string(spec.Optimum), status.Best.Fitness)
	}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
