package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/utils/ptr"
	"sigs.k8s.io/yaml"

	"github.com/mihai-snyk/extremum-search/apis/search/v1alpha1"
	"github.com/mihai-snyk/extremum-search/pkg/extremum"
	"github.com/mihai-snyk/extremum-search/pkg/extremum/framework"
	"github.com/mihai-snyk/extremum-search/pkg/extremum/storage"
	"github.com/mihai-snyk/extremum-search/pkg/extremum/util"
)

type runOptions struct {
	configFile string
	plotOut    string

	a                   float64
	b                   float64
	displayAdjustment   float64
	optimum             string
	generations         int
	populationSize      int
	mutationIntensity   float64
	mutationProbability float64
	function            string
	seed                uint64
}

func (o *runOptions) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.configFile, "config", "", "SearchRun YAML or JSON file; flags override its values")
	fs.StringVar(&o.plotOut, "plot-out", "", "write an HTML scatter of every generation to this path")

	fs.Float64Var(&o.a, "a", v1alpha1.DefaultA, "lower bound of the initial sampling interval")
	fs.Float64Var(&o.b, "b", v1alpha1.DefaultB, "upper bound of the initial sampling interval")
	fs.Float64Var(&o.displayAdjustment, "display-adjustment", v1alpha1.DefaultDisplayAdjustment,
		"widen the plotted curve by this much on both sides")
	fs.StringVar(&o.optimum, "optimum", string(v1alpha1.DefaultOptimum), "Minimum or Maximum")
	fs.IntVar(&o.generations, "generations", v1alpha1.DefaultGenerations, "number of generations to simulate")
	fs.IntVar(&o.populationSize, "population-size", v1alpha1.DefaultPopulationSize, "number of agents per generation")
	fs.Float64Var(&o.mutationIntensity, "mutation-intensity", v1alpha1.DefaultMutationIntensity,
		"magnitude of a mutation step")
	fs.Float64Var(&o.mutationProbability, "mutation-probability", v1alpha1.DefaultMutationProbability,
		"per-agent probability of mutating each generation")
	fs.StringVar(&o.function, "function", v1alpha1.DefaultFunction, "objective function name (see the functions command)")
	fs.Uint64Var(&o.seed, "seed", 0, "seed for a reproducible run; unset uses a random source")
}

func newRunCommand(so *storeOptions) *cobra.Command {
	o := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a search and store its record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			run, err := o.searchRun(cmd.Flags())
			if err != nil {
				return err
			}
			return o.run(cmd, so, run)
		},
	}
	o.addFlags(cmd.Flags())
	return cmd
}

// searchRun reads the config file, if any, and applies the flags the user set.
func (o *runOptions) searchRun(fs *pflag.FlagSet) (v1alpha1.SearchRun, error) {
	var run v1alpha1.SearchRun
	if o.configFile != "" {
		data, err := os.ReadFile(o.configFile)
		if err != nil {
			return run, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.UnmarshalStrict(data, &run); err != nil {
			return run, fmt.Errorf("decode config %s: %w", o.configFile, err)
		}
	}

	spec := &run.Spec
	if fs.Changed("a") {
		spec.A = ptr.To(o.a)
	}
	if fs.Changed("b") {
		spec.B = ptr.To(o.b)
	}
	if fs.Changed("display-adjustment") {
		spec.DisplayAdjustment = ptr.To(o.displayAdjustment)
	}
	if fs.Changed("optimum") {
		opt, err := framework.ParseOptimum(o.optimum)
		if err != nil {
			return run, err
		}
		spec.Optimum = v1alpha1.Optimum(opt)
	}
	if fs.Changed("generations") {
		spec.Generations = ptr.To(o.generations)
	}
	if fs.Changed("population-size") {
		spec.PopulationSize = ptr.To(o.populationSize)
	}
	if fs.Changed("mutation-intensity") {
		spec.MutationIntensity = ptr.To(o.mutationIntensity)
	}
	if fs.Changed("mutation-probability") {
		spec.MutationProbability = ptr.To(o.mutationProbability)
	}
	if fs.Changed("function") {
		spec.Function = o.function
	}
	if fs.Changed("seed") {
		spec.Seed = ptr.To(o.seed)
	}
	return run, nil
}

func (o *runOptions) run(cmd *cobra.Command, so *storeOptions, run v1alpha1.SearchRun) error {
	ctx := cmd.Context()
	store, closeStore, err := openStore(ctx, so)
	if err != nil {
		return err
	}
	defer closeStore()

	runner := extremum.New(extremum.WithStore(store))
	record, runErr := runner.Run(ctx, run)
	if record.ID == "" {
		return runErr
	}

	printRecord(cmd.OutOrStdout(), record)
	if runErr != nil {
		return runErr
	}

	if o.plotOut != "" {
		if err := writePlot(o.plotOut, record); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "plot written to %s\n", o.plotOut)
	}
	return nil
}

func printRecord(w io.Writer, record storage.RunRecord) {
	spec := record.Run.Spec
	status := record.Run.Status
	fmt.Fprintf(w, "run %s: %s of %s on [%g, %g]\n",
		record.ID, spec.Optimum, spec.Function, ptr.Deref(spec.A, 0), ptr.Deref(spec.B, 0))

	for _, s := range record.Summaries {
		fmt.Fprintf(w, "generation %3d  best f(%.6f) = %.6f  mean %.6f  stddev %.6f  spread %.6f\n",
			s.Generation, s.BestPosition, s.BestFitness, s.MeanFitness, s.StdDevFitness, s.Spread)
	}

	if status.Phase == v1alpha1.SearchRunPhaseFailed {
		fmt.Fprintf(w, "failed: %s\n", status.Message)
	} else if status.Best != nil {
		fmt.Fprintf(w, "best: f(%.6f) = %.6f in generation %d\n",
			status.Best.Position, status.Best.Fitness, status.BestGeneration)
	}
	fmt.Fprintf(w, "evaluations: %s\n", humanize.Comma(status.Evaluations))
}

func writePlot(path string, record storage.RunRecord) error {
	problem, err := extremum.ProblemFor(record.Run.Spec)
	if err != nil {
		return err
	}
	a, b := problem.Bounds()
	return util.WriteHistoryPlot(path, record.History, util.PlotOptions{
		Title:             record.Run.Name,
		Function:          problem.Name(),
		Objective:         problem.Objective(),
		A:                 a,
		B:                 b,
		DisplayAdjustment: ptr.Deref(record.Run.Spec.DisplayAdjustment, 0),
	})
}
