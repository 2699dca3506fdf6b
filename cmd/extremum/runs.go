package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/mihai-snyk/extremum-search/apis/search/v1alpha1"
	"github.com/mihai-snyk/extremum-search/pkg/extremum"
	"github.com/mihai-snyk/extremum-search/pkg/extremum/benchmarks"
	"github.com/mihai-snyk/extremum-search/pkg/extremum/stats"
)

func newRunsCommand(so *storeOptions) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List stored runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit <= 0 {
				return errors.New("limit must be > 0")
			}
			ctx := cmd.Context()
			store, closeStore, err := openStore(ctx, so)
			if err != nil {
				return err
			}
			defer closeStore()

			infos, err := extremum.New(extremum.WithStore(store)).List(ctx)
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no runs found")
				return nil
			}
			if len(infos) > limit {
				infos = infos[:limit]
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tFUNCTION\tOPTIMUM\tGENERATIONS\tPHASE\tCREATED")
			for _, info := range infos {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\t%s\n", info.ID, info.Name, info.Function,
					info.Optimum, info.Generations, info.Phase, humanize.Time(info.CreatedAt))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs to list")
	return cmd
}

// runDocument is what show prints: the run and its per-generation summaries.
type runDocument struct {
	v1alpha1.SearchRun `json:",inline"`
	Summaries          []stats.GenerationSummary `json:"summaries,omitempty"`
}

func newShowCommand(so *storeOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a stored run as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, closeStore, err := openStore(ctx, so)
			if err != nil {
				return err
			}
			defer closeStore()

			record, ok, err := extremum.New(extremum.WithStore(store)).Get(ctx, args[0])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("run %q not found", args[0])
			}

			out, err := yaml.Marshal(runDocument{SearchRun: record.Run, Summaries: record.Summaries})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func newFunctionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "functions",
		Short: "List the objective functions a run can search",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tDEFAULT INTERVAL")
			for _, p := range benchmarks.All() {
				a, b := p.Bounds()
				fmt.Fprintf(tw, "%s\t[%g, %g]\n", p.Name(), a, b)
			}
			return tw.Flush()
		},
	}
}
