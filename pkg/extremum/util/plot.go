package util

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"gonum.org/v1/gonum/floats"

	"github.com/mihai-snyk/extremum-search/pkg/extremum/framework"
)

const defaultCurveSamples = 100

// PlotOptions describes the search space drawn behind each generation.
type PlotOptions struct {
	Title    string
	Function string

	Objective framework.ObjectiveFunc
	A         float64
	B         float64
	// DisplayAdjustment widens the drawn curve to [A-d, B+d]. It only affects
	// the picture.
	DisplayAdjustment float64
	// CurveSamples is the number of points the curve is sampled at.
	CurveSamples int
}

// PlotHistory renders one scatter chart per generation: the objective curve,
// the survivors and the discarded agents, with the sampling bounds marked.
func PlotHistory(w io.Writer, history []framework.GenerationData, o PlotOptions) error {
	if len(history) == 0 {
		return fmt.Errorf("history is empty for %s", o.Function)
	}
	if o.Objective == nil {
		return fmt.Errorf("objective is required to plot %s", o.Function)
	}

	curve := sampleCurve(o)
	page := components.NewPage()
	for gen, g := range history {
		page.AddCharts(generationChart(gen, len(history), g, curve, o))
	}
	return page.Render(w)
}

// WriteHistoryPlot renders the history to an HTML file at path.
func WriteHistoryPlot(path string, history []framework.GenerationData, o PlotOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := PlotHistory(f, history, o); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func generationChart(gen, total int, g framework.GenerationData, curve []opts.ScatterData, o PlotOptions) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s: generation %d of %d", o.Title, gen+1, total),
			Subtitle: o.Function,
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: o.Title,
			Theme:     types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "x",
			Type: "value",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "f(x)",
			Type: "value",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))

	scatter.AddSeries(o.Function, curve,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: "steelblue"}),
		charts.WithMarkLineNameXAxisItemOpts(
			opts.MarkLineNameXAxisItem{Name: "A", XAxis: o.A},
			opts.MarkLineNameXAxisItem{Name: "B", XAxis: o.B},
		)).
		AddSeries("Discarded", agentPoints(g.Discarded, "triangle"),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "red"})).
		AddSeries("Survivors", agentPoints(g.Survivors, "circle"),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: "green"})).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
			charts.WithEmphasisOpts(opts.Emphasis{}),
		)
	return scatter
}

func sampleCurve(o PlotOptions) []opts.ScatterData {
	n := o.CurveSamples
	if n < 2 {
		n = defaultCurveSamples
	}
	xs := floats.Span(make([]float64, n), o.A-o.DisplayAdjustment, o.B+o.DisplayAdjustment)
	points := make([]opts.ScatterData, 0, n)
	for _, x := range xs {
		points = append(points, opts.ScatterData{
			Value:      []float64{x, o.Objective(x)},
			Symbol:     "circle",
			SymbolSize: 2,
		})
	}
	return points
}

func agentPoints(agents []framework.Agent, symbol string) []opts.ScatterData {
	points := make([]opts.ScatterData, 0, len(agents))
	for _, a := range agents {
		y, ok := a.Fitness()
		if !ok {
			continue
		}
		points = append(points, opts.ScatterData{
			Value:      []float64{a.Position, y},
			Symbol:     symbol,
			SymbolSize: 8,
		})
	}
	return points
}
