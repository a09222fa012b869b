package view

import (
	"github.com/finpanel/finpanel-client/internal/types"
)

// Chart is a live handle owned by the renderer. Exactly one instance per
// slot may be alive; the previous instance must be disposed before a
// replacement is created.
type Chart interface {
	Dispose()
}

// ChartFactory builds chart instances from a spec. The drawing itself is
// the embedder's concern; the renderer only manages data and lifecycle.
type ChartFactory interface {
	New(spec ChartSpec) Chart
}

type ChartKind string

const (
	ChartDoughnut ChartKind = "doughnut"
	ChartBar      ChartKind = "bar"
)

type ChartSeries struct {
	Label  string
	Values []float64
}

type ChartSpec struct {
	Kind   ChartKind
	Labels []string
	Series []ChartSeries
}

// CategoryChartSpec keeps only the topN largest-first slices the backend
// already ordered, mirroring the panel's five-slice doughnut.
func CategoryChartSpec(totals []types.CategoryTotal, topN int) ChartSpec {
	if topN > 0 && len(totals) > topN {
		totals = totals[:topN]
	}

	labels := make([]string, 0, len(totals))
	values := make([]float64, 0, len(totals))
	for _, t := range totals {
		labels = append(labels, t.Category)
		v, _ := t.Total.Float64()
		values = append(values, v)
	}

	return ChartSpec{
		Kind:   ChartDoughnut,
		Labels: labels,
		Series: []ChartSeries{{Values: values}},
	}
}

func CashFlowChartSpec(points []types.CashFlowPoint) ChartSpec {
	labels := make([]string, 0, len(points))
	inflow := make([]float64, 0, len(points))
	outflow := make([]float64, 0, len(points))

	for _, p := range points {
		labels = append(labels, p.Month)

		in, _ := p.Inflow.Float64()
		out, _ := p.Outflow.Float64()
		inflow = append(inflow, in)
		outflow = append(outflow, out)
	}

	return ChartSpec{
		Kind:   ChartBar,
		Labels: labels,
		Series: []ChartSeries{
			{Label: "Entradas", Values: inflow},
			{Label: "Saídas", Values: outflow},
		},
	}
}
