// Package dashboards assembles the four dashboard pages and maps
// widget values to recompute results. The event loop (HTTP layer) is
// elsewhere; everything here is a plain call from parameters to a
// rendered result.
package dashboards

import (
	"fmt"

	"plotdash/internal/charts"
	"plotdash/internal/dataset"
	"plotdash/internal/pipeline"
)

// Dashboard names, also the URL path segments.
const (
	NameIris       = "iris"
	NameQuakes     = "earthquakes"
	NameMarket     = "market"
	NameSimulation = "simulation"
)

// Names lists the dashboards in display order.
var Names = []string{NameIris, NameQuakes, NameMarket, NameSimulation}

// Data bundles the immutable tables loaded at startup. Shared
// read-only across all sessions; recomputes never mutate it.
type Data struct {
	Iris     dataset.IrisTable
	Quakes   dataset.QuakeTable
	Market   dataset.IndexTable
	Momentum dataset.MomentumTable
}

// Result is one recompute's output: embeddable chart snippets, the
// summary line, and derived statistics. Figures carry the underlying
// descriptions for renderers that need more than snippets (PNG export).
type Result struct {
	Snippets []charts.ChartSnippet `json:"snippets"`
	Summary  string                `json:"summary"`
	Stats    pipeline.Stats        `json:"stats"`
	Notice   string                `json:"notice,omitempty"`

	Figures []charts.Figure `json:"-"`
}

// Service turns parameters into results for every dashboard. The
// theme is fixed at construction; no ambient style state.
type Service struct {
	data  Data
	theme charts.Theme
}

// NewService creates the dashboard service over loaded data.
func NewService(data Data, theme charts.Theme) *Service {
	return &Service{data: data, theme: theme}
}

// Data exposes the loaded tables (read-only by convention).
func (s *Service) Data() Data { return s.data }

// Theme exposes the immutable theme.
func (s *Service) Theme() charts.Theme { return s.theme }

// IrisResult recomputes the iris dashboard.
func (s *Service) IrisResult(p pipeline.IrisParams) (Result, error) {
	view := pipeline.FilterIris(s.data.Iris, p)
	figures := charts.IrisMatrixFigures(view, s.theme)

	res := Result{
		Summary: charts.IrisInsight(view),
		Stats:   view.Stats,
		Notice:  view.Notice,
		Figures: figures,
	}
	return s.attachSnippets(res)
}

// QuakesResult recomputes the earthquake dashboard.
func (s *Service) QuakesResult(p pipeline.QuakeParams) (Result, error) {
	view := pipeline.FilterQuakes(s.data.Quakes, p)

	res := Result{
		Stats:  view.Stats,
		Notice: view.Notice,
		Figures: []charts.Figure{
			charts.QuakeMapFigure(view, s.theme),
			charts.QuakeHistogramFigure(view, s.theme),
		},
	}
	if view.Notice != "" {
		res.Summary = view.Notice
	} else {
		res.Summary = fmt.Sprintf("%d events in %d-%d. %s Mean magnitude %.2f.",
			view.Stats.Count, view.YearMin, view.YearMax, view.Headline(), view.Stats.Mean)
	}
	return s.attachSnippets(res)
}

// MarketResult recomputes the market dashboard.
func (s *Service) MarketResult(p pipeline.MarketParams) (Result, error) {
	view := pipeline.FilterIndex(s.data.Market, p)

	res := Result{
		Stats:   view.Stats,
		Notice:  view.Notice,
		Figures: []charts.Figure{charts.MarketFigure(view, s.theme)},
	}
	if view.Notice != "" {
		res.Summary = view.Notice
	} else {
		res.Summary = fmt.Sprintf("%d trading days, index %.0f-%.0f, mean %.0f.",
			view.Stats.Count, view.Stats.Min, view.Stats.Max, view.Stats.Mean)
	}
	return s.attachSnippets(res)
}

// SimulationResult recomputes the simulation dashboard. The momentum
// panel comes from the startup-seeded series and only depends on it.
func (s *Service) SimulationResult(p pipeline.SimParams) (Result, error) {
	view := pipeline.Simulate(p)
	peaks := pipeline.MomentumPeaks(s.data.Momentum)

	res := Result{
		Stats: view.Stats,
		Summary: fmt.Sprintf("y = %.1f*exp(-%.2f*t)*cos(%.1f*t), %d samples, range %.2f to %.2f.",
			view.Params.Amplitude, view.Params.Decay, view.Params.Frequency,
			view.Stats.Count, view.Stats.Min, view.Stats.Max),
		Figures: []charts.Figure{
			charts.SimulationFigure(view, s.theme),
			charts.MomentumFigure(s.data.Momentum, peaks, s.theme),
		},
	}
	return s.attachSnippets(res)
}

// DefaultResult recomputes a dashboard with its default parameters,
// used for first page render and snapshot export.
func (s *Service) DefaultResult(name string) (Result, error) {
	switch name {
	case NameIris:
		return s.IrisResult(pipeline.IrisParams{})
	case NameQuakes:
		lo, hi := s.data.Quakes.YearRange()
		return s.QuakesResult(pipeline.QuakeParams{YearMin: lo, YearMax: hi})
	case NameMarket:
		return s.MarketResult(pipeline.MarketParams{})
	case NameSimulation:
		return s.SimulationResult(pipeline.SimParams{
			Amplitude: pipeline.SimAmplitudeDefault,
			Frequency: pipeline.SimFrequencyDefault,
			Decay:     pipeline.SimDecayDefault,
		})
	}
	return Result{}, fmt.Errorf("unknown dashboard %q", name)
}

func (s *Service) attachSnippets(res Result) (Result, error) {
	for _, fig := range res.Figures {
		snippet, err := charts.Snippet(fig)
		if err != nil {
			return Result{}, err
		}
		res.Snippets = append(res.Snippets, snippet)
	}
	return res, nil
}
