package dashboards

import (
	"fmt"

	"plotdash/internal/pipeline"
)

// Descriptor is the static face of a dashboard: title, intro text and
// the controls it exposes. Widget bounds come from the loaded data,
// so descriptors are built per service, not package-level.
type Descriptor struct {
	Name   string
	Title  string
	Blurb  string // markdown
	Widget []Widget
}

// Descriptor returns the descriptor for one dashboard.
func (s *Service) Descriptor(name string) (Descriptor, error) {
	switch name {
	case NameIris:
		return s.irisDescriptor(), nil
	case NameQuakes:
		return s.quakesDescriptor(), nil
	case NameMarket:
		return s.marketDescriptor(), nil
	case NameSimulation:
		return s.simulationDescriptor(), nil
	}
	return Descriptor{}, fmt.Errorf("unknown dashboard %q", name)
}

// Descriptors returns all dashboards in display order.
func (s *Service) Descriptors() []Descriptor {
	descs := make([]Descriptor, 0, len(Names))
	for _, name := range Names {
		d, _ := s.Descriptor(name)
		descs = append(descs, d)
	}
	return descs
}

func (s *Service) irisDescriptor() Descriptor {
	options := make([]Option, 0, len(s.data.Iris.Species))
	for _, sp := range s.data.Iris.Species {
		options = append(options, Option{Value: sp, Checked: true})
	}
	return Descriptor{
		Name:  NameIris,
		Title: "Iris Explorer",
		Blurb: "Scatter matrix of the classic iris measurements. " +
			"Pick species to compare; histograms sit on the diagonal and " +
			"the strongest pairwise correlation is called out below the grid.",
		Widget: []Widget{{
			ID:      "species",
			Label:   "Species",
			Kind:    KindCheckboxSet,
			Options: options,
		}},
	}
}

func (s *Service) quakesDescriptor() Descriptor {
	lo, hi := s.data.Quakes.YearRange()
	return Descriptor{
		Name:  NameQuakes,
		Title: "Significant Earthquakes",
		Blurb: "Magnitude 5+ events plotted by epicenter, with a magnitude " +
			"distribution alongside. Narrow the years to see how activity shifts.",
		Widget: []Widget{{
			ID:          "year",
			Label:       "Years",
			Kind:        KindRangeSlider,
			Min:         float64(lo),
			Max:         float64(hi),
			Step:        1,
			LowDefault:  float64(lo),
			HighDefault: float64(hi),
		}},
	}
}

func (s *Service) marketDescriptor() Descriptor {
	widgets := []Widget{}
	if start, end := s.data.Market.DateRange(); !start.IsZero() {
		widgets = append(widgets, Widget{
			ID:       "date",
			Label:    "Dates",
			Kind:     KindDateRange,
			DateLow:  start.Format("2006-01-02"),
			DateHigh: end.Format("2006-01-02"),
		})
	}
	widgets = append(widgets,
		Widget{ID: "y_min", Label: "Y min", Kind: KindNumber, Step: 100},
		Widget{ID: "y_max", Label: "Y max", Kind: KindNumber, Step: 100},
	)
	return Descriptor{
		Name:  NameMarket,
		Title: "Dow Jones Index",
		Blurb: "Daily closes against a centered moving average. Green fill marks " +
			"days above the average, red below. Leave the Y bounds at zero to " +
			"autoscale; a min at or above the max is ignored.",
		Widget: widgets,
	}
}

func (s *Service) simulationDescriptor() Descriptor {
	return Descriptor{
		Name:  NameSimulation,
		Title: "Damped Oscillator",
		Blurb: "A damped cosine y = A·exp(-λ·t)·cos(f·t) evaluated live as the " +
			"sliders move, next to a fixed noisy-momentum series with its " +
			"significant peaks marked.",
		Widget: []Widget{
			{
				ID: "amplitude", Label: "Amplitude", Kind: KindSlider,
				Min: pipeline.SimAmplitudeMin, Max: pipeline.SimAmplitudeMax,
				Step: 0.1, Default: pipeline.SimAmplitudeDefault,
			},
			{
				ID: "frequency", Label: "Frequency", Kind: KindSlider,
				Min: pipeline.SimFrequencyMin, Max: pipeline.SimFrequencyMax,
				Step: 0.5, Default: pipeline.SimFrequencyDefault,
			},
			{
				ID: "decay", Label: "Decay", Kind: KindSlider,
				Min: pipeline.SimDecayMin, Max: pipeline.SimDecayMax,
				Step: 0.1, Default: pipeline.SimDecayDefault,
			},
		},
	}
}
