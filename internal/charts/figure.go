// Package charts turns derived views into declarative chart
// descriptions and renders those descriptions as embeddable ECharts
// snippets, standalone pages, or PNG files. Builders are pure: the
// same view and theme always produce the same figure.
package charts

// TraceKind selects the visual encoding of a trace.
type TraceKind string

const (
	KindLine    TraceKind = "line"
	KindScatter TraceKind = "scatter"
	KindBar     TraceKind = "bar"
)

// Trace is one visual series: coordinate pairs plus encoding hints.
type Trace struct {
	Name   string
	Kind   TraceKind
	X      []float64 // numeric x values; ignored when Labels is set
	Labels []string  // categorical x values
	Y      []float64
	Sizes  []float64 // per-point symbol sizes, scatter only

	Color     string
	Fill      bool // area fill; stacked traces fill to the trace below
	FillColor string
	Width     float64 // line width, 0 means renderer default

	// Stack names a stacking group. Stacked traces hold deltas, not
	// absolute values: each plots on top of the previous trace in the
	// group, which turns a filled stacked trace into a band between
	// two series. Only the snippet renderer draws bands; the PNG and
	// standalone exporters skip stacked traces.
	Stack string
}

// Axis describes one axis. Nil bounds mean autoscale.
type Axis struct {
	Title string
	Min   *float64
	Max   *float64
}

// Figure is a renderer-agnostic chart description: traces, axes and
// annotations, or a notice when there is nothing to draw.
type Figure struct {
	ID       string
	Title    string
	Subtitle string
	XAxis    Axis
	YAxis    Axis
	Traces   []Trace
	Notice   string // non-empty means "no data": render the text, not traces
	Height   int    // pixel hint for the embedding container
}

// Theme is the immutable visual configuration handed to builders and
// page assembly at construction time. Nothing reads style from globals.
type Theme struct {
	Background string
	Card       string
	Text       string
	Muted      string
	Main       string
	Accent     string
	Bullish    string
	Bearish    string
	PriceLine  string

	// SeriesColors are assigned to categorical series (iris species)
	// in order, wrapping around when there are more series.
	SeriesColors []string
}

// DefaultTheme returns the dashboard's stock palette.
func DefaultTheme() Theme {
	return Theme{
		Background: "#FAEDDA",
		Card:       "#FFFFFF",
		Text:       "#2C3E50",
		Muted:      "#7F8C8D",
		Main:       "#3C2F80",
		Accent:     "#26B6C6",
		Bullish:    "rgba(46, 204, 113, 0.4)",
		Bearish:    "rgba(231, 76, 60, 0.4)",
		PriceLine:  "#95A5A6",
		SeriesColors: []string{
			"#6CA9A3", // soft teal
			"#E69F00", // ochre
			"#5D6D7E", // slate blue
			"#C0392B",
			"#8E44AD",
		},
	}
}

// SeriesColor returns the i-th categorical color.
func (t Theme) SeriesColor(i int) string {
	if len(t.SeriesColors) == 0 {
		return t.Main
	}
	return t.SeriesColors[i%len(t.SeriesColors)]
}

func floatPtr(v float64) *float64 { return &v }
