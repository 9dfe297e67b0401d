package charts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// PNGRenderer writes figures as PNG files for snapshot export.
type PNGRenderer struct {
	outputDir string
}

// NewPNGRenderer creates a renderer writing into outputDir.
func NewPNGRenderer(outputDir string) *PNGRenderer {
	return &PNGRenderer{outputDir: outputDir}
}

// RenderPNG writes the figure as <outputDir>/<figure-id>.png and
// returns the file path. Notice figures have nothing to draw and
// return an empty path.
func (r *PNGRenderer) RenderPNG(fig Figure) (string, error) {
	if fig.Notice != "" || len(fig.Traces) == 0 {
		return "", nil
	}
	if fig.Traces[0].Kind == KindBar {
		return r.renderBarPNG(fig)
	}
	return r.renderSeriesPNG(fig)
}

func (r *PNGRenderer) renderSeriesPNG(fig Figure) (string, error) {
	var series []chart.Series
	for _, tr := range fig.Traces {
		if tr.Stack != "" {
			// Band deltas only make sense stacked; skip them here.
			continue
		}
		xs := tr.X
		if len(tr.Labels) > 0 {
			// Categorical traces plot against their index.
			xs = make([]float64, len(tr.Y))
			for i := range xs {
				xs[i] = float64(i)
			}
		}

		style := chart.Style{
			StrokeColor: hexColor(tr.Color, chart.ColorBlue),
			StrokeWidth: 2,
		}
		if tr.Width > 0 {
			style.StrokeWidth = tr.Width
		}
		if tr.Kind == KindScatter {
			style.StrokeWidth = chart.Disabled
			style.DotColor = hexColor(tr.Color, chart.ColorBlue)
			style.DotWidth = 4
		}

		series = append(series, chart.ContinuousSeries{
			Name:    tr.Name,
			Style:   style,
			XValues: xs,
			YValues: tr.Y,
		})
	}

	graph := chart.Chart{
		Title: fig.Title,
		TitleStyle: chart.Style{
			FontSize:  16,
			FontColor: drawing.ColorBlack,
		},
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 70, Right: 20, Bottom: 60},
		},
		Width:  700,
		Height: 350,
		XAxis: chart.XAxis{
			Name:      fig.XAxis.Title,
			NameStyle: chart.Style{FontSize: 12},
			Style:     chart.Style{FontSize: 9},
		},
		YAxis: chart.YAxis{
			Name:      fig.YAxis.Title,
			NameStyle: chart.Style{FontSize: 12},
			Style:     chart.Style{FontSize: 10},
		},
		Series: series,
	}
	if fig.YAxis.Min != nil && fig.YAxis.Max != nil {
		graph.YAxis.Range = &chart.ContinuousRange{Min: *fig.YAxis.Min, Max: *fig.YAxis.Max}
	}

	return r.writePNG(fig.ID, func(f *os.File) error {
		return graph.Render(chart.PNG, f)
	})
}

func (r *PNGRenderer) renderBarPNG(fig Figure) (string, error) {
	tr := fig.Traces[0]
	bars := make([]chart.Value, len(tr.Y))
	for i, v := range tr.Y {
		label := ""
		if i < len(tr.Labels) {
			label = tr.Labels[i]
		}
		bars[i] = chart.Value{Label: label, Value: v}
	}

	graph := chart.BarChart{
		Title: fig.Title,
		TitleStyle: chart.Style{
			FontSize:  16,
			FontColor: drawing.ColorBlack,
		},
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 70, Right: 20, Bottom: 60},
		},
		Width:    700,
		Height:   350,
		BarWidth: 14,
		Bars:     bars,
	}

	return r.writePNG(fig.ID, func(f *os.File) error {
		return graph.Render(chart.PNG, f)
	})
}

func (r *PNGRenderer) writePNG(id string, render func(*os.File) error) (string, error) {
	filename := filepath.Join(r.outputDir, id+".png")
	f, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("failed to create chart file %s: %w", filename, err)
	}
	defer f.Close()

	if err := render(f); err != nil {
		return "", fmt.Errorf("failed to render chart %s: %w", id, err)
	}
	return filename, nil
}

// hexColor parses a #RRGGBB hint; anything else falls back.
func hexColor(s string, fallback drawing.Color) drawing.Color {
	if !strings.HasPrefix(s, "#") || len(s) != 7 {
		return fallback
	}
	return drawing.ColorFromHex(s[1:])
}
