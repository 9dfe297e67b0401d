package charts

import (
	"bytes"
	"fmt"

	echarts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Standalone renders a figure as a self-contained go-echarts HTML
// document, used for exported snapshots that must open without the
// dashboard server.
func Standalone(fig Figure) (string, error) {
	if fig.Notice != "" {
		return fmt.Sprintf("<html><body><p>%s</p></body></html>", fig.Notice), nil
	}
	if len(fig.Traces) == 0 {
		return "", fmt.Errorf("figure %s has no traces", fig.ID)
	}

	var buf bytes.Buffer
	var err error
	switch fig.Traces[0].Kind {
	case KindBar:
		err = renderStandaloneBar(fig, &buf)
	case KindScatter:
		err = renderStandaloneScatter(fig, &buf)
	default:
		err = renderStandaloneLine(fig, &buf)
	}
	if err != nil {
		return "", fmt.Errorf("render figure %s: %w", fig.ID, err)
	}
	return buf.String(), nil
}

func renderStandaloneLine(fig Figure, buf *bytes.Buffer) error {
	categorical := len(fig.Traces[0].Labels) > 0
	xType := "value"
	if categorical {
		xType = "category"
	}

	line := echarts.NewLine()
	line.SetGlobalOptions(standaloneGlobalOptions(fig, xType)...)
	if categorical {
		line.SetXAxis(fig.Traces[0].Labels)
	}

	var scatters []Trace
	for _, tr := range fig.Traces {
		if tr.Stack != "" {
			continue
		}
		if tr.Kind == KindScatter {
			scatters = append(scatters, tr)
			continue
		}
		data := make([]opts.LineData, len(tr.Y))
		for i, v := range tr.Y {
			if categorical {
				data[i] = opts.LineData{Value: v}
			} else {
				// Each trace carries its own x values on a value axis.
				data[i] = opts.LineData{Value: []float64{tr.X[i], v}}
			}
		}
		line.AddSeries(tr.Name, data)
	}

	if len(scatters) > 0 {
		overlay := echarts.NewScatter()
		for _, tr := range scatters {
			overlay.AddSeries(tr.Name, scatterData(tr, categorical))
		}
		line.Overlap(overlay)
	}
	return line.Render(buf)
}

func renderStandaloneScatter(fig Figure, buf *bytes.Buffer) error {
	categorical := len(fig.Traces[0].Labels) > 0
	xType := "value"
	if categorical {
		xType = "category"
	}

	scatter := echarts.NewScatter()
	scatter.SetGlobalOptions(standaloneGlobalOptions(fig, xType)...)
	if categorical {
		scatter.SetXAxis(fig.Traces[0].Labels)
	}
	for _, tr := range fig.Traces {
		scatter.AddSeries(tr.Name, scatterData(tr, categorical))
	}
	return scatter.Render(buf)
}

func renderStandaloneBar(fig Figure, buf *bytes.Buffer) error {
	bar := echarts.NewBar()
	bar.SetGlobalOptions(standaloneGlobalOptions(fig, "category")...)

	bar.SetXAxis(fig.Traces[0].Labels)
	for _, tr := range fig.Traces {
		data := make([]opts.BarData, len(tr.Y))
		for i, v := range tr.Y {
			data[i] = opts.BarData{Value: v}
		}
		bar.AddSeries(tr.Name, data)
	}
	return bar.Render(buf)
}

func scatterData(tr Trace, categorical bool) []opts.ScatterData {
	data := make([]opts.ScatterData, len(tr.Y))
	for i, v := range tr.Y {
		point := opts.ScatterData{SymbolSize: 8}
		if categorical {
			point.Value = v
		} else {
			point.Value = []float64{tr.X[i], v}
		}
		if len(tr.Sizes) == len(tr.Y) {
			point.SymbolSize = int(tr.Sizes[i])
		}
		data[i] = point
	}
	return data
}

func standaloneGlobalOptions(fig Figure, xType string) []echarts.GlobalOpts {
	return []echarts.GlobalOpts{
		echarts.WithInitializationOpts(opts.Initialization{
			Theme:  types.ThemeWesteros,
			Width:  "900px",
			Height: "500px",
		}),
		echarts.WithTitleOpts(opts.Title{
			Title:    fig.Title,
			Subtitle: fig.Subtitle,
		}),
		echarts.WithXAxisOpts(opts.XAxis{Name: fig.XAxis.Title, Type: xType}),
		echarts.WithYAxisOpts(opts.YAxis{Name: fig.YAxis.Title}),
	}
}
