package charts

import (
	"encoding/json"
	"fmt"
)

const echartsCDN = `<script src="https://cdn.jsdelivr.net/npm/echarts@5.4.3/dist/echarts.min.js"></script>`

// ChartSnippet is an embeddable ECharts fragment. Div holds the root
// <div>, Script the init block, HTML the combined standalone snippet.
type ChartSnippet struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Div    string `json:"div"`
	Script string `json:"script"`
	HTML   string `json:"html"`
}

// Snippet renders a figure into an embeddable ECharts fragment. The
// option payload is marshaled from plain maps, so equal figures yield
// byte-identical snippets.
func Snippet(fig Figure) (ChartSnippet, error) {
	height := fig.Height
	if height == 0 {
		height = 400
	}

	if fig.Notice != "" {
		div := fmt.Sprintf(`<div id=%q class="chart-notice" style="height:%dpx;">%s</div>`, fig.ID, height, fig.Notice)
		return ChartSnippet{
			ID:    fig.ID,
			Title: fig.Title,
			Div:   div,
			HTML:  div,
		}, nil
	}

	option := buildOption(fig)
	optJSON, err := json.Marshal(option)
	if err != nil {
		return ChartSnippet{}, fmt.Errorf("marshal chart option for %s: %w", fig.ID, err)
	}

	div := fmt.Sprintf("<div id=\"%s\" style=\"width:100%%;height:%dpx;\"></div>", fig.ID, height)
	script := fmt.Sprintf(`<script>(function(){var el=document.getElementById('%s');if(!el)return;var c=echarts.init(el);var option=%s;c.setOption(option);window.addEventListener('resize',function(){c.resize();});})();</script>`, fig.ID, string(optJSON))
	html := fmt.Sprintf("%s\n<div class=\"chart-container\">\n\t<h3>%s</h3>\n\t%s\n</div>\n%s", echartsCDN, fig.Title, div, script)

	return ChartSnippet{ID: fig.ID, Title: fig.Title, Div: div, Script: script, HTML: html}, nil
}

// buildOption translates the renderer-agnostic figure into an ECharts
// option tree.
func buildOption(fig Figure) map[string]interface{} {
	option := map[string]interface{}{
		"tooltip": map[string]interface{}{"trigger": "axis"},
		"grid":    map[string]interface{}{"left": "8%", "right": "4%", "bottom": "10%", "containLabel": true},
	}

	title := map[string]interface{}{"text": fig.Title, "left": "center"}
	if fig.Subtitle != "" {
		title["subtext"] = fig.Subtitle
	}
	option["title"] = title

	// Unnamed traces (fill baselines) stay out of the legend.
	names := make([]string, 0, len(fig.Traces))
	for _, tr := range fig.Traces {
		if tr.Name != "" {
			names = append(names, tr.Name)
		}
	}
	if len(names) > 1 {
		option["legend"] = map[string]interface{}{"data": names, "bottom": 0}
	}

	option["xAxis"] = axisOption(fig.XAxis, fig.Traces, true)
	option["yAxis"] = axisOption(fig.YAxis, nil, false)

	series := make([]interface{}, 0, len(fig.Traces))
	for _, tr := range fig.Traces {
		series = append(series, seriesOption(tr))
	}
	option["series"] = series
	return option
}

func axisOption(axis Axis, traces []Trace, categoricalAllowed bool) map[string]interface{} {
	out := map[string]interface{}{"name": axis.Title}

	if categoricalAllowed && len(traces) > 0 && len(traces[0].Labels) > 0 {
		out["type"] = "category"
		out["data"] = traces[0].Labels
		return out
	}

	out["type"] = "value"
	if axis.Min != nil {
		out["min"] = *axis.Min
	}
	if axis.Max != nil {
		out["max"] = *axis.Max
	}
	return out
}

func seriesOption(tr Trace) map[string]interface{} {
	s := map[string]interface{}{
		"name": tr.Name,
		"type": string(tr.Kind),
	}
	if tr.Stack != "" {
		s["stack"] = tr.Stack
	}

	switch {
	case len(tr.Labels) > 0:
		// Categorical x: plain y values aligned with the axis labels.
		s["data"] = tr.Y
	case len(tr.Sizes) > 0:
		points := make([]interface{}, len(tr.Y))
		for i := range tr.Y {
			points[i] = map[string]interface{}{
				"value":      []float64{tr.X[i], tr.Y[i]},
				"symbolSize": tr.Sizes[i],
			}
		}
		s["data"] = points
	default:
		pairs := make([][]float64, len(tr.Y))
		for i := range tr.Y {
			pairs[i] = []float64{tr.X[i], tr.Y[i]}
		}
		s["data"] = pairs
	}

	if tr.Kind == KindLine {
		s["showSymbol"] = false
		line := map[string]interface{}{}
		if tr.Width > 0 {
			line["width"] = tr.Width
		}
		if tr.Color != "" {
			line["color"] = tr.Color
		}
		if len(line) > 0 {
			s["lineStyle"] = line
		}
		if tr.Fill {
			area := map[string]interface{}{}
			if tr.FillColor != "" {
				area["color"] = tr.FillColor
			}
			s["areaStyle"] = area
		}
	}
	if tr.Color != "" {
		s["itemStyle"] = map[string]interface{}{"color": tr.Color}
	}
	return s
}
