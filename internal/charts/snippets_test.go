package charts

import (
	"reflect"
	"strings"
	"testing"
)

func lineFigure() Figure {
	return Figure{
		ID:    "chart-test",
		Title: "Test Chart",
		XAxis: Axis{Title: "X"},
		YAxis: Axis{Title: "Y"},
		Traces: []Trace{{
			Name: "Series",
			Kind: KindLine,
			X:    []float64{0, 1, 2},
			Y:    []float64{1, 4, 9},
		}},
	}
}

func TestSnippet(t *testing.T) {
	sn, err := Snippet(lineFigure())
	if err != nil {
		t.Fatalf("Snippet failed: %v", err)
	}

	if sn.ID != "chart-test" || sn.Title != "Test Chart" {
		t.Errorf("Identity not carried: %q / %q", sn.ID, sn.Title)
	}
	if !strings.Contains(sn.Div, `id="chart-test"`) {
		t.Errorf("Div missing element id: %s", sn.Div)
	}
	if !strings.Contains(sn.Script, "echarts.init") {
		t.Errorf("Script missing init call: %s", sn.Script)
	}
	if !strings.Contains(sn.HTML, echartsCDN) {
		t.Error("Standalone HTML missing the ECharts CDN tag")
	}
	if !strings.Contains(sn.HTML, sn.Div) || !strings.Contains(sn.HTML, sn.Script) {
		t.Error("Standalone HTML does not embed div and script")
	}
}

func TestSnippetDeterministic(t *testing.T) {
	first, err := Snippet(lineFigure())
	if err != nil {
		t.Fatalf("Snippet failed: %v", err)
	}
	second, err := Snippet(lineFigure())
	if err != nil {
		t.Fatalf("Snippet failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("Equal figures produced different snippets")
	}
}

func TestSnippetNotice(t *testing.T) {
	fig := Figure{ID: "chart-empty", Title: "Empty", Notice: "No data in the selected range."}
	sn, err := Snippet(fig)
	if err != nil {
		t.Fatalf("Snippet failed: %v", err)
	}

	if sn.Script != "" {
		t.Errorf("Notice snippet should carry no script, got %q", sn.Script)
	}
	if !strings.Contains(sn.Div, "No data in the selected range.") {
		t.Errorf("Notice text missing from div: %s", sn.Div)
	}
	if !strings.Contains(sn.Div, "chart-notice") {
		t.Error("Notice div missing its class")
	}
}

func TestSnippetLegendOnlyForMultipleTraces(t *testing.T) {
	single, _ := Snippet(lineFigure())
	if strings.Contains(single.Script, `"legend"`) {
		t.Error("Single-trace chart should not declare a legend")
	}

	fig := lineFigure()
	fig.Traces = append(fig.Traces, Trace{Name: "Other", Kind: KindLine, X: []float64{0, 1}, Y: []float64{2, 3}})
	multi, _ := Snippet(fig)
	if !strings.Contains(multi.Script, `"legend"`) {
		t.Error("Multi-trace chart should declare a legend")
	}
}

func TestSnippetStackedBand(t *testing.T) {
	fig := Figure{
		ID:    "chart-band",
		Title: "Band",
		Traces: []Trace{
			{Name: "Center", Kind: KindLine, Labels: []string{"a", "b"}, Y: []float64{2, 3}},
			{Kind: KindLine, Labels: []string{"a", "b"}, Y: []float64{1, 2}, Stack: "band"},
			{Name: "Upper", Kind: KindLine, Labels: []string{"a", "b"}, Y: []float64{2, 2}, Stack: "band", Fill: true, FillColor: "rgba(46, 204, 113, 0.4)"},
		},
	}
	sn, err := Snippet(fig)
	if err != nil {
		t.Fatalf("Snippet failed: %v", err)
	}

	if !strings.Contains(sn.Script, `"stack":"band"`) {
		t.Errorf("Stacked traces missing stack key: %s", sn.Script)
	}
	if !strings.Contains(sn.Script, `"areaStyle"`) {
		t.Error("Filled band trace missing areaStyle")
	}
	// The unnamed stack base stays out of the legend.
	if !strings.Contains(sn.Script, `"legend"`) {
		t.Fatal("Two named traces should declare a legend")
	}
	if !strings.Contains(sn.Script, `"data":["Center","Upper"]`) {
		t.Errorf("Legend should list only named traces: %s", sn.Script)
	}
}

func TestSnippetCategoricalAxis(t *testing.T) {
	fig := Figure{
		ID:    "chart-bars",
		Title: "Bars",
		Traces: []Trace{{
			Name:   "Frequency",
			Kind:   KindBar,
			Labels: []string{"5.50", "6.50"},
			Y:      []float64{3, 1},
		}},
	}
	sn, err := Snippet(fig)
	if err != nil {
		t.Fatalf("Snippet failed: %v", err)
	}
	if !strings.Contains(sn.Script, `"category"`) {
		t.Error("Labeled trace should produce a category x axis")
	}
	if !strings.Contains(sn.Script, "5.50") {
		t.Error("Axis labels missing from option payload")
	}
}

func TestBinValues(t *testing.T) {
	labels, counts := binValues([]float64{5.0, 5.1, 5.9, 6.0}, 2)
	if len(labels) != 2 || len(counts) != 2 {
		t.Fatalf("Expected 2 bins, got %d/%d", len(labels), len(counts))
	}
	// Extent is [5.0, 6.0], bins [5.0,5.5) and [5.5,6.0]; the maximum
	// falls inside the closed last bin.
	if counts[0] != 2 || counts[1] != 2 {
		t.Errorf("Counts = %v, want [2 2]", counts)
	}
	if labels[0] != "5.25" || labels[1] != "5.75" {
		t.Errorf("Labels = %v, want bin centers", labels)
	}

	// Identical values collapse to a single bin.
	labels, counts = binValues([]float64{7.0, 7.0, 7.0}, 30)
	if len(labels) != 1 || counts[0] != 3 {
		t.Errorf("Degenerate extent: labels=%v counts=%v", labels, counts)
	}
}
