package charts

import (
	"strings"
	"testing"
)

func TestStandaloneLine(t *testing.T) {
	html, err := Standalone(lineFigure())
	if err != nil {
		t.Fatalf("Standalone failed: %v", err)
	}
	if !strings.Contains(html, "Test Chart") {
		t.Error("Title missing from document")
	}
	if !strings.Contains(html, "Series") {
		t.Error("Series name missing from document")
	}
}

func TestStandaloneLineOverlaysScatter(t *testing.T) {
	fig := Figure{
		ID:    "chart-mixed",
		Title: "Mixed",
		Traces: []Trace{
			{Name: "Signal", Kind: KindLine, X: []float64{0, 1, 2, 3}, Y: []float64{0, 1, 0, -1}},
			{Name: "Peaks", Kind: KindScatter, X: []float64{1}, Y: []float64{1}},
		},
	}
	html, err := Standalone(fig)
	if err != nil {
		t.Fatalf("Standalone failed: %v", err)
	}
	// Marker traces survive export alongside the line.
	for _, name := range []string{"Signal", "Peaks"} {
		if !strings.Contains(html, name) {
			t.Errorf("Series %q missing from document", name)
		}
	}
	// Numeric traces plot on a value axis as (x, y) pairs, so each
	// series keeps its own x values.
	if !strings.Contains(html, `"value"`) {
		t.Error("Numeric figure should use a value x axis")
	}
}

func TestStandaloneSkipsStackedTraces(t *testing.T) {
	fig := Figure{
		ID:    "chart-band",
		Title: "Band",
		Traces: []Trace{
			{Name: "Center", Kind: KindLine, Labels: []string{"a", "b"}, Y: []float64{2, 3}},
			{Kind: KindLine, Labels: []string{"a", "b"}, Y: []float64{1, 2}, Stack: "band"},
			{Name: "Upper", Kind: KindLine, Labels: []string{"a", "b"}, Y: []float64{2, 2}, Stack: "band", Fill: true},
		},
	}
	html, err := Standalone(fig)
	if err != nil {
		t.Fatalf("Standalone failed: %v", err)
	}
	if !strings.Contains(html, "Center") {
		t.Error("Unstacked trace missing from document")
	}
	if strings.Contains(html, "Upper") {
		t.Error("Stacked delta trace should not be exported")
	}
}

func TestStandaloneNotice(t *testing.T) {
	fig := Figure{ID: "chart-empty", Notice: "No data in the selected range."}
	html, err := Standalone(fig)
	if err != nil {
		t.Fatalf("Standalone failed: %v", err)
	}
	if !strings.Contains(html, "No data in the selected range.") {
		t.Error("Notice text missing from document")
	}
}

func TestStandaloneNoTraces(t *testing.T) {
	if _, err := Standalone(Figure{ID: "chart-bare"}); err == nil {
		t.Error("Figure without traces or notice should error")
	}
}
