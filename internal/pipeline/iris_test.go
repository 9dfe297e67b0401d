package pipeline

import (
	"math"
	"testing"

	"plotdash/internal/dataset"
)

func irisTable() dataset.IrisTable {
	return dataset.IrisTable{
		Rows: []dataset.IrisRow{
			{SepalLength: 5.1, SepalWidth: 3.5, PetalLength: 1.4, PetalWidth: 0.2, Species: "Iris-setosa"},
			{SepalLength: 4.9, SepalWidth: 3.0, PetalLength: 1.4, PetalWidth: 0.2, Species: "Iris-setosa"},
			{SepalLength: 7.0, SepalWidth: 3.2, PetalLength: 4.7, PetalWidth: 1.4, Species: "Iris-versicolor"},
			{SepalLength: 6.4, SepalWidth: 3.2, PetalLength: 4.5, PetalWidth: 1.5, Species: "Iris-versicolor"},
			{SepalLength: 6.3, SepalWidth: 3.3, PetalLength: 6.0, PetalWidth: 2.5, Species: "Iris-virginica"},
		},
		Species: []string{"Iris-setosa", "Iris-versicolor", "Iris-virginica"},
	}
}

func TestFilterIrisSelection(t *testing.T) {
	view := FilterIris(irisTable(), IrisParams{Species: []string{"Iris-setosa"}})

	if len(view.Rows) != 2 {
		t.Fatalf("Expected 2 setosa rows, got %d", len(view.Rows))
	}
	for _, row := range view.Rows {
		if row.Species != "Iris-setosa" {
			t.Errorf("Unexpected species %q in filtered view", row.Species)
		}
	}
	if len(view.Species) != 1 || view.Species[0] != "Iris-setosa" {
		t.Errorf("view.Species = %v, want [Iris-setosa]", view.Species)
	}
}

func TestFilterIrisEmptySelectionMeansAll(t *testing.T) {
	table := irisTable()

	for _, params := range []IrisParams{
		{},
		{Species: []string{"Iris-nonexistent"}},
	} {
		view := FilterIris(table, params)
		if len(view.Rows) != len(table.Rows) {
			t.Errorf("Params %v: expected all %d rows, got %d",
				params.Species, len(table.Rows), len(view.Rows))
		}
	}
}

func TestFilterIrisStats(t *testing.T) {
	view := FilterIris(irisTable(), IrisParams{Species: []string{"Iris-setosa"}})
	if view.Stats.Count != 2 {
		t.Errorf("Stats.Count = %d, want 2", view.Stats.Count)
	}
	if view.Stats.Min != 4.9 || view.Stats.Max != 5.1 {
		t.Errorf("Stats min/max = %.1f/%.1f, want 4.9/5.1", view.Stats.Min, view.Stats.Max)
	}
}

func TestPearson(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
		want float64
	}{
		{"perfect positive", []float64{1, 2, 3, 4}, []float64{2, 4, 6, 8}, 1},
		{"perfect negative", []float64{1, 2, 3, 4}, []float64{8, 6, 4, 2}, -1},
		{"zero variance", []float64{1, 1, 1}, []float64{1, 2, 3}, 0},
		{"too short", []float64{1}, []float64{2}, 0},
		{"length mismatch", []float64{1, 2}, []float64{1, 2, 3}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pearson(tt.x, tt.y)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Pearson = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStrongestCorrelation(t *testing.T) {
	view := FilterIris(irisTable(), IrisParams{})
	pair := StrongestCorrelation(view)

	if pair.A == "" || pair.B == "" {
		t.Fatal("Expected a named dimension pair")
	}
	if math.Abs(pair.R) > 1 {
		t.Errorf("Correlation out of bounds: %v", pair.R)
	}
	// Petal length and width move together across species; that pair
	// dominates in the real dataset and in this excerpt.
	if pair.A != "PetalLength" || pair.B != "PetalWidth" {
		t.Errorf("Strongest pair = %s vs %s (r=%.3f), want PetalLength vs PetalWidth",
			pair.A, pair.B, pair.R)
	}
}
