package dataset

import (
	"math"
	"reflect"
	"testing"
)

func TestNewMomentumTableShape(t *testing.T) {
	table := NewMomentumTable(42, 300)

	if len(table.X) != 300 || len(table.Y) != 300 {
		t.Fatalf("Expected 300 samples, got %d/%d", len(table.X), len(table.Y))
	}
	if table.X[0] != 0 {
		t.Errorf("X[0] = %v, want 0", table.X[0])
	}
	if table.X[299] != 300 {
		t.Errorf("X[last] = %v, want 300", table.X[299])
	}
	for i := 1; i < len(table.X); i++ {
		if table.X[i] <= table.X[i-1] {
			t.Fatalf("X not strictly increasing at %d", i)
		}
	}
}

func TestNewMomentumTableDeterministic(t *testing.T) {
	first := NewMomentumTable(42, 300)
	second := NewMomentumTable(42, 300)
	if !reflect.DeepEqual(first, second) {
		t.Error("Same seed produced different series")
	}

	other := NewMomentumTable(43, 300)
	if reflect.DeepEqual(first.Y, other.Y) {
		t.Error("Different seeds produced identical series")
	}
}

func TestNewMomentumTableAmplitude(t *testing.T) {
	table := NewMomentumTable(42, 300)

	// Smoothed scaled noise stays well within a few standard
	// deviations; anything past that means the scaling broke.
	for i, y := range table.Y {
		if math.Abs(y) > 3 {
			t.Errorf("Y[%d] = %v, implausibly large", i, y)
		}
	}
}

func TestNewMomentumTableMinSize(t *testing.T) {
	table := NewMomentumTable(1, 0)
	if len(table.X) != 2 {
		t.Errorf("Expected degenerate size to clamp to 2, got %d", len(table.X))
	}
}

func TestMovingAverageSame(t *testing.T) {
	// Width 1 is the identity.
	in := []float64{1, 2, 3, 4}
	got := movingAverageSame(in, 1)
	if !reflect.DeepEqual(got, in) {
		t.Errorf("width=1: got %v, want %v", got, in)
	}

	// Constant input is a fixed point away from the edges ramp.
	flat := []float64{2, 2, 2, 2, 2, 2, 2, 2, 2, 2}
	smoothed := movingAverageSame(flat, 3)
	if len(smoothed) != len(flat) {
		t.Fatalf("Length changed: %d -> %d", len(flat), len(smoothed))
	}
	for i := 1; i < len(smoothed)-1; i++ {
		if math.Abs(smoothed[i]-2) > 1e-12 {
			t.Errorf("Interior sample %d = %v, want 2", i, smoothed[i])
		}
	}

	// Matches the direct centered-kernel computation.
	vals := []float64{1, 0, 0, 0, 0}
	got = movingAverageSame(vals, 3)
	want := []float64{1.0 / 3, 1.0 / 3, 0, 0, 0}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("Sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}
