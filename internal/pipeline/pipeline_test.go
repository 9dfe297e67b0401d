package pipeline

import "testing"

func TestSummarize(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Stats
	}{
		{
			name:   "simple sequence",
			values: []float64{1, 2, 3},
			want:   Stats{Count: 3, Min: 1, Max: 3, Mean: 2},
		},
		{
			name:   "single value",
			values: []float64{4.5},
			want:   Stats{Count: 1, Min: 4.5, Max: 4.5, Mean: 4.5},
		},
		{
			name:   "negative values",
			values: []float64{-2, 0, 2},
			want:   Stats{Count: 3, Min: -2, Max: 2, Mean: 0},
		},
		{
			name:   "empty input",
			values: nil,
			want:   Stats{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.values)
			if got != tt.want {
				t.Errorf("Summarize(%v) = %+v, want %+v", tt.values, got, tt.want)
			}
		})
	}
}
