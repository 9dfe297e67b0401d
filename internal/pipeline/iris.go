package pipeline

import (
	"math"

	"plotdash/internal/dataset"
)

// IrisParams are the iris dashboard's widget values: the species to
// include. An empty selection means all species.
type IrisParams struct {
	Species []string
}

// IrisDimensions are the four measured dimensions, in display order.
var IrisDimensions = []string{"SepalLength", "SepalWidth", "PetalLength", "PetalWidth"}

// IrisView is the derived iris view for one recompute.
type IrisView struct {
	Rows    []dataset.IrisRow
	Species []string // species present in the view, dataset order

	Stats  Stats // over sepal length
	Notice string
}

// FilterIris restricts the table to the selected species. Unknown
// names are ignored; selecting nothing (or only unknown names) falls
// back to the full table.
func FilterIris(table dataset.IrisTable, p IrisParams) IrisView {
	if len(table.Rows) == 0 {
		return IrisView{Notice: NoticeNoData}
	}

	selected := make(map[string]bool, len(p.Species))
	for _, s := range p.Species {
		selected[s] = true
	}

	var view IrisView
	seen := make(map[string]bool)
	for _, row := range table.Rows {
		if len(selected) > 0 && !selected[row.Species] {
			continue
		}
		view.Rows = append(view.Rows, row)
		if !seen[row.Species] {
			seen[row.Species] = true
			view.Species = append(view.Species, row.Species)
		}
	}

	if len(view.Rows) == 0 {
		view.Rows = table.Rows
		view.Species = table.Species
	}

	lengths := make([]float64, len(view.Rows))
	for i, row := range view.Rows {
		lengths[i] = row.SepalLength
	}
	view.Stats = Summarize(lengths)
	return view
}

// Dimension extracts one named dimension as a column vector.
func (v IrisView) Dimension(name string) []float64 {
	out := make([]float64, len(v.Rows))
	for i, row := range v.Rows {
		out[i] = row.Dim(name)
	}
	return out
}

// DimensionPair names the two dimensions with the strongest absolute
// Pearson correlation in a view.
type DimensionPair struct {
	A string
	B string
	R float64
}

// StrongestCorrelation scans all off-diagonal dimension pairs and
// returns the one with the largest |r|.
func StrongestCorrelation(v IrisView) DimensionPair {
	best := DimensionPair{}
	for i := 0; i < len(IrisDimensions); i++ {
		for j := i + 1; j < len(IrisDimensions); j++ {
			r := Pearson(v.Dimension(IrisDimensions[i]), v.Dimension(IrisDimensions[j]))
			if math.Abs(r) > math.Abs(best.R) {
				best = DimensionPair{A: IrisDimensions[i], B: IrisDimensions[j], R: r}
			}
		}
	}
	return best
}

// Pearson computes the Pearson correlation coefficient of two equal
// length vectors. Degenerate inputs (length < 2, zero variance) yield 0.
func Pearson(x, y []float64) float64 {
	n := len(x)
	if n < 2 || n != len(y) {
		return 0
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += x[i]
		sumY += y[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx := x[i] - meanX
		dy := y[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}
