package cellular

import (
	"math"

	"github.com/gogpu/ggfx/internal/param"
)

// Candidates is the number of sites inspected per query: the home cell and
// its eight neighbors.
const Candidates = 9

// scanOrder lists the cell offsets in visiting order. The home cell comes
// first, then the remaining block row by row. Ties keep this order.
var scanOrder = [Candidates][2]int{
	{0, 0},
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Feature is one site found by a query.
type Feature struct {
	// X, Y is the absolute site position in noise space.
	X, Y float64

	// CellX, CellY identify the cell owning the site.
	CellX, CellY int

	// Distance from the query point under the evaluator's metric.
	Distance float64
}

// Results holds every candidate of a query sorted by ascending distance.
// Results[0] is the nearest site (F1), Results[1] the second nearest (F2).
type Results [Candidates]Feature

// Evaluator answers nearest-site queries. The zero value is a square grid
// with randomness 0 under the Euclidean metric.
type Evaluator struct {
	Seed       uint64
	Randomness float64
	Grid       Grid
	Metric     Metric

	// Power is the Minkowski exponent; ignored by the other metrics.
	Power float64
}

// Validate checks the evaluator settings.
func (e *Evaluator) Validate() error {
	if err := param.Unit("randomness", e.Randomness); err != nil {
		return err
	}
	if !e.Grid.IsValid() {
		return param.Invalid("grid", e.Grid, "unknown grid type")
	}
	if !e.Metric.IsValid() {
		return param.Invalid("metric", e.Metric, "unknown metric")
	}
	if e.Metric == MetricMinkowski {
		if err := param.Positive("power", e.Power); err != nil {
			return err
		}
	}
	return nil
}

// Evaluate finds the sites around (x, y) and returns them nearest first.
//
// Sites never leave their cell, so the two nearest sites of any point are
// always within the 3x3 block around its home cell. Non-finite coordinates
// are treated as the origin.
func (e *Evaluator) Evaluate(x, y float64) Results {
	if !param.Finite(x, y) {
		x, y = 0, 0
	}
	homeX := int(math.Floor(x))
	homeY := int(math.Floor(y))

	var res Results
	for n, off := range scanOrder {
		cx := homeX + off[0]
		cy := homeY + off[1]
		fx, fy := Site(cx, cy, e.Seed, e.Randomness, e.Grid)
		sx := float64(cx) + fx
		sy := float64(cy) + fy
		f := Feature{
			X:        sx,
			Y:        sy,
			CellX:    cx,
			CellY:    cy,
			Distance: e.Metric.Distance(sx-x, sy-y, e.Power),
		}

		// Stable insertion: equal distances stay in scan order.
		i := n
		for i > 0 && res[i-1].Distance > f.Distance {
			res[i] = res[i-1]
			i--
		}
		res[i] = f
	}
	return res
}
