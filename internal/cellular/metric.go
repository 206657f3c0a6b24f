package cellular

import "math"

// Metric is the distance function used to rank sites.
type Metric uint8

const (
	// MetricEuclidean is the straight-line distance.
	MetricEuclidean Metric = iota

	// MetricManhattan sums the axis distances (diamond-shaped cells).
	MetricManhattan

	// MetricChebyshev takes the larger axis distance (square-ish cells).
	MetricChebyshev

	// MetricMinkowski generalizes the others with an exponent p:
	// (|dx|^p + |dy|^p)^(1/p).
	MetricMinkowski

	metricCount
)

// String returns the metric name.
func (m Metric) String() string {
	switch m {
	case MetricEuclidean:
		return "Euclidean"
	case MetricManhattan:
		return "Manhattan"
	case MetricChebyshev:
		return "Chebyshev"
	case MetricMinkowski:
		return "Minkowski"
	default:
		return "Unknown"
	}
}

// IsValid reports whether m is a known metric.
func (m Metric) IsValid() bool {
	return m < metricCount
}

// Distance measures (dx, dy). p is only read by MetricMinkowski and must be
// positive there.
func (m Metric) Distance(dx, dy, p float64) float64 {
	dx = math.Abs(dx)
	dy = math.Abs(dy)
	switch m {
	case MetricManhattan:
		return dx + dy
	case MetricChebyshev:
		return math.Max(dx, dy)
	case MetricMinkowski:
		switch p {
		case 1:
			return dx + dy
		case 2:
			return math.Hypot(dx, dy)
		}
		return math.Pow(math.Pow(dx, p)+math.Pow(dy, p), 1/p)
	default:
		return math.Hypot(dx, dy)
	}
}
