package ggfx

import (
	"github.com/gogpu/ggfx/internal/cellular"
	"github.com/gogpu/ggfx/internal/param"
)

// Grid selects how cell sites are laid out.
type Grid = cellular.Grid

// Grid layouts.
const (
	GridSquare    = cellular.GridSquare
	GridHexagonal = cellular.GridHexagonal
)

// Metric selects the distance used to find the nearest site.
type Metric = cellular.Metric

// Distance metrics.
const (
	Euclidean = cellular.MetricEuclidean
	Manhattan = cellular.MetricManhattan
	Chebyshev = cellular.MetricChebyshev
	Minkowski = cellular.MetricMinkowski
)

// CellOptions are the options shared by every cellular filter.
type CellOptions struct {
	// Scale is the cell size in pixels.
	Scale float64 `toml:"scale"`

	// Stretch multiplies the cell height.
	Stretch float64 `toml:"stretch"`

	// Angle rotates the grid, in radians.
	Angle float64 `toml:"angle"`

	// Randomness jitters each site inside its cell, from 0 (regular grid)
	// to 1.
	Randomness float64 `toml:"randomness"`

	// Seed picks the site layout. Any value is valid; negative seeds are
	// hashed by their bit pattern.
	Seed int64 `toml:"seed"`

	Grid   Grid   `toml:"grid"`
	Metric Metric `toml:"metric"`

	// Power is the Minkowski exponent.
	Power float64 `toml:"power"`
}

// defaultCellOptions returns regular grid options at the given scale.
func defaultCellOptions(scale float64) CellOptions {
	return CellOptions{
		Scale:   scale,
		Stretch: 1,
		Grid:    GridSquare,
		Metric:  Euclidean,
		Power:   2,
	}
}

// transform builds the noise transform for these options.
func (o CellOptions) transform() (cellular.Transform, error) {
	if !param.Finite(o.Angle) {
		return cellular.Transform{}, param.Invalid("angle", o.Angle, "must be finite")
	}
	m00, m01, m10, m11 := cellular.Rotation(o.Angle)
	return cellular.NewTransform(m00, m01, m10, m11, o.Scale, o.Stretch)
}

// evaluator returns the site query settings for these options.
func (o CellOptions) evaluator() cellular.Evaluator {
	return cellular.Evaluator{
		Seed:       uint64(o.Seed),
		Randomness: o.Randomness,
		Grid:       o.Grid,
		Metric:     o.Metric,
		Power:      o.Power,
	}
}

// newCellEngine completes cfg with the transform and evaluator from o and
// builds the engine.
func newCellEngine(name string, o CellOptions, cfg cellular.Config) (*cellular.Engine, error) {
	tr, err := o.transform()
	if err != nil {
		return nil, param.WithFilter(err, name)
	}
	cfg.Transform = tr
	cfg.Evaluator = o.evaluator()
	e, err := cellular.New(cfg)
	if err != nil {
		return nil, param.WithFilter(err, name)
	}
	return e, nil
}

// cellFilter wraps an engine as a whole-buffer filter.
func cellFilter(name string, e *cellular.Engine) (*WholeFilter, error) {
	return NewWholeFilter(name, func(src *Buffer) *Buffer {
		return e.Render(src)
	})
}

// CrystallizeOptions configures NewCrystallize.
type CrystallizeOptions struct {
	CellOptions

	// EdgeThickness is the width of the cell borders in cell units.
	// 0 draws no borders. Values above 1 tint whole cells toward EdgeColor,
	// including the pixel under each site.
	EdgeThickness float64 `toml:"edge_thickness"`

	// FadeEdges blends into the neighboring cell instead of drawing
	// EdgeColor.
	FadeEdges bool  `toml:"fade_edges"`
	EdgeColor Color `toml:"edge_color"`
}

// DefaultCrystallizeOptions returns 16 pixel cells on a regular grid with
// thin black borders.
func DefaultCrystallizeOptions() CrystallizeOptions {
	return CrystallizeOptions{
		CellOptions:   defaultCellOptions(16),
		EdgeThickness: 0.4,
		EdgeColor:     Black,
	}
}

// NewCrystallize builds a filter that fills each cell with the source color
// under its site.
func NewCrystallize(o CrystallizeOptions) (*WholeFilter, error) {
	const name = "crystallize"
	e, err := newCellEngine(name, o.CellOptions, cellular.Config{
		Style:         cellular.StyleCrystallize,
		EdgeThickness: o.EdgeThickness,
		FadeEdges:     o.FadeEdges,
		EdgeColor:     uint32(o.EdgeColor),
	})
	if err != nil {
		return nil, err
	}
	return cellFilter(name, e)
}

// PointillizeOptions configures NewPointillize.
type PointillizeOptions struct {
	CellOptions

	// EdgeThickness is the dot radius in cell units.
	EdgeThickness float64 `toml:"edge_thickness"`

	// Fuzziness softens the dot border.
	Fuzziness float64 `toml:"fuzziness"`

	// FadeEdges blends toward the neighboring dot instead of painting
	// EdgeColor between dots.
	FadeEdges bool  `toml:"fade_edges"`
	EdgeColor Color `toml:"edge_color"`
}

// DefaultPointillizeOptions returns 16 pixel cells with soft dots on black.
func DefaultPointillizeOptions() PointillizeOptions {
	return PointillizeOptions{
		CellOptions:   defaultCellOptions(16),
		EdgeThickness: 0.4,
		Fuzziness:     0.1,
		EdgeColor:     Black,
	}
}

// NewPointillize builds a filter that paints a dot of the source color
// around each site.
func NewPointillize(o PointillizeOptions) (*WholeFilter, error) {
	const name = "pointillize"
	e, err := newCellEngine(name, o.CellOptions, cellular.Config{
		Style:         cellular.StylePointillize,
		EdgeThickness: o.EdgeThickness,
		Fuzziness:     o.Fuzziness,
		FadeEdges:     o.FadeEdges,
		EdgeColor:     uint32(o.EdgeColor),
	})
	if err != nil {
		return nil, err
	}
	return cellFilter(name, e)
}

// CellularOptions configures NewCellular and CellularFunction.
type CellularOptions struct {
	CellOptions

	// Coefficients weight the distances to the first, second and third
	// nearest sites.
	Coefficients [3]float64 `toml:"coefficients"`

	// Amount scales the field.
	Amount float64 `toml:"amount"`

	// Turbulence adds octaves at frequencies 2, 4 ... up to this value.
	Turbulence float64 `toml:"turbulence"`
}

// DefaultCellularOptions returns a single octave F1 field over 32 pixel
// cells.
func DefaultCellularOptions() CellularOptions {
	return CellularOptions{
		CellOptions:  defaultCellOptions(32),
		Coefficients: [3]float64{1, 0, 0},
		Amount:       1,
		Turbulence:   1,
	}
}

func (o CellularOptions) engine(name string) (*cellular.Engine, error) {
	return newCellEngine(name, o.CellOptions, cellular.Config{
		Style:        cellular.StyleTexture,
		Coefficients: o.Coefficients,
		Amount:       o.Amount,
		Turbulence:   o.Turbulence,
	})
}

// NewCellular builds a filter that renders the cellular field as opaque
// gray levels. The source only provides the size.
func NewCellular(o CellularOptions) (*WholeFilter, error) {
	const name = "cellular"
	e, err := o.engine(name)
	if err != nil {
		return nil, err
	}
	return cellFilter(name, e)
}

// CellularFunction returns the cellular field as a Function2D over image
// coordinates, for use with NewMap.
func CellularFunction(o CellularOptions) (Function2D, error) {
	e, err := o.engine("cellular_function")
	if err != nil {
		return nil, err
	}
	return e.Field, nil
}
