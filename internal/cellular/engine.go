package cellular

import (
	"math"

	"github.com/gogpu/ggfx/internal/image"
	"github.com/gogpu/ggfx/internal/param"
)

// Style selects what the engine paints for each pixel.
type Style uint8

const (
	// StyleCrystallize fills each cell with the source color under its site
	// and draws edges where the two nearest sites are nearly equidistant.
	StyleCrystallize Style = iota

	// StylePointillize paints a disc around each site and fills the rest
	// with the edge color.
	StylePointillize

	// StyleTexture ignores source colors and renders the distance field
	// itself as an opaque gray level.
	StyleTexture

	styleCount
)

// String returns the style name.
func (s Style) String() string {
	switch s {
	case StyleCrystallize:
		return "Crystallize"
	case StylePointillize:
		return "Pointillize"
	case StyleTexture:
		return "Texture"
	default:
		return "Unknown"
	}
}

// Config describes a cellular rendering.
type Config struct {
	Style     Style
	Transform Transform
	Evaluator Evaluator

	// EdgeThickness is the width of the edge band in noise units.
	// Crystallize draws no edges when it is 0. Its blend ramps over
	// (d1-d0)/EdgeThickness^2, so cells keep their pure source color at the
	// site only while EdgeThickness^2 is at most the site's F2 distance: up
	// to 1 on a square grid with randomness 0. Larger values tint every
	// pixel toward EdgeColor.
	EdgeThickness float64

	// Fuzziness softens the disc border in pointillize.
	Fuzziness float64

	// FadeEdges blends neighboring cell colors instead of drawing EdgeColor.
	FadeEdges bool
	EdgeColor uint32

	// Coefficients weight F1, F2 and F3 in the texture field.
	Coefficients [3]float64

	// Amount scales the texture field.
	Amount float64

	// Turbulence is the highest octave frequency of the texture field.
	// 1 evaluates a single octave.
	Turbulence float64
}

// maxTurbulence bounds the octave loop of the texture field.
const maxTurbulence = 1 << 16

// Engine renders a validated Config. It holds no mutable state and may be
// shared between goroutines.
type Engine struct {
	cfg Config
}

// New validates cfg and returns an engine for it.
func New(cfg Config) (*Engine, error) {
	if cfg.Style >= styleCount {
		return nil, param.Invalid("style", cfg.Style, "unknown style")
	}
	if cfg.Transform.Scale == 0 {
		return nil, param.Invalid("scale", 0.0, "transform not initialized")
	}
	if err := cfg.Evaluator.Validate(); err != nil {
		return nil, err
	}
	if err := param.NonNegative("edge_thickness", cfg.EdgeThickness); err != nil {
		return nil, err
	}
	if err := param.NonNegative("fuzziness", cfg.Fuzziness); err != nil {
		return nil, err
	}
	if cfg.Style == StyleTexture {
		c := cfg.Coefficients
		if !param.Finite(c[0], c[1], c[2]) {
			return nil, param.Invalid("coefficients", c, "must be finite")
		}
		if !param.Finite(cfg.Amount) {
			return nil, param.Invalid("amount", cfg.Amount, "must be finite")
		}
		if !(cfg.Turbulence >= 1 && cfg.Turbulence <= maxTurbulence) {
			return nil, param.Invalid("turbulence", cfg.Turbulence, "must be in [1, 65536]")
		}
	}
	return &Engine{cfg: cfg}, nil
}

// Config returns the configuration the engine was built from.
func (e *Engine) Config() Config {
	return e.cfg
}

// Render produces a new buffer the size of src.
func (e *Engine) Render(src *image.Buf) *image.Buf {
	w, h := src.Bounds()
	dst, _ := image.NewBuf(w, h)
	for y := range h {
		row := dst.Row(y)
		for x := range row {
			row[x] = e.Pixel(src, x, y)
		}
	}
	return dst
}

// Pixel computes the output color of pixel (x, y).
func (e *Engine) Pixel(src *image.Buf, x, y int) uint32 {
	if e.cfg.Style == StyleTexture {
		v := image.ToByte(255 * image.Clamp01(e.Field(float64(x), float64(y))))
		return image.ARGB(255, v, v, v)
	}

	nx, ny := e.cfg.Transform.ToNoise(float64(x), float64(y))
	res := e.cfg.Evaluator.Evaluate(nx, ny)
	d0 := res[0].Distance
	d1 := res[1].Distance
	base := e.sourceColor(src, res[0])

	if e.cfg.Style == StylePointillize {
		if e.cfg.FadeEdges {
			return image.Mix(fadeRatio(d0, d1), base, e.sourceColor(src, res[1]))
		}
		b := 1 - image.SmoothStep(e.cfg.EdgeThickness, e.cfg.EdgeThickness+e.cfg.Fuzziness, d0)
		return image.Mix(b, e.cfg.EdgeColor, base)
	}

	b := edgeBlend(d0, d1, e.cfg.EdgeThickness)
	if e.cfg.FadeEdges {
		mid := image.Mix(0.5, e.sourceColor(src, res[1]), base)
		return image.Mix(b, mid, base)
	}
	return image.Mix(b, e.cfg.EdgeColor, base)
}

// Field evaluates the texture field at image point (x, y): the weighted
// F1..F3 distances summed over octaves 1, 2, 4 ... up to Turbulence.
func (e *Engine) Field(x, y float64) float64 {
	nx, ny := e.cfg.Transform.ToNoise(x, y)
	if e.cfg.Turbulence <= 1 {
		return e.octave(nx, ny)
	}
	var t float64
	for f := 1.0; f <= e.cfg.Turbulence; f *= 2 {
		t += e.octave(f*nx, f*ny) / f
	}
	return t
}

func (e *Engine) octave(nx, ny float64) float64 {
	res := e.cfg.Evaluator.Evaluate(nx, ny)
	c := e.cfg.Coefficients
	return 2 * e.cfg.Amount * (c[0]*res[0].Distance + c[1]*res[1].Distance + c[2]*res[2].Distance)
}

// sourceColor fetches the source pixel under a site, clamped into the buffer.
func (e *Engine) sourceColor(src *image.Buf, f Feature) uint32 {
	x, y := e.cfg.Transform.FromNoise(f.X, f.Y)
	return src.AtClamped(floorIndex(x), floorIndex(y))
}

// floorIndex floors v into the int range. AtClamped takes care of the
// buffer bounds.
func floorIndex(v float64) int {
	switch {
	case !(v > math.MinInt32):
		return math.MinInt32
	case v >= math.MaxInt32:
		return math.MaxInt32
	}
	return int(math.Floor(v))
}

// edgeBlend is the crystallize blend factor toward the cell color: 0 on a
// cell border, 1 once (d1-d0)/thickness exceeds the edge band. The gap is
// divided by thickness before the band of width thickness is applied.
func edgeBlend(d0, d1, thickness float64) float64 {
	if thickness <= 0 {
		return 1
	}
	f := (d1 - d0) / thickness
	return image.Clamp01(image.SmoothStep(0, thickness, f))
}

// fadeRatio is the pointillize blend factor toward the second cell color.
// It stays in [0, 0.5] for sorted distances and is 0.5 when both are 0.
func fadeRatio(d0, d1 float64) float64 {
	if !(d1 > 0) {
		return 0.5
	}
	return image.Clamp01(0.5 * d0 / d1)
}
