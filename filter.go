package ggfx

import (
	"time"

	"github.com/gogpu/ggfx/internal/image"
	"github.com/gogpu/ggfx/internal/param"
	"github.com/gogpu/ggfx/internal/warp"
)

// Filter transforms a source buffer into a new buffer.
//
// Apply never modifies src. The returned buffer is owned by the caller and
// may be handed back with Release once it is no longer needed.
type Filter interface {
	// Name identifies the filter in logs and recipes.
	Name() string

	// Kind reports which capability contract the filter implements.
	Kind() Kind

	// Bounds returns the output size for a source of width x height.
	Bounds(width, height int) (int, int)

	// Apply runs the filter. It fails only for a nil or empty source.
	Apply(src *Buffer) (*Buffer, error)
}

// Kind identifies the capability contract behind a filter.
type Kind uint8

// Kind constants.
const (
	// KindPixel filters map each pixel independently (PixelFunc).
	KindPixel Kind = iota

	// KindTransform filters sample the source through an inverse coordinate
	// map (InverseMap).
	KindTransform

	// KindWhole filters need random access to the whole source (WholeFunc).
	KindWhole
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPixel:
		return "Pixel"
	case KindTransform:
		return "Transform"
	case KindWhole:
		return "Whole"
	default:
		return "Unknown"
	}
}

// PixelFunc maps one packed pixel to another.
type PixelFunc func(c uint32) uint32

// InverseMap returns the source position feeding destination pixel (x, y).
type InverseMap = warp.InverseMap

// WholeFunc renders a complete output buffer from src.
type WholeFunc func(src *Buffer) *Buffer

// EdgeAction selects how source positions outside the buffer are handled.
type EdgeAction = image.EdgeAction

// Edge actions.
const (
	EdgeZero     = image.EdgeZero
	EdgeClamp    = image.EdgeClamp
	EdgeWrap     = image.EdgeWrap
	EdgeRGBClamp = image.EdgeRGBClamp
	EdgeReflect  = image.EdgeReflect
)

// Interpolation selects how fractional source positions are sampled.
type Interpolation = image.InterpolationMode

// Interpolation modes.
const (
	Nearest  = image.InterpNearest
	Bilinear = image.InterpBilinear
	Bicubic  = image.InterpBicubic
)

// Sampling configures how transform filters read the source.
type Sampling struct {
	Edge          EdgeAction    `toml:"edge_action"`
	Interpolation Interpolation `toml:"interpolation"`

	// Premultiplied blends neighbors in premultiplied alpha so transparent
	// pixels do not bleed their color.
	Premultiplied bool `toml:"premultiplied"`
}

// PixelFilter applies a PixelFunc to every pixel.
type PixelFilter struct {
	name string
	fn   PixelFunc
}

// NewPixelFilter wraps fn as a named filter.
func NewPixelFilter(name string, fn PixelFunc) (*PixelFilter, error) {
	if fn == nil {
		return nil, param.WithFilter(param.Invalid("func", nil, "must not be nil"), name)
	}
	return &PixelFilter{name: name, fn: fn}, nil
}

// Name implements Filter.
func (f *PixelFilter) Name() string { return f.name }

// Kind implements Filter.
func (f *PixelFilter) Kind() Kind { return KindPixel }

// Bounds implements Filter. Pixel filters keep the size.
func (f *PixelFilter) Bounds(width, height int) (int, int) { return width, height }

// Apply implements Filter.
func (f *PixelFilter) Apply(src *Buffer) (*Buffer, error) {
	if isEmpty(src) {
		return nil, ErrNilBuffer
	}
	start := time.Now()
	w, h := src.Bounds()
	dst := image.GetFromDefault(w, h)
	for y := range h {
		in := src.Row(y)
		out := dst.Row(y)
		for x, c := range in {
			out[x] = f.fn(c)
		}
	}
	logApplied(f.name, KindPixel, dst, start)
	return dst, nil
}

// TransformFilter resamples the source through an inverse map.
type TransformFilter struct {
	name string
	res  *warp.Resampler

	// mapFor builds the inverse map for a given source size.
	mapFor func(width, height int) InverseMap
}

// NewTransformFilter builds a filter that resamples through the map returned
// by mapFor. width and height fix the output size; zero keeps the source
// size.
func NewTransformFilter(name string, s Sampling, width, height int, mapFor func(width, height int) InverseMap) (*TransformFilter, error) {
	if mapFor == nil {
		return nil, param.WithFilter(param.Invalid("map", nil, "must not be nil"), name)
	}
	res, err := warp.New(warp.Config{
		Edge:          s.Edge,
		Interp:        s.Interpolation,
		Premultiplied: s.Premultiplied,
		Width:         width,
		Height:        height,
	})
	if err != nil {
		return nil, param.WithFilter(err, name)
	}
	return &TransformFilter{name: name, res: res, mapFor: mapFor}, nil
}

// Name implements Filter.
func (f *TransformFilter) Name() string { return f.name }

// Kind implements Filter.
func (f *TransformFilter) Kind() Kind { return KindTransform }

// Bounds implements Filter.
func (f *TransformFilter) Bounds(width, height int) (int, int) {
	return f.res.Size(width, height)
}

// Apply implements Filter.
func (f *TransformFilter) Apply(src *Buffer) (*Buffer, error) {
	if isEmpty(src) {
		return nil, ErrNilBuffer
	}
	start := time.Now()
	w, h := src.Bounds()
	dst := f.res.Resample(src, f.mapFor(w, h))
	logApplied(f.name, KindTransform, dst, start)
	return dst, nil
}

// WholeFilter runs a WholeFunc over the entire source.
type WholeFilter struct {
	name   string
	fn     WholeFunc
	bounds func(width, height int) (int, int)
}

// NewWholeFilter wraps fn as a named filter that keeps the source size.
func NewWholeFilter(name string, fn WholeFunc) (*WholeFilter, error) {
	if fn == nil {
		return nil, param.WithFilter(param.Invalid("func", nil, "must not be nil"), name)
	}
	return &WholeFilter{name: name, fn: fn}, nil
}

// Name implements Filter.
func (f *WholeFilter) Name() string { return f.name }

// Kind implements Filter.
func (f *WholeFilter) Kind() Kind { return KindWhole }

// Bounds implements Filter.
func (f *WholeFilter) Bounds(width, height int) (int, int) {
	if f.bounds != nil {
		return f.bounds(width, height)
	}
	return width, height
}

// Apply implements Filter.
func (f *WholeFilter) Apply(src *Buffer) (*Buffer, error) {
	if isEmpty(src) {
		return nil, ErrNilBuffer
	}
	start := time.Now()
	dst := f.fn(src)
	logApplied(f.name, KindWhole, dst, start)
	return dst, nil
}

// isEmpty reports whether src has no pixels to read. The zero Buffer is
// empty.
func isEmpty(src *Buffer) bool {
	return src == nil || src.Width() <= 0 || src.Height() <= 0
}

// Compile-time interface checks.
var (
	_ Filter = (*PixelFilter)(nil)
	_ Filter = (*TransformFilter)(nil)
	_ Filter = (*WholeFilter)(nil)
	_ Filter = (*Chain)(nil)
)
