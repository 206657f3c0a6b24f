package ggfx

import (
	"github.com/gogpu/ggfx/internal/param"
	"github.com/gogpu/ggfx/internal/warp"
)

// Function2D is a scalar field over image coordinates.
type Function2D = warp.Function2D

// DiffuseOptions configures NewDiffuse.
type DiffuseOptions struct {
	Sampling

	// Scale is the largest displacement in pixels.
	Scale float64 `toml:"scale"`

	// Seed picks the scatter pattern. Any value is valid; negative seeds
	// are hashed by their bit pattern.
	Seed int64 `toml:"seed"`
}

// DefaultDiffuseOptions scatters pixels by up to 4 pixels with clamped
// bilinear sampling.
func DefaultDiffuseOptions() DiffuseOptions {
	return DiffuseOptions{
		Sampling: Sampling{Edge: EdgeClamp, Interpolation: Bilinear},
		Scale:    4,
	}
}

// NewDiffuse builds a filter that moves every pixel by a random amount in
// a random direction. The same seed always produces the same output.
func NewDiffuse(o DiffuseOptions) (*TransformFilter, error) {
	const name = "diffuse"
	if err := param.NonNegative("scale", o.Scale); err != nil {
		return nil, param.WithFilter(err, name)
	}
	inv := warp.Diffuse(o.Scale, uint64(o.Seed))
	return NewTransformFilter(name, o.Sampling, 0, 0, func(int, int) InverseMap {
		return inv
	})
}

// OffsetOptions configures NewOffset.
type OffsetOptions struct {
	X int `toml:"x"`
	Y int `toml:"y"`

	// Wrap tiles the image; otherwise uncovered pixels become transparent.
	Wrap bool `toml:"wrap"`
}

// DefaultOffsetOptions returns a wrapping offset of zero.
func DefaultOffsetOptions() OffsetOptions {
	return OffsetOptions{Wrap: true}
}

// NewOffset builds a filter that shifts the image by (X, Y) pixels.
func NewOffset(o OffsetOptions) (*TransformFilter, error) {
	s := Sampling{Edge: EdgeZero, Interpolation: Nearest}
	if o.Wrap {
		s.Edge = EdgeWrap
	}
	inv := warp.Translate(float64(o.X), float64(o.Y))
	return NewTransformFilter("offset", s, 0, 0, func(int, int) InverseMap {
		return inv
	})
}

// MapOptions configures NewMap.
type MapOptions struct {
	Sampling

	// X and Y give the source position of each destination pixel as a
	// fraction of the source width and height.
	X, Y Function2D
}

// DefaultMapOptions returns the identity mapping with bilinear sampling and
// transparent edges.
func DefaultMapOptions() MapOptions {
	return MapOptions{
		Sampling: Sampling{Edge: EdgeRGBClamp, Interpolation: Bilinear},
	}
}

// NewMap builds a filter that reads every destination pixel from the source
// position given by the X and Y fields. Nil fields keep the pixel's own
// coordinate on that axis.
func NewMap(o MapOptions) (*TransformFilter, error) {
	return NewTransformFilter("map", o.Sampling, 0, 0, func(w, h int) InverseMap {
		fx, fy := o.X, o.Y
		if fx == nil {
			fx = func(x, _ float64) float64 { return x / float64(w) }
		}
		if fy == nil {
			fy = func(_, y float64) float64 { return y / float64(h) }
		}
		return warp.Coordinates(fx, fy, w, h)
	})
}
