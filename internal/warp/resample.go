// Package warp resamples a buffer through an inverse coordinate map: every
// destination pixel asks the map where it comes from in the source, and the
// source is sampled there under an edge action and an interpolation mode.
package warp

import (
	"github.com/gogpu/ggfx/internal/image"
	"github.com/gogpu/ggfx/internal/param"
)

// InverseMap returns the source position that feeds destination pixel
// (x, y). The result may be fractional and may lie outside the source.
type InverseMap func(x, y int) (sx, sy float64)

// Config configures a Resampler.
type Config struct {
	Edge   image.EdgeAction
	Interp image.InterpolationMode

	// Premultiplied blends in premultiplied alpha.
	Premultiplied bool

	// Width and Height of the output. Zero means the source size.
	Width, Height int
}

// Resampler applies inverse maps to buffers. It is immutable once built.
type Resampler struct {
	cfg Config
}

// New validates cfg and returns a Resampler.
func New(cfg Config) (*Resampler, error) {
	if !cfg.Edge.IsValid() {
		return nil, param.Invalid("edge_action", cfg.Edge, "unknown edge action")
	}
	if !cfg.Interp.IsValid() {
		return nil, param.Invalid("interpolation", cfg.Interp, "unknown interpolation")
	}
	if cfg.Width < 0 {
		return nil, param.Invalid("width", cfg.Width, "must not be negative")
	}
	if cfg.Height < 0 {
		return nil, param.Invalid("height", cfg.Height, "must not be negative")
	}
	return &Resampler{cfg: cfg}, nil
}

// Config returns the configuration the Resampler was built with.
func (r *Resampler) Config() Config {
	return r.cfg
}

// Size returns the output size for a source of w x h.
func (r *Resampler) Size(w, h int) (int, int) {
	if r.cfg.Width > 0 {
		w = r.cfg.Width
	}
	if r.cfg.Height > 0 {
		h = r.cfg.Height
	}
	return w, h
}

// Resample builds the output buffer by sampling src at inv(x, y) for every
// destination pixel. The output comes from the default buffer pool.
func (r *Resampler) Resample(src *image.Buf, inv InverseMap) *image.Buf {
	sw, sh := src.Bounds()
	dw, dh := r.Size(sw, sh)
	dst := image.GetFromDefault(dw, dh)

	s := image.Sampler{
		Src:           src,
		Edge:          r.cfg.Edge,
		Interp:        r.cfg.Interp,
		Premultiplied: r.cfg.Premultiplied,
	}
	edge := r.cfg.Edge

	for y := range dh {
		row := dst.Row(y)
		for x := range row {
			fx, fy := inv(x, y)
			rx, inX := edge.ResolveCoord(fx, sw)
			ry, inY := edge.ResolveCoord(fy, sh)
			if !param.Finite(fx, fy) || (edge == image.EdgeZero && !(inX && inY)) {
				row[x] = 0
				continue
			}
			row[x] = s.Sample(rx, ry)
		}
	}
	return dst
}
