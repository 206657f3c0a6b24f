package image

import "math"

// InterpolationMode defines how a fractional source position is sampled.
type InterpolationMode uint8

const (
	// InterpNearest selects the closest pixel (no interpolation).
	// Fast but produces blocky results when scaling.
	InterpNearest InterpolationMode = iota

	// InterpBilinear performs linear interpolation between 4 neighboring pixels.
	// Good balance between quality and performance.
	InterpBilinear

	// InterpBicubic performs cubic interpolation using a 4x4 pixel neighborhood.
	// Highest quality but slower than bilinear.
	InterpBicubic

	interpCount
)

// String returns a string representation of the interpolation mode.
func (m InterpolationMode) String() string {
	switch m {
	case InterpNearest:
		return "Nearest"
	case InterpBilinear:
		return "Bilinear"
	case InterpBicubic:
		return "Bicubic"
	default:
		return unknownMode
	}
}

// IsValid reports whether m is a known interpolation mode.
func (m InterpolationMode) IsValid() bool {
	return m < interpCount
}

// Sampler reads a Buf at fractional pixel coordinates.
//
// Coordinates are in pixel space: (0, 0) is the top-left pixel and
// (w-1, h-1) the bottom-right one. Neighbor pixels that fall outside the
// buffer are resolved through Edge.
type Sampler struct {
	Src    *Buf
	Edge   EdgeAction
	Interp InterpolationMode

	// Premultiplied blends channels in premultiplied space so fully
	// transparent neighbors do not bleed their color into the result.
	Premultiplied bool
}

// Sample returns the interpolated pixel at (x, y).
// The caller is responsible for applying the coordinate-level edge action;
// Sample only resolves the integer neighbors it needs.
func (s *Sampler) Sample(x, y float64) uint32 {
	switch s.Interp {
	case InterpBilinear:
		return s.bilinear(x, y)
	case InterpBicubic:
		return s.bicubic(x, y)
	default:
		return s.nearest(x, y)
	}
}

// pixel fetches an integer neighbor through the edge action.
// EdgeRGBClamp keeps the color of the nearest edge pixel but drops its alpha.
func (s *Sampler) pixel(x, y int) uint32 {
	w, h := s.Src.Bounds()
	if x >= 0 && x < w && y >= 0 && y < h {
		return s.Src.pix[y*w+x]
	}
	ix, okx := s.Edge.ResolveIndex(x, w)
	iy, oky := s.Edge.ResolveIndex(y, h)
	if !okx || !oky {
		return 0
	}
	c := s.Src.pix[iy*w+ix]
	if s.Edge == EdgeRGBClamp {
		c &= 0x00FFFFFF
	}
	return c
}

// nearest rounds to the closest pixel center. A coordinate inside the
// buffer always reads a pixel of the buffer, even when it rounds past the
// last one; only EdgeWrap crosses the seam to the first pixel.
func (s *Sampler) nearest(x, y float64) uint32 {
	w, h := s.Src.Bounds()
	return s.pixel(s.round(x, w), s.round(y, h))
}

func (s *Sampler) round(v float64, size int) int {
	i := int(math.Floor(v + 0.5))
	if s.Edge != EdgeWrap && v >= 0 && v < float64(size) && i >= size {
		return size - 1
	}
	return i
}

// bilinear blends the four pixels surrounding (x, y).
func (s *Sampler) bilinear(x, y float64) uint32 {
	fx := math.Floor(x)
	fy := math.Floor(y)
	x0, y0 := int(fx), int(fy)
	tx := x - fx
	ty := y - fy

	// Integer positions hit a single pixel exactly.
	if tx == 0 && ty == 0 {
		return s.pixel(x0, y0)
	}

	nw := Unpack(s.pixel(x0, y0), s.Premultiplied)
	ne := Unpack(s.pixel(x0+1, y0), s.Premultiplied)
	sw := Unpack(s.pixel(x0, y0+1), s.Premultiplied)
	se := Unpack(s.pixel(x0+1, y0+1), s.Premultiplied)

	top := nw.Scale(1 - tx).Add(ne.Scale(tx))
	bottom := sw.Scale(1 - tx).Add(se.Scale(tx))
	return top.Scale(1 - ty).Add(bottom.Scale(ty)).Pack(s.Premultiplied)
}

// bicubic performs Catmull-Rom interpolation over a 4x4 neighborhood.
func (s *Sampler) bicubic(x, y float64) uint32 {
	fx := math.Floor(x)
	fy := math.Floor(y)
	x0, y0 := int(fx), int(fy)
	tx := x - fx
	ty := y - fy

	if tx == 0 && ty == 0 {
		return s.pixel(x0, y0)
	}

	wx := [4]float64{cubicWeight(tx + 1), cubicWeight(tx), cubicWeight(tx - 1), cubicWeight(tx - 2)}
	wy := [4]float64{cubicWeight(ty + 1), cubicWeight(ty), cubicWeight(ty - 1), cubicWeight(ty - 2)}

	var acc RGBA
	for j := range 4 {
		var row RGBA
		for i := range 4 {
			p := Unpack(s.pixel(x0+i-1, y0+j-1), s.Premultiplied)
			row = row.Add(p.Scale(wx[i]))
		}
		acc = acc.Add(row.Scale(wy[j]))
	}

	// Catmull-Rom overshoots; keep color channels within alpha when premultiplied.
	acc.A = clampFloat(acc.A, 0, 255)
	if s.Premultiplied {
		acc.R = clampFloat(acc.R, 0, acc.A)
		acc.G = clampFloat(acc.G, 0, acc.A)
		acc.B = clampFloat(acc.B, 0, acc.A)
	}
	return acc.Pack(s.Premultiplied)
}

// cubicWeight computes the Catmull-Rom cubic weight for distance t.
func cubicWeight(t float64) float64 {
	// Catmull-Rom spline (Mitchell-Netravali with B=0, C=0.5):
	// |t| < 1: (1.5|t|³ - 2.5|t|² + 1)
	// 1 ≤ |t| < 2: (-0.5|t|³ + 2.5|t|² - 4|t| + 2)
	// |t| ≥ 2: 0
	absT := math.Abs(t)
	if absT < 1 {
		return 1.5*absT*absT*absT - 2.5*absT*absT + 1.0
	}
	if absT < 2 {
		return -0.5*absT*absT*absT + 2.5*absT*absT - 4.0*absT + 2.0
	}
	return 0
}
