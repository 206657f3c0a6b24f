package ggfx

import (
	"github.com/gogpu/ggfx/internal/image"
	"github.com/gogpu/ggfx/internal/param"
)

// ColorMatrix is a 4x5 color transform in row-major order:
//
//	[R']   [m0  m1  m2  m3  m4 ]   [R]
//	[G'] = [m5  m6  m7  m8  m9 ] * [G]
//	[B']   [m10 m11 m12 m13 m14]   [B]
//	[A']   [m15 m16 m17 m18 m19]   [A]
//	                               [1]
//
// Channels are straight-alpha values in [0, 255]; the fifth column is a bias
// in the same range. Results are rounded and clamped.
type ColorMatrix [20]float64

// Rec. 709 luminance weights.
const (
	lumR = 0.2126
	lumG = 0.7152
	lumB = 0.0722
)

// IdentityMatrix passes colors through unchanged.
func IdentityMatrix() ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// SaturationMatrix scales saturation.
// factor: 0 = grayscale, 1 = unchanged, 2 = oversaturated.
func SaturationMatrix(factor float64) ColorMatrix {
	inv := 1 - factor
	return ColorMatrix{
		lumR*inv + factor, lumG * inv, lumB * inv, 0, 0,
		lumR * inv, lumG*inv + factor, lumB * inv, 0, 0,
		lumR * inv, lumG * inv, lumB*inv + factor, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// GrayscaleMatrix converts to luminance.
func GrayscaleMatrix() ColorMatrix {
	return SaturationMatrix(0)
}

// SepiaMatrix applies a sepia tone.
func SepiaMatrix() ColorMatrix {
	return ColorMatrix{
		0.393, 0.769, 0.189, 0, 0,
		0.349, 0.686, 0.168, 0, 0,
		0.272, 0.534, 0.131, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// InvertMatrix inverts the color channels and keeps alpha.
func InvertMatrix() ColorMatrix {
	return ColorMatrix{
		-1, 0, 0, 0, 255,
		0, -1, 0, 0, 255,
		0, 0, -1, 0, 255,
		0, 0, 0, 1, 0,
	}
}

// BrightnessMatrix scales the color channels.
// factor: 0 = black, 1 = unchanged.
func BrightnessMatrix(factor float64) ColorMatrix {
	return ColorMatrix{
		factor, 0, 0, 0, 0,
		0, factor, 0, 0, 0,
		0, 0, factor, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// ContrastMatrix scales the color channels around mid gray.
// factor: 0 = gray, 1 = unchanged.
func ContrastMatrix(factor float64) ColorMatrix {
	offset := 128 * (1 - factor)
	return ColorMatrix{
		factor, 0, 0, 0, offset,
		0, factor, 0, 0, offset,
		0, 0, factor, 0, offset,
		0, 0, 0, 1, 0,
	}
}

// OpacityMatrix scales alpha.
func OpacityMatrix(factor float64) ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, factor, 0,
	}
}

// Multiply returns the matrix that applies m first and then other.
func (m ColorMatrix) Multiply(other ColorMatrix) ColorMatrix {
	var r ColorMatrix
	for row := range 4 {
		for col := range 4 {
			var sum float64
			for k := range 4 {
				sum += other[row*5+k] * m[k*5+col]
			}
			r[row*5+col] = sum
		}
		r[row*5+4] = other[row*5+0]*m[4] + other[row*5+1]*m[9] +
			other[row*5+2]*m[14] + other[row*5+3]*m[19] + other[row*5+4]
	}
	return r
}

// Transform applies the matrix to one packed pixel.
func (m ColorMatrix) Transform(c uint32) uint32 {
	a8, r8, g8, b8 := image.Channels(c)
	r, g, b, a := float64(r8), float64(g8), float64(b8), float64(a8)
	return image.ARGB(
		image.ToByte(m[15]*r+m[16]*g+m[17]*b+m[18]*a+m[19]),
		image.ToByte(m[0]*r+m[1]*g+m[2]*b+m[3]*a+m[4]),
		image.ToByte(m[5]*r+m[6]*g+m[7]*b+m[8]*a+m[9]),
		image.ToByte(m[10]*r+m[11]*g+m[12]*b+m[13]*a+m[14]),
	)
}

// ColorMatrixOptions configures NewColorMatrix.
type ColorMatrixOptions struct {
	Matrix ColorMatrix `toml:"matrix"`
}

// DefaultColorMatrixOptions returns the identity matrix.
func DefaultColorMatrixOptions() ColorMatrixOptions {
	return ColorMatrixOptions{Matrix: IdentityMatrix()}
}

// NewColorMatrix builds a per-pixel filter from o.Matrix.
func NewColorMatrix(o ColorMatrixOptions) (*PixelFilter, error) {
	return newMatrixFilter("color_matrix", o.Matrix)
}

// NewGrayscale builds a filter that converts to luminance.
func NewGrayscale() *PixelFilter {
	f, _ := newMatrixFilter("grayscale", GrayscaleMatrix())
	return f
}

// NewSepia builds a sepia tone filter.
func NewSepia() *PixelFilter {
	f, _ := newMatrixFilter("sepia", SepiaMatrix())
	return f
}

// NewInvert builds a filter that inverts colors and keeps alpha.
func NewInvert() *PixelFilter {
	f, _ := newMatrixFilter("invert", InvertMatrix())
	return f
}

func newMatrixFilter(name string, m ColorMatrix) (*PixelFilter, error) {
	if !param.Finite(m[:]...) {
		return nil, param.WithFilter(param.Invalid("matrix", m, "must be finite"), name)
	}
	return NewPixelFilter(name, m.Transform)
}
