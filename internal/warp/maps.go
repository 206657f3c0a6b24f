package warp

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/gogpu/ggfx/internal/image"
	"github.com/gogpu/ggfx/internal/param"
)

// Function2D is a scalar field over image coordinates.
type Function2D func(x, y float64) float64

// Identity maps every pixel onto itself.
func Identity() InverseMap {
	return func(x, y int) (float64, float64) {
		return float64(x), float64(y)
	}
}

// Translate moves the image by (dx, dy): destination (x, y) reads source
// (x - dx, y - dy).
func Translate(dx, dy float64) InverseMap {
	return func(x, y int) (float64, float64) {
		return float64(x) - dx, float64(y) - dy
	}
}

// Affine returns the inverse map of the forward transform m, which takes
// source coordinates to destination coordinates. It fails if m cannot be
// inverted.
func Affine(m image.Affine) (InverseMap, error) {
	inv, ok := m.Invert()
	if !ok {
		return nil, param.Invalid("transform", m.Elements(), "must be finite and invertible")
	}
	return Inverse(inv), nil
}

// Inverse uses inv, a destination-to-source transform, directly as the map.
func Inverse(inv image.Affine) InverseMap {
	return func(x, y int) (float64, float64) {
		return inv.TransformPoint(float64(x), float64(y))
	}
}

// Scale maps a dstW x dstH grid onto a srcW x srcH source with pixel
// centers aligned.
func Scale(srcW, srcH, dstW, dstH int) InverseMap {
	kx := float64(srcW) / float64(dstW)
	ky := float64(srcH) / float64(dstH)
	return func(x, y int) (float64, float64) {
		return (float64(x)+0.5)*kx - 0.5, (float64(y)+0.5)*ky - 0.5
	}
}

// Diffuse displaces every pixel by up to scale pixels in a direction and
// distance drawn from a hash of the pixel position and seed, so the same
// seed always scatters the same way.
func Diffuse(scale float64, seed uint64) InverseMap {
	var sinTable, cosTable [256]float64
	for i := range sinTable {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / 256)
		sinTable[i] = scale * sin
		cosTable[i] = scale * cos
	}
	return func(x, y int) (float64, float64) {
		h := pixelHash(x, y, seed)
		angle := h & 0xff
		distance := float64(h>>11) / (1 << 53)
		return float64(x) + distance*sinTable[angle], float64(y) + distance*cosTable[angle]
	}
}

// Coordinates reads the source position from two fields giving the
// position as a fraction of the source size: destination (x, y) reads
// (fx(x, y) * width, fy(x, y) * height).
func Coordinates(fx, fy Function2D, width, height int) InverseMap {
	w := float64(width)
	h := float64(height)
	return func(x, y int) (float64, float64) {
		px, py := float64(x), float64(y)
		return fx(px, py) * w, fy(px, py) * h
	}
}

func pixelHash(x, y int, seed uint64) uint64 {
	var key [24]byte
	binary.LittleEndian.PutUint64(key[0:], uint64(x))
	binary.LittleEndian.PutUint64(key[8:], uint64(y))
	binary.LittleEndian.PutUint64(key[16:], seed)
	return xxhash.Sum64(key[:])
}
