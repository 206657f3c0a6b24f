package cellular

import (
	"math"

	"github.com/gogpu/ggfx/internal/image"
	"github.com/gogpu/ggfx/internal/param"
)

// NoiseOffset is added to both noise axes so that queries stay far from the
// origin, where the cell hash would mirror itself.
const NoiseOffset = 1000

// Transform maps image coordinates into noise space: the 2x2 matrix is
// applied first, then x is divided by Scale and y by Scale*Stretch, then
// NoiseOffset is added.
//
// Build it with NewTransform; the zero value is not usable.
type Transform struct {
	M00, M01 float64
	M10, M11 float64
	Scale    float64
	Stretch  float64

	fwd image.Affine
	inv image.Affine
}

// Rotation returns the matrix that rotates by angle radians, in the
// (m00, m01, m10, m11) order NewTransform takes.
func Rotation(angle float64) (m00, m01, m10, m11 float64) {
	sin, cos := math.Sincos(angle)
	return cos, sin, -sin, cos
}

// NewTransform validates the configuration and precomputes the forward and
// inverse maps. It fails for a non-positive or non-finite scale or stretch
// and for a singular or non-finite matrix.
func NewTransform(m00, m01, m10, m11, scale, stretch float64) (Transform, error) {
	if err := param.Positive("scale", scale); err != nil {
		return Transform{}, err
	}
	if err := param.Positive("stretch", stretch); err != nil {
		return Transform{}, err
	}

	lin := image.Linear(m00, m01, m10, m11)
	linInv, ok := lin.Invert()
	if !ok {
		return Transform{}, param.Invalid("matrix", lin.Elements(), "must be finite and invertible")
	}

	sy := scale * stretch
	fwd := image.Translate(NoiseOffset, NoiseOffset).
		Multiply(image.Scale(1/scale, 1/sy)).
		Multiply(lin)
	inv := linInv.
		Multiply(image.Scale(scale, sy)).
		Multiply(image.Translate(-NoiseOffset, -NoiseOffset))
	if !fwd.IsFinite() || !inv.IsFinite() {
		return Transform{}, param.Invalid("scale", scale, "overflows the noise transform")
	}

	return Transform{
		M00: m00, M01: m01, M10: m10, M11: m11,
		Scale:   scale,
		Stretch: stretch,
		fwd:     fwd,
		inv:     inv,
	}, nil
}

// ToNoise maps an image point into noise space.
func (t Transform) ToNoise(x, y float64) (nx, ny float64) {
	return t.fwd.TransformPoint(x, y)
}

// FromNoise maps a noise-space point back to image space. It is the exact
// inverse of ToNoise up to rounding.
func (t Transform) FromNoise(nx, ny float64) (x, y float64) {
	return t.inv.TransformPoint(nx, ny)
}
