package image

import "math"

// singularEpsilon is the determinant magnitude below which a matrix is
// treated as non-invertible.
const singularEpsilon = 1e-10

// Affine represents a 2D affine transformation matrix.
//
// The transformation is represented as a 3x3 matrix:
//
//	| a  b  c |
//	| d  e  f |
//	| 0  0  1 |
//
// Geometric filters use it to express their inverse map (destination pixel
// to source pixel); the cellular engine uses its linear part to move between
// image space and noise space.
type Affine struct {
	a, b, c float64 // First row: x' = ax + by + c
	d, e, f float64 // Second row: y' = dx + ey + f
}

// Identity returns the identity transformation (no change).
func Identity() Affine {
	return Affine{a: 1, e: 1}
}

// NewAffine builds a transform from its six coefficients:
// x' = a*x + b*y + c, y' = d*x + e*y + f.
func NewAffine(a, b, c, d, e, f float64) Affine {
	return Affine{a: a, b: b, c: c, d: d, e: e, f: f}
}

// Linear builds a transform with no translation from a 2x2 matrix.
func Linear(m00, m01, m10, m11 float64) Affine {
	return Affine{a: m00, b: m01, d: m10, e: m11}
}

// Translate returns a translation transformation that shifts points by (tx, ty).
func Translate(tx, ty float64) Affine {
	return Affine{a: 1, c: tx, e: 1, f: ty}
}

// Scale returns a scaling transformation that scales by (sx, sy) around the origin.
func Scale(sx, sy float64) Affine {
	return Affine{a: sx, e: sy}
}

// Rotate returns a rotation by angle radians around the origin.
// With y pointing down, positive angles turn clockwise on screen.
func Rotate(angle float64) Affine {
	sin, cos := math.Sincos(angle)
	return Affine{a: cos, b: -sin, d: sin, e: cos}
}

// Shear returns a shearing transformation: x' = x + sx*y, y' = y + sy*x.
func Shear(sx, sy float64) Affine {
	return Affine{a: 1, b: sx, d: sy, e: 1}
}

// Multiply returns a * other, which applies other first and then a.
func (m Affine) Multiply(other Affine) Affine {
	return Affine{
		a: m.a*other.a + m.b*other.d,
		b: m.a*other.b + m.b*other.e,
		c: m.a*other.c + m.b*other.f + m.c,
		d: m.d*other.a + m.e*other.d,
		e: m.d*other.b + m.e*other.e,
		f: m.d*other.c + m.e*other.f + m.f,
	}
}

// Determinant returns the determinant of the linear part.
func (m Affine) Determinant() float64 {
	return m.a*m.e - m.b*m.d
}

// IsFinite reports whether every coefficient is a finite number.
func (m Affine) IsFinite() bool {
	for _, v := range [6]float64{m.a, m.b, m.c, m.d, m.e, m.f} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Invert returns the inverse transformation.
// Returns false if the matrix is singular or not finite.
func (m Affine) Invert() (Affine, bool) {
	det := m.Determinant()
	if !m.IsFinite() || math.Abs(det) < singularEpsilon {
		return Affine{}, false
	}

	invDet := 1.0 / det
	return Affine{
		a: m.e * invDet,
		b: -m.b * invDet,
		c: (m.b*m.f - m.c*m.e) * invDet,
		d: -m.d * invDet,
		e: m.a * invDet,
		f: (m.c*m.d - m.a*m.f) * invDet,
	}, true
}

// TransformPoint applies the transformation to (x, y).
func (m Affine) TransformPoint(x, y float64) (float64, float64) {
	return m.a*x + m.b*y + m.c, m.d*x + m.e*y + m.f
}

// Elements returns the six coefficients in (a, b, c, d, e, f) order.
func (m Affine) Elements() [6]float64 {
	return [6]float64{m.a, m.b, m.c, m.d, m.e, m.f}
}

// RotateAt returns a rotation by angle radians around (cx, cy).
func RotateAt(angle, cx, cy float64) Affine {
	return Translate(cx, cy).Multiply(Rotate(angle)).Multiply(Translate(-cx, -cy))
}

// ShearAt returns a shear around (cx, cy).
func ShearAt(sx, sy, cx, cy float64) Affine {
	return Translate(cx, cy).Multiply(Shear(sx, sy)).Multiply(Translate(-cx, -cy))
}

// ScaleAt returns a scaling transformation around (cx, cy).
func ScaleAt(sx, sy, cx, cy float64) Affine {
	return Translate(cx, cy).Multiply(Scale(sx, sy)).Multiply(Translate(-cx, -cy))
}
