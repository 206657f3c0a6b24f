package image

import "math"

// EdgeAction determines how coordinates outside the buffer are resolved.
type EdgeAction uint8

const (
	// EdgeZero treats everything outside the buffer as transparent black.
	EdgeZero EdgeAction = iota

	// EdgeClamp clamps coordinates to the nearest edge pixel.
	EdgeClamp

	// EdgeWrap tiles the buffer: coordinates wrap around at the boundaries.
	EdgeWrap

	// EdgeRGBClamp reads neighbors outside the buffer as the nearest edge
	// pixel with its alpha cleared, so straight-alpha blending fades out
	// without darkening.
	EdgeRGBClamp

	// EdgeReflect mirrors the buffer at the boundaries.
	EdgeReflect

	edgeActionCount
)

const unknownMode = "Unknown"

// String returns a string representation of the edge action.
func (e EdgeAction) String() string {
	switch e {
	case EdgeZero:
		return "Zero"
	case EdgeClamp:
		return "Clamp"
	case EdgeWrap:
		return "Wrap"
	case EdgeRGBClamp:
		return "RGBClamp"
	case EdgeReflect:
		return "Reflect"
	default:
		return unknownMode
	}
}

// IsValid reports whether e is a known edge action.
func (e EdgeAction) IsValid() bool {
	return e < edgeActionCount
}

// ResolveCoord maps a continuous coordinate into [0, size) for EdgeClamp,
// EdgeWrap and EdgeReflect. EdgeRGBClamp only narrows v to [-1, size] so it
// can be floored safely; its out-of-range neighbors are resolved per pixel.
// The bool result is false when the coordinate was outside [0, size) (for
// EdgeZero the coordinate is then returned unchanged). Non-finite input is
// always reported as outside and mapped to 0.
func (e EdgeAction) ResolveCoord(v float64, size int) (float64, bool) {
	n := float64(size)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	in := v >= 0 && v < n
	switch e {
	case EdgeClamp:
		return clampFloat(v, 0, n-1), in
	case EdgeRGBClamp:
		return clampFloat(v, -1, n), in
	case EdgeWrap:
		return wrapFloat(v, n), in
	case EdgeReflect:
		return reflectFloat(v, n), in
	default:
		return v, in
	}
}

// ResolveIndex maps an integer index into [0, size).
// Returns false if the index is outside and the action is EdgeZero.
func (e EdgeAction) ResolveIndex(i, size int) (int, bool) {
	if i >= 0 && i < size {
		return i, true
	}
	switch e {
	case EdgeClamp, EdgeRGBClamp:
		return clamp(i, 0, size-1), true
	case EdgeWrap:
		return Mod(i, size), true
	case EdgeReflect:
		return reflectIndex(i, size), true
	default:
		return 0, false
	}
}

// Mod returns a modulo b, always in [0, b) for positive b.
func Mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// wrapFloat reduces v into [0, n).
func wrapFloat(v, n float64) float64 {
	w := v - n*math.Floor(v/n)
	// Rounding can land exactly on n for tiny negative v.
	if w >= n || w < 0 {
		return 0
	}
	return w
}

// reflectFloat mirrors v at every multiple of n, yielding a value in [0, n).
func reflectFloat(v, n float64) float64 {
	period := 2 * n
	t := wrapFloat(v, period)
	if t >= n {
		t = period - t
		if t >= n {
			t = math.Nextafter(n, 0)
		}
	}
	return t
}

// reflectIndex mirrors an integer index, e.g. -1 -> 0, size -> size-1.
func reflectIndex(i, size int) int {
	period := 2 * size
	t := Mod(i, period)
	if t >= size {
		t = period - 1 - t
	}
	return t
}

// clampFloat clamps a float64 value to [minVal, maxVal].
func clampFloat(val, minVal, maxVal float64) float64 {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}
