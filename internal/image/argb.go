package image

import "math"

// ARGB packs 8-bit channels into a 0xAARRGGBB pixel.
func ARGB(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Channels unpacks a 0xAARRGGBB pixel.
func Channels(c uint32) (a, r, g, b uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Alpha returns the alpha channel of c.
func Alpha(c uint32) uint8 {
	return uint8(c >> 24)
}

// Mix blends from c1 toward c2 by t, channel by channel including alpha:
// t = 0 yields c1, t = 1 yields c2. t is clamped to [0, 1].
func Mix(t float64, c1, c2 uint32) uint32 {
	t = Clamp01(t)
	if t == 0 {
		return c1
	}
	if t == 1 {
		return c2
	}
	a1, r1, g1, b1 := Channels(c1)
	a2, r2, g2, b2 := Channels(c2)
	return ARGB(
		mixChannel(t, a1, a2),
		mixChannel(t, r1, r2),
		mixChannel(t, g1, g2),
		mixChannel(t, b1, b2),
	)
}

func mixChannel(t float64, v1, v2 uint8) uint8 {
	return ToByte(float64(v1) + t*(float64(v2)-float64(v1)))
}

// RGBA is a pixel with float64 channels in the 0-255 range.
// It is the working representation for interpolation.
type RGBA struct {
	A, R, G, B float64
}

// Unpack converts a packed pixel to float channels.
// When premul is true the color channels are scaled by alpha/255.
func Unpack(c uint32, premul bool) RGBA {
	a, r, g, b := Channels(c)
	v := RGBA{A: float64(a), R: float64(r), G: float64(g), B: float64(b)}
	if premul {
		k := v.A / 255
		v.R *= k
		v.G *= k
		v.B *= k
	}
	return v
}

// Pack converts float channels back to a packed pixel.
// When premul is true the color channels are divided by alpha/255 first.
func (v RGBA) Pack(premul bool) uint32 {
	if premul {
		if v.A <= 0 {
			return 0
		}
		k := 255 / v.A
		v.R *= k
		v.G *= k
		v.B *= k
	}
	return ARGB(ToByte(v.A), ToByte(v.R), ToByte(v.G), ToByte(v.B))
}

// Scale multiplies every channel by w.
func (v RGBA) Scale(w float64) RGBA {
	return RGBA{A: v.A * w, R: v.R * w, G: v.G * w, B: v.B * w}
}

// Add returns the channel-wise sum of v and o.
func (v RGBA) Add(o RGBA) RGBA {
	return RGBA{A: v.A + o.A, R: v.R + o.R, G: v.G + o.G, B: v.B + o.B}
}

// ToByte rounds v to the nearest integer and clamps it to [0, 255].
// NaN maps to 0.
func ToByte(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Floor(v + 0.5))
}

// Clamp01 clamps t to [0, 1]. NaN maps to 0.
func Clamp01(t float64) float64 {
	if !(t > 0) {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// SmoothStep is the cubic Hermite ramp: 0 below a, 1 at or above b and
// 3t²-2t³ in between. When a >= b it degenerates to a step at b.
func SmoothStep(a, b, x float64) float64 {
	if x < a {
		return 0
	}
	if x >= b {
		return 1
	}
	t := (x - a) / (b - a)
	return t * t * (3 - 2*t)
}

// clamp clamps an integer value to [minVal, maxVal].
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}
