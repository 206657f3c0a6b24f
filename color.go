package ggfx

import (
	"fmt"
	"strings"

	"github.com/gogpu/ggfx/internal/image"
	"github.com/gogpu/ggfx/internal/param"
)

// Color is a packed 0xAARRGGBB color with straight alpha, the same layout
// as a Buffer pixel.
type Color uint32

// Common colors.
const (
	Transparent Color = 0x00000000
	Black       Color = 0xFF000000
	White       Color = 0xFFFFFFFF
)

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color(image.ARGB(255, r, g, b))
}

// NRGBA creates a color from 8-bit straight-alpha components.
func NRGBA(r, g, b, a uint8) Color {
	return Color(image.ARGB(a, r, g, b))
}

// RGBA implements color.Color. The result is premultiplied, 16 bits per
// channel.
func (c Color) RGBA() (r, g, b, a uint32) {
	ca, cr, cg, cb := image.Channels(uint32(c))
	a = uint32(ca) * 0x101
	r = uint32(cr) * 0x101 * a / 0xffff
	g = uint32(cg) * 0x101 * a / 0xffff
	b = uint32(cb) * 0x101 * a / 0xffff
	return r, g, b, a
}

// ParseColor parses a hex color: "RGB", "RGBA", "RRGGBB" or "RRGGBBAA",
// with or without a leading '#'. Colors without alpha are opaque.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	var r, g, b uint32
	a := uint32(255)
	ok := true

	switch len(hex) {
	case 3: // RGB
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b) && parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b) && parseHex(hex[6:8], &a)
	default:
		ok = false
	}
	if !ok {
		return 0, param.Invalid("color", s, "want #RGB, #RGBA, #RRGGBB or #RRGGBBAA")
	}
	return NRGBA(uint8(r), uint8(g), uint8(b), uint8(a)), nil
}

// parseHex is a helper for hex parsing. It reports false on a non-hex digit.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// String formats c as "#rrggbbaa".
func (c Color) String() string {
	a, r, g, b := image.Channels(uint32(c))
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	v, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
