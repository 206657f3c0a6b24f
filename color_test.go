package ggfx

import (
	"errors"
	"image/color"
	"testing"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color(0)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#000", Black, false},
		{"fff", White, false},
		{"#f008", NRGBA(255, 0, 0, 136), false},
		{"#102030", RGB(0x10, 0x20, 0x30), false},
		{"#10203040", NRGBA(0x10, 0x20, 0x30, 0x40), false},
		{"  #FFFFFF ", White, false},
		{"#12345", 0, true},
		{"#gg0000", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("error %v should match ErrInvalidConfig", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColor_TextRoundTrip(t *testing.T) {
	for _, c := range []Color{Black, White, Transparent, NRGBA(1, 2, 3, 4)} {
		text, err := c.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText failed: %v", err)
		}
		var back Color
		if err := back.UnmarshalText(text); err != nil || back != c {
			t.Errorf("round trip of %v via %q = %v, %v", c, text, back, err)
		}
	}
	if got := RGB(255, 0, 128).String(); got != "#ff0080ff" {
		t.Errorf("String() = %q, want #ff0080ff", got)
	}
}

func TestColor_RGBA(t *testing.T) {
	r, g, b, a := NRGBA(255, 0, 0, 128).RGBA()
	if a != 128*0x101 || r != a || g != 0 || b != 0 {
		t.Errorf("RGBA() = (%d, %d, %d, %d), want premultiplied half red", r, g, b, a)
	}
}
