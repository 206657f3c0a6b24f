package param

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestError_Is(t *testing.T) {
	err := fmt.Errorf("building: %w", Invalid("scale", -1.0, "must be positive"))
	if !errors.Is(err, ErrInvalid) {
		t.Fatal("wrapped *Error should match ErrInvalid")
	}

	var pe *Error
	if !errors.As(err, &pe) || pe.Param != "scale" {
		t.Fatalf("errors.As = %v, want Param scale", pe)
	}
}

func TestError_Message(t *testing.T) {
	err := Invalid("randomness", 2.0, "must be in [0, 1]")
	if got, want := err.Error(), "invalid randomness 2: must be in [0, 1]"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	_ = WithFilter(err, "crystallize")
	if got, want := err.Error(), "crystallize: invalid randomness 2: must be in [0, 1]"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	// The first filter to claim an error keeps it.
	_ = WithFilter(err, "chain")
	if err.Filter != "crystallize" {
		t.Errorf("Filter = %q, want crystallize", err.Filter)
	}
}

func TestWithFilter_OtherErrors(t *testing.T) {
	plain := errors.New("boom")
	if got := WithFilter(plain, "x"); got != plain {
		t.Errorf("WithFilter changed a foreign error: %v", got)
	}
	if WithFilter(nil, "x") != nil {
		t.Error("WithFilter(nil) should be nil")
	}
}

func TestValidators(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{"positive ok", Positive("scale", 3), false},
		{"positive zero", Positive("scale", 0), true},
		{"positive NaN", Positive("scale", math.NaN()), true},
		{"positive Inf", Positive("scale", math.Inf(1)), true},
		{"non-negative zero", NonNegative("amount", 0), false},
		{"non-negative negative", NonNegative("amount", -0.1), true},
		{"unit low", Unit("randomness", 0), false},
		{"unit high", Unit("randomness", 1), false},
		{"unit above", Unit("randomness", 1.01), true},
		{"unit NaN", Unit("randomness", math.NaN()), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if (tt.err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", tt.err, tt.wantErr)
			}
			if tt.err != nil && !errors.Is(tt.err, ErrInvalid) {
				t.Errorf("err = %v, should match ErrInvalid", tt.err)
			}
		})
	}
}

type shade uint8

const (
	shadeLight shade = iota
	shadeDarkGray
	shadeCount
)

func (s shade) String() string {
	switch s {
	case shadeLight:
		return "Light"
	case shadeDarkGray:
		return "DarkGray"
	}
	return "Unknown"
}

func TestParseName(t *testing.T) {
	tests := []struct {
		text    string
		want    shade
		wantErr bool
	}{
		{"light", shadeLight, false},
		{"LIGHT", shadeLight, false},
		{"dark_gray", shadeDarkGray, false},
		{"dark-gray", shadeDarkGray, false},
		{" DarkGray ", shadeDarkGray, false},
		{"unknown", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseName("shade", tt.text, shadeCount, shade.String)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseName(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseName(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}

	for s := shade(0); s < shadeCount; s++ {
		back, err := ParseName("shade", FormatName(s.String()), shadeCount, shade.String)
		if err != nil || back != s {
			t.Errorf("FormatName round trip of %v = %v, %v", s, back, err)
		}
	}
}
