package image

import "testing"

// gradientBuf returns a 4x4 opaque buffer with r = x*64 and g = y*64.
func gradientBuf(t *testing.T) *Buf {
	t.Helper()
	buf, err := NewBuf(4, 4)
	if err != nil {
		t.Fatalf("NewBuf failed: %v", err)
	}
	for y := range 4 {
		for x := range 4 {
			_ = buf.Set(x, y, ARGB(255, byte(x*64), byte(y*64), 128))
		}
	}
	return buf
}

func TestInterpolationMode_String(t *testing.T) {
	tests := []struct {
		m    InterpolationMode
		want string
	}{
		{InterpNearest, "Nearest"},
		{InterpBilinear, "Bilinear"},
		{InterpBicubic, "Bicubic"},
		{InterpolationMode(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestSampler_IntegerCoordinatesExact(t *testing.T) {
	src := gradientBuf(t)
	for _, mode := range []InterpolationMode{InterpNearest, InterpBilinear, InterpBicubic} {
		for _, premul := range []bool{false, true} {
			s := &Sampler{Src: src, Edge: EdgeClamp, Interp: mode, Premultiplied: premul}
			for y := range 4 {
				for x := range 4 {
					if got, want := s.Sample(float64(x), float64(y)), src.At(x, y); got != want {
						t.Errorf("%v premul=%v Sample(%d, %d) = %#08x, want %#08x", mode, premul, x, y, got, want)
					}
				}
			}
		}
	}
}

func TestSampler_Nearest(t *testing.T) {
	src := gradientBuf(t)
	s := &Sampler{Src: src, Edge: EdgeClamp, Interp: InterpNearest}

	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY int
	}{
		{"rounds down", 1.4, 2.2, 1, 2},
		{"rounds up", 1.6, 2.5, 2, 3},
		{"clamps past edge", 3.7, 0, 3, 0},
		{"clamps negative", -0.6, -3, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, want := s.Sample(tt.x, tt.y), src.At(tt.wantX, tt.wantY); got != want {
				t.Errorf("Sample(%v, %v) = %#08x, want pixel (%d, %d) = %#08x", tt.x, tt.y, got, tt.wantX, tt.wantY, want)
			}
		})
	}
}

func TestSampler_NearestLastPixel(t *testing.T) {
	src := gradientBuf(t)
	w, h := src.Bounds()
	x, y := float64(w)-0.4, float64(h)-0.1

	tests := []struct {
		edge  EdgeAction
		wantX int
	}{
		{EdgeZero, w - 1},
		{EdgeClamp, w - 1},
		{EdgeRGBClamp, w - 1},
		{EdgeReflect, w - 1},
		{EdgeWrap, 0},
	}
	for _, tt := range tests {
		t.Run(tt.edge.String(), func(t *testing.T) {
			s := &Sampler{Src: src, Edge: tt.edge, Interp: InterpNearest}
			wantY := h - 1
			if tt.edge == EdgeWrap {
				wantY = 0
			}
			if got, want := s.Sample(x, y), src.At(tt.wantX, wantY); got != want {
				t.Errorf("Sample(%v, %v) = %#08x, want pixel (%d, %d) = %#08x", x, y, got, tt.wantX, wantY, want)
			}
		})
	}
}

func TestSampler_Bilinear(t *testing.T) {
	src := gradientBuf(t)
	s := &Sampler{Src: src, Edge: EdgeClamp, Interp: InterpBilinear}

	// Halfway between x=0 (r=0) and x=1 (r=64).
	a, r, g, b := Channels(s.Sample(0.5, 0))
	if a != 255 || r != 32 || g != 0 || b != 128 {
		t.Errorf("Sample(0.5, 0) = (%d, %d, %d, %d), want (255, 32, 0, 128)", a, r, g, b)
	}

	// Center of the 2x2 block at (1,1)-(2,2).
	a, r, g, b = Channels(s.Sample(1.5, 1.5))
	if a != 255 || r != 96 || g != 96 || b != 128 {
		t.Errorf("Sample(1.5, 1.5) = (%d, %d, %d, %d), want (255, 96, 96, 128)", a, r, g, b)
	}
}

func TestSampler_BilinearPremultipliedNoBleed(t *testing.T) {
	src, _ := NewBuf(2, 1)
	_ = src.Set(0, 0, ARGB(255, 255, 0, 0))
	_ = src.Set(1, 0, ARGB(0, 0, 0, 255)) // transparent blue

	straight := &Sampler{Src: src, Edge: EdgeClamp, Interp: InterpBilinear}
	premul := &Sampler{Src: src, Edge: EdgeClamp, Interp: InterpBilinear, Premultiplied: true}

	_, _, _, sb := Channels(straight.Sample(0.5, 0))
	if sb == 0 {
		t.Error("straight-alpha blend should bleed blue from the transparent neighbor")
	}

	a, r, g, b := Channels(premul.Sample(0.5, 0))
	if a != 128 || r != 255 || g != 0 || b != 0 {
		t.Errorf("premultiplied Sample(0.5, 0) = (%d, %d, %d, %d), want (128, 255, 0, 0)", a, r, g, b)
	}
}

func TestSampler_BilinearZeroEdge(t *testing.T) {
	src, _ := NewBuf(2, 2)
	src.Fill(ARGB(255, 100, 100, 100))
	s := &Sampler{Src: src, Edge: EdgeZero, Interp: InterpBilinear, Premultiplied: true}

	// Half of the footprint lies outside: alpha halves, color survives.
	a, r, _, _ := Channels(s.Sample(1.5, 0))
	if a != 128 || r != 100 {
		t.Errorf("Sample(1.5, 0) = a=%d r=%d, want a=128 r=100", a, r)
	}
}

func TestSampler_BicubicUniform(t *testing.T) {
	src, _ := NewBuf(5, 5)
	c := ARGB(200, 10, 120, 250)
	src.Fill(c)
	for _, premul := range []bool{false, true} {
		s := &Sampler{Src: src, Edge: EdgeClamp, Interp: InterpBicubic, Premultiplied: premul}
		if got := s.Sample(2.3, 1.7); got != c {
			t.Errorf("premul=%v bicubic on uniform buffer = %#08x, want %#08x", premul, got, c)
		}
	}
}

func TestCubicWeight(t *testing.T) {
	if cubicWeight(0) != 1 {
		t.Errorf("cubicWeight(0) = %v, want 1", cubicWeight(0))
	}
	for _, v := range []float64{1, -1, 2, -2, 3} {
		if w := cubicWeight(v); w != 0 {
			t.Errorf("cubicWeight(%v) = %v, want 0", v, w)
		}
	}
	// Partition of unity.
	for _, tx := range []float64{0.1, 0.25, 0.5, 0.9} {
		sum := cubicWeight(tx+1) + cubicWeight(tx) + cubicWeight(tx-1) + cubicWeight(tx-2)
		if sum < 1-1e-12 || sum > 1+1e-12 {
			t.Errorf("weights at %v sum to %v, want 1", tx, sum)
		}
	}
}

func TestSampler_RGBClamp(t *testing.T) {
	src, _ := NewBuf(2, 1)
	src.Fill(ARGB(255, 10, 20, 30))
	s := &Sampler{Src: src, Edge: EdgeRGBClamp, Interp: InterpBilinear}

	// Outside neighbors keep the edge color with zero alpha.
	if got, want := s.Sample(-1, 0), ARGB(0, 10, 20, 30); got != want {
		t.Errorf("Sample(-1, 0) = %#08x, want %#08x", got, want)
	}

	// Straight-alpha blending toward the edge keeps the color, halves alpha.
	a, r, g, b := Channels(s.Sample(1.5, 0))
	if a != 128 || r != 10 || g != 20 || b != 30 {
		t.Errorf("Sample(1.5, 0) = (%d, %d, %d, %d), want (128, 10, 20, 30)", a, r, g, b)
	}
}
