package cellular

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/ggfx/internal/image"
	"github.com/gogpu/ggfx/internal/param"
)

func mustTransform(t *testing.T, scale float64) Transform {
	t.Helper()
	tr, err := NewTransform(1, 0, 0, 1, scale, 1)
	if err != nil {
		t.Fatalf("NewTransform failed: %v", err)
	}
	return tr
}

func mustEngine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return e
}

func gradient(t *testing.T, w, h int) *image.Buf {
	t.Helper()
	buf, err := image.NewBuf(w, h)
	if err != nil {
		t.Fatalf("NewBuf failed: %v", err)
	}
	for y := range h {
		for x := range w {
			_ = buf.Set(x, y, image.ARGB(255, uint8(x*30), uint8(y*30), 77))
		}
	}
	return buf
}

func TestEngine_UniformScenario(t *testing.T) {
	fill := image.ARGB(255, 40, 90, 200)
	src, _ := image.NewBuf(4, 4)
	src.Fill(fill)

	tests := []struct {
		name string
		cfg  Config
	}{
		{"crystallize fade", Config{Style: StyleCrystallize, FadeEdges: true, EdgeThickness: 0.4}},
		{"crystallize edge color equal to fill", Config{Style: StyleCrystallize, EdgeColor: fill, EdgeThickness: 0.4}},
		{"pointillize fade", Config{Style: StylePointillize, FadeEdges: true, EdgeThickness: 0.4, Fuzziness: 0.1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.Transform = mustTransform(t, 4)
			out := mustEngine(t, tt.cfg).Render(src)
			if !out.Equal(src) {
				t.Errorf("output differs from uniform input: %v", out.Pix())
			}
		})
	}
}

func TestEngine_SiteReproducesSource(t *testing.T) {
	src := gradient(t, 8, 8)
	for _, style := range []Style{StyleCrystallize, StylePointillize} {
		e := mustEngine(t, Config{
			Style:         style,
			Transform:     mustTransform(t, 4),
			EdgeThickness: 0.4,
			Fuzziness:     0.1,
			EdgeColor:     image.ARGB(255, 255, 0, 0),
		})
		// With randomness 0 the sites map to (2, 2), (6, 2), (2, 6) and (6, 6).
		for _, p := range [][2]int{{2, 2}, {6, 2}, {2, 6}, {6, 6}} {
			if got, want := e.Pixel(src, p[0], p[1]), src.At(p[0], p[1]); got != want {
				t.Errorf("%v Pixel(%d, %d) = %#08x, want source %#08x", style, p[0], p[1], got, want)
			}
		}
	}
}

func TestEngine_CrystallizeThicknessRange(t *testing.T) {
	src := gradient(t, 8, 8)
	red := image.ARGB(255, 255, 0, 0)
	tests := []struct {
		thick    float64
		wantSame bool
	}{
		{0.4, true},
		{1, true},
		{2, false},
	}
	for _, tt := range tests {
		e := mustEngine(t, Config{
			Style:         StyleCrystallize,
			Transform:     mustTransform(t, 4),
			EdgeThickness: tt.thick,
			EdgeColor:     red,
		})
		// The site of cell (0, 0) maps to (2, 2); its F2 distance is 1.
		got, want := e.Pixel(src, 2, 2), src.At(2, 2)
		if (got == want) != tt.wantSame {
			t.Errorf("thickness %v: Pixel(2, 2) = %#08x, source %#08x, want same = %v",
				tt.thick, got, want, tt.wantSame)
		}
	}
}

func TestEngine_CrystallizeEdge(t *testing.T) {
	src := gradient(t, 8, 8)
	red := image.ARGB(255, 255, 0, 0)
	e := mustEngine(t, Config{
		Style:         StyleCrystallize,
		Transform:     mustTransform(t, 4),
		EdgeThickness: 0.4,
		EdgeColor:     red,
	})
	// (4, 2) lies on the border between the cells of (2, 2) and (6, 2).
	if got := e.Pixel(src, 4, 2); got != red {
		t.Errorf("Pixel(4, 2) = %#08x, want edge color %#08x", got, red)
	}
}

func TestEngine_PointillizeOutsideDisc(t *testing.T) {
	src := gradient(t, 8, 8)
	bg := image.ARGB(255, 0, 0, 255)
	e := mustEngine(t, Config{
		Style:         StylePointillize,
		Transform:     mustTransform(t, 4),
		EdgeThickness: 0.2,
		EdgeColor:     bg,
	})
	// (0, 0) is sqrt(0.5) noise units away from the nearest site.
	if got := e.Pixel(src, 0, 0); got != bg {
		t.Errorf("Pixel(0, 0) = %#08x, want background %#08x", got, bg)
	}
}

func TestFadeRatio_Clamped(t *testing.T) {
	tests := []struct {
		d0, d1 float64
		want   float64
	}{
		{0, 0, 0.5},
		{0.3, 0, 0.5},
		{0, 1, 0},
		{1, 1, 0.5},
		{0.5, 1, 0.25},
		{5, 1, 1},
		{math.NaN(), 1, 0},
		{1, math.NaN(), 0.5},
	}
	for _, tt := range tests {
		got := fadeRatio(tt.d0, tt.d1)
		if got < 0 || got > 1 {
			t.Errorf("fadeRatio(%v, %v) = %v, outside [0, 1]", tt.d0, tt.d1, got)
		}
		if got != tt.want {
			t.Errorf("fadeRatio(%v, %v) = %v, want %v", tt.d0, tt.d1, got, tt.want)
		}
	}
}

func TestEdgeBlend(t *testing.T) {
	tests := []struct {
		d0, d1, thick float64
		want          float64
	}{
		{0.5, 0.5, 0.4, 0},
		{0, 1, 0.4, 1},
		{0.2, 0.3, 0, 1},
		{0, 0, 0.4, 0},
	}
	for _, tt := range tests {
		got := edgeBlend(tt.d0, tt.d1, tt.thick)
		if got != tt.want {
			t.Errorf("edgeBlend(%v, %v, %v) = %v, want %v", tt.d0, tt.d1, tt.thick, got, tt.want)
		}
	}
	for i := range 100 {
		d1 := float64(i) / 50
		if b := edgeBlend(0, d1, 0.4); b < 0 || b > 1 {
			t.Fatalf("edgeBlend(0, %v) = %v, outside [0, 1]", d1, b)
		}
	}
}

func TestEngine_Texture(t *testing.T) {
	src, _ := image.NewBuf(8, 8)
	e := mustEngine(t, Config{
		Style:        StyleTexture,
		Transform:    mustTransform(t, 4),
		Coefficients: [3]float64{1, 0, 0},
		Amount:       0.5,
		Turbulence:   1,
	})

	if got := e.Pixel(src, 2, 2); got != image.ARGB(255, 0, 0, 0) {
		t.Errorf("Pixel at site = %#08x, want opaque black", got)
	}
	// F1 at (0, 0) is sqrt(0.5).
	want := image.ToByte(255 * math.Sqrt(0.5))
	if got := e.Pixel(src, 0, 0); got != image.ARGB(255, want, want, want) {
		t.Errorf("Pixel(0, 0) = %#08x, want gray %d", got, want)
	}

	out := e.Render(src)
	if !out.Equal(e.Render(src)) {
		t.Error("texture rendering is not deterministic")
	}
}

func TestEngine_TextureTurbulence(t *testing.T) {
	cfg := Config{
		Style:        StyleTexture,
		Transform:    mustTransform(t, 4),
		Evaluator:    Evaluator{Randomness: 1, Seed: 3},
		Coefficients: [3]float64{1, 0, 0},
		Amount:       1,
		Turbulence:   1,
	}
	single := mustEngine(t, cfg)
	cfg.Turbulence = 4
	multi := mustEngine(t, cfg)

	// Octaves only add non-negative terms.
	for _, p := range [][2]float64{{1, 1}, {5, 3}, {7.5, 0.5}} {
		if s, m := single.Field(p[0], p[1]), multi.Field(p[0], p[1]); m < s {
			t.Errorf("Field%v: turbulence 4 = %v < single octave %v", p, m, s)
		}
	}
}

func TestNew_Validation(t *testing.T) {
	tr := mustTransform(t, 8)
	tests := []struct {
		name string
		cfg  Config
	}{
		{"unknown style", Config{Style: 9, Transform: tr}},
		{"zero transform", Config{}},
		{"bad randomness", Config{Transform: tr, Evaluator: Evaluator{Randomness: 2}}},
		{"negative thickness", Config{Transform: tr, EdgeThickness: -1}},
		{"NaN fuzziness", Config{Style: StylePointillize, Transform: tr, Fuzziness: math.NaN()}},
		{"turbulence below one", Config{Style: StyleTexture, Transform: tr, Amount: 1, Turbulence: 0.5}},
		{"infinite amount", Config{Style: StyleTexture, Transform: tr, Amount: math.Inf(1), Turbulence: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.cfg); !errors.Is(err, param.ErrInvalid) {
				t.Errorf("New error = %v, want param.ErrInvalid", err)
			}
		})
	}
}

func BenchmarkEngine_Render(b *testing.B) {
	src, _ := image.NewBuf(256, 256)
	tr, _ := NewTransform(1, 0, 0, 1, 16, 1)
	e, _ := New(Config{Style: StyleCrystallize, Transform: tr, EdgeThickness: 0.4, Evaluator: Evaluator{Randomness: 0.8}})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Render(src)
	}
}
