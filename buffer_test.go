package ggfx

import (
	"errors"
	stdimage "image"
	"image/color"
	"testing"
)

func TestBuffer_ImageBridge(t *testing.T) {
	img := stdimage.NewNRGBA(stdimage.Rect(2, 3, 5, 5))
	img.SetNRGBA(2, 3, color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	img.SetNRGBA(4, 4, color.NRGBA{R: 255, A: 255})

	buf, err := BufferFromImage(img)
	if err != nil {
		t.Fatalf("BufferFromImage failed: %v", err)
	}
	if w, h := buf.Bounds(); w != 3 || h != 2 {
		t.Fatalf("Bounds = (%d, %d), want (3, 2)", w, h)
	}
	if got, want := buf.At(0, 0), ARGB(40, 10, 20, 30); got != want {
		t.Errorf("At(0, 0) = %#08x, want %#08x", got, want)
	}
	if got, want := buf.At(2, 1), ARGB(255, 255, 0, 0); got != want {
		t.Errorf("At(2, 1) = %#08x, want %#08x", got, want)
	}

	back := ToImage(buf)
	if got := back.NRGBAAt(0, 0); got != (color.NRGBA{R: 10, G: 20, B: 30, A: 40}) {
		t.Errorf("ToImage pixel (0, 0) = %v", got)
	}
}

func TestBuffer_Errors(t *testing.T) {
	if _, err := NewBuffer(0, 1); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("NewBuffer(0, 1) error = %v, want ErrInvalidDimensions", err)
	}
	if _, err := BufferFromPixels(make([]uint32, 3), 2, 2); !errors.Is(err, ErrDataTooSmall) {
		t.Errorf("BufferFromPixels short error = %v, want ErrDataTooSmall", err)
	}
}

func TestRelease_Reuse(t *testing.T) {
	out, err := NewInvert().Apply(fill(t, 7, 3, ARGB(255, 0, 0, 0)))
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	Release(out)

	again, _ := NewInvert().Apply(fill(t, 7, 3, ARGB(255, 1, 1, 1)))
	if got, want := again.At(6, 2), ARGB(255, 254, 254, 254); got != want {
		t.Errorf("pixel after reuse = %#08x, want %#08x", got, want)
	}
}
