// Package image provides the packed ARGB pixel buffer used by ggfx filters.
//
// A Buf stores one uint32 per pixel in 0xAARRGGBB order with straight
// (non-premultiplied) alpha. Rows are contiguous with no padding, so the
// pixel at (x, y) lives at index y*width + x.
package image

import "errors"

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrDataTooSmall is returned when provided pixel data is smaller than required.
	ErrDataTooSmall = errors.New("image: pixel data too small")

	// ErrOutOfBounds is returned when pixel coordinates are outside buffer bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")
)

// Buf is a rectangular grid of packed ARGB pixels.
//
// Thread safety: Buf is safe for concurrent read access. Set, Fill and
// Clear require external synchronization.
type Buf struct {
	pix    []uint32
	width  int
	height int
}

// NewBuf creates a zeroed (fully transparent) buffer.
// Returns an error if dimensions are invalid.
func NewBuf(width, height int) (*Buf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Buf{
		pix:    make([]uint32, width*height),
		width:  width,
		height: height,
	}, nil
}

// FromPixels wraps existing pixel data without copying.
// The caller must not modify pix while the buffer is in use as filter input.
func FromPixels(pix []uint32, width, height int) (*Buf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	n := width * height
	if len(pix) < n {
		return nil, ErrDataTooSmall
	}
	return &Buf{
		pix:    pix[:n],
		width:  width,
		height: height,
	}, nil
}

// Clone creates a deep copy of the buffer.
func (b *Buf) Clone() *Buf {
	pix := make([]uint32, len(b.pix))
	copy(pix, b.pix)
	return &Buf{
		pix:    pix,
		width:  b.width,
		height: b.height,
	}
}

// Width returns the buffer width in pixels.
func (b *Buf) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *Buf) Height() int {
	return b.height
}

// Bounds returns the buffer dimensions as (width, height).
func (b *Buf) Bounds() (int, int) {
	return b.width, b.height
}

// Pix returns the raw pixel slice.
func (b *Buf) Pix() []uint32 {
	return b.pix
}

// Row returns the pixels of row y, or nil if y is out of bounds.
func (b *Buf) Row(y int) []uint32 {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.width
	return b.pix[start : start+b.width]
}

// In reports whether (x, y) lies inside the buffer.
func (b *Buf) In(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the pixel at (x, y), or 0 (transparent) if out of bounds.
func (b *Buf) At(x, y int) uint32 {
	if !b.In(x, y) {
		return 0
	}
	return b.pix[y*b.width+x]
}

// AtClamped returns the pixel nearest to (x, y) inside the buffer.
func (b *Buf) AtClamped(x, y int) uint32 {
	x = clamp(x, 0, b.width-1)
	y = clamp(y, 0, b.height-1)
	return b.pix[y*b.width+x]
}

// Set stores c at (x, y).
// Returns ErrOutOfBounds if coordinates are outside the buffer.
func (b *Buf) Set(x, y int, c uint32) error {
	if !b.In(x, y) {
		return ErrOutOfBounds
	}
	b.pix[y*b.width+x] = c
	return nil
}

// Fill sets every pixel to c.
func (b *Buf) Fill(c uint32) {
	for i := range b.pix {
		b.pix[i] = c
	}
}

// Clear sets all pixels to zero (transparent black).
func (b *Buf) Clear() {
	clear(b.pix)
}

// Equal reports whether two buffers have the same size and pixels.
func (b *Buf) Equal(o *Buf) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.width != o.width || b.height != o.height {
		return false
	}
	for i, p := range b.pix {
		if o.pix[i] != p {
			return false
		}
	}
	return true
}
