package ggfx

import (
	stdimage "image"

	"github.com/gogpu/ggfx/internal/image"
)

// Buffer is a rectangular grid of packed 0xAARRGGBB pixels with straight
// alpha. See NewBuffer.
type Buffer = image.Buf

// Pixel buffer errors.
var (
	ErrInvalidDimensions = image.ErrInvalidDimensions
	ErrDataTooSmall      = image.ErrDataTooSmall
	ErrOutOfBounds       = image.ErrOutOfBounds
)

// NewBuffer allocates a fully transparent buffer.
func NewBuffer(width, height int) (*Buffer, error) {
	return image.NewBuf(width, height)
}

// BufferFromPixels wraps row-major pixel data without copying.
func BufferFromPixels(pix []uint32, width, height int) (*Buffer, error) {
	return image.FromPixels(pix, width, height)
}

// BufferFromImage copies any image.Image into a new Buffer.
func BufferFromImage(img stdimage.Image) (*Buffer, error) {
	return image.FromStdImage(img)
}

// ToImage copies b into a new *image.NRGBA.
func ToImage(b *Buffer) *stdimage.NRGBA {
	return b.ToStdImage()
}

// ARGB packs 8-bit channels into a pixel value.
func ARGB(a, r, g, b uint8) uint32 {
	return image.ARGB(a, r, g, b)
}

// Release hands a buffer returned by a filter back to the shared pool.
// The caller must not use b afterwards.
func Release(b *Buffer) {
	image.PutToDefault(b)
}
