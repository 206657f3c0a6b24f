package cli

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // decode only

	"github.com/gogpu/ggfx"
)

// readImage decodes any registered format into a buffer.
func readImage(path string) (*ggfx.Buffer, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", path, err)
	}
	buf, err := ggfx.BufferFromImage(img)
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", path, err)
	}
	return buf, format, nil
}

// encoder writes an image in one output format.
type encoder func(w io.Writer, img image.Image, quality int) error

var encoders = map[string]encoder{
	".png":  func(w io.Writer, img image.Image, _ int) error { return png.Encode(w, img) },
	".jpg":  encodeJPEG,
	".jpeg": encodeJPEG,
	".gif":  func(w io.Writer, img image.Image, _ int) error { return gif.Encode(w, img, nil) },
	".bmp":  func(w io.Writer, img image.Image, _ int) error { return bmp.Encode(w, img) },
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
}

func encodeJPEG(w io.Writer, img image.Image, quality int) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
}

func encodeTIFF(w io.Writer, img image.Image, _ int) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

// encoderFor picks the encoder from the file extension.
func encoderFor(path string) (encoder, error) {
	ext := strings.ToLower(filepath.Ext(path))
	enc, ok := encoders[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported output format %q", ext)
	}
	return enc, nil
}

// writeImage encodes buf to path in the format its extension names.
func writeImage(path string, buf *ggfx.Buffer, quality int) (err error) {
	enc, err := encoderFor(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return enc(f, ggfx.ToImage(buf), quality)
}
