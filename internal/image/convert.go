package image

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// FromStdImage creates a Buf from a standard library image.Image.
// The image origin is moved to (0, 0). Returns ErrInvalidDimensions for
// empty images.
func FromStdImage(img image.Image) (*Buf, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	buf, err := NewBuf(width, height)
	if err != nil {
		return nil, err
	}

	// Fast path for NRGBA images: straight alpha, same as Buf.
	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(image.Rect(0, 0, width, height))
		xdraw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, xdraw.Src)
		bounds = nrgba.Bounds()
	}

	for y := range height {
		row := buf.Row(y)
		off := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		for x := range width {
			p := nrgba.Pix[off+x*4 : off+x*4+4 : off+x*4+4]
			row[x] = ARGB(p[3], p[0], p[1], p[2])
		}
	}
	return buf, nil
}

// ToStdImage converts the buffer to an *image.NRGBA.
func (b *Buf) ToStdImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for y := range b.height {
		dst := img.Pix[y*img.Stride : y*img.Stride+b.width*4]
		for x, c := range b.Row(y) {
			a, r, g, bl := Channels(c)
			dst[x*4] = r
			dst[x*4+1] = g
			dst[x*4+2] = bl
			dst[x*4+3] = a
		}
	}
	return img
}

// toPremulImage converts to *image.RGBA, the layout x/image scalers blend in.
func (b *Buf) toPremulImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	for y := range b.height {
		for x, c := range b.Row(y) {
			a, r, g, bl := Channels(c)
			img.SetRGBA(x, y, color.RGBAModel.Convert(color.NRGBA{R: r, G: g, B: bl, A: a}).(color.RGBA))
		}
	}
	return img
}

// fromPremulImage converts a premultiplied *image.RGBA back to straight alpha.
func fromPremulImage(img *image.RGBA) *Buf {
	bounds := img.Bounds()
	buf, err := NewBuf(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil
	}
	for y := range buf.height {
		row := buf.Row(y)
		for x := range buf.width {
			c := color.NRGBAModel.Convert(img.RGBAAt(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			row[x] = ARGB(c.A, c.R, c.G, c.B)
		}
	}
	return buf
}

// boxKernel averages every source pixel whose center falls inside the
// destination pixel footprint. Pixels exactly on the footprint border
// contribute half.
var boxKernel = &xdraw.Kernel{
	Support: 1,
	At: func(t float64) float64 {
		switch {
		case t < 0.5:
			return 1
		case t == 0.5:
			return 0.5
		default:
			return 0
		}
	},
}

// ScaleArea resizes src to width x height by area averaging. Blending happens
// in premultiplied space. Returns ErrInvalidDimensions for non-positive sizes.
func ScaleArea(src *Buf, width, height int) (*Buf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	in := src.toPremulImage()
	out := image.NewRGBA(image.Rect(0, 0, width, height))
	boxKernel.Scale(out, out.Bounds(), in, in.Bounds(), xdraw.Src, nil)
	return fromPremulImage(out), nil
}
