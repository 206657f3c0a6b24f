package ggfx

import (
	"math"

	"github.com/gogpu/ggfx/internal/image"
	"github.com/gogpu/ggfx/internal/param"
	"github.com/gogpu/ggfx/internal/warp"
)

// ScaleMethod selects the resampling used by NewScale.
type ScaleMethod uint8

// Scale methods.
const (
	// ScaleArea averages every source pixel covered by a destination pixel.
	ScaleArea ScaleMethod = iota
	ScaleNearest
	ScaleBilinear
	ScaleBicubic

	scaleMethodCount
)

// String returns the method name.
func (m ScaleMethod) String() string {
	switch m {
	case ScaleArea:
		return "Area"
	case ScaleNearest:
		return "Nearest"
	case ScaleBilinear:
		return "Bilinear"
	case ScaleBicubic:
		return "Bicubic"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m ScaleMethod) MarshalText() ([]byte, error) {
	return []byte(param.FormatName(m.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ScaleMethod) UnmarshalText(text []byte) error {
	v, err := param.ParseName("method", string(text), scaleMethodCount, ScaleMethod.String)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ScaleOptions configures NewScale.
type ScaleOptions struct {
	Width  int         `toml:"width"`
	Height int         `toml:"height"`
	Method ScaleMethod `toml:"method"`

	// Premultiplied applies to the interpolating methods; area averaging
	// always blends premultiplied.
	Premultiplied bool `toml:"premultiplied"`
}

// DefaultScaleOptions returns area scaling to 32x32.
func DefaultScaleOptions() ScaleOptions {
	return ScaleOptions{Width: 32, Height: 32, Method: ScaleArea, Premultiplied: true}
}

// NewScale builds a filter that resizes the image to Width x Height.
func NewScale(o ScaleOptions) (Filter, error) {
	const name = "scale"
	if o.Width <= 0 {
		return nil, param.WithFilter(param.Invalid("width", o.Width, "must be positive"), name)
	}
	if o.Height <= 0 {
		return nil, param.WithFilter(param.Invalid("height", o.Height, "must be positive"), name)
	}

	var interp Interpolation
	switch o.Method {
	case ScaleArea:
		f, err := NewWholeFilter(name, func(src *Buffer) *Buffer {
			out, _ := image.ScaleArea(src, o.Width, o.Height)
			return out
		})
		if err != nil {
			return nil, err
		}
		f.bounds = func(int, int) (int, int) { return o.Width, o.Height }
		return f, nil
	case ScaleNearest:
		interp = Nearest
	case ScaleBilinear:
		interp = Bilinear
	case ScaleBicubic:
		interp = Bicubic
	default:
		return nil, param.WithFilter(param.Invalid("method", o.Method, "unknown scale method"), name)
	}

	s := Sampling{Edge: EdgeClamp, Interpolation: interp, Premultiplied: o.Premultiplied}
	return NewTransformFilter(name, s, o.Width, o.Height, func(w, h int) InverseMap {
		return warp.Scale(w, h, o.Width, o.Height)
	})
}

// RotateOptions configures NewRotate.
type RotateOptions struct {
	Sampling

	// Angle in radians. Positive angles turn clockwise on screen.
	Angle float64 `toml:"angle"`
}

// DefaultRotateOptions returns a zero rotation with bilinear sampling and
// transparent corners.
func DefaultRotateOptions() RotateOptions {
	return RotateOptions{
		Sampling: Sampling{Edge: EdgeZero, Interpolation: Bilinear, Premultiplied: true},
	}
}

// NewRotate builds a filter that rotates the image about its center. The
// output keeps the source size.
func NewRotate(o RotateOptions) (*TransformFilter, error) {
	const name = "rotate"
	if !param.Finite(o.Angle) {
		return nil, param.WithFilter(param.Invalid("angle", o.Angle, "must be finite"), name)
	}
	return NewTransformFilter(name, o.Sampling, 0, 0, func(w, h int) InverseMap {
		cx, cy := center(w, h)
		return warp.Inverse(image.RotateAt(-o.Angle, cx, cy))
	})
}

// ShearOptions configures NewShear.
type ShearOptions struct {
	Sampling

	// XAngle slants vertical lines and YAngle horizontal lines, in radians.
	XAngle float64 `toml:"x_angle"`
	YAngle float64 `toml:"y_angle"`
}

// DefaultShearOptions returns a zero shear with bilinear sampling and
// transparent corners.
func DefaultShearOptions() ShearOptions {
	return ShearOptions{
		Sampling: Sampling{Edge: EdgeZero, Interpolation: Bilinear, Premultiplied: true},
	}
}

// NewShear builds a filter that shears the image about its center by the
// tangents of XAngle and YAngle. The output keeps the source size.
func NewShear(o ShearOptions) (*TransformFilter, error) {
	const name = "shear"
	for _, a := range []struct {
		key string
		v   float64
	}{{"x_angle", o.XAngle}, {"y_angle", o.YAngle}} {
		if !(math.Abs(a.v) < math.Pi/2) {
			return nil, param.WithFilter(param.Invalid(a.key, a.v, "must be in (-pi/2, pi/2)"), name)
		}
	}
	shx, shy := math.Tan(o.XAngle), math.Tan(o.YAngle)
	if _, ok := image.Shear(shx, shy).Invert(); !ok {
		return nil, param.WithFilter(param.Invalid("y_angle", o.YAngle, "shear is not invertible with this x_angle"), name)
	}
	return NewTransformFilter(name, o.Sampling, 0, 0, func(w, h int) InverseMap {
		cx, cy := center(w, h)
		inv, _ := image.ShearAt(shx, shy, cx, cy).Invert()
		return warp.Inverse(inv)
	})
}

// center returns the center of the pixel grid, so that a half turn maps
// pixels exactly onto pixels.
func center(w, h int) (float64, float64) {
	return float64(w-1) / 2, float64(h-1) / 2
}
