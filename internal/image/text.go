package image

import "github.com/gogpu/ggfx/internal/param"

// MarshalText implements encoding.TextMarshaler.
func (e EdgeAction) MarshalText() ([]byte, error) {
	return []byte(param.FormatName(e.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// It accepts names such as "clamp" or "rgb_clamp".
func (e *EdgeAction) UnmarshalText(text []byte) error {
	v, err := param.ParseName("edge_action", string(text), edgeActionCount, EdgeAction.String)
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (m InterpolationMode) MarshalText() ([]byte, error) {
	return []byte(param.FormatName(m.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *InterpolationMode) UnmarshalText(text []byte) error {
	v, err := param.ParseName("interpolation", string(text), interpCount, InterpolationMode.String)
	if err != nil {
		return err
	}
	*m = v
	return nil
}
