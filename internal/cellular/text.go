package cellular

import "github.com/gogpu/ggfx/internal/param"

// MarshalText implements encoding.TextMarshaler.
func (g Grid) MarshalText() ([]byte, error) {
	return []byte(param.FormatName(g.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Grid) UnmarshalText(text []byte) error {
	v, err := param.ParseName("grid", string(text), gridCount, Grid.String)
	if err != nil {
		return err
	}
	*g = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (m Metric) MarshalText() ([]byte, error) {
	return []byte(param.FormatName(m.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Metric) UnmarshalText(text []byte) error {
	v, err := param.ParseName("metric", string(text), metricCount, Metric.String)
	if err != nil {
		return err
	}
	*m = v
	return nil
}
