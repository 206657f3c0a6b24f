package recipe

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/gogpu/ggfx"
)

// entry describes one recipe filter type.
type entry struct {
	name string

	// defaults returns a pointer to the default options, or nil for filters
	// without options.
	defaults func() any

	// build constructs the filter from an options value as stored in Step.
	build func(opts any) (ggfx.Filter, error)
}

// configurable registers a filter whose options decode into T.
func configurable[T any, F ggfx.Filter](name string, def func() T, build func(T) (F, error)) entry {
	return entry{
		name: name,
		defaults: func() any {
			v := def()
			return &v
		},
		build: func(opts any) (ggfx.Filter, error) {
			o, ok := opts.(T)
			if !ok {
				if opts != nil {
					return nil, fmt.Errorf("options are %T, want %T", opts, o)
				}
				o = def()
			}
			f, err := build(o)
			if err != nil {
				return nil, err
			}
			return f, nil
		},
	}
}

// fixed registers a filter without options.
func fixed[F ggfx.Filter](name string, build func() F) entry {
	return entry{
		name: name,
		build: func(any) (ggfx.Filter, error) {
			return build(), nil
		},
	}
}

// registry lists every filter a recipe can name. Map is absent because its
// coordinate fields are functions.
var registry = []entry{
	configurable("crystallize", ggfx.DefaultCrystallizeOptions, ggfx.NewCrystallize),
	configurable("pointillize", ggfx.DefaultPointillizeOptions, ggfx.NewPointillize),
	configurable("cellular", ggfx.DefaultCellularOptions, ggfx.NewCellular),
	configurable("diffuse", ggfx.DefaultDiffuseOptions, ggfx.NewDiffuse),
	configurable("offset", ggfx.DefaultOffsetOptions, ggfx.NewOffset),
	configurable("scale", ggfx.DefaultScaleOptions, ggfx.NewScale),
	configurable("rotate", ggfx.DefaultRotateOptions, ggfx.NewRotate),
	configurable("shear", ggfx.DefaultShearOptions, ggfx.NewShear),
	configurable("color_matrix", ggfx.DefaultColorMatrixOptions, ggfx.NewColorMatrix),
	fixed("grayscale", ggfx.NewGrayscale),
	fixed("sepia", ggfx.NewSepia),
	fixed("invert", ggfx.NewInvert),
}

// Types returns the filter types a recipe may use, in registry order.
func Types() []string {
	return lo.Map(registry, func(e entry, _ int) string { return e.name })
}

func lookup(name string) (entry, bool) {
	return lo.Find(registry, func(e entry) bool { return e.name == name })
}
