// Package ggfx provides cellular stylization and geometric warping filters
// for packed ARGB pixel buffers.
//
// # Overview
//
// Every filter is a pure function from an immutable source Buffer to a new
// output Buffer. Filters are built from an options record, validated once at
// construction, and may then be applied any number of times from any
// goroutine.
//
// Two engines do the heavy lifting:
//   - a Worley (cellular) noise engine that scatters one site per grid cell
//     and answers nearest-site queries, used by Crystallize, Pointillize and
//     Cellular;
//   - an inverse-mapped resampler that samples the source wherever a
//     per-pixel coordinate map points, used by Diffuse, Offset, Map, Scale,
//     Rotate and Shear.
//
// # Quick Start
//
//	import "github.com/gogpu/ggfx"
//
//	src, _ := ggfx.BufferFromImage(img)
//
//	opts := ggfx.DefaultCrystallizeOptions()
//	opts.Scale = 24
//	opts.Randomness = 0.6
//	crystallize, err := ggfx.NewCrystallize(opts)
//	if err != nil {
//	    return err
//	}
//
//	out, err := crystallize.Apply(src)
//
// # Pixel Format
//
// A Buffer stores one uint32 per pixel as 0xAARRGGBB with straight alpha.
// Rows are contiguous, origin at the top-left, x to the right, y down.
//
// # Filter Kinds
//
// Filters come in three kinds, reported by Filter.Kind:
//   - KindPixel: each output pixel depends only on the same input pixel
//     (color matrix);
//   - KindTransform: each output pixel samples the source at a mapped
//     position (diffuse, offset, map, scale, rotate, shear);
//   - KindWhole: the filter needs random access to the whole source
//     (crystallize, pointillize, cellular, area scaling, chains).
//
// # Errors
//
// Invalid options are reported by the constructors as *ConfigError values,
// which match ErrInvalidConfig with errors.Is. Apply only fails for a nil
// source.
package ggfx

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
