package ggfx

import (
	"errors"

	"github.com/gogpu/ggfx/internal/param"
)

// Common errors.
var (
	// ErrInvalidConfig is matched by every configuration error.
	ErrInvalidConfig = param.ErrInvalid

	// ErrNilBuffer is returned by Apply when the source buffer is nil or
	// has no pixels, such as the zero Buffer.
	ErrNilBuffer = errors.New("ggfx: nil buffer")
)

// ConfigError reports an invalid filter option. Filter constructors return
// it before any pixel is touched; use errors.As to read the details.
type ConfigError = param.Error
