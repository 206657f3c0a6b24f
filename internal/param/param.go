// Package param holds the configuration error shared by the filter
// constructors and the packages they build on.
package param

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalid is matched by every *Error through errors.Is.
var ErrInvalid = errors.New("invalid configuration")

// Error reports an invalid parameter value. It is raised when a filter is
// constructed, never while pixels are processed.
type Error struct {
	Filter string // empty until a filter constructor claims the error
	Param  string
	Value  any
	Reason string
}

// Invalid returns an Error for param without a filter name.
func Invalid(param string, value any, reason string) *Error {
	return &Error{Param: param, Value: value, Reason: reason}
}

func (e *Error) Error() string {
	if e.Filter == "" {
		return fmt.Sprintf("invalid %s %v: %s", e.Param, e.Value, e.Reason)
	}
	return fmt.Sprintf("%s: invalid %s %v: %s", e.Filter, e.Param, e.Value, e.Reason)
}

// Is makes errors.Is(err, ErrInvalid) succeed.
func (e *Error) Is(target error) bool {
	return target == ErrInvalid
}

// WithFilter attaches a filter name to err if it wraps an *Error that has
// none yet. Other errors are returned unchanged.
func WithFilter(err error, filter string) error {
	var pe *Error
	if errors.As(err, &pe) && pe.Filter == "" {
		pe.Filter = filter
	}
	return err
}

// Finite reports whether every value is a finite number.
func Finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Positive validates that v is finite and strictly greater than zero.
func Positive(name string, v float64) error {
	if !Finite(v) || v <= 0 {
		return Invalid(name, v, "must be a positive finite number")
	}
	return nil
}

// NonNegative validates that v is finite and not negative.
func NonNegative(name string, v float64) error {
	if !Finite(v) || v < 0 {
		return Invalid(name, v, "must be a finite number >= 0")
	}
	return nil
}

// Unit validates that v lies in [0, 1].
func Unit(name string, v float64) error {
	if !(v >= 0 && v <= 1) {
		return Invalid(name, v, "must be in [0, 1]")
	}
	return nil
}

// ParseName looks up text among the names of the values [0, count) of an
// enum. Case, underscores and dashes are ignored, so "rgb_clamp" matches
// "RGBClamp".
func ParseName[T ~uint8](param, text string, count T, name func(T) string) (T, error) {
	want := normalizeName(text)
	for v := T(0); v < count; v++ {
		if normalizeName(name(v)) == want {
			return v, nil
		}
	}
	return 0, Invalid(param, text, "unknown value")
}

// FormatName renders an enum name the way ParseName accepts it back.
func FormatName(name string) string {
	return strings.ToLower(name)
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(s)
}
