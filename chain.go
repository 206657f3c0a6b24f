package ggfx

import (
	"time"

	"github.com/gogpu/ggfx/internal/image"
)

// Chain applies filters in sequence, first to last.
// A Chain is itself a Filter, so chains nest.
type Chain struct {
	filters []Filter
}

// NewChain creates a chain from the given filters. Nil filters are skipped.
func NewChain(filters ...Filter) *Chain {
	c := &Chain{
		filters: make([]Filter, 0, len(filters)),
	}
	for _, f := range filters {
		c.Add(f)
	}
	return c
}

// Add appends a filter to the chain.
func (c *Chain) Add(f Filter) {
	if f != nil {
		c.filters = append(c.filters, f)
	}
}

// Filters returns the filters in application order.
func (c *Chain) Filters() []Filter {
	return append([]Filter(nil), c.filters...)
}

// Len returns the number of filters in the chain.
func (c *Chain) Len() int {
	return len(c.filters)
}

// IsEmpty returns true if the chain has no filters.
func (c *Chain) IsEmpty() bool {
	return len(c.filters) == 0
}

// Name implements Filter.
func (c *Chain) Name() string { return "chain" }

// Kind implements Filter.
func (c *Chain) Kind() Kind { return KindWhole }

// Bounds returns the output size after every stage.
func (c *Chain) Bounds(width, height int) (int, int) {
	for _, f := range c.filters {
		width, height = f.Bounds(width, height)
	}
	return width, height
}

// Apply runs every filter in order. Intermediate buffers go back to the
// shared pool; src is never modified. An empty chain returns a copy of src.
func (c *Chain) Apply(src *Buffer) (*Buffer, error) {
	if isEmpty(src) {
		return nil, ErrNilBuffer
	}
	if len(c.filters) == 0 {
		return src.Clone(), nil
	}

	start := time.Now()
	current := src
	for _, f := range c.filters {
		next, err := f.Apply(current)
		if current != src && current != next {
			image.PutToDefault(current)
		}
		if err != nil {
			return nil, err
		}
		current = next
	}
	logApplied(c.Name(), KindWhole, current, start)
	return current, nil
}
