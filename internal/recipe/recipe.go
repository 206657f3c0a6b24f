// Package recipe reads and writes filter pipelines as TOML.
//
// A recipe is a list of [[filter]] tables applied in order. Each table names
// its filter with a type key; the other keys set that filter's options and
// default to the filter's documented defaults:
//
//	[[filter]]
//	type = "crystallize"
//	scale = 16
//	edge_color = "#ff0000"
//
//	[[filter]]
//	type = "invert"
package recipe

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/samber/lo"

	"github.com/gogpu/ggfx"
)

// ErrUnknownType is returned for a filter type the registry does not know.
var ErrUnknownType = errors.New("unknown filter type")

// Step is one filter of a recipe.
type Step struct {
	// Type is the registry name, such as "crystallize".
	Type string

	// Options holds the filter's option record by value, such as a
	// ggfx.CrystallizeOptions. It is nil for filters without options.
	Options any
}

// Filter builds the step's filter.
func (s Step) Filter() (ggfx.Filter, error) {
	e, ok := lookup(s.Type)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownType, s.Type)
	}
	return e.build(s.Options)
}

// Recipe is an ordered filter pipeline.
type Recipe struct {
	Steps []Step
}

// Chain builds every step into a single chain.
func (r *Recipe) Chain() (*ggfx.Chain, error) {
	c := ggfx.NewChain()
	for i, s := range r.Steps {
		f, err := s.Filter()
		if err != nil {
			return nil, stepError(i, s.Type, err)
		}
		c.Add(f)
	}
	return c, nil
}

type document struct {
	Filters []toml.Primitive `toml:"filter"`
}

// ParseFile reads a recipe from a file.
func ParseFile(path string) (*Recipe, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a recipe and validates every step. Unknown keys and types are
// errors, as are option values the filter constructors reject.
func Parse(r io.Reader) (*Recipe, error) {
	var doc document
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("recipe: %w", err)
	}

	rec := &Recipe{Steps: make([]Step, 0, len(doc.Filters))}
	for i, prim := range doc.Filters {
		s, err := decodeStep(md, prim)
		if err != nil {
			return nil, stepError(i, s.Type, err)
		}
		if _, err := s.Filter(); err != nil {
			return nil, stepError(i, s.Type, err)
		}
		rec.Steps = append(rec.Steps, s)
	}

	if keys := md.Undecoded(); len(keys) > 0 {
		names := lo.Map(keys, func(k toml.Key, _ int) string { return k.String() })
		return nil, fmt.Errorf("recipe: unknown keys %s", strings.Join(names, ", "))
	}
	return rec, nil
}

func decodeStep(md toml.MetaData, prim toml.Primitive) (Step, error) {
	var raw map[string]any
	if err := md.PrimitiveDecode(prim, &raw); err != nil {
		return Step{}, err
	}
	name, _ := raw["type"].(string)
	s := Step{Type: name}
	if name == "" {
		return s, errors.New("missing type")
	}
	e, ok := lookup(name)
	if !ok {
		return s, fmt.Errorf("%w %q", ErrUnknownType, name)
	}

	allowed := map[string]bool{"type": true}
	var opts any
	if e.defaults != nil {
		opts = e.defaults()
		fieldKeys(reflect.TypeOf(opts).Elem(), allowed)
	}
	var unknown []string
	for k := range raw {
		if !allowed[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return s, fmt.Errorf("unknown keys %s", strings.Join(unknown, ", "))
	}

	if opts != nil {
		if err := md.PrimitiveDecode(prim, opts); err != nil {
			return s, err
		}
		s.Options = reflect.ValueOf(opts).Elem().Interface()
	}
	return s, nil
}

// Encode writes the recipe as TOML. Parse reads the output back into an
// equal recipe.
func Encode(w io.Writer, r *Recipe) error {
	doc := struct {
		Filters []map[string]any `toml:"filter"`
	}{}
	for _, s := range r.Steps {
		table := map[string]any{"type": s.Type}
		if s.Options != nil {
			fieldValues(reflect.ValueOf(s.Options), table)
		}
		doc.Filters = append(doc.Filters, table)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return fmt.Errorf("recipe: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func stepError(i int, typ string, err error) error {
	if typ == "" {
		return fmt.Errorf("recipe: filter %d: %w", i+1, err)
	}
	return fmt.Errorf("recipe: filter %d (%s): %w", i+1, typ, err)
}

// tomlName returns the key of a struct field, or "" for fields the decoder
// flattens or skips.
func tomlName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
	switch {
	case name == "-" || !f.IsExported():
		return ""
	case name == "" && f.Anonymous && f.Type.Kind() == reflect.Struct:
		return ""
	case name == "":
		return f.Name
	}
	return name
}

// fieldKeys adds the keys of t, including those of embedded structs.
func fieldKeys(t reflect.Type, into map[string]bool) {
	for i := range t.NumField() {
		f := t.Field(i)
		if name := tomlName(f); name != "" {
			into[name] = true
		} else if f.Anonymous && f.Type.Kind() == reflect.Struct {
			fieldKeys(f.Type, into)
		}
	}
}

// fieldValues flattens the fields of v into a table.
func fieldValues(v reflect.Value, into map[string]any) {
	t := v.Type()
	for i := range t.NumField() {
		f := t.Field(i)
		if name := tomlName(f); name != "" {
			into[name] = v.Field(i).Interface()
		} else if f.Anonymous && f.Type.Kind() == reflect.Struct {
			fieldValues(v.Field(i), into)
		}
	}
}
