package attr

import (
	"context"
	"sort"

	"github.com/vk/markupui/internal/ctxlog"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Binding ties one attribute name to a parser and the field it fills.
type Binding struct {
	Name   string
	Parser Parser
	dst    any
}

// Set is a widget kind's attribute schema.
type Set []Binding

// Float64 binds a floating-point attribute.
func Float64(name string, dst *float64) Binding {
	return Binding{Name: name, Parser: Float, dst: dst}
}

// Float32 binds a single-precision attribute.
func Float32(name string, dst *float32) Binding {
	return Binding{Name: name, Parser: Single, dst: dst}
}

// Boolean binds a "true"/"false" attribute.
func Boolean(name string, dst *bool) Binding {
	return Binding{Name: name, Parser: Bool, dst: dst}
}

// Text binds a verbatim string attribute.
func Text(name string, dst *string) Binding {
	return Binding{Name: name, Parser: String, dst: dst}
}

// Sizing binds a row height or column width attribute.
func Sizing(name string, dst *Length) Binding {
	return Binding{Name: name, Parser: Size, dst: dst}
}

// Names returns the attribute names in the set, sorted.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for _, b := range s {
		names = append(names, b.Name)
	}
	sort.Strings(names)
	return names
}

func (s Set) has(name string) bool {
	for _, b := range s {
		if b.Name == name {
			return true
		}
	}
	return false
}

// Apply coerces every attribute of attrs named in set into its bound field.
// Absent attributes leave their fields untouched. The first value that
// cannot be coerced stops the walk with a *CoercionError.
func Apply(ctx context.Context, kind string, set Set, attrs map[string]string) error {
	logger := ctxlog.FromContext(ctx)

	for _, b := range set {
		raw, ok := attrs[b.Name]
		if !ok {
			continue
		}
		val, err := b.Parser.Parse(raw)
		if err != nil {
			return &CoercionError{Kind: kind, Attribute: b.Name, Raw: raw, Type: b.Parser.Name(), Err: err}
		}
		if err := gocty.FromCtyValue(val, b.dst); err != nil {
			return &CoercionError{Kind: kind, Attribute: b.Name, Raw: raw, Type: b.Parser.Name(), Err: err}
		}
	}

	for name := range attrs {
		if !set.has(name) {
			logger.Debug("Ignoring unrecognized attribute.", "kind", kind, "attribute", name)
		}
	}
	return nil
}
