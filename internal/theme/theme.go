package theme

import (
	"fmt"
	"sort"

	"github.com/zclconf/go-cty/cty"
)

// Style is a set of properties for one selector.
type Style map[string]cty.Value

// Theme is a merged, read-only visual style description.
type Theme struct {
	Name string
	// Sources lists the stylesheets merged into this theme, in order.
	Sources []string

	styles map[string]Style
}

// New returns an empty theme.
func New(name string) *Theme {
	return &Theme{Name: name, styles: make(map[string]Style)}
}

// Set assigns one property. Only primitive values are accepted.
func (t *Theme) Set(selector, property string, v cty.Value) error {
	if err := checkPrimitive(v); err != nil {
		return fmt.Errorf("%s.%s: %w", selector, property, err)
	}
	st, ok := t.styles[selector]
	if !ok {
		st = make(Style)
		t.styles[selector] = st
	}
	st[property] = v
	return nil
}

// Lookup returns a property value for a selector.
func (t *Theme) Lookup(selector, property string) (cty.Value, bool) {
	if t == nil {
		return cty.NilVal, false
	}
	v, ok := t.styles[selector][property]
	return v, ok
}

// Selectors returns every selector in the theme, sorted.
func (t *Theme) Selectors() []string {
	if t == nil {
		return nil
	}
	out := make([]string, 0, len(t.styles))
	for s := range t.styles {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Clone returns a deep copy; cty values are immutable and shared.
func (t *Theme) Clone() *Theme {
	c := New(t.Name)
	c.Sources = append([]string(nil), t.Sources...)
	for sel, st := range t.styles {
		cs := make(Style, len(st))
		for k, v := range st {
			cs[k] = v
		}
		c.styles[sel] = cs
	}
	return c
}

// merge copies every property of sheet over t.
func (t *Theme) merge(sheet *Sheet) {
	for sel, st := range sheet.Styles {
		dst, ok := t.styles[sel]
		if !ok {
			dst = make(Style, len(st))
			t.styles[sel] = dst
		}
		for k, v := range st {
			dst[k] = v
		}
	}
	t.Sources = append(t.Sources, sheet.Path)
}

// Native returns the theme as plain Go values, suitable for encoding.
func (t *Theme) Native() map[string]map[string]any {
	if t == nil {
		return nil
	}
	out := make(map[string]map[string]any, len(t.styles))
	for sel, st := range t.styles {
		m := make(map[string]any, len(st))
		for k, v := range st {
			m[k] = native(v)
		}
		out[sel] = m
	}
	return out
}

func native(v cty.Value) any {
	switch {
	case v.IsNull():
		return nil
	case v.Type() == cty.String:
		return v.AsString()
	case v.Type() == cty.Bool:
		return v.True()
	case v.Type() == cty.Number:
		f, _ := v.AsBigFloat().Float64()
		return f
	default:
		return v.GoString()
	}
}

func checkPrimitive(v cty.Value) error {
	if !v.IsKnown() || v.IsNull() {
		return fmt.Errorf("value must be known and not null")
	}
	if !v.Type().IsPrimitiveType() {
		return fmt.Errorf("value must be a string, number or bool, got %s", v.Type().FriendlyName())
	}
	if v.Type() == cty.Number && v.AsBigFloat().IsInf() {
		return fmt.Errorf("number must be finite")
	}
	return nil
}
