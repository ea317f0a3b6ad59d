package theme

import "github.com/zclconf/go-cty/cty"

// DefaultName names the built-in theme.
const DefaultName = "default"

type prop struct {
	selector, property string
	value              cty.Value
}

var defaultProps = []prop{
	{"window", "background", cty.StringVal("#fafafa")},
	{"window", "foreground", cty.StringVal("#212121")},
	{"button", "background", cty.StringVal("#2196f3")},
	{"button", "foreground", cty.StringVal("#ffffff")},
	{"button", "border_radius", cty.NumberIntVal(2)},
	{"button", "padding", cty.NumberIntVal(8)},
	{"textbox", "background", cty.StringVal("#ffffff")},
	{"textbox", "border_color", cty.StringVal("#bdbdbd")},
	{"textbox", "border_width", cty.NumberIntVal(1)},
	{"grid", "background", cty.StringVal("transparent")},
	{"row", "spacing", cty.NumberIntVal(0)},
	{"column", "spacing", cty.NumberIntVal(0)},
}

// Default returns the built-in light theme. fontFamily is the family the
// runtime registered for body text; an empty string leaves fonts unset.
func Default(fontFamily string) *Theme {
	t := New(DefaultName)

	props := defaultProps
	if fontFamily != "" {
		props = append(props[:len(props):len(props)],
			prop{"window", "font_family", cty.StringVal(fontFamily)},
			prop{"window", "font_size", cty.NumberIntVal(14)},
		)
	}

	for _, p := range props {
		st, ok := t.styles[p.selector]
		if !ok {
			st = make(Style)
			t.styles[p.selector] = st
		}
		st[p.property] = p.value
	}
	return t
}
