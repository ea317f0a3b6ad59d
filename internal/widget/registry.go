package widget

import (
	"context"
	"strings"

	"github.com/vk/markupui/internal/attr"
	"github.com/vk/markupui/internal/ctxlog"
	"github.com/vk/markupui/internal/markup"
)

type kindEntry struct {
	tag   string
	kind  Kind
	newFn func() Widget
}

// registry is the closed set of widget kinds, in Kind order.
var registry = []kindEntry{
	{tag: "window", kind: KindWindow, newFn: func() Widget { return NewWindow() }},
	{tag: "button", kind: KindButton, newFn: func() Widget { return NewButton() }},
	{tag: "textbox", kind: KindTextBox, newFn: func() Widget { return NewTextBox() }},
	{tag: "grid", kind: KindGrid, newFn: func() Widget { return NewGrid() }},
	{tag: "row", kind: KindRow, newFn: func() Widget { return NewRow() }},
	{tag: "column", kind: KindColumn, newFn: func() Widget { return NewColumn() }},
}

// Resolve returns a new widget, with default attribute values, for tag.
func Resolve(tag string) (Widget, error) {
	t := strings.ToLower(tag)
	for _, e := range registry {
		if e.tag == t {
			return e.newFn(), nil
		}
	}
	return nil, &UnknownKindError{Tag: tag}
}

// Kinds lists every registered kind in a stable order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(registry))
	for _, e := range registry {
		out = append(out, e.kind)
	}
	return out
}

// Tag returns the markup tag for k, or "" if k is not registered.
func Tag(k Kind) string {
	for _, e := range registry {
		if e.kind == k {
			return e.tag
		}
	}
	return ""
}

// ParseAttributes coerces the element's attributes into w.
func ParseAttributes(ctx context.Context, w Widget, n *markup.Node) error {
	logger := ctxlog.FromContext(ctx)
	if err := attr.Apply(ctx, w.Kind().String(), w.Attributes(), n.Attrs); err != nil {
		return err
	}
	logger.Debug("Widget resolved.", "tag", n.Tag, "kind", w.Kind().String(), "line", n.Line)
	return nil
}
