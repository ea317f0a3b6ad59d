package widget

import (
	"github.com/vk/markupui/internal/attr"
	"github.com/vk/markupui/internal/host"
)

// Button is a clickable text label.
type Button struct {
	leaf

	ID   string
	Text string
}

func NewButton() *Button {
	return &Button{leaf: leaf{kind: KindButton}}
}

func (b *Button) Kind() Kind { return KindButton }

func (b *Button) Attributes() attr.Set {
	return attr.Set{
		attr.Text("id", &b.ID),
		attr.Text("text", &b.Text),
	}
}

func (b *Button) Finalize(bc host.BuildContext) (host.Entity, error) {
	return bc.Allocate(host.Node{
		Kind:  KindButton.String(),
		ID:    b.ID,
		Props: map[string]any{"text": b.Text},
	})
}

// TextBox is an editable text field. Zero sizes mean size to content.
type TextBox struct {
	leaf

	ID            string
	Text          string
	Width, Height float64
	MinWidth      float64
	MinHeight     float64
	MaxWidth      float64
	MaxHeight     float64
}

func NewTextBox() *TextBox {
	return &TextBox{leaf: leaf{kind: KindTextBox}}
}

func (t *TextBox) Kind() Kind { return KindTextBox }

func (t *TextBox) Attributes() attr.Set {
	return attr.Set{
		attr.Text("id", &t.ID),
		attr.Text("text", &t.Text),
		attr.Float64("width", &t.Width),
		attr.Float64("height", &t.Height),
		attr.Float64("min_width", &t.MinWidth),
		attr.Float64("min_height", &t.MinHeight),
		attr.Float64("max_width", &t.MaxWidth),
		attr.Float64("max_height", &t.MaxHeight),
	}
}

func (t *TextBox) Finalize(bc host.BuildContext) (host.Entity, error) {
	return bc.Allocate(host.Node{
		Kind: KindTextBox.String(),
		ID:   t.ID,
		Props: map[string]any{
			"text":       t.Text,
			"width":      t.Width,
			"height":     t.Height,
			"min_width":  t.MinWidth,
			"min_height": t.MinHeight,
			"max_width":  t.MaxWidth,
			"max_height": t.MaxHeight,
		},
	})
}
