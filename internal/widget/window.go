package widget

import (
	"github.com/vk/markupui/internal/attr"
	"github.com/vk/markupui/internal/host"
	"github.com/vk/markupui/internal/theme"
)

// Window is the root of every markup window.
type Window struct {
	container

	ID    string
	Title string

	X, Y          float64
	Width, Height float64
	MinWidth      float64
	MinHeight     float64
	// MaxWidth and MaxHeight of 0 leave the window unbounded.
	MaxWidth  float64
	MaxHeight float64

	Opacity     float32
	Borderless  bool
	Resizeable  bool
	AlwaysOnTop bool

	theme  *theme.Theme
	entity host.Entity
}

// NewWindow returns a Window with default attributes.
func NewWindow() *Window {
	return &Window{Width: 800, Height: 600, Opacity: 1}
}

func (w *Window) Kind() Kind { return KindWindow }

func (w *Window) Attributes() attr.Set {
	return attr.Set{
		attr.Text("id", &w.ID),
		attr.Text("title", &w.Title),
		attr.Float64("x", &w.X),
		attr.Float64("y", &w.Y),
		attr.Float64("width", &w.Width),
		attr.Float64("height", &w.Height),
		attr.Float64("min_width", &w.MinWidth),
		attr.Float64("min_height", &w.MinHeight),
		attr.Float64("max_width", &w.MaxWidth),
		attr.Float64("max_height", &w.MaxHeight),
		attr.Float32("opacity", &w.Opacity),
		attr.Boolean("borderless", &w.Borderless),
		attr.Boolean("resizeable", &w.Resizeable),
		attr.Boolean("always_on_top", &w.AlwaysOnTop),
	}
}

// SetTheme sets the theme registered with the window root.
func (w *Window) SetTheme(t *theme.Theme) {
	w.theme = t
}

func (w *Window) Finalize(bc host.BuildContext) (host.Entity, error) {
	e, err := bc.Allocate(host.Node{
		Kind: KindWindow.String(),
		ID:   w.ID,
		Props: map[string]any{
			"title":         w.Title,
			"x":             w.X,
			"y":             w.Y,
			"width":         w.Width,
			"height":        w.Height,
			"min_width":     w.MinWidth,
			"min_height":    w.MinHeight,
			"max_width":     w.MaxWidth,
			"max_height":    w.MaxHeight,
			"opacity":       w.Opacity,
			"borderless":    w.Borderless,
			"resizeable":    w.Resizeable,
			"always_on_top": w.AlwaysOnTop,
		},
		Children: w.Children(),
		Theme:    w.theme,
	})
	if err != nil {
		return host.NoEntity, err
	}
	w.entity = e
	return e, nil
}

// Descriptor describes the finalized window for the runtime. name is the
// application name.
func (w *Window) Descriptor(name string) host.WindowDescriptor {
	return host.WindowDescriptor{
		Root:        w.entity,
		Name:        name,
		ID:          w.ID,
		Title:       w.Title,
		Bounds:      host.Bounds{X: w.X, Y: w.Y, Width: w.Width, Height: w.Height},
		Min:         host.Size{Width: w.MinWidth, Height: w.MinHeight},
		Max:         host.Size{Width: w.MaxWidth, Height: w.MaxHeight},
		Opacity:     w.Opacity,
		Borderless:  w.Borderless,
		Resizeable:  w.Resizeable,
		AlwaysOnTop: w.AlwaysOnTop,
		Theme:       w.theme,
	}
}
