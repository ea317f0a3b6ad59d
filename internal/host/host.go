// Package host defines the boundary between the widget builder and the
// runtime that owns native windows and widget entities.
package host

import (
	"context"

	"github.com/vk/markupui/internal/theme"
)

// Entity is an opaque handle to a widget registered with a BuildContext.
type Entity uint64

// NoEntity is never returned by a successful Allocate.
const NoEntity Entity = 0

// Node is one widget as handed to the host: its kind, its coerced
// properties and the handles of its already-registered children.
type Node struct {
	Kind     string
	ID       string
	Props    map[string]any
	Children []Entity
	// Theme is set only on window roots.
	Theme *theme.Theme
}

// BuildContext registers the widgets of a single window. It is created per
// window build and discarded if the build fails.
type BuildContext interface {
	Allocate(n Node) (Entity, error)
}

// Bounds is a window's position and size.
type Bounds struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Size is a minimum or maximum window size. Zero means unconstrained.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// WindowDescriptor is everything a runtime needs to open a built window.
type WindowDescriptor struct {
	Root        Entity
	Name        string
	ID          string
	Title       string
	Bounds      Bounds
	Min         Size
	Max         Size
	Opacity     float32
	Borderless  bool
	Resizeable  bool
	AlwaysOnTop bool
	Theme       *theme.Theme
}

// Runtime owns windows and the event loop.
type Runtime interface {
	// NewContext returns a fresh build context for one window. name is the
	// application name shared by every window.
	NewContext(name string) BuildContext
	// DefaultTheme is the theme windows get when no stylesheet is named.
	DefaultTheme() *theme.Theme
	// OpenWindow makes a successfully built window visible. bc must be the
	// context the window was built with.
	OpenWindow(ctx context.Context, w WindowDescriptor, bc BuildContext) error
	// Run hands control to the runtime until it finishes or ctx is done.
	Run(ctx context.Context) error
}
