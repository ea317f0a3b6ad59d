// Package headless is a host runtime without a display. It keeps every
// registered widget in memory, which makes it the runtime for tests, dumps
// and remote previews.
package headless

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vk/markupui/internal/ctxlog"
	"github.com/vk/markupui/internal/host"
	"github.com/vk/markupui/internal/theme"
)

// Op is one Allocate call recorded by a Context.
type Op struct {
	Seq      int
	Entity   host.Entity
	Kind     string
	ID       string
	Props    map[string]any
	Children []host.Entity
	Theme    *theme.Theme
}

// Context is the headless build context for one window.
type Context struct {
	name string

	mu  sync.Mutex
	ops []Op
}

// Allocate implements host.BuildContext. Entities are numbered from 1 in
// call order.
func (c *Context) Allocate(n host.Node) (host.Entity, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, child := range n.Children {
		if int(child) < 1 || int(child) > len(c.ops) {
			return host.NoEntity, fmt.Errorf("%s: unknown child entity %d", n.Kind, child)
		}
	}

	e := host.Entity(len(c.ops) + 1)
	c.ops = append(c.ops, Op{
		Seq:      len(c.ops),
		Entity:   e,
		Kind:     n.Kind,
		ID:       n.ID,
		Props:    n.Props,
		Children: append([]host.Entity(nil), n.Children...),
		Theme:    n.Theme,
	})
	return e, nil
}

// Ops returns the recorded allocations in order.
func (c *Context) Ops() []Op {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Op(nil), c.ops...)
}

func (c *Context) op(e host.Entity) (Op, bool) {
	i := int(e) - 1
	if i < 0 || i >= len(c.ops) {
		return Op{}, false
	}
	return c.ops[i], true
}

type openWindow struct {
	desc host.WindowDescriptor
	bc   *Context
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithHold makes Run block until its context is done, the way a display
// runtime blocks in its event loop.
func WithHold() Option {
	return func(r *Runtime) { r.hold = true }
}

// Runtime is the headless host.Runtime.
type Runtime struct {
	hold  bool
	fonts []*Font
	theme *theme.Theme

	mu      sync.Mutex
	windows []openWindow
}

// New creates a runtime with the built-in Go fonts registered.
func New(opts ...Option) (*Runtime, error) {
	fonts, err := loadFonts(builtinFonts)
	if err != nil {
		return nil, fmt.Errorf("failed to register fonts: %w", err)
	}
	r := &Runtime{fonts: fonts}
	for _, opt := range opts {
		opt(r)
	}
	r.theme = theme.Default(fonts[0].Family)
	return r, nil
}

// Fonts returns the registered font families.
func (r *Runtime) Fonts() []string {
	out := make([]string, len(r.fonts))
	for i, f := range r.fonts {
		out[i] = f.Family
	}
	return out
}

// NewContext implements host.Runtime.
func (r *Runtime) NewContext(name string) host.BuildContext {
	return &Context{name: name}
}

// DefaultTheme implements host.Runtime.
func (r *Runtime) DefaultTheme() *theme.Theme {
	return r.theme
}

// OpenWindow implements host.Runtime.
func (r *Runtime) OpenWindow(ctx context.Context, w host.WindowDescriptor, bc host.BuildContext) error {
	logger := ctxlog.FromContext(ctx)

	hc, ok := bc.(*Context)
	if !ok {
		return fmt.Errorf("build context %T was not created by this runtime", bc)
	}
	hc.mu.Lock()
	root, ok := hc.op(w.Root)
	hc.mu.Unlock()
	if !ok {
		return fmt.Errorf("window root entity %d is not registered", w.Root)
	}
	if root.Kind != "Window" {
		return fmt.Errorf("window root entity %d is a %s", w.Root, root.Kind)
	}

	r.mu.Lock()
	r.windows = append(r.windows, openWindow{desc: w, bc: hc})
	n := len(r.windows)
	r.mu.Unlock()

	logger.Debug("Window opened.", "app", hc.name, "title", w.Title, "entities", len(hc.Ops()), "open", n)
	return nil
}

// Run implements host.Runtime. Without WithHold it returns as soon as the
// open windows are logged.
func (r *Runtime) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	r.mu.Lock()
	windows := append([]openWindow(nil), r.windows...)
	r.mu.Unlock()

	for i, w := range windows {
		logger.Info("🪟 Window ready.", "index", i, "app", w.bc.name, "title", w.desc.Title,
			"width", w.desc.Bounds.Width, "height", w.desc.Bounds.Height)
	}

	if !r.hold {
		return nil
	}
	logger.Info("Headless runtime holding until shutdown.")
	<-ctx.Done()
	if err := ctx.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
