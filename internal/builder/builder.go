// Package builder turns a parsed window fragment into host entities.
//
// A build runs in two phases. The resolve phase walks the markup tree,
// maps every element to a widget and coerces its attributes; it makes no
// host calls, so a fragment with an unknown tag or a bad attribute leaves
// nothing behind in the build context. The finalize phase then registers
// widgets bottom-up: every child is finalized and attached before its
// parent, and siblings go left to right.
package builder

import (
	"context"

	"github.com/vk/markupui/internal/ctxlog"
	"github.com/vk/markupui/internal/host"
	"github.com/vk/markupui/internal/markup"
	"github.com/vk/markupui/internal/theme"
	"github.com/vk/markupui/internal/widget"
)

// MaxDepth bounds element nesting below the window root.
const MaxDepth = 256

// pending is a resolved element waiting to be finalized.
type pending struct {
	node     *markup.Node
	widget   widget.Widget
	children []*pending
}

// Build resolves win and registers its widgets with bc. th is set on the
// window root just before the root is finalized. On error bc may hold a
// partial tree and must be discarded.
func Build(ctx context.Context, win *markup.Window, bc host.BuildContext, th *theme.Theme) (*host.WindowDescriptor, error) {
	logger := ctxlog.FromContext(ctx)

	if win == nil || !win.Root.IsElement() {
		return nil, &NoWindowElementError{}
	}
	if win.Root.Tag != markup.WindowTag {
		return nil, &NoWindowElementError{Tag: win.Root.Tag}
	}

	root, err := resolveElement(ctx, win.Root, 0)
	if err != nil {
		return nil, err
	}
	window, ok := root.widget.(*widget.Window)
	if !ok {
		return nil, &NoWindowElementError{Tag: win.Root.Tag}
	}

	count := 0
	if _, err := finalize(root, bc, func() { window.SetTheme(th) }, &count); err != nil {
		return nil, err
	}

	d := window.Descriptor(win.Name)
	logger.Debug("Window built.", "window", win.Index, "name", win.Name, "count", count)
	return &d, nil
}

// resolveElement resolves n and, through resolveChildren, its subtree.
func resolveElement(ctx context.Context, n *markup.Node, depth int) (*pending, error) {
	if depth > MaxDepth {
		return nil, &DepthError{Line: n.Line, Limit: MaxDepth}
	}

	w, err := widget.Resolve(n.Tag)
	if err != nil {
		return nil, &ElementError{Tag: n.Tag, Line: n.Line, Err: err}
	}
	if err := widget.ParseAttributes(ctx, w, n); err != nil {
		return nil, &ElementError{Tag: n.Tag, Line: n.Line, Err: err}
	}
	if !widget.IsContainer(w) && n.HasElementChildren() {
		return nil, &ElementError{Tag: n.Tag, Line: n.Line, Err: &widget.NotAContainerError{Kind: w.Kind()}}
	}

	p := &pending{node: n, widget: w}
	if err := resolveChildren(ctx, n.FirstChild, p, depth+1); err != nil {
		return nil, err
	}
	return p, nil
}

// resolveChildren walks a sibling chain, appending every element to parent.
// Text and comment nodes are skipped.
func resolveChildren(ctx context.Context, n *markup.Node, parent *pending, depth int) error {
	for ; n != nil; n = n.NextSibling {
		if !n.IsElement() {
			continue
		}
		child, err := resolveElement(ctx, n, depth)
		if err != nil {
			return err
		}
		parent.children = append(parent.children, child)
	}
	return nil
}

// finalize registers p's subtree, children first. beforeSelf runs right
// before p itself is finalized.
func finalize(p *pending, bc host.BuildContext, beforeSelf func(), count *int) (host.Entity, error) {
	for _, c := range p.children {
		e, err := finalize(c, bc, nil, count)
		if err != nil {
			return host.NoEntity, err
		}
		if err := p.widget.Attach(e); err != nil {
			return host.NoEntity, &ElementError{Tag: p.node.Tag, Line: p.node.Line, Err: err}
		}
	}
	if beforeSelf != nil {
		beforeSelf()
	}
	e, err := p.widget.Finalize(bc)
	if err != nil {
		return host.NoEntity, &ElementError{Tag: p.node.Tag, Line: p.node.Line, Err: err}
	}
	*count++
	return e, nil
}
