// Package widget holds the closed set of widget kinds a markup document may
// use, their attribute schemas and the way each one registers itself with
// a host build context.
//
// A widget value is created empty by Resolve, filled from markup attributes
// by ParseAttributes, given its children's handles through Attach and
// finally registered with Finalize. Leaves reject Attach.
package widget

import (
	"github.com/vk/markupui/internal/attr"
	"github.com/vk/markupui/internal/host"
)

// Kind identifies a widget variant.
type Kind int

const (
	KindWindow Kind = iota + 1
	KindButton
	KindTextBox
	KindGrid
	KindRow
	KindColumn
)

func (k Kind) String() string {
	switch k {
	case KindWindow:
		return "Window"
	case KindButton:
		return "Button"
	case KindTextBox:
		return "TextBox"
	case KindGrid:
		return "Grid"
	case KindRow:
		return "Row"
	case KindColumn:
		return "Column"
	default:
		return "Unknown"
	}
}

// Widget is one resolved markup element.
type Widget interface {
	Kind() Kind
	// Attributes returns the kind's schema bound to this value's fields.
	Attributes() attr.Set
	// Attach appends a finalized child handle. Leaves return
	// *NotAContainerError.
	Attach(child host.Entity) error
	// Finalize registers the widget and returns its handle.
	Finalize(bc host.BuildContext) (host.Entity, error)
}

// IsContainer reports whether w accepts children.
func IsContainer(w Widget) bool {
	_, isLeaf := w.(interface{ leafOnly() })
	return !isLeaf
}

type leaf struct {
	kind Kind
}

func (l leaf) leafOnly() {}

func (l leaf) Attach(host.Entity) error {
	return &NotAContainerError{Kind: l.kind}
}

type container struct {
	children []host.Entity
}

func (c *container) Attach(child host.Entity) error {
	c.children = append(c.children, child)
	return nil
}

// Children returns the attached child handles in document order.
func (c *container) Children() []host.Entity {
	return append([]host.Entity(nil), c.children...)
}
