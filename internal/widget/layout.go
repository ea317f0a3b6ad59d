package widget

import (
	"github.com/vk/markupui/internal/attr"
	"github.com/vk/markupui/internal/host"
)

// Grid lays out its rows and columns.
type Grid struct {
	container

	ID            string
	Width, Height float64
}

func NewGrid() *Grid { return &Grid{} }

func (g *Grid) Kind() Kind { return KindGrid }

func (g *Grid) Attributes() attr.Set {
	return attr.Set{
		attr.Text("id", &g.ID),
		attr.Float64("width", &g.Width),
		attr.Float64("height", &g.Height),
	}
}

func (g *Grid) Finalize(bc host.BuildContext) (host.Entity, error) {
	return bc.Allocate(host.Node{
		Kind:     KindGrid.String(),
		ID:       g.ID,
		Props:    map[string]any{"width": g.Width, "height": g.Height},
		Children: g.Children(),
	})
}

// Row is a horizontal track of a grid.
type Row struct {
	container

	ID     string
	Height attr.Length
}

func NewRow() *Row { return &Row{Height: attr.AutoLength} }

func (r *Row) Kind() Kind { return KindRow }

func (r *Row) Attributes() attr.Set {
	return attr.Set{
		attr.Text("id", &r.ID),
		attr.Sizing("height", &r.Height),
	}
}

func (r *Row) Finalize(bc host.BuildContext) (host.Entity, error) {
	return bc.Allocate(host.Node{
		Kind:     KindRow.String(),
		ID:       r.ID,
		Props:    map[string]any{"height": r.Height},
		Children: r.Children(),
	})
}

// Column is a vertical track of a grid.
type Column struct {
	container

	ID    string
	Width attr.Length
}

func NewColumn() *Column { return &Column{Width: attr.AutoLength} }

func (c *Column) Kind() Kind { return KindColumn }

func (c *Column) Attributes() attr.Set {
	return attr.Set{
		attr.Text("id", &c.ID),
		attr.Sizing("width", &c.Width),
	}
}

func (c *Column) Finalize(bc host.BuildContext) (host.Entity, error) {
	return bc.Allocate(host.Node{
		Kind:     KindColumn.String(),
		ID:       c.ID,
		Props:    map[string]any{"width": c.Width},
		Children: c.Children(),
	})
}
