package headless

import (
	"io"

	"github.com/goccy/go-json"
	"github.com/vk/markupui/internal/host"
)

// NodeSnapshot is one entity of an open window.
type NodeSnapshot struct {
	Entity   host.Entity     `json:"entity"`
	Kind     string          `json:"kind"`
	ID       string          `json:"id,omitempty"`
	Props    map[string]any  `json:"props,omitempty"`
	Children []*NodeSnapshot `json:"children,omitempty"`
	// TextWidth is the measured width of the text property in the body font.
	TextWidth float64 `json:"text_width,omitempty"`
}

// WindowSnapshot is an open window with its widget tree.
type WindowSnapshot struct {
	App         string                    `json:"app"`
	Name        string                    `json:"name,omitempty"`
	ID          string                    `json:"id,omitempty"`
	Title       string                    `json:"title"`
	Bounds      host.Bounds               `json:"bounds"`
	Min         host.Size                 `json:"min"`
	Max         host.Size                 `json:"max"`
	Opacity     float32                   `json:"opacity"`
	Borderless  bool                      `json:"borderless"`
	Resizeable  bool                      `json:"resizeable"`
	AlwaysOnTop bool                      `json:"always_on_top"`
	Theme       string                    `json:"theme,omitempty"`
	Styles      map[string]map[string]any `json:"styles,omitempty"`
	Entities    int                       `json:"entities"`
	Root        *NodeSnapshot             `json:"root"`
}

// Snapshot returns every open window in the order it was opened.
func (r *Runtime) Snapshot() []WindowSnapshot {
	r.mu.Lock()
	windows := append([]openWindow(nil), r.windows...)
	r.mu.Unlock()

	out := make([]WindowSnapshot, 0, len(windows))
	for _, w := range windows {
		ops := w.bc.Ops()
		s := WindowSnapshot{
			App:         w.bc.name,
			Name:        w.desc.Name,
			ID:          w.desc.ID,
			Title:       w.desc.Title,
			Bounds:      w.desc.Bounds,
			Min:         w.desc.Min,
			Max:         w.desc.Max,
			Opacity:     w.desc.Opacity,
			Borderless:  w.desc.Borderless,
			Resizeable:  w.desc.Resizeable,
			AlwaysOnTop: w.desc.AlwaysOnTop,
			Entities:    len(ops),
			Root:        r.tree(ops, w.desc.Root),
		}
		if w.desc.Theme != nil {
			s.Theme = w.desc.Theme.Name
			s.Styles = w.desc.Theme.Native()
		}
		out = append(out, s)
	}
	return out
}

func (r *Runtime) tree(ops []Op, e host.Entity) *NodeSnapshot {
	i := int(e) - 1
	if i < 0 || i >= len(ops) {
		return nil
	}
	op := ops[i]
	n := &NodeSnapshot{Entity: op.Entity, Kind: op.Kind, ID: op.ID, Props: op.Props}
	if text, ok := op.Props["text"].(string); ok && text != "" {
		n.TextWidth = r.fonts[0].Measure(text)
	}
	for _, c := range op.Children {
		n.Children = append(n.Children, r.tree(ops, c))
	}
	return n
}

// WriteJSON encodes Snapshot to w as indented JSON.
func (r *Runtime) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r.Snapshot())
}
