package markup

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vk/markupui/internal/ctxlog"
	"golang.org/x/net/html"
)

const (
	// WindowTag is the only tag that starts a fragment.
	WindowTag = "window"

	// StylesheetAttr lists stylesheet paths for a window, separated by ',' or ';'.
	StylesheetAttr = "stylesheet"
	// NameAttr gives a window a display name.
	NameAttr = "name"
)

// Window is one parsed <window> fragment.
type Window struct {
	// Index is the fragment's position in the source, starting at 0.
	Index int
	// Name is the display name from the name attribute, if any.
	Name string
	// Stylesheets are the paths from the stylesheet attribute, in order.
	Stylesheets []string
	// Root is the <window> element.
	Root *Node
}

// LoadFile reads path and loads every window fragment in it.
func LoadFile(ctx context.Context, path string) ([]*Window, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read markup file %s: %w", path, err)
	}
	ctxlog.FromContext(ctx).Debug("Markup file read.", "path", path, "bytes", len(src))
	return Load(ctx, string(src))
}

// Load parses src and returns one Window per top-level <window> element,
// in document order. A source without windows yields an empty slice.
func Load(ctx context.Context, src string) ([]*Window, error) {
	logger := ctxlog.FromContext(ctx)

	roots, err := parse(strings.NewReader(src))
	if err != nil {
		return nil, err
	}

	windows := make([]*Window, 0, len(roots))
	for _, n := range roots {
		if !n.IsElement() {
			continue
		}
		if n.Tag != WindowTag {
			logger.Debug("Ignoring top-level element outside a window.", "tag", n.Tag, "line", n.Line)
			continue
		}
		// Fragments are independent trees.
		n.NextSibling = nil
		w := &Window{
			Index: len(windows),
			Root:  n,
		}
		w.Name, _ = n.Attr(NameAttr)
		if raw, ok := n.Attr(StylesheetAttr); ok {
			w.Stylesheets = SplitPaths(raw)
		}
		windows = append(windows, w)
	}

	logger.Debug("Markup loaded.", "windows", len(windows))
	return windows, nil
}

// SplitPaths splits a stylesheet list on ',' and ';', dropping empty entries.
func SplitPaths(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ';' })
	paths := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			paths = append(paths, f)
		}
	}
	return paths
}

// parse tokenizes r and returns the top-level node chain as a slice.
func parse(r io.Reader) ([]*Node, error) {
	z := html.NewTokenizer(r)

	// The document node only collects top-level nodes.
	doc := &Node{}
	stack := []*Node{doc}
	line := 1

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, &MalformedMarkupError{Line: line, Err: err}
			}
			break
		}

		start := line
		line += bytes.Count(z.Raw(), []byte{'\n'})
		tok := z.Token()
		top := stack[len(stack)-1]

		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			n := &Node{
				Type:  ElementNode,
				Tag:   tok.Data,
				Attrs: make(map[string]string, len(tok.Attr)),
				Line:  start,
			}
			for _, a := range tok.Attr {
				if _, dup := n.Attrs[a.Key]; !dup {
					n.Attrs[a.Key] = a.Val
				}
			}
			top.appendChild(n)
			if tt == html.StartTagToken {
				stack = append(stack, n)
			}

		case html.EndTagToken:
			if len(stack) == 1 {
				return nil, &MalformedMarkupError{Line: start, Err: fmt.Errorf("unexpected closing tag </%s>", tok.Data)}
			}
			if top.Tag != tok.Data {
				return nil, &MalformedMarkupError{Line: start, Err: fmt.Errorf("closing tag </%s> does not match <%s> opened at line %d", tok.Data, top.Tag, top.Line)}
			}
			stack = stack[:len(stack)-1]

		case html.TextToken:
			top.appendChild(&Node{Type: TextNode, Text: tok.Data, Line: start})

		case html.CommentToken:
			top.appendChild(&Node{Type: CommentNode, Text: tok.Data, Line: start})
		}
	}

	if len(stack) > 1 {
		open := stack[len(stack)-1]
		return nil, &MalformedMarkupError{Line: line, Err: fmt.Errorf("<%s> opened at line %d is never closed", open.Tag, open.Line)}
	}

	var roots []*Node
	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		roots = append(roots, n)
	}
	return roots, nil
}
