package theme

import (
	"context"

	"github.com/vk/markupui/internal/ctxlog"
	"github.com/vk/markupui/internal/fsutil"
)

// Builder layers stylesheets onto a base theme. Extend only records paths;
// nothing is read until Build, so a chain is materialized exactly once.
type Builder struct {
	base  *Theme
	paths []string
}

// NewBuilder starts a chain from base. A nil base starts from an empty theme.
func NewBuilder(base *Theme) *Builder {
	if base == nil {
		base = New("")
	}
	return &Builder{base: base}
}

// Extend appends a stylesheet, or a directory of stylesheets, to the chain.
func (b *Builder) Extend(path string) *Builder {
	b.paths = append(b.paths, path)
	return b
}

// Build reads every stylesheet in order and merges it over a copy of the
// base theme. Later sheets override earlier ones property by property.
func (b *Builder) Build(ctx context.Context) (*Theme, error) {
	logger := ctxlog.FromContext(ctx)

	var paths []string
	for _, p := range b.paths {
		expanded, err := fsutil.ExpandPaths([]string{p}, Extensions...)
		if err != nil {
			return nil, &StylesheetError{Path: p, Err: err}
		}
		paths = append(paths, expanded...)
	}

	t := b.base.Clone()
	for _, p := range paths {
		sheet, err := LoadSheet(ctx, p)
		if err != nil {
			return nil, err
		}
		t.merge(sheet)
	}

	logger.Debug("Theme resolved.", "base", b.base.Name, "stylesheets", len(paths), "selectors", len(t.styles))
	return t, nil
}

// Resolve returns base when no paths are given, otherwise the chain of
// paths extended onto base and built once.
func Resolve(ctx context.Context, base *Theme, paths ...string) (*Theme, error) {
	if len(paths) == 0 {
		return base, nil
	}
	b := NewBuilder(base)
	for _, p := range paths {
		b.Extend(p)
	}
	return b.Build(ctx)
}
