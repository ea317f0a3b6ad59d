package app

import (
	"context"
	"fmt"

	"github.com/vk/markupui/internal/ctxlog"
	"github.com/vk/markupui/internal/markup"
)

// Load reads and parses the markup file. A malformed file fails as a whole;
// a file without windows is valid.
func (a *App) Load(ctx context.Context) error {
	ctx = a.withLogger(ctx)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading markup...", "markup_path", a.config.MarkupPath)

	fragments, err := markup.LoadFile(ctx, a.config.MarkupPath)
	if err != nil {
		return fmt.Errorf("failed to load markup: %w", err)
	}

	a.mu.Lock()
	a.fragments = fragments
	a.loaded = true
	a.mu.Unlock()

	if len(fragments) == 0 {
		logger.Warn("No <window> elements found in markup, nothing to build.", "markup_path", a.config.MarkupPath)
		return nil
	}
	logger.Info("Markup loaded successfully.", "windows_found", len(fragments))
	return nil
}
