package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vk/markupui/internal/ctxlog"
	"github.com/vk/markupui/internal/host/headless"
	"github.com/vk/markupui/internal/host/remote"
)

// snapshotter is implemented by runtimes that can describe their windows.
type snapshotter interface {
	Snapshot() []headless.WindowSnapshot
	WriteJSON(w io.Writer) error
}

// dump writes the window snapshot to DumpPath.
func (a *App) dump(ctx context.Context) error {
	if a.config.DumpPath == "" {
		return nil
	}
	logger := ctxlog.FromContext(ctx)

	s, ok := a.runtime.(snapshotter)
	if !ok {
		logger.Warn("Runtime cannot produce snapshots, skipping dump.", "runtime", fmt.Sprintf("%T", a.runtime))
		return nil
	}

	if a.config.DumpPath == "-" {
		return s.WriteJSON(a.outW)
	}

	f, err := os.Create(a.config.DumpPath)
	if err != nil {
		return fmt.Errorf("failed to create dump file: %w", err)
	}
	if err := s.WriteJSON(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write dump: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write dump: %w", err)
	}
	logger.Info("Window snapshot written.", "path", a.config.DumpPath)
	return nil
}

// preview publishes the window snapshot to the preview server. Failures are
// logged and never stop the app.
func (a *App) preview(ctx context.Context) {
	if a.config.PreviewURL == "" {
		return
	}
	logger := ctxlog.FromContext(ctx)

	s, ok := a.runtime.(snapshotter)
	if !ok {
		logger.Warn("Runtime cannot produce snapshots, skipping preview.")
		return
	}

	m := &remote.Mirror{
		URL:       a.config.PreviewURL,
		Namespace: a.config.PreviewNamespace,
		Timeout:   a.config.PreviewTimeout,
	}
	if err := m.Publish(ctx, s.Snapshot()); err != nil {
		logger.Warn("Preview publish failed.", "url", a.config.PreviewURL, "error", err)
	}
}
