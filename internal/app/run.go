package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/markupui/internal/ctxlog"
)

// Run loads and builds the windows unless Load and Build already ran, opens
// the ones that built and hands control to the host runtime. It fails when
// every window failed, or at the first failure under FailFast.
func (a *App) Run(ctx context.Context) error {
	ctx = a.withLogger(ctx)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.")

	if a.config.HealthcheckPort > 0 {
		if err := a.startHealthcheckServer(ctx, a.config.HealthcheckPort); err != nil {
			return err
		}
		defer a.closeHealthcheckServer(ctx)
	}

	a.mu.Lock()
	loaded, built := a.loaded, a.built
	a.mu.Unlock()
	if !loaded {
		if err := a.Load(ctx); err != nil {
			return err
		}
	}

	if !built {
		if err := a.Build(ctx); err != nil {
			return err
		}
	}

	opened := 0
	for _, w := range a.Windows() {
		if err := a.runtime.OpenWindow(ctx, w.Descriptor, w.Context); err != nil {
			f := &WindowFailure{Index: w.Index, Name: w.Name, Err: fmt.Errorf("failed to open window: %w", err)}
			logger.Error("Window open failed.", "window", w.Index, "error", err)
			a.mu.Lock()
			a.failures = append(a.failures, f)
			a.mu.Unlock()
			if a.config.FailFast {
				return f
			}
			continue
		}
		a.mu.Lock()
		w.opened = true
		a.mu.Unlock()
		opened++
	}

	failures := a.Failures()
	if opened == 0 && len(failures) > 0 {
		return fmt.Errorf("all %d windows failed: %w", len(failures), a.failureErr())
	}
	if len(failures) > 0 {
		logger.Warn("Some windows were skipped.", "opened", opened, "failed", len(failures))
	}

	if err := a.dump(ctx); err != nil {
		return err
	}
	a.preview(ctx)

	logger.Info("🚀 Handing control to the host runtime.", "windows", opened)
	if err := a.runtime.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("host runtime failed: %w", err)
	}

	logger.Debug("App.Run method finished.")
	return nil
}
