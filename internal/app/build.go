package app

import (
	"context"
	"errors"

	"github.com/vk/markupui/internal/builder"
	"github.com/vk/markupui/internal/ctxlog"
	"github.com/vk/markupui/internal/markup"
	"github.com/vk/markupui/internal/theme"
)

// Build builds every loaded fragment, each with a fresh build context. A
// failing window is recorded in Failures and skipped unless FailFast is set.
// Build returns an error only under FailFast. Build runs once per App;
// later calls keep the first result.
func (a *App) Build(ctx context.Context) error {
	ctx = a.withLogger(ctx)
	logger := ctxlog.FromContext(ctx)

	a.mu.Lock()
	if a.built {
		a.mu.Unlock()
		logger.Debug("Windows already built, skipping build.")
		return nil
	}
	a.built = true
	fragments := a.fragments
	a.mu.Unlock()

	for _, frag := range fragments {
		w, err := a.buildWindow(ctx, frag)
		if err != nil {
			f := &WindowFailure{Index: frag.Index, Name: frag.Name, Err: err}
			logger.Error("Window build failed.", "window", frag.Index, "name", frag.Name, "error", err)
			a.mu.Lock()
			a.failures = append(a.failures, f)
			a.mu.Unlock()
			if a.config.FailFast {
				return f
			}
			continue
		}
		a.mu.Lock()
		a.windows = append(a.windows, w)
		a.mu.Unlock()
	}

	logger.Debug("Build finished.", "built", len(a.Windows()), "failed", len(a.Failures()))
	return nil
}

func (a *App) buildWindow(ctx context.Context, frag *markup.Window) (*Window, error) {
	ctx = ctxlog.With(ctx, "window", frag.Index)

	paths := make([]string, 0, len(a.config.Stylesheets)+len(frag.Stylesheets))
	paths = append(paths, a.config.Stylesheets...)
	paths = append(paths, frag.Stylesheets...)

	th, err := theme.Resolve(ctx, a.runtime.DefaultTheme(), paths...)
	if err != nil {
		return nil, err
	}

	// A context that fails to build is dropped here and never opened.
	bc := a.runtime.NewContext(a.config.Name)
	desc, err := builder.Build(ctx, frag, bc, th)
	if err != nil {
		return nil, err
	}

	return &Window{Index: frag.Index, Name: frag.Name, Descriptor: *desc, Context: bc}, nil
}

// failureErr joins every recorded failure.
func (a *App) failureErr() error {
	failures := a.Failures()
	errs := make([]error, len(failures))
	for i, f := range failures {
		errs[i] = f
	}
	return errors.Join(errs...)
}
