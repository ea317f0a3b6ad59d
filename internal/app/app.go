package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"github.com/vk/markupui/internal/ctxlog"
	"github.com/vk/markupui/internal/host"
	"github.com/vk/markupui/internal/host/headless"
	"github.com/vk/markupui/internal/markup"
)

// Window is a successfully built window.
type Window struct {
	Index      int
	Name       string
	Descriptor host.WindowDescriptor
	Context    host.BuildContext
	opened     bool
}

// WindowFailure records a window that could not be built or opened.
type WindowFailure struct {
	Index int
	Name  string
	Err   error
}

func (f *WindowFailure) Error() string {
	if f.Name != "" {
		return fmt.Sprintf("window %d (%s): %v", f.Index, f.Name, f.Err)
	}
	return fmt.Sprintf("window %d: %v", f.Index, f.Err)
}

func (f *WindowFailure) Unwrap() error {
	return f.Err
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	runtime host.Runtime

	httpServer *http.Server

	mu        sync.Mutex
	fragments []*markup.Window
	loaded    bool
	built     bool
	windows   []*Window
	failures  []*WindowFailure
}

// NewApp is the constructor for the main application. A nil runtime
// selects the headless runtime.
func NewApp(outW io.Writer, cfg *Config, rt host.Runtime) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	if rt == nil {
		var opts []headless.Option
		if cfg.Hold {
			opts = append(opts, headless.WithHold())
		}
		hr, err := headless.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to start headless runtime: %w", err)
		}
		rt = hr
		logger.Debug("Headless runtime started.", "fonts", hr.Fonts())
	}

	if cfg.Name == "" {
		base := filepath.Base(cfg.MarkupPath)
		cfg.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return &App{
		outW:    outW,
		logger:  logger,
		config:  cfg,
		runtime: rt,
	}, nil
}

// Runtime returns the host runtime windows are opened in.
func (a *App) Runtime() host.Runtime {
	return a.runtime
}

// Name returns the application name.
func (a *App) Name() string {
	return a.config.Name
}

// Window returns the i-th successfully built window.
func (a *App) Window(i int) (*Window, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if i < 0 || i >= len(a.windows) {
		return nil, false
	}
	return a.windows[i], true
}

// Windows returns the successfully built windows in document order.
func (a *App) Windows() []*Window {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]*Window(nil), a.windows...)
}

// Failures returns the windows that were skipped, in document order.
func (a *App) Failures() []*WindowFailure {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]*WindowFailure(nil), a.failures...)
}

func (a *App) withLogger(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
