package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/vk/markupui/internal/ctxlog"
)

type windowStatus struct {
	Index  int    `json:"index"`
	Name   string `json:"name,omitempty"`
	Title  string `json:"title"`
	Opened bool   `json:"opened"`
}

type failureStatus struct {
	Index int    `json:"index"`
	Name  string `json:"name,omitempty"`
	Error string `json:"error"`
}

type windowsResponse struct {
	App      string          `json:"app"`
	Windows  []windowStatus  `json:"windows"`
	Failures []failureStatus `json:"failures"`
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

func (a *App) windowsHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Windows endpoint hit.", "remote_addr", r.RemoteAddr)

	resp := windowsResponse{App: a.config.Name, Windows: []windowStatus{}, Failures: []failureStatus{}}
	a.mu.Lock()
	for _, win := range a.windows {
		resp.Windows = append(resp.Windows, windowStatus{
			Index:  win.Index,
			Name:   win.Name,
			Title:  win.Descriptor.Title,
			Opened: win.opened,
		})
	}
	for _, f := range a.failures {
		resp.Failures = append(resp.Failures, failureStatus{Index: f.Index, Name: f.Name, Error: f.Err.Error()})
	}
	a.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		a.logger.Error("Failed to encode windows response.", "error", err)
	}
}

func (a *App) healthMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", a.healthHandler)
	mux.HandleFunc("/windows", a.windowsHandler)
	return mux
}

// startHealthcheckServer binds the port synchronously so a busy port fails
// Run, then serves in the background.
func (a *App) startHealthcheckServer(ctx context.Context, port int) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Configuring health check server.")

	addr := fmt.Sprintf(":%d", port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to start health check server: %w", err)
	}
	a.httpServer = &http.Server{Handler: a.healthMux(), ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logger.Info("🩺 Health check server starting", "address", fmt.Sprintf("http://localhost%s/health", addr))
		if err := a.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Health check server failed unexpectedly", "error", err)
		}
	}()
	return nil
}

func (a *App) closeHealthcheckServer(ctx context.Context) {
	logger := ctxlog.FromContext(ctx)
	if a.httpServer == nil {
		logger.Debug("Health check server was not running.")
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	logger.Info("🩺 Shutting down health check server...")
	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Health check server shutdown failed", "error", err)
		return
	}
	logger.Debug("Health check server shut down gracefully.")
}
