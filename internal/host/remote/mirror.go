// Package remote mirrors built windows to a preview server over socket.io.
package remote

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/vk/markupui/internal/ctxlog"
	"github.com/vk/markupui/internal/host/headless"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

const (
	// WindowEvent carries one window snapshot.
	WindowEvent = "window"
	// DoneEvent follows the last window and carries the window count.
	DoneEvent = "windows_done"

	defaultTimeout = 10 * time.Second
)

// Mirror publishes window snapshots to a socket.io preview server.
type Mirror struct {
	URL       string
	Namespace string
	Timeout   time.Duration
}

// Payload converts a snapshot into the plain JSON object sent to the server.
func Payload(s headless.WindowSnapshot) (map[string]any, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode window snapshot: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode window snapshot: %w", err)
	}
	return out, nil
}

// Publish connects, emits one WindowEvent per snapshot followed by a
// DoneEvent, and disconnects.
func (m *Mirror) Publish(ctx context.Context, windows []headless.WindowSnapshot) error {
	logger := ctxlog.FromContext(ctx).With("url", m.URL, "namespace", m.Namespace)
	logger.Debug("Preview publish started.")

	payloads := make([]map[string]any, 0, len(windows))
	for _, w := range windows {
		p, err := Payload(w)
		if err != nil {
			return err
		}
		payloads = append(payloads, p)
	}

	parsedURL, err := url.Parse(m.URL)
	if err != nil {
		return fmt.Errorf("failed to parse preview URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return fmt.Errorf("preview URL %q must be absolute", m.URL)
	}

	timeout := m.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	opCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	namespace := m.Namespace
	if namespace == "" {
		namespace = "/"
	}

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	opts := socket.DefaultOptions()
	if parsedURL.Path != "" {
		opts.SetPath(parsedURL.Path)
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(namespace, opts)
	defer func() {
		logger.Debug("Disconnecting preview client.")
		io.Disconnect()
	}()

	var connected atomic.Bool
	done := make(chan error, 1)
	finish := func(err error) {
		select {
		case done <- err:
		default:
		}
	}

	io.On(types.EventName("connect"), func(...any) {
		connected.Store(true)
		logger.Debug("Connected to preview server.", "sid", io.Id())
		for _, p := range payloads {
			if err := io.Emit(WindowEvent, p); err != nil {
				finish(fmt.Errorf("failed to emit %s: %w", WindowEvent, err))
				return
			}
		}
		if err := io.Emit(DoneEvent, len(payloads)); err != nil {
			finish(fmt.Errorf("failed to emit %s: %w", DoneEvent, err))
			return
		}
		finish(nil)
	})

	io.On(types.EventName("connect_error"), func(errs ...any) {
		err := errors.New("connection refused")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			}
		}
		finish(fmt.Errorf("failed to connect to preview server: %w", err))
	})

	io.Connect()

	select {
	case <-opCtx.Done():
		if connected.Load() {
			return fmt.Errorf("timed out after connecting while publishing %d windows", len(payloads))
		}
		return errors.New("timed out while waiting for preview server connection")
	case err := <-done:
		if err == nil {
			logger.Info("📡 Windows published to preview server.", "count", len(payloads))
		}
		return err
	}
}
