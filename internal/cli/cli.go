package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/vk/markupui/internal/app"
	"github.com/vk/markupui/internal/markup"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// pathList is a repeatable flag. Each value may itself hold several paths
// separated by ',' or ';'.
type pathList []string

func (p *pathList) String() string {
	return strings.Join(*p, ",")
}

func (p *pathList) Set(v string) error {
	paths := markup.SplitPaths(v)
	if len(paths) == 0 {
		return errors.New("empty stylesheet path")
	}
	*p = append(*p, paths...)
	return nil
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("markupui", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
markupui - Builds native windows from declarative XML-like markup.

Usage:
  markupui [options] [MARKUP_PATH]

Arguments:
  MARKUP_PATH
    Path to a markup file holding one or more <window> elements.

Options:
`)
		flagSet.PrintDefaults()
	}

	var stylesheets pathList
	markupFlag := flagSet.String("markup", "", "Path to the markup file.")
	mFlag := flagSet.String("m", "", "Path to the markup file (shorthand).")
	flagSet.Var(&stylesheets, "stylesheet", "Stylesheet file or directory applied to every window. Repeatable.")
	nameFlag := flagSet.String("name", "", "Application name. Defaults to the markup file name.")
	failFastFlag := flagSet.Bool("fail-fast", false, "Stop at the first window that fails to build.")
	dumpFlag := flagSet.String("dump", "", "Write a JSON snapshot of the opened windows to this file, or '-' for stdout.")
	holdFlag := flagSet.Bool("hold", false, "Keep running until interrupted.")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health check server. 0 is disabled.")
	previewURLFlag := flagSet.String("preview-url", "", "socket.io preview server to mirror windows to.")
	previewNSFlag := flagSet.String("preview-namespace", "/", "socket.io namespace on the preview server.")
	previewTimeoutFlag := flagSet.Duration("preview-timeout", 10*time.Second, "Timeout for publishing to the preview server.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *markupFlag != "" {
		path = *markupFlag
	} else if *mFlag != "" {
		path = *mFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}

	if path == "" {
		slog.Debug("No markup path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if flagSet.NArg() > 1 || (flagSet.NArg() == 1 && path != flagSet.Arg(0)) {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(flagSet.Args(), " "))}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		MarkupPath:       path,
		Stylesheets:      stylesheets,
		Name:             *nameFlag,
		LogFormat:        logFormat,
		LogLevel:         logLevel,
		FailFast:         *failFastFlag,
		DumpPath:         *dumpFlag,
		Hold:             *holdFlag,
		HealthcheckPort:  *healthPortFlag,
		PreviewURL:       *previewURLFlag,
		PreviewNamespace: *previewNSFlag,
		PreviewTimeout:   *previewTimeoutFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
