package theme

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/markupui/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Extensions lists the stylesheet file extensions the resolver understands.
var Extensions = []string{".hcl", ".yaml", ".yml"}

// Sheet is one parsed stylesheet.
type Sheet struct {
	Path   string
	Styles map[string]Style
}

// StylesheetError reports a stylesheet that could not be read or parsed.
type StylesheetError struct {
	Path string
	Err  error
}

func (e *StylesheetError) Error() string {
	return fmt.Sprintf("stylesheet %s: %v", e.Path, e.Err)
}

func (e *StylesheetError) Unwrap() error {
	return e.Err
}

// LoadSheet reads and parses the stylesheet at path, picking the format
// from the file extension.
func LoadSheet(ctx context.Context, path string) (*Sheet, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, &StylesheetError{Path: path, Err: err}
	}
	return ParseSheet(ctx, path, src)
}

// ParseSheet parses stylesheet source. path selects the format and is used
// in diagnostics.
func ParseSheet(ctx context.Context, path string, src []byte) (*Sheet, error) {
	logger := ctxlog.FromContext(ctx)

	var (
		sheet *Sheet
		err   error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		sheet, err = parseHCL(path, src)
	case ".yaml", ".yml":
		sheet, err = parseYAML(path, src)
	default:
		err = fmt.Errorf("unsupported stylesheet format %q (want one of %s)", filepath.Ext(path), strings.Join(Extensions, ", "))
	}
	if err != nil {
		return nil, &StylesheetError{Path: path, Err: err}
	}

	logger.Debug("Stylesheet parsed.", "path", path, "selectors", len(sheet.Styles))
	return sheet, nil
}

func newSheet(path string) *Sheet {
	return &Sheet{Path: path, Styles: make(map[string]Style)}
}

// set adds one property to the sheet after validating it. Later
// definitions of the same property win.
func (s *Sheet) set(selector, property string, v cty.Value) error {
	if err := checkPrimitive(v); err != nil {
		return fmt.Errorf("%s.%s: %w", selector, property, err)
	}
	st, ok := s.Styles[selector]
	if !ok {
		st = make(Style)
		s.Styles[selector] = st
	}
	st[property] = v
	return nil
}
