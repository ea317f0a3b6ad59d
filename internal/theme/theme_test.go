package theme

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func writeSheet(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestParseSheet_HCL(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	src := `
style "button" {
  background = "#000000"
  padding    = 4
  bold       = true
}

style "window" {
  opacity = 0.5
}
`

	// --- Act ---
	sheet, err := ParseSheet(context.Background(), "dark.hcl", []byte(src))

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, sheet.Styles, 2)
	require.Equal(t, "#000000", sheet.Styles["button"]["background"].AsString())
	require.True(t, sheet.Styles["button"]["bold"].True())
	f, _ := sheet.Styles["window"]["opacity"].AsBigFloat().Float64()
	require.Equal(t, 0.5, f)
}

func TestParseSheet_YAML(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	src := `
styles:
  button:
    background: "#000000"
    padding: 4
    bold: true
  textbox:
    border_width: 1.5
`

	// --- Act ---
	sheet, err := ParseSheet(context.Background(), "dark.yaml", []byte(src))

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "#000000", sheet.Styles["button"]["background"].AsString())
	require.True(t, sheet.Styles["button"]["bold"].True())
	f, _ := sheet.Styles["textbox"]["border_width"].AsBigFloat().Float64()
	require.Equal(t, 1.5, f)
}

func TestParseSheet_EmptyYAML(t *testing.T) {
	t.Parallel()

	sheet, err := ParseSheet(context.Background(), "empty.yml", nil)

	require.NoError(t, err)
	require.Empty(t, sheet.Styles)
}

func TestParseSheet_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		path string
		src  string
	}{
		{name: "unsupported extension", path: "theme.css", src: "button { color: red }"},
		{name: "hcl syntax error", path: "bad.hcl", src: `style "button" {`},
		{name: "hcl unknown top-level attribute", path: "bad.hcl", src: `color = "red"`},
		{name: "hcl style without label", path: "bad.hcl", src: `style { color = "red" }`},
		{name: "hcl non-primitive value", path: "bad.hcl", src: `style "button" { pad = [1, 2] }`},
		{name: "hcl null value", path: "bad.hcl", src: `style "button" { pad = null }`},
		{name: "hcl variable reference", path: "bad.hcl", src: `style "button" { pad = var.x }`},
		{name: "yaml unknown key", path: "bad.yaml", src: "colors:\n  red: 1\n"},
		{name: "yaml sequence value", path: "bad.yaml", src: "styles:\n  button:\n    pad: [1, 2]\n"},
		{name: "yaml null value", path: "bad.yaml", src: "styles:\n  button:\n    pad: ~\n"},
		{name: "yaml infinity", path: "bad.yaml", src: "styles:\n  button:\n    pad: .inf\n"},
		{name: "yaml malformed", path: "bad.yaml", src: "styles: [\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			_, err := ParseSheet(context.Background(), tc.path, []byte(tc.src))

			// --- Assert ---
			require.Error(t, err)
			var sErr *StylesheetError
			require.ErrorAs(t, err, &sErr)
			require.Equal(t, tc.path, sErr.Path)
		})
	}
}

func TestLoadSheet_MissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nope.hcl")

	_, err := LoadSheet(context.Background(), path)

	var sErr *StylesheetError
	require.ErrorAs(t, err, &sErr)
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestResolve_NoPathsReturnsBase(t *testing.T) {
	t.Parallel()

	base := Default("")

	th, err := Resolve(context.Background(), base)

	require.NoError(t, err)
	require.Same(t, base, th)
}

func TestResolve_LaterSheetsOverride(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	first := writeSheet(t, dir, "first.hcl", `
style "button" {
  background = "#111111"
  foreground = "#eeeeee"
}
`)
	second := writeSheet(t, dir, "second.yaml", `
styles:
  button:
    background: "#222222"
`)
	base := Default("Go Regular")

	// --- Act ---
	th, err := Resolve(context.Background(), base, first, second)

	// --- Assert ---
	require.NoError(t, err)
	bg, ok := th.Lookup("button", "background")
	require.True(t, ok)
	require.Equal(t, "#222222", bg.AsString())
	fg, _ := th.Lookup("button", "foreground")
	require.Equal(t, "#eeeeee", fg.AsString())
	font, ok := th.Lookup("window", "font_family")
	require.True(t, ok, "base properties survive")
	require.Equal(t, "Go Regular", font.AsString())
	require.Equal(t, []string{first, second}, th.Sources)

	// The base is never mutated.
	bg, _ = base.Lookup("button", "background")
	require.Equal(t, "#2196f3", bg.AsString())
	require.Empty(t, base.Sources)
}

func TestBuilder_ExpandsDirectories(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	writeSheet(t, dir, "b.hcl", `style "grid" { background = "#bbbbbb" }`)
	writeSheet(t, dir, "a.yml", "styles:\n  grid:\n    background: \"#aaaaaa\"\n")
	writeSheet(t, dir, "notes.txt", "ignored")

	// --- Act ---
	th, err := NewBuilder(nil).Extend(dir).Build(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, th.Sources, 2)
	bg, _ := th.Lookup("grid", "background")
	require.Equal(t, "#bbbbbb", bg.AsString(), "files merge in lexical order")
}

func TestBuilder_FailingSheetAbortsChain(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := writeSheet(t, dir, "good.hcl", `style "button" { padding = 2 }`)
	bad := writeSheet(t, dir, "bad.hcl", `style "button" {`)

	th, err := NewBuilder(Default("")).Extend(good).Extend(bad).Build(context.Background())

	require.Nil(t, th)
	var sErr *StylesheetError
	require.ErrorAs(t, err, &sErr)
	require.Equal(t, bad, sErr.Path)
}

func TestTheme_SetRejectsNonPrimitive(t *testing.T) {
	t.Parallel()

	th := New("t")

	err := th.Set("button", "pad", cty.ListVal([]cty.Value{cty.NumberIntVal(1)}))
	require.Error(t, err)
	err = th.Set("button", "pad", cty.NullVal(cty.Number))
	require.Error(t, err)
	require.Empty(t, th.Selectors())
}

func TestTheme_Native(t *testing.T) {
	t.Parallel()

	th := New("t")
	require.NoError(t, th.Set("button", "text", cty.StringVal("x")))
	require.NoError(t, th.Set("button", "bold", cty.True))
	require.NoError(t, th.Set("row", "spacing", cty.NumberIntVal(3)))

	got := th.Native()

	require.Equal(t, map[string]map[string]any{
		"button": {"text": "x", "bold": true},
		"row":    {"spacing": 3.0},
	}, got)
	require.Equal(t, []string{"button", "row"}, th.Selectors())
}

func TestDefault(t *testing.T) {
	t.Parallel()

	plain := Default("")
	withFont := Default("Go Regular")

	_, ok := plain.Lookup("window", "font_family")
	require.False(t, ok)
	font, ok := withFont.Lookup("window", "font_family")
	require.True(t, ok)
	require.Equal(t, "Go Regular", font.AsString())
	require.Equal(t, DefaultName, withFont.Name)
	require.Contains(t, withFont.Selectors(), "textbox")

	other := Default("Go Mono")
	font, _ = withFont.Lookup("window", "font_family")
	require.Equal(t, "Go Regular", font.AsString(), "themes do not share state")
	font, _ = other.Lookup("window", "font_family")
	require.Equal(t, "Go Mono", font.AsString())
	_, ok = Default("").Lookup("window", "font_family")
	require.False(t, ok)

	require.NoError(t, other.Set("button", "padding", cty.NumberIntVal(99)))
	pad, _ := plain.Lookup("button", "padding")
	require.Equal(t, "8", pad.AsBigFloat().String())
}
