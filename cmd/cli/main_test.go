package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"github.com/vk/markupui/internal/markup"
)

func TestRun_BuildsAndDumps(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	markupPath := filepath.Join(dir, "hello.xml")
	err := os.WriteFile(markupPath, []byte(`<window title="Hi" width="200" height="100"><button text="Go"/></window>`), 0600)
	require.NoError(t, err, "failed to set up test file")
	dumpPath := filepath.Join(dir, "out.json")
	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(context.Background(), out, []string{"-dump", dumpPath, markupPath})

	// --- Assert ---
	require.NoError(t, runErr)
	raw, err := os.ReadFile(dumpPath)
	require.NoError(t, err)
	var snaps []map[string]any
	require.NoError(t, json.Unmarshal(raw, &snaps))
	require.Len(t, snaps, 1)
	require.Equal(t, "hello", snaps[0]["app"])
	require.Equal(t, "Hi", snaps[0]["title"])
}

func TestRun_MalformedMarkup(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	markupPath := filepath.Join(dir, "bad.xml")
	require.NoError(t, os.WriteFile(markupPath, []byte("<window>\n  <grid>\n</window>\n"), 0600))

	// --- Act ---
	err := run(context.Background(), &bytes.Buffer{}, []string{markupPath})

	// --- Assert ---
	var mErr *markup.MalformedMarkupError
	require.ErrorAs(t, err, &mErr)
	require.Equal(t, 3, mErr.Line)
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
