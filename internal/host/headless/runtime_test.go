package headless

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"github.com/vk/markupui/internal/builder"
	"github.com/vk/markupui/internal/host"
	"github.com/vk/markupui/internal/markup"
	"github.com/vk/markupui/internal/testutil"
)

func buildAndOpen(t *testing.T, r *Runtime, src string) host.BuildContext {
	t.Helper()
	windows, err := markup.Load(context.Background(), src)
	require.NoError(t, err)
	require.Len(t, windows, 1)

	bc := r.NewContext("demo")
	d, err := builder.Build(context.Background(), windows[0], bc, r.DefaultTheme())
	require.NoError(t, err)
	require.NoError(t, r.OpenWindow(context.Background(), *d, bc))
	return bc
}

func TestNew_RegistersGoFonts(t *testing.T) {
	t.Parallel()

	r, err := New()

	require.NoError(t, err)
	require.Equal(t, []string{"Go Regular", "Go Medium", "Go Mono"}, r.Fonts())
	for _, f := range r.fonts {
		require.Positive(t, f.Glyphs)
	}

	font, ok := r.DefaultTheme().Lookup("window", "font_family")
	require.True(t, ok)
	require.Equal(t, "Go Regular", font.AsString())
}

func TestFont_Measure(t *testing.T) {
	t.Parallel()

	r, err := New()
	require.NoError(t, err)
	mono := r.fonts[2]

	one := mono.Measure("a")
	four := mono.Measure("abcd")

	require.Positive(t, one)
	require.InDelta(t, 4*one, four, 0.01, "monospace advances are uniform")
	require.Zero(t, mono.Measure(""))
}

func TestContext_AllocateAssignsSequentialEntities(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	c := &Context{name: "demo"}

	// --- Act ---
	a, err := c.Allocate(host.Node{Kind: "Button"})
	require.NoError(t, err)
	b, err := c.Allocate(host.Node{Kind: "Button"})
	require.NoError(t, err)
	w, err := c.Allocate(host.Node{Kind: "Window", Children: []host.Entity{a, b}})
	require.NoError(t, err)

	// --- Assert ---
	require.Equal(t, []host.Entity{1, 2, 3}, []host.Entity{a, b, w})
	ops := c.Ops()
	require.Len(t, ops, 3)
	require.Equal(t, 2, ops[2].Seq)
	require.Equal(t, []host.Entity{1, 2}, ops[2].Children)
}

func TestContext_AllocateRejectsUnknownChildren(t *testing.T) {
	t.Parallel()

	c := &Context{}

	_, err := c.Allocate(host.Node{Kind: "Row", Children: []host.Entity{7}})

	require.ErrorContains(t, err, "unknown child entity 7")
	require.Empty(t, c.Ops())
}

func TestOpenWindow_Validation(t *testing.T) {
	t.Parallel()

	r, err := New()
	require.NoError(t, err)

	t.Run("foreign build context", func(t *testing.T) {
		err := r.OpenWindow(context.Background(), host.WindowDescriptor{Root: 1}, &testutil.Recorder{})
		require.ErrorContains(t, err, "not created by this runtime")
	})

	t.Run("unregistered root", func(t *testing.T) {
		err := r.OpenWindow(context.Background(), host.WindowDescriptor{Root: 3}, r.NewContext("x"))
		require.ErrorContains(t, err, "not registered")
	})

	t.Run("root is not a window", func(t *testing.T) {
		bc := r.NewContext("x")
		e, err := bc.Allocate(host.Node{Kind: "Button"})
		require.NoError(t, err)
		err = r.OpenWindow(context.Background(), host.WindowDescriptor{Root: e}, bc)
		require.ErrorContains(t, err, "is a Button")
	})

	require.Empty(t, r.Snapshot())
}

func TestSnapshot_Tree(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	r, err := New()
	require.NoError(t, err)
	buildAndOpen(t, r, `<window title="Main" width="320" name="main">
  <grid id="g"><row height="2*"><button id="ok" text="OK"/></row></grid>
  <textbox id="t"/>
</window>`)

	// --- Act ---
	snaps := r.Snapshot()

	// --- Assert ---
	require.Len(t, snaps, 1)
	s := snaps[0]
	require.Equal(t, "demo", s.App)
	require.Equal(t, "main", s.Name)
	require.Equal(t, "Main", s.Title)
	require.Equal(t, 320.0, s.Bounds.Width)
	require.Equal(t, 5, s.Entities)
	require.Equal(t, "default", s.Theme)
	require.Contains(t, s.Styles, "button")

	require.Equal(t, "Window", s.Root.Kind)
	require.Len(t, s.Root.Children, 2)
	grid := s.Root.Children[0]
	require.Equal(t, "g", grid.ID)
	button := grid.Children[0].Children[0]
	require.Equal(t, "ok", button.ID)
	require.Positive(t, button.TextWidth)
	require.Zero(t, s.Root.Children[1].TextWidth)
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	r, err := New()
	require.NoError(t, err)
	buildAndOpen(t, r, `<window title="A"><column width="star"/></window>`)
	var buf bytes.Buffer

	// --- Act ---
	err = r.WriteJSON(&buf)

	// --- Assert ---
	require.NoError(t, err)
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	require.Equal(t, "A", decoded[0]["title"])

	root := decoded[0]["root"].(map[string]any)
	col := root["children"].([]any)[0].(map[string]any)
	require.Equal(t, "Column", col["kind"])
	width := col["props"].(map[string]any)["width"].(map[string]any)
	require.Equal(t, "star", width["policy"])
	require.Equal(t, 1.0, width["value"])
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("returns immediately", func(t *testing.T) {
		t.Parallel()
		r, err := New()
		require.NoError(t, err)
		require.NoError(t, r.Run(context.Background()))
	})

	t.Run("hold blocks until cancelled", func(t *testing.T) {
		t.Parallel()
		r, err := New(WithHold())
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error, 1)
		go func() { done <- r.Run(ctx) }()

		select {
		case <-done:
			t.Fatal("Run returned before cancellation")
		case <-time.After(50 * time.Millisecond):
		}
		cancel()
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("Run did not return after cancellation")
		}
	})
}
