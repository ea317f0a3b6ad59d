package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/markupui/internal/host"
	"github.com/vk/markupui/internal/testutil"
)

// SetupAppTest writes files to a temporary directory, points the config's
// MarkupPath at markupName inside it and returns a debug-logging App. A
// nil runtime selects the headless runtime.
func SetupAppTest(t *testing.T, files map[string]string, markupName string, cfg Config, rt host.Runtime) (*App, *testutil.SafeBuffer, string) {
	t.Helper()

	dir := testutil.WriteFiles(t, files)
	cfg.MarkupPath = filepath.Join(dir, markupName)
	cfg.LogLevel = "debug"

	logBuffer := &testutil.SafeBuffer{}
	testutil.DumpLogs(t, logBuffer)

	testApp, err := NewApp(logBuffer, &cfg, rt)
	require.NoError(t, err)
	return testApp, logBuffer, dir
}
