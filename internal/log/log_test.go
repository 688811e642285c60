package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInstall_LevelAndFormat(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	install(&buf, false)

	slog.Debug("hidden")
	slog.Info("shown", "verb", "ls")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "shown", rec["msg"])
	require.Equal(t, "ls", rec["verb"])
	require.Contains(t, rec, "source")

	buf.Reset()
	install(&buf, true)
	slog.Debug("visible")
	require.Contains(t, buf.String(), "visible")
}

func TestRecoverPanic(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cleaned := false
	func() {
		defer RecoverPanic("test", func() { cleaned = true })
		panic("boom")
	}()

	require.True(t, cleaned)
	matches, err := filepath.Glob(filepath.Join(dir, "simpleterm-panic-test-*.log"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	require.Contains(t, string(data), "Panic in test: boom")
}
