package fsext

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "b_dir"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.txt"), nil, 0o644))

	entries, err := ListDirectory(dir)
	require.NoError(t, err)
	require.Equal(t, []Entry{
		{Name: "a.txt"},
		{Name: "b_dir", IsDir: true},
		{Name: "c.txt"},
	}, entries)
}

func TestListDirectory_Empty(t *testing.T) {
	entries, err := ListDirectory(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestListDirectory_Missing(t *testing.T) {
	_, err := ListDirectory(filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestListDirectory_SymlinkToDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on Windows")
	}
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	require.NoError(t, os.Mkdir(target, 0o755))
	require.NoError(t, os.Symlink(target, filepath.Join(dir, "link")))

	entries, err := ListDirectory(dir)
	require.NoError(t, err)
	require.Equal(t, []Entry{
		{Name: "link", IsDir: true},
		{Name: "target", IsDir: true},
	}, entries)
}

func TestResolve(t *testing.T) {
	base := filepath.Join(string(filepath.Separator), "base")
	abs := filepath.Join(string(filepath.Separator), "abs")
	if runtime.GOOS == "windows" {
		base = `C:\base`
		abs = `C:\abs`
	}
	require.Equal(t, filepath.Join(base, "rel"), Resolve(base, "rel"))
	require.Equal(t, abs, Resolve(base, abs))
	require.Equal(t, filepath.Dir(base), Resolve(base, ".."))
}

func TestIsDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	require.True(t, IsDir(dir))
	require.False(t, IsDir(file))
	require.False(t, IsDir(filepath.Join(dir, "missing")))
}

func TestExpand(t *testing.T) {
	t.Setenv("SIMPLETERM_TEST_DIR", "/opt/data")

	got, err := Expand("$SIMPLETERM_TEST_DIR/logs")
	require.NoError(t, err)
	require.Equal(t, "/opt/data/logs", got)

	got, err = Expand("")
	require.NoError(t, err)
	require.Empty(t, got)
}
