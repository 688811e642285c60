package fsext

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Entry is one item of a directory listing.
type Entry struct {
	Name  string
	IsDir bool
}

// ListDirectory returns the entries of dir sorted by name. Symlinks to
// directories are reported as directories.
func ListDirectory(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, d := range dirEntries {
		isDir := d.IsDir()
		if d.Type()&os.ModeSymlink != 0 {
			if fi, err := os.Stat(filepath.Join(dir, d.Name())); err == nil {
				isDir = fi.IsDir()
			}
		}
		entries = append(entries, Entry{Name: d.Name(), IsDir: isDir})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Name, b.Name)
	})
	return entries, nil
}

// Resolve returns path unchanged when absolute, otherwise joined onto base.
func Resolve(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
