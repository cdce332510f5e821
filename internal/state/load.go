package state

import (
	"github.com/kk-code-lab/dirx/internal/config"
	fsutil "github.com/kk-code-lab/dirx/internal/fs"
)

// LoadSnapshot produces the filtered, sorted snapshot for one directory. On
// a read failure it returns nil and the error; the reducer decides whether
// to keep the previous snapshot (it does — Recoverable-I/O never kills the
// session).
func LoadSnapshot(path string, settings config.Settings) ([]FileEntry, error) {
	entries, err := fsutil.ReadDir(path)
	if err != nil {
		return nil, err
	}
	filtered := FilterEntries(entries, settings)
	SortEntries(filtered, settings.SortMode)
	return filtered, nil
}

// IncludeEntry applies the visibility filters. Filters that need metadata
// treat an invalid-metadata entry as not matching, so such entries survive
// the hidden filter but never a type filter.
func IncludeEntry(e FileEntry, settings config.Settings) bool {
	if !settings.ShowHidden && e.IsHidden() {
		return false
	}
	if settings.DirsOnly && !e.IsDir() {
		return false
	}
	if settings.FilesOnly && !e.IsRegular() {
		return false
	}
	return true
}

// FilterEntries returns the entries passing IncludeEntry, in input order.
func FilterEntries(entries []FileEntry, settings config.Settings) []FileEntry {
	filtered := make([]FileEntry, 0, len(entries))
	for _, e := range entries {
		if IncludeEntry(e, settings) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
