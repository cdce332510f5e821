package state

import (
	"sort"

	"github.com/kk-code-lab/dirx/internal/config"
)

// SortEntries orders a snapshot in place. Every mode is a strict total
// order: whenever the primary keys tie or either side lacks valid metadata,
// the comparison falls back to byte-wise name order, which is unique within
// a directory.
func SortEntries(entries []FileEntry, mode config.SortMode) {
	var less func(a, b FileEntry) bool
	switch mode {
	case config.SortSize:
		less = lessBySize
	case config.SortTime:
		less = lessByTime
	default:
		less = lessByName
	}
	sort.Slice(entries, func(i, j int) bool {
		return less(entries[i], entries[j])
	})
}

func lessByName(a, b FileEntry) bool {
	return a.Name < b.Name
}

// lessBySize orders largest first.
func lessBySize(a, b FileEntry) bool {
	if a.MetaValid && b.MetaValid {
		if a.Size == b.Size {
			return lessByName(a, b)
		}
		return a.Size > b.Size
	}
	return lessByName(a, b)
}

// lessByTime orders newest first.
func lessByTime(a, b FileEntry) bool {
	if a.MetaValid && b.MetaValid {
		if a.Modified.Equal(b.Modified) {
			return lessByName(a, b)
		}
		return a.Modified.After(b.Modified)
	}
	return lessByName(a, b)
}
