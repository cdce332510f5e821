package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/unicode/norm"
)

// ReadDir reads the direct children of dirPath with lstat semantics: symlinks
// are described, not followed. The self/parent pseudo-entries are never
// produced. A child whose metadata query fails is still returned, with
// MetaValid unset, so callers can render a placeholder row instead of
// silently dropping it.
func ReadDir(dirPath string) ([]Entry, error) {
	children, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %s: %w", dirPath, err)
	}

	entries := make([]Entry, 0, len(children))
	for _, child := range children {
		rawName := child.Name()
		fullPath := filepath.Join(dirPath, rawName)

		entry := Entry{
			Name:     norm.NFC.String(rawName),
			FullPath: fullPath,
		}

		// DirEntry.Info uses lstat for entries returned by ReadDir.
		info, err := child.Info()
		if err == nil {
			entry.MetaValid = true
			entry.Size = info.Size()
			entry.Modified = info.ModTime()
			entry.Mode = info.Mode()
			entry.Nlink, entry.Owner, entry.Group = statDetails(info)

			if entry.Mode&os.ModeSymlink != 0 {
				if target, err := os.Readlink(fullPath); err == nil {
					entry.LinkTarget = target
				}
			}
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
