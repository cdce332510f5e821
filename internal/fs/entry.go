package fs

import (
	"os"
	"strings"
	"time"
)

// Entry represents a single child of a directory at the moment it was read.
// Entries are value snapshots: a reload produces fresh ones, nothing mutates
// them in place.
type Entry struct {
	Name     string // basename, NFC-normalized for display and ordering
	FullPath string

	// Metadata below is meaningful only when MetaValid is true. An entry
	// whose lstat failed is still listed, with placeholder rendering.
	MetaValid  bool
	Size       int64
	Modified   time.Time
	Mode       os.FileMode
	Nlink      uint64
	Owner      string
	Group      string
	LinkTarget string // resolved symlink target, empty if not a link or unreadable
}

// IsHidden reports whether the entry name carries the hidden-file marker.
func (e Entry) IsHidden() bool {
	return strings.HasPrefix(e.Name, ".")
}

// IsDir reports whether the entry itself is a directory. Metadata comes from
// lstat, so a symlink pointing at a directory is not a directory here.
func (e Entry) IsDir() bool {
	return e.MetaValid && e.Mode.IsDir()
}

// IsRegular reports whether the entry is a regular file.
func (e Entry) IsRegular() bool {
	return e.MetaValid && e.Mode.IsRegular()
}

// IsSymlink reports whether the entry is a symbolic link.
func (e Entry) IsSymlink() bool {
	return e.MetaValid && e.Mode&os.ModeSymlink != 0
}
