package config

import "errors"

// SortMode selects the ordering applied to a directory snapshot.
type SortMode int

const (
	SortName SortMode = iota // alphabetical by name
	SortSize                 // largest first
	SortTime                 // newest first
)

// String returns the label shown in the settings summary line.
func (m SortMode) String() string {
	switch m {
	case SortSize:
		return "Size"
	case SortTime:
		return "Time"
	default:
		return "Name"
	}
}

// Next cycles Name -> Size -> Time -> Name.
func (m SortMode) Next() SortMode {
	return (m + 1) % 3
}

// Settings holds the display and filter options. The flag parser in cmd
// populates it once; afterwards only the session controller mutates it.
type Settings struct {
	ShowHidden  bool
	Recursive   bool // batch mode only
	LongFormat  bool
	DirsOnly    bool
	FilesOnly   bool
	HumanSizes  bool
	SortMode    SortMode
	Interactive bool
}

// ErrConflictingFilters is returned when dirs-only and files-only are both
// requested at startup.
var ErrConflictingFilters = errors.New("dirs-only and files-only are mutually exclusive")

// Validate rejects settings combinations that must fail before any UI state
// is entered.
func (s Settings) Validate() error {
	if s.DirsOnly && s.FilesOnly {
		return ErrConflictingFilters
	}
	return nil
}

// ToggleDirsOnly flips the dirs-only filter, clearing files-only so the two
// can never be active together.
func (s *Settings) ToggleDirsOnly() {
	s.DirsOnly = !s.DirsOnly
	if s.DirsOnly {
		s.FilesOnly = false
	}
}

// ToggleFilesOnly flips the files-only filter, clearing dirs-only.
func (s *Settings) ToggleFilesOnly() {
	s.FilesOnly = !s.FilesOnly
	if s.FilesOnly {
		s.DirsOnly = false
	}
}

// FilterLabel names the effective type filter for the settings summary.
func (s Settings) FilterLabel() string {
	switch {
	case s.DirsOnly:
		return "Dirs"
	case s.FilesOnly:
		return "Files"
	default:
		return "All"
	}
}
