package state

import (
	"github.com/kk-code-lab/dirx/internal/config"
	fsutil "github.com/kk-code-lab/dirx/internal/fs"
)

// FileEntry mirrors fs.Entry so UI/state code can rely on a stable type.
type FileEntry = fsutil.Entry

// reservedLines is the frame overhead around the file list: title line,
// settings summary, blank separator, footer.
const reservedLines = 4

// AppState is the single source of truth for one interactive session. It is
// owned by the session controller goroutine; nothing else mutates it.
type AppState struct {
	// Navigation & filesystem
	CurrentPath string      // always absolute
	Entries     []FileEntry // current snapshot, filtered and sorted
	History     History     // previously visited paths for "back"

	// Selection & viewport
	SelectedIndex int
	ScrollOffset  int

	// Display settings, toggled live
	Settings config.Settings

	// Loop flags
	NeedsRefresh bool

	// Modal overlays; at most one is active. Any keypress dismisses them.
	HelpVisible bool
	InfoEntry   *FileEntry

	// Dimensions
	ScreenWidth  int
	ScreenHeight int

	// Last recoverable error, shown in the footer until the next reload
	LastError error
}

// CurrentEntry returns the entry under the cursor, or nil for an empty
// snapshot or out-of-range cursor.
func (s *AppState) CurrentEntry() *FileEntry {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Entries) {
		return nil
	}
	return &s.Entries[s.SelectedIndex]
}

// VisibleLines is the viewport budget: screen height minus the reserved
// frame lines, never less than one.
func (s *AppState) VisibleLines() int {
	lines := s.ScreenHeight - reservedLines
	if lines < 1 {
		lines = 1
	}
	return lines
}

// ClampCursor forces the cursor back into [0, len-1], or 0 for an empty
// snapshot. Called after every reload because snapshots are replaced
// wholesale and only the index survives.
func (s *AppState) ClampCursor() {
	if len(s.Entries) == 0 {
		s.SelectedIndex = 0
		return
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
	if s.SelectedIndex > len(s.Entries)-1 {
		s.SelectedIndex = len(s.Entries) - 1
	}
}

// EnsureCursorVisible recomputes the scroll offset so the cursor row falls
// inside the viewport. The renderer calls this before drawing.
func (s *AppState) EnsureCursorVisible() {
	available := s.VisibleLines()
	if s.SelectedIndex < s.ScrollOffset {
		s.ScrollOffset = s.SelectedIndex
	} else if s.SelectedIndex >= s.ScrollOffset+available {
		s.ScrollOffset = s.SelectedIndex - available + 1
	}
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
}

// OverlayActive reports whether a modal overlay is consuming input.
func (s *AppState) OverlayActive() bool {
	return s.HelpVisible || s.InfoEntry != nil
}
