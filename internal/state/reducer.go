package state

import (
	"path/filepath"
)

// StateReducer applies actions to state. All interactive logic that does not
// touch the terminal lives here, which keeps it testable against real
// temporary directories without a screen.
type StateReducer struct{}

// NewStateReducer creates a new reducer.
func NewStateReducer() *StateReducer {
	return &StateReducer{}
}

// Reduce applies one action. QuitAction is intercepted by the application
// layer and never reaches this switch; unknown actions are ignored.
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	switch a := action.(type) {

	// ===== NAVIGATION =====

	case CursorDownAction:
		if len(state.Entries) == 0 {
			return state, nil
		}
		if state.SelectedIndex < len(state.Entries)-1 {
			state.SelectedIndex++
		}
		return state, nil

	case CursorUpAction:
		if len(state.Entries) == 0 {
			return state, nil
		}
		if state.SelectedIndex > 0 {
			state.SelectedIndex--
		}
		return state, nil

	case CursorHomeAction:
		state.SelectedIndex = 0
		return state, nil

	case CursorEndAction:
		if len(state.Entries) > 0 {
			state.SelectedIndex = len(state.Entries) - 1
		}
		return state, nil

	case PageUpAction:
		state.SelectedIndex -= state.VisibleLines()
		state.ClampCursor()
		return state, nil

	case PageDownAction:
		state.SelectedIndex += state.VisibleLines()
		state.ClampCursor()
		return state, nil

	case OpenAction:
		entry := state.CurrentEntry()
		if entry == nil {
			// Empty snapshot: confirm is a silent no-op.
			return state, nil
		}
		if entry.IsDir() {
			r.enterDirectory(state, entry.FullPath)
			return state, nil
		}
		// Non-directories get a modal details view. The copy keeps the
		// overlay stable even though the snapshot is replaced on refresh.
		info := *entry
		state.InfoEntry = &info
		return state, nil

	case BackAction:
		r.goBack(state)
		return state, nil

	// ===== SETTINGS =====

	case ToggleHiddenAction:
		state.Settings.ShowHidden = !state.Settings.ShowHidden
		state.NeedsRefresh = true
		return state, nil

	case ToggleDirsOnlyAction:
		state.Settings.ToggleDirsOnly()
		state.NeedsRefresh = true
		return state, nil

	case ToggleFilesOnlyAction:
		state.Settings.ToggleFilesOnly()
		state.NeedsRefresh = true
		return state, nil

	case CycleSortAction:
		state.Settings.SortMode = state.Settings.SortMode.Next()
		state.NeedsRefresh = true
		return state, nil

	case ToggleLongFormatAction:
		// Same snapshot, different rendering; no reload.
		state.Settings.LongFormat = !state.Settings.LongFormat
		return state, nil

	case ToggleHumanSizesAction:
		state.Settings.HumanSizes = !state.Settings.HumanSizes
		return state, nil

	// ===== VIEW =====

	case RefreshAction:
		state.NeedsRefresh = true
		return state, nil

	case HelpAction:
		state.HelpVisible = true
		return state, nil

	case DismissOverlayAction:
		state.HelpVisible = false
		state.InfoEntry = nil
		// Reload after an overlay so the list never shows metadata that
		// went stale while the overlay was up.
		state.NeedsRefresh = true
		return state, nil

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		state.NeedsRefresh = true
		return state, nil
	}

	return state, nil
}

// Refresh reloads the snapshot for the current path with current settings.
// On failure the previous snapshot stays visible and the error surfaces in
// the footer. The cursor keeps its index, clamped to the new length; the
// scroll offset restarts at the top and the renderer pulls the cursor back
// into view.
func (r *StateReducer) Refresh(state *AppState) {
	state.NeedsRefresh = false
	entries, err := LoadSnapshot(state.CurrentPath, state.Settings)
	if err != nil {
		state.LastError = err
		return
	}
	state.LastError = nil
	state.Entries = entries
	state.ScrollOffset = 0
	state.ClampCursor()
}

// enterDirectory descends into path, recording the departure point so "back"
// can return to it. The new directory is loaded before anything is
// committed: an unreadable target leaves path, snapshot and history exactly
// as they were.
func (r *StateReducer) enterDirectory(state *AppState, path string) {
	entries, err := LoadSnapshot(path, state.Settings)
	if err != nil {
		state.LastError = err
		return
	}
	state.History.Push(state.CurrentPath)
	r.adoptSnapshot(state, path, entries)
}

// goBack returns to the most recent distinct prior location, falling back to
// the filesystem parent when the history is exhausted. At the root the
// parent equals the current path and the action is a no-op.
func (r *StateReducer) goBack(state *AppState) {
	target := ""
	if popped, ok := state.History.Pop(); ok && popped != state.CurrentPath {
		target = popped
	} else {
		parent := filepath.Dir(state.CurrentPath)
		if parent != state.CurrentPath {
			target = parent
		}
	}
	if target == "" {
		return
	}

	entries, err := LoadSnapshot(target, state.Settings)
	if err != nil {
		state.LastError = err
		return
	}
	r.adoptSnapshot(state, target, entries)
}

func (r *StateReducer) adoptSnapshot(state *AppState, path string, entries []FileEntry) {
	state.CurrentPath = path
	state.Entries = entries
	state.SelectedIndex = 0
	state.ScrollOffset = 0
	state.LastError = nil
	state.NeedsRefresh = false
}
