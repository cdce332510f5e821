package state

// Action is the base interface for all state mutations. Raw terminal input
// is decoded into exactly one Action value before dispatch; the reducer
// never sees key codes.
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type CursorUpAction struct{}
type CursorDownAction struct{}
type CursorHomeAction struct{}
type CursorEndAction struct{}
type PageUpAction struct{}
type PageDownAction struct{}
type OpenAction struct{}
type BackAction struct{}

// ===== SETTINGS ACTIONS =====

type ToggleHiddenAction struct{}
type ToggleDirsOnlyAction struct{}
type ToggleFilesOnlyAction struct{}
type CycleSortAction struct{}
type ToggleLongFormatAction struct{}
type ToggleHumanSizesAction struct{}

// ===== VIEW ACTIONS =====

type RefreshAction struct{}
type HelpAction struct{}
type DismissOverlayAction struct{}
type ResizeAction struct {
	Width  int
	Height int
}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}
