package input

import (
	"github.com/gdamore/tcell/v2"

	statepkg "github.com/kk-code-lab/dirx/internal/state"
)

// InputHandler converts tcell events to Actions
type InputHandler struct {
	state *statepkg.AppState // Reference to current state for overlay checking
}

// NewInputHandler creates a new input handler
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// SetState sets the state reference for overlay checking
func (ih *InputHandler) SetState(state *statepkg.AppState) {
	ih.state = state
}

// DecodeEvent converts a tcell event into an Action. The second return is
// false for events that map to nothing.
func (ih *InputHandler) DecodeEvent(ev tcell.Event) (statepkg.Action, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return ih.decodeKeyEvent(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return statepkg.ResizeAction{Width: w, Height: h}, true
	default:
		return nil, false
	}
}

func (ih *InputHandler) decodeKeyEvent(ev *tcell.EventKey) (statepkg.Action, bool) {
	// Ctrl+C quits from anywhere, overlays included.
	if ev.Key() == tcell.KeyCtrlC {
		return statepkg.QuitAction{}, true
	}

	// While an overlay is up, any other key dismisses it.
	if ih.state != nil && ih.state.OverlayActive() {
		return statepkg.DismissOverlayAction{}, true
	}

	switch ev.Key() {
	case tcell.KeyUp:
		return statepkg.CursorUpAction{}, true
	case tcell.KeyDown:
		return statepkg.CursorDownAction{}, true
	case tcell.KeyLeft:
		return statepkg.BackAction{}, true
	case tcell.KeyEnter:
		return statepkg.OpenAction{}, true
	case tcell.KeyHome:
		return statepkg.CursorHomeAction{}, true
	case tcell.KeyEnd:
		return statepkg.CursorEndAction{}, true
	case tcell.KeyPgUp:
		return statepkg.PageUpAction{}, true
	case tcell.KeyPgDn:
		return statepkg.PageDownAction{}, true
	case tcell.KeyRune:
		return ih.decodeRune(ev.Rune())
	default:
		return nil, false
	}
}

func (ih *InputHandler) decodeRune(r rune) (statepkg.Action, bool) {
	switch r {
	case 'q', 'Q':
		return statepkg.QuitAction{}, true
	case 'j':
		return statepkg.CursorDownAction{}, true
	case 'k':
		return statepkg.CursorUpAction{}, true
	case 'b':
		return statepkg.BackAction{}, true
	case 'a':
		return statepkg.ToggleHiddenAction{}, true
	case 'd':
		return statepkg.ToggleDirsOnlyAction{}, true
	case 'f':
		return statepkg.ToggleFilesOnlyAction{}, true
	case 's':
		return statepkg.CycleSortAction{}, true
	case 'l':
		return statepkg.ToggleLongFormatAction{}, true
	case 'H':
		return statepkg.ToggleHumanSizesAction{}, true
	case 'r':
		return statepkg.RefreshAction{}, true
	case '?':
		return statepkg.HelpAction{}, true
	default:
		return nil, false
	}
}
