package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	statepkg "github.com/kk-code-lab/dirx/internal/state"
	"github.com/kk-code-lab/dirx/internal/textutil"
)

// Renderer handles all UI rendering
type Renderer struct {
	screen     tcell.Screen
	theme      ColorTheme
	asciiWidth [128]int
	wideWidth  map[rune]int
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:    screen,
		theme:     GetColorTheme(),
		wideWidth: make(map[rune]int),
	}
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()

	w, h := r.screen.Size()

	switch {
	case state.HelpVisible:
		r.drawHelpOverlay(w, h)
	case state.InfoEntry != nil:
		r.drawInfoOverlay(state.InfoEntry, w, h)
	default:
		r.drawBrowser(state, w, h)
	}

	r.screen.Show()
}

func (r *Renderer) drawBrowser(state *statepkg.AppState, w, h int) {
	r.drawHeader(state, w)
	r.drawSettingsLine(state, w)
	// Row 2 stays blank between the chrome and the list.

	state.EnsureCursorVisible()
	r.drawEntryRows(state, w, h)
	r.drawFooter(state, w, h)
}

// drawHeader renders the title line with the current path.
func (r *Renderer) drawHeader(state *statepkg.AppState, w int) {
	style := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg).Bold(true)

	title := "dirx: " + textutil.SanitizeTerminalText(state.CurrentPath)
	title = r.truncateTrailing(title, w)
	r.fillLine(0, w, title, style)
}

// drawSettingsLine renders the active settings summary.
func (r *Renderer) drawSettingsLine(state *statepkg.AppState, w int) {
	s := state.Settings

	hidden := "Off"
	if s.ShowHidden {
		hidden = "On"
	}
	format := "Short"
	if s.LongFormat {
		format = "Long"
	}
	human := "Off"
	if s.HumanSizes {
		human = "On"
	}

	summary := fmt.Sprintf("[Sort:%s] [Hidden:%s] [Format:%s] [Human:%s] [Filter:%s]",
		s.SortMode, hidden, format, human, s.FilterLabel())

	style := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	r.fillLine(1, w, r.truncateTrailing(summary, w), style)
}

func (r *Renderer) drawEntryRows(state *statepkg.AppState, w, h int) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	fillerStyle := baseStyle.Foreground(r.theme.FillerFg)

	available := state.VisibleLines()
	top := 3 // title, settings, blank
	for line := 0; line < available && top+line < h-1; line++ {
		y := top + line
		idx := state.ScrollOffset + line

		if idx >= len(state.Entries) {
			r.fillLine(y, w, "~", fillerStyle)
			continue
		}

		entry := &state.Entries[idx]
		var row string
		if state.Settings.LongFormat {
			row = FormatLongRow(entry, state.Settings.HumanSizes)
		} else {
			row = FormatShortRow(entry)
		}
		row = textutil.SanitizeTerminalText(row)
		row = r.truncateTrailing(row, w)

		style := baseStyle.Foreground(r.entryColor(entry))
		if idx == state.SelectedIndex {
			style = tcell.StyleDefault.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
		}
		r.fillLine(y, w, row, style)
	}
}

func (r *Renderer) entryColor(entry *statepkg.FileEntry) tcell.Color {
	switch {
	case !entry.MetaValid:
		return r.theme.BrokenFg
	case entry.IsDir():
		return r.theme.DirectoryFg
	case entry.IsSymlink():
		return r.theme.SymlinkFg
	case entry.IsHidden():
		return r.theme.HiddenFg
	default:
		return r.theme.FileFg
	}
}

// drawFooter renders key hints, replaced by the last error while one is set.
func (r *Renderer) drawFooter(state *statepkg.AppState, w, h int) {
	if h < 1 {
		return
	}
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)

	text := "j/k move · Enter open · b back · s sort · r refresh · ? help · q quit"
	if state.LastError != nil {
		style = style.Foreground(r.theme.ErrorFg)
		text = "error: " + textutil.SanitizeTerminalText(state.LastError.Error())
	}

	r.fillLine(h-1, w, r.truncateTrailing(text, w), style)
}
