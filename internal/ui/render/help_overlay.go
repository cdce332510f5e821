package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

type helpOverlayEntry struct {
	keys string
	desc string
}

type helpOverlaySection struct {
	title   string
	entries []helpOverlayEntry
}

func buildHelpOverlayLines() []string {
	sections := []helpOverlaySection{
		{
			title: "Navigation",
			entries: []helpOverlayEntry{
				{keys: "j/↓, k/↑", desc: "Move selection"},
				{keys: "↵", desc: "Open directory / show entry details"},
				{keys: "b or ←", desc: "Go back"},
				{keys: "Home/End", desc: "Jump to first/last entry"},
				{keys: "PgUp/PgDn", desc: "Move one page"},
			},
		},
		{
			title: "Listing",
			entries: []helpOverlayEntry{
				{keys: "a", desc: "Toggle hidden entries"},
				{keys: "d", desc: "Show directories only"},
				{keys: "f", desc: "Show files only"},
				{keys: "s", desc: "Cycle sort (name, size, time)"},
				{keys: "l", desc: "Toggle long format"},
				{keys: "H", desc: "Toggle human readable sizes"},
				{keys: "r", desc: "Refresh"},
			},
		},
		{
			title: "Exit",
			entries: []helpOverlayEntry{
				{keys: "q", desc: "Quit"},
				{keys: "Ctrl+C", desc: "Quit immediately"},
				{keys: "?", desc: "This help"},
			},
		},
	}

	lines := make([]string, 0, 24)
	for i, section := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section.title)
		for _, entry := range section.entries {
			lines = append(lines, fmt.Sprintf("  %-14s %s", entry.keys, entry.desc))
		}
	}

	return lines
}

func (r *Renderer) drawHelpOverlay(w, h int) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	r.clearRegion(w, h, baseStyle)

	title := " Help "
	headerStyle := baseStyle.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg).Bold(true)
	titleStart := 0
	if tw := r.measureTextWidth(title); w > tw {
		titleStart = (w - tw) / 2
	}
	r.drawTextLine(titleStart, 0, w-titleStart, title, headerStyle)

	row := 2
	for _, line := range buildHelpOverlayLines() {
		if row >= h-1 {
			break
		}
		r.drawTextLine(2, row, w-4, r.truncateTrailing(line, w-4), baseStyle)
		row++
	}

	if h > 3 {
		footer := "press any key to return"
		r.drawTextLine(0, h-1, w, r.truncateTrailing(footer, w), headerStyle)
	}
}

func (r *Renderer) clearRegion(w, h int, style tcell.Style) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}
