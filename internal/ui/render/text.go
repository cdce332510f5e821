package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// The renderer runs on the event loop goroutine, so the width caches need
// no locking.
func (r *Renderer) cachedRuneWidth(ru rune) int {
	if ru < 128 {
		if w := r.asciiWidth[ru]; w != 0 {
			return w - 1
		}
		w := runewidth.RuneWidth(ru)
		if w < 0 {
			w = 0
		}
		r.asciiWidth[ru] = w + 1
		return w
	}

	if w, ok := r.wideWidth[ru]; ok {
		return w
	}
	w := runewidth.RuneWidth(ru)
	if w < 0 {
		w = 0
	}
	r.wideWidth[ru] = w
	return w
}

func (r *Renderer) measureTextWidth(text string) int {
	width := 0
	for _, ru := range text {
		width += r.cachedRuneWidth(ru)
	}
	return width
}

// truncateTrailing cuts text to maxWidth cells, marking the cut with "...".
// The head of the string survives, which suits paths shown left to right.
func (r *Renderer) truncateTrailing(text string, maxWidth int) string {
	if maxWidth <= 0 || text == "" {
		return ""
	}
	if r.measureTextWidth(text) <= maxWidth {
		return text
	}

	const marker = "..."
	if maxWidth <= len(marker) {
		return marker[:maxWidth]
	}

	available := maxWidth - len(marker)
	var builder strings.Builder
	width := 0
	for _, ru := range text {
		rw := r.cachedRuneWidth(ru)
		if width+rw > available {
			break
		}
		builder.WriteRune(ru)
		width += rw
	}
	builder.WriteString(marker)
	return builder.String()
}

func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	runes := []rune(text)
	i := 0

	for i < len(runes) {
		if x-startX >= maxWidth {
			break
		}

		mainc := runes[i]
		i++

		var combc []rune
		for i < len(runes) && r.cachedRuneWidth(runes[i]) < 0 {
			combc = append(combc, runes[i])
			i++
		}

		r.screen.SetContent(x, y, mainc, combc, style)

		w := r.cachedRuneWidth(mainc)
		if w < 1 {
			w = 1
		}
		x += w
	}

	return x
}

// fillLine paints text on row y and pads the rest of the row with the same
// style so stale cells never bleed through.
func (r *Renderer) fillLine(y, w int, text string, style tcell.Style) {
	x := r.drawTextLine(0, y, w, text, style)
	for ; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}
