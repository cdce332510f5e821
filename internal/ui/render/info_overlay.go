package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	fsutil "github.com/kk-code-lab/dirx/internal/fs"
	"github.com/kk-code-lab/dirx/internal/textutil"
)

func buildInfoOverlayLines(entry *fsutil.Entry) []string {
	name := textutil.SanitizeTerminalText(entry.Name)

	if !entry.MetaValid {
		return []string{
			fmt.Sprintf("  %-12s %s", "Name", name),
			fmt.Sprintf("  %-12s %s", "Path", textutil.SanitizeTerminalText(entry.FullPath)),
			"",
			"  metadata could not be read",
		}
	}

	lines := []string{
		fmt.Sprintf("  %-12s %s", "Name", name),
		fmt.Sprintf("  %-12s %s", "Path", textutil.SanitizeTerminalText(entry.FullPath)),
		fmt.Sprintf("  %-12s %s", "Type", entryTypeLabel(entry)),
		fmt.Sprintf("  %-12s %s", "Permissions", FormatPermissions(entry.Mode)),
		fmt.Sprintf("  %-12s %d (%s)", "Size", entry.Size, FormatSize(entry.Size, true)),
		fmt.Sprintf("  %-12s %s", "Modified", entry.Modified.Local().Format(modTimeLayout)),
		fmt.Sprintf("  %-12s %d", "Links", entry.Nlink),
	}
	if entry.Owner != "" || entry.Group != "" {
		lines = append(lines, fmt.Sprintf("  %-12s %s:%s", "Owner", entry.Owner, entry.Group))
	}
	if entry.IsSymlink() && entry.LinkTarget != "" {
		lines = append(lines, fmt.Sprintf("  %-12s %s", "Target",
			textutil.SanitizeTerminalText(entry.LinkTarget)))
	}
	return lines
}

func entryTypeLabel(entry *fsutil.Entry) string {
	switch {
	case entry.IsDir():
		return "directory"
	case entry.IsSymlink():
		return "symbolic link"
	case entry.IsRegular():
		return "regular file"
	default:
		return "special file"
	}
}

func (r *Renderer) drawInfoOverlay(entry *fsutil.Entry, w, h int) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	r.clearRegion(w, h, baseStyle)

	title := " Entry details "
	headerStyle := baseStyle.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg).Bold(true)
	titleStart := 0
	if tw := r.measureTextWidth(title); w > tw {
		titleStart = (w - tw) / 2
	}
	r.drawTextLine(titleStart, 0, w-titleStart, title, headerStyle)

	row := 2
	for _, line := range buildInfoOverlayLines(entry) {
		if row >= h-1 {
			break
		}
		r.drawTextLine(0, row, w, r.truncateTrailing(line, w), baseStyle)
		row++
	}

	if h > 3 {
		footer := "press any key to return"
		r.drawTextLine(0, h-1, w, r.truncateTrailing(footer, w), headerStyle)
	}
}
