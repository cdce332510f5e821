package render

import (
	"fmt"
	"os"

	fsutil "github.com/kk-code-lab/dirx/internal/fs"
)

// invalidPermissions stands in for entries whose metadata could not be read.
const invalidPermissions = "??????????"

// FormatPermissions renders a mode as a type character followed by three
// rwx triplets, ls style.
func FormatPermissions(mode os.FileMode) string {
	buf := [10]byte{}

	switch {
	case mode.IsDir():
		buf[0] = 'd'
	case mode&os.ModeSymlink != 0:
		buf[0] = 'l'
	case mode&os.ModeCharDevice != 0:
		buf[0] = 'c'
	case mode&os.ModeDevice != 0:
		buf[0] = 'b'
	case mode&os.ModeNamedPipe != 0:
		buf[0] = 'p'
	case mode&os.ModeSocket != 0:
		buf[0] = 's'
	default:
		buf[0] = '-'
	}

	perm := mode.Perm()
	chars := [3]byte{'r', 'w', 'x'}
	for i := 0; i < 9; i++ {
		if perm&(1<<uint(8-i)) != 0 {
			buf[1+i] = chars[i%3]
		} else {
			buf[1+i] = '-'
		}
	}

	return string(buf[:])
}

// FormatSize renders a byte count, either raw or scaled to a one decimal
// human unit. Scaling divides by 1024 until the value drops below 1024 or
// the units run out at terabytes.
func FormatSize(size int64, human bool) string {
	if !human {
		return fmt.Sprintf("%d", size)
	}

	value := float64(size)
	units := []string{"B", "K", "M", "G", "T"}
	idx := 0
	for value >= 1024 && idx < len(units)-1 {
		value /= 1024
		idx++
	}
	return fmt.Sprintf("%.1f%s", value, units[idx])
}

const modTimeLayout = "2006-01-02 15:04"

// FormatLongRow renders one entry in long format: permissions, link count,
// owner, group, size, modification time, name. Entries with unreadable
// metadata keep their slot with placeholder fields.
func FormatLongRow(entry *fsutil.Entry, human bool) string {
	if !entry.MetaValid {
		return fmt.Sprintf("%s %3s %-8s %-8s %8s %16s %s",
			invalidPermissions, "?", "-", "-", "?", "?", entry.Name)
	}

	owner := entry.Owner
	if owner == "" {
		owner = "-"
	}
	group := entry.Group
	if group == "" {
		group = "-"
	}

	row := fmt.Sprintf("%s %3d %-8s %-8s %8s %s %s",
		FormatPermissions(entry.Mode),
		entry.Nlink,
		owner,
		group,
		FormatSize(entry.Size, human),
		entry.Modified.Local().Format(modTimeLayout),
		entry.Name)

	if entry.IsSymlink() && entry.LinkTarget != "" {
		row += " -> " + entry.LinkTarget
	}
	return row
}

// FormatShortRow renders one entry in short format.
func FormatShortRow(entry *fsutil.Entry) string {
	return entry.Name
}
