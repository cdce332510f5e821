// Package batch implements the non-interactive listing mode. Output goes to
// a plain writer, one directory block at a time, so it composes with pipes
// the way ls does.
package batch

import (
	"fmt"
	"io"

	"github.com/kk-code-lab/dirx/internal/config"
	statepkg "github.com/kk-code-lab/dirx/internal/state"
	renderui "github.com/kk-code-lab/dirx/internal/ui/render"
)

// Dumper writes directory listings without touching the terminal.
type Dumper struct {
	Out      io.Writer
	Err      io.Writer // unreadable subdirectories are reported here
	Settings config.Settings
}

// Dump lists path to Out. In recursive mode every readable subdirectory
// follows as its own block. An unreadable start directory is an error; an
// unreadable subdirectory is reported and skipped so the rest of the tree
// still prints.
func (d *Dumper) Dump(path string) error {
	return d.dump(path, true)
}

func (d *Dumper) dump(path string, top bool) error {
	entries, err := statepkg.LoadSnapshot(path, d.Settings)
	if err != nil {
		if top {
			return err
		}
		fmt.Fprintln(d.errWriter(), err)
		return nil
	}

	fmt.Fprintf(d.Out, "%s:\n", path)
	for i := range entries {
		fmt.Fprintln(d.Out, renderui.FormatLongRow(&entries[i], d.Settings.HumanSizes))
	}
	fmt.Fprintln(d.Out)

	if !d.Settings.Recursive {
		return nil
	}
	for i := range entries {
		if entries[i].IsDir() {
			if err := d.dump(entries[i].FullPath, false); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *Dumper) errWriter() io.Writer {
	if d.Err != nil {
		return d.Err
	}
	return io.Discard
}
