package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	apppkg "github.com/kk-code-lab/dirx/internal/app"
	"github.com/kk-code-lab/dirx/internal/batch"
	"github.com/kk-code-lab/dirx/internal/config"
)

func usage(prog string) {
	fmt.Fprintf(os.Stderr, `Usage: %s [options] [directory]

Interactive mode controls (once running):
  j/k or arrows - Move selection
  enter         - Open directory / show entry details
  b             - Go back
  a             - Toggle hidden files
  l             - Toggle detailed view
  s             - Change sort order (name, size, time)
  H             - Toggle human-readable sizes
  d             - Show only directories
  f             - Show only files
  r             - Refresh view
  q             - Quit
  ?             - Show help

Startup options:
  -a Start with hidden files shown
  -r Recursive listing (batch mode)
  -l Start in detailed view
  -h Start with human-readable sizes
  -S Start sorted by size
  -t Start sorted by time
  -n Start sorted by name (default)
  -d Start with directories only
  -f Start with files only
  -i Interactive mode (default on a terminal)
  -b Batch mode (list and exit)
`, prog)
}

// parseArgs handles getopt style options, including clustered ones like -al.
// The first non-option argument is the start directory.
func parseArgs(args []string, interactiveDefault bool) (config.Settings, string, error) {
	settings := config.Settings{
		SortMode:    config.SortName,
		Interactive: interactiveDefault,
	}
	startDir := "."
	dirSet := false

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			for _, rest := range args[i+1:] {
				if dirSet {
					return settings, "", fmt.Errorf("unexpected argument %q", rest)
				}
				startDir = rest
				dirSet = true
			}
			break
		}
		if len(arg) < 2 || arg[0] != '-' {
			if dirSet {
				return settings, "", fmt.Errorf("unexpected argument %q", arg)
			}
			startDir = arg
			dirSet = true
			continue
		}

		for _, opt := range arg[1:] {
			switch opt {
			case 'a':
				settings.ShowHidden = true
			case 'r':
				settings.Recursive = true
			case 'l':
				settings.LongFormat = true
			case 'S':
				settings.SortMode = config.SortSize
			case 't':
				settings.SortMode = config.SortTime
			case 'n':
				settings.SortMode = config.SortName
			case 'd':
				settings.DirsOnly = true
			case 'f':
				settings.FilesOnly = true
			case 'h':
				settings.HumanSizes = true
			case 'i':
				settings.Interactive = true
			case 'b':
				settings.Interactive = false
			default:
				return settings, "", fmt.Errorf("unknown option -%c", opt)
			}
		}
	}

	return settings, startDir, nil
}

func run() int {
	interactiveDefault := term.IsTerminal(int(os.Stdout.Fd()))
	settings, startDir, err := parseArgs(os.Args[1:], interactiveDefault)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dirx: %v\n", err)
		usage(os.Args[0])
		return 1
	}
	if err := settings.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "dirx: %v\n", err)
		usage(os.Args[0])
		return 1
	}

	if !settings.Interactive {
		d := &batch.Dumper{Out: os.Stdout, Err: os.Stderr, Settings: settings}
		if err := d.Dump(startDir); err != nil {
			fmt.Fprintf(os.Stderr, "dirx: %v\n", err)
			return 1
		}
		return 0
	}

	// UTF-8 fallback keeps non ASCII names readable on odd locales.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	app, err := apppkg.NewApplication(startDir, settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dirx: %v\n", err)
		return 1
	}
	defer app.Close()

	app.Run()
	return 0
}

func main() {
	os.Exit(run())
}
