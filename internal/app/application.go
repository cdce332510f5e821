package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/dirx/internal/config"
	statepkg "github.com/kk-code-lab/dirx/internal/state"
	inputui "github.com/kk-code-lab/dirx/internal/ui/input"
	renderui "github.com/kk-code-lab/dirx/internal/ui/render"
)

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.AppState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	shouldQuit bool
	closed     bool
}

// ResolveStartPath turns the user supplied start directory into an absolute
// path and verifies it names a directory. Failures here are fatal and happen
// before any terminal state changes.
func ResolveStartPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("cannot resolve %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("cannot open %s: %w", path, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", path)
	}
	return abs, nil
}

// NewApplication resolves the start directory, loads its first snapshot and
// takes over the terminal. The snapshot load comes first so a bad start
// directory fails cleanly without ever entering the alternate screen.
func NewApplication(startPath string, settings config.Settings) (*Application, error) {
	path, err := ResolveStartPath(startPath)
	if err != nil {
		return nil, err
	}

	entries, err := statepkg.LoadSnapshot(path, settings)
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("cannot open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("cannot initialize terminal: %w", err)
	}

	app := newWithScreen(screen, path, settings)
	app.state.Entries = entries
	app.state.NeedsRefresh = false
	return app, nil
}

func newWithScreen(screen tcell.Screen, path string, settings config.Settings) *Application {
	state := &statepkg.AppState{
		CurrentPath:  path,
		Settings:     settings,
		NeedsRefresh: true,
	}
	w, h := screen.Size()
	state.ScreenWidth = w
	state.ScreenHeight = h

	handler := inputui.NewInputHandler()
	handler.SetState(state)

	return &Application{
		screen:   screen,
		state:    state,
		reducer:  statepkg.NewStateReducer(),
		renderer: renderui.NewRenderer(screen),
		input:    handler,
	}
}

// Run drives the event loop until quit. One iteration reloads when flagged,
// renders, then blocks on the next terminal event.
func (app *Application) Run() {
	defer app.Close()

	for !app.shouldQuit {
		if app.state.NeedsRefresh {
			app.reducer.Refresh(app.state)
		}
		app.renderer.Render(app.state)

		ev := app.screen.PollEvent()
		if ev == nil {
			// Screen was finalized under us.
			return
		}

		action, ok := app.input.DecodeEvent(ev)
		if !ok {
			continue
		}
		if _, quit := action.(statepkg.QuitAction); quit {
			app.shouldQuit = true
			continue
		}
		_, _ = app.reducer.Reduce(app.state, action)
	}
}

// CurrentPath returns the directory the browser is showing.
func (app *Application) CurrentPath() string {
	return app.state.CurrentPath
}

// Close restores the terminal. Safe to call more than once.
func (app *Application) Close() {
	if app.closed {
		return
	}
	app.closed = true
	app.screen.Fini()
}
