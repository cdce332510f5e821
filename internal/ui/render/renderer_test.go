package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	statepkg "github.com/kk-code-lab/dirx/internal/state"
)

func TestTruncateTrailing(t *testing.T) {
	r := NewRenderer(nil)

	tests := []struct {
		name   string
		text   string
		width  int
		expect string
	}{
		{
			name:   "fits without truncation",
			text:   "file.txt",
			width:  20,
			expect: "file.txt",
		},
		{
			name:   "adds marker when needed",
			text:   "verylongname",
			width:  8,
			expect: "veryl...",
		},
		{
			name:   "keeps the head of the text",
			text:   "/home/user/projects/deep",
			width:  10,
			expect: "/home/u...",
		},
		{
			name:   "only marker when width too small",
			text:   "example",
			width:  2,
			expect: "..",
		},
		{
			name:   "returns empty when width is zero",
			text:   "anything",
			width:  0,
			expect: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := r.truncateTrailing(tt.text, tt.width)
			if actual != tt.expect {
				t.Fatalf("expected %q, got %q (width %d)", tt.expect, actual, tt.width)
			}
		})
	}
}

func simulationRender(t *testing.T, state *statepkg.AppState, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	state.ScreenWidth = w
	state.ScreenHeight = h

	NewRenderer(screen).Render(state)
	return screen
}

func screenRow(screen tcell.SimulationScreen, y int) string {
	w, _ := screen.Size()
	var builder strings.Builder
	for x := 0; x < w; x++ {
		mainc, _, _, _ := screen.GetContent(x, y)
		builder.WriteRune(mainc)
	}
	return strings.TrimRight(builder.String(), " ")
}

func TestRenderFrameLayout(t *testing.T) {
	state := &statepkg.AppState{
		CurrentPath: "/demo",
		Entries: []statepkg.FileEntry{
			{Name: "alpha", MetaValid: true},
			{Name: "beta", MetaValid: true},
		},
	}

	screen := simulationRender(t, state, 60, 10)
	defer screen.Fini()

	if got := screenRow(screen, 0); got != "dirx: /demo" {
		t.Errorf("Title row: %q", got)
	}
	if got := screenRow(screen, 1); !strings.HasPrefix(got, "[Sort:Name] [Hidden:Off]") {
		t.Errorf("Settings row: %q", got)
	}
	if got := screenRow(screen, 2); got != "" {
		t.Errorf("Separator row should be blank, got %q", got)
	}
	if got := screenRow(screen, 3); got != "alpha" {
		t.Errorf("First entry row: %q", got)
	}
	if got := screenRow(screen, 4); got != "beta" {
		t.Errorf("Second entry row: %q", got)
	}
	// Rows past the snapshot get tilde fillers, like less and vi.
	if got := screenRow(screen, 5); got != "~" {
		t.Errorf("Filler row: %q", got)
	}
	if got := screenRow(screen, 9); !strings.Contains(got, "q quit") {
		t.Errorf("Footer row: %q", got)
	}
}

func TestRenderFooterShowsLastError(t *testing.T) {
	state := &statepkg.AppState{
		CurrentPath: "/demo",
		LastError:   errors.New("cannot read directory /demo/x: permission denied"),
	}

	screen := simulationRender(t, state, 80, 10)
	defer screen.Fini()

	got := screenRow(screen, 9)
	if !strings.HasPrefix(got, "error: ") || !strings.Contains(got, "permission denied") {
		t.Errorf("Footer should carry the error, got %q", got)
	}
}

func TestRenderHelpOverlayReplacesFrame(t *testing.T) {
	state := &statepkg.AppState{
		CurrentPath: "/demo",
		Entries:     []statepkg.FileEntry{{Name: "alpha", MetaValid: true}},
		HelpVisible: true,
	}

	screen := simulationRender(t, state, 60, 20)
	defer screen.Fini()

	var dump strings.Builder
	for y := 0; y < 20; y++ {
		dump.WriteString(screenRow(screen, y))
		dump.WriteByte('\n')
	}
	frame := dump.String()

	if !strings.Contains(frame, "Help") {
		t.Error("Help overlay title missing")
	}
	if !strings.Contains(frame, "Toggle hidden entries") {
		t.Error("Help overlay body missing")
	}
	if strings.Contains(frame, "dirx: /demo") {
		t.Error("Browser frame should be hidden behind the overlay")
	}
}

func TestRenderInfoOverlay(t *testing.T) {
	entry := statepkg.FileEntry{
		Name:      "notes.txt",
		FullPath:  "/demo/notes.txt",
		MetaValid: true,
		Mode:      0644,
		Size:      42,
		Nlink:     1,
	}
	state := &statepkg.AppState{
		CurrentPath: "/demo",
		Entries:     []statepkg.FileEntry{entry},
		InfoEntry:   &entry,
	}

	screen := simulationRender(t, state, 60, 16)
	defer screen.Fini()

	var dump strings.Builder
	for y := 0; y < 16; y++ {
		dump.WriteString(screenRow(screen, y))
		dump.WriteByte('\n')
	}
	frame := dump.String()

	for _, want := range []string{"notes.txt", "/demo/notes.txt", "regular file", "-rw-r--r--"} {
		if !strings.Contains(frame, want) {
			t.Errorf("Info overlay missing %q", want)
		}
	}
}

func TestRenderCursorRowUsesSelectionStyle(t *testing.T) {
	state := &statepkg.AppState{
		CurrentPath: "/demo",
		Entries: []statepkg.FileEntry{
			{Name: "alpha", MetaValid: true},
			{Name: "beta", MetaValid: true},
		},
		SelectedIndex: 1,
	}

	screen := simulationRender(t, state, 60, 10)
	defer screen.Fini()

	theme := GetColorTheme()
	_, _, style, _ := screen.GetContent(0, 4)
	_, bg, _ := style.Decompose()
	if bg != theme.SelectionBg {
		t.Errorf("Cursor row background = %v, want %v", bg, theme.SelectionBg)
	}

	_, _, style, _ = screen.GetContent(0, 3)
	_, bg, _ = style.Decompose()
	if bg == theme.SelectionBg {
		t.Error("Non-cursor row should not use the selection background")
	}
}
