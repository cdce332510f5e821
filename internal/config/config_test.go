package config

import (
	"errors"
	"testing"
)

func TestValidateRejectsConflictingFilters(t *testing.T) {
	s := Settings{DirsOnly: true, FilesOnly: true}
	if err := s.Validate(); !errors.Is(err, ErrConflictingFilters) {
		t.Fatalf("expected ErrConflictingFilters, got %v", err)
	}

	s = Settings{DirsOnly: true}
	if err := s.Validate(); err != nil {
		t.Fatalf("dirs-only alone should validate, got %v", err)
	}
}

// The exclusivity invariant must hold after any toggle sequence, not just a
// single toggle.
func TestToggleSequencesNeverEnableBothFilters(t *testing.T) {
	toggles := []func(*Settings){
		(*Settings).ToggleDirsOnly,
		(*Settings).ToggleFilesOnly,
		(*Settings).ToggleDirsOnly,
		(*Settings).ToggleDirsOnly,
		(*Settings).ToggleFilesOnly,
		(*Settings).ToggleFilesOnly,
		(*Settings).ToggleDirsOnly,
	}

	var s Settings
	for i, toggle := range toggles {
		toggle(&s)
		if s.DirsOnly && s.FilesOnly {
			t.Fatalf("both filters active after toggle %d", i)
		}
	}
}

func TestToggleFilesOnlyClearsDirsOnly(t *testing.T) {
	s := Settings{DirsOnly: true}
	s.ToggleFilesOnly()
	if s.DirsOnly || !s.FilesOnly {
		t.Fatalf("expected files-only to replace dirs-only, got dirs=%v files=%v", s.DirsOnly, s.FilesOnly)
	}
}

func TestSortModeCycle(t *testing.T) {
	m := SortName
	want := []SortMode{SortSize, SortTime, SortName, SortSize}
	for i, w := range want {
		m = m.Next()
		if m != w {
			t.Fatalf("cycle step %d: expected %v, got %v", i, w, m)
		}
	}
}

func TestFilterLabel(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		expect   string
	}{
		{name: "no filter", settings: Settings{}, expect: "All"},
		{name: "dirs only", settings: Settings{DirsOnly: true}, expect: "Dirs"},
		{name: "files only", settings: Settings{FilesOnly: true}, expect: "Files"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.settings.FilterLabel(); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}
