package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestReadDirListsChildrenWithMetadata(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "a.txt"), []byte("hello"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if err := os.Mkdir(filepath.Join(tmpDir, "sub"), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	entries, err := ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	byName := map[string]Entry{}
	for _, e := range entries {
		byName[e.Name] = e
	}

	file, ok := byName["a.txt"]
	if !ok {
		t.Fatal("a.txt missing from listing")
	}
	if !file.MetaValid {
		t.Fatal("a.txt should have valid metadata")
	}
	if file.Size != 5 {
		t.Fatalf("expected size 5, got %d", file.Size)
	}
	if !file.IsRegular() || file.IsDir() {
		t.Fatalf("a.txt misclassified: mode %v", file.Mode)
	}
	if file.FullPath != filepath.Join(tmpDir, "a.txt") {
		t.Fatalf("unexpected full path %q", file.FullPath)
	}

	dir, ok := byName["sub"]
	if !ok {
		t.Fatal("sub missing from listing")
	}
	if !dir.IsDir() {
		t.Fatal("sub should be a directory")
	}
}

func TestReadDirUnreadableDirectory(t *testing.T) {
	_, err := ReadDir(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}

// Symlinks must be described with lstat semantics: the entry is a link, not
// whatever it points at, and the target is resolved for display.
func TestReadDirSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}

	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "target")
	if err := os.Mkdir(target, 0755); err != nil {
		t.Fatalf("failed to create target: %v", err)
	}
	link := filepath.Join(tmpDir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("failed to create symlink: %v", err)
	}

	entries, err := ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}

	var linkEntry *Entry
	for i := range entries {
		if entries[i].Name == "link" {
			linkEntry = &entries[i]
		}
	}
	if linkEntry == nil {
		t.Fatal("link missing from listing")
	}
	if !linkEntry.IsSymlink() {
		t.Fatal("link should be a symlink")
	}
	if linkEntry.IsDir() {
		t.Fatal("symlink to directory must not count as a directory")
	}
	if linkEntry.LinkTarget != target {
		t.Fatalf("expected target %q, got %q", target, linkEntry.LinkTarget)
	}
}

func TestIsHidden(t *testing.T) {
	if !(Entry{Name: ".hidden"}).IsHidden() {
		t.Fatal(".hidden should be hidden")
	}
	if (Entry{Name: "visible"}).IsHidden() {
		t.Fatal("visible should not be hidden")
	}
}
