package state

// History is the back-navigation stack: absolute paths of previously visited
// directories, most recent on top. It exists so "back" restores where the
// user actually came from, which is not always the filesystem parent.
type History struct {
	paths []string
}

// Push records a path as the new top. Pushing the path already on top is a
// no-op, so the stack never holds two consecutive equal entries.
func (h *History) Push(path string) {
	if n := len(h.paths); n > 0 && h.paths[n-1] == path {
		return
	}
	h.paths = append(h.paths, path)
}

// Pop removes and returns the most recent path. The second return is false
// when the stack is empty.
func (h *History) Pop() (string, bool) {
	n := len(h.paths)
	if n == 0 {
		return "", false
	}
	path := h.paths[n-1]
	h.paths = h.paths[:n-1]
	return path, true
}

// Len returns the number of stacked paths.
func (h *History) Len() int {
	return len(h.paths)
}
