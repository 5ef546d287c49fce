package nav

// History is an in-memory Router with a back stack.
type History struct {
	items []string
}

// NewHistory returns a history positioned at start.
func NewHistory(start string) *History {
	if start == "" {
		start = "/"
	}
	return &History{items: []string{start}}
}

// Navigate pushes path. Navigating to the current path is a no-op.
func (h *History) Navigate(path string) {
	if path == "" || path == h.Current() {
		return
	}
	h.items = append(h.items, path)
}

// Replace swaps the current path without growing the stack.
func (h *History) Replace(path string) {
	if path == "" {
		return
	}
	h.items[len(h.items)-1] = path
}

// Back pops the current path and reports whether it moved.
func (h *History) Back() bool {
	if len(h.items) <= 1 {
		return false
	}
	h.items = h.items[:len(h.items)-1]
	return true
}

func (h *History) Current() string {
	return h.items[len(h.items)-1]
}

func (h *History) Len() int {
	return len(h.items)
}
