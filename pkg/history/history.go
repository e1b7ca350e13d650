// Package history keeps the stack of visited pages. The bottom entry is the
// current tab and is never removed; the top entry is the active page.
package history

// History is an oldest-first stack of page ids that is never empty.
type History struct {
	items []string
}

// New seeds a history with its root entry.
func New(root string) *History {
	return &History{items: []string{root}}
}

// Push appends id unless it is already the top entry. It reports whether the
// stack grew.
func (h *History) Push(id string) bool {
	if id == "" || h.Top() == id {
		return false
	}
	h.items = append(h.items, id)
	return true
}

// ReplaceTop swaps the top entry for id, keeping the length unchanged.
func (h *History) ReplaceTop(id string) {
	if id == "" {
		return
	}
	h.items[len(h.items)-1] = id
}

// Pop removes and returns the top entry. The root entry is never popped.
func (h *History) Pop() (string, bool) {
	if len(h.items) <= 1 {
		return "", false
	}
	last := h.items[len(h.items)-1]
	h.items = h.items[:len(h.items)-1]
	return last, true
}

// ResetTo clears the stack and seeds it with id.
func (h *History) ResetTo(id string) {
	if id == "" {
		return
	}
	h.items = append(h.items[:0], id)
}

// Top returns the active entry.
func (h *History) Top() string {
	return h.items[len(h.items)-1]
}

// Root returns the bottom entry.
func (h *History) Root() string {
	return h.items[0]
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.items)
}

// Contains reports whether id is anywhere on the stack.
func (h *History) Contains(id string) bool {
	for _, item := range h.items {
		if item == id {
			return true
		}
	}
	return false
}

// Entries returns a copy of the stack, oldest first.
func (h *History) Entries() []string {
	return append([]string(nil), h.items...)
}
