package domain

// DefaultView is the first entry of every navigation history.
const DefaultView = "dashboard"

// History is the ordered stack of visited view identifiers. The last element
// is the current view. A History is never empty once constructed.
type History struct {
	views []string
}

// NewHistory returns a history seeded with the given initial view, or
// DefaultView when initial is empty.
func NewHistory(initial string) *History {
	if initial == "" {
		initial = DefaultView
	}
	return &History{views: []string{initial}}
}

// Push appends view to the history. Pushing the current view is a no-op.
func (h *History) Push(view string) {
	if view == "" || view == h.Current() {
		return
	}
	h.views = append(h.views, view)
}

// Pop removes the current view and returns the new current view. Popping a
// single-element history is a no-op; ok reports whether anything was removed.
func (h *History) Pop() (view string, ok bool) {
	if len(h.views) <= 1 {
		return h.Current(), false
	}
	h.views = h.views[:len(h.views)-1]
	return h.Current(), true
}

// Current returns the view on top of the stack.
func (h *History) Current() string {
	return h.views[len(h.views)-1]
}

// CanGoBack reports whether Pop would remove an entry.
func (h *History) CanGoBack() bool {
	return len(h.views) > 1
}

// Depth returns the number of entries in the history.
func (h *History) Depth() int {
	return len(h.views)
}

// Views returns a copy of the history, oldest first.
func (h *History) Views() []string {
	out := make([]string, len(h.views))
	copy(out, h.views)
	return out
}
