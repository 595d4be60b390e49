package router

// HistoryEntry records one committed navigation.
type HistoryEntry struct {
	Requested string // Path passed to Navigate
	Path      string // Terminal path after redirects
}

// History is an in-memory navigation history with back/forward support.
// It holds entries for the current session only and is never persisted.
type History struct {
	entries []HistoryEntry
	cursor  int // index of the current entry, -1 when empty
}

// NewHistory creates a new empty history.
func NewHistory() *History {
	return &History{
		entries: make([]HistoryEntry, 0),
		cursor:  -1,
	}
}

// Push records a new current entry, discarding any forward entries.
func (h *History) Push(entry HistoryEntry) {
	h.entries = append(h.entries[:h.cursor+1], entry)
	h.cursor = len(h.entries) - 1
}

// Replace overwrites the current entry, or pushes when the history is empty.
// Forward entries are kept.
func (h *History) Replace(entry HistoryEntry) {
	if h.cursor < 0 {
		h.Push(entry)
		return
	}
	h.entries[h.cursor] = entry
}

// Current returns the current entry.
// Returns nil if the history is empty.
func (h *History) Current() *HistoryEntry {
	if h.cursor < 0 {
		return nil
	}
	entry := h.entries[h.cursor]
	return &entry
}

// Peek returns the entry delta steps away from the current one without
// moving. Returns nil if out of range.
func (h *History) Peek(delta int) *HistoryEntry {
	i := h.cursor + delta
	if h.cursor < 0 || i < 0 || i >= len(h.entries) {
		return nil
	}
	entry := h.entries[i]
	return &entry
}

// Move shifts the cursor by delta. It reports false and leaves the cursor
// unchanged if the target is out of range.
func (h *History) Move(delta int) bool {
	if h.Peek(delta) == nil {
		return false
	}
	h.cursor += delta
	return true
}

// CanGoBack returns true if there is an entry before the current one.
func (h *History) CanGoBack() bool {
	return h.Peek(-1) != nil
}

// CanGoForward returns true if there is an entry after the current one.
func (h *History) CanGoForward() bool {
	return h.Peek(1) != nil
}

// IsEmpty returns true if the history has no entries.
func (h *History) IsEmpty() bool {
	return len(h.entries) == 0
}

// Len returns the number of entries in the history.
func (h *History) Len() int {
	return len(h.entries)
}

// Cursor returns the index of the current entry, or -1 when empty.
func (h *History) Cursor() int {
	return h.cursor
}

// Entries returns a copy of all entries, oldest first.
func (h *History) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Clear removes all entries from the history.
func (h *History) Clear() {
	h.entries = h.entries[:0]
	h.cursor = -1
}
