// Package repetition tracks the positions a game has passed through and
// flags moves that would undo the previous move or recreate a position a
// third time.
package repetition

// History is an append-only record of canonical board strings, in play
// order, with an occurrence count per position.
type History struct {
	// positions holds every recorded position in order
	positions []string
	// counts maps a canonical position to how often it has been recorded
	counts map[string]int
}

// NewHistory creates a history seeded with the given positions.
func NewHistory(initial ...string) *History {
	h := &History{counts: make(map[string]int)}
	for _, p := range initial {
		h.Append(p)
	}
	return h
}

// Append records a position.
func (h *History) Append(canonical string) {
	if h.counts == nil {
		h.counts = make(map[string]int)
	}
	h.positions = append(h.positions, canonical)
	h.counts[canonical]++
}

// Count returns how many times the position has been recorded.
func (h *History) Count(canonical string) int {
	if h == nil {
		return 0
	}
	return h.counts[canonical]
}

// Len returns the number of recorded positions.
func (h *History) Len() int {
	if h == nil {
		return 0
	}
	return len(h.positions)
}

// Positions returns a copy of the recorded positions in order.
func (h *History) Positions() []string {
	if h == nil {
		return nil
	}
	out := make([]string, len(h.positions))
	copy(out, h.positions)
	return out
}

// MaxCount returns the highest occurrence count of any position.
func (h *History) MaxCount() int {
	if h == nil {
		return 0
	}
	highest := 0
	for _, n := range h.counts {
		if n > highest {
			highest = n
		}
	}
	return highest
}

// Clone returns an independent copy of the history.
func (h *History) Clone() *History {
	if h == nil {
		return NewHistory()
	}
	return NewHistory(h.positions...)
}

// Reset clears the history.
func (h *History) Reset() {
	h.positions = nil
	h.counts = make(map[string]int)
}
