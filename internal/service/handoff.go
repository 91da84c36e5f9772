package service

import "sync"

// Handoff carries a single pending prefill name from the user form to the
// employee form. Last write wins; the slot empties on consumption.
type Handoff struct {
	mu      sync.Mutex
	name    string
	pending bool
}

func NewHandoff() *Handoff {
	return &Handoff{}
}

func (h *Handoff) Put(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.name = name
	h.pending = true
}

// Take returns the pending name and clears the slot.
func (h *Handoff) Take() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.pending {
		return "", false
	}
	name := h.name
	h.name = ""
	h.pending = false
	return name, true
}
