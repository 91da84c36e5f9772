package service

import (
	"context"
	"sync"
	"time"
)

// Toast is a one-shot notification surfaced to the user after a mutation.
type Toast struct {
	Event   string    `json:"event"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Notifier is an injected capability: forms that notify get a real
// implementation, forms that don't get the no-op one. The user form
// notifies on save/update/delete; the employee form never does.
type Notifier interface {
	Notify(ctx context.Context, event, message string)
}

type NoopNotifier struct{}

func (NoopNotifier) Notify(ctx context.Context, event, message string) {}

// ToastHub fans toasts out to every subscribed listener. Subscribers with a
// full buffer miss the toast rather than block the mutating handler.
type ToastHub struct {
	mu   sync.Mutex
	subs map[chan Toast]struct{}
}

func NewToastHub() *ToastHub {
	return &ToastHub{subs: make(map[chan Toast]struct{})}
}

func (h *ToastHub) Subscribe() (<-chan Toast, func()) {
	ch := make(chan Toast, 8)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		delete(h.subs, ch)
		h.mu.Unlock()
	}
	return ch, cancel
}

func (h *ToastHub) Notify(ctx context.Context, event, message string) {
	toast := Toast{Event: event, Message: message, At: time.Now()}

	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs {
		select {
		case ch <- toast:
		default:
		}
	}
}
