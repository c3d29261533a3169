package toast

import (
	"log"
	"sync"
	"time"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

const (
	SuccessDuration = 4 * time.Second
	ErrorDuration   = 6 * time.Second
)

type Toast struct {
	ID      int64
	Message string
	Kind    Kind
}

// Event is sent to subscribers when a toast is shown or dismissed.
type Event struct {
	Toast     Toast
	Dismissed bool
}

// Notifier keeps the visible toasts and dismisses each one when its
// timer fires.
type Notifier struct {
	mu          sync.Mutex
	nextID      int64
	toasts      []Toast
	timers      map[int64]*time.Timer
	subscribers map[chan Event]struct{}
}

func New() *Notifier {
	return &Notifier{
		timers:      make(map[int64]*time.Timer),
		subscribers: make(map[chan Event]struct{}),
	}
}

// Show adds a toast that dismisses itself after d.
func (n *Notifier) Show(message string, kind Kind, d time.Duration) int64 {
	n.mu.Lock()
	n.nextID++
	t := Toast{ID: n.nextID, Message: message, Kind: kind}
	n.toasts = append(n.toasts, t)
	n.timers[t.ID] = time.AfterFunc(d, func() { n.Dismiss(t.ID) })
	n.broadcast(Event{Toast: t})
	n.mu.Unlock()

	return t.ID
}

func (n *Notifier) Success(message string) int64 {
	return n.Show(message, KindSuccess, SuccessDuration)
}

func (n *Notifier) Error(message string) int64 {
	return n.Show(message, KindError, ErrorDuration)
}

func (n *Notifier) Dismiss(id int64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if timer, ok := n.timers[id]; ok {
		timer.Stop()
		delete(n.timers, id)
	}
	for i, t := range n.toasts {
		if t.ID == id {
			n.toasts = append(n.toasts[:i:i], n.toasts[i+1:]...)
			n.broadcast(Event{Toast: t, Dismissed: true})
			return
		}
	}
}

// List returns the visible toasts, oldest first.
func (n *Notifier) List() []Toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Toast(nil), n.toasts...)
}

// Clear drops every toast and stops their timers.
func (n *Notifier) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for id, timer := range n.timers {
		timer.Stop()
		delete(n.timers, id)
	}
	n.toasts = nil
}

// Subscribe returns a channel of toast events and a func that ends the
// subscription. Events are dropped for a subscriber whose buffer is full.
func (n *Notifier) Subscribe(buffer int) (<-chan Event, func()) {
	ch := make(chan Event, buffer)

	n.mu.Lock()
	n.subscribers[ch] = struct{}{}
	n.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subscribers, ch)
			n.mu.Unlock()
			close(ch)
		})
	}
}

// broadcast must be called with n.mu held.
func (n *Notifier) broadcast(e Event) {
	for ch := range n.subscribers {
		select {
		case ch <- e:
		default:
			log.Printf("[Toast]: subscriber is full, dropping %q", e.Toast.Message)
		}
	}
}
