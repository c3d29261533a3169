package activity

import (
	"context"
	"log"
	"sync"
	"time"
)

const DefaultTimeout = 30 * time.Minute

// Session is the part of the auth store the watcher needs.
type Session interface {
	IsAuthenticated() bool
	Logout(ctx context.Context)
}

// Watcher logs the session out after a period without activity.
type Watcher struct {
	session Session
	timeout time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func NewWatcher(session Session, timeout time.Duration) *Watcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Watcher{session: session, timeout: timeout}
}

// Start arms the timer if the session is authenticated.
func (w *Watcher) Start() {
	w.Touch()
}

// Touch records activity and restarts the countdown. It does nothing
// while logged out.
func (w *Watcher) Touch() {
	if !w.session.IsAuthenticated() {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.timeout, w.expire)
}

func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

// Running reports whether a countdown is armed.
func (w *Watcher) Running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.timer != nil
}

func (w *Watcher) expire() {
	w.mu.Lock()
	w.timer = nil
	w.mu.Unlock()

	if !w.session.IsAuthenticated() {
		return
	}
	log.Printf("[Activity]: no activity for %s, logging out", w.timeout)
	w.session.Logout(context.Background())
}
