package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/tmux-tab-picker/internal/logging/events"
	"github.com/atomicstack/tmux-tab-picker/internal/tmux"
)

// DefaultInterval is the poll period used when none is configured.
const DefaultInterval = 1500 * time.Millisecond

const minFetchGap = 250 * time.Millisecond

// FetchFunc loads the current tab snapshot for a socket.
type FetchFunc func(socketPath string) (tmux.TabSnapshot, error)

// Event conveys a tab snapshot or an error from a backend poll.
type Event struct {
	Snapshot tmux.TabSnapshot
	Err      error
}

// Watcher polls tmux at a fixed interval and publishes events.
type Watcher struct {
	socketPath string
	interval   time.Duration
	fetch      FetchFunc
	// gap is the minimum spacing between fetches; lastFetch is only touched
	// by the poll goroutine.
	gap       time.Duration
	lastFetch time.Time

	ctx    context.Context
	cancel context.CancelFunc

	refresh chan struct{}
	events  chan Event
	wg      sync.WaitGroup
}

// NewWatcher creates a backend watcher that polls tmux every interval.
func NewWatcher(socketPath string, interval time.Duration) *Watcher {
	return NewWatcherWithFetch(socketPath, interval, tmux.FetchTabs)
}

// NewWatcherWithFetch is NewWatcher with a custom fetch function.
func NewWatcherWithFetch(socketPath string, interval time.Duration, fetch FetchFunc) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	gap := minFetchGap
	if interval < gap {
		gap = interval
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		socketPath: socketPath,
		interval:   interval,
		fetch:      fetch,
		gap:        gap,
		ctx:        ctx,
		cancel:     cancel,
		refresh:    make(chan struct{}, 1),
		events:     make(chan Event, 16),
	}

	w.wg.Add(1)
	go w.poll()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of backend events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Refresh asks for a poll ahead of the next tick. Requests made while one is
// already pending are coalesced.
func (w *Watcher) Refresh() {
	select {
	case w.refresh <- struct{}{}:
	default:
	}
}

// Stop cancels the watcher. The poller exits after its current fetch
// completes; use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller goroutine has exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) poll() {
	defer w.wg.Done()

	emit := func() bool {
		if !w.waitForGap() {
			return false
		}
		w.lastFetch = time.Now()
		snapshot, err := w.fetch(w.socketPath)
		events.Backend.Poll(snapshot.Session, len(snapshot.Tabs), err)
		evt := Event{Snapshot: snapshot, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		case <-w.refresh:
			if !emit() {
				return
			}
		}
	}
}

// waitForGap delays a fetch that would follow the previous one too closely.
// It reports false when the watcher is stopped while waiting.
func (w *Watcher) waitForGap() bool {
	if w.ctx.Err() != nil {
		return false
	}
	if w.lastFetch.IsZero() {
		return true
	}
	wait := time.Until(w.lastFetch.Add(w.gap))
	if wait <= 0 {
		return true
	}
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-w.ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
