package router

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/atomic"
)

// Listener is notified after a navigation commits.
// Listeners run in commit order while the navigator is locked, so they must
// not call back into the Navigator synchronously.
type Listener func(res Resolution)

// Navigator drives navigation over a Table and owns the session history.
// Navigations may be issued from any goroutine; a navigation that finishes
// after a newer one has started is discarded.
type Navigator struct {
	table *Table
	token atomic.Uint64

	mu        sync.Mutex
	history   *History
	current   *Resolution
	listeners []Listener
}

// NewNavigator creates a Navigator with an empty history.
func NewNavigator(table *Table) *Navigator {
	return &Navigator{
		table:   table,
		history: NewHistory(),
	}
}

// OnChange registers a listener for committed navigations.
func (n *Navigator) OnChange(fn Listener) *Navigator {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = append(n.listeners, fn)
	return n
}

// Table returns the route table the navigator resolves against.
func (n *Navigator) Table() *Table {
	return n.table
}

// Resolve resolves a path without navigating.
func (n *Navigator) Resolve(ctx context.Context, path string) (*Resolution, error) {
	return n.table.Resolve(ctx, path)
}

// Navigate resolves path and, if no newer navigation has started meanwhile,
// pushes it onto the history and notifies listeners.
func (n *Navigator) Navigate(ctx context.Context, path string) error {
	token := n.token.Inc()

	res, err := n.table.Resolve(ctx, path)
	if err != nil {
		return err
	}

	return n.commit(token, res, func(h *History) {
		h.Push(HistoryEntry{Requested: path, Path: res.Path})
	})
}

// Replace is like Navigate but overwrites the current history entry.
func (n *Navigator) Replace(ctx context.Context, path string) error {
	token := n.token.Inc()

	res, err := n.table.Resolve(ctx, path)
	if err != nil {
		return err
	}

	return n.commit(token, res, func(h *History) {
		h.Replace(HistoryEntry{Requested: path, Path: res.Path})
	})
}

// Back navigates to the previous history entry.
func (n *Navigator) Back(ctx context.Context) error {
	return n.Go(ctx, -1)
}

// Forward navigates to the next history entry.
func (n *Navigator) Forward(ctx context.Context) error {
	return n.Go(ctx, 1)
}

// Go moves delta entries through the history, re-resolving the target entry.
// It returns ErrNoHistory if the target is out of range.
// A move that has nowhere to go is not a navigation and leaves any in-flight
// navigation untouched.
func (n *Navigator) Go(ctx context.Context, delta int) error {
	n.mu.Lock()
	entry := n.history.Peek(delta)
	if entry == nil || delta == 0 {
		n.mu.Unlock()
		return ErrNoHistory
	}
	// Taken under the lock so no commit can move the cursor between the
	// peek and the token.
	token := n.token.Inc()
	n.mu.Unlock()

	res, err := n.table.Resolve(ctx, entry.Path)
	if err != nil {
		return err
	}

	return n.commit(token, res, func(h *History) {
		h.Move(delta)
	})
}

// Current returns the last committed resolution.
func (n *Navigator) Current() (Resolution, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return Resolution{}, false
	}
	return n.current.clone(), true
}

// History returns a snapshot of the history entries and the cursor index.
func (n *Navigator) History() ([]HistoryEntry, int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.history.Entries(), n.history.Cursor()
}

func (n *Navigator) commit(token uint64, res *Resolution, record func(*History)) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.token.Load() != token {
		return fmt.Errorf("%w: %s", ErrSuperseded, res.Requested)
	}

	record(n.history)
	n.current = res

	for _, fn := range n.listeners {
		fn(res.clone())
	}
	return nil
}

func (r *Resolution) clone() Resolution {
	return Resolution{
		Requested: r.Requested,
		Path:      r.Path,
		Redirects: slices.Clone(r.Redirects),
		Chain:     slices.Clone(r.Chain),
		Meta:      r.Meta.Clone(),
	}
}
