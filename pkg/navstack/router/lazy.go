package router

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/atomic"
	"golang.org/x/sync/singleflight"
)

var errNilView = errors.New("loader returned a nil view")

// lazyView memoizes a Loader. Concurrent callers share one in-flight load;
// once a load succeeds its view is returned forever after.
type lazyView struct {
	load  Loader
	group singleflight.Group

	mu   sync.RWMutex
	view View

	calls   atomic.Int64
	loading atomic.Bool
}

// LoadState describes where a route's view is in its lifecycle.
type LoadState int

const (
	LoadStatePending   LoadState = iota // Lazy view never loaded, or last load failed
	LoadStateResolving                  // Lazy view load in flight
	LoadStateResolved                   // View available
)

func (s LoadState) String() string {
	switch s {
	case LoadStatePending:
		return "pending"
	case LoadStateResolving:
		return "resolving"
	case LoadStateResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

func (l *lazyView) state() LoadState {
	switch {
	case l.cached() != nil:
		return LoadStateResolved
	case l.loading.Load():
		return LoadStateResolving
	default:
		return LoadStatePending
	}
}

func newLazyView(load Loader) *lazyView {
	return &lazyView{load: load}
}

func (l *lazyView) cached() View {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.view
}

// get returns the cached view or waits on the shared load.
// The load runs detached from the caller's cancellation so that a waiter
// giving up does not fail the load for everyone else.
func (l *lazyView) get(ctx context.Context) (View, error) {
	if v := l.cached(); v != nil {
		return v, nil
	}

	ch := l.group.DoChan("load", func() (_ any, err error) {
		if v := l.cached(); v != nil {
			return v, nil
		}

		l.calls.Inc()
		l.loading.Store(true)
		defer l.loading.Store(false)

		// singleflight re-panics on its own goroutine, which nothing can recover.
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("loader panicked: %v", r)
			}
		}()

		v, err := l.load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, errNilView
		}

		l.mu.Lock()
		l.view = v
		l.mu.Unlock()
		return v, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(View), nil
	}
}
