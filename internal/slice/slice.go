// Package slice implements the asynchronous request lifecycle shared by every
// domain store slice: a pending counter behind Loading, a last-error message,
// change listeners and a per-key sequence guard against out-of-order replies.
package slice

import (
	"context"
	"sync"

	"edumart/internal/api"
	"edumart/internal/logger"

	"go.uber.org/zap"
)

// Status is the async resource state every slice carries. Error == "" means
// no error.
type Status struct {
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// Base owns the lock that guards a slice's data together with its Status.
// Slices embed *Base and mutate their data only inside Update or a Run apply.
type Base struct {
	name string

	mu      sync.RWMutex
	pending int
	status  Status
	gen     uint64
	issued  map[string]uint64
	applied map[string]uint64

	listenMu  sync.Mutex
	listeners map[int]func()
	nextID    int
}

func NewBase(name string) *Base {
	return &Base{
		name:      name,
		issued:    make(map[string]uint64),
		applied:   make(map[string]uint64),
		listeners: make(map[int]func()),
	}
}

func (b *Base) Name() string {
	return b.name
}

func (b *Base) Status() Status {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.status
}

// ClearError resets this slice's error only.
func (b *Base) ClearError() {
	b.mu.Lock()
	changed := b.status.Error != ""
	b.status.Error = ""
	b.mu.Unlock()
	if changed {
		b.notify()
	}
}

// Read runs fn under the read lock with the current Status, so a slice can
// copy its data and status as one consistent snapshot.
func (b *Base) Read(fn func(st Status)) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	fn(b.status)
}

// Update runs a synchronous reducer under the write lock and notifies
// listeners.
func (b *Base) Update(fn func()) {
	b.mu.Lock()
	fn()
	b.mu.Unlock()
	b.notify()
}

// Reset runs fn under the write lock, clears the error and discards every
// request still in flight.
func (b *Base) Reset(fn func()) {
	b.mu.Lock()
	b.gen++
	b.status.Error = ""
	if fn != nil {
		fn()
	}
	b.mu.Unlock()
	b.notify()
}

// Subscribe registers fn to be called after every state change. The returned
// func unregisters it.
func (b *Base) Subscribe(fn func()) func() {
	b.listenMu.Lock()
	id := b.nextID
	b.nextID++
	b.listeners[id] = fn
	b.listenMu.Unlock()

	return func() {
		b.listenMu.Lock()
		delete(b.listeners, id)
		b.listenMu.Unlock()
	}
}

func (b *Base) notify() {
	b.listenMu.Lock()
	fns := make([]func(), 0, len(b.listeners))
	for _, fn := range b.listeners {
		fns = append(fns, fn)
	}
	b.listenMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

type ticket struct {
	key string
	seq uint64
	gen uint64
}

func (b *Base) dispatch(key string) ticket {
	b.mu.Lock()
	b.pending++
	b.status.Loading = true
	b.status.Error = ""
	t := ticket{key: key, gen: b.gen}
	if key != "" {
		b.issued[key]++
		t.seq = b.issued[key]
	}
	b.mu.Unlock()
	b.notify()
	return t
}

// resolve finishes a request. It reports false when the result was stale and
// nothing was written.
func (b *Base) resolve(t ticket, err error, apply func()) bool {
	b.mu.Lock()
	b.pending--
	b.status.Loading = b.pending > 0

	fresh := t.gen == b.gen
	if fresh && t.key != "" {
		if t.seq < b.applied[t.key] {
			fresh = false
		} else {
			b.applied[t.key] = t.seq
		}
	}

	if fresh {
		if err != nil {
			b.status.Error = api.ErrorMessage(err)
		} else if apply != nil {
			apply()
		}
	}
	b.mu.Unlock()
	b.notify()
	return fresh
}

// Run drives one request through the lifecycle. key groups requests that
// replace the same piece of state; a reply older than the last applied one
// for its key is dropped. An empty key is never dropped. apply runs under the
// write lock only on success.
func Run[T any](ctx context.Context, b *Base, key string, call func(context.Context) (T, error), apply func(T)) (T, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "slice"),
		zap.String("slice", b.name),
		zap.String("key", key),
	)

	t := b.dispatch(key)
	result, err := call(ctx)

	fresh := b.resolve(t, err, func() {
		if apply != nil {
			apply(result)
		}
	})

	switch {
	case !fresh:
		log.Debug("stale result discarded")
	case err != nil:
		log.Warn("request rejected", zap.String("error", api.ErrorMessage(err)))
	}
	return result, err
}
