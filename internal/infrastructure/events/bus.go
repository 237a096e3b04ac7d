// Package events implements the process-wide "estimates changed" signal.
package events

import (
	"sync"
	"sync/atomic"
)

// EstimatesChanged is the event name used on the wire (SSE) for bus firings.
const EstimatesChanged = "estimates-changed"

// Bus fans a payload-less change signal out to subscribers. Subscribers are
// expected to re-read whatever snapshot they display.
//
// Two sources feed the same dispatch point: Notify for mutations committed by
// this process and NotifyExternal for changes observed in the underlying
// store that were made by another process.
type Bus struct {
	mu       sync.RWMutex
	nextID   uint64
	subs     map[uint64]func()
	revision atomic.Uint64
	external atomic.Uint64
}

func NewBus() *Bus {
	return &Bus{subs: make(map[uint64]func())}
}

// Subscribe registers fn and returns a function that removes it. Calling the
// returned function more than once is safe.
func (b *Bus) Subscribe(fn func()) (unsubscribe func()) {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs[id] = fn
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
		})
	}
}

func (b *Bus) Notify() {
	b.dispatch()
}

func (b *Bus) NotifyExternal() {
	b.external.Add(1)
	b.dispatch()
}

// Revision increases by one on every dispatch, local or external.
func (b *Bus) Revision() uint64 {
	return b.revision.Load()
}

// ExternalRevision counts dispatches that came from NotifyExternal.
func (b *Bus) ExternalRevision() uint64 {
	return b.external.Load()
}

func (b *Bus) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

func (b *Bus) dispatch() {
	b.revision.Add(1)

	b.mu.RLock()
	fns := make([]func(), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.RUnlock()

	for _, fn := range fns {
		fn()
	}
}
