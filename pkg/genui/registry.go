package genui

import "sync"

// Registry maps stream identifiers to their accumulating state for one
// user session. It is storage only: all lifecycle invariants live in
// Apply. The RWMutex spans whole transitions and projections, not just
// the map, so the render path can read snapshots while the session's
// single writer applies events: mutations go through Mutate or Sweep,
// reads through View.
type Registry struct {
	streams map[string]*StreamState
	mu      sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		streams: make(map[string]*StreamState),
	}
}

// Get returns the raw stream state. The pointer escapes the lock, so
// callers that share the registry across goroutines must use View or
// Mutate instead; Get exists for single-goroutine access and tests.
func (r *Registry) Get(streamID string) (*StreamState, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	state, exists := r.streams[streamID]
	return state, exists
}

func (r *Registry) Set(streamID string, state *StreamState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.streams[streamID] = state
}

func (r *Registry) Delete(streamID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.streams, streamID)
}

// Mutate runs fn against the stream's state under the write lock. It
// returns false, without calling fn, when the stream does not exist.
func (r *Registry) Mutate(streamID string, fn func(*StreamState)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	state, exists := r.streams[streamID]
	if !exists {
		return false
	}
	fn(state)
	return true
}

// View runs fn against the stream's state under the read lock. fn must
// not retain the state or anything mutable reachable from it.
func (r *Registry) View(streamID string, fn func(*StreamState)) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	state, exists := r.streams[streamID]
	if !exists {
		return false
	}
	fn(state)
	return true
}

// Sweep removes every entry fn selects, all under one write lock, and
// returns the removed ids.
func (r *Registry) Sweep(fn func(*StreamState) bool) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed []string
	for id, state := range r.streams {
		if fn(state) {
			delete(r.streams, id)
			removed = append(removed, id)
		}
	}
	return removed
}

// Entries returns the current stream ids. Order is unspecified.
func (r *Registry) Entries() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.streams))
	for id := range r.streams {
		ids = append(ids, id)
	}
	return ids
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.streams)
}
