package hostfuncs

import (
	"sync"

	"github.com/scriptglue/scriptglue-sdk/bridge"
)

// handleEntry pairs a wrapper with the number of wire references the
// guest holds on this handle.
type handleEntry struct {
	wrapper *bridge.Wrapper
	count   int
}

// HandleStore issues the numeric handles object references travel as on
// the wire. One store serves one instance; handles from different
// instances are not interchangeable. Each issued handle owns one wrapper
// reference; retain and release adjust both the per-handle count and the
// wrapper's own count so in-process and wire accounting stay aligned.
type HandleStore struct {
	mu      sync.Mutex
	entries map[uint64]*handleEntry
	next    uint64
}

// NewHandleStore creates an empty store. Handle zero is never issued; it
// is the wire's null reference.
func NewHandleStore() *HandleStore {
	return &HandleStore{
		entries: make(map[uint64]*handleEntry),
		next:    1,
	}
}

// Put issues a fresh handle owning the caller's wrapper reference.
func (s *HandleStore) Put(w *bridge.Wrapper) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := s.next
	s.next++
	s.entries[h] = &handleEntry{wrapper: w, count: 1}
	return h
}

// Get resolves a handle to its wrapper.
func (s *HandleStore) Get(h uint64) (*bridge.Wrapper, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[h]
	if !ok {
		return nil, false
	}
	return e.wrapper, true
}

// Retain adds a wire reference to a handle.
func (s *HandleStore) Retain(h uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[h]
	if !ok {
		return false
	}
	e.count++
	e.wrapper.Retain()
	return true
}

// Release drops a wire reference. The handle disappears when its last
// reference goes; the wrapper is released either way.
func (s *HandleStore) Release(h uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[h]
	if !ok {
		return false
	}
	e.count--
	if e.count <= 0 {
		delete(s.entries, h)
	}
	e.wrapper.Release()
	return true
}

// Len reports how many handles are live.
func (s *HandleStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// DropAll forgets every handle and releases the wrapper references they
// owned. Called at instance teardown so a misbehaving guest cannot leak
// wrappers past Close.
func (s *HandleStore) DropAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for h, e := range s.entries {
		for n := 0; n < e.count; n++ {
			e.wrapper.Release()
		}
		delete(s.entries, h)
	}
}
