package checkout

import (
	"sync"
	"sync/atomic"
)

type RequestState int32

const (
	RequestStateIdle RequestState = iota
	RequestStateInFlight
	RequestStateDone
)

// requestGuard is the explicit "request attempted" flag of each network
// call: one instance of a given call in flight per key, no general
// mutex around the work itself.
type requestGuard struct {
	state atomic.Int32
}

func (g *requestGuard) begin() bool {
	return g.state.CompareAndSwap(int32(RequestStateIdle), int32(RequestStateInFlight))
}

func (g *requestGuard) finish(done bool) {
	if done {
		g.state.Store(int32(RequestStateDone))
		return
	}
	g.state.Store(int32(RequestStateIdle))
}

func (g *requestGuard) current() RequestState {
	return RequestState(g.state.Load())
}

// guardSet keeps one requestGuard per key (checkout session or order
// id) for as long as the key has a request in flight or done. Guards
// back at idle are evicted, so the set stays bounded by concurrent
// work, not by every key ever seen. Acquisition goes through the set
// rather than a handed-out pointer: a caller holding a guard across
// its eviction could otherwise race a fresh guard for the same key.
type guardSet struct {
	mu     sync.Mutex
	guards map[string]*requestGuard
}

func (s *guardSet) begin(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.guards[key]
	if !ok {
		if s.guards == nil {
			s.guards = make(map[string]*requestGuard)
		}
		g = &requestGuard{}
		s.guards[key] = g
	}

	return g.begin()
}

func (s *guardSet) finish(key string, done bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.guards[key]
	if !ok {
		return
	}

	g.finish(done)
	if g.current() == RequestStateIdle {
		delete(s.guards, key)
	}
}

func (s *guardSet) current(key string) RequestState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if g, ok := s.guards[key]; ok {
		return g.current()
	}
	return RequestStateIdle
}
