// Package store holds the dashboard's single in-memory state tree. State is
// updated exclusively through Dispatch, which runs the pure reducer
// synchronously to completion for each action; that serializes every
// mutation without any further locking in callers.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Subscriber receives the new state snapshot after each dispatch.
type Subscriber func(State)

// Store owns the state tree. The zero value is not usable; construct with
// New.
type Store struct {
	mu          sync.Mutex
	state       State
	subscribers map[int]Subscriber
	order       []int
	nextSubID   int
	log         *logrus.Logger
}

// New returns an empty store.
func New() *Store {
	return NewWithState(State{})
}

// NewWithState returns a store seeded with an initial state.
func NewWithState(initial State) *Store {
	return &Store{
		state:       initial,
		subscribers: make(map[int]Subscriber),
	}
}

// SetLogger enables structured dispatch logging. Pass nil to disable.
func (s *Store) SetLogger(log *logrus.Logger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log = log
}

// State returns the current state snapshot. The snapshot's slices must not
// be mutated by callers; the reducer never writes through them either.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies the action and notifies subscribers in registration
// order. Notification happens outside the lock with the post-dispatch
// snapshot, so subscribers may themselves read state (but dispatching from
// inside a subscriber is the caller's own deadlock to avoid).
func (s *Store) Dispatch(a Action) {
	start := time.Now()
	dispatchID := uuid.NewString()

	s.mu.Lock()
	s.state = Reduce(s.state, a)
	next := s.state
	subs := make([]Subscriber, 0, len(s.order))
	for _, id := range s.order {
		subs = append(subs, s.subscribers[id])
	}
	log := s.log
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}

	if log != nil {
		log.WithFields(logrus.Fields{
			"dispatch_id": dispatchID,
			"action":      a.Name(),
			"latency_us":  time.Since(start).Microseconds(),
			"subscribers": len(subs),
		}).Info("Action dispatched")
	}
}

// Subscribe registers fn to be called after every dispatch and returns an
// unsubscribe function. Unsubscribing twice is a no-op.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.order = append(s.order, id)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.subscribers[id]; !ok {
			return
		}
		delete(s.subscribers, id)
		for i, other := range s.order {
			if other == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}
