// SPDX-License-Identifier: Apache-2.0

package auth

import (
	"sync"
	"time"
)

// attemptState tracks cumulative login failures for one scope.
type attemptState struct {
	count       int
	lastAttempt time.Time
}

// AttemptStore keeps failed-login counters: one global counter and one per
// client address. Counters are zeroed only by a recorded success; the
// expiry of a lockout window lifts the block but deliberately keeps the
// count, so the next failure re-triggers the lockout immediately.
//
// The store is safe for concurrent use and lives for the process lifetime.
type AttemptStore struct {
	mu     sync.Mutex
	global attemptState
	byAddr map[string]*attemptState

	now func() time.Time
}

// NewAttemptStore constructs an empty [AttemptStore].
func NewAttemptStore() *AttemptStore {
	return &AttemptStore{
		byAddr: make(map[string]*attemptState),
		now:    time.Now,
	}
}

// RecordFailure increments both the global counter and the counter of addr,
// stamping both with the current time.
func (s *AttemptStore) RecordFailure(addr string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	s.global.count++
	s.global.lastAttempt = now

	state, ok := s.byAddr[addr]
	if !ok {
		state = &attemptState{}
		s.byAddr[addr] = state
	}
	state.count++
	state.lastAttempt = now
}

// RecordSuccess zeroes the global counter and the counter of addr. Counters
// of other addresses are untouched: a successful login from one client
// never forgives another client's failures.
func (s *AttemptStore) RecordSuccess(addr string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.global = attemptState{}
	delete(s.byAddr, addr)
}

// Global returns the global failure count and the time of the last failure.
func (s *AttemptStore) Global() (int, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.global.count, s.global.lastAttempt
}

// Address returns the failure count and last-failure time for addr.
func (s *AttemptStore) Address(addr string) (int, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.byAddr[addr]
	if !ok {
		return 0, time.Time{}
	}
	return state.count, state.lastAttempt
}
