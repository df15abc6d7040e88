package quiz

import "sync"

// AttemptStore keeps live attempts addressable by id so a stateless
// transport can drive them. Submitted or abandoned attempts are removed.
type AttemptStore struct {
	mu       sync.RWMutex
	attempts map[string]*Attempt
}

func NewAttemptStore() *AttemptStore {
	return &AttemptStore{
		attempts: make(map[string]*Attempt),
	}
}

func (s *AttemptStore) Start(q Quiz) *Attempt {
	att := StartAttempt(q)
	s.mu.Lock()
	s.attempts[att.ID()] = att
	s.mu.Unlock()
	return att
}

func (s *AttemptStore) Get(id string) (*Attempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	att, ok := s.attempts[id]
	if !ok {
		return nil, ErrAttemptNotFound
	}
	return att, nil
}

func (s *AttemptStore) Remove(id string) {
	s.mu.Lock()
	delete(s.attempts, id)
	s.mu.Unlock()
}

func (s *AttemptStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.attempts)
}
