package session

import (
	"context"
	"sync"

	"github.com/kanisa-app/kanisa/core/user"
)

// Store owns the current identity for an embedding front-end: either
// Anonymous (no current user) or Authenticated. All transitions go through
// the store under a single-writer lock; rapid repeated calls resolve to
// whichever assignment lands last.
type Store struct {
	auth *Authenticator
	svc  *user.Service

	mu      sync.RWMutex
	current *user.User
	subs    map[int]func(*user.User)
	nextSub int
}

func NewStore(auth *Authenticator, svc *user.Service) *Store {
	return &Store{
		auth: auth,
		svc:  svc,
		subs: make(map[int]func(*user.User)),
	}
}

// Current returns the authenticated identity, or false when Anonymous.
func (s *Store) Current() (user.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return user.User{}, false
	}
	return *s.current, true
}

// Subscribe registers fn to be called on every session transition with the
// new identity (nil on session end). It returns an unsubscribe func.
func (s *Store) Subscribe(fn func(*user.User)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Authenticate resolves the sign-in policy and, on success, transitions
// the store to Authenticated with the resolved identity.
func (s *Store) Authenticate(ctx context.Context, email, password string) (user.User, error) {
	usr, err := s.auth.Authenticate(ctx, email, password)
	if err != nil {
		return user.User{}, err
	}
	s.set(&usr)
	return usr, nil
}

// Register creates a new account and transitions to Authenticated with it.
func (s *Store) Register(ctx context.Context, name, email, password string) (user.User, error) {
	usr, err := s.auth.Register(ctx, name, email, password)
	if err != nil {
		return user.User{}, err
	}
	s.set(&usr)
	return usr, nil
}

// EndSession unconditionally transitions to Anonymous.
func (s *Store) EndSession() {
	s.set(nil)
}

// Patch merges the set fields of pu into the current identity and persists
// the result. It is a no-op returning nil when Anonymous.
func (s *Store) Patch(pu user.PatchUser) (*user.User, error) {
	s.mu.RLock()
	cur := s.current
	s.mu.RUnlock()
	if cur == nil {
		return nil, nil
	}

	pu.Clean()
	usr, err := s.svc.Patch(cur.ID, pu)
	if err != nil {
		return nil, err
	}
	s.set(&usr)
	return &usr, nil
}

func (s *Store) set(usr *user.User) {
	s.mu.Lock()
	s.current = usr
	fns := make([]func(*user.User), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(usr)
	}
}
