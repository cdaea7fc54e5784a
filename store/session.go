package store

import (
	"log"
	"sync"

	"github.com/Vaibhav01-bit/WordWave/kvstore"
	"github.com/Vaibhav01-bit/WordWave/model"
)

// SessionStore records the authentication flag and the current user
// identity. Credential verification happens in an external identity
// collaborator before Login is called; this store only records the result.
// Invariant: a user is present iff the session is authenticated.
type SessionStore struct {
	mu sync.RWMutex
	kv kvstore.KV

	authenticated bool
	user          *model.User
}

func NewSessionStore(kv kvstore.KV) *SessionStore {
	return &SessionStore{kv: kv}
}

// Initialize loads the persisted session. Absent or partial state loads as
// unauthenticated.
func (s *SessionStore) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var authenticated bool
	var user model.User
	if s.kv.Load(kvstore.AuthKey, &authenticated) && s.kv.Load(kvstore.UserKey, &user) && authenticated {
		s.authenticated = true
		s.user = &user
		log.Printf("[INFO] Restored session for %s", user.Username)
		return
	}

	s.authenticated = false
	s.user = nil
}

// Login records a verified identity and marks the session authenticated.
func (s *SessionStore) Login(user model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.authenticated = true
	s.user = &user
	s.kv.Save(kvstore.AuthKey, true)
	s.kv.Save(kvstore.UserKey, user)
	log.Printf("[INFO] User %s logged in", user.Username)
}

// Logout clears the session and both persisted keys, returning the login
// redirect target for the presentation layer.
func (s *SessionStore) Logout() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.authenticated = false
	s.user = nil
	s.kv.Clear(kvstore.AuthKey)
	s.kv.Clear(kvstore.UserKey)
	log.Printf("[INFO] User logged out")

	return "/login"
}

// IsAuthenticated reports the auth flag.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// User returns the current identity, if any.
func (s *SessionStore) User() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}
