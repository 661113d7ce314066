package onboarding

import "sync"

// Store keeps one in-flight application per browser session. State is
// deliberately transient: a restart or dropped session abandons the
// application, matching the no-resume lifecycle of the form.
type Store struct {
	mu   sync.Mutex
	apps map[string]*Application
}

func NewStore() *Store {
	return &Store{apps: map[string]*Application{}}
}

// Get returns the session's application, creating a fresh one at Step1
// if none exists yet.
func (s *Store) Get(sessionID string) *Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.apps[sessionID]
	if !ok {
		app = New()
		s.apps[sessionID] = app
	}
	return app
}

// Drop forgets the session's application.
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.apps, sessionID)
}
