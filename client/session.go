package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/hikmacare/hikma-admin/models"
)

// Session is the client-held authentication state. All three fields are
// replaced together, never individually, so readers can never observe a
// token without its matching user.
type Session struct {
	Token        string       `json:"token"`
	RefreshToken string       `json:"refresh_token"`
	User         *models.User `json:"user"`
}

// SessionStore persists the session to a single JSON file and rehydrates it
// on construction, so a restarted process keeps its login until an explicit
// Logout.
type SessionStore struct {
	mu        sync.Mutex
	path      string
	session   Session
	listeners []func()
}

// DefaultSessionPath puts the session file under the user config directory.
func DefaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "hikma-admin", "session.json")
}

// NewSessionStore loads any previously persisted session from path. A
// missing or unreadable file simply yields an anonymous store.
func NewSessionStore(path string) *SessionStore {
	s := &SessionStore{path: path}
	if b, err := os.ReadFile(path); err == nil {
		var sess Session
		if json.Unmarshal(b, &sess) == nil {
			s.session = sess
		}
	}
	return s
}

// SetAuth atomically replaces the whole session and persists it.
func (s *SessionStore) SetAuth(token, refreshToken string, user *models.User) {
	s.mu.Lock()
	s.session = Session{Token: token, RefreshToken: refreshToken, User: user}
	s.persistLocked()
	listeners := append([]func(){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// Logout atomically clears the whole session and persists the empty state.
func (s *SessionStore) Logout() {
	s.SetAuth("", "", nil)
}

// Snapshot returns a consistent copy of the current session.
func (s *SessionStore) Snapshot() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Token returns the current access token, or "" when anonymous.
func (s *SessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Token
}

// Subscribe registers a listener invoked after every session change.
func (s *SessionStore) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *SessionStore) persistLocked() {
	if s.path == "" {
		return
	}
	b, err := json.Marshal(s.session)
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return
	}
	// Write-then-rename keeps the file whole even if we crash mid-write.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return
	}
	os.Rename(tmp, s.path)
}
