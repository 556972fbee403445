// Package session persists the auth token and user profile between runs
// (the terminal analog of the browser's local storage) and gates access
// to authenticated views.
package session

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/emojiboard/client/pkg/structs"
)

type Session struct {
	Token string       `json:"token"`
	User  structs.User `json:"user"`
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Store owns the session lifecycle: Init on login, Clear on logout.
// Everything that needs the token (the HTTP client, the gate) reads it
// from here instead of doing ambient lookups.
type Store struct {
	path string

	mu  sync.Mutex
	cur Session
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted session. A missing or malformed file is not an
// error; the session is simply anonymous.
func (s *Store) Load() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		s.cur = Session{}
		return s.cur
	}
	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		log.Println("ignoring malformed session file:", err)
		s.cur = Session{}
		return s.cur
	}
	s.cur = sess
	return s.cur
}

func (s *Store) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

// Token satisfies the HTTP client's token source.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur.Token
}

// Init installs a fresh session after a successful login or register and
// persists it.
func (s *Store) Init(sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = sess

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

// Clear tears the session down. The in-memory session is dropped even if
// removing the file fails.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = Session{}

	err := os.Remove(s.path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// Gate is the boundary check in front of authenticated views: checked
// before each protected render, not a persistent subscription.
type Gate struct {
	store *Store
}

func NewGate(store *Store) Gate {
	return Gate{store: store}
}

// Check returns the current session and whether the protected view may
// render. When false the caller must show the login entry point and
// render nothing else.
func (g Gate) Check() (Session, bool) {
	sess := g.store.Current()
	return sess, sess.Authenticated()
}
