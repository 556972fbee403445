package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/emojiboard/client/pkg/structs"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "session.json"))
}

func TestInitLoadRoundTrip(t *testing.T) {
	store := tempStore(t)
	sess := Session{
		Token: "tok123",
		User:  structs.User{Id: "u1", Username: "nia"},
	}
	if err := store.Init(sess); err != nil {
		t.Fatalf("init: %v", err)
	}

	reloaded := NewStore(store.path)
	got := reloaded.Load()
	if got.Token != "tok123" || got.User.Id != "u1" || got.User.Username != "nia" {
		t.Fatalf("loaded session = %+v", got)
	}
	if !got.Authenticated() {
		t.Fatal("round-tripped session should be authenticated")
	}
}

func TestLoadMissingFileIsAnonymous(t *testing.T) {
	store := tempStore(t)
	if got := store.Load(); got.Authenticated() {
		t.Fatalf("missing file should read as anonymous, got %+v", got)
	}
}

func TestLoadMalformedFileIsAnonymous(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte("undefined"), 0o600); err != nil {
		t.Fatal(err)
	}

	store := NewStore(path)
	if got := store.Load(); got.Authenticated() {
		t.Fatalf("malformed file should read as anonymous, got %+v", got)
	}
}

func TestClearRemovesFile(t *testing.T) {
	store := tempStore(t)
	if err := store.Init(Session{Token: "tok"}); err != nil {
		t.Fatal(err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := os.Stat(store.path); !os.IsNotExist(err) {
		t.Fatal("session file should be gone after clear")
	}
	if store.Current().Authenticated() {
		t.Fatal("session should be anonymous after clear")
	}
	// Clearing an already-clear store is fine.
	if err := store.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestGate(t *testing.T) {
	store := tempStore(t)
	gate := NewGate(store)

	if _, ok := gate.Check(); ok {
		t.Fatal("gate must refuse with no stored token")
	}

	if err := store.Init(Session{Token: "tok", User: structs.User{Id: "u1"}}); err != nil {
		t.Fatal(err)
	}
	sess, ok := gate.Check()
	if !ok || sess.User.Id != "u1" {
		t.Fatalf("gate should pass with a token, got %+v ok=%v", sess, ok)
	}
}
