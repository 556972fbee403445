package reactions

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/emojiboard/client/pkg/structs"
)

type fakeFeed struct {
	mu   sync.Mutex
	recs map[string][]structs.ReactionRecord
}

func newFakeFeed(postId string, recs []structs.ReactionRecord) *fakeFeed {
	return &fakeFeed{recs: map[string][]structs.ReactionRecord{postId: recs}}
}

func (f *fakeFeed) Reactions(postId string) ([]structs.ReactionRecord, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	recs, ok := f.recs[postId]
	return recs, ok
}

func (f *fakeFeed) SetReactions(postId string, recs []structs.ReactionRecord) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recs[postId] = recs
}

type fakeBackend struct {
	mu      sync.Mutex
	calls   int
	resp    structs.Post
	err     error
	entered chan struct{} // closed-ish signal per call, optional
	release chan struct{} // blocks the call until closed, optional
}

func (b *fakeBackend) ReactToPost(ctx context.Context, postId string, emoji string) (structs.Post, error) {
	b.mu.Lock()
	b.calls++
	b.mu.Unlock()
	if b.entered != nil {
		b.entered <- struct{}{}
	}
	if b.release != nil {
		<-b.release
	}
	return b.resp, b.err
}

func (b *fakeBackend) callCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls
}

func TestToggleAddsThenRemoves(t *testing.T) {
	feed := newFakeFeed("p1", nil)
	backend := &fakeBackend{resp: structs.Post{Id: "p1"}}
	ctl := NewController(backend, feed)

	if err := ctl.Toggle(context.Background(), "p1", "👍", "u1"); err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	recs, _ := feed.Reactions("p1")
	if len(recs) != 1 || recs[0].Emoji != "👍" || len(recs[0].Users) != 1 || recs[0].Users[0] != "u1" {
		t.Fatalf("after addition, reactions = %+v", recs)
	}

	if err := ctl.Toggle(context.Background(), "p1", "👍", "u1"); err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	recs, _ = feed.Reactions("p1")
	if len(recs) != 0 {
		t.Fatalf("after removal, reactions = %+v, want none", recs)
	}
}

func TestToggleRequiresAuthentication(t *testing.T) {
	feed := newFakeFeed("p1", nil)
	backend := &fakeBackend{}
	ctl := NewController(backend, feed)

	err := ctl.Toggle(context.Background(), "p1", "👍", "")
	if !errors.Is(err, ErrSignInRequired) {
		t.Fatalf("expected ErrSignInRequired, got %v", err)
	}
	if backend.callCount() != 0 {
		t.Fatalf("anonymous toggle must not hit the backend")
	}
}

func TestToggleUnknownPost(t *testing.T) {
	feed := newFakeFeed("p1", nil)
	ctl := NewController(&fakeBackend{}, feed)

	if err := ctl.Toggle(context.Background(), "nope", "👍", "u1"); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestToggleDropsWhileInFlight(t *testing.T) {
	feed := newFakeFeed("p1", nil)
	backend := &fakeBackend{
		resp:    structs.Post{Id: "p1", Reactions: []structs.ReactionRecord{{Emoji: "👍", Users: []string{"u1"}}}},
		entered: make(chan struct{}, 1),
		release: make(chan struct{}),
	}
	ctl := NewController(backend, feed)

	done := make(chan error, 1)
	go func() {
		done <- ctl.Toggle(context.Background(), "p1", "👍", "u1")
	}()
	<-backend.entered // first toggle is now in flight

	// Second toggle for the same pair must be dropped without a call.
	if err := ctl.Toggle(context.Background(), "p1", "👍", "u1"); err != nil {
		t.Fatalf("dropped toggle returned error: %v", err)
	}
	if got := backend.callCount(); got != 1 {
		t.Fatalf("backend calls = %d, want 1", got)
	}
	// The drop must not have mutated the optimistic state either.
	recs, _ := feed.Reactions("p1")
	if !Has(recs, "👍", "u1") {
		t.Fatalf("dropped toggle mutated state: %+v", recs)
	}

	close(backend.release)
	if err := <-done; err != nil {
		t.Fatalf("first toggle: %v", err)
	}

	// Guard released: a new toggle goes through.
	backend.entered = nil
	backend.release = nil
	if err := ctl.Toggle(context.Background(), "p1", "👍", "u1"); err != nil {
		t.Fatalf("toggle after settle: %v", err)
	}
	if got := backend.callCount(); got != 2 {
		t.Fatalf("backend calls = %d, want 2", got)
	}
}

func TestToggleDifferentEmojiProceedConcurrently(t *testing.T) {
	feed := newFakeFeed("p1", nil)
	backend := &fakeBackend{
		resp:    structs.Post{Id: "p1"},
		entered: make(chan struct{}, 2),
		release: make(chan struct{}),
	}
	ctl := NewController(backend, feed)

	done := make(chan error, 2)
	go func() { done <- ctl.Toggle(context.Background(), "p1", "👍", "u1") }()
	<-backend.entered
	go func() { done <- ctl.Toggle(context.Background(), "p1", "🔥", "u1") }()

	select {
	case <-backend.entered:
	case <-time.After(time.Second):
		t.Fatal("toggle on a different emoji was blocked by the in-flight guard")
	}

	close(backend.release)
	for i := 0; i < 2; i++ {
		if err := <-done; err != nil {
			t.Fatalf("toggle %d: %v", i, err)
		}
	}
}

func TestRemovalIgnoresStaleServerResponse(t *testing.T) {
	feed := newFakeFeed("p1", []structs.ReactionRecord{
		{Emoji: "👍", Users: []string{"u1"}},
	})
	// Server answers with a higher count, as if a concurrent addition by
	// someone else raced the removal.
	backend := &fakeBackend{resp: structs.Post{
		Id:        "p1",
		Reactions: []structs.ReactionRecord{{Emoji: "👍", Users: []string{"u1", "u2", "u3"}}},
	}}
	ctl := NewController(backend, feed)

	if err := ctl.Toggle(context.Background(), "p1", "👍", "u1"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	recs, _ := feed.Reactions("p1")
	if len(recs) != 0 {
		t.Fatalf("stale response resurrected a removed reaction: %+v", recs)
	}
}

func TestAdditionAdoptsConcurrentServerAdditions(t *testing.T) {
	feed := newFakeFeed("p1", nil)
	// While u1's addition is in flight, u2 also reacted; the response
	// reports both.
	backend := &fakeBackend{resp: structs.Post{
		Id:        "p1",
		Reactions: []structs.ReactionRecord{{Emoji: "👍", Users: []string{"u1", "u2"}}},
	}}
	ctl := NewController(backend, feed)

	if err := ctl.Toggle(context.Background(), "p1", "👍", "u1"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	recs, _ := feed.Reactions("p1")
	if len(recs) != 1 || len(recs[0].Users) != 2 {
		t.Fatalf("expected the 2-user server set to be adopted, got %+v", recs)
	}
}

func TestToggleKeepsOptimisticStateOnFailure(t *testing.T) {
	feed := newFakeFeed("p1", nil)
	backend := &fakeBackend{err: errors.New("connection refused")}
	ctl := NewController(backend, feed)

	err := ctl.Toggle(context.Background(), "p1", "👍", "u1")
	if err == nil {
		t.Fatal("expected the failure to surface")
	}
	// No rollback: the optimistic addition stays visible.
	recs, _ := feed.Reactions("p1")
	if !Has(recs, "👍", "u1") {
		t.Fatalf("optimistic state was rolled back: %+v", recs)
	}

	// The guard was released despite the failure.
	backend.err = nil
	backend.resp = structs.Post{Id: "p1"}
	if err := ctl.Toggle(context.Background(), "p1", "👍", "u1"); err != nil {
		t.Fatalf("toggle after failure: %v", err)
	}
}
