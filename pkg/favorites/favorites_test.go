package favorites

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

type fakeBackend struct {
	list   []string
	toggle []string
	err    error
}

func (b *fakeBackend) ListFavorites(ctx context.Context) ([]string, error) {
	return b.list, b.err
}

func (b *fakeBackend) ToggleFavorite(ctx context.Context, slug string) ([]string, error) {
	return b.toggle, b.err
}

func TestToggleReplacesSetVerbatim(t *testing.T) {
	ctl := NewController(&fakeBackend{toggle: []string{"grinning", "fire"}})

	// Local-only state that must be discarded by the full replacement.
	ctl.replace([]string{"stale-slug"})

	if err := ctl.Toggle(context.Background(), "grinning"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if got := ctl.Slugs(); !reflect.DeepEqual(got, []string{"fire", "grinning"}) {
		t.Fatalf("Slugs() = %v, want the server set verbatim", got)
	}
	if ctl.Contains("stale-slug") {
		t.Fatal("local-only slug survived the replacement")
	}
}

func TestToggleFailureLeavesSetUnchanged(t *testing.T) {
	backend := &fakeBackend{list: []string{"heart"}}
	ctl := NewController(backend)
	if err := ctl.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	backend.err = errors.New("backend down")
	if err := ctl.Toggle(context.Background(), "fire"); err == nil {
		t.Fatal("expected the failure to surface")
	}
	if !ctl.Contains("heart") || ctl.Len() != 1 {
		t.Fatalf("favorites changed on failure: %v", ctl.Slugs())
	}
}

func TestLoad(t *testing.T) {
	ctl := NewController(&fakeBackend{list: []string{"a", "b"}})
	if err := ctl.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if ctl.Len() != 2 || !ctl.Contains("a") || !ctl.Contains("b") {
		t.Fatalf("unexpected set after load: %v", ctl.Slugs())
	}
}
