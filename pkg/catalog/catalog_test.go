package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/emojiboard/client/pkg/structs"
)

type fakeBackend struct {
	items []structs.EmojiItem
	err   error
}

func (b *fakeBackend) ListEmoji(ctx context.Context) ([]structs.EmojiItem, error) {
	return b.items, b.err
}

func sample() []structs.EmojiItem {
	return []structs.EmojiItem{
		{Slug: "cat", Name: "Cat Face", Keywords: []string{"pet"}, Glyph: "🐱"},
		{Slug: "fire", Name: "Fire", Glyph: "🔥"},
	}
}

func TestLoadFetchesAndCaches(t *testing.T) {
	cachePath := filepath.Join(t.TempDir(), "catalog.msgpack")
	loader := NewLoader(&fakeBackend{items: sample()}, cachePath)

	items, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items = %+v", items)
	}

	// A second loader with a dead backend must serve the cached copy.
	offline := NewLoader(&fakeBackend{err: errors.New("connection refused")}, cachePath)
	cached, err := offline.Load(context.Background())
	if err != nil {
		t.Fatalf("cached load: %v", err)
	}
	if len(cached) != 2 || cached[0].Slug != "cat" || cached[0].Glyph != "🐱" {
		t.Fatalf("cached items = %+v", cached)
	}
}

func TestLoadFailsWithoutCache(t *testing.T) {
	loader := NewLoader(&fakeBackend{err: errors.New("connection refused")}, filepath.Join(t.TempDir(), "none.msgpack"))
	if _, err := loader.Load(context.Background()); err == nil {
		t.Fatal("expected a blocking error with no cache")
	}
}

func TestLoadRejectsEmptyCatalog(t *testing.T) {
	loader := NewLoader(&fakeBackend{items: nil}, "")
	if _, err := loader.Load(context.Background()); !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("expected ErrEmptyCatalog, got %v", err)
	}
}
