// Package catalog loads the emoji catalog from the backend, keeping a
// msgpack-encoded copy on disk so the grid still comes up when the
// backend is unreachable.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/emojiboard/client/pkg/structs"
)

var ErrEmptyCatalog = errors.New("emoji catalog is empty")

type Backend interface {
	ListEmoji(ctx context.Context) ([]structs.EmojiItem, error)
}

type Loader struct {
	backend   Backend
	cachePath string
}

func NewLoader(backend Backend, cachePath string) *Loader {
	return &Loader{backend: backend, cachePath: cachePath}
}

// Load fetches the catalog and refreshes the cache; a fetch failure falls
// back to the cached copy. Only when both fail does the caller get the
// blocking error view.
func (l *Loader) Load(ctx context.Context) ([]structs.EmojiItem, error) {
	items, err := l.backend.ListEmoji(ctx)
	if err == nil {
		if len(items) == 0 {
			return nil, ErrEmptyCatalog
		}
		l.writeCache(items)
		return items, nil
	}

	cached, cacheErr := l.readCache()
	if cacheErr != nil {
		return nil, fmt.Errorf("loading emoji catalog: %w", err)
	}
	log.Println("emoji catalog fetch failed, serving cached copy:", err)
	return cached, nil
}

func (l *Loader) writeCache(items []structs.EmojiItem) {
	if l.cachePath == "" {
		return
	}
	raw, err := msgpack.Marshal(items)
	if err == nil {
		err = os.MkdirAll(filepath.Dir(l.cachePath), 0o700)
	}
	if err == nil {
		err = os.WriteFile(l.cachePath, raw, 0o600)
	}
	if err != nil {
		// Cache refresh is best effort.
		log.Println("writing emoji catalog cache:", err)
	}
}

func (l *Loader) readCache() ([]structs.EmojiItem, error) {
	if l.cachePath == "" {
		return nil, os.ErrNotExist
	}
	raw, err := os.ReadFile(l.cachePath)
	if err != nil {
		return nil, err
	}
	var items []structs.EmojiItem
	if err := msgpack.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCatalog
	}
	return items, nil
}
