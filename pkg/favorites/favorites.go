// Package favorites holds the signed-in user's favorite emoji set. The
// server's returned set is adopted wholesale on every round trip; there is
// no local merging, so the last response to land simply wins.
package favorites

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

type Backend interface {
	ListFavorites(ctx context.Context) ([]string, error)
	ToggleFavorite(ctx context.Context, slug string) ([]string, error)
}

type Controller struct {
	backend Backend

	mu    sync.Mutex
	slugs map[string]struct{}
}

func NewController(backend Backend) *Controller {
	return &Controller{
		backend: backend,
		slugs:   make(map[string]struct{}),
	}
}

func (c *Controller) Load(ctx context.Context) error {
	slugs, err := c.backend.ListFavorites(ctx)
	if err != nil {
		return fmt.Errorf("loading favorites: %w", err)
	}
	c.replace(slugs)
	return nil
}

// Toggle flips slug on the server and replaces the local set with the
// server's verbatim. On failure local state is left untouched.
func (c *Controller) Toggle(ctx context.Context, slug string) error {
	slugs, err := c.backend.ToggleFavorite(ctx, slug)
	if err != nil {
		return fmt.Errorf("toggling favorite %q: %w", slug, err)
	}
	c.replace(slugs)
	return nil
}

func (c *Controller) Contains(slug string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.slugs[slug]
	return ok
}

func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.slugs)
}

func (c *Controller) Slugs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.slugs))
	for s := range c.slugs {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func (c *Controller) replace(slugs []string) {
	set := make(map[string]struct{}, len(slugs))
	for _, s := range slugs {
		set[s] = struct{}{}
	}
	c.mu.Lock()
	c.slugs = set
	c.mu.Unlock()
}
