package reactions

import (
	"context"
	"fmt"
	"sync"

	"github.com/emojiboard/client/pkg/structs"
)

// Backend is the slice of the REST client the controller needs.
type Backend interface {
	ReactToPost(ctx context.Context, postId string, emoji string) (structs.Post, error)
}

// Feed is the post state container the controller mutates. Reactions
// returns false when the post is unknown.
type Feed interface {
	Reactions(postId string) ([]structs.ReactionRecord, bool)
	SetReactions(postId string, records []structs.ReactionRecord)
}

// Controller applies reaction toggles optimistically and reconciles them
// with the server response. Per (post, emoji) pair it is a two-state
// machine, idle or in flight; a toggle attempted while the pair is in
// flight is dropped, not queued.
type Controller struct {
	backend Backend
	feed    Feed

	mu       sync.Mutex
	inFlight map[toggleKey]struct{}
}

type toggleKey struct {
	postId string
	emoji  string
}

func NewController(backend Backend, feed Feed) *Controller {
	return &Controller{
		backend:  backend,
		feed:     feed,
		inFlight: make(map[toggleKey]struct{}),
	}
}

// Toggle flips actingUserId's reaction to emoji on postId. Local state is
// mutated before the network call; callers run Toggle off the UI loop and
// it blocks until the backend settles. Whether the toggle was a removal is
// decided here, synchronously, because local state changes underneath once
// the call is in flight.
//
// On backend failure the optimistic local state is kept as-is; there is no
// rollback. The in-flight guard is released however the call settles.
func (c *Controller) Toggle(ctx context.Context, postId string, emoji string, actingUserId string) error {
	if actingUserId == "" {
		return ErrSignInRequired
	}

	key := toggleKey{postId: postId, emoji: emoji}

	c.mu.Lock()
	if _, busy := c.inFlight[key]; busy {
		// Rapid repeated input; drop.
		c.mu.Unlock()
		return nil
	}
	local, ok := c.feed.Reactions(postId)
	if !ok {
		c.mu.Unlock()
		return ErrPostNotFound
	}
	local = Normalize(local)
	wasRemoval := Has(local, emoji, actingUserId)
	c.feed.SetReactions(postId, applyToggle(local, emoji, actingUserId, wasRemoval))
	c.inFlight[key] = struct{}{}
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.inFlight, key)
		c.mu.Unlock()
	}()

	updated, err := c.backend.ReactToPost(ctx, postId, emoji)
	if err != nil {
		return fmt.Errorf("syncing reaction: %w", err)
	}

	if wasRemoval {
		// Trust the local removal. A slow response carrying a concurrent
		// addition by someone else must not resurrect it.
		return nil
	}

	c.mu.Lock()
	if local, ok := c.feed.Reactions(postId); ok {
		c.feed.SetReactions(postId, Reconcile(local, updated.Reactions, false))
	}
	c.mu.Unlock()
	return nil
}

func applyToggle(records []structs.ReactionRecord, emoji string, userId string, remove bool) []structs.ReactionRecord {
	out := make([]structs.ReactionRecord, 0, len(records)+1)
	found := false
	for _, r := range records {
		if r.Emoji != emoji {
			out = append(out, r)
			continue
		}
		found = true
		users := make([]string, 0, len(r.Users)+1)
		for _, u := range r.Users {
			if remove && u == userId {
				continue
			}
			users = append(users, u)
		}
		if !remove {
			users = append(users, userId)
		}
		if len(users) == 0 {
			// An empty record is considered absent.
			continue
		}
		out = append(out, structs.ReactionRecord{Emoji: emoji, Users: users})
	}
	if !found && !remove {
		out = append(out, structs.ReactionRecord{Emoji: emoji, Users: []string{userId}})
	}
	return Normalize(out)
}
