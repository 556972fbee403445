// Package posts is the client-side post feed: a cache of the backend's
// post list, mutated optimistically through the controllers and
// reconciled against server responses. The authoritative copy lives on
// the backend.
package posts

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/emojiboard/client/pkg/reactions"
	"github.com/emojiboard/client/pkg/structs"
)

type Backend interface {
	ListPosts(ctx context.Context) ([]structs.Post, error)
	CreatePost(ctx context.Context, content string) (structs.Post, error)
	UpdatePost(ctx context.Context, id string, content string) (structs.Post, error)
	DeletePost(ctx context.Context, id string) error
}

type Store struct {
	backend Backend

	mu    sync.Mutex
	posts []structs.Post
}

func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// Load fetches the full post list, normalizing every post's reactions so
// duplicate emoji entries from racing write paths never reach a render.
func (s *Store) Load(ctx context.Context) error {
	fetched, err := s.backend.ListPosts(ctx)
	if err != nil {
		return fmt.Errorf("loading posts: %w", err)
	}
	for i := range fetched {
		fetched[i].Reactions = reactions.Normalize(fetched[i].Reactions)
	}
	s.mu.Lock()
	s.posts = fetched
	s.mu.Unlock()
	return nil
}

// Reload is the user-initiated recovery path after a failed mutation; it
// is the same full fetch as Load.
func (s *Store) Reload(ctx context.Context) error {
	return s.Load(ctx)
}

// Posts returns a snapshot of the feed.
func (s *Store) Posts() []structs.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]structs.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

func (s *Store) Get(id string) (structs.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.posts {
		if p.Id == id {
			return p, true
		}
	}
	return structs.Post{}, false
}

// Create sends the new post and prepends the server's copy to the feed.
func (s *Store) Create(ctx context.Context, content string) (structs.Post, error) {
	if strings.TrimSpace(content) == "" {
		return structs.Post{}, ErrEmptyContent
	}
	created, err := s.backend.CreatePost(ctx, content)
	if err != nil {
		return structs.Post{}, fmt.Errorf("creating post: %w", err)
	}
	created.Reactions = reactions.Normalize(created.Reactions)

	s.mu.Lock()
	s.posts = append([]structs.Post{created}, s.posts...)
	s.mu.Unlock()
	return created, nil
}

func (s *Store) Update(ctx context.Context, id string, content string) (structs.Post, error) {
	if strings.TrimSpace(content) == "" {
		return structs.Post{}, ErrEmptyContent
	}
	if _, ok := s.Get(id); !ok {
		return structs.Post{}, ErrPostNotFound
	}
	updated, err := s.backend.UpdatePost(ctx, id, content)
	if err != nil {
		return structs.Post{}, fmt.Errorf("updating post: %w", err)
	}
	updated.Reactions = reactions.Normalize(updated.Reactions)

	s.mu.Lock()
	for i, p := range s.posts {
		if p.Id == updated.Id {
			s.posts[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if _, ok := s.Get(id); !ok {
		return ErrPostNotFound
	}
	if err := s.backend.DeletePost(ctx, id); err != nil {
		return fmt.Errorf("deleting post: %w", err)
	}
	s.mu.Lock()
	for i, p := range s.posts {
		if p.Id == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// Reactions and SetReactions make the store the reaction controller's
// feed.

func (s *Store) Reactions(postId string) ([]structs.ReactionRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.posts {
		if p.Id == postId {
			out := make([]structs.ReactionRecord, len(p.Reactions))
			copy(out, p.Reactions)
			return out, true
		}
	}
	return nil, false
}

func (s *Store) SetReactions(postId string, records []structs.ReactionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].Id == postId {
			s.posts[i].Reactions = records
			return
		}
	}
}
