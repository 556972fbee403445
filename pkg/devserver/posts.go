package devserver

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/emojiboard/client/pkg/structs"
)

type postContentReq struct {
	Content string `json:"content" validate:"required,max=2000"`
}

type reactReq struct {
	Emoji string `json:"emoji" validate:"required"`
}

func (s *Server) listPosts(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]structs.Post, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, clonePost(p))
	}
	s.mu.Unlock()
	returnData(w, http.StatusOK, out)
}

func (s *Server) createPost(w http.ResponseWriter, r *http.Request) {
	var body postContentReq
	if !decodeBody(w, r, &body) {
		return
	}
	if strings.TrimSpace(body.Content) == "" {
		returnErr(w, http.StatusBadRequest, ErrBadRequest, map[string]string{
			"content": "Content must not be blank.",
		})
		return
	}

	userId := requestUserId(r)
	s.mu.Lock()
	author := s.users[userId]
	post := &structs.Post{
		Id:        uuid.NewString(),
		Content:   body.Content,
		CreatedBy: structs.UserRef{Id: author.Id, Username: author.Username},
	}
	s.posts = append([]*structs.Post{post}, s.posts...)
	created := clonePost(post)
	s.mu.Unlock()

	returnData(w, http.StatusCreated, created)
}

func (s *Server) updatePost(w http.ResponseWriter, r *http.Request) {
	var body postContentReq
	if !decodeBody(w, r, &body) {
		return
	}

	s.mu.Lock()
	post := s.findPost(chi.URLParam(r, "postId"))
	if post == nil {
		s.mu.Unlock()
		returnErr(w, http.StatusNotFound, ErrNotFound, nil)
		return
	}
	if post.CreatedBy.Id != requestUserId(r) {
		s.mu.Unlock()
		returnErr(w, http.StatusForbidden, ErrForbidden, nil)
		return
	}
	post.Content = body.Content
	updated := clonePost(post)
	s.mu.Unlock()

	returnData(w, http.StatusOK, updated)
}

func (s *Server) deletePost(w http.ResponseWriter, r *http.Request) {
	postId := chi.URLParam(r, "postId")

	s.mu.Lock()
	for i, p := range s.posts {
		if p.Id != postId {
			continue
		}
		if p.CreatedBy.Id != requestUserId(r) {
			s.mu.Unlock()
			returnErr(w, http.StatusForbidden, ErrForbidden, nil)
			return
		}
		s.posts = append(s.posts[:i], s.posts[i+1:]...)
		s.mu.Unlock()
		returnData(w, http.StatusOK, struct {
			Error bool `json:"error"`
		}{false})
		return
	}
	s.mu.Unlock()
	returnErr(w, http.StatusNotFound, ErrNotFound, nil)
}

// reactToPost toggles the calling user on the emoji's user list, pruning
// the record when it empties, and returns the updated post.
func (s *Server) reactToPost(w http.ResponseWriter, r *http.Request) {
	var body reactReq
	if !decodeBody(w, r, &body) {
		return
	}
	userId := requestUserId(r)

	s.mu.Lock()
	post := s.findPost(chi.URLParam(r, "postId"))
	if post == nil {
		s.mu.Unlock()
		returnErr(w, http.StatusNotFound, ErrNotFound, nil)
		return
	}

	idx := -1
	for i, rec := range post.Reactions {
		if rec.Emoji == body.Emoji {
			idx = i
			break
		}
	}
	if idx == -1 {
		post.Reactions = append(post.Reactions, structs.ReactionRecord{
			Emoji: body.Emoji,
			Users: []string{userId},
		})
	} else {
		rec := post.Reactions[idx]
		users := make([]string, 0, len(rec.Users)+1)
		removed := false
		for _, u := range rec.Users {
			if u == userId {
				removed = true
				continue
			}
			users = append(users, u)
		}
		if !removed {
			users = append(users, userId)
		}
		if len(users) == 0 {
			post.Reactions = append(post.Reactions[:idx], post.Reactions[idx+1:]...)
		} else {
			rec.Users = users
			post.Reactions[idx] = rec
		}
	}
	updated := clonePost(post)
	s.mu.Unlock()

	returnData(w, http.StatusOK, updated)
}

// clonePost deep-copies the reaction records so the response body is
// detached from the live post once the lock is released. A shallow copy
// would share the records slice, which concurrent reacts write in place.
func clonePost(p *structs.Post) structs.Post {
	out := *p
	if p.Reactions != nil {
		out.Reactions = make([]structs.ReactionRecord, len(p.Reactions))
		for i, rec := range p.Reactions {
			users := make([]string, len(rec.Users))
			copy(users, rec.Users)
			out.Reactions[i] = structs.ReactionRecord{Emoji: rec.Emoji, Users: users}
		}
	}
	return out
}

// callers hold s.mu
func (s *Server) findPost(id string) *structs.Post {
	for _, p := range s.posts {
		if p.Id == id {
			return p
		}
	}
	return nil
}
