package devserver

import (
	"net/http"
	"sort"
)

type toggleFavoriteReq struct {
	Slug string `json:"slug" validate:"required"`
}

type favoritesResp struct {
	Favorites []string `json:"favorites"`
}

func (s *Server) listFavorites(w http.ResponseWriter, r *http.Request) {
	returnData(w, http.StatusOK, favoritesResp{Favorites: s.favoriteSlugs(requestUserId(r))})
}

// toggleFavorite flips the slug and always responds with the user's full
// favorite set; the client adopts it verbatim.
func (s *Server) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	var body toggleFavoriteReq
	if !decodeBody(w, r, &body) {
		return
	}
	userId := requestUserId(r)

	s.mu.Lock()
	set, ok := s.favorites[userId]
	if !ok {
		set = make(map[string]struct{})
		s.favorites[userId] = set
	}
	if _, has := set[body.Slug]; has {
		delete(set, body.Slug)
	} else {
		set[body.Slug] = struct{}{}
	}
	s.mu.Unlock()

	returnData(w, http.StatusOK, favoritesResp{Favorites: s.favoriteSlugs(userId)})
}

func (s *Server) favoriteSlugs(userId string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	slugs := make([]string, 0, len(s.favorites[userId]))
	for slug := range s.favorites[userId] {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)
	return slugs
}
