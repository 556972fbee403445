// Package devserver is an in-memory implementation of the REST surface
// the client consumes. It exists to run the client against locally and to
// ground the client integration tests in real HTTP; it is not a product
// backend and persists nothing.
package devserver

import (
	"crypto/rand"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"

	"github.com/emojiboard/client/pkg/structs"
)

type account struct {
	user         structs.User
	passwordHash []byte
}

type Server struct {
	signingKey []byte

	mu        sync.Mutex
	accounts  map[string]*account            // keyed by email
	users     map[string]structs.User        // keyed by user id
	sessions  map[string]string              // session id -> user id
	favorites map[string]map[string]struct{} // user id -> slug set
	posts     []*structs.Post
	catalog   []structs.EmojiItem
}

func New() *Server {
	key := make([]byte, 64)
	if _, err := rand.Read(key); err != nil {
		panic(err)
	}
	return &Server{
		signingKey: key,
		accounts:   make(map[string]*account),
		users:      make(map[string]structs.User),
		sessions:   make(map[string]string),
		favorites:  make(map[string]map[string]struct{}),
		catalog:    seedCatalog(),
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	// CORS middleware
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler)

	r.Post("/auth/register", s.register)
	r.Post("/auth/login", s.login)

	r.Get("/emoji", s.listEmoji)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)

		r.Post("/auth/logout", s.logout)

		r.Get("/favorites", s.listFavorites)
		r.Post("/favorites/toggle", s.toggleFavorite)

		r.Get("/posts", s.listPosts)
		r.Post("/posts", s.createPost)
		r.Put("/posts/{postId}", s.updatePost)
		r.Delete("/posts/{postId}", s.deletePost)
		r.Post("/posts/{postId}/react", s.reactToPost)
	})

	return r
}
