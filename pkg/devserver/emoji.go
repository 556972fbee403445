package devserver

import (
	"net/http"

	"github.com/emojiboard/client/pkg/structs"
)

func (s *Server) listEmoji(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	catalog := make([]structs.EmojiItem, len(s.catalog))
	copy(catalog, s.catalog)
	s.mu.Unlock()
	returnData(w, http.StatusOK, catalog)
}

// SetCatalog replaces the seeded catalog; tests use this.
func (s *Server) SetCatalog(items []structs.EmojiItem) {
	s.mu.Lock()
	s.catalog = items
	s.mu.Unlock()
}

func seedCatalog() []structs.EmojiItem {
	return []structs.EmojiItem{
		{Slug: "grinning", Name: "Grinning Face", Keywords: []string{"smile", "happy", "face"}, Glyph: "😀"},
		{Slug: "joy", Name: "Face With Tears of Joy", Keywords: []string{"laugh", "lol", "funny"}, Glyph: "😂"},
		{Slug: "heart", Name: "Red Heart", Keywords: []string{"love", "like"}, Glyph: "❤️"},
		{Slug: "thumbs-up", Name: "Thumbs Up", Keywords: []string{"approve", "ok", "+1"}, Glyph: "👍"},
		{Slug: "fire", Name: "Fire", Keywords: []string{"hot", "lit", "flame"}, Glyph: "🔥"},
		{Slug: "party-popper", Name: "Party Popper", Keywords: []string{"celebrate", "tada", "party"}, Glyph: "🎉"},
		{Slug: "thinking", Name: "Thinking Face", Keywords: []string{"hmm", "consider"}, Glyph: "🤔"},
		{Slug: "crying", Name: "Loudly Crying Face", Keywords: []string{"sad", "tears", "cry"}, Glyph: "😭"},
		{Slug: "rocket", Name: "Rocket", Keywords: []string{"launch", "ship", "space"}, Glyph: "🚀"},
		{Slug: "eyes", Name: "Eyes", Keywords: []string{"look", "watch", "see"}, Glyph: "👀"},
		{Slug: "clap", Name: "Clapping Hands", Keywords: []string{"applause", "bravo"}, Glyph: "👏"},
		{Slug: "star", Name: "Star", Keywords: []string{"favorite", "shine"}, Glyph: "⭐"},
		{Slug: "cat", Name: "Cat Face", Keywords: []string{"pet", "meow", "animal"}, Glyph: "🐱"},
		{Slug: "dog", Name: "Dog Face", Keywords: []string{"pet", "woof", "animal"}, Glyph: "🐶"},
		{Slug: "pizza", Name: "Pizza", Keywords: []string{"food", "slice"}, Glyph: "🍕"},
		{Slug: "coffee", Name: "Hot Beverage", Keywords: []string{"coffee", "tea", "drink"}, Glyph: "☕"},
		{Slug: "wave", Name: "Waving Hand", Keywords: []string{"hello", "hi", "bye"}, Glyph: "👋"},
		{Slug: "sparkles", Name: "Sparkles", Keywords: []string{"shiny", "magic", "new"}, Glyph: "✨"},
	}
}
