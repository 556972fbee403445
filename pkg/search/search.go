// Package search computes the displayed subset of the emoji catalog from
// a free-text query and the favorites-only flag.
package search

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/emojiboard/client/pkg/structs"
)

type Mode string

const (
	// ModePrefix matches the query case-insensitively against the start
	// of the display name.
	ModePrefix Mode = "prefix"
	// ModeFuzzy matches approximately over name, keywords and slug, with
	// a bounded edit-distance rank.
	ModeFuzzy Mode = "fuzzy"
)

// DefaultFuzzyRank is the largest Levenshtein rank a fuzzy hit may have.
const DefaultFuzzyRank = 6

func ParseMode(s string) Mode {
	if Mode(s) == ModeFuzzy {
		return ModeFuzzy
	}
	return ModePrefix
}

// FavoriteSet is the favorites view the engine intersects against.
type FavoriteSet interface {
	Contains(slug string) bool
	Len() int
}

type Engine struct {
	Mode    Mode
	MaxRank int
}

func NewEngine(mode Mode) *Engine {
	return &Engine{Mode: mode, MaxRank: DefaultFuzzyRank}
}

// Filter returns the catalog entries matching query, intersected with
// favs when favoritesOnly is set. Favorites-only with an empty favorite
// set is empty, never "all items".
func (e *Engine) Filter(catalog []structs.EmojiItem, query string, favoritesOnly bool, favs FavoriteSet) []structs.EmojiItem {
	if favoritesOnly && (favs == nil || favs.Len() == 0) {
		return nil
	}

	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]structs.EmojiItem, 0, len(catalog))
	for _, item := range catalog {
		if favoritesOnly && !favs.Contains(item.Slug) {
			continue
		}
		if query != "" && !e.matches(item, query) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func (e *Engine) matches(item structs.EmojiItem, query string) bool {
	if e.Mode == ModeFuzzy {
		return e.fuzzyMatches(item, query)
	}
	return strings.HasPrefix(strings.ToLower(item.Name), query)
}

func (e *Engine) fuzzyMatches(item structs.EmojiItem, query string) bool {
	maxRank := e.MaxRank
	if maxRank <= 0 {
		maxRank = DefaultFuzzyRank
	}
	fields := make([]string, 0, len(item.Keywords)+2)
	fields = append(fields, item.Name, item.Slug)
	fields = append(fields, item.Keywords...)
	for _, f := range fields {
		// Rank whole fields and their individual words, so "prty"
		// still finds "Party Popper".
		for _, t := range append(strings.FieldsFunc(f, isWordSep), f) {
			if rank := fuzzy.RankMatchNormalizedFold(query, t); rank >= 0 && rank <= maxRank {
				return true
			}
		}
	}
	return false
}

func isWordSep(r rune) bool {
	return r == ' ' || r == '-' || r == '_'
}
