package structs

import "encoding/json"

// EmojiItem is an immutable catalog entry. The backend is not consistent
// about where the glyph lives ("character", "emoji" or "symbol" depending
// on dataset vintage), so the variants are folded into Glyph on decode.
type EmojiItem struct {
	Slug     string   `json:"slug" msgpack:"slug"`
	Name     string   `json:"name" msgpack:"name"`
	Keywords []string `json:"keywords,omitempty" msgpack:"keywords,omitempty"`
	Glyph    string   `json:"character" msgpack:"character"`
}

func (e *EmojiItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		Slug      string   `json:"slug"`
		Id        string   `json:"_id"`
		Name      string   `json:"name"`
		Keywords  []string `json:"keywords"`
		Character string   `json:"character"`
		Emoji     string   `json:"emoji"`
		Symbol    string   `json:"symbol"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	e.Slug = raw.Slug
	if e.Slug == "" {
		e.Slug = raw.Id
	}
	e.Name = raw.Name
	e.Keywords = raw.Keywords

	switch {
	case raw.Character != "":
		e.Glyph = raw.Character
	case raw.Emoji != "":
		e.Glyph = raw.Emoji
	default:
		e.Glyph = raw.Symbol
	}
	return nil
}
