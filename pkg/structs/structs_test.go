package structs

import (
	"encoding/json"
	"testing"
)

func TestUserRefDecode(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want UserRef
	}{
		{"string form", `"u123"`, UserRef{Id: "u123"}},
		{"object form", `{"_id":"u123","username":"nia"}`, UserRef{Id: "u123", Username: "nia"}},
		{"alt id key", `{"id":"u456"}`, UserRef{Id: "u456"}},
		{"null", `null`, UserRef{}},
		{"garbage shape", `42`, UserRef{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got UserRef
			if err := json.Unmarshal([]byte(tc.in), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got != tc.want {
				t.Fatalf("decoded %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestUserRefInsidePost(t *testing.T) {
	var stringForm, objectForm Post
	if err := json.Unmarshal([]byte(`{"_id":"p1","content":"hi","createdBy":"u1"}`), &stringForm); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal([]byte(`{"_id":"p2","content":"hi","createdBy":{"_id":"u1","username":"nia"}}`), &objectForm); err != nil {
		t.Fatal(err)
	}
	if stringForm.CreatedBy.Id != "u1" || objectForm.CreatedBy.Id != "u1" {
		t.Fatalf("both forms should resolve to the same id: %+v vs %+v", stringForm.CreatedBy, objectForm.CreatedBy)
	}
	if !stringForm.OwnedBy("u1") || stringForm.OwnedBy("u2") || stringForm.OwnedBy("") {
		t.Fatal("ownership check misbehaved")
	}
}

func TestEmojiItemGlyphVariants(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want EmojiItem
	}{
		{"character", `{"slug":"cat","name":"Cat","character":"🐱"}`, EmojiItem{Slug: "cat", Name: "Cat", Glyph: "🐱"}},
		{"emoji", `{"slug":"cat","name":"Cat","emoji":"🐱"}`, EmojiItem{Slug: "cat", Name: "Cat", Glyph: "🐱"}},
		{"symbol", `{"slug":"cat","name":"Cat","symbol":"🐱"}`, EmojiItem{Slug: "cat", Name: "Cat", Glyph: "🐱"}},
		{"id fallback for slug", `{"_id":"abc","name":"Cat","symbol":"🐱"}`, EmojiItem{Slug: "abc", Name: "Cat", Glyph: "🐱"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got EmojiItem
			if err := json.Unmarshal([]byte(tc.in), &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.Slug != tc.want.Slug || got.Name != tc.want.Name || got.Glyph != tc.want.Glyph {
				t.Fatalf("decoded %+v, want %+v", got, tc.want)
			}
		})
	}
}
