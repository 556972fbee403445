package api

import "github.com/emojiboard/client/pkg/structs"

type AuthResp struct {
	Token string       `json:"token"`
	User  structs.User `json:"user"`
}

type favoritesResp struct {
	Favorites []string `json:"favorites"`
}

type errResp struct {
	Error  bool              `json:"error"`
	Type   string            `json:"type"`
	Fields map[string]string `json:"fields,omitempty"`
}
