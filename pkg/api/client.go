// Package api is the typed client for the emojiboard REST surface. Every
// authenticated request carries a bearer token read from the session
// store handed in at construction.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/emojiboard/client/pkg/structs"
)

var validate = validator.New()

// TokenSource yields the current session token; empty means anonymous.
type TokenSource interface {
	Token() string
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		tokens:  tokens,
	}
}

func (c *Client) Register(ctx context.Context, req RegisterReq) (AuthResp, error) {
	var resp AuthResp
	if err := validate.Struct(req); err != nil {
		return resp, fmt.Errorf("invalid registration: %w", err)
	}
	err := c.do(ctx, http.MethodPost, "/auth/register", req, &resp)
	return resp, err
}

func (c *Client) Login(ctx context.Context, req LoginReq) (AuthResp, error) {
	var resp AuthResp
	if err := validate.Struct(req); err != nil {
		return resp, fmt.Errorf("invalid login: %w", err)
	}
	err := c.do(ctx, http.MethodPost, "/auth/login", req, &resp)
	return resp, err
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

func (c *Client) ListEmoji(ctx context.Context) ([]structs.EmojiItem, error) {
	var items []structs.EmojiItem
	err := c.do(ctx, http.MethodGet, "/emoji", nil, &items)
	return items, err
}

func (c *Client) ListFavorites(ctx context.Context) ([]string, error) {
	var resp favoritesResp
	err := c.do(ctx, http.MethodGet, "/favorites", nil, &resp)
	return resp.Favorites, err
}

func (c *Client) ToggleFavorite(ctx context.Context, slug string) ([]string, error) {
	var resp favoritesResp
	err := c.do(ctx, http.MethodPost, "/favorites/toggle", toggleFavoriteReq{Slug: slug}, &resp)
	return resp.Favorites, err
}

func (c *Client) ListPosts(ctx context.Context) ([]structs.Post, error) {
	var posts []structs.Post
	err := c.do(ctx, http.MethodGet, "/posts", nil, &posts)
	return posts, err
}

func (c *Client) CreatePost(ctx context.Context, content string) (structs.Post, error) {
	var post structs.Post
	err := c.do(ctx, http.MethodPost, "/posts", postContentReq{Content: content}, &post)
	return post, err
}

func (c *Client) UpdatePost(ctx context.Context, id string, content string) (structs.Post, error) {
	var post structs.Post
	err := c.do(ctx, http.MethodPut, "/posts/"+id, postContentReq{Content: content}, &post)
	return post, err
}

func (c *Client) DeletePost(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/posts/"+id, nil, nil)
}

func (c *Client) ReactToPost(ctx context.Context, id string, emoji string) (structs.Post, error) {
	var post structs.Post
	err := c.do(ctx, http.MethodPost, "/posts/"+id+"/react", reactReq{Emoji: emoji}, &post)
	return post, err
}

func (c *Client) do(ctx context.Context, method string, path string, body interface{}, out interface{}) error {
	var reqBody *bytes.Reader
	if body != nil {
		marshaled, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(marshaled)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &Error{Status: resp.StatusCode}
		var envelope errResp
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
			apiErr.Type = envelope.Type
			apiErr.Fields = envelope.Fields
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
