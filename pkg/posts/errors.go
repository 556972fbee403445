package posts

import "errors"

var (
	ErrPostNotFound = errors.New("post not found")
	ErrEmptyContent = errors.New("post content is empty")
)
