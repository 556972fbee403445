package reactions

import "errors"

var (
	ErrSignInRequired = errors.New("sign in required to react")
	ErrPostNotFound   = errors.New("post not found")
)
