package devserver

import "errors"

var (
	ErrBadRequest    = errors.New("badRequest")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrNotFound      = errors.New("notFound")
	ErrEmailTaken    = errors.New("emailTaken")
	ErrUsernameTaken = errors.New("usernameTaken")
	ErrInternal      = errors.New("internal")
)
