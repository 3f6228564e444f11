package services

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrSlugTaken      = errors.New("an entry with this slug already exists")
	ErrEmptyContent   = errors.New("content is empty")
	ErrInvalidContent = errors.New("content is not a valid document")
	ErrBadCredentials = errors.New("invalid username or password")
	ErrBadToken       = errors.New("invalid or expired token")
	ErrUsernameTaken  = errors.New("username is already taken")
)
