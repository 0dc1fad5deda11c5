package model

import "errors"

var (
	// ErrNotFound is returned by stores when no row matches.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateLogin is returned when a poll with the same login already exists.
	ErrDuplicateLogin = errors.New("login already exists")
	// ErrUnauthorized is returned when credentials do not match a stored poll.
	ErrUnauthorized = errors.New("incorrect login or password")
)
