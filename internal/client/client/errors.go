package client

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	// ErrRejected covers malformed requests and unmet preconditions.
	ErrRejected = errors.New("request rejected")
)
