package credstore

import "errors"

var (
	// ErrNotFound is returned when a key is absent from the store.
	ErrNotFound = errors.New("credential not found")
	// ErrEmptyConnectionURL is returned when no redis connection URL is provided.
	ErrEmptyConnectionURL = errors.New("empty redis connection URL")
)
