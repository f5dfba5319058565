package authtoken

import "errors"

var (
	// ErrMalformedToken is returned when a token cannot be decoded.
	ErrMalformedToken = errors.New("malformed bearer token")
)
