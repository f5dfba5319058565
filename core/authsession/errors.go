package authsession

import "errors"

var (
	// ErrMissingToken is returned when the gateway reports success but the
	// response carries no token.
	ErrMissingToken = errors.New("login response did not include a token")
	// ErrUnusableToken is returned when the gateway returns a token that
	// cannot be decoded or is already expired.
	ErrUnusableToken = errors.New("login returned an unusable token")
)
