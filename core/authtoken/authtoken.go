package authtoken

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the authorization role carried in the token claims.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Claims is the decoded payload of a bearer token. Timestamps are unix
// seconds, matching the wire format issued by the backend.
type Claims struct {
	// Subject is the user's email address.
	Subject   string
	Role      Role
	IssuedAt  int64
	ExpiresAt int64
}

// wireClaims maps the backend's claim set onto golang-jwt's registered
// claims so ParseUnverified can validate structure and types for us.
type wireClaims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

// Decode reads the claims from the middle segment of a three-segment bearer
// token without verifying the signature. It is total: any malformed input
// (wrong segment count, invalid encoding, invalid JSON) yields
// ErrMalformedToken rather than a panic.
//
// Decode asserts nothing about who issued the token. Callers that need
// authenticity must rely on the backend rejecting the token instead.
func Decode(token string) (*Claims, error) {
	var wire wireClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &wire); err != nil {
		return nil, errors.Join(ErrMalformedToken, err)
	}

	claims := &Claims{
		Subject: wire.Subject,
		Role:    wire.Role,
	}
	if wire.IssuedAt != nil {
		claims.IssuedAt = wire.IssuedAt.Unix()
	}
	if wire.ExpiresAt != nil {
		claims.ExpiresAt = wire.ExpiresAt.Unix()
	}
	return claims, nil
}

// IsExpired reports whether the token is no longer valid at the current
// time. A token that fails to decode is treated as expired (fail-closed),
// as is a token whose expiry is not strictly in the future.
func IsExpired(token string) bool {
	claims, err := Decode(token)
	if err != nil {
		return true
	}
	return claims.ExpiresAt <= time.Now().Unix()
}

// Username derives the display username from an email address: the part
// strictly before the first "@". An input without "@" is returned whole;
// the backend guarantees subjects are emails, so this only happens with
// hand-crafted tokens.
func Username(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found {
		return email
	}
	return local
}
