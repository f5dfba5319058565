// Package authtoken decodes bearer token claims without verifying the
// issuer's signature.
//
// The dashboard never holds the backend's signing key; it only needs to read
// identity and expiry out of tokens the backend already issued. Decode is
// therefore a pure, total function over the token's middle segment, and
// IsExpired fails closed when decoding fails.
//
//	claims, err := authtoken.Decode(token)
//	if err != nil {
//		// treat as unauthenticated
//	}
//	username := authtoken.Username(claims.Subject)
//
// Signature verification is deliberately out of scope: a forged token is
// rejected by the backend on the first authenticated request.
package authtoken
