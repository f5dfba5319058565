// Package credstore provides the key-value slots the authentication
// subsystem persists credentials into.
//
// The application keeps one logical credential in more than one place: the
// token slot the request layer reads on every outgoing call, the persisted
// session snapshot that survives restarts, and (outside this package
// entirely) the cookie the route guard inspects. Store models the first two
// as plain string keys; which keys exist and what they mean is decided by
// the session service, not here.
//
// Three backends are provided:
//
//   - Memory: process-local, for tests and throwaway deployments.
//   - File: JSON file with atomic replacement writes; the default, since the
//     persisted snapshot must survive restarts.
//   - Redis: for hosts where credential material should not touch local disk.
//
// All backends return ErrNotFound for absent keys and treat deleting an
// absent key as a no-op.
package credstore
