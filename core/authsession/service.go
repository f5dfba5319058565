package authsession

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/krugerlabs/taskdash/core/authtoken"
	"github.com/krugerlabs/taskdash/core/credstore"
	"github.com/krugerlabs/taskdash/core/logger"
)

const (
	// TokenKey is the storage slot the request layer reads on every
	// outgoing call to populate the Authorization header.
	TokenKey = "authToken"

	// SnapshotKey is the storage slot holding the persisted session
	// snapshot (token + isAuthenticated only).
	SnapshotKey = "auth-storage"
)

// Service owns the session state machine. It is constructed once at
// application start and passed to the pieces that need it; there is no
// package-level instance.
//
// The mutex guards field access only. It is deliberately NOT held across
// gateway or storage calls, so two concurrent Logins interleave and the last
// writer wins. That race is inherited behavior, not a guarantee worth
// defending; callers that need exclusion must serialize above this layer.
//
// Note that the route guard never consults this service: it reads the
// request cookie, a storage slot this service does not write. The two checks
// can legitimately disagree.
type Service struct {
	mu      sync.RWMutex
	state   State
	store   credstore.Store
	gateway Gateway
	log     *slog.Logger
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets the logger for storage cleanup failures and lifecycle
// events. Defaults to a no-op logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		s.log = log
	}
}

// New creates a session service over the given credential store and gateway.
func New(store credstore.Store, gateway Gateway, opts ...Option) *Service {
	s := &Service{
		store:   store,
		gateway: gateway,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a copy of the current session state.
func (s *Service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := s.state
	if s.state.User != nil {
		user := *s.state.User
		state.User = &user
	}
	return state
}

// Initialize restores the session from the persisted token slot. A present,
// unexpired token yields an authenticated state with the user rebuilt from
// the claims. An absent, expired, or undecodable token forces a full local
// logout: both storage slots are cleared and the state is reset.
//
// Initialize is idempotent and safe to call on every page request.
func (s *Service) Initialize(ctx context.Context) {
	token, err := s.store.Get(ctx, TokenKey)
	if err != nil && !errors.Is(err, credstore.ErrNotFound) {
		// Unreadable storage is treated the same as an absent token.
		s.log.ErrorContext(ctx, "failed to read persisted token",
			logger.Component("authsession"), logger.Error(err))
	}

	if token == "" || authtoken.IsExpired(token) {
		s.clearCredentials(ctx)
		s.mu.Lock()
		s.state = State{}
		s.mu.Unlock()
		return
	}

	user := userFromToken(token)
	s.mu.Lock()
	s.state = State{User: user, Token: token, IsAuthenticated: true}
	s.mu.Unlock()
	s.persistSnapshot(ctx)
}

// Login authenticates against the gateway and establishes the session. On
// failure the error is recorded in the state AND returned, so the calling
// form can render it.
func (s *Service) Login(ctx context.Context, creds Credentials) error {
	s.mu.Lock()
	s.state.IsLoading = true
	s.state.Error = ""
	s.mu.Unlock()

	token, err := s.gateway.Login(ctx, creds)
	if err != nil {
		return s.failAuth(err)
	}
	if token == "" {
		return s.failAuth(ErrMissingToken)
	}
	if authtoken.IsExpired(token) {
		return s.failAuth(ErrUnusableToken)
	}

	if err := s.store.Set(ctx, TokenKey, token); err != nil {
		return s.failAuth(err)
	}

	user := userFromToken(token)
	s.mu.Lock()
	s.state = State{User: user, Token: token, IsAuthenticated: true}
	s.mu.Unlock()
	s.persistSnapshot(ctx)

	s.log.InfoContext(ctx, "login succeeded",
		logger.Component("authsession"), logger.UserEmail(user.Email))
	return nil
}

// Register creates an account through the gateway. A successful registration
// does not establish a session; the user logs in afterwards.
func (s *Service) Register(ctx context.Context, creds RegisterCredentials) error {
	s.mu.Lock()
	s.state.IsLoading = true
	s.state.Error = ""
	s.mu.Unlock()

	if err := s.gateway.Register(ctx, creds); err != nil {
		return s.failAuth(err)
	}

	s.mu.Lock()
	s.state.IsLoading = false
	s.mu.Unlock()
	return nil
}

// Logout removes the local credentials and resets the session. The backend
// has no logout endpoint, so revocation is impossible: this is local-only by
// constraint, not oversight. The terminal reset is guaranteed: it runs even
// if storage cleanup fails or panics, and cleanup errors are logged, never
// returned.
func (s *Service) Logout(ctx context.Context) {
	s.mu.Lock()
	s.state.IsLoading = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.state = State{}
		s.mu.Unlock()
	}()

	s.clearCredentials(ctx)
}

// SetToken is the low-level setter used by the 401 recovery path. A
// non-empty token is persisted verbatim and the user and authentication
// flag are re-derived from it; an empty token clears the slot and the
// identity fields without touching Error.
func (s *Service) SetToken(ctx context.Context, token string) error {
	if token == "" {
		err := s.store.Delete(ctx, TokenKey)

		s.mu.Lock()
		s.state.Token = ""
		s.state.User = nil
		s.state.IsAuthenticated = false
		s.mu.Unlock()
		s.persistSnapshot(ctx)
		return err
	}

	if err := s.store.Set(ctx, TokenKey, token); err != nil {
		return err
	}

	user := userFromToken(token)
	authenticated := user != nil && !authtoken.IsExpired(token)
	if !authenticated {
		user = nil
	}

	s.mu.Lock()
	s.state.Token = token
	s.state.User = user
	s.state.IsAuthenticated = authenticated
	s.mu.Unlock()
	s.persistSnapshot(ctx)
	return nil
}

// ClearError clears the error message without touching authentication state.
func (s *Service) ClearError() {
	s.mu.Lock()
	s.state.Error = ""
	s.mu.Unlock()
}

// failAuth records a failed authentication attempt and returns the original
// error unchanged so callers can inspect it.
func (s *Service) failAuth(err error) error {
	s.mu.Lock()
	s.state.IsLoading = false
	s.state.IsAuthenticated = false
	s.state.User = nil
	s.state.Error = err.Error()
	s.mu.Unlock()
	return err
}

// clearCredentials deletes both storage slots. Failures are logged and
// swallowed: the caller's state reset must proceed regardless.
func (s *Service) clearCredentials(ctx context.Context) {
	if err := s.store.Delete(ctx, TokenKey); err != nil {
		s.log.ErrorContext(ctx, "failed to clear token slot",
			logger.Component("authsession"), logger.Error(err))
	}
	if err := s.store.Delete(ctx, SnapshotKey); err != nil {
		s.log.ErrorContext(ctx, "failed to clear session snapshot",
			logger.Component("authsession"), logger.Error(err))
	}
}

// persistSnapshot writes the restart-surviving subset of the state.
func (s *Service) persistSnapshot(ctx context.Context) {
	s.mu.RLock()
	snapshot := Snapshot{Token: s.state.Token, IsAuthenticated: s.state.IsAuthenticated}
	s.mu.RUnlock()

	data, err := json.Marshal(snapshot)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to encode session snapshot",
			logger.Component("authsession"), logger.Error(err))
		return
	}
	if err := s.store.Set(ctx, SnapshotKey, string(data)); err != nil {
		s.log.ErrorContext(ctx, "failed to persist session snapshot",
			logger.Component("authsession"), logger.Error(err))
	}
}

// userFromToken rebuilds the identity from the token claims. Returns nil for
// undecodable tokens.
func userFromToken(token string) *User {
	claims, err := authtoken.Decode(token)
	if err != nil {
		return nil
	}
	return &User{
		ID:       0,
		Username: authtoken.Username(claims.Subject),
		Email:    claims.Subject,
		Role:     claims.Role,
	}
}
