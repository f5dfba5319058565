package authsession

import (
	"context"

	"github.com/krugerlabs/taskdash/core/authtoken"
)

// Credentials is the login request payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterCredentials is the registration request payload.
type RegisterCredentials struct {
	Username string         `json:"username"`
	Email    string         `json:"email"`
	Password string         `json:"password"`
	Role     authtoken.Role `json:"role,omitempty"`
}

// Gateway is the remote authentication endpoint. Login returns the issued
// bearer token. The backend exposes no logout endpoint, so the interface has
// none: credential removal is always local-only.
type Gateway interface {
	Login(ctx context.Context, creds Credentials) (string, error)
	Register(ctx context.Context, creds RegisterCredentials) error
}
