package apiclient

import (
	"context"
	"net/http"

	"github.com/krugerlabs/taskdash/core/authsession"
)

// AuthService calls the backend's authentication endpoints. It satisfies
// authsession.Gateway.
type AuthService struct {
	client *Client
}

// NewAuthService creates an AuthService on top of client.
func NewAuthService(client *Client) *AuthService {
	return &AuthService{client: client}
}

// loginResponse is the /auth/login response body.
type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token.
func (s *AuthService) Login(ctx context.Context, creds authsession.Credentials) (string, error) {
	var resp loginResponse
	if err := s.client.do(ctx, http.MethodPost, "/auth/login", creds, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Register creates a new account. The backend issues no token on
// registration; the caller logs in afterwards.
func (s *AuthService) Register(ctx context.Context, creds authsession.RegisterCredentials) error {
	return s.client.do(ctx, http.MethodPost, "/users/register", creds, nil)
}
