package authsession

import "github.com/krugerlabs/taskdash/core/authtoken"

// User is the identity derived from the current token. It is never stored
// independently: every field except ID is recomputed from the token claims,
// so the credential stays the single source of truth.
type User struct {
	// ID cannot be recovered from the token and stays 0 until a dedicated
	// lookup populates it. Known modeling gap, preserved deliberately.
	ID       int64          `json:"id"`
	Username string         `json:"username"`
	Email    string         `json:"email"`
	Role     authtoken.Role `json:"role"`
}

// State is the session service's view of the current identity.
type State struct {
	User            *User  `json:"user,omitempty"`
	Token           string `json:"token,omitempty"`
	IsAuthenticated bool   `json:"isAuthenticated"`
	IsLoading       bool   `json:"isLoading"`
	Error           string `json:"error,omitempty"`
}

// Phase is the derived lifecycle phase of a State. Phases are mutually
// exclusive and never stored; they are a pure function of the state fields.
type Phase string

const (
	PhaseUnauthenticated Phase = "unauthenticated"
	PhaseAuthenticating  Phase = "authenticating"
	PhaseAuthenticated   Phase = "authenticated"
	PhaseAuthError       Phase = "auth_error"
)

// Phase derives the lifecycle phase from the state fields.
func (s State) Phase() Phase {
	switch {
	case s.IsLoading:
		return PhaseAuthenticating
	case s.Error != "":
		return PhaseAuthError
	case s.IsAuthenticated:
		return PhaseAuthenticated
	default:
		return PhaseUnauthenticated
	}
}

// Snapshot is the subset of State that survives a process restart. User and
// Error are always rebuilt or cleared on the next Initialize.
type Snapshot struct {
	Token           string `json:"token"`
	IsAuthenticated bool   `json:"isAuthenticated"`
}
