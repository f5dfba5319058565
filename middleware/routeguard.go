package middleware

import (
	"net/http"
	"strings"
)

// RouteGuardConfig configures the navigation guard middleware.
type RouteGuardConfig struct {
	// Skip defines a function to skip guard evaluation for specific requests
	Skip func(r *http.Request) bool
	// CookieName is the cookie carrying the edge credential (default: "accessToken")
	CookieName string
	// LoginPath is the redirect target for unauthenticated navigation (default: "/login")
	LoginPath string
	// DashboardPath is the redirect target for authenticated navigation (default: "/dashboard")
	DashboardPath string
	// ProtectedPrefixes require a cookie credential (default: ["/dashboard"])
	ProtectedPrefixes []string
	// PublicPrefixes redirect away when a cookie credential is present (default: ["/login"])
	PublicPrefixes []string
	// ExcludedPrefixes never enter the classification table at all
	// (default: ["/api/", "/static/", "/favicon.ico"])
	ExcludedPrefixes []string
}

// RouteGuard creates the navigation guard middleware with default
// configuration. See RouteGuardWithConfig.
func RouteGuard() func(http.Handler) http.Handler {
	return RouteGuardWithConfig(RouteGuardConfig{})
}

// RouteGuardWithConfig creates a per-request navigation guard evaluated
// before any handler runs.
//
// The guard's only input is the presence of a non-empty credential cookie.
// It never decodes the token and never checks expiry: an expired-but-present
// cookie passes, and the real validation happens in the session service once
// the page code runs (fail-open at the edge, fail-closed in the
// application). The cookie is also a different storage slot than the token
// slot the session service reads, so the two checks can disagree; the guard
// is an independent gate, not a cache of session state.
//
// Classification is an ordered table, first match wins:
//
//  1. exactly "/"                        -> dashboard if cookie, else login
//  2. protected prefix, no cookie        -> login
//  3. public prefix, cookie present      -> dashboard
//  4. anything else                      -> pass through unchanged
//
// Excluded prefixes (API and static asset paths) bypass the table entirely.
func RouteGuardWithConfig(cfg RouteGuardConfig) func(http.Handler) http.Handler {
	if cfg.CookieName == "" {
		cfg.CookieName = "accessToken"
	}
	if cfg.LoginPath == "" {
		cfg.LoginPath = "/login"
	}
	if cfg.DashboardPath == "" {
		cfg.DashboardPath = "/dashboard"
	}
	if cfg.ProtectedPrefixes == nil {
		cfg.ProtectedPrefixes = []string{"/dashboard"}
	}
	if cfg.PublicPrefixes == nil {
		cfg.PublicPrefixes = []string{"/login"}
	}
	if cfg.ExcludedPrefixes == nil {
		cfg.ExcludedPrefixes = []string{"/api/", "/static/", "/favicon.ico"}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			path := r.URL.Path
			if hasAnyPrefix(path, cfg.ExcludedPrefixes) {
				next.ServeHTTP(w, r)
				return
			}

			hasCookie := hasCredentialCookie(r, cfg.CookieName)

			switch {
			case path == "/":
				if hasCookie {
					http.Redirect(w, r, cfg.DashboardPath, http.StatusTemporaryRedirect)
				} else {
					http.Redirect(w, r, cfg.LoginPath, http.StatusTemporaryRedirect)
				}
			case hasAnyPrefix(path, cfg.ProtectedPrefixes) && !hasCookie:
				http.Redirect(w, r, cfg.LoginPath, http.StatusTemporaryRedirect)
			case hasAnyPrefix(path, cfg.PublicPrefixes) && hasCookie:
				http.Redirect(w, r, cfg.DashboardPath, http.StatusTemporaryRedirect)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

// hasCredentialCookie reports whether the request carries a non-empty
// credential cookie. Malformed or empty values count as absent.
func hasCredentialCookie(r *http.Request, name string) bool {
	cookie, err := r.Cookie(name)
	return err == nil && cookie.Value != ""
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
