package logger

import (
	"log/slog"
	"time"
)

// Attribute helpers use the empty Attr pattern for nil safety.
// This allows calls like log.Info("msg", logger.Error(err)) without explicit
// nil checks, following the principle of making zero values useful.

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors, enabling safe usage without nil checks.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component identifies the subsystem that produced the record.
func Component(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("component", name)
}

// Event names the logical event being logged.
func Event(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("event", name)
}

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed calculates and logs the duration since the start time.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// RequestID attaches the per-request identifier.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Method creates an attribute for an HTTP method.
func Method(method string) slog.Attr {
	return slog.String("method", method)
}

// Path creates an attribute for a request path.
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// StatusCode creates an attribute for an HTTP status code.
func StatusCode(code int) slog.Attr {
	return slog.Int("status", code)
}

// RemoteAddr creates an attribute for the client address.
func RemoteAddr(addr string) slog.Attr {
	if addr == "" {
		return slog.Attr{}
	}
	return slog.String("remote_addr", addr)
}

// UserEmail attaches the acting user's email.
func UserEmail(email string) slog.Attr {
	if email == "" {
		return slog.Attr{}
	}
	return slog.String("user_email", email)
}
