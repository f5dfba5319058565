// Package middleware provides the net/http middleware the dashboard server
// composes around its handlers: the navigation route guard, request IDs, and
// structured request logging.
//
// Middleware are plain func(http.Handler) http.Handler values applied
// outermost-first:
//
//	var handler http.Handler = mux
//	handler = middleware.RouteGuard()(handler)
//	handler = middleware.LoggingWithLogger(log)(handler)
//	handler = middleware.RequestID()(handler)
//
// The route guard deserves a careful read: it runs at the request edge,
// consults only the credential cookie, and is intentionally independent of
// the session service's view of authentication. See RouteGuardWithConfig.
package middleware
