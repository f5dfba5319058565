// Package server wraps net/http Server with environment-driven configuration,
// functional options, and graceful shutdown.
//
// Usage:
//
//	var cfg server.Config
//	config.MustLoad(&cfg)
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		log.Error("failed to create server", logger.Error(err))
//		os.Exit(1)
//	}
//
//	if err := srv.Start(ctx, mux); err != nil && !errors.Is(err, context.Canceled) {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Start blocks until the context is canceled or the listener fails; Stop (or
// context cancellation through Run) drains in-flight requests for up to the
// configured shutdown timeout.
package server
