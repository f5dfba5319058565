// Package logger provides slog construction helpers and nil-safe structured
// logging attributes shared across the application.
//
// Construction:
//
//	log := logger.New(logger.WithDevelopment("taskdash"))
//	log.Info("started", logger.Component("server"))
//
// Production output defaults to JSON at info level on stdout:
//
//	log := logger.New(logger.WithAppName("taskdash"))
//
// Attribute helpers return an empty slog.Attr for zero values, so they can be
// passed unconditionally:
//
//	log.Error("login failed", logger.Component("authsession"), logger.Error(err))
package logger
