package logger

import (
	"io"
	"log/slog"
	"os"
)

type options struct {
	writer  io.Writer
	level   slog.Level
	appName string
	devMode bool
}

// Option configures the logger returned by New.
type Option func(*options)

// WithDevelopment enables human-readable text output at debug level,
// tagged with the application name. Intended for local development.
func WithDevelopment(appName string) Option {
	return func(o *options) {
		o.appName = appName
		o.devMode = true
		o.level = slog.LevelDebug
	}
}

// WithAppName tags every record with the application name.
func WithAppName(appName string) Option {
	return func(o *options) {
		o.appName = appName
	}
}

// WithLevel sets the minimum log level.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithWriter sets the output destination (default: os.Stdout).
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.writer = w
	}
}

// New creates a slog.Logger with JSON output at info level by default.
// Options adjust level, destination, and output format.
func New(opts ...Option) *slog.Logger {
	o := options{
		writer: os.Stdout,
		level:  slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(&o)
	}

	handlerOpts := &slog.HandlerOptions{Level: o.level}

	var handler slog.Handler
	if o.devMode {
		handler = slog.NewTextHandler(o.writer, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(o.writer, handlerOpts)
	}

	log := slog.New(handler)
	if o.appName != "" {
		log = log.With(slog.String("app", o.appName))
	}
	return log
}
