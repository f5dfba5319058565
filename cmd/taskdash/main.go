package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/krugerlabs/taskdash/apiclient"
	"github.com/krugerlabs/taskdash/core/authsession"
	"github.com/krugerlabs/taskdash/core/config"
	"github.com/krugerlabs/taskdash/core/credstore"
	"github.com/krugerlabs/taskdash/core/logger"
	"github.com/krugerlabs/taskdash/core/server"
	"github.com/krugerlabs/taskdash/middleware"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var cfg appConfig
	config.MustLoad(&cfg)

	logOpts := []logger.Option{logger.WithAppName(cfg.AppName)}
	if cfg.Development {
		logOpts = []logger.Option{logger.WithDevelopment(cfg.AppName)}
	}
	log := logger.New(logOpts...)

	if err := run(ctx, cfg, log); err != nil {
		log.Error("exited with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	store, err := newStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("credential store: %w", err)
	}

	client, err := apiclient.New(cfg.API, store)
	if err != nil {
		return err
	}

	session := authsession.New(store, apiclient.NewAuthService(client),
		authsession.WithLogger(log))
	client.OnAuthFailure(func(ctx context.Context) {
		// A rejected token is unusable everywhere; clear it so the next
		// page load starts unauthenticated instead of retrying it.
		if err := session.SetToken(ctx, ""); err != nil {
			log.Warn("credential cleanup after 401 failed", logger.Error(err))
		}
	})
	session.Initialize(ctx)

	h := &handlers{
		session:  session,
		projects: apiclient.NewProjectService(client),
		tasks:    apiclient.NewTaskService(client),
		log:      log,
	}
	mux := http.NewServeMux()
	h.routes(mux)

	var handler http.Handler = mux
	handler = middleware.RouteGuard()(handler)
	handler = middleware.LoggingWithLogger(log)(handler)
	handler = middleware.RequestID()(handler)

	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
	if err != nil {
		return err
	}

	log.Info("starting server",
		logger.Component("main"),
		logger.Event("startup"),
	)
	return srv.Start(ctx, handler)
}

func newStore(ctx context.Context, cfg appConfig) (credstore.Store, error) {
	switch cfg.CredentialBackend {
	case "memory":
		return credstore.NewMemory(), nil
	case "file":
		return credstore.NewFile(cfg.CredentialFile), nil
	case "redis":
		return credstore.ConnectRedis(ctx, cfg.Redis)
	default:
		return nil, fmt.Errorf("unknown credential backend %q", cfg.CredentialBackend)
	}
}
