package main

import (
	"github.com/krugerlabs/taskdash/apiclient"
	"github.com/krugerlabs/taskdash/core/credstore"
	"github.com/krugerlabs/taskdash/core/server"
)

type appConfig struct {
	AppName     string `env:"APP_NAME" envDefault:"taskdash"`
	Development bool   `env:"APP_DEVELOPMENT" envDefault:"false"`

	// CredentialBackend selects where session credentials live:
	// "memory", "file", or "redis".
	CredentialBackend string `env:"CREDENTIAL_BACKEND" envDefault:"file"`
	CredentialFile    string `env:"CREDENTIAL_FILE" envDefault:".taskdash/credentials.json"`

	API    apiclient.Config
	Server server.Config
	Redis  credstore.RedisConfig
}
