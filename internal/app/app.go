package app

import "lattice/internal/services/keystore"

// App bundles the services the CLI commands need.
type App struct {
	Keys *keystore.Service
}

func New(keys *keystore.Service) *App {
	return &App{Keys: keys}
}
