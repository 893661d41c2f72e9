package main

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/reposync/internal"
	"github.com/rios0rios0/reposync/internal/infrastructure/controllers"
)

// injectApp builds the DIG container once and resolves the application
// context plus the sync controller used by the root command.
func injectApp() (*internal.AppInternal, *controllers.SyncController) {
	container := dig.New()

	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	var appInternal *internal.AppInternal
	var syncController *controllers.SyncController
	if err := container.Invoke(func(ai *internal.AppInternal, sc *controllers.SyncController) {
		appInternal = ai
		syncController = sc
	}); err != nil {
		panic(err)
	}

	return appInternal, syncController
}
