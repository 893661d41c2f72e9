package internal

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/reposync/internal/domain/commands"
	"github.com/rios0rios0/reposync/internal/infrastructure/controllers"
	"github.com/rios0rios0/reposync/internal/infrastructure/repositories"
)

// RegisterProviders registers every layer with the DIG container, bottom-up:
// version control and filesystem repositories, then commands, then controllers.
// Settings are not provided here since they depend on the file chosen at runtime.
func RegisterProviders(container *dig.Container) error {
	if err := repositories.RegisterProviders(container); err != nil {
		return err
	}
	if err := commands.RegisterProviders(container); err != nil {
		return err
	}
	if err := controllers.RegisterProviders(container); err != nil {
		return err
	}

	return container.Provide(NewAppInternal)
}
