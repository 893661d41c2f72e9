package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/reposync/internal/domain/repositories"
	fsRepo "github.com/rios0rios0/reposync/internal/infrastructure/repositories/billyfs"
	cliRepo "github.com/rios0rios0/reposync/internal/infrastructure/repositories/gitcli"
	goGitRepo "github.com/rios0rios0/reposync/internal/infrastructure/repositories/gogit"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register version control registry with all backend factories
	if err := container.Provide(func() *VersionControlRegistry {
		reg := NewVersionControlRegistry()
		reg.Register(goGitRepo.BackendName, goGitRepo.NewVersionControlRepository)
		reg.Register(cliRepo.BackendName, cliRepo.NewVersionControlRepository)
		return reg
	}); err != nil {
		return err
	}

	// Register the OS filesystem
	if err := container.Provide(func() domainRepos.FilesystemRepository {
		return fsRepo.NewFilesystemRepository()
	}); err != nil {
		return err
	}

	return nil
}
