package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/reposync/internal/domain/entities"
	"github.com/rios0rios0/reposync/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/reposync/internal/infrastructure/repositories"
)

// Sync is the interface for the sync command.
type Sync interface {
	Execute(ctx context.Context, folders []entities.Folder, opts SyncOptions) (*entities.RunReport, error)
}

// SyncOptions holds runtime options for a single run.
type SyncOptions struct {
	Backend string // Version control backend registered in the registry
	Verbose bool
}

// SyncCommand walks every folder and repository in declaration order,
// resolves the action for each one, applies it and records the outcome.
type SyncCommand struct {
	vcsRegistry *infraRepos.VersionControlRegistry
	fs          repositories.FilesystemRepository
}

// NewSyncCommand creates a new SyncCommand.
func NewSyncCommand(
	vcsRegistry *infraRepos.VersionControlRegistry,
	fs repositories.FilesystemRepository,
) *SyncCommand {
	return &SyncCommand{
		vcsRegistry: vcsRegistry,
		fs:          fs,
	}
}

// Execute synchronizes every repository and returns the run report. The only
// error is a setup error; per-repository failures end up in the report.
func (it *SyncCommand) Execute(
	ctx context.Context,
	folders []entities.Folder,
	opts SyncOptions,
) (*entities.RunReport, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	vcs, err := it.vcsRegistry.Get(opts.Backend)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize version control backend: %w", err)
	}
	logger.Debugf("Using version control backend: %s", vcs.Name())

	report := entities.NewRunReport()
	runner := &syncRun{
		resolver: NewStateResolver(vcs, it.fs),
		vcs:      vcs,
		fs:       it.fs,
		report:   report,
	}

	for i, folder := range folders {
		logger.Infof("Processing [%d/%d] %s", i+1, len(folders), folder.Path)
		for j, repo := range folder.Repositories {
			logger.Infof(
				"Processing [%d/%d]:(%d/%d) %s",
				i+1, len(folders), j+1, len(folder.Repositories), repo.Name,
			)
			runner.process(ctx, folder, repo)
		}
	}

	logger.Debugf("Run complete: %d repositories processed", report.Total())
	return report, nil
}

// syncRun holds the collaborators and the report of a single run.
type syncRun struct {
	resolver *StateResolver
	vcs      repositories.VersionControlRepository
	fs       repositories.FilesystemRepository
	report   *entities.RunReport
}

// process records exactly one outcome for repo.
func (it *syncRun) process(ctx context.Context, folder entities.Folder, repo entities.Repository) {
	action, outcome := it.resolver.Resolve(ctx, folder, repo)
	logger.Debugf("Resolved %s to %s", repo.Name, action)

	switch action {
	case entities.ActionClone:
		it.report.Record(it.clone(ctx, folder, repo))
	case entities.ActionRecreateAndClone:
		it.report.Record(it.recreate(ctx, folder, repo))
	case entities.ActionUpdate:
		it.report.Record(it.update(ctx, folder, repo))
	case entities.ActionSkip:
		it.report.Record(*outcome)
	}
}

func (it *syncRun) clone(ctx context.Context, folder entities.Folder, repo entities.Repository) entities.Outcome {
	if err := it.fs.CreateDirectory(folder.Path); err != nil {
		return it.failed(entities.NewCloneError(repo.Name, err))
	}

	logger.Infof("Cloning %s ...", repo.RemoteURL)
	if err := it.vcs.Clone(ctx, repo.RemoteURL, folder.RepositoryPath(repo)); err != nil {
		return it.failed(entities.NewCloneError(repo.Name, err))
	}

	logger.Infof("Clone success %s", repo.Name)
	return entities.Outcome{Category: entities.Cloned, Repository: repo.Name}
}

func (it *syncRun) recreate(ctx context.Context, folder entities.Folder, repo entities.Repository) entities.Outcome {
	repoPath := folder.RepositoryPath(repo)
	logger.Warnf("Recreating %s: %s is not a git checkout", repo.Name, repoPath)

	if err := it.fs.DeleteTree(repoPath); err != nil {
		return it.failed(entities.NewCloneError(repo.Name, fmt.Errorf("failed to delete %s: %w", repoPath, err)))
	}

	return it.clone(ctx, folder, repo)
}

func (it *syncRun) update(ctx context.Context, folder entities.Folder, repo entities.Repository) entities.Outcome {
	repoPath := folder.RepositoryPath(repo)

	logger.Infof("Checking out %s for %s", folder.Branch, repo.Name)
	if err := it.vcs.SwitchBranch(ctx, repoPath, folder.Branch); err != nil {
		return it.failed(entities.NewUpdateError(repo.Name, err))
	}

	logger.Infof("Pulling changes for %s", repo.Name)
	if err := it.vcs.Pull(ctx, repoPath); err != nil {
		return it.failed(entities.NewUpdateError(repo.Name, err))
	}

	logger.Infof("Up to date %s", repo.Name)
	return entities.Outcome{Category: entities.Updated, Repository: repo.Name}
}

func (it *syncRun) failed(err *entities.SyncError) entities.Outcome {
	logger.Errorf("Error processing %s: %v", err.Repository, err.Err)
	return entities.NewFailedOutcome(err)
}
