package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/reposync/internal/domain/entities"
	"github.com/rios0rios0/reposync/internal/domain/repositories"
)

// StateResolver classifies the on-disk state of a repository into exactly one
// action before anything is mutated.
type StateResolver struct {
	vcs repositories.VersionControlRepository
	fs  repositories.FilesystemRepository
}

// NewStateResolver creates a StateResolver over the given collaborators.
func NewStateResolver(
	vcs repositories.VersionControlRepository,
	fs repositories.FilesystemRepository,
) *StateResolver {
	return &StateResolver{vcs: vcs, fs: fs}
}

// Resolve decides the action for repo inside folder. When the decision is
// ActionSkip the returned outcome is the terminal result for the repository
// (Dirty, or Failed when the status could not be read). A failed status check
// is deliberately treated like a dirty tree: not knowing is unsafe.
func (it *StateResolver) Resolve(
	ctx context.Context,
	folder entities.Folder,
	repo entities.Repository,
) (entities.Action, *entities.Outcome) {
	repoPath := folder.RepositoryPath(repo)

	if !it.fs.Exists(repoPath) {
		return entities.ActionClone, nil
	}

	if !it.fs.Exists(entities.MetadataPath(repoPath)) {
		return entities.ActionRecreateAndClone, nil
	}

	status, err := it.vcs.WorkingTreeStatus(ctx, repoPath)
	if err != nil {
		syncErr := entities.NewStatusError(repo.Name, err)
		logger.Errorf("Error processing %s: %v", repo.Name, err)
		outcome := entities.NewFailedOutcome(syncErr)
		return entities.ActionSkip, &outcome
	}

	if status == entities.TreeDirty {
		logger.Warnf("Contains uncommitted changes %s", repo.Name)
		return entities.ActionSkip, &entities.Outcome{
			Category:   entities.Dirty,
			Repository: repo.Name,
		}
	}

	return entities.ActionUpdate, nil
}
