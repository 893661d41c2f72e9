package gogit

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	gitInfra "github.com/rios0rios0/gitforge/pkg/git/infrastructure"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/reposync/internal/domain/entities"
	"github.com/rios0rios0/reposync/internal/domain/repositories"
)

const (
	// BackendName is the registry key of this backend.
	BackendName = "gogit"

	remoteName = "origin"
)

// VersionControlRepository implements repositories.VersionControlRepository
// in-process with go-git.
type VersionControlRepository struct{}

// NewVersionControlRepository creates the go-git backend.
func NewVersionControlRepository() repositories.VersionControlRepository {
	return &VersionControlRepository{}
}

func (it *VersionControlRepository) Name() string { return BackendName }

// Clone clones remoteURL into path.
func (it *VersionControlRepository) Clone(ctx context.Context, remoteURL, path string) error {
	_, err := git.PlainCloneContext(ctx, path, false, &git.CloneOptions{
		URL:        remoteURL,
		RemoteName: remoteName,
	})
	if err != nil {
		return fmt.Errorf("failed to clone %s: %w", remoteURL, err)
	}
	return nil
}

// WorkingTreeStatus reports TreeDirty when any tracked file differs from HEAD,
// either staged or not. Untracked files are ignored, like `git diff-index HEAD`.
func (it *VersionControlRepository) WorkingTreeStatus(
	_ context.Context,
	path string,
) (entities.TreeStatus, error) {
	_, worktree, err := open(path)
	if err != nil {
		return entities.TreeClean, err
	}

	status, err := worktree.Status()
	if err != nil {
		return entities.TreeClean, fmt.Errorf("failed to read status: %w", err)
	}

	for file, fileStatus := range status {
		if fileStatus.Staging == git.Untracked && fileStatus.Worktree == git.Untracked {
			continue
		}
		if fileStatus.Staging != git.Unmodified || fileStatus.Worktree != git.Unmodified {
			logger.Debugf("[gogit] %s has changes in %s", path, file)
			return entities.TreeDirty, nil
		}
	}

	return entities.TreeClean, nil
}

// SwitchBranch checks out branch. When only the remote tracking branch
// exists, a local tracking branch is created from it.
func (it *VersionControlRepository) SwitchBranch(_ context.Context, path, branch string) error {
	repo, worktree, err := open(path)
	if err != nil {
		return err
	}

	branchRef := plumbing.NewBranchReferenceName(branch)
	err = gitInfra.CheckoutBranch(worktree, branch)
	if err == nil {
		return nil
	}
	if !errors.Is(err, plumbing.ErrReferenceNotFound) && !errors.Is(err, git.ErrBranchNotFound) {
		return fmt.Errorf("failed to checkout %s: %w", branch, err)
	}

	remoteRef, refErr := repo.Reference(plumbing.NewRemoteReferenceName(remoteName, branch), true)
	if refErr != nil {
		return fmt.Errorf("failed to checkout %s: branch not found locally or on %s", branch, remoteName)
	}

	err = worktree.Checkout(&git.CheckoutOptions{
		Branch: branchRef,
		Hash:   remoteRef.Hash(),
		Create: true,
	})
	if err != nil {
		return fmt.Errorf("failed to checkout %s: %w", branch, err)
	}

	if cfgErr := repo.CreateBranch(&config.Branch{
		Name:   branch,
		Remote: remoteName,
		Merge:  branchRef,
	}); cfgErr != nil && !errors.Is(cfgErr, git.ErrBranchExists) {
		return fmt.Errorf("failed to track %s/%s: %w", remoteName, branch, cfgErr)
	}

	return nil
}

// Pull fetches from origin and fast-forwards the current branch.
func (it *VersionControlRepository) Pull(ctx context.Context, path string) error {
	repo, worktree, err := open(path)
	if err != nil {
		return err
	}

	opts := &git.PullOptions{RemoteName: remoteName}
	if head, headErr := repo.Head(); headErr == nil && head.Name().IsBranch() {
		opts.ReferenceName = head.Name()
	}

	err = worktree.PullContext(ctx, opts)
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("failed to pull: %w", err)
	}
	return nil
}

func open(path string) (*git.Repository, *git.Worktree, error) {
	repo, err := gitInfra.OpenRepo(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open repository %s: %w", path, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get worktree: %w", err)
	}
	return repo, worktree, nil
}
