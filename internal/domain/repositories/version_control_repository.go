package repositories

import (
	"context"

	"github.com/rios0rios0/reposync/internal/domain/entities"
)

// VersionControlRepository abstracts the version control tool used to
// synchronize local checkouts. Every call receives the explicit local path of
// the repository, implementations must never rely on the process working directory.
type VersionControlRepository interface {
	// Name returns the backend identifier (e.g. "gogit", "cli").
	Name() string

	// Clone clones remoteURL into path.
	Clone(ctx context.Context, remoteURL, path string) error

	// WorkingTreeStatus reports whether the checkout at path has uncommitted changes.
	// Untracked files do not make a tree dirty.
	WorkingTreeStatus(ctx context.Context, path string) (entities.TreeStatus, error)

	// SwitchBranch checks out branch in the checkout at path.
	SwitchBranch(ctx context.Context, path, branch string) error

	// Pull brings the current branch of the checkout at path up to date.
	// Being already up to date is not an error.
	Pull(ctx context.Context, path string) error
}
