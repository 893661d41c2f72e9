package gitcli

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/reposync/internal/domain/entities"
	"github.com/rios0rios0/reposync/internal/domain/repositories"
)

// BackendName is the registry key of this backend.
const BackendName = "cli"

// VersionControlRepository implements repositories.VersionControlRepository
// by running the git binary. Each command runs with its directory set to the
// repository path.
type VersionControlRepository struct {
	binary string
}

// NewVersionControlRepository creates the git CLI backend.
func NewVersionControlRepository() repositories.VersionControlRepository {
	return &VersionControlRepository{binary: "git"}
}

func (it *VersionControlRepository) Name() string { return BackendName }

func (it *VersionControlRepository) Clone(ctx context.Context, remoteURL, path string) error {
	_, err := it.run(ctx, "", "clone", remoteURL, path)
	return err
}

// WorkingTreeStatus compares the index and the working tree against HEAD.
func (it *VersionControlRepository) WorkingTreeStatus(
	ctx context.Context,
	path string,
) (entities.TreeStatus, error) {
	// stat-only differences would otherwise show up in diff-index
	if _, err := it.run(ctx, path, "update-index", "-q", "--refresh"); err != nil {
		logger.Debugf("[cli] index refresh failed in %s: %v", path, err)
	}

	out, err := it.run(ctx, path, "diff-index", "HEAD")
	if err != nil {
		return entities.TreeClean, err
	}
	if strings.TrimSpace(out) != "" {
		return entities.TreeDirty, nil
	}
	return entities.TreeClean, nil
}

func (it *VersionControlRepository) SwitchBranch(ctx context.Context, path, branch string) error {
	_, err := it.run(ctx, path, "checkout", branch)
	return err
}

func (it *VersionControlRepository) Pull(ctx context.Context, path string) error {
	_, err := it.run(ctx, path, "pull")
	return err
}

func (it *VersionControlRepository) run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, it.binary, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debugf("[cli] %s: git %s", dir, strings.Join(args, " "))
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf(
			"git %s: %w: %s",
			strings.Join(args, " "), err, strings.TrimSpace(stderr.String()),
		)
	}
	return stdout.String(), nil
}
