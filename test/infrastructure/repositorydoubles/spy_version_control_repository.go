//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/reposync/internal/domain/entities"
	"github.com/rios0rios0/reposync/internal/domain/repositories"
)

// SpyVersionControlRepository implements repositories.VersionControlRepository
// as a configurable spy. Every per-path map is keyed by the repository path.
type SpyVersionControlRepository struct {
	// --- identity ---
	BackendName string

	// --- configured results ---
	Statuses   map[string]entities.TreeStatus
	StatusErrs map[string]error
	CloneErrs  map[string]error
	SwitchErrs map[string]error
	PullErrs   map[string]error

	// --- recorded calls ---
	Log *CallLog
}

var _ repositories.VersionControlRepository = (*SpyVersionControlRepository)(nil)

func (s *SpyVersionControlRepository) Name() string {
	if s.BackendName == "" {
		return "spy"
	}
	return s.BackendName
}

func (s *SpyVersionControlRepository) Clone(_ context.Context, remoteURL, path string) error {
	s.Log.Record("clone %s %s", remoteURL, path)
	return s.CloneErrs[path]
}

func (s *SpyVersionControlRepository) WorkingTreeStatus(
	_ context.Context, path string,
) (entities.TreeStatus, error) {
	s.Log.Record("status %s", path)
	if err, ok := s.StatusErrs[path]; ok {
		return entities.TreeClean, err
	}
	return s.Statuses[path], nil
}

func (s *SpyVersionControlRepository) SwitchBranch(_ context.Context, path, branch string) error {
	s.Log.Record("switch %s %s", path, branch)
	return s.SwitchErrs[path]
}

func (s *SpyVersionControlRepository) Pull(_ context.Context, path string) error {
	s.Log.Record("pull %s", path)
	return s.PullErrs[path]
}
