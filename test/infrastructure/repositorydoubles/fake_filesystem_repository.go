//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"path/filepath"
	"strings"

	"github.com/rios0rios0/reposync/internal/domain/repositories"
)

// FakeFilesystemRepository is an in-memory repositories.FilesystemRepository.
// Only mutating calls are recorded in Log.
type FakeFilesystemRepository struct {
	Paths     map[string]bool
	CreateErr error
	DeleteErr error
	Log       *CallLog
}

var _ repositories.FilesystemRepository = (*FakeFilesystemRepository)(nil)

// NewFakeFilesystemRepository creates a fake holding the given paths.
func NewFakeFilesystemRepository(log *CallLog, paths ...string) *FakeFilesystemRepository {
	fs := &FakeFilesystemRepository{Paths: make(map[string]bool), Log: log}
	for _, p := range paths {
		fs.Paths[filepath.Clean(p)] = true
	}
	return fs
}

func (f *FakeFilesystemRepository) Exists(path string) bool {
	return f.Paths[filepath.Clean(path)]
}

func (f *FakeFilesystemRepository) CreateDirectory(path string) error {
	f.Log.Record("mkdir %s", path)
	if f.CreateErr != nil {
		return f.CreateErr
	}
	f.Paths[filepath.Clean(path)] = true
	return nil
}

func (f *FakeFilesystemRepository) DeleteTree(path string) error {
	f.Log.Record("delete %s", path)
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	root := filepath.Clean(path)
	for p := range f.Paths {
		if p == root || strings.HasPrefix(p, root+string(filepath.Separator)) {
			delete(f.Paths, p)
		}
	}
	return nil
}
