package billyfs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

const directoryPerm os.FileMode = 0o755

// FilesystemRepository implements repositories.FilesystemRepository on top of
// a billy filesystem rooted at "/". Relative paths are made absolute against
// the process working directory first.
type FilesystemRepository struct {
	fs billy.Filesystem
}

// NewFilesystemRepository creates a FilesystemRepository over the OS filesystem.
func NewFilesystemRepository() *FilesystemRepository {
	return &FilesystemRepository{fs: osfs.New(string(filepath.Separator))}
}

func (it *FilesystemRepository) Exists(path string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	_, err = it.fs.Stat(absPath)
	return err == nil
}

func (it *FilesystemRepository) CreateDirectory(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}
	if err = it.fs.MkdirAll(absPath, directoryPerm); err != nil {
		return fmt.Errorf("failed to create %s: %w", absPath, err)
	}
	return nil
}

func (it *FilesystemRepository) DeleteTree(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}
	if err = util.RemoveAll(it.fs, absPath); err != nil {
		return fmt.Errorf("failed to delete %s: %w", absPath, err)
	}
	return nil
}
