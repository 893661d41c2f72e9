package entities

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MetadataDir is the directory that marks a valid git checkout.
const MetadataDir = ".git"

// Repository is a single remote repository to be kept in sync locally.
type Repository struct {
	Name      string // Directory name inside the destination folder
	RemoteURL string // Clone URL, always "{base}/{name}.git"
}

// NewRepository builds a Repository deriving its remote URL from the base URL.
func NewRepository(name, baseURL string) Repository {
	return Repository{
		Name:      name,
		RemoteURL: fmt.Sprintf("%s/%s.git", strings.TrimSuffix(baseURL, "/"), name),
	}
}

// Folder groups the repositories that live under the same destination path.
type Folder struct {
	Path         string
	Branch       string // Default line checked out before pulling
	Repositories []Repository
}

// RepositoryPath returns the local checkout path of repo inside the folder.
func (f Folder) RepositoryPath(repo Repository) string {
	return filepath.Join(f.Path, repo.Name)
}

// MetadataPath returns the VCS metadata directory inside a checkout.
func MetadataPath(repoPath string) string {
	return filepath.Join(repoPath, MetadataDir)
}
