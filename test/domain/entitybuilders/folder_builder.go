//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/reposync/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

const (
	defaultFolderPath = "/work/projects"
	defaultBaseURL    = "https://github.com/acme"
)

// FolderBuilder helps create test folders with a fluent interface.
type FolderBuilder struct {
	*testkit.BaseBuilder
	path    string
	branch  string
	baseURL string
	repos   []string
}

// NewFolderBuilder creates a new folder builder with sensible defaults.
func NewFolderBuilder() *FolderBuilder {
	return &FolderBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		path:        defaultFolderPath,
		branch:      entities.DefaultBranch,
		baseURL:     defaultBaseURL,
	}
}

// WithPath sets the destination folder path.
func (b *FolderBuilder) WithPath(path string) *FolderBuilder {
	b.path = path
	return b
}

// WithBranch sets the default branch.
func (b *FolderBuilder) WithBranch(branch string) *FolderBuilder {
	b.branch = branch
	return b
}

// WithBaseURL sets the base URL the repository remotes derive from.
func (b *FolderBuilder) WithBaseURL(baseURL string) *FolderBuilder {
	b.baseURL = baseURL
	return b
}

// WithRepositories appends repositories by name, in order.
func (b *FolderBuilder) WithRepositories(names ...string) *FolderBuilder {
	b.repos = append(b.repos, names...)
	return b
}

// Build creates the folder (satisfies testkit.Builder interface).
func (b *FolderBuilder) Build() interface{} {
	return b.BuildFolder()
}

// BuildFolder creates the folder with a concrete return type.
func (b *FolderBuilder) BuildFolder() entities.Folder {
	repos := make([]entities.Repository, 0, len(b.repos))
	for _, name := range b.repos {
		repos = append(repos, entities.NewRepository(name, b.baseURL))
	}
	return entities.Folder{
		Path:         b.path,
		Branch:       b.branch,
		Repositories: repos,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *FolderBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.path = defaultFolderPath
	b.branch = entities.DefaultBranch
	b.baseURL = defaultBaseURL
	b.repos = nil
	return b
}

// Clone creates a deep copy of the FolderBuilder.
func (b *FolderBuilder) Clone() testkit.Builder {
	return &FolderBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		path:        b.path,
		branch:      b.branch,
		baseURL:     b.baseURL,
		repos:       append([]string(nil), b.repos...),
	}
}
