package repositories

import (
	"fmt"
	"sort"

	domainRepos "github.com/rios0rios0/reposync/internal/domain/repositories"
)

// DefaultBackend is the version control backend used when none is selected.
const DefaultBackend = "gogit"

// VersionControlFactory is a constructor function that creates a VersionControlRepository.
type VersionControlFactory func() domainRepos.VersionControlRepository

// VersionControlRegistry manages all registered version control backends.
type VersionControlRegistry struct {
	backends map[string]VersionControlFactory
}

// NewVersionControlRegistry creates an empty backend registry.
func NewVersionControlRegistry() *VersionControlRegistry {
	return &VersionControlRegistry{
		backends: make(map[string]VersionControlFactory),
	}
}

// Register adds a backend factory under the given name (e.g. "gogit").
func (r *VersionControlRegistry) Register(name string, factory VersionControlFactory) {
	r.backends[name] = factory
}

// Get returns a backend instance for the given name. An empty name selects
// DefaultBackend.
func (r *VersionControlRegistry) Get(name string) (domainRepos.VersionControlRepository, error) {
	if name == "" {
		name = DefaultBackend
	}
	factory, ok := r.backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown version control backend: %q", name)
	}
	return factory(), nil
}

// Names returns the sorted list of registered backend names.
func (r *VersionControlRegistry) Names() []string {
	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
