package commands

import (
	"context"
	"fmt"

	"github.com/rios0rios0/reposync/internal/domain/entities"
	"github.com/rios0rios0/reposync/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/reposync/internal/infrastructure/repositories"
)

// Plan is the interface for the plan command (dry run).
type Plan interface {
	Execute(ctx context.Context, folders []entities.Folder, opts SyncOptions) ([]PlannedAction, error)
}

// PlannedAction is the resolved action for one repository.
type PlannedAction struct {
	Folder     string
	Repository string
	Action     entities.Action
	Outcome    *entities.Outcome // Set when Action is ActionSkip
}

func (p PlannedAction) String() string {
	if p.Outcome != nil {
		return fmt.Sprintf("%s/%s: %s (%s)", p.Folder, p.Repository, p.Action, p.Outcome.Category)
	}
	return fmt.Sprintf("%s/%s: %s", p.Folder, p.Repository, p.Action)
}

// PlanCommand resolves the action of every repository without applying it.
// The working tree status is still read.
type PlanCommand struct {
	vcsRegistry *infraRepos.VersionControlRegistry
	fs          repositories.FilesystemRepository
}

// NewPlanCommand creates a new PlanCommand.
func NewPlanCommand(
	vcsRegistry *infraRepos.VersionControlRegistry,
	fs repositories.FilesystemRepository,
) *PlanCommand {
	return &PlanCommand{vcsRegistry: vcsRegistry, fs: fs}
}

// Execute returns one PlannedAction per repository in declaration order.
func (it *PlanCommand) Execute(
	ctx context.Context,
	folders []entities.Folder,
	opts SyncOptions,
) ([]PlannedAction, error) {
	vcs, err := it.vcsRegistry.Get(opts.Backend)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize version control backend: %w", err)
	}

	resolver := NewStateResolver(vcs, it.fs)
	var plan []PlannedAction
	for _, folder := range folders {
		for _, repo := range folder.Repositories {
			action, outcome := resolver.Resolve(ctx, folder, repo)
			plan = append(plan, PlannedAction{
				Folder:     folder.Path,
				Repository: repo.Name,
				Action:     action,
				Outcome:    outcome,
			})
		}
	}
	return plan, nil
}
