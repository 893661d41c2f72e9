//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/reposync/internal/domain/commands"
	"github.com/rios0rios0/reposync/internal/domain/entities"
)

// StubPlanCommand is a stub implementation of commands.Plan.
type StubPlanCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Plan             []commands.PlannedAction
	LastFolders      []entities.Folder
	LastOpts         commands.SyncOptions
}

var _ commands.Plan = (*StubPlanCommand)(nil)

func (s *StubPlanCommand) Execute(
	_ context.Context,
	folders []entities.Folder,
	opts commands.SyncOptions,
) ([]commands.PlannedAction, error) {
	s.ExecuteCallCount++
	s.LastFolders = folders
	s.LastOpts = opts
	return s.Plan, s.ExecuteErr
}
