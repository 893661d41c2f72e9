package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/reposync/internal/domain/commands"
	"github.com/rios0rios0/reposync/internal/domain/entities"
)

// PlanController handles the "plan" subcommand (dry run).
type PlanController struct {
	command commands.Plan
}

// NewPlanController creates a new PlanController.
func NewPlanController(command commands.Plan) *PlanController {
	return &PlanController{command: command}
}

// GetBind returns the Cobra command metadata for the plan controller.
func (it *PlanController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "plan [config]",
		Short: "Show what sync would do without changing anything",
		Long: `Resolve the action of every configured repository (clone, recreate,
update or skip) and print it. Nothing is cloned, deleted or pulled.`,
	}
}

// Execute resolves and logs the plan.
func (it *PlanController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	folders, err := loadFolders(cmd, args)
	if err != nil {
		return err
	}

	plan, err := it.command.Execute(ctx, folders, syncOptions(cmd))
	if err != nil {
		return fmt.Errorf("plan failed: %w", err)
	}

	logger.Info(separator)
	for _, step := range plan {
		logger.Infof("[DRY RUN] %s", step)
	}
	return nil
}
