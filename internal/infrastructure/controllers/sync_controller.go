package controllers

import (
	"context"
	"fmt"
	"io"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/reposync/internal/domain/commands"
	"github.com/rios0rios0/reposync/internal/domain/entities"
)

const separator = "----------------------------------------------"

// SyncController handles the "sync" subcommand.
type SyncController struct {
	command commands.Sync
}

// NewSyncController creates a new SyncController.
func NewSyncController(command commands.Sync) *SyncController {
	return &SyncController{command: command}
}

// GetBind returns the Cobra command metadata for the sync controller.
func (it *SyncController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "sync [config]",
		Short: "Clone or update every configured repository",
		Long: `Read the settings file and bring every declared repository up to date.

Missing repositories are cloned, directories without git metadata are
recreated, clean checkouts are switched to the default branch and pulled.
Checkouts with uncommitted changes are left untouched and reported as dirty.`,
	}
}

// Execute runs the synchronizer and logs the run report. Only setup errors
// are returned, failed repositories are part of the report.
func (it *SyncController) Execute(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	folders, err := loadFolders(cmd, args)
	if err != nil {
		return err
	}

	report, err := it.command.Execute(ctx, folders, syncOptions(cmd))
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	return logReport(report)
}

// logReport renders the report into the log, each section at the level
// matching its category.
func logReport(report *entities.RunReport) error {
	logger.Info(separator)
	return report.RenderBy(func(category entities.Category) io.Writer {
		return levelWriter{level: levelFor(category)}
	})
}

func levelFor(category entities.Category) logger.Level {
	switch category {
	case entities.Dirty:
		return logger.WarnLevel
	case entities.Failed:
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}
