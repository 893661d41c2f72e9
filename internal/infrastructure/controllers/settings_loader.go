package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/reposync/internal/domain/commands"
	"github.com/rios0rios0/reposync/internal/domain/entities"
)

// loadFolders resolves the settings file from the positional argument, the
// --config flag or the default locations, in that order.
func loadFolders(cmd *cobra.Command, args []string) ([]entities.Folder, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	if len(args) > 0 {
		cfgPath = args[0]
	}

	if cfgPath == "" {
		var err error
		cfgPath, err = entities.FindConfigFile()
		if err != nil {
			return nil, fmt.Errorf(
				"no config file found: %w\nSpecify one with --config or create reposync.yaml",
				err,
			)
		}
	}

	logger.Infof("Selected file: %s", cfgPath)

	settings, err := entities.NewSettings(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	branch, _ := cmd.Flags().GetString("branch")
	return settings.ToFolders(branch), nil
}

// syncOptions reads the flags shared by every synchronizing controller.
func syncOptions(cmd *cobra.Command) commands.SyncOptions {
	backend, _ := cmd.Flags().GetString("backend")
	verbose, _ := cmd.Flags().GetBool("verbose")
	return commands.SyncOptions{Backend: backend, Verbose: verbose}
}
