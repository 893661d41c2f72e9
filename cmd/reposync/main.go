package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/reposync/internal"
	"github.com/rios0rios0/reposync/internal/infrastructure/controllers"
)

const version = "5.0"

func buildRootCommand(syncController *controllers.SyncController) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:     "reposync [config]",
		Short:   "Batch git repository synchronizer",
		Version: version,
		Long: `Keeps a declared set of git repositories, grouped by destination folder,
cloned and up to date. Checkouts with uncommitted changes are never touched.

Usage modes:
  reposync repos.yaml        Synchronize every repository declared in repos.yaml
  reposync sync [config]     Same as above, config is auto-detected when omitted
  reposync plan [config]     Show the action each repository would get`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(command *cobra.Command, args []string) error {
			configPath, _ := command.Flags().GetString("config")
			if len(args) == 0 && configPath == "" {
				return command.Help()
			}
			return syncController.Execute(command, args)
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to settings file (default: auto-detect)")
	cmd.PersistentFlags().String("backend", "",
		"Version control backend: gogit (default) or cli")
	cmd.PersistentFlags().String("branch", "",
		"Branch checked out before pulling, overrides the settings file (default master)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.MaximumNArgs(1),
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}

		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	logger.Infof("Repos sync %s", version)

	appContext, syncController := injectApp()
	cobraRoot := buildRootCommand(syncController)
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'reposync': %s", err)
	}
}
