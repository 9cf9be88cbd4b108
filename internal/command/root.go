// Package command wires the client's command line interface. Every command
// operates through the client services, so the CLI and the background agent
// share the same local-first semantics.
package command

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vpetrenko/reelsync/internal/config"
	"github.com/vpetrenko/reelsync/internal/logger"
	"github.com/vpetrenko/reelsync/internal/service"
)

const AppName = "reelsync"

// CLI holds the dependencies shared by every command.
type CLI struct {
	services *service.ClientServices
	workers  config.ClientWorkers
	logger   *logger.Logger
}

// NewRootCmd builds the root command with every subcommand attached.
func NewRootCmd(services *service.ClientServices, workers config.ClientWorkers, logger *logger.Logger, version string) *cobra.Command {
	cli := &CLI{services: services, workers: workers, logger: logger}

	cmd := &cobra.Command{
		Use:           AppName,
		Short:         "Reelsync - keep local and cloud favourite collections in sync",
		Long:          "Reelsync manages favourite movies, shows, and people in a local database and synchronises them with a per-user cloud collection.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.Version = version
	cmd.SetVersionTemplate(AppName + " version {{.Version}}\n")
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.AddCommand(
		cli.newRegisterCmd(),
		cli.newLoginCmd(),
		cli.newLogoutCmd(),
		cli.newAddCmd(),
		cli.newListCmd(),
		cli.newRemoveCmd(),
		cli.newFriendsCmd(),
		cli.newSyncCmd(),
		cli.newStatusCmd(),
		cli.newUploadCmd(),
		cli.newWipeCmd(),
		cli.newAgentCmd(),
	)

	return cmd
}
