package command

import (
	"github.com/spf13/cobra"

	"github.com/vpetrenko/reelsync/internal/client"
	"github.com/vpetrenko/reelsync/models"
)

func (c *CLI) newAgentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "agent <login> <password>",
		Short: "Run as a background sync agent",
		Long:  "Logs in, runs the session sync, and keeps syncing on an interval until SIGINT or SIGTERM.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			user := models.User{Login: args[0], Password: args[1]}
			if _, err := c.services.AuthService.Login(cmd.Context(), user); err != nil {
				return err
			}

			app, err := client.NewApp(c.services, c.workers, c.logger)
			if err != nil {
				return err
			}

			return app.Run()
		},
	}
}
