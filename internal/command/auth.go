package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vpetrenko/reelsync/models"
)

func (c *CLI) newRegisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register <login> <password>",
		Short: "Create a new account on the cloud server",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			user := models.User{Login: args[0], Password: args[1]}
			if err := c.services.AuthService.Register(cmd.Context(), user); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "registered as %s\n", user.Login)
			return nil
		},
	}
}

func (c *CLI) newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <login> <password>",
		Short: "Authenticate against the cloud server and run the session sync",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			user := models.User{Login: args[0], Password: args[1]}
			userID, err := c.services.AuthService.Login(cmd.Context(), user)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s (user id %d)\n", user.Login, userID)
			return nil
		},
	}
}

func (c *CLI) newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the session token and wipe the local database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.services.AuthService.Logout(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "logged out, local data wiped")
			return nil
		},
	}
}
