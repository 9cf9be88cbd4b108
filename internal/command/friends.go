package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vpetrenko/reelsync/models"
)

func (c *CLI) newFriendsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "friends",
		Short: "Manage friendships and compare favourite collections",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		c.newFriendsRequestCmd(),
		c.newFriendsListCmd(),
		c.newFriendsAcceptCmd(),
		c.newFriendsRejectCmd(),
		c.newFriendsOverlapCmd(),
	)

	return cmd
}

func (c *CLI) newFriendsRequestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "request <login>",
		Short: "Send a friend request to another user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			friendship, err := c.services.FriendsService.Request(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "friend request sent to %s (%s)\n", args[0], friendship.Status)
			return nil
		},
	}
}

func (c *CLI) newFriendsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List friends and pending requests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			friends, err := c.services.FriendsService.List(cmd.Context())
			if err != nil {
				return err
			}

			if len(friends) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no friends yet")
				return nil
			}

			for _, friend := range friends {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", friend.Login, friend.Status)
			}
			return nil
		},
	}
}

func (c *CLI) newFriendsAcceptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accept <login>",
		Short: "Accept a pending friend request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := c.services.FriendsService.Respond(cmd.Context(), args[0], true); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "you are now friends with %s\n", args[0])
			return nil
		},
	}
}

func (c *CLI) newFriendsRejectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reject <login>",
		Short: "Reject a pending friend request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := c.services.FriendsService.Respond(cmd.Context(), args[0], false); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "friend request from %s rejected\n", args[0])
			return nil
		},
	}
}

func (c *CLI) newFriendsOverlapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overlap <login> <kind>",
		Short: "Show the favourites you and a friend have in common",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			login, kind := args[0], models.Kind(args[1])

			snapshot, err := c.services.FriendsService.Overlap(cmd.Context(), login, kind)
			if err != nil {
				return err
			}

			if snapshot.Total() == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no shared %ss with %s\n", kind, login)
				return nil
			}

			switch kind {
			case models.KindMovie:
				return printJSON(cmd, snapshot.Movies)
			case models.KindShow:
				return printJSON(cmd, snapshot.Shows)
			default:
				return printJSON(cmd, snapshot.People)
			}
		},
	}
}
