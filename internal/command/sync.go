package command

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run one bidirectional sync against the cloud",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			merged, err := c.services.SyncService.BidirectionalSync(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"sync complete: uploaded %d movies, %d shows, %d people; downloaded %d movies, %d shows, %d people\n",
				len(merged.Movies.ToUpload), len(merged.Shows.ToUpload), len(merged.People.ToUpload),
				len(merged.Movies.ToDownload), len(merged.Shows.ToDownload), len(merged.People.ToDownload),
			)
			return nil
		},
	}
}

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Compare the local and cloud collections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := c.services.SyncService.SyncStatus(cmd.Context())
			if err != nil {
				return err
			}

			if lastSync, err := c.services.SyncService.LastSync(cmd.Context()); err == nil && !lastSync.IsZero() {
				fmt.Fprintf(cmd.OutOrStdout(), "last sync: %s\n", lastSync.Format("2006-01-02 15:04:05 MST"))
			}

			return printJSON(cmd, status)
		},
	}
}

func (c *CLI) newUploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload",
		Short: "Push every local favourite to the cloud",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.services.SyncService.UploadAll(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "upload complete")
			return nil
		},
	}
}

func (c *CLI) newWipeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wipe",
		Short: "Delete every favourite from the local database",
		Long:  "Deletes all local favourites and the last-sync date. Cloud collections are left untouched.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.services.SyncService.Wipe(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "local data wiped")
			return nil
		},
	}
}
