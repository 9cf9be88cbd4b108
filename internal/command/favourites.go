package command

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vpetrenko/reelsync/models"
)

func (c *CLI) newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <kind> <json-document>",
		Short: "Add a favourite movie, show, or person",
		Long:  "Adds one favourite to the local database and, when logged in, to the cloud collection. The document is the catalog JSON of the item; it must carry a positive \"id\" field.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := models.Kind(args[0])
			doc := []byte(args[1])
			ctx := cmd.Context()

			switch kind {
			case models.KindMovie:
				var movie models.FavouriteMovie
				if err := json.Unmarshal(doc, &movie); err != nil {
					return fmt.Errorf("parse movie document: %w", err)
				}
				if err := c.services.FavouritesService.AddMovie(ctx, movie); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "added movie %d: %s\n", movie.ID, movie.Title)

			case models.KindShow:
				var show models.FavouriteShow
				if err := json.Unmarshal(doc, &show); err != nil {
					return fmt.Errorf("parse show document: %w", err)
				}
				if err := c.services.FavouritesService.AddShow(ctx, show); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "added show %d: %s\n", show.ID, show.Name)

			case models.KindPerson:
				var person models.FavouritePerson
				if err := json.Unmarshal(doc, &person); err != nil {
					return fmt.Errorf("parse person document: %w", err)
				}
				if err := c.services.FavouritesService.AddPerson(ctx, person); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "added person %d: %s\n", person.ID, person.Name)

			default:
				return fmt.Errorf("unknown kind %q: want movie, show, or person", kind)
			}

			return nil
		},
	}
}

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <kind>",
		Short: "List local favourites of one kind",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := models.Kind(args[0])
			ctx := cmd.Context()

			var items any
			switch kind {
			case models.KindMovie:
				movies, err := c.services.FavouritesService.ListMovies(ctx)
				if err != nil {
					return err
				}
				items = movies
			case models.KindShow:
				shows, err := c.services.FavouritesService.ListShows(ctx)
				if err != nil {
					return err
				}
				items = shows
			case models.KindPerson:
				people, err := c.services.FavouritesService.ListPeople(ctx)
				if err != nil {
					return err
				}
				items = people
			default:
				return fmt.Errorf("unknown kind %q: want movie, show, or person", kind)
			}

			return printJSON(cmd, items)
		},
	}
}

func (c *CLI) newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <kind> <id>",
		Short: "Remove one favourite by its catalog id",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := models.Kind(args[0])
			ctx := cmd.Context()

			id, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[1], err)
			}

			var removed bool
			switch kind {
			case models.KindMovie:
				removed, err = c.services.FavouritesService.RemoveMovie(ctx, id)
			case models.KindShow:
				removed, err = c.services.FavouritesService.RemoveShow(ctx, id)
			case models.KindPerson:
				removed, err = c.services.FavouritesService.RemovePerson(ctx, id)
			default:
				return fmt.Errorf("unknown kind %q: want movie, show, or person", kind)
			}
			if err != nil {
				return err
			}

			if removed {
				fmt.Fprintf(cmd.OutOrStdout(), "removed %s %d\n", kind, id)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d was not in the collection\n", kind, id)
			}
			return nil
		},
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
