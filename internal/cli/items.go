package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"inspovault/internal/filter"
	"inspovault/internal/form"
	"inspovault/internal/models"
	"inspovault/internal/vault"
)

func newItemsCmd(a *app) *cobra.Command {
	var (
		search       string
		status       string
		platform     string
		tag          string
		collectionID string
	)

	cmd := &cobra.Command{
		Use:   "items",
		Short: "List saved inspiration",
		Long: `List saved inspiration with optional filtering.

Examples:
  inspoctl items                       # Everything in the vault
  inspoctl items -q trend              # Search tags, notes and calendar
  inspoctl items --status unused       # Items not used yet
  inspoctl items --platform tiktok     # TikTok items only
  inspoctl items --collection 2        # Items filed under collection 2`,
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := filter.ParseStatus(status)
			if err != nil {
				return err
			}
			p, err := filter.ParsePlatform(platform)
			if err != nil {
				return err
			}

			items, err := a.client.ListItems(cmd.Context(), filter.ItemQuery{
				Search:       search,
				Status:       st,
				Platform:     p,
				Tag:          tag,
				CollectionID: collectionID,
			})
			if err != nil {
				return fmt.Errorf("failed to list items: %w", err)
			}

			if len(items) == 0 {
				fmt.Fprintln(a.out, "No inspiration found.")
				return nil
			}
			fmt.Fprintf(a.out, "Items (%d):\n", len(items))
			fmt.Fprintln(a.out, strings.Repeat("-", 60))
			for _, item := range items {
				printItem(a, item)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "q", "", "search tags, notes and calendar")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (all, used, unused)")
	cmd.Flags().StringVarP(&platform, "platform", "p", "", "filter by platform (tiktok, instagram, youtube, twitter, linkedin, other)")
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "filter by exact tag")
	cmd.Flags().StringVar(&collectionID, "collection", "", "filter by collection ID")
	return cmd
}

func printItem(a *app, item models.InspoItem) {
	mark := "[ ]"
	if item.Used {
		mark = "[x]"
	}
	title := item.Title
	if title == "" {
		title = item.URL
	}
	fmt.Fprintf(a.out, "%s %s (%s)\n", mark, title, item.Platform)
	fmt.Fprintf(a.out, "   ID: %s\n", item.ID)
	fmt.Fprintf(a.out, "   Calendar: %s\n", item.CalendarName())
	if len(item.Tags) > 0 {
		fmt.Fprintf(a.out, "   Tags: #%s\n", strings.Join(item.Tags, " #"))
	}
	if item.Notes != "" {
		fmt.Fprintf(a.out, "   Notes: %s\n", item.Notes)
	}
	fmt.Fprintln(a.out)
}

func newToggleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <item-id>",
		Short: "Mark an item as used, or unmark it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := a.client.ToggleUsed(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to toggle item %s: %w", args[0], err)
			}
			if item.Used {
				fmt.Fprintf(a.out, "Item %s marked as used.\n", item.ID)
			} else {
				fmt.Fprintf(a.out, "Item %s unmarked.\n", item.ID)
			}
			return nil
		},
	}
}

func newSaveCmd(a *app) *cobra.Command {
	var (
		dialog   form.InspoDialog
		platform string
		tags     []string
	)

	cmd := &cobra.Command{
		Use:   "save <url>",
		Short: "Save a new piece of inspiration",
		Long: `Save a URL to the vault under a content calendar.

Examples:
  inspoctl save https://tiktok.com/@user/video/1 --calendar trending
  inspoctl save https://youtu.be/abc -c product-launch -t unboxing -t review`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dialog.Open()
			dialog.URL = args[0]
			if platform != "" {
				p, err := models.ParsePlatform(platform)
				if err != nil {
					return err
				}
				dialog.Platform = p
			}
			for _, t := range tags {
				if _, err := dialog.AddTag(t); err != nil {
					return err
				}
			}

			item, err := dialog.Save(func(in vault.NewInspoItem) (*models.InspoItem, error) {
				return a.client.CreateItem(cmd.Context(), in)
			})
			if err != nil {
				return fmt.Errorf("failed to save inspiration: %w", err)
			}
			fmt.Fprintf(a.out, "Saved %s to %s (ID: %s)\n", item.URL, item.CalendarName(), item.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dialog.Calendar, "calendar", "c", "", "destination calendar (required)")
	cmd.Flags().StringVarP(&platform, "platform", "p", "", "platform, detected from the URL when omitted")
	cmd.Flags().StringVarP(&dialog.Notes, "notes", "n", "", "notes")
	cmd.Flags().StringArrayVarP(&tags, "tag", "t", nil, "tag (repeatable)")
	return cmd
}
