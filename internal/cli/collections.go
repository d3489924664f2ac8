package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"inspovault/internal/form"
	"inspovault/internal/models"
)

func newCollectionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "collections",
		Short: "List collections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			collections, err := a.client.ListCollections(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list collections: %w", err)
			}
			if len(collections) == 0 {
				fmt.Fprintln(a.out, "No collections yet.")
				return nil
			}
			for _, c := range collections {
				printCollection(a, c)
			}
			return nil
		},
	}
}

func printCollection(a *app, c models.Collection) {
	fmt.Fprintf(a.out, "%s  %s (%d items)\n", c.ID, c.Name, c.ItemCount)
	if c.Description != "" {
		fmt.Fprintf(a.out, "   %s\n", c.Description)
	}
	if c.Shared {
		fmt.Fprintf(a.out, "   Shared with %d members\n", c.Members)
	}
}

// newCollectionCmd groups the commands acting on a single collection.
func newCollectionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collection",
		Short: "Create, share and fill collections",
	}
	cmd.AddCommand(
		newCollectionCreateCmd(a),
		newCollectionShareCmd(a),
		newCollectionAddCmd(a),
	)
	return cmd
}

func newCollectionCreateCmd(a *app) *cobra.Command {
	var dialog form.CollectionDialog

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dialog.Open()
			dialog.Name = args[0]

			c, err := dialog.Save(func(name, description string) (*models.Collection, error) {
				return a.client.CreateCollection(cmd.Context(), name, description)
			})
			if err != nil {
				return fmt.Errorf("failed to create collection: %w", err)
			}
			fmt.Fprintf(a.out, "Collection %q created (ID: %s)\n", c.Name, c.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&dialog.Description, "description", "d", "", "collection description")
	return cmd
}

func newCollectionShareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "share <collection-id>",
		Short: "Share a collection with one more member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client.ShareCollection(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to share collection %s: %w", args[0], err)
			}
			fmt.Fprintf(a.out, "Collection %q shared with %d members.\n", c.Name, c.Members)
			return nil
		},
	}
}

func newCollectionAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <collection-id> <item-id>",
		Short: "Add an item to a collection",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client.AddItemToCollection(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to add item %s to collection %s: %w", args[1], args[0], err)
			}
			fmt.Fprintf(a.out, "Collection %q now has %d items.\n", c.Name, c.ItemCount)
			return nil
		},
	}
}
