package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"inspovault/internal/filter"
	"inspovault/internal/models"
)

func newSharedCmd(a *app) *cobra.Command {
	var (
		search string
		typ    string
	)

	cmd := &cobra.Command{
		Use:   "shared",
		Short: "List items shared with the team",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := filter.ParseSharedType(typ)
			if err != nil {
				return err
			}
			items, err := a.client.ListSharedItems(cmd.Context(), filter.SharedQuery{Search: search, Type: t})
			if err != nil {
				return fmt.Errorf("failed to list shared items: %w", err)
			}
			if len(items) == 0 {
				fmt.Fprintln(a.out, "Nothing shared yet.")
				return nil
			}
			for _, si := range items {
				fmt.Fprintf(a.out, "%s  %s [%s]\n", si.ID, si.Name, si.Type)
				fmt.Fprintf(a.out, "   Shared by %s on %s\n", si.SharedBy.Name, si.DateShared.Format("2006-01-02"))
				fmt.Fprintf(a.out, "   Permission: %s (%s), comments: %d\n", si.Permission, accessSummary(si), si.Comments)
				fmt.Fprintf(a.out, "   Link: %s\n", si.Link)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "q", "", "search by name")
	cmd.Flags().StringVar(&typ, "type", "", "filter by type (all, inspo, collection)")
	return cmd
}

func newPermissionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "permission <shared-item-id> <view|comment|edit>",
		Short:     "Change what the team can do with a shared item",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(models.PermissionView), string(models.PermissionComment), string(models.PermissionEdit)},
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := models.ParsePermission(args[1])
			if err != nil {
				return err
			}
			si, err := a.client.UpdatePermission(cmd.Context(), args[0], level)
			if err != nil {
				return fmt.Errorf("failed to update permission: %w", err)
			}
			fmt.Fprintf(a.out, "Permissions set to %q for %s.\n", si.Permission, si.Name)
			return nil
		},
	}
}

func accessSummary(si models.SharedItem) string {
	switch {
	case si.CanEdit():
		return "can edit"
	case si.CanComment():
		return "can comment"
	default:
		return "view only"
	}
}
