package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newNotificationsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notifications",
		Short:   "Show active notifications",
		Aliases: []string{"toasts"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := a.client.Notifications(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list notifications: %w", err)
			}
			if len(notes) == 0 {
				fmt.Fprintln(a.out, "No notifications.")
				return nil
			}
			for _, n := range notes {
				mark := "*"
				if n.IsDestructive() {
					mark = "!"
				}
				fmt.Fprintf(a.out, "%s %s: %s (expires in %s)\n", mark, n.Title, n.Description,
					time.Until(n.ExpiresAt).Round(time.Second))
				fmt.Fprintf(a.out, "   ID: %s\n", n.ID)
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "dismiss <notification-id>",
		Short: "Dismiss a notification",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.DismissNotification(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to dismiss notification: %w", err)
			}
			fmt.Fprintln(a.out, "Dismissed.")
			return nil
		},
	})
	return cmd
}
