// Package cli implements the inspoctl command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"inspovault/internal/client"
	"inspovault/internal/logging"
)

type commandContext struct {
	correlationID uuid.UUID
	startedAt     time.Time
}

type commandContextKey struct{}

// app holds state shared by every command of one invocation.
type app struct {
	serverURL string
	verbose   bool

	client *client.Client
	logger *slog.Logger
	out    io.Writer
}

// NewRootCmd builds the inspoctl command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "inspoctl",
		Short: "inspoctl - manage the inspiration vault",
		Long: `inspoctl talks to a running inspovault server.

It lists and filters saved inspiration, toggles items as used,
manages collections and shared items, and shows notifications.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "warn"
			if a.verbose {
				level = "debug"
			}
			a.logger = logging.New(cmd.ErrOrStderr(), level)
			a.client = client.New(a.serverURL)
			a.out = cmd.OutOrStdout()

			info := commandContext{
				correlationID: uuid.New(),
				startedAt:     time.Now(),
			}
			cmd.SetContext(context.WithValue(cmd.Context(), commandContextKey{}, info))
			a.logger.Debug("command start",
				"command", cmd.CommandPath(),
				"server", a.serverURL,
				"correlation_id", info.correlationID.String(),
			)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			info, ok := cmd.Context().Value(commandContextKey{}).(commandContext)
			if !ok {
				return
			}
			a.logger.Debug("command end",
				"command", cmd.CommandPath(),
				"correlation_id", info.correlationID.String(),
				"duration_ms", time.Since(info.startedAt).Milliseconds(),
			)
		},
	}

	defaultServer := os.Getenv("INSPOVAULT_SERVER")
	if defaultServer == "" {
		defaultServer = "http://localhost:3000"
	}
	root.PersistentFlags().StringVarP(&a.serverURL, "server", "s", defaultServer, "inspovault server URL")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		newItemsCmd(a),
		newToggleCmd(a),
		newSaveCmd(a),
		newCollectionsCmd(a),
		newCollectionCmd(a),
		newSharedCmd(a),
		newPermissionCmd(a),
		newNotificationsCmd(a),
	)
	return root
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
