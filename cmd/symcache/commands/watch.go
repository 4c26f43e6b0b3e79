package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/symcache/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Invalidate the cache whenever the source binary changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			trace, _ := cmd.Flags().GetBool("trace")
			return c.app.Watch(cmd.Context(), app.WatchOptions{
				Settings: settings(cmd),
				Trace:    trace,
			})
		},
	}
	cmd.Flags().Bool("trace", false, "Log a line for every fingerprint check")
	return cmd
}
