package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/symcache/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Clear the cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			all, _ := cmd.Flags().GetBool("all")
			return c.app.Clean(cmd.Context(), app.CleanOptions{
				Settings: settings(cmd),
				All:      all,
			})
		},
	}
	cmd.Flags().BoolP("all", "a", false, "Remove the store directory, every cache name included")
	return cmd
}
