package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/symcache/internal/app"
)

func (c *CLI) newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show the stored fingerprint and cache entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputMode, _ := cmd.Flags().GetString("output")
			jsonOut, _ := cmd.Flags().GetBool("json")
			ci, _ := cmd.Flags().GetBool("ci")

			// If --ci is set, override output to "linear"
			if ci {
				outputMode = "linear"
			}

			return c.app.Inspect(cmd.Context(), app.InspectOptions{
				Settings:   settings(cmd),
				OutputMode: outputMode,
				JSON:       jsonOut,
			})
		},
	}
	cmd.Flags().StringP("output", "o", "auto", "Output mode: auto, tui, or linear")
	cmd.Flags().Bool("ci", false, "Use linear output (shorthand for --output=linear)")
	cmd.Flags().Bool("json", false, "Write the snapshot as JSON")
	return cmd
}
