package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/symcache/internal/app"
)

func (c *CLI) newFingerprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Compare the live fingerprint with the stored one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			apply, _ := cmd.Flags().GetBool("apply")
			return c.app.Fingerprint(cmd.Context(), app.FingerprintOptions{
				Settings: settings(cmd),
				Apply:    apply,
			})
		},
	}
	cmd.Flags().Bool("apply", false, "Clear the cache if the fingerprint drifted and store the live fingerprint")
	return cmd
}
