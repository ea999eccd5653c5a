package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"qrforge/internal/app/server"
	"qrforge/internal/domain/tier"
)

var tierCmd = &cobra.Command{
	Use:   "tier <owner-id> <free|pro|business>",
	Short: "Set the subscription tier of an owner",
	Long: `Sets the plan an owner is checked against when creating dynamic codes
and folders. Normally the billing system does this.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ownerID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("owner id: %w", err)
		}
		t, err := tier.Parse(args[1])
		if err != nil {
			return err
		}

		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}

		backend, err := server.OpenStorage(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer backend.Close()

		if err := backend.Tiers.SetTier(cmd.Context(), ownerID, t); err != nil {
			return fmt.Errorf("set tier: %w", err)
		}

		limits := tier.LimitsFor(t)
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s is now on %s (folders: %s, dynamic codes: %s)\n",
			color.GreenString("✓"), ownerID, color.CyanString(string(t)),
			formatLimit(limits.Folders), formatLimit(limits.DynamicCodes))
		return nil
	},
}

func formatLimit(n int) string {
	if n == tier.Unlimited {
		return "unlimited"
	}
	return fmt.Sprint(n)
}

func init() {
	addDatabaseFlags(tierCmd)
}
