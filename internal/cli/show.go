package cli

import (
	"context"

	"github.com/spf13/cobra"

	"pingdash/internal/report"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Acquire once and print the dashboard as text",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := appInstance.Refresh(context.Background())
		if err != nil {
			return err
		}
		return report.WriteText(cmd.OutOrStdout(), snap)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
