package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pingdash/internal/tui"
)

var dashCmd = &cobra.Command{
	Use:     "dash",
	Aliases: []string{"tui"},
	Short:   "Open the interactive dashboard",
	Long: `Launch the full-screen dashboard. Data is acquired once at startup;
press 'e' to export the ping results to ping_results.xlsx.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps := tui.Deps{
			Fetcher:  appInstance.Client,
			Store:    appInstance.Store,
			Exporter: appInstance.Exporter,
		}

		p := tui.NewProgram(deps)
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("TUI error: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashCmd)
}
