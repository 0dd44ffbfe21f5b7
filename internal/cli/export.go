package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"pingdash/internal/logging"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Acquire once and write ping_results.xlsx",
	Long: `Acquire the ping results once and write them to ping_results.xlsx in the
export directory. An existing file is overwritten.

A write failure is recorded in the diagnostic log and does not change the
exit status.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := appInstance.Refresh(context.Background())
		if err != nil {
			return err
		}

		path, ok := appInstance.Exporter.ExportAndLog(&snap.Pings)
		if !ok {
			fmt.Fprintf(cmd.ErrOrStderr(), "Export failed, see %s/%s\n",
				appInstance.Config.Logging.Dir, logging.FileName)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d successful and %d unsuccessful pings to %s\n",
			len(snap.Pings.SuccessfulPings), len(snap.Pings.UnsuccessfulPings), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
