package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// completeLogLevels provides shell completion for --log-level.
func completeLogLevels(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var completions []string
	for _, l := range logLevels {
		if strings.HasPrefix(l, strings.ToLower(toComplete)) {
			completions = append(completions, l)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
