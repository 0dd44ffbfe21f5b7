package cli

import (
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for pingdash.

To load completions:

Bash:
  $ source <(pingdash completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ pingdash completion bash > /etc/bash_completion.d/pingdash
  # macOS:
  $ pingdash completion bash > $(brew --prefix)/etc/bash_completion.d/pingdash

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  # To load completions for each session, execute once:
  $ pingdash completion zsh > "${fpath[1]}/_pingdash"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ pingdash completion fish | source
  # To load completions for each session, execute once:
  $ pingdash completion fish > ~/.config/fish/completions/pingdash.fish

PowerShell:
  PS> pingdash completion powershell | Out-String | Invoke-Expression
  # To load completions for every new session, run:
  PS> pingdash completion powershell > pingdash.ps1
  # and source this file from your PowerShell profile.
`,
	DisableFlagsInUseLine: true,
	Annotations:           map[string]string{skipApp: "true"},
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletionV2(cmd.OutOrStdout(), true)
		case "zsh":
			return rootCmd.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return rootCmd.GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
