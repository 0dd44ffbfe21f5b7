package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"pingdash/internal/app"
)

var (
	appInstance *app.App
	version     = "dev"
)

// skipApp marks commands that run without loading config or opening the log.
const skipApp = "skip-app"

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pingdash",
	Short: "Local diagnostics and ping results dashboard",
	Long: `pingdash - Local diagnostics and ping results dashboard

  Shows system and network information reported by the local diagnostics
  service, together with the outcome of its last ping batch, and exports
  the ping results to ping_results.xlsx.

  Quick start:
    pingdash dash                 # interactive dashboard, press 'e' to export
    pingdash show                 # print everything once
    pingdash export --export-dir ~/reports

  Diagnostics are written to ~/.cache/pingdash/logs/pingdash.log.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations[skipApp] != "" {
			return nil
		}
		var err error
		appInstance, err = app.New(appOptions(cmd))
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if appInstance != nil {
			return appInstance.Close()
		}
		return nil
	},
}

// appOptions collects the global flags. The console tee stays off for the
// dashboard since it owns the terminal.
func appOptions(cmd *cobra.Command) app.Options {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")
	baseURL, _ := flags.GetString("base-url")
	exportDir, _ := flags.GetString("export-dir")
	logLevel, _ := flags.GetString("log-level")
	verbose, _ := flags.GetBool("verbose")

	var console io.Writer = cmd.ErrOrStderr()
	if cmd == dashCmd {
		console = nil
	}
	return app.Options{
		ConfigPath: configPath,
		BaseURL:    baseURL,
		ExportDir:  exportDir,
		LogLevel:   logLevel,
		Verbose:    verbose,
		Console:    console,
	}
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file path (default ~/.config/pingdash/config.yaml)")
	rootCmd.PersistentFlags().String("base-url", "", "base URL of the local diagnostics service")
	rootCmd.PersistentFlags().String("export-dir", "", "directory that receives ping_results.xlsx")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "copy diagnostics to stderr")

	rootCmd.RegisterFlagCompletionFunc("log-level", completeLogLevels)

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print version information",
	Annotations: map[string]string{skipApp: "true"},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pingdash %s\n", version)
	},
}
