package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/winmirror/winmirror/internal/logger"
	"github.com/winmirror/winmirror/internal/output"
	"github.com/winmirror/winmirror/internal/version"
)

// log is the process-wide logger, configured by the root persistent flags
// before any subcommand runs.
var log zerolog.Logger

var rootCmd = &cobra.Command{
	Use:   "winmirror",
	Short: "Mirror a window's live contents in a small always-on-top viewer",
	Long: `winmirror shows a live thumbnail of any open window in a small always-on-top
viewer. A running viewer can be duplicated as a new independent process, and
a viewer can be launched pre-configured via command-line arguments.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-file", "", "Also log to a rotating file at this path")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Use the root persistent flags directly to avoid conflicts with
		// subcommand local flags.
		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		if prettyFlag := cmd.Flags().Lookup("pretty"); prettyFlag != nil {
			if pretty, err := cmd.Flags().GetBool("pretty"); err == nil && pretty {
				output.PrettyOutput = true
			}
		}

		level, _ := rootCmd.PersistentFlags().GetString("log-level")
		file, _ := rootCmd.PersistentFlags().GetString("log-file")
		log = logger.New(logger.Options{
			Level: level,
			File:  file,
			// A spawned viewer runs detached from any terminal; console
			// output would go nowhere.
			Console: term.IsTerminal(int(os.Stderr.Fd())),
		})
		return nil
	}
}
