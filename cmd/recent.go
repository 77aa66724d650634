package cmd

import (
	"github.com/spf13/cobra"

	"github.com/winmirror/winmirror/internal/output"
	"github.com/winmirror/winmirror/internal/store"
)

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently launched sessions",
	Long: `List recently launched mirroring sessions, newest first. The args column is
a complete command line: "winmirror view <args>" reopens that session.`,
	RunE: runRecent,
}

func init() {
	rootCmd.AddCommand(recentCmd)
	recentCmd.Flags().Int("limit", 10, "Maximum number of sessions to list")
	recentCmd.Flags().Bool("pretty", false, "Pretty-print output (no-op for YAML)")
}

func runRecent(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	path, err := store.DefaultPath()
	if err != nil {
		return err
	}
	history, err := store.Open(path, log)
	if err != nil {
		return err
	}
	defer history.Close()

	records, err := history.Recent(limit)
	if err != nil {
		return err
	}
	if records == nil {
		records = []store.Record{}
	}

	return output.Print(records)
}
