package cmd

import (
	"github.com/spf13/cobra"

	"github.com/winmirror/winmirror/internal/model"
	"github.com/winmirror/winmirror/internal/output"
	"github.com/winmirror/winmirror/internal/platform"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List open windows",
	Long: `List the open windows of the current desktop with their handle, title,
class, and bounds. The handle is what "winmirror view --windowId=..." takes.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().String("title", "", "Filter windows whose title contains this text")
	listCmd.Flags().String("class", "", "Filter windows whose class contains this text")
	listCmd.Flags().Bool("visible", false, "Only list visible windows")
	listCmd.Flags().Bool("pretty", false, "Pretty-print output (no-op for YAML)")
}

func runList(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	title, _ := cmd.Flags().GetString("title")
	class, _ := cmd.Flags().GetString("class")
	visible, _ := cmd.Flags().GetBool("visible")

	windows, err := provider.Enumerator.ListWindows()
	if err != nil {
		return err
	}

	windows = model.FilterWindows(windows, model.WindowFilter{
		Title:       title,
		Class:       class,
		VisibleOnly: visible,
	})
	if windows == nil {
		windows = []model.Window{}
	}

	return output.Print(windows)
}
