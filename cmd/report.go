package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/linepatch/internal/model"
)

// reportCmd represents the report command.
var reportCmd = newReportCmd()

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <file>",
		Short: "Show a report saved with --report",
		Long:  "Load a YAML report written by a previous run and show the matches it recorded per file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.ShowReport(m.Path(args[0]))
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
