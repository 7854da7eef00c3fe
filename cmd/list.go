package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/linepatch/internal/domain"
	m "github.com/mouse-blink/linepatch/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()
var listParallelFlag int
var listIncludeFlag string

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List trigger matches without writing",
		Long:  "Scan files with the active rules and show how many lines each file would have rewritten.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.List(cmd.Context(), domain.ScanArgs{
				Paths:     parsePaths(args),
				Include:   listIncludeFlag,
				Rules:     m.Path(rulesFlag),
				WholeWord: wholeWordFlag,
				Threads:   listParallelFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&listParallelFlag, "parallel", "p", 1, "number of files scanned concurrently")
	cmd.Flags().StringVar(&listIncludeFlag, "include", "", "only scan files whose base name matches this glob when walking directories")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
