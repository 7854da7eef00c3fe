package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/linepatch/internal/domain"
	m "github.com/mouse-blink/linepatch/internal/model"
)

// rulesCmd represents the rules command.
var rulesCmd = newRulesCmd()

func newRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Show the active rules",
		Long:  "Show the rules a run would apply: the built-in demangler rule or the contents of --rules.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Rules(domain.RulesArgs{
				Rules:     m.Path(rulesFlag),
				WholeWord: wholeWordFlag,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
