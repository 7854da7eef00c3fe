package controller

import (
	"bytes"
	"fmt"
	"io"

	m "github.com/mouse-blink/linepatch/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/diff"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately; there is nothing interactive to wait for.
func (s *SimpleUI) Wait() error { return nil }

// DisplayMatches prints the line number of every match.
func (s *SimpleUI) DisplayMatches(result m.FileResult) {
	for _, match := range result.Matches {
		s.printf("%s\n", matchLine(match))
	}
}

// DisplayDiff prints a unified diff between the original and patched content.
func (s *SimpleUI) DisplayDiff(result m.FileResult) error {
	return writeDiff(s.cmd.OutOrStdout(), result)
}

// DisplayEstimation prints per-file match counts or the scan error.
func (s *SimpleUI) DisplayEstimation(results []m.FileResult, err error) error {
	if err != nil {
		s.printf("scan error: %v\n", err)
		return err
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Matches", "Lines"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	for _, result := range results {
		table.Append([]string{
			string(result.Path),
			fmt.Sprintf("%d", len(result.Matches)),
			formatLines(result.Matches),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(results)),
		fmt.Sprintf("%d", totalMatches(results)),
		"",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayRules prints one row per trigger.
func (s *SimpleUI) DisplayRules(rules m.RuleSet) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Rule", "Trigger", "Replace", "Whole Word"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, rule := range rules.Rules {
		for _, trigger := range rule.Triggers {
			table.Append([]string{
				rule.Name,
				trigger,
				fmt.Sprintf("%q -> %q", rule.Old, rule.New),
				fmt.Sprintf("%t", rule.WholeWord),
			})
		}
	}

	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func writeDiff(w io.Writer, result m.FileResult) error {
	if !result.Changed() {
		return nil
	}

	name := string(result.Path)

	return diff.Text("a/"+name, "b/"+name, string(result.Original), string(result.Patched), w)
}
