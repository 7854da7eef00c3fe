// Package cmd provides the root command and CLI setup for linepatch.
package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/linepatch/internal/adapter"
	"github.com/mouse-blink/linepatch/internal/controller"
	"github.com/mouse-blink/linepatch/internal/domain"
	m "github.com/mouse-blink/linepatch/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var ruleStore adapter.RuleStore
var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI
var logLevel = new(slog.LevelVar)

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	ruleStore = adapter.NewRuleStore()
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(
		fsAdapter,
		ruleStore,
		reportStore,
		ui,
		slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})),
	)
}

var rulesFlag string
var wholeWordFlag bool
var verboseFlag bool

var dryRunFlag bool
var truncateFlag bool
var parallelFlag int
var includeFlag string
var checkUnchangedFlag bool
var skipUnchangedFlag bool
var reportFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linepatch [paths...]",
		Short: "Rewrite lines that contain trigger strings",
		Long: `Linepatch rewrites text files line by line. Every line that contains one of
a rule's trigger strings has each occurrence of the rule's old text replaced
with its new text, and "line number: N" is printed for every trigger hit.

Without --rules the built-in rule widens the d_identifier length parameter in
libiberty's demangler ("int" -> "long"). Without paths ` + string(m.DefaultTarget) + `
is patched.

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./src/...      recursively scan src directory
  - a.c b.c        patch several files

Files are replaced atomically. --truncate restores the in-place write, which
loses the file's content if the write fails.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verboseFlag {
				logLevel.Set(slog.LevelDebug)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := m.WriteAtomic
			if truncateFlag {
				mode = m.WriteTruncate
			}

			return workflow.Patch(cmd.Context(), domain.PatchArgs{
				ScanArgs: domain.ScanArgs{
					Paths:     parsePaths(args),
					Include:   includeFlag,
					Rules:     m.Path(rulesFlag),
					WholeWord: wholeWordFlag,
					Threads:   parallelFlag,
				},
				Mode:           mode,
				DryRun:         dryRunFlag,
				CheckUnchanged: checkUnchangedFlag,
				SkipUnchanged:  skipUnchangedFlag,
				Report:         m.Path(reportFlag),
			})
		},
	}
	cmd.PersistentFlags().StringVarP(&rulesFlag, "rules", "r", "", "YAML rule file (default: built-in demangler rule)")
	cmd.PersistentFlags().BoolVarP(&wholeWordFlag, "whole-word", "w", false, "replace only occurrences not embedded in an identifier")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log progress to stderr")

	cmd.Flags().BoolVarP(&dryRunFlag, "dry-run", "n", false, "print a unified diff instead of writing files")
	cmd.Flags().BoolVar(&truncateFlag, "truncate", false, "truncate and write in place instead of replacing atomically")
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of files processed concurrently")
	cmd.Flags().StringVar(&includeFlag, "include", "", "only patch files whose base name matches this glob when walking directories")
	cmd.Flags().BoolVar(&checkUnchangedFlag, "check-unchanged", false, "fail if a file changed on disk between read and write")
	cmd.Flags().BoolVar(&skipUnchangedFlag, "skip-unchanged", false, "do not rewrite files without matches")
	cmd.Flags().StringVar(&reportFlag, "report", "", "write a YAML run report to this path")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
