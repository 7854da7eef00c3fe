package domain

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/linepatch/internal/adapter"
	"github.com/mouse-blink/linepatch/internal/controller"
	m "github.com/mouse-blink/linepatch/internal/model"
)

// ErrFileChanged is returned when a target changed on disk between read and write.
var ErrFileChanged = errors.New("file changed since it was read")

// ScanArgs selects targets and rules for a scan.
type ScanArgs struct {
	Paths     []m.Path // empty means m.DefaultTarget
	Include   string
	Rules     m.Path // empty means the built-in rule set
	WholeWord bool
	Threads   int
}

// PatchArgs configures a patch run.
type PatchArgs struct {
	ScanArgs
	Mode           m.WriteMode
	DryRun         bool
	CheckUnchanged bool
	SkipUnchanged  bool
	Report         m.Path
}

// RulesArgs configures rule display.
type RulesArgs struct {
	Rules     m.Path
	WholeWord bool
}

// Workflow defines the operations exposed by the CLI.
type Workflow interface {
	Patch(ctx context.Context, args PatchArgs) error
	List(ctx context.Context, args ScanArgs) error
	Rules(args RulesArgs) error
	ShowReport(path m.Path) error
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	ruleStore   adapter.RuleStore
	reportStore adapter.ReportStore
	ui          controller.UI
	log         *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	ruleStore adapter.RuleStore,
	reportStore adapter.ReportStore,
	ui controller.UI,
	logger *slog.Logger,
) Workflow {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &workflow{
		fsAdapter:   fsAdapter,
		ruleStore:   ruleStore,
		reportStore: reportStore,
		ui:          ui,
		log:         logger,
	}
}

// Patch scans every target, reports matches, then writes the patched content.
// All matches are reported before the first write starts.
func (w *workflow) Patch(ctx context.Context, args PatchArgs) error {
	if err := w.ui.Start(controller.WithPatchMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	results, err := w.scan(ctx, args.ScanArgs)
	if err != nil {
		return err
	}

	for _, result := range results {
		w.ui.DisplayMatches(result)
	}

	written := make([]bool, len(results))

	if args.DryRun {
		for _, result := range results {
			if err := w.ui.DisplayDiff(result); err != nil {
				return fmt.Errorf("diff %s: %w", result.Path, err)
			}
		}
	} else if err := w.writeAll(ctx, args, results, written); err != nil {
		return err
	}

	if args.Report != "" {
		if err := w.reportStore.SaveReport(args.Report, buildReport(args, results, written)); err != nil {
			return err
		}

		w.log.Debug("report saved", "path", args.Report)
	}

	return nil
}

// List scans targets without writing and displays per-file match counts.
func (w *workflow) List(ctx context.Context, args ScanArgs) error {
	if err := w.ui.Start(controller.WithListMode()); err != nil {
		return err
	}

	results, err := w.scan(ctx, args)
	if displayErr := w.ui.DisplayEstimation(results, err); displayErr != nil {
		w.ui.Close()
		return displayErr
	}

	return w.ui.Wait()
}

// Rules displays the effective rule set.
func (w *workflow) Rules(args RulesArgs) error {
	if err := w.ui.Start(controller.WithRulesMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	rules, err := w.loadRules(args.Rules, args.WholeWord)
	if err != nil {
		return err
	}

	return w.ui.DisplayRules(rules)
}

// ShowReport loads a report saved by a previous patch run and displays its
// per-file matches the same way List does.
func (w *workflow) ShowReport(path m.Path) error {
	if err := w.ui.Start(controller.WithListMode()); err != nil {
		return err
	}

	report, err := w.reportStore.LoadReport(path)
	if err != nil {
		w.ui.Close()
		return err
	}

	w.log.Debug("report loaded", "path", path, "mode", report.Mode, "dry_run", report.DryRun, "files", len(report.Files))

	if err := w.ui.DisplayEstimation(report.Results(), nil); err != nil {
		w.ui.Close()
		return err
	}

	return w.ui.Wait()
}

func (w *workflow) loadRules(path m.Path, wholeWord bool) (m.RuleSet, error) {
	rules, err := w.ruleStore.LoadRules(path)
	if err != nil {
		return m.RuleSet{}, err
	}

	if wholeWord {
		rules = rules.WithWholeWord()
	}

	return rules, nil
}

// scan reads and patches every target in memory. Results keep target order.
func (w *workflow) scan(ctx context.Context, args ScanArgs) ([]m.FileResult, error) {
	rules, err := w.loadRules(args.Rules, args.WholeWord)
	if err != nil {
		return nil, err
	}

	roots := args.Paths
	if len(roots) == 0 {
		roots = []m.Path{m.DefaultTarget}
	}

	paths, err := w.fsAdapter.Get(roots, args.Include)
	if err != nil {
		return nil, err
	}

	w.log.Debug("scanning", "files", len(paths), "rules", len(rules.Rules), "triggers", rules.TriggerCount())

	results := make([]m.FileResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads(args.Threads))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result, err := w.scanFile(path, rules)
			if err != nil {
				return err
			}

			results[i] = result

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (w *workflow) scanFile(path m.Path, rules m.RuleSet) (m.FileResult, error) {
	content, err := w.fsAdapter.ReadFile(path)
	if err != nil {
		return m.FileResult{}, fmt.Errorf("read %s: %w", path, err)
	}

	lines := SplitLines(content)
	matches := Patch(lines, rules)

	w.log.Debug("scanned file", "path", path, "lines", len(lines), "matches", len(matches))

	return m.FileResult{
		Path:     path,
		Hash:     fmt.Sprintf("%x", sha256.Sum256(content)),
		Original: content,
		Patched:  JoinLines(lines),
		Matches:  matches,
	}, nil
}

func (w *workflow) writeAll(ctx context.Context, args PatchArgs, results []m.FileResult, written []bool) error {
	mode := args.Mode
	if mode == "" {
		mode = m.WriteAtomic
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads(args.Threads))

	for i, result := range results {
		if args.SkipUnchanged && !result.Changed() {
			w.log.Debug("skipping unchanged file", "path", result.Path)
			continue
		}

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			if err := w.writeFile(result, mode, args.CheckUnchanged); err != nil {
				return err
			}

			written[i] = true

			return nil
		})
	}

	return g.Wait()
}

func (w *workflow) writeFile(result m.FileResult, mode m.WriteMode, checkUnchanged bool) error {
	if checkUnchanged {
		hash, err := w.fsAdapter.HashFile(result.Path)
		if err != nil {
			return fmt.Errorf("hash %s: %w", result.Path, err)
		}

		if hash != result.Hash {
			return fmt.Errorf("%s: %w", result.Path, ErrFileChanged)
		}
	}

	if err := w.fsAdapter.WriteFile(result.Path, result.Patched, mode); err != nil {
		return fmt.Errorf("write %s: %w", result.Path, err)
	}

	w.log.Debug("wrote file", "path", result.Path, "mode", mode, "matches", len(result.Matches), "changed", result.Changed())

	return nil
}

func buildReport(args PatchArgs, results []m.FileResult, written []bool) m.Report {
	mode := args.Mode
	if mode == "" {
		mode = m.WriteAtomic
	}

	report := m.Report{Mode: mode, DryRun: args.DryRun, Files: make([]m.FileReport, 0, len(results))}

	for i, result := range results {
		report.Files = append(report.Files, m.FileReport{
			Path:    result.Path,
			Hash:    result.Hash,
			Changed: result.Changed(),
			Written: written[i],
			Matches: result.Matches,
		})
	}

	return report
}

func threads(n int) int {
	if n <= 0 {
		return 1
	}

	return n
}
