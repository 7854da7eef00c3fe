package controller

import (
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/linepatch/internal/model"
)

// TUI implements UI for interactive terminals: styled text for patch output
// and a Bubble Tea browser for scan results.
type TUI struct {
	output   io.Writer
	input    io.Reader
	renderer *lipgloss.Renderer
	mode     StartMode

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	err     error
}

// NewTUI creates a new TUI reading keys from input and drawing to output.
func NewTUI(input io.Reader, output io.Writer) *TUI {
	return &TUI{
		input:    input,
		output:   output,
		renderer: lipgloss.NewRenderer(output),
	}
}

// Start records the mode the UI runs in.
func (t *TUI) Start(options ...StartOption) error {
	t.mode = newStartConfig(options).mode
	return nil
}

// Close stops a running program and waits for it to exit.
func (t *TUI) Close() {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	_ = t.Wait()
}

// Wait blocks until the running program, if any, exits and returns the error
// it exited with.
func (t *TUI) Wait() error {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done != nil {
		<-done
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	return t.err
}

// DisplayMatches prints the line number of every match.
func (t *TUI) DisplayMatches(result m.FileResult) {
	style := t.renderer.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)

	for _, match := range result.Matches {
		_, _ = fmt.Fprintln(t.output, style.Render(matchLine(match)))
	}
}

// DisplayDiff prints a unified diff between the original and patched content.
func (t *TUI) DisplayDiff(result m.FileResult) error {
	return writeDiff(t.output, result)
}

// DisplayEstimation opens the match browser in list mode and prints a
// summary line otherwise.
func (t *TUI) DisplayEstimation(results []m.FileResult, err error) error {
	if err != nil {
		_, _ = fmt.Fprintf(t.output, "scan error: %v\n", err)

		return err
	}

	if t.mode == ModeList {
		return t.startWithModel(newMatchListModel(results, t.renderer))
	}

	_, _ = fmt.Fprintf(t.output, "Found %d matches across %d files\n", totalMatches(results), len(results))

	return nil
}

// DisplayRules prints the rule set with each rule as a styled heading.
func (t *TUI) DisplayRules(rules m.RuleSet) error {
	heading := t.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	dim := t.renderer.NewStyle().Faint(true)

	for _, rule := range rules.Rules {
		title := fmt.Sprintf("%s  %q -> %q", rule.Name, rule.Old, rule.New)
		if rule.WholeWord {
			title += "  (whole word)"
		}

		_, _ = fmt.Fprintln(t.output, heading.Render(title))

		for _, trigger := range rule.Triggers {
			_, _ = fmt.Fprintf(t.output, "  %s %s\n", dim.Render("-"), trigger)
		}
	}

	return nil
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return fmt.Errorf("ui already running")
	}

	opts := []tea.ProgramOption{tea.WithOutput(t.output), tea.WithAltScreen()}
	if t.input != nil {
		opts = append(opts, tea.WithInput(t.input))
	}

	program := tea.NewProgram(model, opts...)
	done := make(chan struct{})

	t.program = program
	t.done = done

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil {
			t.mu.Lock()
			t.err = err
			t.mu.Unlock()
		}
	}()

	return nil
}
