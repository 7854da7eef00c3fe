// Package controller provides output adapters for displaying patch results.
package controller

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/linepatch/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModePatch StartMode = iota
	ModeList
	ModeRules
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithPatchMode sets the UI to patch mode.
func WithPatchMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModePatch
	}
}

// WithListMode sets the UI to scan-only listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithRulesMode sets the UI to rule display mode.
func WithRulesMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRules
	}
}

// UI defines how the workflow reports progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() error // Wait for UI to finish (user closes it)
	// DisplayMatches prints one "line number: N" line per match.
	DisplayMatches(result m.FileResult)
	DisplayDiff(result m.FileResult) error
	DisplayEstimation(results []m.FileResult, err error) error
	DisplayRules(rules m.RuleSet) error
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModePatch}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// matchLine is the report format for a single trigger hit.
func matchLine(match m.Match) string {
	return fmt.Sprintf("line number: %d", match.Line)
}

func formatLines(matches []m.Match) string {
	parts := make([]string, 0, len(matches))
	for _, match := range matches {
		parts = append(parts, fmt.Sprintf("%d", match.Line))
	}

	return strings.Join(parts, ", ")
}

func totalMatches(results []m.FileResult) int {
	total := 0
	for _, r := range results {
		total += len(r.Matches)
	}

	return total
}
