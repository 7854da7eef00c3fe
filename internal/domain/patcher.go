// Package domain contains the line patching workflow and logic.
package domain

import (
	"strings"

	m "github.com/mouse-blink/linepatch/internal/model"
)

// SplitLines breaks content into lines that keep their terminators. A trailing
// fragment without a newline is kept as the last line.
func SplitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}

	lines := strings.SplitAfter(string(content), "\n")
	if n := len(lines); lines[n-1] == "" {
		lines = lines[:n-1]
	}

	return lines
}

// JoinLines concatenates lines without adding separators.
func JoinLines(lines []string) []byte {
	return []byte(strings.Join(lines, ""))
}

// Patch scans lines in order and rewrites every line that contains a trigger.
// Triggers are checked against the current line content, so a rewrite made by
// an earlier trigger is visible to the later ones. Lines are modified in place.
func Patch(lines []string, rules m.RuleSet) []m.Match {
	var matches []m.Match

	for i := range lines {
		for _, rule := range rules.Rules {
			for _, trigger := range rule.Triggers {
				if trigger == "" || !strings.Contains(lines[i], trigger) {
					continue
				}

				matches = append(matches, m.Match{Line: i + 1, Rule: rule.Name, Trigger: trigger})
				lines[i] = Replace(lines[i], rule)
			}
		}
	}

	return matches
}

// Replace substitutes every occurrence of rule.Old in line with rule.New.
func Replace(line string, rule m.Rule) string {
	if rule.Old == "" {
		return line
	}

	if !rule.WholeWord {
		return strings.ReplaceAll(line, rule.Old, rule.New)
	}

	var b strings.Builder

	rest := line
	consumed := 0

	for {
		idx := strings.Index(rest, rule.Old)
		if idx < 0 {
			b.WriteString(rest)

			return b.String()
		}

		start := consumed + idx
		end := start + len(rule.Old)

		b.WriteString(rest[:idx])

		if isWordBoundary(line, start, end) {
			b.WriteString(rule.New)
		} else {
			b.WriteString(rule.Old)
		}

		rest = rest[idx+len(rule.Old):]
		consumed = end
	}
}

func isWordBoundary(line string, start, end int) bool {
	if start > 0 && isIdentByte(line[start-1]) {
		return false
	}

	if end < len(line) && isIdentByte(line[end]) {
		return false
	}

	return true
}

func isIdentByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
