package domain

import (
	"testing"

	m "github.com/mouse-blink/linepatch/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty", "", nil},
		{"single terminated", "a\n", []string{"a\n"}},
		{"no trailing newline", "a\nb", []string{"a\n", "b"}},
		{"crlf kept", "a\r\nb\r\n", []string{"a\r\n", "b\r\n"}},
		{"blank lines", "\n\n", []string{"\n", "\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines([]byte(tt.content))
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.content, string(JoinLines(got)))
		})
	}
}

func TestPatch_EndToEndScenario(t *testing.T) {
	lines := []string{
		"static struct demangle_component *d_identifier (struct d_info *, int);\n",
		"other unrelated line\n",
		"if (len >= (int) ANONYMOUS_NAMESPACE_PREFIX_LEN + 2\n",
	}

	matches := Patch(lines, m.DefaultRuleSet())

	require.Len(t, matches, 2)
	assert.Equal(t, 1, matches[0].Line)
	assert.Equal(t, 3, matches[1].Line)
	assert.Equal(t, m.DefaultRuleName, matches[0].Rule)

	assert.Equal(t, []string{
		"static struct demangle_component *d_identifier (struct d_info *, long);\n",
		"other unrelated line\n",
		"if (len >= (long) ANONYMOUS_NAMESPACE_PREFIX_LEN + 2\n",
	}, lines)
}

func TestPatch_DefinitionLine(t *testing.T) {
	lines := []string{"{\n", "d_identifier (struct d_info *di, int len)"}

	matches := Patch(lines, m.DefaultRuleSet())

	require.Len(t, matches, 1)
	assert.Equal(t, 2, matches[0].Line)
	assert.Equal(t, "d_identifier (struct d_info *di, long len)", lines[1])
}

func TestPatch_NoTriggersLeavesLinesUntouched(t *testing.T) {
	content := "int main(void)\n{\n  int len = 0;\n  return len;\n}\n"
	lines := SplitLines([]byte(content))

	matches := Patch(lines, m.DefaultRuleSet())

	assert.Empty(t, matches)
	assert.Equal(t, content, string(JoinLines(lines)))
}

func TestPatch_ReplacesEveryOccurrenceOnMatchedLine(t *testing.T) {
	lines := []string{"d_identifier (struct d_info *di, int len) /* int, int */\n"}

	matches := Patch(lines, m.DefaultRuleSet())

	require.Len(t, matches, 1)
	assert.Equal(t, "d_identifier (struct d_info *di, long len) /* long, long */\n", lines[0])
}

func TestPatch_SecondRunFindsNothing(t *testing.T) {
	lines := []string{
		"static struct demangle_component *d_identifier (struct d_info *, int);\n",
		"d_identifier (struct d_info *di, int len)\n",
		"if (len >= (int) ANONYMOUS_NAMESPACE_PREFIX_LEN + 2\n",
	}

	first := Patch(lines, m.DefaultRuleSet())
	second := Patch(lines, m.DefaultRuleSet())

	assert.Len(t, first, 3)
	assert.Empty(t, second)
}

func TestPatch_MultipleTriggersReportEachHit(t *testing.T) {
	rules := m.RuleSet{Rules: []m.Rule{{
		Name:     "two",
		Triggers: []string{"foo", "bar"},
		Old:      "x",
		New:      "y",
	}}}
	lines := []string{"foo bar x\n"}

	matches := Patch(lines, rules)

	require.Len(t, matches, 2)
	assert.Equal(t, 1, matches[0].Line)
	assert.Equal(t, 1, matches[1].Line)
	assert.Equal(t, "foo", matches[0].Trigger)
	assert.Equal(t, "bar", matches[1].Trigger)
	assert.Equal(t, "foo bar y\n", lines[0])
}

func TestPatch_LaterTriggersSeeEarlierRewrite(t *testing.T) {
	rules := m.RuleSet{Rules: []m.Rule{{
		Name:     "chain",
		Triggers: []string{"(int)", "(long)"},
		Old:      "int",
		New:      "long",
	}}}
	lines := []string{"(int) x\n"}

	matches := Patch(lines, rules)

	// "(long)" only exists after the first trigger rewrote the line.
	require.Len(t, matches, 2)
	assert.Equal(t, "(long) x\n", lines[0])
}

func TestPatch_EmptyTriggerIgnored(t *testing.T) {
	rules := m.RuleSet{Rules: []m.Rule{{Name: "empty", Triggers: []string{""}, Old: "a", New: "b"}}}
	lines := []string{"abc\n"}

	assert.Empty(t, Patch(lines, rules))
	assert.Equal(t, "abc\n", lines[0])
}

func TestReplace(t *testing.T) {
	tests := []struct {
		name string
		line string
		rule m.Rule
		want string
	}{
		{"substring inside identifier", "printf(int)", m.Rule{Old: "int", New: "long"}, "prlongf(long)"},
		{"case sensitive", "INT int", m.Rule{Old: "int", New: "long"}, "INT long"},
		{"whole word keeps identifiers", "printf(int)", m.Rule{Old: "int", New: "long", WholeWord: true}, "printf(long)"},
		{"whole word at edges", "int x, int_t y, uint z, int", m.Rule{Old: "int", New: "long", WholeWord: true}, "long x, int_t y, uint z, long"},
		{"empty old is a no-op", "int", m.Rule{Old: "", New: "long"}, "int"},
		{"no occurrence", "char c;", m.Rule{Old: "int", New: "long", WholeWord: true}, "char c;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Replace(tt.line, tt.rule))
		})
	}
}
