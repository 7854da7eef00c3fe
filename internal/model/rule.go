// Package model defines the data structures for line patching.
package model

// DefaultRuleName names the built-in demangler rule.
const DefaultRuleName = "demangle-int2long"

// DefaultTarget is the file patched when no paths are given.
const DefaultTarget Path = "libiberty/cp-demangle.c"

// Rule marks lines by literal trigger substrings and rewrites Old to New on them.
type Rule struct {
	Name     string   `yaml:"name"`
	Triggers []string `yaml:"triggers"`
	Old      string   `yaml:"old"`
	New      string   `yaml:"new"`
	// WholeWord restricts replacement to occurrences not embedded in an identifier.
	WholeWord bool `yaml:"whole_word,omitempty"`
}

// RuleSet is the ordered collection of rules applied during a run.
type RuleSet struct {
	Rules []Rule `yaml:"rules"`
}

// TriggerCount returns the number of triggers across all rules.
func (rs RuleSet) TriggerCount() int {
	n := 0
	for _, r := range rs.Rules {
		n += len(r.Triggers)
	}

	return n
}

// WithWholeWord returns a copy of the set with WholeWord forced on every rule.
func (rs RuleSet) WithWholeWord() RuleSet {
	rules := make([]Rule, len(rs.Rules))
	for i, r := range rs.Rules {
		r.Triggers = append([]string(nil), r.Triggers...)
		r.WholeWord = true
		rules[i] = r
	}

	return RuleSet{Rules: rules}
}

// DefaultRuleSet widens the length parameter of d_identifier in cp-demangle.c.
func DefaultRuleSet() RuleSet {
	return RuleSet{Rules: []Rule{
		{
			Name: DefaultRuleName,
			Triggers: []string{
				"static struct demangle_component *d_identifier (struct d_info *, int);",
				"d_identifier (struct d_info *di, int len)",
				"if (len >= (int) ANONYMOUS_NAMESPACE_PREFIX_LEN + 2",
			},
			Old: "int",
			New: "long",
		},
	}}
}
