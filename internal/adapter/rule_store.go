package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/linepatch/internal/model"
)

// ErrInvalidRules is returned when a rule file fails validation.
var ErrInvalidRules = errors.New("invalid rules")

// RuleStore loads the rule set applied during a run.
type RuleStore interface {
	// LoadRules reads rules from path. An empty path yields the built-in set.
	LoadRules(path m.Path) (m.RuleSet, error)
}

// LocalRuleStore reads YAML rule files from disk.
type LocalRuleStore struct{}

// NewRuleStore constructs a RuleStore implementation.
func NewRuleStore() RuleStore {
	return &LocalRuleStore{}
}

// LoadRules implements RuleStore.
func (rs *LocalRuleStore) LoadRules(path m.Path) (m.RuleSet, error) {
	if path == "" {
		return m.DefaultRuleSet(), nil
	}

	// #nosec G304 - rule file path is supplied by the operator
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.RuleSet{}, fmt.Errorf("read rules %s: %w", path, err)
	}

	rules, err := DecodeRules(data)
	if err != nil {
		return m.RuleSet{}, fmt.Errorf("%s: %w", path, err)
	}

	return rules, nil
}

// DecodeRules parses and validates a YAML rule document.
//
//	rules:
//	  - name: demangle-int2long
//	    triggers: ["d_identifier (struct d_info *di, int len)"]
//	    old: int
//	    new: long
//	    whole_word: false
func DecodeRules(data []byte) (m.RuleSet, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var rules m.RuleSet
	if err := dec.Decode(&rules); err != nil {
		if errors.Is(err, io.EOF) {
			return m.RuleSet{}, fmt.Errorf("%w: empty document", ErrInvalidRules)
		}

		return m.RuleSet{}, fmt.Errorf("%w: %w", ErrInvalidRules, err)
	}

	if err := ValidateRules(rules); err != nil {
		return m.RuleSet{}, err
	}

	return rules, nil
}

// ValidateRules checks that every rule can match and rewrite something.
func ValidateRules(rules m.RuleSet) error {
	if len(rules.Rules) == 0 {
		return fmt.Errorf("%w: no rules defined", ErrInvalidRules)
	}

	for i, r := range rules.Rules {
		name := r.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
		}

		if r.Old == "" {
			return fmt.Errorf("%w: rule %s: old must not be empty", ErrInvalidRules, name)
		}

		if len(r.Triggers) == 0 {
			return fmt.Errorf("%w: rule %s: no triggers", ErrInvalidRules, name)
		}

		for j, trigger := range r.Triggers {
			if trigger == "" {
				return fmt.Errorf("%w: rule %s: trigger %d is empty", ErrInvalidRules, name, j+1)
			}
		}
	}

	return nil
}
