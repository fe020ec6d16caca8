// Package rules defines explicit override rules that force files matching a
// predicate into a fixed target directory, bypassing name-similarity scoring.
//
// A rule pairs a predicate (exact name, substring, glob or regexp) with a
// target directory name. Rules are evaluated in declaration order; the ranker
// applies the first rule that matches a file name.
package rules

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Kind identifies how a rule's match expression is interpreted.
type Kind string

const (
	// KindExact matches the whole file name, case-insensitively.
	KindExact Kind = "exact"

	// KindSubstring matches when the expression occurs anywhere in the file
	// name, case-insensitively. This is the default kind.
	KindSubstring Kind = "substring"

	// KindGlob matches the file name against a doublestar glob pattern,
	// case-insensitively.
	KindGlob Kind = "glob"

	// KindRegexp matches the file name against a Go regular expression.
	KindRegexp Kind = "regexp"
)

// Rule routes file names matching a predicate to a target directory.
// Construct rules with New (or Parse/Load) so the expression is validated and
// compiled up front; the zero Rule matches nothing.
type Rule struct {
	match     string
	kind      Kind
	targetDir string
	re        *regexp.Regexp
}

// New creates a rule, validating the match expression for its kind.
// An empty kind defaults to KindSubstring.
func New(match string, kind Kind, target string) (Rule, error) {
	if kind == "" {
		kind = KindSubstring
	}
	if match == "" {
		return Rule{}, fmt.Errorf("rule for target %q: match expression is empty", target)
	}
	if target == "" {
		return Rule{}, fmt.Errorf("rule %q: target is empty", match)
	}

	r := Rule{match: match, kind: kind, targetDir: target}
	switch kind {
	case KindExact, KindSubstring:
		// Plain string comparison, nothing to compile.
	case KindGlob:
		if !doublestar.ValidatePattern(match) {
			return Rule{}, fmt.Errorf("rule %q: invalid glob pattern", match)
		}
	case KindRegexp:
		re, err := regexp.Compile(match)
		if err != nil {
			return Rule{}, fmt.Errorf("rule %q: invalid regexp: %w", match, err)
		}
		r.re = re
	default:
		return Rule{}, fmt.Errorf("rule %q: unknown kind %q", match, kind)
	}
	return r, nil
}

// Matches reports whether the rule applies to the given file name.
func (r Rule) Matches(name string) bool {
	switch r.kind {
	case KindExact:
		return strings.EqualFold(name, r.match)
	case KindSubstring:
		return strings.Contains(strings.ToLower(name), strings.ToLower(r.match))
	case KindGlob:
		ok, err := doublestar.Match(strings.ToLower(r.match), strings.ToLower(name))
		return err == nil && ok
	case KindRegexp:
		return r.re != nil && r.re.MatchString(name)
	}
	return false
}

// Target returns the directory name the rule designates.
func (r Rule) Target() string { return r.targetDir }

// Kind returns the rule's predicate kind.
func (r Rule) Kind() Kind { return r.kind }

// Match returns the rule's match expression.
func (r Rule) Match() string { return r.match }

func (r Rule) String() string {
	return fmt.Sprintf("%s %q -> %q", r.kind, r.match, r.targetDir)
}

// ruleYAML is the on-disk representation of a rule.
type ruleYAML struct {
	Match  string `yaml:"match"`
	Kind   string `yaml:"kind"`
	Target string `yaml:"target"`
}

// Parse decodes rules from YAML. The document is a list of
// {match, kind, target} entries; kind defaults to "substring" when omitted.
// Declaration order is preserved and determines match precedence.
func Parse(data []byte) ([]Rule, error) {
	var raw []ruleYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse rules: %w", err)
	}

	rules := make([]Rule, 0, len(raw))
	for i, entry := range raw {
		r, err := New(entry.Match, Kind(entry.Kind), entry.Target)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i+1, err)
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// Load reads and parses a rules file. A missing path is an error here, unlike
// the main config file: a rules file is only consulted when explicitly
// configured, so its absence means a broken setup.
func Load(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}
	rules, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rules, nil
}
