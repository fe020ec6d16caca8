package classify

import "fmt"

// ConfigError reports an override rule whose target directory is not among the
// supplied candidates. It is surfaced instead of silently dropping the rule,
// since a dangling override would otherwise misroute files invisibly.
type ConfigError struct {
	// Rule is a human-readable description of the offending rule.
	Rule string

	// Target is the directory name the rule designates.
	Target string
}

func (e *ConfigError) Error() string {
	if e.Rule == "" {
		return fmt.Sprintf("override target %q not found among candidates", e.Target)
	}
	return fmt.Sprintf("override rule %s: target %q not found among candidates", e.Rule, e.Target)
}
