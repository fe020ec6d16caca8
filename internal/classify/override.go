package classify

import "fmt"

// OverridePrimary is the sentinel primary score assigned to a candidate
// designated by an override rule. No naturally computed primary score can
// reach it, so an overridden candidate always sorts first.
const OverridePrimary = 9999

// Override is an explicit routing rule. The ranker is deliberately ignorant of
// how rules match (exact name, substring, glob, ...); it only asks whether a
// rule applies to a source name and which candidate it designates.
type Override interface {
	// Matches reports whether the rule applies to the given source name.
	Matches(name string) bool

	// Target returns the candidate directory name the rule designates.
	Target() string
}

// firstMatch resolves the overrides for a source name. Rules are evaluated in
// declaration order and the first match wins; later matching rules are
// ignored. Returns the designated target and a description of the winning
// rule, or ok=false when no rule matches.
func firstMatch(name string, overrides []Override) (target, rule string, ok bool) {
	for _, ov := range overrides {
		if ov == nil || !ov.Matches(name) {
			continue
		}
		desc := ""
		if s, isStringer := ov.(fmt.Stringer); isStringer {
			desc = s.String()
		}
		return ov.Target(), desc, true
	}
	return "", "", false
}
