package classify

import "sort"

// Ranked is one candidate with its scores for a given source name.
type Ranked struct {
	// Candidate is the directory name as supplied by the caller.
	Candidate string

	// Primary is the number of tokens shared with the source name, or
	// OverridePrimary when an override rule designated this candidate.
	Primary int

	// Secondary is the fraction of the candidate's tokens shared with the
	// source name, in [0, 1]. Zero for overridden candidates.
	Secondary float64
}

// Rank scores every candidate directory name against a source file name and
// returns them sorted best-first: primary score descending, then secondary
// score descending, then the candidates' original order. The sort is stable,
// so identical inputs always produce identical output.
//
// Every supplied candidate appears exactly once in the result, including those
// that scored (0, 0). An all-zero ranking means no candidate shares a single
// meaningful word with the name; callers typically treat that as "needs manual
// placement" rather than an error.
//
// If an override rule matches the source name (first matching rule wins, in
// declaration order), every candidate bearing the designated name has its
// primary score forced to OverridePrimary. If the designated name is absent
// from candidates, Rank fails with a *ConfigError.
func Rank(source string, candidates []string, overrides []Override, minLen int) ([]Ranked, error) {
	target, rule, overridden := firstMatch(source, overrides)

	src := Tokenize(source, minLen)

	ranked := make([]Ranked, len(candidates))
	targetFound := false
	for i, cand := range candidates {
		primary, secondary := Score(src, Tokenize(cand, minLen))
		if overridden && cand == target {
			primary, secondary = OverridePrimary, 0
			targetFound = true
		}
		ranked[i] = Ranked{Candidate: cand, Primary: primary, Secondary: secondary}
	}

	if overridden && !targetFound {
		return nil, &ConfigError{Rule: rule, Target: target}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Primary != ranked[j].Primary {
			return ranked[i].Primary > ranked[j].Primary
		}
		return ranked[i].Secondary > ranked[j].Secondary
	})
	return ranked, nil
}
