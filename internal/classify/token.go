// Package classify implements the name-similarity ranking that decides which
// target directory a file most likely belongs to.
//
// A file name and every candidate directory name are reduced to sets of
// normalized tokens. A candidate's primary score is the number of tokens it
// shares with the file name; the secondary score is the fraction of the
// candidate's own tokens that were matched, used to break primary-score ties.
// Explicit override rules can force a candidate to the top of the ranking.
//
// All functions in this package are pure: they perform no I/O, keep no state,
// and are safe to call concurrently.
package classify

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// DefaultMinTokenLength is the default minimum token length. Tokens shorter
// than this are discarded entirely, which cheaply filters articles, initials
// and numeric fragments without a stopword list.
const DefaultMinTokenLength = 3

// TokenSet is a set of normalized tokens extracted from a name.
// Duplicates collapse; presence, not frequency, is what matters.
type TokenSet map[string]struct{}

// Has reports whether tok is in the set.
func (s TokenSet) Has(tok string) bool {
	_, ok := s[tok]
	return ok
}

// Tokenize splits a name into its normalized token set.
//
// The name is NFKC-normalized and lowercased, then split on every rune that is
// not a Unicode letter or digit. Tokens with fewer than minLen runes are
// dropped. If minLen is not positive, DefaultMinTokenLength is used.
//
// Any string is valid input; an empty name or a name consisting only of
// separators and short fragments yields an empty set.
func Tokenize(name string, minLen int) TokenSet {
	if minLen <= 0 {
		minLen = DefaultMinTokenLength
	}

	lower := strings.ToLower(norm.NFKC.String(name))

	var cleaned strings.Builder
	for _, r := range lower {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			cleaned.WriteRune(r)
		} else {
			cleaned.WriteRune(' ')
		}
	}

	set := make(TokenSet)
	for _, word := range strings.Fields(cleaned.String()) {
		if utf8.RuneCountInString(word) >= minLen {
			set[word] = struct{}{}
		}
	}
	return set
}
