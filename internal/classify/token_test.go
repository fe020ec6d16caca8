package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	t.Run("splits on separators", func(t *testing.T) {
		set := Tokenize("Clean Code by Robert Martin.pdf", 3)
		assert.Equal(t, TokenSet{
			"clean":  {},
			"code":   {},
			"robert": {},
			"martin": {},
			"pdf":    {},
		}, set)
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.Equal(t, Tokenize("Book", 3), Tokenize("book", 3))
		assert.Equal(t, Tokenize("BOOK", 3), Tokenize("bOoK", 3))
	})

	t.Run("short tokens dropped", func(t *testing.T) {
		set := Tokenize("a guide to the art of war", 3)
		assert.True(t, set.Has("guide"))
		assert.True(t, set.Has("art"))
		assert.True(t, set.Has("war"))
		assert.False(t, set.Has("a"))
		assert.False(t, set.Has("to"))
		assert.False(t, set.Has("of"))
		assert.False(t, set.Has("the"))
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		set := Tokenize("code code CODE code.txt", 3)
		assert.Len(t, set, 2) // code, txt
	})

	t.Run("punctuation and underscores split", func(t *testing.T) {
		set := Tokenize("unix_network-programming(3rd).edition", 3)
		assert.True(t, set.Has("unix"))
		assert.True(t, set.Has("network"))
		assert.True(t, set.Has("programming"))
		assert.True(t, set.Has("edition"))
		assert.True(t, set.Has("3rd"))
		assert.Len(t, set, 5)
	})

	t.Run("empty and punctuation-only input", func(t *testing.T) {
		assert.Empty(t, Tokenize("", 3))
		assert.Empty(t, Tokenize("!!! --- ...", 3))
		assert.Empty(t, Tokenize("a.b.c", 3))
	})

	t.Run("idempotent", func(t *testing.T) {
		first := Tokenize("Unix Network Programming", 3)

		var words []string
		for tok := range first {
			words = append(words, tok)
		}
		again := Tokenize(strings.Join(words, " "), 3)
		assert.Equal(t, first, again)
	})

	t.Run("nonpositive min length uses default", func(t *testing.T) {
		assert.Equal(t, Tokenize("it is art", 3), Tokenize("it is art", 0))
		assert.Equal(t, Tokenize("it is art", 3), Tokenize("it is art", -1))
	})

	t.Run("min length counts runes not bytes", func(t *testing.T) {
		// Two runes, four bytes in UTF-8.
		set := Tokenize("żó", 2)
		assert.True(t, set.Has("żó"))
		assert.Empty(t, Tokenize("żó", 3))
	})

	t.Run("full width forms fold together", func(t *testing.T) {
		// NFKC maps full-width letters onto their ASCII counterparts.
		assert.Equal(t, Tokenize("ｂｏｏｋ", 3), Tokenize("book", 3))
	})
}

func TestTokenizeLengthFilterAffectsBothSides(t *testing.T) {
	// The same filter applies to file names and directory names, so a short
	// word can never contribute to a score from either side.
	src := Tokenize("go to the gym", 3)
	cand := Tokenize("go", 3)
	primary, secondary := Score(src, cand)
	assert.Zero(t, primary)
	assert.Zero(t, secondary)
}
