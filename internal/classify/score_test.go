package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	t.Run("counts shared tokens", func(t *testing.T) {
		src := Tokenize("Unix Network Programming", 3)
		cand := Tokenize("Unix Programming Guide", 3)

		primary, secondary := Score(src, cand)
		assert.Equal(t, 2, primary)
		assert.InDelta(t, 2.0/3.0, secondary, 1e-9)
	})

	t.Run("fully matched candidate has ratio one", func(t *testing.T) {
		src := Tokenize("Unix Network Programming", 3)
		cand := Tokenize("Programming", 3)

		primary, secondary := Score(src, cand)
		assert.Equal(t, 1, primary)
		assert.Equal(t, 1.0, secondary)
	})

	t.Run("no overlap", func(t *testing.T) {
		primary, secondary := Score(Tokenize("holiday photos", 3), Tokenize("Fiction", 3))
		assert.Zero(t, primary)
		assert.Zero(t, secondary)
	})

	t.Run("empty candidate", func(t *testing.T) {
		primary, secondary := Score(Tokenize("anything", 3), Tokenize("", 3))
		assert.Zero(t, primary)
		assert.Zero(t, secondary)
	})

	t.Run("empty source", func(t *testing.T) {
		primary, secondary := Score(Tokenize("", 3), Tokenize("Fiction", 3))
		assert.Zero(t, primary)
		assert.Zero(t, secondary)
	})

	t.Run("bounds hold", func(t *testing.T) {
		names := []string{
			"Clean Code by Robert Martin.pdf",
			"the-art-of-computer-programming.djvu",
			"IMG_1234.jpg",
			"",
			"programming programming programming",
		}
		candidates := []string{
			"Programming Books", "Fiction", "Code", "", "a b c",
		}
		for _, name := range names {
			src := Tokenize(name, 3)
			for _, c := range candidates {
				cand := Tokenize(c, 3)
				primary, secondary := Score(src, cand)

				assert.GreaterOrEqual(t, primary, 0)
				assert.LessOrEqual(t, primary, len(src))
				assert.LessOrEqual(t, primary, len(cand))
				assert.GreaterOrEqual(t, secondary, 0.0)
				assert.LessOrEqual(t, secondary, 1.0)
			}
		}
	})

	t.Run("pure", func(t *testing.T) {
		src := Tokenize("Unix Network Programming", 3)
		cand := Tokenize("Unix Programming Guide", 3)

		Score(src, cand)
		Score(src, cand)
		assert.Len(t, src, 3)
		assert.Len(t, cand, 3)
	})
}
