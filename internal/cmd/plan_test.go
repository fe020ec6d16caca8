package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanCommand(t *testing.T) {
	t.Run("previews without touching files", func(t *testing.T) {
		target, source := fixture(t, []string{"Fiction"}, []string{"novel fiction.epub"})

		out, err := execute(t, "", "plan", target, source)
		require.NoError(t, err)

		assert.Contains(t, out, "Fiction/")
		assert.Contains(t, out, "novel fiction.epub")
		assert.FileExists(t, filepath.Join(source, "novel fiction.epub"))
	})

	t.Run("verbose shows the full ranking", func(t *testing.T) {
		target, source := fixture(t, []string{"Fiction", "Music"}, []string{"novel fiction.epub"})

		out, err := execute(t, "", "plan", "--verbose", target, source)
		require.NoError(t, err)

		assert.Contains(t, out, "1. Fiction")
		assert.Contains(t, out, "2. Music")
	})

	t.Run("empty source", func(t *testing.T) {
		target, source := fixture(t, []string{"Fiction"}, nil)

		out, err := execute(t, "", "plan", target, source)
		require.NoError(t, err)
		assert.Contains(t, out, "Nothing to do.")
	})
}
