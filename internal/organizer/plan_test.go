package organizer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wojtek/organizer/internal/classify"
	"github.com/wojtek/organizer/internal/rules"
)

func mkdirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0755))
	}
}

func touch(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, f)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("content"), 0644))
	}
}

func mustRule(t *testing.T, match string, kind rules.Kind, target string) rules.Rule {
	t.Helper()
	r, err := rules.New(match, kind, target)
	require.NoError(t, err)
	return r
}

func TestBuildPlan(t *testing.T) {
	t.Run("ranks files against target directories", func(t *testing.T) {
		target := t.TempDir()
		source := t.TempDir()
		mkdirs(t, target, "Code Books", "Fiction")
		touch(t, source, "Clean Code by Robert Martin.pdf", "IMG_1234.jpg")

		plan, err := BuildPlan(target, []string{source}, Options{MinTokenLength: 3})
		require.NoError(t, err)

		assert.Equal(t, []string{"Code Books", "Fiction"}, plan.Targets)
		require.Len(t, plan.Actions, 1)
		assert.Equal(t, "Clean Code by Robert Martin.pdf", plan.Actions[0].Source)

		best, ok := plan.Actions[0].Best()
		assert.True(t, ok)
		assert.Equal(t, "Code Books", best.Candidate)
		assert.Equal(t, 1, best.Primary)

		assert.Equal(t, []string{"IMG_1234.jpg"}, plan.Unmatched)
	})

	t.Run("every candidate appears in each action", func(t *testing.T) {
		target := t.TempDir()
		source := t.TempDir()
		mkdirs(t, target, "Music", "Photos", "Documents")
		touch(t, source, "concert photos.zip")

		plan, err := BuildPlan(target, []string{source}, Options{MinTokenLength: 3})
		require.NoError(t, err)
		require.Len(t, plan.Actions, 1)
		assert.Len(t, plan.Actions[0].Candidates, 3)
	})

	t.Run("override rule forces a target", func(t *testing.T) {
		target := t.TempDir()
		source := t.TempDir()
		mkdirs(t, target, "Code Books", "Quarantine")
		touch(t, source, "suspicious code dump.bin")

		plan, err := BuildPlan(target, []string{source}, Options{
			MinTokenLength: 3,
			Rules:          []rules.Rule{mustRule(t, "*.bin", rules.KindGlob, "Quarantine")},
		})
		require.NoError(t, err)
		require.Len(t, plan.Actions, 1)

		best, ok := plan.Actions[0].Best()
		assert.True(t, ok)
		assert.Equal(t, "Quarantine", best.Candidate)
		assert.Equal(t, classify.OverridePrimary, best.Primary)
	})

	t.Run("rule with missing target fails the plan", func(t *testing.T) {
		target := t.TempDir()
		source := t.TempDir()
		mkdirs(t, target, "Fiction")
		touch(t, source, "anything.txt")

		_, err := BuildPlan(target, []string{source}, Options{
			MinTokenLength: 3,
			Rules:          []rules.Rule{mustRule(t, "anything", rules.KindSubstring, "NoSuchDir")},
		})
		require.Error(t, err)

		var cfgErr *classify.ConfigError
		assert.True(t, errors.As(err, &cfgErr))
	})

	t.Run("recursive mode matches the relative path", func(t *testing.T) {
		target := t.TempDir()
		source := t.TempDir()
		mkdirs(t, target, "Unix Books")
		touch(t, source, filepath.Join("unix", "apue.pdf"))

		plan, err := BuildPlan(target, []string{source}, Options{MinTokenLength: 3, Recursive: true})
		require.NoError(t, err)
		require.Len(t, plan.Actions, 1)

		// The parent directory name contributes to the match.
		best, ok := plan.Actions[0].Best()
		assert.True(t, ok)
		assert.Equal(t, "Unix Books", best.Candidate)
	})

	t.Run("multiple source roots", func(t *testing.T) {
		target := t.TempDir()
		src1 := t.TempDir()
		src2 := t.TempDir()
		mkdirs(t, target, "Fiction")
		touch(t, src1, "fiction one.epub")
		touch(t, src2, "fiction two.epub")

		plan, err := BuildPlan(target, []string{src1, src2}, Options{MinTokenLength: 3})
		require.NoError(t, err)
		require.Len(t, plan.Actions, 2)
		assert.Equal(t, src1, plan.Actions[0].SourceRoot)
		assert.Equal(t, src2, plan.Actions[1].SourceRoot)
	})

	t.Run("missing target root", func(t *testing.T) {
		_, err := BuildPlan(filepath.Join(t.TempDir(), "absent"), []string{t.TempDir()}, Options{})
		assert.Error(t, err)
	})
}
