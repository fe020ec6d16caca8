package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand()

	assert.Equal(t, "organizer", cmd.Use)
	assert.True(t, cmd.SilenceUsage)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "run")
	assert.Contains(t, names, "plan")
	assert.Contains(t, names, "rank")
	assert.Contains(t, names, "rules")
	assert.Contains(t, names, "history")
}

func TestRootCommandHelp(t *testing.T) {
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "name they resemble most")
}

func TestRankCommand(t *testing.T) {
	t.Run("prints candidates best first", func(t *testing.T) {
		cmd := NewRootCommand()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"rank", "Unix Network Programming",
			"Programming", "Unix Programming Guide"})

		require.NoError(t, cmd.Execute())

		output := out.String()
		assert.Contains(t, output, "1. Unix Programming Guide")
		assert.Contains(t, output, "2. Programming")
	})

	t.Run("min token length flag", func(t *testing.T) {
		cmd := NewRootCommand()
		var out bytes.Buffer
		cmd.SetOut(&out)
		// With the default length "go" is invisible; with 2 it matches.
		cmd.SetArgs([]string{"rank", "--min-token-length", "2", "learning go.pdf", "Go Books"})

		require.NoError(t, cmd.Execute())
		assert.Contains(t, out.String(), "score: 1")
	})

	t.Run("too few arguments", func(t *testing.T) {
		cmd := NewRootCommand()
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{"rank", "just-a-name"})

		assert.Error(t, cmd.Execute())
	})
}
