package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for organizer
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "organizer",
		Short: "Sort loose files into fitting directories by name similarity",
		Long: `Organizer moves loose files into the subdirectory of a target root whose
name they resemble most.

File and directory names are broken into words; a directory scores by how
many meaningful words it shares with a file name, with ties broken by how
specific the directory name is. Explicit rules can pin matching files to a
fixed directory regardless of scoring.

Nothing is moved without a preview, and every executed run is journaled and
can be undone.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	// Add subcommands
	cmd.AddCommand(NewRunCommand())
	cmd.AddCommand(NewPlanCommand())
	cmd.AddCommand(NewRankCommand())
	cmd.AddCommand(NewRulesCommand())
	cmd.AddCommand(NewHistoryCommand())

	return cmd
}
