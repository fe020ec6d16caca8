package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wojtek/organizer/internal/classify"
	"github.com/wojtek/organizer/internal/display"
)

// NewRankCommand creates the rank command
func NewRankCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank <name> <candidate>...",
		Short: "Show how candidate directories rank for one name",
		Long: `Rank the given candidate directory names against a single file name and
print the full scoring, best first. A debugging aid for rules files and for
picking a minimum token length.

Example:
  organizer rank "Unix Network Programming.pdf" "Unix Programming Guide" "Programming" "Fiction"`,
		Args: cobra.MinimumNArgs(2),
		RunE: rankCommand,
	}

	cmd.Flags().String("config", "", "Path to config file (default: .organizer/config.yaml)")
	cmd.Flags().String("rules", "", "Path to an override rules file")
	cmd.Flags().Int("min-token-length", 0, "Minimum word length considered for matching (default from config, 3)")

	return cmd
}

func rankCommand(cmd *cobra.Command, args []string) error {
	cfg, ruleSet, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	name := args[0]
	candidates := args[1:]

	overrides := make([]classify.Override, len(ruleSet))
	for i, r := range ruleSet {
		overrides[i] = r
	}

	ranked, err := classify.Rank(name, candidates, overrides, cfg.MinTokenLength)
	if err != nil {
		return err
	}

	display.RenderRanking(cmd.OutOrStdout(), name, ranked)
	return nil
}
