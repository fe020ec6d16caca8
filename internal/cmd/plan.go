package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wojtek/organizer/internal/display"
	"github.com/wojtek/organizer/internal/logger"
	"github.com/wojtek/organizer/internal/organizer"
)

// NewPlanCommand creates the plan command
func NewPlanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan <target-root> <source-root>...",
		Short: "Preview where files would be sorted, without moving anything",
		Long: `Compute and display the plan the run command would execute: every file under
the source roots grouped under the target directory it would move into, plus
the files no directory matched.

With --verbose the full ranked candidate list is shown for every file, which
helps when tuning rules or the minimum token length.`,
		Args: cobra.MinimumNArgs(2),
		RunE: planCommand,
	}

	addPlanFlags(cmd)
	return cmd
}

func planCommand(cmd *cobra.Command, args []string) error {
	cfg, ruleSet, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	log := logger.NewConsoleLogger(cmd.OutOrStdout(), cfg.LogLevel)
	out := cmd.OutOrStdout()

	plan, err := organizer.BuildPlan(args[0], args[1:], organizer.Options{
		MinTokenLength: cfg.MinTokenLength,
		Rules:          ruleSet,
		Recursive:      cfg.Recursive,
	})
	if err != nil {
		return err
	}
	for _, scanErr := range plan.ScanErrors {
		log.Warnf("scan: %v", scanErr)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		for _, action := range plan.Actions {
			display.RenderRanking(out, action.Source, action.Candidates)
		}
	}

	display.RenderPlan(out, organizer.AutoMoves(plan), plan.Unmatched)
	return nil
}
