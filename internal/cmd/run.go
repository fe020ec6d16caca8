package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wojtek/organizer/internal/display"
	"github.com/wojtek/organizer/internal/filelock"
	"github.com/wojtek/organizer/internal/history"
	"github.com/wojtek/organizer/internal/logger"
	"github.com/wojtek/organizer/internal/organizer"
)

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <target-root> <source-root>...",
		Short: "Sort files from the source roots into the target root",
		Long: `Sort the files found under each source root into the subdirectories of the
target root, choosing for each file the directory whose name it resembles
most.

The planned moves are previewed and confirmed before anything is touched.
Executed moves are journaled and can be reverted with "organizer history undo".

Configuration is loaded from .organizer/config.yaml if present.
CLI flags override configuration file settings.

Examples:
  # Sort downloads into the library's subdirectories
  organizer run ~/library ~/downloads

  # Several source roots, walked recursively, removing emptied directories
  organizer run -r --cleanup ~/library ~/inbox ~/desktop/drop

  # Pin matching files with explicit rules, skip the confirmation prompt
  organizer run --rules rules.yaml --yes ~/library ~/downloads

  # Decide file by file
  organizer run --interactive ~/library ~/downloads`,
		Args: cobra.MinimumNArgs(2),
		RunE: runCommand,
	}

	addPlanFlags(cmd)
	cmd.Flags().Bool("dry-run", false, "Preview the plan without moving anything")
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().BoolP("interactive", "i", false, "Confirm every file individually")
	cmd.Flags().Bool("cleanup", false, "Remove source directories left empty (recursive runs)")
	cmd.Flags().String("history-db", "", "Path to the move history database")
	cmd.Flags().String("log-level", "", "Log verbosity (trace, debug, info, warn, error)")

	return cmd
}

// runCommand implements the run command logic
func runCommand(cmd *cobra.Command, args []string) error {
	cfg, ruleSet, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
	}

	// The journal stores absolute paths so undo works from any directory.
	targetRoot, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve target root: %w", err)
	}
	sourceRoots := make([]string, len(args)-1)
	for i, root := range args[1:] {
		sourceRoots[i], err = filepath.Abs(root)
		if err != nil {
			return fmt.Errorf("failed to resolve source root %s: %w", root, err)
		}
	}

	log := logger.NewConsoleLogger(cmd.OutOrStdout(), cfg.LogLevel)
	out := cmd.OutOrStdout()

	plan, err := organizer.BuildPlan(targetRoot, sourceRoots, organizer.Options{
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

	var moves []organizer.Move
	if cfg.Interactive {
		var aborted bool
		moves, aborted, err = chooseInteractively(plan, cmd)
		if err != nil {
			return err
		}
		if aborted {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	} else {
		moves = organizer.AutoMoves(plan)
	}

	display.RenderPlan(out, moves, plan.Unmatched)

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	if dryRun || len(moves) == 0 {
		return nil
	}

	assumeYes, _ := cmd.Flags().GetBool("yes")
	if !assumeYes {
		prompter := display.NewPrompter(cmd.InOrStdin(), out)
		proceed, err := prompter.ConfirmPlan()
		if err != nil {
			return err
		}
		if !proceed {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}
	}

	lock := filelock.NewRunLock(targetRoot)
	acquired, err := lock.TryLock()
	if err != nil {
		return err
	}
	if !acquired {
		return fmt.Errorf("another organizer run is active on %s (lock: %s)", targetRoot, lock.Path())
	}
	defer lock.Unlock()

	store, err := history.NewStore(cfg.HistoryDBPath)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	batchID, err := store.BeginBatch(targetRoot)
	if err != nil {
		return err
	}

	summary := organizer.Execute(targetRoot, moves, batchID, store, log)

	if cfg.Cleanup && cfg.Recursive {
		for _, root := range sourceRoots {
			if err := organizer.CleanupEmptyDirs(root); err != nil {
				log.Warnf("cleanup of %s: %v", root, err)
			}
		}
	}

	fmt.Fprintf(out, "\nMoved %d, skipped %d, failed %d (batch %s)\n",
		summary.Moved, summary.Skipped, summary.Failed, batchID)
	if summary.Failed > 0 {
		return fmt.Errorf("%d move(s) failed", summary.Failed)
	}
	return nil
}

// chooseInteractively walks every action's candidates best-first, asking the
// user about each proposal. Answering "all" accepts the best candidate for
// every remaining file; quitting aborts the whole run.
func chooseInteractively(plan *organizer.Plan, cmd *cobra.Command) (moves []organizer.Move, aborted bool, err error) {
	prompter := display.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	acceptAll := false

	for _, action := range plan.Actions {
		if acceptAll {
			moves = append(moves, organizer.DecidedMove(action, 0))
			continue
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\nCurrent file: %s\n", action.Source)
	candidates:
		for i, candidate := range action.Candidates {
			if candidate.Primary == 0 {
				// The remaining candidates carry no signal.
				break
			}
			choice, err := prompter.ConfirmMove(action.Source, candidate)
			if err != nil {
				return nil, false, err
			}
			switch choice {
			case display.ChoiceYes:
				moves = append(moves, organizer.DecidedMove(action, i))
				break candidates
			case display.ChoiceSkip:
				break candidates
			case display.ChoiceNext:
				continue
			case display.ChoiceAll:
				acceptAll = true
				moves = append(moves, organizer.DecidedMove(action, i))
				break candidates
			case display.ChoiceQuit:
				return nil, true, nil
			}
		}
	}
	return moves, false, nil
}
