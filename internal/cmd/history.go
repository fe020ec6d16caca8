package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wojtek/organizer/internal/config"
	"github.com/wojtek/organizer/internal/history"
	"github.com/wojtek/organizer/internal/logger"
	"github.com/wojtek/organizer/internal/organizer"
)

// NewHistoryCommand creates the history command group
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect and revert past runs",
	}
	cmd.PersistentFlags().String("config", "", "Path to config file (default: .organizer/config.yaml)")
	cmd.PersistentFlags().String("history-db", "", "Path to the move history database")

	cmd.AddCommand(newHistoryListCommand())
	cmd.AddCommand(newHistoryUndoCommand())
	return cmd
}

func newHistoryListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journaled runs, newest first",
		Args:  cobra.NoArgs,
		RunE:  historyListCommand,
	}
	cmd.Flags().Int("limit", 10, "Maximum number of runs to show (0 = all)")
	cmd.Flags().Bool("moves", false, "Also list each run's moves")
	return cmd
}

func newHistoryUndoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "undo [batch-id]",
		Short: "Move the files of a run back where they came from",
		Long: `Revert a journaled run by moving every file back to its original location,
in reverse order. Without an argument the most recent run is reverted.

A file whose original location is occupied again, or that has been moved away
since, is reported and left alone; the rest of the batch is still reverted.
The batch stays in the journal unless every move was reverted.`,
		Args: cobra.MaximumNArgs(1),
		RunE: historyUndoCommand,
	}
}

// openStore resolves the history database path from flags and config.
func openStore(cmd *cobra.Command) (*history.Store, error) {
	if dbPath, _ := cmd.Flags().GetString("history-db"); dbPath != "" {
		return history.NewStore(dbPath)
	}

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = config.DefaultConfigPath
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return history.NewStore(cfg.HistoryDBPath)
}

func historyListCommand(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	batches, err := store.Batches(limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(batches) == 0 {
		fmt.Fprintln(out, "History is empty.")
		return nil
	}

	showMoves, _ := cmd.Flags().GetBool("moves")
	for _, b := range batches {
		fmt.Fprintf(out, "%s  %s  %d move(s)  %s\n",
			b.StartedAt.Local().Format("2006-01-02 15:04:05"), b.ID, b.MoveCount, b.TargetRoot)
		if !showMoves {
			continue
		}
		moves, err := store.Moves(b.ID)
		if err != nil {
			return err
		}
		for _, m := range moves {
			fmt.Fprintf(out, "    %s -> %s\n", m.Source, m.Dest)
		}
	}
	return nil
}

func historyUndoCommand(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	var batchID string
	if len(args) > 0 {
		batchID = args[0]
	} else {
		batchID, err = store.LatestBatch()
		if err != nil {
			return err
		}
	}

	moves, err := store.Moves(batchID)
	if err != nil {
		return err
	}
	if len(moves) == 0 {
		return fmt.Errorf("batch %s has no moves", batchID)
	}

	log := logger.NewConsoleLogger(cmd.OutOrStdout(), "info")
	failed := 0
	for i := len(moves) - 1; i >= 0; i-- {
		m := moves[i]
		if _, err := os.Stat(m.Source); err == nil {
			log.Warnf("skipping %q: original location is occupied", m.Dest)
			failed++
			continue
		}
		if _, err := os.Stat(m.Dest); err != nil {
			log.Warnf("skipping %q: file is no longer there", m.Dest)
			failed++
			continue
		}
		log.Infof("moving %q back to %q", m.Dest, m.Source)
		// Cleanup may have removed the directory the file came from.
		if err := os.MkdirAll(filepath.Dir(m.Source), 0755); err != nil {
			log.Errorf("failed to recreate directory for %q: %v", m.Source, err)
			failed++
			continue
		}
		if err := organizer.MoveFile(m.Dest, m.Source); err != nil {
			log.Errorf("failed to move %q back: %v", m.Dest, err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d move(s) could not be reverted; batch %s kept in history",
			failed, len(moves), batchID)
	}
	if err := store.DeleteBatch(batchID); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Reverted %d move(s) from batch %s\n", len(moves), batchID)
	return nil
}
