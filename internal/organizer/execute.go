package organizer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Move is one decided file move, ready for execution.
type Move struct {
	// SourcePath is the absolute (or caller-relative) path of the file.
	SourcePath string

	// Source is the path relative to its source root, for display.
	Source string

	// Target is the candidate directory name inside the target root.
	Target string

	// Primary and Secondary are the scores that won the ranking.
	Primary   int
	Secondary float64
}

// DecidedMove pairs an action with the candidate chosen for it.
func DecidedMove(a Action, chosen int) Move {
	c := a.Candidates[chosen]
	return Move{
		SourcePath: filepath.Join(a.SourceRoot, a.Source),
		Source:     a.Source,
		Target:     c.Candidate,
		Primary:    c.Primary,
		Secondary:  c.Secondary,
	}
}

// AutoMoves picks the best candidate for every action in the plan.
func AutoMoves(plan *Plan) []Move {
	moves := make([]Move, 0, len(plan.Actions))
	for _, action := range plan.Actions {
		moves = append(moves, DecidedMove(action, 0))
	}
	return moves
}

// Journal records executed moves. Implemented by the history store; a nil
// journal disables recording.
type Journal interface {
	RecordMove(batchID, source, dest string) error
}

// Logger receives execution progress. Implemented by logger.ConsoleLogger.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// Summary is the outcome of an execution.
type Summary struct {
	Moved   int
	Skipped int
	Failed  int
}

// Execute carries out the given moves against the target root, sequentially
// and in order. A destination that already exists is never overwritten: the
// move is skipped and counted, matching the advisory nature of the ranking.
// Failures on one file do not stop the rest.
//
// Each completed move is recorded in the journal under batchID before the
// next one starts, so an interrupted run still leaves an accurate journal.
func Execute(targetRoot string, moves []Move, batchID string, journal Journal, log Logger) Summary {
	var summary Summary

	for _, move := range moves {
		dest := filepath.Join(targetRoot, move.Target, filepath.Base(move.Source))

		if _, err := os.Stat(dest); err == nil {
			log.Warnf("skipping %q: %q already exists", move.Source, dest)
			summary.Skipped++
			continue
		}

		log.Infof("moving %q into %q", move.SourcePath, filepath.Join(targetRoot, move.Target))
		if err := MoveFile(move.SourcePath, dest); err != nil {
			log.Errorf("failed to move %q: %v", move.SourcePath, err)
			summary.Failed++
			continue
		}
		summary.Moved++

		if journal != nil {
			if err := journal.RecordMove(batchID, move.SourcePath, dest); err != nil {
				log.Warnf("failed to journal move of %q: %v", move.SourcePath, err)
			}
		}
	}
	return summary
}

// MoveFile moves a file, falling back to copy-and-remove when a rename fails
// (typically across filesystems).
func MoveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := copyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return fmt.Errorf("copy: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return fmt.Errorf("close destination: %w", err)
	}
	return nil
}

// CleanupEmptyDirs removes directories under root that were left empty by the
// executed moves, deepest first. The root itself is never removed. Non-empty
// directories are left alone; that is not an error.
func CleanupEmptyDirs(root string) error {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() && path != root {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk %s: %w", root, err)
	}

	// Deepest directories first, so emptied parents become removable too.
	for i := len(dirs) - 1; i >= 0; i-- {
		entries, err := os.ReadDir(dirs[i])
		if err != nil || len(entries) > 0 {
			continue
		}
		os.Remove(dirs[i])
	}
	return nil
}
