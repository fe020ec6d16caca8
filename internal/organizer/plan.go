// Package organizer turns a ranked classification of loose files into an
// executable plan of moves and carries the plan out.
//
// Planning and execution are split: BuildPlan only reads the filesystem and
// scores names, so previews and dry runs share the exact code path that a real
// run uses.
package organizer

import (
	"fmt"

	"github.com/wojtek/organizer/internal/classify"
	"github.com/wojtek/organizer/internal/fileutil"
	"github.com/wojtek/organizer/internal/rules"
)

// Options configures plan computation.
type Options struct {
	// MinTokenLength is the minimum token length for name matching.
	MinTokenLength int

	// Rules are override rules, evaluated in order; first match wins.
	Rules []rules.Rule

	// Recursive walks source roots recursively. In recursive mode the
	// relative path of a file (including parent directory names) is what
	// gets matched, not just its base name.
	Recursive bool
}

// Action is one source file together with its ranked candidates.
type Action struct {
	// SourceRoot is the root the file was scanned from.
	SourceRoot string

	// Source is the file's path relative to SourceRoot.
	Source string

	// Candidates holds every target directory, best first.
	Candidates []classify.Ranked
}

// Best returns the top-ranked candidate and whether it carries any signal
// (a zero primary score means no meaningful word was shared).
func (a Action) Best() (classify.Ranked, bool) {
	if len(a.Candidates) == 0 {
		return classify.Ranked{}, false
	}
	best := a.Candidates[0]
	return best, best.Primary > 0
}

// Plan is the full classification of a set of source roots against one target
// root.
type Plan struct {
	// TargetRoot is the directory whose subdirectories are the candidates.
	TargetRoot string

	// Targets are the candidate directory names, sorted.
	Targets []string

	// Actions holds one entry per matched source file, in scan order.
	Actions []Action

	// Unmatched lists files no candidate shared a single word with.
	Unmatched []string

	// ScanErrors are non-fatal errors encountered while scanning.
	ScanErrors []error
}

// BuildPlan scans the target root for candidate directories and the source
// roots for files, ranks every file against the candidates, and returns the
// resulting plan. Files whose best candidate scored zero are listed in
// Unmatched instead of Actions.
//
// A rule whose target directory does not exist under targetRoot fails the
// whole plan with a *classify.ConfigError; a dangling rule would otherwise
// silently misroute every file it matches.
func BuildPlan(targetRoot string, sourceRoots []string, opts Options) (*Plan, error) {
	targets, err := fileutil.ListTargets(targetRoot)
	if err != nil {
		return nil, err
	}

	overrides := make([]classify.Override, len(opts.Rules))
	for i, r := range opts.Rules {
		overrides[i] = r
	}

	plan := &Plan{TargetRoot: targetRoot, Targets: targets}

	for _, sourceRoot := range sourceRoots {
		scan, err := fileutil.ScanFiles(sourceRoot, fileutil.ScanOptions{Recursive: opts.Recursive})
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", sourceRoot, err)
		}
		plan.ScanErrors = append(plan.ScanErrors, scan.Errors...)

		for _, file := range scan.Files {
			ranked, err := classify.Rank(file, targets, overrides, opts.MinTokenLength)
			if err != nil {
				return nil, err
			}

			action := Action{SourceRoot: sourceRoot, Source: file, Candidates: ranked}
			if _, ok := action.Best(); !ok {
				plan.Unmatched = append(plan.Unmatched, file)
				continue
			}
			plan.Actions = append(plan.Actions, action)
		}
	}
	return plan, nil
}
