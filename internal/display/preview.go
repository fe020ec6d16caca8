// Package display renders plan previews and interactive prompts for the CLI.
package display

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/wojtek/organizer/internal/classify"
	"github.com/wojtek/organizer/internal/organizer"
)

// useColor reports whether colored output should be emitted to w.
func useColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// sprintFunc returns a Sprint-style function for c, or plain fmt.Sprint when
// color is disabled for the writer.
func sprintFunc(w io.Writer, c *color.Color) func(a ...interface{}) string {
	if useColor(w) {
		return c.Sprint
	}
	return fmt.Sprint
}

// RenderPlan writes a preview of the moves grouped by target directory,
// followed by the files that found no match. Group order follows the first
// occurrence of each target in moves, and files keep their order within a
// group, so the preview is deterministic.
func RenderPlan(out io.Writer, moves []organizer.Move, unmatched []string) {
	target := sprintFunc(out, color.New(color.FgCyan, color.Bold))
	score := sprintFunc(out, color.New(color.Faint))
	warn := sprintFunc(out, color.New(color.FgYellow))

	if len(moves) == 0 && len(unmatched) == 0 {
		fmt.Fprintln(out, "Nothing to do.")
		return
	}

	grouped := make(map[string][]organizer.Move)
	var order []string
	for _, m := range moves {
		if _, seen := grouped[m.Target]; !seen {
			order = append(order, m.Target)
		}
		grouped[m.Target] = append(grouped[m.Target], m)
	}

	for _, t := range order {
		fmt.Fprintf(out, "%s\n", target(t+"/"))
		for _, m := range grouped[t] {
			fmt.Fprintf(out, "  %s  %s\n", m.Source, score(scoreLabel(m.Primary, m.Secondary)))
		}
		fmt.Fprintln(out)
	}

	if len(unmatched) > 0 {
		fmt.Fprintf(out, "%s\n", warn("No match (left in place):"))
		for _, name := range unmatched {
			fmt.Fprintf(out, "  %s\n", name)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "%d file(s) to move, %d unmatched\n", len(moves), len(unmatched))
}

func scoreLabel(primary int, secondary float64) string {
	if primary >= classify.OverridePrimary {
		return "(rule)"
	}
	return fmt.Sprintf("(score: %d, ratio: %.2f)", primary, secondary)
}

// RenderRanking writes the full ranked candidate list for one name, best
// first. Used by the rank command and verbose previews.
func RenderRanking(out io.Writer, name string, ranked []classify.Ranked) {
	fmt.Fprintf(out, "%s\n", name)
	for i, c := range ranked {
		fmt.Fprintf(out, "  %2d. %-30s %s\n", i+1, c.Candidate, scoreLabel(c.Primary, c.Secondary))
	}
}
