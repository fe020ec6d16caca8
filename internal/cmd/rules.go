package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wojtek/organizer/internal/fileutil"
	"github.com/wojtek/organizer/internal/rules"
)

// NewRulesCommand creates the rules command group
func NewRulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect and validate override rules",
	}

	cmd.AddCommand(newRulesCheckCommand())
	return cmd
}

func newRulesCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <rules-file> [target-root]",
		Short: "Validate a rules file, optionally against a target root",
		Long: `Parse a rules file and report every rule. When a target root is given, each
rule's target is checked against the root's subdirectories, catching "target
not found" mistakes before a run trips over them.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: rulesCheckCommand,
	}
	return cmd
}

func rulesCheckCommand(cmd *cobra.Command, args []string) error {
	ruleSet, err := rules.Load(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d rule(s) loaded from %s\n", len(ruleSet), args[0])
	for i, r := range ruleSet {
		fmt.Fprintf(out, "  %2d. %s\n", i+1, r)
	}

	if len(args) < 2 {
		return nil
	}

	targets, err := fileutil.ListTargets(args[1])
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(targets))
	for _, t := range targets {
		known[t] = true
	}

	missing := 0
	for _, r := range ruleSet {
		if !known[r.Target()] {
			fmt.Fprintf(out, "target %q of rule %s does not exist under %s\n", r.Target(), r, args[1])
			missing++
		}
	}
	if missing > 0 {
		return fmt.Errorf("%d rule target(s) missing under %s", missing, args[1])
	}
	fmt.Fprintf(out, "All rule targets exist under %s\n", args[1])
	return nil
}
