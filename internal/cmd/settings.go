package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wojtek/organizer/internal/config"
	"github.com/wojtek/organizer/internal/rules"
)

// addPlanFlags registers the flags shared by the run and plan commands.
func addPlanFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "Path to config file (default: .organizer/config.yaml)")
	cmd.Flags().String("rules", "", "Path to an override rules file")
	cmd.Flags().Int("min-token-length", 0, "Minimum word length considered for matching (default from config, 3)")
	cmd.Flags().BoolP("recursive", "r", false, "Walk source roots recursively")
	cmd.Flags().Bool("verbose", false, "Show the full ranking for every file")
}

// loadSettings loads the config file and overlays any flags the user set
// explicitly. Flag values win over file values only when changed, so a config
// file can still turn options on.
func loadSettings(cmd *cobra.Command) (*config.Config, []rules.Rule, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = config.DefaultConfigPath
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}

	if cmd.Flags().Changed("rules") {
		cfg.RulesPath, _ = cmd.Flags().GetString("rules")
	}
	if cmd.Flags().Changed("min-token-length") {
		cfg.MinTokenLength, _ = cmd.Flags().GetInt("min-token-length")
	}
	if cmd.Flags().Changed("recursive") {
		cfg.Recursive, _ = cmd.Flags().GetBool("recursive")
	}
	if cmd.Flags().Changed("interactive") {
		cfg.Interactive, _ = cmd.Flags().GetBool("interactive")
	}
	if cmd.Flags().Changed("cleanup") {
		cfg.Cleanup, _ = cmd.Flags().GetBool("cleanup")
	}
	if cmd.Flags().Changed("history-db") {
		cfg.HistoryDBPath, _ = cmd.Flags().GetString("history-db")
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid settings: %w", err)
	}

	var ruleSet []rules.Rule
	if cfg.RulesPath != "" {
		ruleSet, err = rules.Load(cfg.RulesPath)
		if err != nil {
			return nil, nil, err
		}
	}
	return cfg, ruleSet, nil
}
