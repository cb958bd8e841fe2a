package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/osm-audit/internal/report"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the active rewrite tables and expected vocabularies",
	Long:  "Print the rule set in effect, including places where a rewrite table and the matching expected vocabulary disagree.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		rs, err := loadRules()
		if err != nil {
			return err
		}
		return report.WriteRules(cmd.OutOrStdout(), rs, outputFormat())
	},
}

func init() { rootCmd.AddCommand(rulesCmd) }
