package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/osm-audit/internal/report"
)

var auditPostcodesCmd = &cobra.Command{
	Use:   "postcodes <file|url>",
	Short: "List postal codes that are not in A1A 1A1 form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rep, err := runAudit(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return report.WritePostal(cmd.OutOrStdout(), rep, outputFormat())
	},
}

func init() {
	auditCmd.AddCommand(auditPostcodesCmd)
}
