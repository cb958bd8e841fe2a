package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/osm-audit/internal/report"
)

var auditStreetsCmd = &cobra.Command{
	Use:   "streets <file|url>",
	Short: "List street names with unexpected type or direction tokens",
	Long:  "Audit addr:street values of records in the configured region. Exceptions are grouped by direction token and by street-type token.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rep, err := runAudit(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return report.WriteStreets(cmd.OutOrStdout(), rep, outputFormat())
	},
}

func init() {
	auditCmd.AddCommand(auditStreetsCmd)
}
