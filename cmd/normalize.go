package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/osm-audit/internal/normalize"
	"github.com/sells-group/osm-audit/internal/report"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Rewrite a single value into canonical form",
}

var normalizePostcodeCmd = &cobra.Command{
	Use:     "postcode <value>",
	Short:   "Normalize one postal code",
	Example: "  osm-audit normalize postcode t3bob1",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return report.WriteNormalized(cmd.OutOrStdout(), args[0], normalize.PostalCode(args[0]), outputFormat())
	},
}

var normalizeStreetCmd = &cobra.Command{
	Use:     "street <value>",
	Short:   "Normalize the street-type and direction tokens of one street name",
	Example: `  osm-audit normalize street "Centre St North"`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, err := loadRules()
		if err != nil {
			return err
		}
		n := normalize.New(rs, normalize.Options{KeepPrefix: cfg.Normalize.KeepPrefix})
		return report.WriteNormalized(cmd.OutOrStdout(), args[0], n.Street(args[0]), outputFormat())
	},
}

func init() {
	normalizeCmd.AddCommand(normalizePostcodeCmd, normalizeStreetCmd)
	rootCmd.AddCommand(normalizeCmd)
}
