package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/osm-audit/internal/config"
	"github.com/sells-group/osm-audit/internal/fetcher"
	"github.com/sells-group/osm-audit/internal/report"
	"github.com/sells-group/osm-audit/internal/rules"
)

var cfg *config.Config

var (
	formatFlag string
	rulesFlag  string
	regionFlag string
)

var rootCmd = &cobra.Command{
	Use:   "osm-audit",
	Short: "Audit and normalize OpenStreetMap address fields",
	Long:  "Streams an OSM XML export, flags street names and postal codes that break the regional convention, and rewrites them into canonical form.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		if formatFlag != "" {
			c.Output.Format = formatFlag
		}
		if rulesFlag != "" {
			c.Rules.File = rulesFlag
		}
		if regionFlag != "" {
			c.Audit.Region = regionFlag
		}
		if err := c.Validate(); err != nil {
			return err
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "", "output format: text, json or yaml (default from config)")
	rootCmd.PersistentFlags().StringVar(&rulesFlag, "rules", "", "path to a YAML rules file (default: built-in tables)")
	rootCmd.PersistentFlags().StringVar(&regionFlag, "region", "", "city whose street names are audited (default from rules)")
}

// loadRules returns the active rule set with the configured region applied.
func loadRules() (*rules.Set, error) {
	rs, err := rules.Load(cfg.Rules.File)
	if err != nil {
		return nil, err
	}
	if cfg.Audit.Region != "" {
		rs.Region = cfg.Audit.Region
	}
	zap.L().Debug("rules loaded",
		zap.String("file", cfg.Rules.File),
		zap.String("region", rs.Region),
		zap.Int("street_suffixes", rs.StreetSuffixes.Len()),
		zap.Int("directions", rs.Directions.Len()),
	)
	return rs, nil
}

// openSource opens a local path, "-" or an http(s) URL.
func openSource(ctx context.Context, src string) (io.ReadCloser, error) {
	o := &fetcher.Opener{Remote: fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		UserAgent:  cfg.Fetch.UserAgent,
		Timeout:    time.Duration(cfg.Fetch.TimeoutSecs) * time.Second,
		MaxRetries: cfg.Fetch.MaxRetries,
		RatePerSec: cfg.Fetch.RatePerSec,
	})}
	return o.Open(ctx, src)
}

func outputFormat() report.Format {
	return report.Format(cfg.Output.Format)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
