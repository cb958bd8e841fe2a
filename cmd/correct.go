package main

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/osm-audit/internal/model"
	"github.com/sells-group/osm-audit/internal/normalize"
	"github.com/sells-group/osm-audit/internal/osm"
	"github.com/sells-group/osm-audit/internal/report"
)

var correctOutput string

var correctCmd = &cobra.Command{
	Use:   "correct <file|url>",
	Short: "Write suggested corrections for an OSM export as CSV",
	Long: "Stream an OSM export, normalize every addr:street (in the configured region) and addr:postcode, " +
		"and write one CSV row per value that changes.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		rs, err := loadRules()
		if err != nil {
			return err
		}
		n := normalize.New(rs, normalize.Options{KeepPrefix: cfg.Normalize.KeepPrefix})

		rc, err := openSource(ctx, args[0])
		if err != nil {
			return err
		}
		defer rc.Close() //nolint:errcheck

		var out io.Writer = cmd.OutOrStdout()
		if correctOutput != "" && correctOutput != "-" {
			f, err := os.Create(correctOutput)
			if err != nil {
				return eris.Wrapf(err, "correct: create %s", correctOutput)
			}
			defer f.Close() //nolint:errcheck
			out = f
		}
		cw := report.NewCorrectionWriter(out)

		g, gctx := errgroup.WithContext(ctx)
		recCh := make(chan model.AddressRecord, 64)
		var records int

		g.Go(func() error {
			defer close(recCh)
			for rec, err := range osm.Records(gctx, rc) {
				if err != nil {
					return eris.Wrapf(err, "correct: read %s", args[0])
				}
				select {
				case recCh <- rec:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})

		g.Go(func() error {
			for rec := range recCh {
				records++
				if fixes := n.Correct(rec); len(fixes) > 0 {
					if err := cw.Write(fixes...); err != nil {
						return err
					}
				}
			}
			return nil
		})

		if err := g.Wait(); err != nil {
			return err
		}
		if err := cw.Flush(); err != nil {
			return err
		}

		zap.L().Info("corrections written",
			zap.String("source", args[0]),
			zap.Int("records", records),
			zap.Int("corrections", cw.Rows()),
			zap.Bool("keep_prefix", cfg.Normalize.KeepPrefix),
		)
		return nil
	},
}

func init() {
	correctCmd.Flags().StringVarP(&correctOutput, "output", "o", "", "write CSV to this file instead of stdout")
	rootCmd.AddCommand(correctCmd)
}
