package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/osm-audit/internal/audit"
	"github.com/sells-group/osm-audit/internal/osm"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Report non-conforming address values",
	Long:  "Stream an OSM export and list the postal codes or street names that do not follow the regional convention.",
}

func init() { rootCmd.AddCommand(auditCmd) }

// runAudit streams src through a single audit pass.
func runAudit(ctx context.Context, src string) (*audit.Report, error) {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rs, err := loadRules()
	if err != nil {
		return nil, err
	}

	rc, err := openSource(ctx, src)
	if err != nil {
		return nil, err
	}
	defer rc.Close() //nolint:errcheck

	rep, err := audit.New(rs).AuditAll(osm.Records(ctx, rc))
	if err != nil {
		return nil, eris.Wrapf(err, "audit %s", src)
	}

	zap.L().Info("audit complete",
		zap.String("run_id", rep.RunID),
		zap.String("source", src),
		zap.Int("records", rep.Records),
		zap.Int("postal_exceptions", rep.Postal.Len()),
		zap.Int("street_type_exceptions", rep.Street.Len()),
		zap.Int("direction_exceptions", rep.Direction.Len()),
	)
	return rep, nil
}
