package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/wells-cli/internal/dataset"
	"github.com/sells-group/wells-cli/internal/fetcher"
	"github.com/sells-group/wells-cli/internal/pipeline"
	"github.com/sells-group/wells-cli/internal/registry"
	"github.com/sells-group/wells-cli/internal/store"
)

var (
	resolveInput   string
	resolveOutput  string
	resolveLimit   int
	resolveWorkers int
	resolveSave    bool
	resolveDryRun  bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve well identities against the registry and normalize fields",
	Long: `Reads a well extract (CSV or XLSX, from a local path or an http/ftp URL),
canonicalizes API numbers and well names, resolves each valid row against the
public well registry, extracts detail-page enrichment, and normalizes every
field before writing the output dataset.

Examples:
  # Resolve a local extract
  wells-cli resolve --input wells.csv --output wells_out.csv

  # Parse and canonicalize only, print rows as JSON
  wells-cli resolve --input wells.csv --dry-run

  # Pull the extract straight off an agency FTP drop
  wells-cli resolve --input ftp://data.example.gov/wells.xlsx --output out.csv --save`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		table, err := readInput(ctx, resolveInput)
		if err != nil {
			return err
		}
		zap.L().Info("parsed extract", zap.Int("rows", len(table.Records)))

		if resolveLimit > 0 && resolveLimit < len(table.Records) {
			table.Records = table.Records[:resolveLimit]
		}

		orch := newOrchestrator()

		if resolveDryRun {
			orch.Canonicalize(table)
			orch.Normalize(table)
			return printRowsJSON(table)
		}

		stats, err := orch.Resolve(ctx, table)
		if err != nil {
			return eris.Wrap(err, "resolve: enrichment pass")
		}
		orch.Normalize(table)

		zap.L().Info("pipeline complete",
			zap.Int64("resolved", stats.Resolved),
			zap.Int64("degraded", stats.Degraded),
			zap.Int64("skipped", stats.Skipped),
		)

		if resolveSave {
			if err := saveWells(ctx, table); err != nil {
				return err
			}
		}

		if resolveOutput != "" {
			if err := table.WriteCSVFile(resolveOutput); err != nil {
				return eris.Wrap(err, "resolve: write output")
			}
			zap.L().Info("wrote output", zap.String("path", resolveOutput))
		}

		return nil
	},
}

// readInput loads an extract from a local path or http/ftp URL, switching
// parsers on the .xlsx extension.
func readInput(ctx context.Context, input string) (*dataset.Table, error) {
	httpFetcher := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		UserAgent:  cfg.Registry.UserAgent,
		Timeout:    time.Duration(cfg.Registry.TimeoutSecs) * time.Second,
		MaxRetries: cfg.Registry.MaxRetries,
	})
	ftpFetcher := fetcher.NewFTPFetcher(time.Duration(cfg.Registry.TimeoutSecs) * time.Second)

	rc, err := dataset.Open(ctx, input, httpFetcher, ftpFetcher)
	if err != nil {
		return nil, eris.Wrap(err, "resolve: open input")
	}
	defer rc.Close() //nolint:errcheck

	if strings.HasSuffix(strings.ToLower(input), ".xlsx") {
		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, eris.Wrap(err, "resolve: read input")
		}
		return dataset.ReadXLSX(data)
	}
	return dataset.ReadCSV(rc)
}

func newOrchestrator() *pipeline.Orchestrator {
	registryFetcher := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		UserAgent:  cfg.Registry.UserAgent,
		Timeout:    time.Duration(cfg.Registry.TimeoutSecs) * time.Second,
		MaxRetries: cfg.Registry.MaxRetries,
	})

	workers := resolveWorkers
	if workers == 0 {
		workers = cfg.Pipeline.Workers
	}

	return pipeline.New(pipeline.Options{
		Registry: registry.NewClient(cfg.Registry.BaseURL, registryFetcher),
		Limiter:  rate.NewLimiter(rate.Limit(cfg.Registry.RequestsPerSec), 1),
		Workers:  workers,
	})
}

func saveWells(ctx context.Context, table *dataset.Table) error {
	s, err := store.Open(ctx, cfg.Store.Driver, cfg.Store.DatabaseURL)
	if err != nil {
		return eris.Wrap(err, "resolve: open store")
	}
	defer s.Close() //nolint:errcheck

	if err := s.Migrate(ctx); err != nil {
		return eris.Wrap(err, "resolve: migrate store")
	}

	var wells []store.StoredWell
	for _, rec := range table.Records {
		if rec.Skipped || rec.APIClean == "" {
			continue
		}
		wells = append(wells, store.FromRecord(rec))
	}
	if err := s.SaveWells(ctx, wells); err != nil {
		return eris.Wrap(err, "resolve: save wells")
	}

	zap.L().Info("saved wells", zap.Int("count", len(wells)))
	return nil
}

func printRowsJSON(table *dataset.Table) error {
	rows := make([]map[string]string, 0, len(table.Records))
	for _, rec := range table.Records {
		if rec.Skipped {
			continue
		}
		rows = append(rows, rec.Cells)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return eris.Wrap(enc.Encode(rows), "resolve: encode rows")
}

func init() {
	resolveCmd.Flags().StringVar(&resolveInput, "input", "", "extract path or http/ftp URL (required)")
	resolveCmd.Flags().StringVar(&resolveOutput, "output", "", "output CSV path")
	resolveCmd.Flags().IntVar(&resolveLimit, "limit", 0, "process at most N rows")
	resolveCmd.Flags().IntVar(&resolveWorkers, "workers", 0, "concurrent lookups (default from config)")
	resolveCmd.Flags().BoolVar(&resolveSave, "save", false, "persist resolved wells to the store")
	resolveCmd.Flags().BoolVar(&resolveDryRun, "dry-run", false, "canonicalize and normalize only, print rows as JSON")
	_ = resolveCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(resolveCmd)
}
