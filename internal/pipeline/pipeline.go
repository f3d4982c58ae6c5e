// Package pipeline drives well records through the processing stages:
// identity canonicalization, registry resolution and enrichment, and field
// normalization. Rows degrade independently; one bad record never aborts a
// batch.
package pipeline

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/sells-group/wells-cli/internal/dataset"
	"github.com/sells-group/wells-cli/internal/identity"
	"github.com/sells-group/wells-cli/internal/model"
	"github.com/sells-group/wells-cli/internal/registry"
)

// Orchestrator runs pipeline stages over a table of well records.
type Orchestrator struct {
	ids      *identity.Normalizer
	registry *registry.Client
	limiter  *rate.Limiter
	workers  int
	log      *zap.Logger
}

// Options configures an Orchestrator.
type Options struct {
	Identity *identity.Normalizer
	Registry *registry.Client
	Limiter  *rate.Limiter // paces registry row lookups
	Workers  int
}

// New creates an Orchestrator. A nil limiter means unpaced; workers below 1
// run sequentially.
func New(opts Options) *Orchestrator {
	if opts.Identity == nil {
		opts.Identity = identity.New(identity.DefaultConfig())
	}
	if opts.Limiter == nil {
		opts.Limiter = rate.NewLimiter(rate.Inf, 1)
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Orchestrator{
		ids:      opts.Identity,
		registry: opts.Registry,
		limiter:  opts.Limiter,
		workers:  opts.Workers,
		log:      zap.L().With(zap.String("component", "pipeline")),
	}
}

// Stats summarizes one Resolve pass.
type Stats struct {
	Resolved int64 `json:"resolved"` // detail page reached and parsed
	Degraded int64 `json:"degraded"` // enriched with defaults only
	Skipped  int64 `json:"skipped"`  // identity invalid, never sent to the registry
}

// Resolve canonicalizes identity for every record and enriches the valid ones
// from the registry. Records are mutated in place, so input order survives
// regardless of worker count.
func (o *Orchestrator) Resolve(ctx context.Context, table *dataset.Table) (Stats, error) {
	var stats struct {
		resolved atomic.Int64
		degraded atomic.Int64
		skipped  atomic.Int64
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for _, rec := range table.Records {
		g.Go(func() error {
			switch o.resolveRecord(ctx, rec) {
			case outcomeResolved:
				stats.resolved.Add(1)
			case outcomeDegraded:
				stats.degraded.Add(1)
			case outcomeSkipped:
				stats.skipped.Add(1)
			}
			return nil // row failures are recorded on the row, not the batch
		})
	}

	err := g.Wait()
	out := Stats{
		Resolved: stats.resolved.Load(),
		Degraded: stats.degraded.Load(),
		Skipped:  stats.skipped.Load(),
	}
	o.log.Info("resolve pass complete",
		zap.Int64("resolved", out.Resolved),
		zap.Int64("degraded", out.Degraded),
		zap.Int64("skipped", out.Skipped),
	)
	return out, err
}

// Canonicalize derives identity for every record without touching the
// registry. Rows without a valid API number are marked skipped.
func (o *Orchestrator) Canonicalize(table *dataset.Table) {
	for _, rec := range table.Records {
		if !o.canonicalizeRecord(rec) {
			rec.Skipped = true
		}
	}
}

func (o *Orchestrator) canonicalizeRecord(rec *model.WellRecord) bool {
	api, apiOK := o.ids.NormalizeAPI(rec.Get(model.ColAPINumber))
	name, _ := o.ids.NormalizeWellName(rec.Get(model.ColWellName))
	rec.APIClean = api
	rec.WellNameClean = name
	rec.ApplyIdentity()
	return apiOK
}

type outcome int

const (
	outcomeResolved outcome = iota
	outcomeDegraded
	outcomeSkipped
)

func (o *Orchestrator) resolveRecord(ctx context.Context, rec *model.WellRecord) outcome {
	if !o.canonicalizeRecord(rec) {
		o.log.Info("skipping row without a valid api number",
			zap.Int("row", rec.Index),
			zap.String("api_number", rec.Get(model.ColAPINumber)),
		)
		rec.Skipped = true
		return outcomeSkipped
	}

	// Pacing applies to every registry-bound row, successful or not.
	if err := o.limiter.Wait(ctx); err != nil {
		rec.ApplyDetails()
		return outcomeDegraded
	}

	rows, err := o.registry.Lookup(ctx, rec.APIClean, rec.WellNameClean)
	if err != nil {
		o.log.Warn("registry lookup failed, keeping defaults",
			zap.Int("row", rec.Index),
			zap.String("api_clean", rec.APIClean),
			zap.Error(err),
		)
		rec.ApplyDetails()
		return outcomeDegraded
	}

	link, found := registry.SelectDetailLink(rows, rec.APIClean)
	if !found {
		o.log.Info("well absent from registry",
			zap.Int("row", rec.Index),
			zap.String("api_clean", rec.APIClean),
		)
		rec.ApplyDetails()
		return outcomeDegraded
	}

	rec.DetailURL = link
	enrichment := o.registry.ExtractDetails(ctx, link)
	rec.Details = enrichment.Fields
	rec.ApplyDetails()

	if !enrichment.Available {
		return outcomeDegraded
	}
	return outcomeResolved
}
