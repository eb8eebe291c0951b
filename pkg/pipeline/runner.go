package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/trailmap/pkg/export"
	"github.com/matzehuels/trailmap/pkg/hierarchy"
	"github.com/matzehuels/trailmap/pkg/observability"
	"github.com/matzehuels/trailmap/pkg/roadmap"
)

// DefaultWorkers bounds the parallelism of [Runner.BuildAll] when the
// runner doesn't specify its own limit.
const DefaultWorkers = 4

// Runner builds hierarchy indexes for batches of roadmaps.
//
// The Runner is stateless apart from its logger - it doesn't retain
// results between calls. Multiple goroutines can safely share one Runner.
type Runner struct {
	Logger *log.Logger

	// Workers caps concurrent per-roadmap builds in BuildAll.
	// Zero or negative means DefaultWorkers.
	Workers int
}

// NewRunner creates a runner with the given logger.
// If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Options controls what each build produces beyond the index itself.
type Options struct {
	// TopParents is the number of most-connected parents included in the
	// summary. Zero means hierarchy.DefaultTopParents.
	TopParents int

	// Rows requests the flattened row records alongside the index.
	Rows bool
}

// Result is the outcome of building one roadmap's hierarchy.
type Result struct {
	Roadmap string
	Index   *hierarchy.Index
	Summary hierarchy.Summary
	Rows    []export.Row // populated only when Options.Rows is set
	Stats   Stats
}

// Stats captures timing for one build.
type Stats struct {
	BuildTime time.Duration
}

// Build derives the hierarchy index for a single roadmap and summarizes
// it. Anomalies never fail the build; they are logged as warnings and
// reported through the summary and the index itself.
func (r *Runner) Build(ctx context.Context, rm *roadmap.Roadmap, opts Options) Result {
	logger := r.logger()

	observability.Build().OnBuildStart(ctx, rm.Name, len(rm.Nodes), len(rm.Edges))
	start := time.Now()

	ix := hierarchy.BuildRoadmap(rm)

	result := Result{
		Roadmap: rm.Name,
		Index:   ix,
		Summary: hierarchy.Summarize(rm, ix, opts.TopParents),
		Stats:   Stats{BuildTime: time.Since(start)},
	}
	if opts.Rows {
		result.Rows = export.Rows(rm, ix)
	}

	for _, a := range ix.Anomalies() {
		observability.Build().OnAnomaly(ctx, rm.Name, string(a.Code))
		logger.Warn("roadmap anomaly",
			"roadmap", rm.Name,
			"code", a.Code,
			"node", a.Node,
			"detail", a.Detail)
	}

	observability.Build().OnBuildComplete(ctx, rm.Name,
		len(ix.Roots()), len(ix.Anomalies()), result.Stats.BuildTime)

	logger.Info("built hierarchy",
		"roadmap", rm.Name,
		"nodes", ix.NodeCount(),
		"edges", ix.EdgeCount(),
		"roots", len(ix.Roots()),
		"anomalies", len(ix.Anomalies()),
		"duration", result.Stats.BuildTime)

	return result
}

// BuildAll builds every roadmap in the batch and returns results in input
// order. Roadmaps are independent (each owns its nodes, edges, and index),
// so builds run in parallel up to the worker limit.
//
// The only error BuildAll can return is context cancellation; per-roadmap
// irregularities surface as anomalies on the individual results.
func (r *Runner) BuildAll(ctx context.Context, roadmaps []*roadmap.Roadmap, opts Options) ([]Result, error) {
	workers := r.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}

	results := make([]Result, len(roadmaps))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, rm := range roadmaps {
		i, rm := i, rm
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = r.Build(ctx, rm, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func (r *Runner) logger() *log.Logger {
	if r.Logger == nil {
		return log.Default()
	}
	return r.Logger
}
