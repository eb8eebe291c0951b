// Package pkg provides the core libraries for Trailmap roadmap hierarchy
// indexing.
//
// # Overview
//
// Roadmap files describe learning-path graphs as a flat node set plus a
// directed parent→child edge list. Trailmap reconstructs the hierarchy
// from that edge list and exposes it as a queryable, immutable index that
// table exporters and validators consume. The pkg directory is organized
// into:
//
//  1. [roadmap] - Data model (nodes, edges, the per-roadmap bundle)
//  2. [hierarchy] - The core index (parent/children/root/depth/ancestor queries, anomaly collection, summaries)
//  3. [export] - Flattened row records with parent_id/parent_label columns
//  4. [pipeline] - Batch orchestration with logging and bounded parallelism
//  5. [errors] - Structured error codes shared across the library
//  6. [observability] - Optional instrumentation hooks
//
// # Quick Start
//
// Index a roadmap and flatten it to rows:
//
//	import (
//	    "github.com/matzehuels/trailmap/pkg/export"
//	    "github.com/matzehuels/trailmap/pkg/hierarchy"
//	)
//
//	ix := hierarchy.BuildRoadmap(rm)
//	for _, a := range ix.Anomalies() {
//	    // warn, repair, or ignore - the index is still usable
//	}
//	rows := export.Rows(rm, ix)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/hierarchy    # Core only
//	go test -run Example       # Examples only
//
// [roadmap]: https://pkg.go.dev/github.com/matzehuels/trailmap/pkg/roadmap
// [hierarchy]: https://pkg.go.dev/github.com/matzehuels/trailmap/pkg/hierarchy
// [export]: https://pkg.go.dev/github.com/matzehuels/trailmap/pkg/export
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/trailmap/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/trailmap/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/trailmap/pkg/observability
package pkg
