// Package hierarchy reconstructs parent/child structure from a roadmap's
// flat edge list and answers queries over it.
//
// # Overview
//
// Roadmap source data stores structure as an edge list: directed
// parent→child pairs alongside a flat node set. [Build] folds that edge
// list into an [Index] in a single pass: child→parent lookup (at most one
// parent per node, last edge wins), parent→ordered-children lookup, root
// detection, and memoized depth for every node.
//
// # Basic Usage
//
// Build an index and query it:
//
//	ix := hierarchy.Build(rm.Nodes, rm.Edges)
//	for _, id := range ix.Roots() {
//	    walk(ix, id)
//	}
//	parent, ok := ix.ParentOf("backend")
//	depth, ok := ix.DepthOf("postgres")
//
// The index is immutable after Build, so any number of goroutines can
// query it concurrently without locking.
//
// # Anomalies
//
// Real roadmap data is messy: edges point at deleted nodes, shared
// sub-concepts receive several incoming edges, and hand-edited graphs
// occasionally loop. None of that aborts the build. Every irregularity is
// recorded as an [Anomaly] on the index, queries stay well-defined (walks
// are bounded, cyclic chains report [CycleDepth]), and the caller chooses
// how loudly to complain.
//
// # Statistics
//
// [Summarize] condenses an index into per-roadmap statistics (root and
// child counts, type distribution, most-connected parents, max depth) for
// comparison across a batch of roadmaps.
package hierarchy
