// Package pipeline orchestrates hierarchy builds across batches of
// roadmaps.
//
// A [Runner] wraps the per-roadmap sequence (build index → summarize →
// optionally flatten rows) with structured logging, observability hooks,
// and timing stats. [Runner.BuildAll] runs the batch in parallel with a
// bounded worker count; that is safe because every roadmap owns its own
// node, edge, and index data, and an index is immutable once built.
package pipeline
