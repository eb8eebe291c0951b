// Package roadmap defines the data model for roadmap graphs: nodes,
// directed parent→child edges, and the named Roadmap that bundles them.
//
// The types here are plain records with JSON tags describing the canonical
// wire shape. Parsing roadmap source files and serializing derived tables
// are the responsibility of the surrounding tooling - a [Roadmap] arrives
// already parsed, gets indexed by the hierarchy package, and is discarded
// when the consuming step finishes.
//
// Positional and styling attributes from the source format travel in
// [Node.Attrs] as opaque pass-through data. Nothing in this module ever
// interprets them.
package roadmap
