// Package export flattens a roadmap and its hierarchy index into tabular
// row records.
//
// Each node becomes one [Row] carrying the node's own fields plus the
// parent id and resolved parent label, which is what downstream table
// writers emit as the parent_id / parent_label columns. This package only
// produces the records - serializing them to a concrete table format is
// the job of the surrounding tooling.
package export

import (
	"github.com/matzehuels/trailmap/pkg/hierarchy"
	"github.com/matzehuels/trailmap/pkg/roadmap"
)

// Row is one node of a roadmap, annotated with its place in the hierarchy.
// Attrs is the node's opaque pass-through data, forwarded untouched.
type Row struct {
	Roadmap     string         `json:"roadmap"`
	ID          string         `json:"id"`
	Type        string         `json:"type,omitempty"`
	Label       string         `json:"label,omitempty"`
	ParentID    string         `json:"parent_id,omitempty"`
	ParentLabel string         `json:"parent_label,omitempty"`
	Depth       int            `json:"depth"`
	Attrs       map[string]any `json:"attrs,omitempty"`
}

// Rows produces one row per roadmap node, in input order, resolving each
// node's parent id and parent label through the index.
//
// Roots get empty parent columns. Nodes on a cyclic parent chain carry
// hierarchy.CycleDepth in the Depth column; the parent columns are still
// filled from the recorded parent edge so no data is silently dropped.
func Rows(rm *roadmap.Roadmap, ix *hierarchy.Index) []Row {
	rows := make([]Row, 0, len(rm.Nodes))
	seen := make(map[string]bool, len(rm.Nodes))

	for i := range rm.Nodes {
		id := rm.Nodes[i].ID
		if id == "" || seen[id] {
			continue // the index holds one entry per id
		}
		seen[id] = true

		// Read the node back through the index so duplicate-id rows agree
		// with what queries report (last definition wins there).
		n, ok := ix.Node(id)
		if !ok {
			n = &rm.Nodes[i]
		}

		row := Row{
			Roadmap: rm.Name,
			ID:      n.ID,
			Type:    n.Type,
			Label:   n.Label,
			Attrs:   n.Attrs,
		}
		if p, ok := ix.ParentOf(n.ID); ok {
			row.ParentID = p
			row.ParentLabel = ix.LabelOf(p)
		}
		if d, ok := ix.DepthOf(n.ID); ok {
			row.Depth = d
		}
		rows = append(rows, row)
	}
	return rows
}
