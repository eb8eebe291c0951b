package hierarchy

import (
	"slices"

	"github.com/matzehuels/trailmap/pkg/roadmap"
)

// DefaultTopParents is the number of most-connected parents reported by
// [Summarize] when topN is zero or negative.
const DefaultTopParents = 10

// Summary holds per-roadmap structural statistics derived from an index.
// It is plain data: rendering it into a report is the caller's job.
type Summary struct {
	Roadmap    string         `json:"roadmap"`
	TotalNodes int            `json:"total_nodes"`
	RootNodes  int            `json:"root_nodes"`
	ChildNodes int            `json:"child_nodes"`
	MaxDepth   int            `json:"max_depth"`
	TypeCounts map[string]int `json:"type_counts,omitempty"`
	TopParents []ParentCount  `json:"top_parents,omitempty"`
	Anomalies  int            `json:"anomalies"`
}

// ParentCount pairs a parent node with the number of children it sources.
type ParentCount struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Children int    `json:"children"`
}

// Summarize computes structural statistics for a roadmap over its index:
// root vs child counts, node-type distribution, maximum depth, and the
// topN parents with the most children (label resolved through the index).
// Nodes on cyclic parent chains don't contribute to MaxDepth.
//
// Ties between equally connected parents break by id so the ordering is
// deterministic.
func Summarize(rm *roadmap.Roadmap, ix *Index, topN int) Summary {
	if topN <= 0 {
		topN = DefaultTopParents
	}

	s := Summary{
		Roadmap:    rm.Name,
		TotalNodes: ix.NodeCount(),
		RootNodes:  len(ix.Roots()),
		TypeCounts: make(map[string]int),
		Anomalies:  len(ix.Anomalies()),
	}

	var parents []ParentCount
	for id, i := range ix.byID {
		n := &ix.nodes[i]
		if n.Type != "" {
			s.TypeCounts[n.Type]++
		}
		if _, hasParent := ix.parent[id]; hasParent {
			s.ChildNodes++
		}
		if d := ix.depth[id]; d > s.MaxDepth {
			s.MaxDepth = d
		}
		if kids := ix.children[id]; len(kids) > 0 {
			parents = append(parents, ParentCount{
				ID:       id,
				Label:    n.DisplayLabel(),
				Children: len(kids),
			})
		}
	}

	slices.SortFunc(parents, func(a, b ParentCount) int {
		if a.Children != b.Children {
			return b.Children - a.Children
		}
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
	if len(parents) > topN {
		parents = parents[:topN]
	}
	s.TopParents = parents

	if len(s.TypeCounts) == 0 {
		s.TypeCounts = nil
	}
	return s
}
