package hierarchy

import (
	"slices"

	"github.com/matzehuels/trailmap/pkg/roadmap"
)

// CycleDepth is the sentinel returned by [Index.DepthOf] for nodes whose
// parent chain never reaches a root because it runs into a cycle.
const CycleDepth = -1

// Index is a queryable view of one roadmap's parent/child structure,
// derived from its edge list in a single pass.
//
// Each node has at most one parent: when several edges target the same
// child, the last edge in encounter order wins and the earlier ones are
// recorded as anomalies. Nodes with no incoming edge are roots. Depths are
// resolved once during [Build], so every query is a map lookup and the
// index is immutable afterwards - safe for concurrent readers without
// locking.
type Index struct {
	nodes     []roadmap.Node
	byID      map[string]int      // node id -> position in nodes
	parent    map[string]string   // child id -> winning parent id
	children  map[string][]string // parent id -> child ids, edge-encounter order
	roots     []string            // input-node order
	depth     map[string]int      // node id -> hops to root, CycleDepth if cyclic
	edgeCount int                 // edges accepted (dangling edges excluded)
	anomalies []Anomaly
}

// Build derives an index from a roadmap's nodes and edges.
//
// Build never fails: dangling edges are skipped, duplicate incoming edges
// resolve to the last parent seen, and cyclic parent chains get the depth
// sentinel. Each irregularity is recorded and available via
// [Index.Anomalies]. Runs in O(N+E).
func Build(nodes []roadmap.Node, edges []roadmap.Edge) *Index {
	ix := &Index{
		nodes:    slices.Clone(nodes),
		byID:     make(map[string]int, len(nodes)),
		parent:   make(map[string]string),
		children: make(map[string][]string),
		depth:    make(map[string]int, len(nodes)),
	}

	// Last definition wins for duplicate ids, matching the tolerant posture
	// of edge handling below.
	for i := range ix.nodes {
		if ix.nodes[i].ID == "" {
			continue
		}
		ix.byID[ix.nodes[i].ID] = i
	}

	for _, e := range edges {
		if _, ok := ix.byID[e.Source]; !ok {
			ix.record(danglingEdge(e.Source, e.Target, e.Source))
			continue
		}
		if _, ok := ix.byID[e.Target]; !ok {
			ix.record(danglingEdge(e.Source, e.Target, e.Target))
			continue
		}
		if prev, ok := ix.parent[e.Target]; ok {
			ix.record(multipleParent(e.Target, prev, e.Source))
		}
		ix.parent[e.Target] = e.Source
		ix.children[e.Source] = append(ix.children[e.Source], e.Target)
		ix.edgeCount++
	}

	for i := range ix.nodes {
		id := ix.nodes[i].ID
		if id == "" || ix.byID[id] != i {
			continue // skipped or shadowed duplicate
		}
		if _, ok := ix.parent[id]; !ok {
			ix.roots = append(ix.roots, id)
		}
	}

	ix.resolveDepths()
	return ix
}

// BuildRoadmap is a convenience wrapper around [Build].
func BuildRoadmap(rm *roadmap.Roadmap) *Index {
	return Build(rm.Nodes, rm.Edges)
}

// resolveDepths walks each node's parent chain once, memoizing depths as it
// unwinds. A node revisited while still on the current path marks a cycle:
// the whole path is tainted with CycleDepth and a single anomaly is
// recorded for the re-entry node. Chains that merely feed into an already
// tainted node inherit the sentinel without a fresh anomaly.
func (ix *Index) resolveDepths() {
	onPath := make(map[string]bool)

	for i := range ix.nodes {
		id := ix.nodes[i].ID
		if id == "" || ix.byID[id] != i {
			continue
		}
		if _, done := ix.depth[id]; done {
			continue
		}

		// Climb until a memoized node, a root, or a repeat on this path.
		// last holds the depth of the deepest path element once the stop
		// point is known; CycleDepth taints the whole path.
		var path []string
		curr := id
		last := 0
		for {
			if d, done := ix.depth[curr]; done {
				if d == CycleDepth {
					last = CycleDepth
				} else {
					last = d + 1 // path bottom hangs off the memoized node
				}
				break
			}
			if onPath[curr] {
				ix.record(cycle(curr))
				last = CycleDepth
				break
			}
			onPath[curr] = true
			path = append(path, curr)

			p, ok := ix.parent[curr]
			if !ok {
				last = 0 // path bottom is a root
				break
			}
			curr = p
		}

		for _, id := range path {
			delete(onPath, id)
		}

		for j := len(path) - 1; j >= 0; j-- {
			if last == CycleDepth {
				ix.depth[path[j]] = CycleDepth
				continue
			}
			ix.depth[path[j]] = last + (len(path) - 1 - j)
		}
	}
}

func (ix *Index) record(a Anomaly) {
	ix.anomalies = append(ix.anomalies, a)
}

// ParentOf returns the parent id of the node and true, or "" and false if
// the node is a root or unknown. Use [Index.Contains] to tell the two
// apart.
func (ix *Index) ParentOf(id string) (string, bool) {
	p, ok := ix.parent[id]
	return p, ok
}

// ChildrenOf returns the ids of the node's children in edge-encounter
// order. Returns nil if the node has no children or doesn't exist. The
// returned slice should not be modified - use it as a read-only view.
func (ix *Index) ChildrenOf(id string) []string {
	return ix.children[id]
}

// DepthOf returns the number of parent hops from the node to its root and
// true. Roots are at depth 0. Nodes whose parent chain is cyclic report
// [CycleDepth]. Returns 0 and false for unknown ids.
func (ix *Index) DepthOf(id string) (int, bool) {
	d, ok := ix.depth[id]
	return d, ok
}

// AncestorsOf returns the node's ancestor ids ordered root first,
// immediate parent last, and true. Roots get an empty slice. Returns nil
// and false for unknown ids and for nodes on a cyclic parent chain (the
// chain has no root to anchor the ordering).
func (ix *Index) AncestorsOf(id string) ([]string, bool) {
	d, ok := ix.depth[id]
	if !ok || d == CycleDepth {
		return nil, false
	}

	ancestors := make([]string, d)
	curr := id
	for j := d - 1; j >= 0; j-- {
		curr = ix.parent[curr]
		ancestors[j] = curr
	}
	return ancestors, true
}

// IsRoot reports whether the node exists and has no recorded parent.
func (ix *Index) IsRoot(id string) bool {
	if _, ok := ix.byID[id]; !ok {
		return false
	}
	_, hasParent := ix.parent[id]
	return !hasParent
}

// Roots returns the ids of all nodes with no incoming edge, in input-node
// order. The returned slice should not be modified.
func (ix *Index) Roots() []string {
	return ix.roots
}

// Node returns the indexed node with the given ID and true, or nil and
// false if not found.
func (ix *Index) Node(id string) (*roadmap.Node, bool) {
	i, ok := ix.byID[id]
	if !ok {
		return nil, false
	}
	return &ix.nodes[i], true
}

// Contains reports whether the node id exists in the index.
func (ix *Index) Contains(id string) bool {
	_, ok := ix.byID[id]
	return ok
}

// LabelOf returns the display label for the node id, falling back to the
// id itself when the node has no label. Returns "" for unknown ids.
func (ix *Index) LabelOf(id string) string {
	n, ok := ix.Node(id)
	if !ok {
		return ""
	}
	return n.DisplayLabel()
}

// NodeCount returns the number of distinct node ids in the index.
func (ix *Index) NodeCount() int { return len(ix.byID) }

// EdgeCount returns the number of accepted edges (dangling edges are not
// counted).
func (ix *Index) EdgeCount() int { return ix.edgeCount }

// Anomalies returns the structural irregularities recorded while building
// the index, in detection order. Returns nil for a clean roadmap. The
// returned slice should not be modified.
func (ix *Index) Anomalies() []Anomaly {
	return ix.anomalies
}
