package roadmap

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Node type tags as they appear in roadmap source data.
// The hierarchy core never branches on these; they are carried for
// consumers that group or filter rows by type.
const (
	TypeTitle     = "title"
	TypeTopic     = "topic"
	TypeSubtopic  = "subtopic"
	TypeSection   = "section"
	TypeParagraph = "paragraph"
	TypeButton    = "button"
)

// Well-known attribute keys passed through from roadmap source data.
// Attributes are opaque to the hierarchy core.
const (
	AttrPosition = "position"
	AttrWidth    = "width"
	AttrHeight   = "height"
	AttrStyle    = "style"
	AttrZIndex   = "zIndex"
)

// =============================================================================
// Node - Roadmap Content Unit
// =============================================================================

// Node is a unit of content within a roadmap graph.
//
// ID is unique within its roadmap; collisions across roadmaps are fine
// because hierarchy is always computed per roadmap. Attrs holds
// positional and styling data (position, width, height, style, zIndex)
// passed through from the source format untouched.
type Node struct {
	ID    string         `json:"id"`
	Type  string         `json:"type,omitempty"`
	Label string         `json:"label,omitempty"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n *Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// =============================================================================
// Edge - Directed Parent→Child Relation
// =============================================================================

// Edge represents a directed edge in a roadmap graph.
// Source is the parent, Target is the child.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// =============================================================================
// Roadmap - Unit of Processing
// =============================================================================

// Roadmap is a named learning-path graph: a collection of nodes plus the
// directed edges between them. It is the unit of processing - a hierarchy
// index is derived from exactly one roadmap, never across roadmaps.
//
// A Roadmap is plain data. Loading one from a source format (and writing
// derived rows back out) is the job of the surrounding tooling; this
// library receives roadmaps already parsed.
type Roadmap struct {
	Name  string `json:"name"`
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node returns the node with the given ID and true, or nil and false if
// not found. The scan is linear; use a hierarchy index for repeated
// lookups over the same roadmap.
func (r *Roadmap) Node(id string) (*Node, bool) {
	for i := range r.Nodes {
		if r.Nodes[i].ID == id {
			return &r.Nodes[i], true
		}
	}
	return nil, false
}

// NodeIDs extracts the ID from each node in a slice.
// Returns a new slice containing the IDs in the same order as the input.
func NodeIDs(nodes []Node) []string {
	ids := make([]string, len(nodes))
	for i := range nodes {
		ids[i] = nodes[i].ID
	}
	return ids
}
