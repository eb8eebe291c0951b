package hierarchy

import (
	"fmt"

	"github.com/matzehuels/trailmap/pkg/errors"
)

// Anomaly records a non-fatal structural irregularity found while building
// or resolving a hierarchy index. Anomalies never abort index construction;
// the index stays usable for the non-anomalous subset of nodes, and the
// caller decides whether to warn, repair, or ignore.
//
// The Code field uses the shared error-code vocabulary:
//
//   - [errors.ErrCodeDanglingEdge]: an edge endpoint is absent from the
//     roadmap's node set; the edge was skipped. Node is the missing
//     endpoint, Parent the edge source.
//   - [errors.ErrCodeMultipleParent]: a node received a second incoming
//     edge; the last-seen parent wins. Node is the child, Parent the
//     winning parent.
//   - [errors.ErrCodeCycle]: a parent walk revisited a node already on its
//     current path. Node is the node where the walk re-entered the path.
type Anomaly struct {
	Code   errors.Code // Anomaly category (ANOMALY_* code)
	Node   string      // Affected node id
	Parent string      // Implicated parent id, when relevant
	Detail string      // Human-readable description
}

// Err converts the anomaly into a structured error for logging or
// propagation by callers that treat anomalies as failures.
func (a Anomaly) Err() error {
	return errors.New(a.Code, "%s", a.Detail)
}

// String implements fmt.Stringer.
func (a Anomaly) String() string {
	return fmt.Sprintf("%s: %s", a.Code, a.Detail)
}

func danglingEdge(source, target, missing string) Anomaly {
	return Anomaly{
		Code:   errors.ErrCodeDanglingEdge,
		Node:   missing,
		Parent: source,
		Detail: fmt.Sprintf("edge %s→%s references unknown node %q", source, target, missing),
	}
}

func multipleParent(child, previous, winner string) Anomaly {
	return Anomaly{
		Code:   errors.ErrCodeMultipleParent,
		Node:   child,
		Parent: winner,
		Detail: fmt.Sprintf("node %q has multiple parents: %q replaced by %q", child, previous, winner),
	}
}

func cycle(node string) Anomaly {
	return Anomaly{
		Code:   errors.ErrCodeCycle,
		Node:   node,
		Detail: fmt.Sprintf("parent chain through %q is cyclic", node),
	}
}
