package hierarchy

import (
	"testing"

	"github.com/matzehuels/trailmap/pkg/roadmap"
)

func TestSummarize(t *testing.T) {
	rm := &roadmap.Roadmap{
		Name: "backend",
		Nodes: []roadmap.Node{
			{ID: "root", Type: roadmap.TypeTitle, Label: "Backend"},
			{ID: "lang", Type: roadmap.TypeTopic, Label: "Languages"},
			{ID: "go", Type: roadmap.TypeSubtopic, Label: "Go"},
			{ID: "db", Type: roadmap.TypeTopic, Label: "Databases"},
		},
		Edges: []roadmap.Edge{
			{Source: "root", Target: "lang"},
			{Source: "root", Target: "db"},
			{Source: "lang", Target: "go"},
		},
	}
	ix := BuildRoadmap(rm)

	s := Summarize(rm, ix, 0)

	if s.Roadmap != "backend" {
		t.Errorf("Roadmap = %q, want backend", s.Roadmap)
	}
	if s.TotalNodes != 4 {
		t.Errorf("TotalNodes = %d, want 4", s.TotalNodes)
	}
	if s.RootNodes != 1 {
		t.Errorf("RootNodes = %d, want 1", s.RootNodes)
	}
	if s.ChildNodes != 3 {
		t.Errorf("ChildNodes = %d, want 3", s.ChildNodes)
	}
	if s.MaxDepth != 2 {
		t.Errorf("MaxDepth = %d, want 2", s.MaxDepth)
	}
	if s.Anomalies != 0 {
		t.Errorf("Anomalies = %d, want 0", s.Anomalies)
	}
	if got := s.TypeCounts[roadmap.TypeTopic]; got != 2 {
		t.Errorf("TypeCounts[topic] = %d, want 2", got)
	}

	if len(s.TopParents) != 2 {
		t.Fatalf("TopParents = %v, want 2 entries", s.TopParents)
	}
	if s.TopParents[0].ID != "root" || s.TopParents[0].Children != 2 {
		t.Errorf("TopParents[0] = %+v, want root with 2 children", s.TopParents[0])
	}
	if s.TopParents[0].Label != "Backend" {
		t.Errorf("TopParents[0].Label = %q, want Backend", s.TopParents[0].Label)
	}
	if s.TopParents[1].ID != "lang" || s.TopParents[1].Children != 1 {
		t.Errorf("TopParents[1] = %+v, want lang with 1 child", s.TopParents[1])
	}
}

func TestSummarize_TopNCapsAndTieBreak(t *testing.T) {
	rm := &roadmap.Roadmap{
		Name: "tiny",
		Nodes: []roadmap.Node{
			{ID: "b"}, {ID: "a"}, {ID: "c1"}, {ID: "c2"},
		},
		Edges: []roadmap.Edge{
			{Source: "b", Target: "c1"},
			{Source: "a", Target: "c2"},
		},
	}
	ix := BuildRoadmap(rm)

	s := Summarize(rm, ix, 1)
	if len(s.TopParents) != 1 {
		t.Fatalf("TopParents = %v, want 1 entry", s.TopParents)
	}
	// Equal child counts: the lexically smaller id wins the tie.
	if s.TopParents[0].ID != "a" {
		t.Errorf("TopParents[0].ID = %q, want a", s.TopParents[0].ID)
	}
}

func TestSummarize_CycleDoesNotInflateMaxDepth(t *testing.T) {
	rm := &roadmap.Roadmap{
		Name:  "loop",
		Nodes: []roadmap.Node{{ID: "A"}, {ID: "B"}},
		Edges: []roadmap.Edge{
			{Source: "A", Target: "B"},
			{Source: "B", Target: "A"},
		},
	}
	ix := BuildRoadmap(rm)

	s := Summarize(rm, ix, 0)
	if s.MaxDepth != 0 {
		t.Errorf("MaxDepth = %d, want 0 for an all-cycle roadmap", s.MaxDepth)
	}
	if s.Anomalies == 0 {
		t.Error("Anomalies = 0, want the cycle recorded")
	}
}
