package engine

import (
	"context"
	"testing"

	"github.com/tgraph/graphqd/internal/models"
)

// P8. A filtered-out vertex never appears in the snapshot, and an edge
// touching a filtered-out endpoint is dropped even though the edge itself
// passed its own filter.
func TestLoadSnapshot_DropsEdgesTouchingFilteredVertices(t *testing.T) {
	minBalance := int64(50)
	src := &fakeGraphSource{
		vertices: []models.Vertex{
			{VID: 1, VType: "account", Balance: 100},
			{VID: 2, VType: "account", Balance: 10}, // excluded by min_balance
		},
		edges: []models.Edge{
			{EID: 1, SrcVID: 1, DstVID: 2, OccurTime: 100, EType: "transfer"},
		},
	}

	snap, err := loadSnapshot(context.Background(), src, "t1", models.VertexFilter{MinBalance: &minBalance}, models.EdgeFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := snap.Vertices[2]; ok {
		t.Error("filtered-out vertex 2 present in snapshot")
	}
	if len(snap.OutAdj[1]) != 0 {
		t.Errorf("expected edge touching filtered vertex to be dropped, got %v", snap.OutAdj[1])
	}
}

func TestLoadSnapshot_UpstreamErrorsWrapped(t *testing.T) {
	_, err := loadSnapshot(context.Background(), failingGraphSource{}, "t1", models.VertexFilter{}, models.EdgeFilter{})
	if err == nil {
		t.Fatal("expected error")
	}

	var engErr *Error
	if engErr, _ = err.(*Error); engErr == nil {
		t.Fatalf("expected *engine.Error, got %T", err)
	}
	if engErr.Kind != KindUpstreamFailure {
		t.Errorf("got kind %q, want %q", engErr.Kind, KindUpstreamFailure)
	}
}
