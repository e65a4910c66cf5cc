package engine

import (
	"context"

	"github.com/tgraph/graphqd/internal/models"
)

// Snapshot is the immutable filtered view of a tenant's graph used for the
// duration of one query (spec §3). It is built once by loadSnapshot and
// never mutated afterward.
type Snapshot struct {
	Vertices map[int64]models.Vertex
	OutAdj   map[int64][]models.Edge
	InAdj    map[int64][]models.Edge
}

// loadSnapshot issues the two GraphSource reads and materializes the
// working graph: a vertex map plus outgoing/incoming adjacency lists,
// dropping any edge whose endpoint did not survive the vertex filter
// (spec §3 invariant 1, §4.2).
func loadSnapshot(
	ctx context.Context,
	source GraphSource,
	tenantID string,
	vf models.VertexFilter,
	ef models.EdgeFilter,
) (*Snapshot, error) {
	vertices, err := source.LoadVertices(ctx, tenantID, vf)
	if err != nil {
		return nil, upstreamFailure("loading vertices", err)
	}

	edges, err := source.LoadEdges(ctx, tenantID, ef)
	if err != nil {
		return nil, upstreamFailure("loading edges", err)
	}

	snap := &Snapshot{
		Vertices: make(map[int64]models.Vertex, len(vertices)),
		OutAdj:   make(map[int64][]models.Edge),
		InAdj:    make(map[int64][]models.Edge),
	}

	for _, v := range vertices {
		snap.Vertices[v.VID] = v
	}

	for _, e := range edges {
		if _, ok := snap.Vertices[e.SrcVID]; !ok {
			continue
		}

		if _, ok := snap.Vertices[e.DstVID]; !ok {
			continue
		}

		snap.OutAdj[e.SrcVID] = append(snap.OutAdj[e.SrcVID], e)
		snap.InAdj[e.DstVID] = append(snap.InAdj[e.DstVID], e)
	}

	return snap, nil
}
