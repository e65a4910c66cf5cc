package engine

import (
	"sort"

	"github.com/tgraph/graphqd/internal/models"
)

// detectCollisions joins the forward and backward frontiers at shared meet
// vertices, stitches candidate cycles, validates and canonicalizes them,
// and appends newly-unique ones to results (spec §4.5). It never appends
// past limit.
func detectCollisions(
	snap *Snapshot,
	fwd, bwd frontierState,
	startVID int64,
	allowDupVertices, allowDupEdges bool,
	limit int,
	seen map[string]bool,
	results *[]Cycle,
) {
	meets := make([]int64, 0)

	for vid := range fwd {
		if vid == startVID {
			continue
		}

		if _, ok := bwd[vid]; ok {
			meets = append(meets, vid)
		}
	}

	sort.Slice(meets, func(i, j int) bool { return meets[i] < meets[j] })

	for _, meetVID := range meets {
		if len(*results) >= limit {
			return
		}

		f := fwd[meetVID]
		b := bwd[meetVID]

		steps := stitch(f, b)

		if !validateCycle(steps, startVID, allowDupVertices, allowDupEdges) {
			continue
		}

		eids := make([]int64, len(steps))
		for i, s := range steps {
			eids[i] = s.Edge.EID
		}

		key := signatureKey(canonicalSignature(eids))
		if seen[key] {
			continue
		}

		seen[key] = true
		*results = append(*results, composeCycle(snap, startVID, f, b, steps))
	}
}

// stitch builds the ordered step sequence of a candidate cycle: the
// forward leg in traversal order, followed by the backward leg reversed
// into traversal order (spec §4.5 step 2).
func stitch(f, b *frontierEntry) []cycleStep {
	steps := make([]cycleStep, 0, len(f.PathEdges)+len(b.PathEdges))

	for i := 0; i < len(f.PathEdges); i++ {
		steps = append(steps, cycleStep{
			SrcVID: f.PathVIDs[i],
			DstVID: f.PathVIDs[i+1],
			Edge:   f.PathEdges[i],
		})
	}

	for i := len(b.PathEdges) - 1; i >= 0; i-- {
		steps = append(steps, cycleStep{
			SrcVID: b.PathVIDs[i+1],
			DstVID: b.PathVIDs[i],
			Edge:   b.PathEdges[i],
		})
	}

	return steps
}

// composeCycle builds the response-shaped Cycle for an accepted, stitched
// candidate (spec §4.7): the vertex list follows traversal order with the
// start vertex first and duplicates removed, and the edge list is the
// stitched step sequence serialized in full.
func composeCycle(snap *Snapshot, startVID int64, f, b *frontierEntry, steps []cycleStep) Cycle {
	orderedVIDs := make([]int64, 0, len(f.PathVIDs)+len(b.PathVIDs))
	orderedVIDs = append(orderedVIDs, startVID)
	orderedVIDs = append(orderedVIDs, f.PathVIDs[1:]...)

	bReversed := reverseVIDs(b.PathVIDs)
	if len(bReversed) > 2 {
		orderedVIDs = append(orderedVIDs, bReversed[1:len(bReversed)-1]...)
	}

	seenVID := make(map[int64]bool, len(orderedVIDs))
	vertices := make([]models.Vertex, 0, len(orderedVIDs))

	for _, vid := range orderedVIDs {
		if seenVID[vid] {
			continue
		}

		seenVID[vid] = true
		vertices = append(vertices, snap.Vertices[vid])
	}

	edges := make([]models.Edge, len(steps))
	for i, s := range steps {
		edges[i] = s.Edge
	}

	return Cycle{Vertices: vertices, Edges: edges}
}

func reverseVIDs(v []int64) []int64 {
	out := make([]int64, len(v))
	for i, x := range v {
		out[len(v)-1-i] = x
	}

	return out
}
