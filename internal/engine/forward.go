package engine

import "github.com/tgraph/graphqd/internal/models"

// expandForward advances the forward frontier from depth-1 to depth along
// outgoing edges, honoring the temporal, simple-path, and first-writer-wins
// rules of spec §4.3. It returns the number of vertices newly admitted at
// depth.
func expandForward(snap *Snapshot, state frontierState, depth int, direction Direction) int {
	admitted := 0

	for _, parent := range state.atDepth(depth - 1) {
		for _, e := range snap.OutAdj[parent.VID] {
			if direction == DirectionForward && !(e.OccurTime > parent.Entry.LastOccurTime) {
				continue
			}

			if pathContains(parent.Entry.PathVIDs, e.DstVID) {
				continue
			}

			if existing, ok := state[e.DstVID]; ok {
				if existing.Depth <= depth {
					continue
				}
			}

			state[e.DstVID] = &frontierEntry{
				ParentVID:     parent.VID,
				ParentEdge:    edgeCopy(e),
				Depth:         depth,
				PathVIDs:      appendVID(parent.Entry.PathVIDs, e.DstVID),
				PathEdges:     appendEdge(parent.Entry.PathEdges, e),
				LastOccurTime: e.OccurTime,
			}
			admitted++
		}
	}

	return admitted
}

func edgeCopy(e models.Edge) *models.Edge {
	cp := e
	return &cp
}

func appendVID(path []int64, vid int64) []int64 {
	out := make([]int64, len(path)+1)
	copy(out, path)
	out[len(path)] = vid

	return out
}

func appendEdge(path []models.Edge, e models.Edge) []models.Edge {
	out := make([]models.Edge, len(path)+1)
	copy(out, path)
	out[len(path)] = e

	return out
}
