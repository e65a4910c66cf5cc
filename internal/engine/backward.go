package engine

// expandBackward advances the backward frontier from depth-1 to depth
// along incoming edges, mirroring expandForward but walking earlier edges
// under the mirror temporal constraint (spec §4.4). It returns the number
// of vertices newly admitted at depth.
func expandBackward(snap *Snapshot, state frontierState, depth int, direction Direction) int {
	admitted := 0

	for _, parent := range state.atDepth(depth - 1) {
		for _, e := range snap.InAdj[parent.VID] {
			if direction == DirectionForward && parent.Entry.LastOccurTime != 0 && !(e.OccurTime < parent.Entry.LastOccurTime) {
				continue
			}

			if pathContains(parent.Entry.PathVIDs, e.SrcVID) {
				continue
			}

			if existing, ok := state[e.SrcVID]; ok {
				if existing.Depth <= depth {
					continue
				}
			}

			state[e.SrcVID] = &frontierEntry{
				ParentVID:     parent.VID,
				ParentEdge:    edgeCopy(e),
				Depth:         depth,
				PathVIDs:      appendVID(parent.Entry.PathVIDs, e.SrcVID),
				PathEdges:     appendEdge(parent.Entry.PathEdges, e),
				LastOccurTime: e.OccurTime,
			}
			admitted++
		}
	}

	return admitted
}
