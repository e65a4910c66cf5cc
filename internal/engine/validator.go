package engine

// validateCycle applies the Cycle Validator rules of spec §4.6 to a
// stitched candidate cycle.
func validateCycle(steps []cycleStep, startVID int64, allowDupVertices, allowDupEdges bool) bool {
	if len(steps) == 0 {
		return false
	}

	if steps[len(steps)-1].DstVID != startVID {
		return false
	}

	if !allowDupVertices {
		visited := map[int64]bool{startVID: true}

		for i, s := range steps {
			isClosing := i == len(steps)-1
			if isClosing && s.DstVID == startVID {
				continue
			}

			if visited[s.DstVID] {
				return false
			}

			visited[s.DstVID] = true
		}
	}

	if !allowDupEdges {
		seen := map[int64]bool{}

		for _, s := range steps {
			if seen[s.Edge.EID] {
				return false
			}

			seen[s.Edge.EID] = true
		}
	}

	return true
}
