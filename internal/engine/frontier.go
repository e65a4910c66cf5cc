package engine

import (
	"sort"

	"github.com/tgraph/graphqd/internal/models"
)

// frontierEntry records how one BFS side first reached a vertex: its
// parent, the edge used to arrive, the depth at which it arrived, the full
// path taken to get there, and the timestamp of the last edge on that
// path (spec §3). The sentinel LastOccurTime == 0 means "no predecessor
// edge yet" and unlocks the first hop on either side without a temporal
// constraint.
type frontierEntry struct {
	ParentVID     int64
	ParentEdge    *models.Edge
	Depth         int
	PathVIDs      []int64
	PathEdges     []models.Edge
	LastOccurTime int64
}

// frontierState maps a reached vertex id to the entry that first reached
// it, one map per BFS direction.
type frontierState map[int64]*frontierEntry

// newFrontierState seeds a fresh frontier with the start vertex as a
// zero-depth entry (spec §4.1 step 2).
func newFrontierState(startVID int64) frontierState {
	return frontierState{
		startVID: {
			Depth:         0,
			PathVIDs:      []int64{startVID},
			PathEdges:     nil,
			LastOccurTime: 0,
		},
	}
}

// frontierPair pairs a reached vertex id with the entry that reached it.
type frontierPair struct {
	VID   int64
	Entry *frontierEntry
}

// atDepth returns the (vertex, entry) pairs currently recorded at the
// given depth.
func (fs frontierState) atDepth(depth int) []frontierPair {
	out := make([]frontierPair, 0)

	for vid, e := range fs {
		if e.Depth == depth {
			out = append(out, frontierPair{VID: vid, Entry: e})
		}
	}

	// Map iteration order is randomized; expansion order only affects which
	// equal-depth parent "wins" a shared child (spec §4.3 first-writer-wins,
	// OQ3), so a fixed order keeps results reproducible across runs.
	sort.Slice(out, func(i, j int) bool { return out[i].VID < out[j].VID })

	return out
}

// pathContains reports whether vid already appears in path (simple-path
// enforcement during expansion, spec §4.3).
func pathContains(path []int64, vid int64) bool {
	for _, v := range path {
		if v == vid {
			return true
		}
	}

	return false
}
