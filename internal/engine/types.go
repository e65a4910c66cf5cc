// Package engine implements the temporal cycle-enumeration core: a
// meet-in-the-middle bidirectional BFS over a tenant's transaction graph,
// anchored at a start vertex, with canonical rotation/reflection-invariant
// deduplication of the cycles it reports.
package engine

import (
	"context"

	"github.com/tgraph/graphqd/internal/models"
)

// GraphSource yields a tenant's filtered vertex and edge universe. It is the
// engine's only dependency on a backing store; callers own what "tenant"
// and "filter" mean to their persistence layer.
type GraphSource interface {
	LoadVertices(ctx context.Context, tenantID string, filter models.VertexFilter) ([]models.Vertex, error)
	LoadEdges(ctx context.Context, tenantID string, filter models.EdgeFilter) ([]models.Edge, error)
}

// Direction selects which temporal constraint the forward/backward
// expanders enforce.
type Direction string

// Recognized Direction literals.
const (
	DirectionForward Direction = "forward"
	DirectionAny     Direction = "any"
)

// valid reports whether d is one of the two allowed literals.
func (d Direction) valid() bool {
	return d == DirectionForward || d == DirectionAny
}

// CycleQueryRequest is the input to Engine.QueryCycles.
type CycleQueryRequest struct {
	StartVID         int64
	MaxDepth         int
	Direction        Direction
	VertexFilter     models.VertexFilter
	EdgeFilter       models.EdgeFilter
	Limit            int
	AllowDupVertices bool
	AllowDupEdges    bool
}

// defaults fills in the CycleQuery defaults documented in spec §6.
func (r *CycleQueryRequest) defaults() {
	if r.Direction == "" {
		r.Direction = DirectionForward
	}

	if r.Limit == 0 {
		r.Limit = 10
	}
}

// Cycle is one reported closed walk: the ordered vertices it visits and the
// ordered edges that connect them, both in traversal order.
type Cycle struct {
	Vertices []models.Vertex `json:"vertices"`
	Edges    []models.Edge   `json:"edges"`
}

// Result is the outcome of one CycleQuery.
type Result struct {
	Found             bool    `json:"found"`
	Count             int     `json:"count"`
	Data              []Cycle `json:"data"`
	ExecutionTimeMS   int64   `json:"execution_time_ms"`
	InformationalNote string  `json:"informational_note,omitempty"` // set only when Found is false due to a filtered-out start vertex
}

// cycleStep is one directed hop of a stitched candidate cycle, in
// traversal order: the walk goes SrcVID -> DstVID across Edge.
type cycleStep struct {
	SrcVID int64
	DstVID int64
	Edge   models.Edge
}
