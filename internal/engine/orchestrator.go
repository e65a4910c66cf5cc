package engine

import (
	"context"
	"time"

	"github.com/tgraph/graphqd/internal/models"
)

// Input constraints from spec §4.1.
const (
	minMaxDepth = 1
	maxMaxDepth = 20
	minLimit    = 1
	maxLimit    = 1000
)

// Engine runs temporal cycle-enumeration queries against a GraphSource.
type Engine struct {
	Source GraphSource
}

// New creates an Engine backed by the given GraphSource.
func New(source GraphSource) *Engine {
	return &Engine{Source: source}
}

// QueryCycles runs one CycleQuery end to end: validates input, loads a
// snapshot, drives alternating forward/backward expansion rounds, and
// composes the response (spec §4.1).
func (eng *Engine) QueryCycles(ctx context.Context, tenantID string, req CycleQueryRequest) (*Result, error) {
	start := time.Now()

	req.defaults()

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	snap, err := loadSnapshot(ctx, eng.Source, tenantID, req.VertexFilter, req.EdgeFilter)
	if err != nil {
		return nil, err
	}

	if _, ok := snap.Vertices[req.StartVID]; !ok {
		exists, existsErr := eng.startExistsUnfiltered(ctx, tenantID, req.StartVID)
		if existsErr != nil {
			return nil, existsErr
		}

		if !exists {
			return nil, notFound("start vertex not found")
		}

		return &Result{
			Found:             false,
			ExecutionTimeMS:   time.Since(start).Milliseconds(),
			InformationalNote: "start vertex was excluded by the vertex filter",
		}, nil
	}

	cycles := eng.search(snap, req)

	return &Result{
		Found:           len(cycles) > 0,
		Count:           len(cycles),
		Data:            cycles,
		ExecutionTimeMS: time.Since(start).Milliseconds(),
	}, nil
}

// startExistsUnfiltered resolves whether the start vertex exists in the
// tenant's graph at all, independent of the vertex filter. It is the only
// GraphSource call beyond the Snapshot Loader's two reads, and fires only
// on the rare path where the start vertex is absent from the filtered
// snapshot — needed to distinguish NotFound from FilterElidesStart (spec
// §4.1, §7; see DESIGN.md).
func (eng *Engine) startExistsUnfiltered(ctx context.Context, tenantID string, startVID int64) (bool, error) {
	vertices, err := eng.Source.LoadVertices(ctx, tenantID, models.VertexFilter{})
	if err != nil {
		return false, upstreamFailure("checking start vertex existence", err)
	}

	for _, v := range vertices {
		if v.VID == startVID {
			return true, nil
		}
	}

	return false, nil
}

// search drives the alternating expansion rounds of spec §4.1 step 3 and
// returns every unique cycle discovered, in discovery order.
//
// Expansion alternates a single hop at a time, forward first: forward
// reaches ceil(max_depth/2) hops and backward floor(max_depth/2) hops once
// max_depth total hops have been spent. For even max_depth this is the same
// depth split either side would get under a round that advances both
// frontiers together. For odd max_depth, advancing both frontiers together
// under-spends the budget by one hop and can never meet (e.g. a 3-edge
// cycle is unreachable at max_depth=3, since each side would stop at depth
// 1). Single-hop alternation spends the full budget and gives forward the
// extra hop on odd totals, so every cycle length up to max_depth is
// reachable. See DESIGN.md.
func (eng *Engine) search(snap *Snapshot, req CycleQueryRequest) []Cycle {
	fwd := newFrontierState(req.StartVID)
	bwd := newFrontierState(req.StartVID)
	seen := make(map[string]bool)
	cycles := make([]Cycle, 0)

	fwdDepth, bwdDepth := 0, 0
	forwardTurn := true

	for step := 0; step < req.MaxDepth; step++ {
		if len(cycles) >= req.Limit {
			break
		}

		if forwardTurn {
			fwdDepth++
			if expandForward(snap, fwd, fwdDepth, req.Direction) == 0 {
				break
			}
		} else {
			bwdDepth++
			if expandBackward(snap, bwd, bwdDepth, req.Direction) == 0 {
				break
			}
		}

		detectCollisions(snap, fwd, bwd, req.StartVID, req.AllowDupVertices, req.AllowDupEdges, req.Limit, seen, &cycles)

		forwardTurn = !forwardTurn
	}

	return cycles
}

// validateRequest applies the input constraints of spec §4.1. Every
// violation fails with InvalidArgument.
func validateRequest(req CycleQueryRequest) error {
	if req.StartVID <= 0 {
		return invalidArgument("start_vid must be positive")
	}

	if req.MaxDepth < minMaxDepth || req.MaxDepth > maxMaxDepth {
		return invalidArgument("max_depth must be between %d and %d", minMaxDepth, maxMaxDepth)
	}

	if req.Limit < minLimit || req.Limit > maxLimit {
		return invalidArgument("limit must be between %d and %d", minLimit, maxLimit)
	}

	if !req.Direction.valid() {
		return invalidArgument("direction must be %q or %q", DirectionForward, DirectionAny)
	}

	if err := req.EdgeFilter.Validate(); err != nil {
		return invalidArgument("%s", err.Error())
	}

	if req.VertexFilter.MinBalance != nil && *req.VertexFilter.MinBalance < 0 {
		return invalidArgument("min_balance must be non-negative")
	}

	return nil
}
