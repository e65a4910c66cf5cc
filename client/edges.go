package client

import (
	"context"
	"strconv"
)

// EdgeService handles edge CRUD operations.
type EdgeService struct {
	c *Client
}

type edgeListResponse struct {
	Edges   []Edge `json:"edges"`
	HasMore bool   `json:"has_more"`
}

// Get returns a single edge by EID.
func (s *EdgeService) Get(ctx context.Context, eid int64) (*Edge, error) {
	var e Edge
	if err := s.c.get(ctx, "/api/v1/edges/"+strconv.FormatInt(eid, 10), nil, &e); err != nil {
		return nil, err
	}

	return &e, nil
}

// Create creates a new edge between two existing vertices.
func (s *EdgeService) Create(ctx context.Context, req *CreateEdgeRequest) (*Edge, error) {
	var e Edge
	if err := s.c.post(ctx, "/api/v1/edges", req, &e); err != nil {
		return nil, err
	}

	return &e, nil
}

// Delete removes an edge by EID.
func (s *EdgeService) Delete(ctx context.Context, eid int64) error {
	return s.c.del(ctx, "/api/v1/edges/"+strconv.FormatInt(eid, 10), nil)
}
