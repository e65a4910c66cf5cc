package client

import (
	"context"
	"strconv"
)

// CycleService runs temporal cycle-enumeration queries.
type CycleService struct {
	c *Client
}

// Query runs a CycleQuery anchored at startVID.
func (s *CycleService) Query(ctx context.Context, startVID int64, req *CycleQueryRequest) (*CycleQueryResult, error) {
	var resp CycleQueryResult
	if err := s.c.post(ctx, "/api/v1/graph/"+strconv.FormatInt(startVID, 10)+"/cycles", req, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}
