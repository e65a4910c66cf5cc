package client

import (
	"context"
	"net/url"
	"strconv"
)

// VertexService handles vertex CRUD operations.
type VertexService struct {
	c *Client
}

type vertexListResponse struct {
	Vertices []Vertex `json:"vertices"`
	HasMore  bool     `json:"has_more"`
}

// List returns vertices with optional filtering and pagination.
func (s *VertexService) List(ctx context.Context, opts *VertexListOptions) ([]Vertex, bool, error) {
	params := url.Values{}
	if opts != nil {
		if opts.VType != "" {
			params.Set("vtype", opts.VType)
		}

		if opts.Limit > 0 {
			params.Set("limit", strconv.Itoa(opts.Limit))
		}

		if opts.Offset > 0 {
			params.Set("offset", strconv.Itoa(opts.Offset))
		}
	}

	var resp vertexListResponse
	if err := s.c.get(ctx, "/api/v1/vertices", params, &resp); err != nil {
		return nil, false, err
	}

	return resp.Vertices, resp.HasMore, nil
}

// Get returns a single vertex by VID.
func (s *VertexService) Get(ctx context.Context, vid int64) (*Vertex, error) {
	var v Vertex
	if err := s.c.get(ctx, "/api/v1/vertices/"+strconv.FormatInt(vid, 10), nil, &v); err != nil {
		return nil, err
	}

	return &v, nil
}

// Create creates a new vertex.
func (s *VertexService) Create(ctx context.Context, req *CreateVertexRequest) (*Vertex, error) {
	var v Vertex
	if err := s.c.post(ctx, "/api/v1/vertices", req, &v); err != nil {
		return nil, err
	}

	return &v, nil
}

// Delete removes a vertex by VID.
func (s *VertexService) Delete(ctx context.Context, vid int64) error {
	return s.c.del(ctx, "/api/v1/vertices/"+strconv.FormatInt(vid, 10), nil)
}

// Edges returns edges incident to the given vertex.
func (s *VertexService) Edges(ctx context.Context, vid int64, limit, offset int) ([]Edge, bool, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}

	if offset > 0 {
		params.Set("offset", strconv.Itoa(offset))
	}

	var resp edgeListResponse
	if err := s.c.get(ctx, "/api/v1/vertices/"+strconv.FormatInt(vid, 10)+"/edges", params, &resp); err != nil {
		return nil, false, err
	}

	return resp.Edges, resp.HasMore, nil
}
