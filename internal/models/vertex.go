// Package models defines data types for the temporal transaction graph.
package models

import "fmt"

// Vertex represents a node in a tenant's transaction graph.
type Vertex struct {
	VID        int64  `json:"vid"`
	VType      string `json:"v_type"`
	CreateTime int64  `json:"create_time"`
	Balance    int64  `json:"balance"`
}

// VertexFilter selects the vertex subset a GraphSource read returns.
// All fields are optional; a zero value imposes no constraint.
type VertexFilter struct {
	VTypes     map[string]bool `json:"v_types,omitempty"`
	MinBalance *int64          `json:"min_balance,omitempty"`
}

// Matches reports whether v satisfies every constraint in the filter.
func (f VertexFilter) Matches(v Vertex) bool {
	if len(f.VTypes) > 0 && !f.VTypes[v.VType] {
		return false
	}

	if f.MinBalance != nil && v.Balance < *f.MinBalance {
		return false
	}

	return true
}

// CreateVertexRequest is the payload for creating a new vertex.
type CreateVertexRequest struct {
	VID        int64  `json:"vid"`
	VType      string `json:"v_type"`
	CreateTime int64  `json:"create_time"`
	Balance    int64  `json:"balance"`
}

// Validate checks CreateVertexRequest fields.
func (r *CreateVertexRequest) Validate() error {
	if r.VID <= 0 {
		return fmt.Errorf("vid must be positive")
	}

	if r.VType == "" {
		return ErrMissingVType
	}

	if len(r.VType) > 64 {
		return ErrFieldTooLong("v_type", 64)
	}

	if r.Balance < 0 {
		return fmt.Errorf("balance must be non-negative")
	}

	return nil
}
