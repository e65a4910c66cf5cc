package models

import "fmt"

// Edge represents a directed, timestamped, amount-bearing transaction
// between two vertices in a tenant's graph.
type Edge struct {
	EID       int64  `json:"eid"`
	SrcVID    int64  `json:"src_vid"`
	DstVID    int64  `json:"dst_vid"`
	Amount    int64  `json:"amount"`
	OccurTime int64  `json:"occur_time"`
	EType     string `json:"e_type"`
}

// EdgeFilter selects the edge subset a GraphSource read returns.
// All fields are optional; a zero value imposes no constraint.
type EdgeFilter struct {
	ETypes    map[string]bool `json:"e_types,omitempty"`
	MinAmount *int64          `json:"min_amount,omitempty"`
	MaxAmount *int64          `json:"max_amount,omitempty"`
}

// Validate checks that the filter's own bounds are internally consistent.
func (f EdgeFilter) Validate() error {
	if f.MinAmount != nil && *f.MinAmount < 0 {
		return fmt.Errorf("min_amount must be non-negative")
	}

	if f.MaxAmount != nil && *f.MaxAmount < 0 {
		return fmt.Errorf("max_amount must be non-negative")
	}

	if f.MinAmount != nil && f.MaxAmount != nil && *f.MinAmount > *f.MaxAmount {
		return fmt.Errorf("min_amount must be <= max_amount")
	}

	return nil
}

// Matches reports whether e satisfies every constraint in the filter.
func (f EdgeFilter) Matches(e Edge) bool {
	if len(f.ETypes) > 0 && !f.ETypes[e.EType] {
		return false
	}

	if f.MinAmount != nil && e.Amount < *f.MinAmount {
		return false
	}

	if f.MaxAmount != nil && e.Amount > *f.MaxAmount {
		return false
	}

	return true
}

// CreateEdgeRequest is the payload for creating a new edge.
type CreateEdgeRequest struct {
	EID       int64  `json:"eid"`
	SrcVID    int64  `json:"src_vid"`
	DstVID    int64  `json:"dst_vid"`
	Amount    int64  `json:"amount"`
	OccurTime int64  `json:"occur_time"`
	EType     string `json:"e_type"`
}

// Validate checks CreateEdgeRequest fields.
func (r *CreateEdgeRequest) Validate() error {
	if r.EID <= 0 {
		return fmt.Errorf("eid must be positive")
	}

	if r.SrcVID <= 0 || r.DstVID <= 0 {
		return fmt.Errorf("src_vid and dst_vid must be positive")
	}

	if r.Amount < 0 {
		return fmt.Errorf("amount must be non-negative")
	}

	if r.OccurTime <= 0 {
		return fmt.Errorf("occur_time must be positive")
	}

	if r.EType == "" {
		return ErrMissingEType
	}

	if len(r.EType) > 64 {
		return ErrFieldTooLong("e_type", 64)
	}

	return nil
}
