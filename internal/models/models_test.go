package models_test

import (
	"strings"
	"testing"

	"github.com/tgraph/graphqd/internal/models"
)

func ptr[T any](v T) *T { return &v }

func assertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func assertErrorContains(t *testing.T, err error, want string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected error containing %q, got nil", want)
	}

	if !strings.Contains(err.Error(), want) {
		t.Errorf("expected error containing %q, got %q", want, err.Error())
	}
}

func TestCreateVertexRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     models.CreateVertexRequest
		wantErr string
	}{
		{name: "valid", req: models.CreateVertexRequest{VID: 1, VType: "account", Balance: 100}},
		{name: "non-positive vid", req: models.CreateVertexRequest{VID: 0, VType: "account"}, wantErr: "vid must be positive"},
		{name: "missing v_type", req: models.CreateVertexRequest{VID: 1}, wantErr: "v_type is required"},
		{name: "v_type too long", req: models.CreateVertexRequest{VID: 1, VType: strings.Repeat("x", 65)}, wantErr: "exceeds maximum length"},
		{name: "negative balance", req: models.CreateVertexRequest{VID: 1, VType: "account", Balance: -1}, wantErr: "balance must be non-negative"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr != "" {
				assertErrorContains(t, err, tc.wantErr)
				return
			}
			assertNoError(t, err)
		})
	}
}

func TestCreateEdgeRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     models.CreateEdgeRequest
		wantErr string
	}{
		{name: "valid", req: models.CreateEdgeRequest{EID: 1, SrcVID: 1, DstVID: 2, Amount: 10, OccurTime: 100, EType: "transfer"}},
		{name: "non-positive eid", req: models.CreateEdgeRequest{EID: 0, SrcVID: 1, DstVID: 2, OccurTime: 1, EType: "t"}, wantErr: "eid must be positive"},
		{name: "non-positive src", req: models.CreateEdgeRequest{EID: 1, SrcVID: 0, DstVID: 2, OccurTime: 1, EType: "t"}, wantErr: "src_vid and dst_vid must be positive"},
		{name: "negative amount", req: models.CreateEdgeRequest{EID: 1, SrcVID: 1, DstVID: 2, Amount: -1, OccurTime: 1, EType: "t"}, wantErr: "amount must be non-negative"},
		{name: "non-positive occur_time", req: models.CreateEdgeRequest{EID: 1, SrcVID: 1, DstVID: 2, OccurTime: 0, EType: "t"}, wantErr: "occur_time must be positive"},
		{name: "missing e_type", req: models.CreateEdgeRequest{EID: 1, SrcVID: 1, DstVID: 2, OccurTime: 1}, wantErr: "e_type is required"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr != "" {
				assertErrorContains(t, err, tc.wantErr)
				return
			}
			assertNoError(t, err)
		})
	}
}

func TestEdgeFilter_Validate(t *testing.T) {
	tests := []struct {
		name    string
		filter  models.EdgeFilter
		wantErr string
	}{
		{name: "empty", filter: models.EdgeFilter{}},
		{name: "valid range", filter: models.EdgeFilter{MinAmount: ptr(int64(1)), MaxAmount: ptr(int64(10))}},
		{name: "negative min", filter: models.EdgeFilter{MinAmount: ptr(int64(-1))}, wantErr: "min_amount must be non-negative"},
		{name: "negative max", filter: models.EdgeFilter{MaxAmount: ptr(int64(-1))}, wantErr: "max_amount must be non-negative"},
		{name: "min above max", filter: models.EdgeFilter{MinAmount: ptr(int64(10)), MaxAmount: ptr(int64(1))}, wantErr: "min_amount must be <= max_amount"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.filter.Validate()
			if tc.wantErr != "" {
				assertErrorContains(t, err, tc.wantErr)
				return
			}
			assertNoError(t, err)
		})
	}
}

func TestVertexFilter_Matches(t *testing.T) {
	f := models.VertexFilter{VTypes: map[string]bool{"account": true}, MinBalance: ptr(int64(50))}

	if !f.Matches(models.Vertex{VType: "account", Balance: 100}) {
		t.Error("expected match")
	}

	if f.Matches(models.Vertex{VType: "merchant", Balance: 100}) {
		t.Error("expected no match on wrong type")
	}

	if f.Matches(models.Vertex{VType: "account", Balance: 10}) {
		t.Error("expected no match on low balance")
	}
}

func TestEdgeFilter_Matches(t *testing.T) {
	f := models.EdgeFilter{ETypes: map[string]bool{"transfer": true}, MinAmount: ptr(int64(10)), MaxAmount: ptr(int64(100))}

	if !f.Matches(models.Edge{EType: "transfer", Amount: 50}) {
		t.Error("expected match")
	}

	if f.Matches(models.Edge{EType: "refund", Amount: 50}) {
		t.Error("expected no match on wrong type")
	}

	if f.Matches(models.Edge{EType: "transfer", Amount: 5}) {
		t.Error("expected no match below min")
	}

	if f.Matches(models.Edge{EType: "transfer", Amount: 500}) {
		t.Error("expected no match above max")
	}
}
