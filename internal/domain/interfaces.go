// Package domain defines the canonical service interfaces shared across API
// layers. Consumers should depend on these interfaces rather than
// re-declaring equivalent ones.
package domain

import (
	"context"

	"github.com/tgraph/graphqd/internal/engine"
	"github.com/tgraph/graphqd/internal/models"
)

// VertexService defines all vertex operations.
type VertexService interface {
	ListVertices(ctx context.Context, tenantID string, typeFilter string, limit, offset int) ([]models.Vertex, bool, error)
	GetVertex(ctx context.Context, tenantID string, vid int64) (*models.Vertex, error)
	CreateVertex(ctx context.Context, tenantID string, req models.CreateVertexRequest) (*models.Vertex, error)
	DeleteVertex(ctx context.Context, tenantID string, vid int64) error
}

// EdgeService defines all edge operations.
type EdgeService interface {
	ListEdges(ctx context.Context, tenantID string, vid int64, limit, offset int) ([]models.Edge, bool, error)
	GetEdge(ctx context.Context, tenantID string, eid int64) (*models.Edge, error)
	CreateEdge(ctx context.Context, tenantID string, req models.CreateEdgeRequest) (*models.Edge, error)
	DeleteEdge(ctx context.Context, tenantID string, eid int64) error
}

// CycleService defines the temporal cycle-enumeration query.
type CycleService interface {
	QueryCycles(ctx context.Context, tenantID string, req engine.CycleQueryRequest) (*engine.Result, error)
}

// TenantService resolves an API key to a tenant ID.
type TenantService interface {
	GetTenantByAPIKey(ctx context.Context, apiKey string) (string, error)
}
