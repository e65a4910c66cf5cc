// Package store provides the Postgres-backed persistence layer for the
// transaction graph: vertex and edge CRUD, and the GraphSource the cycle
// engine reads snapshots through.
//
// Each store owns one domain (vertices, edges, tenants). VertexStore and
// EdgeStore embed shared helpers (pool, logger) via the Base struct;
// TenantStore holds only the pool. Stores never import each
// other — shared logic lives in this file.
package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/tgraph/graphqd/internal/dbpool"
	"github.com/tgraph/graphqd/internal/models"
)

const defaultQueryTimeout = 30 * time.Second

// maxListLimit bounds every paginated list query regardless of the
// caller-requested limit.
const maxListLimit = 1000

// Base contains shared dependencies for all stores. Embed this in each
// store struct.
type Base struct {
	Pool *dbpool.Pool
	Log  *logrus.Logger
}

// withTimeout creates a context with the default query timeout.
func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaultQueryTimeout)
}

// setTenant sets the tenant context for RLS policies within a transaction.
func setTenant(ctx context.Context, tx pgx.Tx, tenantID string) error {
	if _, err := uuid.Parse(tenantID); err != nil {
		return fmt.Errorf("invalid tenant ID format: %w", err)
	}

	_, err := tx.Exec(ctx, "SELECT set_config('app.tenant_id', $1, true)", tenantID)
	if err != nil {
		return fmt.Errorf("setting tenant context: %w", err)
	}

	return nil
}

// beginTx starts a read-write transaction and sets the tenant context.
func (b *Base) beginTx(ctx context.Context, tenantID string) (pgx.Tx, error) {
	tx, err := b.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}

	if err := setTenant(ctx, tx, tenantID); err != nil {
		tx.Rollback(ctx) //nolint:errcheck // best-effort rollback on setup failure.

		return nil, err
	}

	return tx, nil
}

// beginReadTx starts a read-only transaction and sets the tenant context.
func (b *Base) beginReadTx(ctx context.Context, tenantID string) (pgx.Tx, error) {
	tx, err := b.Pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, fmt.Errorf("beginning read transaction: %w", err)
	}

	if err := setTenant(ctx, tx, tenantID); err != nil {
		tx.Rollback(ctx) //nolint:errcheck // best-effort rollback on setup failure.

		return nil, err
	}

	return tx, nil
}

// notify sends a pg_notify on the gq_changes channel (best-effort, post-commit).
func (b *Base) notify(table, op, tenantID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := b.Pool.Exec(ctx, "SELECT pg_notify('gq_changes', $1)", table+":"+op+":"+tenantID); err != nil {
		b.Log.WithError(err).Warn("failed to send " + op + " " + table + " notification")
	}
}

// GetTenantByAPIKey looks up a tenant ID by API key hash.
func (b *Base) GetTenantByAPIKey(ctx context.Context, apiKey string) (string, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	hash := sha256.Sum256([]byte(apiKey))
	apiKeyHash := hex.EncodeToString(hash[:])

	var tenantID string

	err := b.Pool.QueryRow(ctx, "SELECT id FROM tenants WHERE api_key_hash = $1", apiKeyHash).Scan(&tenantID)
	if err != nil {
		return "", fmt.Errorf("looking up tenant by API key: %w", err)
	}

	return tenantID, nil
}

// GraphSource composes a VertexStore and EdgeStore into the engine's single
// read dependency (engine.GraphSource).
type GraphSource struct {
	Vertices *VertexStore
	Edges    *EdgeStore
}

// NewGraphSource creates a GraphSource backed by the given stores.
func NewGraphSource(vertices *VertexStore, edges *EdgeStore) GraphSource {
	return GraphSource{Vertices: vertices, Edges: edges}
}

// LoadVertices delegates to the vertex store.
func (g GraphSource) LoadVertices(ctx context.Context, tenantID string, filter models.VertexFilter) ([]models.Vertex, error) {
	return g.Vertices.LoadVertices(ctx, tenantID, filter)
}

// LoadEdges delegates to the edge store.
func (g GraphSource) LoadEdges(ctx context.Context, tenantID string, filter models.EdgeFilter) ([]models.Edge, error) {
	return g.Edges.LoadEdges(ctx, tenantID, filter)
}
