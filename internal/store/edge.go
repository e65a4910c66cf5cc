package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tgraph/graphqd/internal/models"
)

// EdgeStore handles edge CRUD operations and supplies the edge half
// (LoadEdges) of the cycle engine's GraphSource over gq_edges.
type EdgeStore struct {
	Base
}

// NewEdgeStore creates a new EdgeStore.
func NewEdgeStore(base Base) *EdgeStore {
	return &EdgeStore{Base: base}
}

// CreateEdge inserts a new edge and returns the created record. Both
// endpoints must already exist in the tenant's vertex set; a missing
// endpoint surfaces as a foreign-key violation translated to
// models.ErrVertexNotFound.
func (s *EdgeStore) CreateEdge(
	ctx context.Context,
	tenantID string,
	req models.CreateEdgeRequest,
) (*models.Edge, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginTx(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("creating edge: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	query := `INSERT INTO gq_edges (tenant_id, eid, src_vid, dst_vid, amount, occur_time, etype)
		VALUES (current_setting('app.tenant_id')::uuid, $1, $2, $3, $4, $5, $6)
		RETURNING ` + edgeColumns

	row := tx.QueryRow(ctx, query, req.EID, req.SrcVID, req.DstVID, req.Amount, req.OccurTime, req.EType)

	e, err := scanEdge(row.Scan)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return nil, models.ErrDuplicateKey
			case "23503":
				return nil, models.ErrVertexNotFound
			}
		}

		return nil, fmt.Errorf("scanning created edge: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing create edge: %w", err)
	}

	s.notify("gq_edges", "insert", tenantID)

	return e, nil
}

// GetEdge retrieves a single edge by ID (pure read, no side effects).
func (s *EdgeStore) GetEdge(ctx context.Context, tenantID string, eid int64) (*models.Edge, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginReadTx(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("getting edge: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	query := `SELECT ` + edgeColumns + ` FROM gq_edges WHERE tenant_id = current_setting('app.tenant_id')::uuid AND eid = $1`

	row := tx.QueryRow(ctx, query, eid)

	e, err := scanEdge(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrEdgeNotFound
		}

		return nil, fmt.Errorf("scanning edge: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing get edge: %w", err)
	}

	return e, nil
}

// DeleteEdge removes an edge by ID.
func (s *EdgeStore) DeleteEdge(ctx context.Context, tenantID string, eid int64) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginTx(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("deleting edge: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	tag, err := tx.Exec(ctx, "DELETE FROM gq_edges WHERE tenant_id = current_setting('app.tenant_id')::uuid AND eid = $1", eid)
	if err != nil {
		return fmt.Errorf("executing edge delete: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return models.ErrEdgeNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing delete edge: %w", err)
	}

	s.notify("gq_edges", "delete", tenantID)

	return nil
}

// ListEdges returns edges for a tenant incident to a vertex, for the
// paginated listing API.
func (s *EdgeStore) ListEdges(
	ctx context.Context,
	tenantID string,
	vid int64,
	limit, offset int,
) ([]models.Edge, bool, error) {
	if limit <= 0 {
		limit = 50
	}

	if limit > maxListLimit {
		limit = maxListLimit
	}

	if offset < 0 {
		offset = 0
	}

	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginReadTx(ctx, tenantID)
	if err != nil {
		return nil, false, fmt.Errorf("listing edges: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	query := `SELECT ` + edgeColumns + ` FROM gq_edges
		WHERE tenant_id = current_setting('app.tenant_id')::uuid AND (src_vid = $1 OR dst_vid = $1)
		ORDER BY occur_time LIMIT $2 OFFSET $3`

	rows, err := tx.Query(ctx, query, vid, limit+1, offset)
	if err != nil {
		return nil, false, fmt.Errorf("querying edges: %w", err)
	}
	defer rows.Close()

	edges := make([]models.Edge, 0, limit+1)

	for rows.Next() {
		e, err := scanEdge(rows.Scan)
		if err != nil {
			return nil, false, fmt.Errorf("scanning edge row: %w", err)
		}

		edges = append(edges, *e)
	}

	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterating edge rows: %w", err)
	}

	hasMore := len(edges) > limit
	if hasMore {
		edges = edges[:limit]
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, false, fmt.Errorf("committing list edges: %w", err)
	}

	return edges, hasMore, nil
}

// LoadEdges implements engine.GraphSource. It pushes the EType and amount
// bounds of the filter down into SQL; models.EdgeFilter.Matches is still
// applied as a defensive second pass.
func (s *EdgeStore) LoadEdges(ctx context.Context, tenantID string, filter models.EdgeFilter) ([]models.Edge, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginReadTx(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("loading edges: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	query := "SELECT " + edgeColumns + " FROM gq_edges WHERE tenant_id = current_setting('app.tenant_id')::uuid"

	args := make([]any, 0, 3)
	argIdx := 1

	if len(filter.ETypes) > 0 {
		types := make([]string, 0, len(filter.ETypes))
		for t := range filter.ETypes {
			types = append(types, t)
		}

		query += fmt.Sprintf(" AND etype = ANY($%d)", argIdx)
		args = append(args, types)
		argIdx++
	}

	if filter.MinAmount != nil {
		query += fmt.Sprintf(" AND amount >= $%d", argIdx)
		args = append(args, *filter.MinAmount)
		argIdx++
	}

	if filter.MaxAmount != nil {
		query += fmt.Sprintf(" AND amount <= $%d", argIdx)
		args = append(args, *filter.MaxAmount)
		argIdx++
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying edges: %w", err)
	}
	defer rows.Close()

	edges := make([]models.Edge, 0, 1024)

	for rows.Next() {
		e, err := scanEdge(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning edge row: %w", err)
		}

		if filter.Matches(*e) {
			edges = append(edges, *e)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating edge rows: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing load edges: %w", err)
	}

	return edges, nil
}
