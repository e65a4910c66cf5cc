package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tgraph/graphqd/internal/models"
)

// VertexStore handles vertex CRUD operations and supplies the vertex half
// (LoadVertices) of the cycle engine's GraphSource over gq_vertices.
type VertexStore struct {
	Base
}

// NewVertexStore creates a new VertexStore.
func NewVertexStore(base Base) *VertexStore {
	return &VertexStore{Base: base}
}

// CreateVertex inserts a new vertex and returns the created record.
func (s *VertexStore) CreateVertex(
	ctx context.Context,
	tenantID string,
	req models.CreateVertexRequest,
) (*models.Vertex, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginTx(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("creating vertex: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	query := `INSERT INTO gq_vertices (tenant_id, vid, vtype, create_time, balance)
		VALUES (current_setting('app.tenant_id')::uuid, $1, $2, $3, $4)
		RETURNING ` + vertexColumns

	row := tx.QueryRow(ctx, query, req.VID, req.VType, req.CreateTime, req.Balance)

	v, err := scanVertex(row.Scan)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, models.ErrDuplicateKey
		}

		return nil, fmt.Errorf("scanning created vertex: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing create vertex: %w", err)
	}

	s.notify("gq_vertices", "insert", tenantID)

	return v, nil
}

// GetVertex retrieves a single vertex by ID (pure read, no side effects).
func (s *VertexStore) GetVertex(ctx context.Context, tenantID string, vid int64) (*models.Vertex, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginReadTx(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("getting vertex: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	query := `SELECT ` + vertexColumns + ` FROM gq_vertices WHERE tenant_id = current_setting('app.tenant_id')::uuid AND vid = $1`

	row := tx.QueryRow(ctx, query, vid)

	v, err := scanVertex(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrVertexNotFound
		}

		return nil, fmt.Errorf("scanning vertex: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing get vertex: %w", err)
	}

	return v, nil
}

// DeleteVertex removes a vertex by ID and its incident edges within the
// same transaction.
func (s *VertexStore) DeleteVertex(ctx context.Context, tenantID string, vid int64) error {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginTx(ctx, tenantID)
	if err != nil {
		return fmt.Errorf("deleting vertex: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	_, err = tx.Exec(ctx, "DELETE FROM gq_edges WHERE tenant_id = current_setting('app.tenant_id')::uuid AND (src_vid = $1 OR dst_vid = $1)", vid)
	if err != nil {
		return fmt.Errorf("deleting incident edges for vertex: %w", err)
	}

	tag, err := tx.Exec(ctx, "DELETE FROM gq_vertices WHERE tenant_id = current_setting('app.tenant_id')::uuid AND vid = $1", vid)
	if err != nil {
		return fmt.Errorf("executing vertex delete: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return models.ErrVertexNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing delete vertex: %w", err)
	}

	s.notify("gq_vertices", "delete", tenantID)

	return nil
}

// ListVertices returns vertices for a tenant with optional type filter, for
// the paginated listing API.
func (s *VertexStore) ListVertices(
	ctx context.Context,
	tenantID string,
	typeFilter string,
	limit, offset int,
) ([]models.Vertex, bool, error) {
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
		return nil, false, fmt.Errorf("listing vertices: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	where := " WHERE tenant_id = current_setting('app.tenant_id')::uuid"

	args := make([]any, 0, 3)
	argIdx := 1

	if typeFilter != "" {
		where += fmt.Sprintf(" AND vtype = $%d", argIdx)
		args = append(args, typeFilter)
		argIdx++
	}

	query := "SELECT " + vertexColumns + " FROM gq_vertices" + where + " ORDER BY vid"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit+1, offset)

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, false, fmt.Errorf("querying vertices: %w", err)
	}
	defer rows.Close()

	vertices := make([]models.Vertex, 0, limit+1)

	for rows.Next() {
		v, err := scanVertex(rows.Scan)
		if err != nil {
			return nil, false, fmt.Errorf("scanning vertex row: %w", err)
		}

		vertices = append(vertices, *v)
	}

	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterating vertex rows: %w", err)
	}

	hasMore := len(vertices) > limit
	if hasMore {
		vertices = vertices[:limit]
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, false, fmt.Errorf("committing list vertices: %w", err)
	}

	return vertices, hasMore, nil
}

// LoadVertices implements engine.GraphSource. It pushes the VType portion of
// the filter down into SQL and applies MinBalance after the scan, matching
// models.VertexFilter.Matches.
func (s *VertexStore) LoadVertices(ctx context.Context, tenantID string, filter models.VertexFilter) ([]models.Vertex, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	tx, err := s.beginReadTx(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("loading vertices: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // best-effort rollback after commit.

	query := "SELECT " + vertexColumns + " FROM gq_vertices WHERE tenant_id = current_setting('app.tenant_id')::uuid"

	args := make([]any, 0, 1)

	if len(filter.VTypes) > 0 {
		types := make([]string, 0, len(filter.VTypes))
		for t := range filter.VTypes {
			types = append(types, t)
		}

		query += " AND vtype = ANY($1)"
		args = append(args, types)
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying vertices: %w", err)
	}
	defer rows.Close()

	vertices := make([]models.Vertex, 0, 256)

	for rows.Next() {
		v, err := scanVertex(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning vertex row: %w", err)
		}

		if filter.Matches(*v) {
			vertices = append(vertices, *v)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating vertex rows: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("committing load vertices: %w", err)
	}

	return vertices, nil
}
