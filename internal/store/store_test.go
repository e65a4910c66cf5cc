package store_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/tgraph/graphqd/internal/dbpool"
	"github.com/tgraph/graphqd/internal/models"
	"github.com/tgraph/graphqd/internal/store"
)

// testEnv holds shared test infrastructure (single pool across all tests).
type testEnv struct {
	pool *dbpool.Pool
	log  *logrus.Logger
}

var sharedEnv *testEnv

func getTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if sharedEnv != nil {
		return sharedEnv
	}

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()

	pool, err := dbpool.NewPool(ctx, dbURL)
	if err != nil {
		t.Fatalf("connecting to test DB: %v", err)
	}

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	sharedEnv = &testEnv{pool: pool, log: log}

	return sharedEnv
}

// setupTestBase creates a Base with a fresh test tenant, cleaned up after the test.
func setupTestBase(t *testing.T) (_ store.Base, _ string) {
	t.Helper()

	env := getTestEnv(t)
	tenantID := uuid.New().String()
	ctx := context.Background()

	apiKey := "test-key-" + tenantID
	hash := sha256.Sum256([]byte(apiKey))
	apiKeyHash := hex.EncodeToString(hash[:])

	_, err := env.pool.Exec(ctx,
		"INSERT INTO tenants (id, name, api_key_hash) VALUES ($1, $2, $3)",
		tenantID, fmt.Sprintf("test-tenant-%s", tenantID[:8]), apiKeyHash,
	)
	if err != nil {
		t.Fatalf("creating test tenant: %v", err)
	}

	t.Cleanup(func() {
		cleanCtx := context.Background()
		env.pool.Exec(cleanCtx, "DELETE FROM gq_edges WHERE tenant_id = $1", tenantID)    //nolint:errcheck // best-effort cleanup
		env.pool.Exec(cleanCtx, "DELETE FROM gq_vertices WHERE tenant_id = $1", tenantID) //nolint:errcheck // best-effort cleanup
		env.pool.Exec(cleanCtx, "DELETE FROM tenants WHERE id = $1", tenantID)            //nolint:errcheck // best-effort cleanup
	})

	return store.Base{Pool: env.pool, Log: env.log}, tenantID
}

func TestVertexCRUD(t *testing.T) {
	base, tenantID := setupTestBase(t)
	vs := store.NewVertexStore(base)
	ctx := context.Background()

	v, err := vs.CreateVertex(ctx, tenantID, models.CreateVertexRequest{VID: 1, VType: "account", CreateTime: 100, Balance: 500})
	if err != nil {
		t.Fatalf("CreateVertex: %v", err)
	}

	if v.VID != 1 || v.VType != "account" || v.Balance != 500 {
		t.Fatalf("unexpected created vertex: %+v", v)
	}

	got, err := vs.GetVertex(ctx, tenantID, 1)
	if err != nil {
		t.Fatalf("GetVertex: %v", err)
	}

	if got.VID != v.VID {
		t.Fatalf("GetVertex returned %+v, want %+v", got, v)
	}

	if _, err := vs.CreateVertex(ctx, tenantID, models.CreateVertexRequest{VID: 1, VType: "account", CreateTime: 100, Balance: 500}); err != models.ErrDuplicateKey {
		t.Fatalf("expected ErrDuplicateKey on duplicate VID, got %v", err)
	}

	if err := vs.DeleteVertex(ctx, tenantID, 1); err != nil {
		t.Fatalf("DeleteVertex: %v", err)
	}

	if _, err := vs.GetVertex(ctx, tenantID, 1); err != models.ErrVertexNotFound {
		t.Fatalf("expected ErrVertexNotFound after delete, got %v", err)
	}
}

func TestEdgeCRUDAndTenantIsolation(t *testing.T) {
	baseA, tenantA := setupTestBase(t)
	baseB, tenantB := setupTestBase(t)

	vsA := store.NewVertexStore(baseA)
	esA := store.NewEdgeStore(baseA)
	esB := store.NewEdgeStore(baseB)
	ctx := context.Background()

	if _, err := vsA.CreateVertex(ctx, tenantA, models.CreateVertexRequest{VID: 10, VType: "account", CreateTime: 100, Balance: 0}); err != nil {
		t.Fatalf("CreateVertex src: %v", err)
	}

	if _, err := vsA.CreateVertex(ctx, tenantA, models.CreateVertexRequest{VID: 11, VType: "account", CreateTime: 100, Balance: 0}); err != nil {
		t.Fatalf("CreateVertex dst: %v", err)
	}

	e, err := esA.CreateEdge(ctx, tenantA, models.CreateEdgeRequest{EID: 100, SrcVID: 10, DstVID: 11, Amount: 50, OccurTime: 200, EType: "transfer"})
	if err != nil {
		t.Fatalf("CreateEdge: %v", err)
	}

	if e.EID != 100 {
		t.Fatalf("unexpected created edge: %+v", e)
	}

	if _, err := esB.GetEdge(ctx, tenantB, 100); err != models.ErrEdgeNotFound {
		t.Fatalf("tenant B should not see tenant A's edge, got %v", err)
	}

	edges, err := esA.LoadEdges(ctx, tenantA, models.EdgeFilter{})
	if err != nil {
		t.Fatalf("LoadEdges: %v", err)
	}

	if len(edges) != 1 || edges[0].EID != 100 {
		t.Fatalf("unexpected LoadEdges result: %+v", edges)
	}
}

func TestCreateEdgeMissingEndpointFails(t *testing.T) {
	base, tenantID := setupTestBase(t)
	es := store.NewEdgeStore(base)
	ctx := context.Background()

	_, err := es.CreateEdge(ctx, tenantID, models.CreateEdgeRequest{EID: 1, SrcVID: 999, DstVID: 998, Amount: 1, OccurTime: 1, EType: "transfer"})
	if err != models.ErrVertexNotFound {
		t.Fatalf("expected ErrVertexNotFound for missing endpoints, got %v", err)
	}
}
