package api_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tgraph/graphqd/internal/api"
	"github.com/tgraph/graphqd/internal/models"
)

type mockEdgeRepo struct {
	edges   []models.Edge
	hasMore bool
	edge    *models.Edge
	err     error

	gotCreateReq models.CreateEdgeRequest
}

func (m *mockEdgeRepo) ListEdges(_ context.Context, _ string, _ int64, _, _ int) ([]models.Edge, bool, error) {
	return m.edges, m.hasMore, m.err
}

func (m *mockEdgeRepo) GetEdge(_ context.Context, _ string, _ int64) (*models.Edge, error) {
	return m.edge, m.err
}

func (m *mockEdgeRepo) CreateEdge(_ context.Context, _ string, req models.CreateEdgeRequest) (*models.Edge, error) {
	m.gotCreateReq = req
	return m.edge, m.err
}

func (m *mockEdgeRepo) DeleteEdge(_ context.Context, _ string, _ int64) error {
	return m.err
}

func newEdgeTestRouter(repo *mockEdgeRepo) *gin.Engine {
	h := api.NewEdgeHandler(repo, testLogger())

	r := newTestRouter()
	r.GET("/vertices/:vid/edges", h.List)
	r.GET("/edges/:eid", h.Get)
	r.POST("/edges", h.Create)
	r.DELETE("/edges/:eid", h.Delete)

	return r
}

func TestEdgeHandler_List(t *testing.T) {
	t.Parallel()

	repo := &mockEdgeRepo{edges: []models.Edge{{EID: 1, SrcVID: 1, DstVID: 2}}}
	r := newEdgeTestRouter(repo)

	w := doRequest(r, http.MethodGet, "/vertices/1/edges", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestEdgeHandler_Get_NotFound(t *testing.T) {
	t.Parallel()

	repo := &mockEdgeRepo{err: models.ErrEdgeNotFound}
	r := newEdgeTestRouter(repo)

	w := doRequest(r, http.MethodGet, "/edges/1", "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestEdgeHandler_Create_Success(t *testing.T) {
	t.Parallel()

	repo := &mockEdgeRepo{edge: &models.Edge{EID: 1, SrcVID: 1, DstVID: 2}}
	r := newEdgeTestRouter(repo)

	body := `{"eid":1,"src_vid":1,"dst_vid":2,"amount":100,"occur_time":12345,"e_type":"transfer"}`
	w := doRequest(r, http.MethodPost, "/edges", body)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if repo.gotCreateReq.SrcVID != 1 || repo.gotCreateReq.DstVID != 2 {
		t.Errorf("unexpected create request: %+v", repo.gotCreateReq)
	}
}

func TestEdgeHandler_Create_MissingVertexRejected(t *testing.T) {
	t.Parallel()

	repo := &mockEdgeRepo{err: models.ErrVertexNotFound}
	r := newEdgeTestRouter(repo)

	body := `{"eid":1,"src_vid":1,"dst_vid":2,"amount":100,"occur_time":12345,"e_type":"transfer"}`
	w := doRequest(r, http.MethodPost, "/edges", body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestEdgeHandler_Create_ValidationRejectsMissingEType(t *testing.T) {
	t.Parallel()

	r := newEdgeTestRouter(&mockEdgeRepo{})

	body := `{"eid":1,"src_vid":1,"dst_vid":2,"amount":100,"occur_time":12345}`
	w := doRequest(r, http.MethodPost, "/edges", body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestEdgeHandler_Delete_Success(t *testing.T) {
	t.Parallel()

	r := newEdgeTestRouter(&mockEdgeRepo{})

	w := doRequest(r, http.MethodDelete, "/edges/1", "")

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}
