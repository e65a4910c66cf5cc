package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tgraph/graphqd/internal/engine"
	"github.com/tgraph/graphqd/internal/models"
)

// cycleQueryBody is the wire shape of a CycleQuery request body, translated
// into an engine.CycleQueryRequest once bound and defaulted.
type cycleQueryBody struct {
	MaxDepth         int      `json:"max_depth" binding:"required"`
	Direction        string   `json:"direction"`
	VTypes           []string `json:"v_types"`
	MinBalance       *int64   `json:"min_balance"`
	ETypes           []string `json:"e_types"`
	MinAmount        *int64   `json:"min_amount"`
	MaxAmount        *int64   `json:"max_amount"`
	Limit            int      `json:"limit"`
	AllowDupVertices bool     `json:"allow_dup_vertices"`
	AllowDupEdges    bool     `json:"allow_dup_edges"`
}

func setOf(vals []string) map[string]bool {
	if len(vals) == 0 {
		return nil
	}

	set := make(map[string]bool, len(vals))
	for _, v := range vals {
		set[v] = true
	}

	return set
}

func (b cycleQueryBody) toRequest(startVID int64) engine.CycleQueryRequest {
	return engine.CycleQueryRequest{
		StartVID:  startVID,
		MaxDepth:  b.MaxDepth,
		Direction: engine.Direction(b.Direction),
		VertexFilter: models.VertexFilter{
			VTypes:     setOf(b.VTypes),
			MinBalance: b.MinBalance,
		},
		EdgeFilter: models.EdgeFilter{
			ETypes:    setOf(b.ETypes),
			MinAmount: b.MinAmount,
			MaxAmount: b.MaxAmount,
		},
		Limit:            b.Limit,
		AllowDupVertices: b.AllowDupVertices,
		AllowDupEdges:    b.AllowDupEdges,
	}
}

// CycleHandler serves the temporal cycle-enumeration endpoint.
type CycleHandler struct {
	repo CycleRepository
	log  *logrus.Logger
}

// NewCycleHandler creates a CycleHandler.
func NewCycleHandler(repo CycleRepository, log *logrus.Logger) *CycleHandler {
	return &CycleHandler{repo: repo, log: log}
}

// Query handles POST /api/v1/graph/:start_vid/cycles (spec §4.1, §6).
func (h *CycleHandler) Query(c *gin.Context) {
	tenantID := getTenantID(c)
	if tenantID == "" {
		return
	}

	startVID, err := parseVID(c.Param("start_vid"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	var body cycleQueryBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	result, err := h.repo.QueryCycles(c.Request.Context(), tenantID, body.toRequest(startVID))
	if err != nil {
		h.respondEngineError(c, err)

		return
	}

	c.JSON(http.StatusOK, result)
}

// respondEngineError maps an engine.Error's Kind to the HTTP status table
// of spec §7.
func (h *CycleHandler) respondEngineError(c *gin.Context, err error) {
	var engErr *engine.Error
	if !errors.As(err, &engErr) {
		h.log.WithError(err).Error("querying cycles")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "failed to query cycles")

		return
	}

	switch engErr.Kind {
	case engine.KindInvalidArgument:
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, engErr.Error())
	case engine.KindNotFound:
		respondError(c, http.StatusNotFound, ErrCodeNotFound, engErr.Error())
	case engine.KindUpstreamFailure:
		h.log.WithError(engErr).Error("upstream failure querying cycles")
		respondError(c, http.StatusBadGateway, ErrCodeUpstreamFailure, "upstream storage failure")
	default:
		h.log.WithError(engErr).Error("internal error querying cycles")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal error")
	}
}
