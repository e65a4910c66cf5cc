package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tgraph/graphqd/internal/models"
)

// EdgeHandler serves edge CRUD endpoints.
type EdgeHandler struct {
	repo EdgeRepository
	log  *logrus.Logger
}

// NewEdgeHandler creates an EdgeHandler.
func NewEdgeHandler(repo EdgeRepository, log *logrus.Logger) *EdgeHandler {
	return &EdgeHandler{repo: repo, log: log}
}

// List handles GET /api/v1/vertices/:vid/edges.
func (h *EdgeHandler) List(c *gin.Context) {
	tenantID := getTenantID(c)
	if tenantID == "" {
		return
	}

	vid, err := parseVID(c.Param("vid"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	limit := parseInt(c.Query("limit"), 50)
	offset := parseOffset(c.Query("offset"))

	edges, hasMore, err := h.repo.ListEdges(c.Request.Context(), tenantID, vid, limit, offset)
	if err != nil {
		h.log.WithError(err).Error("listing edges")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "failed to list edges")

		return
	}

	c.JSON(http.StatusOK, gin.H{"edges": edges, "has_more": hasMore})
}

// Get handles GET /api/v1/edges/:eid.
func (h *EdgeHandler) Get(c *gin.Context) {
	tenantID := getTenantID(c)
	if tenantID == "" {
		return
	}

	eid, err := parseVID(c.Param("eid"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	e, err := h.repo.GetEdge(c.Request.Context(), tenantID, eid)
	if err != nil {
		if errors.Is(err, models.ErrEdgeNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "edge not found")

			return
		}

		h.log.WithError(err).Error("getting edge")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "failed to get edge")

		return
	}

	c.JSON(http.StatusOK, e)
}

// Create handles POST /api/v1/edges.
func (h *EdgeHandler) Create(c *gin.Context) {
	tenantID := getTenantID(c)
	if tenantID == "" {
		return
	}

	var req models.CreateEdgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	e, err := h.repo.CreateEdge(c.Request.Context(), tenantID, req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrDuplicateKey):
			respondError(c, http.StatusConflict, ErrCodeInvalidRequest, "edge with this eid already exists")
		case errors.Is(err, models.ErrVertexNotFound):
			respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "src_vid and dst_vid must reference existing vertices")
		default:
			h.log.WithError(err).Error("creating edge")
			respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "failed to create edge")
		}

		return
	}

	c.JSON(http.StatusCreated, e)
}

// Delete handles DELETE /api/v1/edges/:eid.
func (h *EdgeHandler) Delete(c *gin.Context) {
	tenantID := getTenantID(c)
	if tenantID == "" {
		return
	}

	eid, err := parseVID(c.Param("eid"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	if err := h.repo.DeleteEdge(c.Request.Context(), tenantID, eid); err != nil {
		if errors.Is(err, models.ErrEdgeNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "edge not found")

			return
		}

		h.log.WithError(err).Error("deleting edge")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "failed to delete edge")

		return
	}

	c.Status(http.StatusNoContent)
}
