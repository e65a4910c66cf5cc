package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/tgraph/graphqd/internal/models"
)

// VertexHandler serves vertex CRUD endpoints.
type VertexHandler struct {
	repo VertexRepository
	log  *logrus.Logger
}

// NewVertexHandler creates a VertexHandler.
func NewVertexHandler(repo VertexRepository, log *logrus.Logger) *VertexHandler {
	return &VertexHandler{repo: repo, log: log}
}

// List handles GET /api/v1/vertices.
func (h *VertexHandler) List(c *gin.Context) {
	tenantID := getTenantID(c)
	if tenantID == "" {
		return
	}

	typeFilter := c.Query("vtype")
	limit := parseInt(c.Query("limit"), 50)
	offset := parseOffset(c.Query("offset"))

	vertices, hasMore, err := h.repo.ListVertices(c.Request.Context(), tenantID, typeFilter, limit, offset)
	if err != nil {
		h.log.WithError(err).Error("listing vertices")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "failed to list vertices")

		return
	}

	c.JSON(http.StatusOK, gin.H{"vertices": vertices, "has_more": hasMore})
}

// Get handles GET /api/v1/vertices/:vid.
func (h *VertexHandler) Get(c *gin.Context) {
	tenantID := getTenantID(c)
	if tenantID == "" {
		return
	}

	vid, err := parseVID(c.Param("vid"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	v, err := h.repo.GetVertex(c.Request.Context(), tenantID, vid)
	if err != nil {
		if errors.Is(err, models.ErrVertexNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "vertex not found")

			return
		}

		h.log.WithError(err).Error("getting vertex")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "failed to get vertex")

		return
	}

	c.JSON(http.StatusOK, v)
}

// Create handles POST /api/v1/vertices.
func (h *VertexHandler) Create(c *gin.Context) {
	tenantID := getTenantID(c)
	if tenantID == "" {
		return
	}

	var req models.CreateVertexRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	v, err := h.repo.CreateVertex(c.Request.Context(), tenantID, req)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateKey) {
			respondError(c, http.StatusConflict, ErrCodeInvalidRequest, "vertex with this vid already exists")

			return
		}

		h.log.WithError(err).Error("creating vertex")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "failed to create vertex")

		return
	}

	c.JSON(http.StatusCreated, v)
}

// Delete handles DELETE /api/v1/vertices/:vid.
func (h *VertexHandler) Delete(c *gin.Context) {
	tenantID := getTenantID(c)
	if tenantID == "" {
		return
	}

	vid, err := parseVID(c.Param("vid"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	if err := h.repo.DeleteVertex(c.Request.Context(), tenantID, vid); err != nil {
		if errors.Is(err, models.ErrVertexNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "vertex not found")

			return
		}

		h.log.WithError(err).Error("deleting vertex")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "failed to delete vertex")

		return
	}

	c.Status(http.StatusNoContent)
}
