package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/devportfolio/portfolio-backend/internal/projects/service"
)

func (h *Handler) list(c *gin.Context) {
	items := h.svc.ListAll(c.Request.Context())
	if len(items) == 0 {
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "No Projects Found.", "data": []any{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": items})
}

func (h *Handler) getByID(c *gin.Context) {
	id, ok := h.projectID(c)
	if !ok {
		return
	}

	p := h.svc.GetByID(c.Request.Context(), id)
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": p})
}

func (h *Handler) create(c *gin.Context) {
	var in service.ProjectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Project creation failed"})
		return
	}

	if !h.svc.Create(c.Request.Context(), in) {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Project creation failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "message": "Project created"})
}

func (h *Handler) update(c *gin.Context) {
	id, ok := h.projectID(c)
	if !ok {
		return
	}

	var in service.ProjectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Project not found or update failed"})
		return
	}

	if !h.svc.Update(c.Request.Context(), id, in) {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Project not found or update failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Project updated"})
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := h.projectID(c)
	if !ok {
		return
	}

	if !h.svc.Delete(c.Request.Context(), id) {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Project not found or deletion failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Project deleted"})
}

// projectID parses the :id path segment. A non-numeric id behaves like an
// unknown one: 404, not 400.
func (h *Handler) projectID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Project not found"})
		return 0, false
	}
	return id, true
}
