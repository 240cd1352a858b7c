package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/omranyar/portfolio-engine/internal/http/middleware"
)

func (h *Handler) listSubProjects(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	subs, err := h.portfolio.ListSubProjects(c.Request.Context(), projectID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	out := make([]subProjectResponse, 0, len(subs))
	for i := range subs {
		out = append(out, toSubProjectResponse(&subs[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) getSubProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	sub, err := h.portfolio.GetSubProject(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSubProjectResponse(sub))
}

func (h *Handler) createSubProject(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req subProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sub, err := req.toModel()
	if err != nil {
		h.handleError(c, err)
		return
	}
	sub.ProjectID = projectID
	if err := h.portfolio.CreateSubProject(c.Request.Context(), principal, sub); err != nil {
		h.handleError(c, err)
		return
	}
	created, err := h.portfolio.GetSubProject(c.Request.Context(), sub.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toSubProjectResponse(created))
}

func (h *Handler) updateSubProject(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req subProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sub, err := req.toModel()
	if err != nil {
		h.handleError(c, err)
		return
	}
	sub.ID = id
	if err := h.portfolio.UpdateSubProject(c.Request.Context(), principal, sub); err != nil {
		h.handleError(c, err)
		return
	}
	updated, err := h.portfolio.GetSubProject(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSubProjectResponse(updated))
}

func (h *Handler) deleteSubProject(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.portfolio.DeleteSubProject(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
