package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/omranyar/portfolio-engine/internal/http/middleware"
)

func (h *Handler) listPrograms(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	programs, err := h.portfolio.ListPrograms(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	out := make([]programResponse, 0, len(programs))
	for i := range programs {
		out = append(out, toProgramResponse(&programs[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) getProgram(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	program, err := h.portfolio.GetProgram(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProgramResponse(program))
}

func (h *Handler) getProgramByCode(c *gin.Context) {
	program, err := h.portfolio.GetProgramByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProgramResponse(program))
}

func (h *Handler) createProgram(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	var req programRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	program := req.toModel()
	if err := h.portfolio.CreateProgram(c.Request.Context(), principal, program); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProgramResponse(program))
}

func (h *Handler) updateProgram(c *gin.Context) {
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
	var req programRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	program := req.toModel()
	program.ID = id
	if err := h.portfolio.UpdateProgram(c.Request.Context(), principal, program); err != nil {
		h.handleError(c, err)
		return
	}
	updated, err := h.portfolio.GetProgram(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProgramResponse(updated))
}

func (h *Handler) deleteProgram(c *gin.Context) {
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
	if err := h.portfolio.DeleteProgram(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
