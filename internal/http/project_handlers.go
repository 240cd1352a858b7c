package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/omranyar/portfolio-engine/internal/http/middleware"
	"github.com/omranyar/portfolio-engine/internal/model"
)

func (h *Handler) listProjects(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	projects, err := h.portfolio.ListProjects(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	out := make([]projectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, toProjectResponse(&projects[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) getProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	project, err := h.portfolio.GetProject(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProjectResponse(project))
}

func (h *Handler) getProjectByCode(c *gin.Context) {
	project, err := h.portfolio.GetProjectByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProjectResponse(project))
}

func (h *Handler) createProject(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	project, err := req.toModel()
	if err != nil {
		h.handleError(c, err)
		return
	}
	if err := h.portfolio.CreateProject(c.Request.Context(), principal, project); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProjectResponse(project))
}

func (h *Handler) updateProject(c *gin.Context) {
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
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	project, err := req.toModel()
	if err != nil {
		h.handleError(c, err)
		return
	}
	project.ID = id
	if err := h.portfolio.UpdateProject(c.Request.Context(), principal, project); err != nil {
		h.handleError(c, err)
		return
	}
	updated, err := h.portfolio.GetProject(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProjectResponse(updated))
}

func (h *Handler) deleteProject(c *gin.Context) {
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
	if err := h.portfolio.DeleteProject(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) projectLatestPayments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	views, err := h.portfolio.ProjectLatestPayments(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"from_documents":         views.FromDocuments,
		"from_situation_reports": views.FromSituationReports,
	})
}

func (h *Handler) exportProjects(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	projects, err := h.portfolio.ListProjects(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	subsByProject := make(map[string][]model.SubProject, len(projects))
	for i := range projects {
		subs, err := h.portfolio.ListSubProjects(c.Request.Context(), projects[i].ID)
		if err != nil {
			h.handleError(c, err)
			return
		}
		subsByProject[projects[i].ID.String()] = subs
	}
	content, err := h.excel.Generate(projects, subsByProject)
	if err != nil {
		h.handleError(c, err)
		return
	}

	fileName := fmt.Sprintf("portfolio_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", "attachment; filename=\""+fileName+"\"")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}
