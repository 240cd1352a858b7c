package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/omranyar/portfolio-engine/internal/http/middleware"
	"github.com/omranyar/portfolio-engine/internal/model"
	"github.com/omranyar/portfolio-engine/internal/service"
)

func parseEntityKind(raw string) (model.EntityKind, bool) {
	switch model.EntityKind(raw) {
	case model.KindProgram, model.KindProject, model.KindSubProject:
		return model.EntityKind(raw), true
	default:
		return "", false
	}
}

type reviewActionRequest struct {
	Action   string `json:"action" binding:"required"`
	Comments []struct {
		Field   string `json:"field"`
		Comment string `json:"comment" binding:"required"`
	} `json:"comments"`
}

func (h *Handler) reviewAction(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	kind, ok := parseEntityKind(c.Param("kind"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown entity kind"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req reviewActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	switch service.ReviewAction(req.Action) {
	case service.ActionSubmit:
		err = h.review.Submit(ctx, principal, kind, id)
	case service.ActionExpertApprove:
		err = h.review.ExpertApprove(ctx, principal, kind, id)
	case service.ActionApprove:
		err = h.review.Approve(ctx, principal, kind, id)
	case service.ActionReject:
		comments := make([]service.CommentInput, 0, len(req.Comments))
		for _, comment := range req.Comments {
			comments = append(comments, service.CommentInput{Field: comment.Field, Comment: comment.Comment})
		}
		err = h.review.Reject(ctx, principal, kind, id, comments)
	case service.ActionRedraft:
		err = h.review.Redraft(ctx, principal, kind, id)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown action"})
		return
	}
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) listReviewComments(c *gin.Context) {
	kind, ok := parseEntityKind(c.Param("kind"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown entity kind"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	comments, err := h.review.ListComments(c.Request.Context(), kind, id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCommentResponses(comments))
}

func (h *Handler) listHistory(c *gin.Context) {
	kind, ok := parseEntityKind(c.Param("kind"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown entity kind"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	entries, err := h.review.ListHistory(c.Request.Context(), kind, id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toChangeEntryResponses(entries))
}
