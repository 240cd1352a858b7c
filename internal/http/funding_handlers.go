package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/omranyar/portfolio-engine/internal/http/middleware"
	"github.com/omranyar/portfolio-engine/internal/model"
)

type createFundingRequest struct {
	ProjectID               uuid.UUID       `json:"project_id" binding:"required"`
	ProvinceSuggestedAmount decimal.Decimal `json:"province_suggested_amount"`
	Priority                string          `json:"priority" binding:"required"`
	ProvinceDescription     string          `json:"province_description"`
}

type updateFundingRequest struct {
	ProvinceSuggestedAmount     decimal.Decimal  `json:"province_suggested_amount"`
	HeadquartersSuggestedAmount *decimal.Decimal `json:"headquarters_suggested_amount"`
	Priority                    string           `json:"priority" binding:"required"`
	ProvinceDescription         string           `json:"province_description"`
	ExpertDescription           string           `json:"expert_description"`
}

func (h *Handler) listFundingRequests(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	var statuses []model.FundingStatus
	if raw := c.Query("status"); raw != "" {
		for _, status := range strings.Split(raw, ",") {
			statuses = append(statuses, model.FundingStatus(strings.TrimSpace(status)))
		}
	}
	requests, err := h.funding.List(c.Request.Context(), principal, statuses)
	if err != nil {
		h.handleError(c, err)
		return
	}
	out := make([]fundingResponse, 0, len(requests))
	for i := range requests {
		out = append(out, toFundingResponse(&requests[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) getFundingRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	request, err := h.funding.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFundingResponse(request))
}

func (h *Handler) createFundingRequest(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	var req createFundingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	request := &model.FundingRequest{
		ProjectID:               req.ProjectID,
		ProvinceSuggestedAmount: req.ProvinceSuggestedAmount,
		Priority:                model.FundingPriority(req.Priority),
		ProvinceDescription:     req.ProvinceDescription,
	}
	if err := h.funding.Create(c.Request.Context(), principal, request); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toFundingResponse(request))
}

func (h *Handler) updateFundingRequest(c *gin.Context) {
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
	var req updateFundingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	request := &model.FundingRequest{
		ID:                          id,
		ProvinceSuggestedAmount:     req.ProvinceSuggestedAmount,
		HeadquartersSuggestedAmount: req.HeadquartersSuggestedAmount,
		Priority:                    model.FundingPriority(req.Priority),
		ProvinceDescription:         req.ProvinceDescription,
		ExpertDescription:           req.ExpertDescription,
	}
	if err := h.funding.UpdateDraft(c.Request.Context(), principal, request); err != nil {
		h.handleError(c, err)
		return
	}
	updated, err := h.funding.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFundingResponse(updated))
}

type fundingActionRequest struct {
	ExpertID           *uuid.UUID       `json:"expert_id"`
	ChiefID            *uuid.UUID       `json:"chief_id"`
	HeadquartersAmount *decimal.Decimal `json:"headquarters_amount"`
	FinalAmount        *decimal.Decimal `json:"final_amount"`
	Description        string           `json:"description"`
	Reason             string           `json:"reason"`
}

func (h *Handler) fundingAction(c *gin.Context, run func(p model.Principal, id uuid.UUID, req fundingActionRequest) error) {
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
	var req fundingActionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	if err := run(principal, id, req); err != nil {
		h.handleError(c, err)
		return
	}
	request, err := h.funding.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFundingResponse(request))
}

func (h *Handler) submitFundingRequest(c *gin.Context) {
	h.fundingAction(c, func(p model.Principal, id uuid.UUID, req fundingActionRequest) error {
		return h.funding.SubmitToExpert(c.Request.Context(), p, id, req.ExpertID)
	})
}

func (h *Handler) expertApproveFundingRequest(c *gin.Context) {
	h.fundingAction(c, func(p model.Principal, id uuid.UUID, req fundingActionRequest) error {
		return h.funding.ExpertApprove(c.Request.Context(), p, id, req.HeadquartersAmount, req.Description)
	})
}

func (h *Handler) expertRejectFundingRequest(c *gin.Context) {
	h.fundingAction(c, func(p model.Principal, id uuid.UUID, req fundingActionRequest) error {
		return h.funding.ExpertReject(c.Request.Context(), p, id, req.Reason)
	})
}

func (h *Handler) sendFundingRequestToChief(c *gin.Context) {
	h.fundingAction(c, func(p model.Principal, id uuid.UUID, req fundingActionRequest) error {
		return h.funding.SendToChief(c.Request.Context(), p, id, req.ChiefID)
	})
}

func (h *Handler) chiefApproveFundingRequest(c *gin.Context) {
	h.fundingAction(c, func(p model.Principal, id uuid.UUID, req fundingActionRequest) error {
		return h.funding.ChiefApprove(c.Request.Context(), p, id, req.FinalAmount)
	})
}

func (h *Handler) chiefRejectFundingRequest(c *gin.Context) {
	h.fundingAction(c, func(p model.Principal, id uuid.UUID, req fundingActionRequest) error {
		return h.funding.ChiefReject(c.Request.Context(), p, id, req.Reason)
	})
}

func (h *Handler) archiveFundingRequests(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	archived, err := h.funding.ArchiveApproved(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"archived": archived})
}

func (h *Handler) fundingRequestMemo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	request, err := h.funding.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	project, err := h.portfolio.GetProject(c.Request.Context(), request.ProjectID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	content, err := h.pdf.Generate(*request, *project)
	if err != nil {
		h.handleError(c, err)
		return
	}

	fileName := fmt.Sprintf("funding_memo_%s.pdf", request.ID)
	c.Header("Content-Disposition", "attachment; filename=\""+fileName+"\"")
	c.Data(http.StatusOK, "application/pdf", content)
}
