package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/omranyar/portfolio-engine/internal/dates"
	"github.com/omranyar/portfolio-engine/internal/model"
	"github.com/omranyar/portfolio-engine/internal/service"
)

// PortfolioExporter renders the portfolio report workbook.
type PortfolioExporter interface {
	Generate(projects []model.Project, subsByProject map[string][]model.SubProject) ([]byte, error)
}

// MemoGenerator renders the approval memo for a settled funding request.
type MemoGenerator interface {
	Generate(request model.FundingRequest, project model.Project) ([]byte, error)
}

type Handler struct {
	portfolio *service.PortfolioService
	review    *service.ReviewService
	funding   *service.FundingService
	excel     PortfolioExporter
	pdf       MemoGenerator
	log       zerolog.Logger
}

func NewHandler(
	portfolio *service.PortfolioService,
	review *service.ReviewService,
	funding *service.FundingService,
	excel PortfolioExporter,
	pdf MemoGenerator,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		portfolio: portfolio,
		review:    review,
		funding:   funding,
		excel:     excel,
		pdf:       pdf,
		log:       log,
	}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	protected := router.Group("/api/v1")
	protected.Use(authMiddleware)

	protected.GET("/programs", h.listPrograms)
	protected.POST("/programs", h.createProgram)
	protected.GET("/programs/:id", h.getProgram)
	protected.PUT("/programs/:id", h.updateProgram)
	protected.DELETE("/programs/:id", h.deleteProgram)

	protected.GET("/projects", h.listProjects)
	protected.POST("/projects", h.createProject)
	protected.GET("/projects/:id", h.getProject)
	protected.PUT("/projects/:id", h.updateProject)
	protected.DELETE("/projects/:id", h.deleteProject)
	protected.GET("/projects/:id/latest-payments", h.projectLatestPayments)
	protected.GET("/export/projects", h.exportProjects)
	protected.GET("/lookup/programs/:code", h.getProgramByCode)
	protected.GET("/lookup/projects/:code", h.getProjectByCode)

	protected.GET("/projects/:id/subprojects", h.listSubProjects)
	protected.POST("/projects/:id/subprojects", h.createSubProject)
	protected.GET("/subprojects/:id", h.getSubProject)
	protected.PUT("/subprojects/:id", h.updateSubProject)
	protected.DELETE("/subprojects/:id", h.deleteSubProject)

	protected.GET("/subprojects/:id/documents", h.listDocuments)
	protected.POST("/subprojects/:id/documents", h.addDocument)
	protected.PUT("/documents/:id", h.updateDocument)
	protected.DELETE("/documents/:id", h.deleteDocument)
	protected.POST("/documents/:id/files", h.attachDocumentFile)
	protected.GET("/files/:id", h.downloadDocumentFile)

	protected.GET("/subprojects/:id/payments", h.listPayments)
	protected.POST("/subprojects/:id/payments", h.addPayment)
	protected.PUT("/payments/:id", h.updatePayment)
	protected.DELETE("/payments/:id", h.deletePayment)

	protected.GET("/subprojects/:id/situation-reports", h.listSituationReports)
	protected.POST("/subprojects/:id/situation-reports", h.addSituationReport)

	protected.GET("/subprojects/:id/gallery", h.listGallery)
	protected.POST("/subprojects/:id/gallery", h.addGalleryImage)
	protected.GET("/gallery/:id", h.downloadGalleryImage)
	protected.DELETE("/gallery/:id", h.deleteGalleryImage)

	protected.POST("/review/:kind/:id", h.reviewAction)
	protected.GET("/review/:kind/:id/comments", h.listReviewComments)
	protected.GET("/review/:kind/:id/history", h.listHistory)

	protected.GET("/funding-requests", h.listFundingRequests)
	protected.POST("/funding-requests", h.createFundingRequest)
	protected.GET("/funding-requests/:id", h.getFundingRequest)
	protected.PUT("/funding-requests/:id", h.updateFundingRequest)
	protected.POST("/funding-requests/:id/submit", h.submitFundingRequest)
	protected.POST("/funding-requests/:id/expert-approve", h.expertApproveFundingRequest)
	protected.POST("/funding-requests/:id/expert-reject", h.expertRejectFundingRequest)
	protected.POST("/funding-requests/:id/send-to-chief", h.sendFundingRequestToChief)
	protected.POST("/funding-requests/:id/chief-approve", h.chiefApproveFundingRequest)
	protected.POST("/funding-requests/:id/chief-reject", h.chiefRejectFundingRequest)
	protected.POST("/funding/archive", h.archiveFundingRequests)
	protected.GET("/funding-requests/:id/memo", h.fundingRequestMemo)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrValidation), errors.Is(err, dates.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrDependencyLocked):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
