package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/omranyar/portfolio-engine/internal/http/middleware"
	"github.com/omranyar/portfolio-engine/internal/model"
)

// maxUploadBytes caps document and gallery uploads.
const maxUploadBytes = 20 << 20

func (h *Handler) listDocuments(c *gin.Context) {
	subProjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	docs, err := h.portfolio.ListDocuments(c.Request.Context(), subProjectID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	out := make([]documentResponse, 0, len(docs))
	for i := range docs {
		out = append(out, toDocumentResponse(&docs[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) addDocument(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	subProjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req documentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	doc, err := req.toModel()
	if err != nil {
		h.handleError(c, err)
		return
	}
	doc.SubProjectID = subProjectID
	if err := h.portfolio.AddFinancialDocument(c.Request.Context(), principal, doc); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toDocumentResponse(doc))
}

func (h *Handler) updateDocument(c *gin.Context) {
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
	var req documentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	doc, err := req.toModel()
	if err != nil {
		h.handleError(c, err)
		return
	}
	doc.ID = id
	if err := h.portfolio.UpdateFinancialDocument(c.Request.Context(), principal, doc); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDocumentResponse(doc))
}

func (h *Handler) deleteDocument(c *gin.Context) {
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
	if err := h.portfolio.DeleteFinancialDocument(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) attachDocumentFile(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	documentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if header.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large"})
		return
	}
	opened, err := header.Open()
	if err != nil {
		h.handleError(c, err)
		return
	}
	defer opened.Close()
	content, err := io.ReadAll(opened)
	if err != nil {
		h.handleError(c, err)
		return
	}

	file := &model.DocumentFile{
		DocumentID: documentID,
		Content:    content,
		MIMEType:   header.Header.Get("Content-Type"),
		Filename:   header.Filename,
	}
	if err := h.portfolio.AttachDocumentFile(c.Request.Context(), principal, file); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": file.ID, "filename": file.Filename})
}

func (h *Handler) downloadDocumentFile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	file, err := h.portfolio.GetDocumentFile(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+file.Filename+"\"")
	c.Data(http.StatusOK, file.MIMEType, file.Content)
}

func (h *Handler) listPayments(c *gin.Context) {
	subProjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	payments, err := h.portfolio.ListPayments(c.Request.Context(), subProjectID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	out := make([]paymentResponse, 0, len(payments))
	for i := range payments {
		out = append(out, toPaymentResponse(&payments[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) addPayment(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	subProjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payment, err := req.toModel()
	if err != nil {
		h.handleError(c, err)
		return
	}
	payment.SubProjectID = subProjectID
	if err := h.portfolio.AddPayment(c.Request.Context(), principal, payment); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toPaymentResponse(payment))
}

func (h *Handler) listSituationReports(c *gin.Context) {
	subProjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	reports, err := h.portfolio.ListSituationReports(c.Request.Context(), subProjectID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	out := make([]situationReportResponse, 0, len(reports))
	for i := range reports {
		out = append(out, toSituationReportResponse(&reports[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) addSituationReport(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	subProjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req situationReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	report, err := req.toModel()
	if err != nil {
		h.handleError(c, err)
		return
	}
	report.SubProjectID = subProjectID
	if err := h.portfolio.AddSituationReport(c.Request.Context(), principal, report); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toSituationReportResponse(report))
}

func (h *Handler) updatePayment(c *gin.Context) {
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
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	payment, err := req.toModel()
	if err != nil {
		h.handleError(c, err)
		return
	}
	payment.ID = id
	if err := h.portfolio.UpdatePayment(c.Request.Context(), principal, payment); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPaymentResponse(payment))
}

func (h *Handler) deletePayment(c *gin.Context) {
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
	if err := h.portfolio.DeletePayment(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) listGallery(c *gin.Context) {
	subProjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	images, err := h.portfolio.ListGallery(c.Request.Context(), subProjectID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	out := make([]gin.H, 0, len(images))
	for i := range images {
		out = append(out, gin.H{
			"id":          images[i].ID,
			"title":       images[i].Title,
			"description": images[i].Description,
			"mime_type":   images[i].MIMEType,
			"uploaded_at": images[i].UploadedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) addGalleryImage(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	subProjectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	if header.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image too large"})
		return
	}
	opened, err := header.Open()
	if err != nil {
		h.handleError(c, err)
		return
	}
	defer opened.Close()
	content, err := io.ReadAll(opened)
	if err != nil {
		h.handleError(c, err)
		return
	}

	image := &model.GalleryImage{
		SubProjectID: subProjectID,
		Content:      content,
		MIMEType:     header.Header.Get("Content-Type"),
	}
	if title := c.PostForm("title"); title != "" {
		image.Title = &title
	}
	if description := c.PostForm("description"); description != "" {
		image.Description = &description
	}
	if err := h.portfolio.AddGalleryImage(c.Request.Context(), principal, image); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": image.ID})
}

func (h *Handler) downloadGalleryImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	image, err := h.portfolio.GetGalleryImage(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Data(http.StatusOK, image.MIMEType, image.Content)
}

func (h *Handler) deleteGalleryImage(c *gin.Context) {
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
	if err := h.portfolio.DeleteGalleryImage(c.Request.Context(), principal, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
