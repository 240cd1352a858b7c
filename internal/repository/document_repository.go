package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/omranyar/portfolio-engine/internal/model"
)

const documentColumns = `
	id,
	sub_project_id,
	document_type,
	document_number,
	related_document_id,
	contractor_amount,
	approved_amount,
	contractor_submit_date,
	approval_date,
	description,
	created_by_id,
	created_at,
	updated_at
`

const paymentColumns = `
	id,
	sub_project_id,
	amount,
	related_document_id,
	payment_date,
	description,
	created_by_id,
	created_at,
	updated_at
`

type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) WithTx(tx *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: tx}
}

func (r *DocumentRepository) Get(ctx context.Context, id uuid.UUID) (*model.FinancialDocument, error) {
	var doc model.FinancialDocument
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+documentColumns+`
		FROM financial_documents
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&doc).Error
	if err != nil {
		return nil, err
	}
	if doc.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &doc, nil
}

func (r *DocumentRepository) ListBySubProject(ctx context.Context, subProjectID uuid.UUID) ([]model.FinancialDocument, error) {
	var docs []model.FinancialDocument
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+documentColumns+`
		FROM financial_documents
		WHERE sub_project_id = ?
		ORDER BY document_type, document_number
	`, subProjectID).Scan(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// NextDocumentNumber allocates the next dense number for the given
// (subproject, type) pair, starting at 1.
func (r *DocumentRepository) NextDocumentNumber(ctx context.Context, subProjectID uuid.UUID, docType model.DocumentType) (int, error) {
	var next int
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(MAX(document_number), 0) + 1
		FROM financial_documents
		WHERE sub_project_id = ? AND document_type = ?
	`, subProjectID, docType).Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}

func (r *DocumentRepository) Create(ctx context.Context, doc *model.FinancialDocument) error {
	return r.db.WithContext(ctx).Raw(`
		INSERT INTO financial_documents (
			sub_project_id,
			document_type,
			document_number,
			related_document_id,
			contractor_amount,
			approved_amount,
			contractor_submit_date,
			approval_date,
			description,
			created_by_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+documentColumns+`
	`,
		doc.SubProjectID,
		doc.DocumentType,
		doc.DocumentNumber,
		doc.RelatedDocumentID,
		doc.ContractorAmount,
		doc.ApprovedAmount,
		doc.ContractorSubmitDate,
		doc.ApprovalDate,
		doc.Description,
		doc.CreatedByID,
	).Scan(doc).Error
}

func (r *DocumentRepository) Update(ctx context.Context, doc *model.FinancialDocument) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE financial_documents
		SET
			related_document_id = ?,
			contractor_amount = ?,
			approved_amount = ?,
			contractor_submit_date = ?,
			approval_date = ?,
			description = ?,
			updated_at = NOW()
		WHERE id = ?
	`,
		doc.RelatedDocumentID,
		doc.ContractorAmount,
		doc.ApprovedAmount,
		doc.ContractorSubmitDate,
		doc.ApprovalDate,
		doc.Description,
		doc.ID,
	).Error
}

func (r *DocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Exec(`DELETE FROM financial_documents WHERE id = ?`, id).Error
}

// CountReferences reports how many adjustment reports and payments still
// point at the document.
func (r *DocumentRepository) CountReferences(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM financial_documents WHERE related_document_id = ?) +
			(SELECT COUNT(*) FROM payments WHERE related_document_id = ?)
	`, id, id).Scan(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CountForSubProject reports how many financial documents and payments a
// subproject carries.
func (r *DocumentRepository) CountForSubProject(ctx context.Context, subProjectID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM financial_documents WHERE sub_project_id = ?) +
			(SELECT COUNT(*) FROM payments WHERE sub_project_id = ?)
	`, subProjectID, subProjectID).Scan(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DocumentRepository) GetPayment(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	var payment model.Payment
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+paymentColumns+`
		FROM payments
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&payment).Error
	if err != nil {
		return nil, err
	}
	if payment.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &payment, nil
}

func (r *DocumentRepository) ListPayments(ctx context.Context, subProjectID uuid.UUID) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+paymentColumns+`
		FROM payments
		WHERE sub_project_id = ?
		ORDER BY payment_date, created_at
	`, subProjectID).Scan(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *DocumentRepository) CreatePayment(ctx context.Context, payment *model.Payment) error {
	return r.db.WithContext(ctx).Raw(`
		INSERT INTO payments (
			sub_project_id,
			amount,
			related_document_id,
			payment_date,
			description,
			created_by_id
		) VALUES (?, ?, ?, ?, ?, ?)
		RETURNING `+paymentColumns+`
	`,
		payment.SubProjectID,
		payment.Amount,
		payment.RelatedDocumentID,
		payment.PaymentDate,
		payment.Description,
		payment.CreatedByID,
	).Scan(payment).Error
}

func (r *DocumentRepository) UpdatePayment(ctx context.Context, payment *model.Payment) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE payments
		SET
			amount = ?,
			related_document_id = ?,
			payment_date = ?,
			description = ?,
			updated_at = NOW()
		WHERE id = ?
	`,
		payment.Amount,
		payment.RelatedDocumentID,
		payment.PaymentDate,
		payment.Description,
		payment.ID,
	).Error
}

func (r *DocumentRepository) DeletePayment(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Exec(`DELETE FROM payments WHERE id = ?`, id).Error
}

func (r *DocumentRepository) ListSituationReports(ctx context.Context, subProjectID uuid.UUID) ([]model.SituationReport, error) {
	var reports []model.SituationReport
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sub_project_id,
			report_number,
			report_type,
			report_date,
			payment_amount,
			description,
			created_at
		FROM situation_reports
		WHERE sub_project_id = ?
		ORDER BY report_number
	`, subProjectID).Scan(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (r *DocumentRepository) CreateSituationReport(ctx context.Context, report *model.SituationReport) error {
	return r.db.WithContext(ctx).Raw(`
		INSERT INTO situation_reports (
			sub_project_id,
			report_number,
			report_type,
			report_date,
			payment_amount,
			description
		) VALUES (?, ?, ?, ?, ?, ?)
		RETURNING
			id,
			sub_project_id,
			report_number,
			report_type,
			report_date,
			payment_amount,
			description,
			created_at
	`,
		report.SubProjectID,
		report.ReportNumber,
		report.ReportType,
		report.ReportDate,
		report.PaymentAmount,
		report.Description,
	).Scan(report).Error
}

func (r *DocumentRepository) AttachFile(ctx context.Context, file *model.DocumentFile) error {
	return r.db.WithContext(ctx).Raw(`
		INSERT INTO document_files (
			document_id,
			content,
			mime_type,
			filename
		) VALUES (?, ?, ?, ?)
		RETURNING id, document_id, mime_type, filename, uploaded_at
	`, file.DocumentID, file.Content, file.MIMEType, file.Filename).Scan(file).Error
}

func (r *DocumentRepository) GetFile(ctx context.Context, id uuid.UUID) (*model.DocumentFile, error) {
	var file model.DocumentFile
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, document_id, content, mime_type, filename, uploaded_at
		FROM document_files
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&file).Error
	if err != nil {
		return nil, err
	}
	if file.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &file, nil
}

func (r *DocumentRepository) AddGalleryImage(ctx context.Context, image *model.GalleryImage) error {
	return r.db.WithContext(ctx).Raw(`
		INSERT INTO gallery_images (
			sub_project_id,
			content,
			mime_type,
			title,
			description
		) VALUES (?, ?, ?, ?, ?)
		RETURNING id, sub_project_id, mime_type, title, description, uploaded_at
	`, image.SubProjectID, image.Content, image.MIMEType, image.Title, image.Description).Scan(image).Error
}

func (r *DocumentRepository) GetGalleryImage(ctx context.Context, id uuid.UUID) (*model.GalleryImage, error) {
	var image model.GalleryImage
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, sub_project_id, content, mime_type, title, description, uploaded_at
		FROM gallery_images
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&image).Error
	if err != nil {
		return nil, err
	}
	if image.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &image, nil
}

// ListGallery returns gallery metadata without blob contents.
func (r *DocumentRepository) ListGallery(ctx context.Context, subProjectID uuid.UUID) ([]model.GalleryImage, error) {
	var images []model.GalleryImage
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, sub_project_id, mime_type, title, description, uploaded_at
		FROM gallery_images
		WHERE sub_project_id = ?
		ORDER BY uploaded_at
	`, subProjectID).Scan(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *DocumentRepository) DeleteGalleryImage(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Exec(`DELETE FROM gallery_images WHERE id = ?`, id).Error
}
