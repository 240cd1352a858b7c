package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DocumentType string

const (
	DocumentTypeAdvancePayment   DocumentType = "advance_payment"
	DocumentTypeTemporaryReport  DocumentType = "temporary_report"
	DocumentTypePermanentReport  DocumentType = "permanent_report"
	DocumentTypeAdjustmentReport DocumentType = "adjustment_report"
)

var DocumentTypes = []DocumentType{
	DocumentTypeAdvancePayment, DocumentTypeTemporaryReport,
	DocumentTypePermanentReport, DocumentTypeAdjustmentReport,
}

func (t DocumentType) Valid() bool {
	for _, known := range DocumentTypes {
		if t == known {
			return true
		}
	}
	return false
}

// FinancialDocument is a contractor-submitted statement against a
// subproject. DocumentNumber is densely allocated per (subproject, type)
// starting at 1. Adjustment reports must reference a sibling document.
type FinancialDocument struct {
	ID             uuid.UUID
	SubProjectID   uuid.UUID
	DocumentType   DocumentType
	DocumentNumber int

	RelatedDocumentID *uuid.UUID

	ContractorAmount     decimal.Decimal
	ApprovedAmount       decimal.Decimal
	ContractorSubmitDate time.Time
	ApprovalDate         *time.Time

	Description *string

	CreatedByID *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DocumentFile is a blob attached to a financial document, stored in the
// database alongside its MIME type.
type DocumentFile struct {
	ID         uuid.UUID
	DocumentID uuid.UUID
	Content    []byte
	MIMEType   string
	Filename   string
	UploadedAt time.Time
}

// Payment is money actually disbursed against a subproject, optionally
// tied to one of its financial documents.
type Payment struct {
	ID                uuid.UUID
	SubProjectID      uuid.UUID
	Amount            decimal.Decimal
	RelatedDocumentID *uuid.UUID
	PaymentDate       time.Time
	Description       *string

	CreatedByID *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SituationReport is the legacy كاركرد statement kept alongside
// FinancialDocument. Which of the two is authoritative for "latest payment"
// is still open; both views are served (see project finance).
type SituationReport struct {
	ID            uuid.UUID
	SubProjectID  uuid.UUID
	ReportNumber  int
	ReportType    string // "temporary" or "permanent"
	ReportDate    time.Time
	PaymentAmount decimal.Decimal
	Description   *string
	CreatedAt     time.Time
}

// GalleryImage is a subproject photograph stored in the database.
type GalleryImage struct {
	ID           uuid.UUID
	SubProjectID uuid.UUID
	Content      []byte
	MIMEType     string
	Title        *string
	Description  *string
	UploadedAt   time.Time
}
