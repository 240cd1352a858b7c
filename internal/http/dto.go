package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/omranyar/portfolio-engine/internal/dates"
	"github.com/omranyar/portfolio-engine/internal/model"
)

// Dates cross the API boundary as civic Persian "YYYY/MM/DD" strings;
// everything below converts between those strings and the Gregorian
// time.Time the engine stores.

func parseOptionalJalali(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	parsed, err := dates.ParseJalali(*raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func formatOptionalJalali(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := dates.FormatJalali(*t)
	return &formatted
}

type programRequest struct {
	Title        string           `json:"title" binding:"required"`
	ProgramType  string           `json:"program_type" binding:"required"`
	Province     string           `json:"province" binding:"required"`
	City         string           `json:"city"`
	LicenseState string           `json:"license_state" binding:"required"`
	LicenseCode  string           `json:"license_code"`
	Address      *string          `json:"address"`
	Longitude    *decimal.Decimal `json:"longitude"`
	Latitude     *decimal.Decimal `json:"latitude"`
	Description  *string          `json:"description"`
}

func (req *programRequest) toModel() *model.Program {
	return &model.Program{
		Title:        req.Title,
		ProgramType:  model.ProgramType(req.ProgramType),
		Province:     model.Province(req.Province),
		City:         req.City,
		LicenseState: model.LicenseState(req.LicenseState),
		LicenseCode:  req.LicenseCode,
		Address:      req.Address,
		Longitude:    req.Longitude,
		Latitude:     req.Latitude,
		Description:  req.Description,
	}
}

type programResponse struct {
	ID                      uuid.UUID        `json:"id"`
	ProgramID               string           `json:"program_id"`
	Title                   string           `json:"title"`
	ProgramType             string           `json:"program_type"`
	Province                string           `json:"province"`
	City                    string           `json:"city"`
	LicenseState            string           `json:"license_state"`
	LicenseCode             string           `json:"license_code"`
	Address                 *string          `json:"address"`
	Longitude               *decimal.Decimal `json:"longitude"`
	Latitude                *decimal.Decimal `json:"latitude"`
	Description             *string          `json:"description"`
	OpeningDate             *string          `json:"opening_date"`
	OverallPhysicalProgress decimal.Decimal  `json:"overall_physical_progress"`
	IsSubmitted             bool             `json:"is_submitted"`
	IsExpertApproved        bool             `json:"is_expert_approved"`
	IsApproved              bool             `json:"is_approved"`
	CreatedAt               time.Time        `json:"created_at"`
	UpdatedAt               time.Time        `json:"updated_at"`
}

func toProgramResponse(program *model.Program) programResponse {
	return programResponse{
		ID:                      program.ID,
		ProgramID:               program.ProgramID,
		Title:                   program.Title,
		ProgramType:             string(program.ProgramType),
		Province:                string(program.Province),
		City:                    program.City,
		LicenseState:            string(program.LicenseState),
		LicenseCode:             program.LicenseCode,
		Address:                 program.Address,
		Longitude:               program.Longitude,
		Latitude:                program.Latitude,
		Description:             program.Description,
		OpeningDate:             formatOptionalJalali(program.OpeningDate),
		OverallPhysicalProgress: program.OverallPhysicalProgress,
		IsSubmitted:             program.IsSubmitted,
		IsExpertApproved:        program.IsExpertApproved,
		IsApproved:              program.IsApproved,
		CreatedAt:               program.CreatedAt,
		UpdatedAt:               program.UpdatedAt,
	}
}

type allocationsPayload struct {
	CashNational     decimal.Decimal `json:"cash_national"`
	CashProvince     decimal.Decimal `json:"cash_province"`
	CashCharity      decimal.Decimal `json:"cash_charity"`
	CashTravel       decimal.Decimal `json:"cash_travel"`
	TreasuryNational decimal.Decimal `json:"treasury_national"`
	TreasuryProvince decimal.Decimal `json:"treasury_province"`
	TreasuryTravel   decimal.Decimal `json:"treasury_travel"`
}

type projectRequest struct {
	ProgramID            *uuid.UUID         `json:"program_id"`
	Name                 string             `json:"name" binding:"required"`
	ProjectType          string             `json:"project_type" binding:"required"`
	Province             string             `json:"province"`
	City                 string             `json:"city"`
	AreaSize             *decimal.Decimal   `json:"area_size"`
	SiteArea             *decimal.Decimal   `json:"site_area"`
	WallLength           *decimal.Decimal   `json:"wall_length"`
	Notables             *decimal.Decimal   `json:"notables"`
	Floor                *int               `json:"floor"`
	EstimatedOpeningTime *string            `json:"estimated_opening_time"`
	Allocations          allocationsPayload `json:"allocations"`
}

func (req *projectRequest) toModel() (*model.Project, error) {
	opening, err := parseOptionalJalali(req.EstimatedOpeningTime)
	if err != nil {
		return nil, err
	}
	return &model.Project{
		ProgramID:            req.ProgramID,
		Name:                 req.Name,
		ProjectType:          model.ProjectType(req.ProjectType),
		Province:             model.Province(req.Province),
		City:                 req.City,
		AreaSize:             req.AreaSize,
		SiteArea:             req.SiteArea,
		WallLength:           req.WallLength,
		Notables:             req.Notables,
		Floor:                req.Floor,
		EstimatedOpeningTime: opening,
		Allocations: model.AllocationPools{
			CashNational:     req.Allocations.CashNational,
			CashProvince:     req.Allocations.CashProvince,
			CashCharity:      req.Allocations.CashCharity,
			CashTravel:       req.Allocations.CashTravel,
			TreasuryNational: req.Allocations.TreasuryNational,
			TreasuryProvince: req.Allocations.TreasuryProvince,
			TreasuryTravel:   req.Allocations.TreasuryTravel,
		},
	}, nil
}

type projectResponse struct {
	ID                            uuid.UUID          `json:"id"`
	ProgramID                     *uuid.UUID         `json:"program_id"`
	ProjectID                     string             `json:"project_id"`
	Name                          string             `json:"name"`
	ProjectType                   string             `json:"project_type"`
	Province                      string             `json:"province"`
	City                          string             `json:"city"`
	AreaSize                      *decimal.Decimal   `json:"area_size"`
	SiteArea                      *decimal.Decimal   `json:"site_area"`
	WallLength                    *decimal.Decimal   `json:"wall_length"`
	Notables                      *decimal.Decimal   `json:"notables"`
	Floor                         *int               `json:"floor"`
	EstimatedOpeningTime          *string            `json:"estimated_opening_time"`
	OverallStatus                 string             `json:"overall_status"`
	PhysicalProgress              decimal.Decimal    `json:"physical_progress"`
	Allocations                   allocationsPayload `json:"allocations"`
	TotalCash                     decimal.Decimal    `json:"total_cash"`
	TotalTreasury                 decimal.Decimal    `json:"total_treasury"`
	CachedTotalDebt               decimal.Decimal    `json:"total_debt"`
	CachedRequiredCreditContracts decimal.Decimal    `json:"required_credit_contracts"`
	CachedRequiredCreditProject   decimal.Decimal    `json:"required_credit_project"`
	IsSubmitted                   bool               `json:"is_submitted"`
	IsExpertApproved              bool               `json:"is_expert_approved"`
	IsApproved                    bool               `json:"is_approved"`
	CreatedAt                     time.Time          `json:"created_at"`
	UpdatedAt                     time.Time          `json:"updated_at"`
}

func toProjectResponse(project *model.Project) projectResponse {
	return projectResponse{
		ID:                   project.ID,
		ProgramID:            project.ProgramID,
		ProjectID:            project.ProjectID,
		Name:                 project.Name,
		ProjectType:          string(project.ProjectType),
		Province:             string(project.Province),
		City:                 project.City,
		AreaSize:             project.AreaSize,
		SiteArea:             project.SiteArea,
		WallLength:           project.WallLength,
		Notables:             project.Notables,
		Floor:                project.Floor,
		EstimatedOpeningTime: formatOptionalJalali(project.EstimatedOpeningTime),
		OverallStatus:        string(project.OverallStatus),
		PhysicalProgress:     project.PhysicalProgress,
		Allocations: allocationsPayload{
			CashNational:     project.Allocations.CashNational,
			CashProvince:     project.Allocations.CashProvince,
			CashCharity:      project.Allocations.CashCharity,
			CashTravel:       project.Allocations.CashTravel,
			TreasuryNational: project.Allocations.TreasuryNational,
			TreasuryProvince: project.Allocations.TreasuryProvince,
			TreasuryTravel:   project.Allocations.TreasuryTravel,
		},
		TotalCash:                     project.Allocations.TotalCash(),
		TotalTreasury:                 project.Allocations.TotalTreasury(),
		CachedTotalDebt:               project.CachedTotalDebt,
		CachedRequiredCreditContracts: project.CachedRequiredCreditContracts,
		CachedRequiredCreditProject:   project.CachedRequiredCreditProject,
		IsSubmitted:                   project.IsSubmitted,
		IsExpertApproved:              project.IsExpertApproved,
		IsApproved:                    project.IsApproved,
		CreatedAt:                     project.CreatedAt,
		UpdatedAt:                     project.UpdatedAt,
	}
}

type subProjectRequest struct {
	Name                      *string          `json:"name"`
	Type                      string           `json:"type" binding:"required"`
	State                     string           `json:"state" binding:"required"`
	PhysicalProgress          decimal.Decimal  `json:"physical_progress"`
	RemainingWork             *string          `json:"remaining_work"`
	Description               *string          `json:"description"`
	SupportingCharity         bool             `json:"supporting_charity"`
	RelatedSubProjectID       *uuid.UUID       `json:"related_subproject_id"`
	RelationshipType          *string          `json:"relationship_type"`
	RelationshipDelay         *int             `json:"relationship_delay"`
	ImaginaryDuration         *int             `json:"imaginary_duration"`
	ImaginaryCost             *decimal.Decimal `json:"imaginary_cost"`
	CostCalculationMethod     *string          `json:"cost_calculation_method"`
	HasAdjustment             bool             `json:"has_adjustment"`
	AdjustmentCoefficient     decimal.Decimal  `json:"adjustment_coefficient"`
	PredictedAdjustmentAmount decimal.Decimal  `json:"predicted_adjustment_amount"`
	ContractStartDate         *string          `json:"contract_start_date"`
	ContractEndDate           *string          `json:"contract_end_date"`
	ContractAmount            *decimal.Decimal `json:"contract_amount"`
	ContractType              *string          `json:"contract_type"`
	ExecutionMethod           *string          `json:"execution_method"`
	ContractorName            *string          `json:"contractor_name"`
	ContractorID              *string          `json:"contractor_id"`
}

func (req *subProjectRequest) toModel() (*model.SubProject, error) {
	contractStart, err := parseOptionalJalali(req.ContractStartDate)
	if err != nil {
		return nil, err
	}
	contractEnd, err := parseOptionalJalali(req.ContractEndDate)
	if err != nil {
		return nil, err
	}

	sub := &model.SubProject{
		Name:                      req.Name,
		Type:                      model.SubProjectType(req.Type),
		State:                     model.SubProjectState(req.State),
		PhysicalProgress:          req.PhysicalProgress,
		RemainingWork:             req.RemainingWork,
		Description:               req.Description,
		SupportingCharity:         req.SupportingCharity,
		RelatedSubProjectID:       req.RelatedSubProjectID,
		RelationshipDelay:         req.RelationshipDelay,
		ImaginaryDuration:         req.ImaginaryDuration,
		ImaginaryCost:             req.ImaginaryCost,
		CostCalculationMethod:     req.CostCalculationMethod,
		HasAdjustment:             req.HasAdjustment,
		AdjustmentCoefficient:     req.AdjustmentCoefficient,
		PredictedAdjustmentAmount: req.PredictedAdjustmentAmount,
		ContractStartDate:         contractStart,
		ContractEndDate:           contractEnd,
		ContractAmount:            req.ContractAmount,
		ContractorName:            req.ContractorName,
		ContractorID:              req.ContractorID,
	}
	if req.RelationshipType != nil {
		relType := model.RelationshipType(*req.RelationshipType)
		sub.RelationshipType = &relType
	}
	if req.ContractType != nil {
		contractType := model.ContractType(*req.ContractType)
		sub.ContractType = &contractType
	}
	if req.ExecutionMethod != nil {
		method := model.ExecutionMethod(*req.ExecutionMethod)
		sub.ExecutionMethod = &method
	}
	return sub, nil
}

type subProjectResponse struct {
	ID                        uuid.UUID        `json:"id"`
	ProjectID                 uuid.UUID        `json:"project_id"`
	Number                    int              `json:"number"`
	Name                      *string          `json:"name"`
	Type                      string           `json:"type"`
	State                     string           `json:"state"`
	PhysicalProgress          decimal.Decimal  `json:"physical_progress"`
	RemainingWork             *string          `json:"remaining_work"`
	Description               *string          `json:"description"`
	SupportingCharity         bool             `json:"supporting_charity"`
	RelatedSubProjectID       *uuid.UUID       `json:"related_subproject_id"`
	RelationshipType          *string          `json:"relationship_type"`
	RelationshipDelay         *int             `json:"relationship_delay"`
	ImaginaryDuration         *int             `json:"imaginary_duration"`
	ImaginaryCost             *decimal.Decimal `json:"imaginary_cost"`
	CostCalculationMethod     *string          `json:"cost_calculation_method"`
	HasAdjustment             bool             `json:"has_adjustment"`
	AdjustmentCoefficient     decimal.Decimal  `json:"adjustment_coefficient"`
	PredictedAdjustmentAmount decimal.Decimal  `json:"predicted_adjustment_amount"`
	ContractStartDate         *string          `json:"contract_start_date"`
	ContractEndDate           *string          `json:"contract_end_date"`
	ContractAmount            *decimal.Decimal `json:"contract_amount"`
	ContractType              *string          `json:"contract_type"`
	ExecutionMethod           *string          `json:"execution_method"`
	ContractorName            *string          `json:"contractor_name"`
	ContractorID              *string          `json:"contractor_id"`
	HasContract               bool             `json:"has_contract"`
	FinalContractAmount       decimal.Decimal  `json:"final_contract_amount"`
	StartDate                 *string          `json:"start_date"`
	EndDate                   *string          `json:"end_date"`
	TotalPayments             decimal.Decimal  `json:"total_payments"`
	TotalAdjustmentAmount     decimal.Decimal  `json:"total_adjustment_amount"`
	Debt                      decimal.Decimal  `json:"debt"`
	IsSubmitted               bool             `json:"is_submitted"`
	IsExpertApproved          bool             `json:"is_expert_approved"`
	IsApproved                bool             `json:"is_approved"`
	CreatedAt                 time.Time        `json:"created_at"`
	UpdatedAt                 time.Time        `json:"updated_at"`
}

func toSubProjectResponse(sub *model.SubProject) subProjectResponse {
	resp := subProjectResponse{
		ID:                        sub.ID,
		ProjectID:                 sub.ProjectID,
		Number:                    sub.Number,
		Name:                      sub.Name,
		Type:                      string(sub.Type),
		State:                     string(sub.State),
		PhysicalProgress:          sub.PhysicalProgress,
		RemainingWork:             sub.RemainingWork,
		Description:               sub.Description,
		SupportingCharity:         sub.SupportingCharity,
		RelatedSubProjectID:       sub.RelatedSubProjectID,
		RelationshipDelay:         sub.RelationshipDelay,
		ImaginaryDuration:         sub.ImaginaryDuration,
		ImaginaryCost:             sub.ImaginaryCost,
		CostCalculationMethod:     sub.CostCalculationMethod,
		HasAdjustment:             sub.HasAdjustment,
		AdjustmentCoefficient:     sub.AdjustmentCoefficient,
		PredictedAdjustmentAmount: sub.PredictedAdjustmentAmount,
		ContractStartDate:         formatOptionalJalali(sub.ContractStartDate),
		ContractEndDate:           formatOptionalJalali(sub.ContractEndDate),
		ContractAmount:            sub.ContractAmount,
		ContractorName:            sub.ContractorName,
		ContractorID:              sub.ContractorID,
		HasContract:               sub.HasContract(),
		FinalContractAmount:       sub.FinalContractAmount(),
		StartDate:                 formatOptionalJalali(sub.StartDate),
		EndDate:                   formatOptionalJalali(sub.EndDate),
		TotalPayments:             sub.TotalPayments,
		TotalAdjustmentAmount:     sub.TotalAdjustmentAmount,
		Debt:                      sub.Debt,
		IsSubmitted:               sub.IsSubmitted,
		IsExpertApproved:          sub.IsExpertApproved,
		IsApproved:                sub.IsApproved,
		CreatedAt:                 sub.CreatedAt,
		UpdatedAt:                 sub.UpdatedAt,
	}
	if sub.RelationshipType != nil {
		relType := string(*sub.RelationshipType)
		resp.RelationshipType = &relType
	}
	if sub.ContractType != nil {
		contractType := string(*sub.ContractType)
		resp.ContractType = &contractType
	}
	if sub.ExecutionMethod != nil {
		method := string(*sub.ExecutionMethod)
		resp.ExecutionMethod = &method
	}
	return resp
}

type documentRequest struct {
	DocumentType         string           `json:"document_type" binding:"required"`
	DocumentNumber       int              `json:"document_number"`
	RelatedDocumentID    *uuid.UUID       `json:"related_document_id"`
	ContractorAmount     decimal.Decimal  `json:"contractor_amount"`
	ApprovedAmount       decimal.Decimal  `json:"approved_amount"`
	ContractorSubmitDate string           `json:"contractor_submit_date" binding:"required"`
	ApprovalDate         *string          `json:"approval_date"`
	Description          *string          `json:"description"`
}

func (req *documentRequest) toModel() (*model.FinancialDocument, error) {
	submitDate, err := dates.ParseJalali(req.ContractorSubmitDate)
	if err != nil {
		return nil, err
	}
	approvalDate, err := parseOptionalJalali(req.ApprovalDate)
	if err != nil {
		return nil, err
	}
	return &model.FinancialDocument{
		DocumentType:         model.DocumentType(req.DocumentType),
		DocumentNumber:       req.DocumentNumber,
		RelatedDocumentID:    req.RelatedDocumentID,
		ContractorAmount:     req.ContractorAmount,
		ApprovedAmount:       req.ApprovedAmount,
		ContractorSubmitDate: submitDate,
		ApprovalDate:         approvalDate,
		Description:          req.Description,
	}, nil
}

type documentResponse struct {
	ID                   uuid.UUID       `json:"id"`
	SubProjectID         uuid.UUID       `json:"subproject_id"`
	DocumentType         string          `json:"document_type"`
	DocumentNumber       int             `json:"document_number"`
	RelatedDocumentID    *uuid.UUID      `json:"related_document_id"`
	ContractorAmount     decimal.Decimal `json:"contractor_amount"`
	ApprovedAmount       decimal.Decimal `json:"approved_amount"`
	ContractorSubmitDate string          `json:"contractor_submit_date"`
	ApprovalDate         *string         `json:"approval_date"`
	Description          *string         `json:"description"`
	CreatedAt            time.Time       `json:"created_at"`
}

func toDocumentResponse(doc *model.FinancialDocument) documentResponse {
	return documentResponse{
		ID:                   doc.ID,
		SubProjectID:         doc.SubProjectID,
		DocumentType:         string(doc.DocumentType),
		DocumentNumber:       doc.DocumentNumber,
		RelatedDocumentID:    doc.RelatedDocumentID,
		ContractorAmount:     doc.ContractorAmount,
		ApprovedAmount:       doc.ApprovedAmount,
		ContractorSubmitDate: dates.FormatJalali(doc.ContractorSubmitDate),
		ApprovalDate:         formatOptionalJalali(doc.ApprovalDate),
		Description:          doc.Description,
		CreatedAt:            doc.CreatedAt,
	}
}

type paymentRequest struct {
	Amount            decimal.Decimal `json:"amount"`
	RelatedDocumentID *uuid.UUID      `json:"related_document_id"`
	PaymentDate       string          `json:"payment_date" binding:"required"`
	Description       *string         `json:"description"`
}

func (req *paymentRequest) toModel() (*model.Payment, error) {
	paymentDate, err := dates.ParseJalali(req.PaymentDate)
	if err != nil {
		return nil, err
	}
	return &model.Payment{
		Amount:            req.Amount,
		RelatedDocumentID: req.RelatedDocumentID,
		PaymentDate:       paymentDate,
		Description:       req.Description,
	}, nil
}

type paymentResponse struct {
	ID                uuid.UUID       `json:"id"`
	SubProjectID      uuid.UUID       `json:"subproject_id"`
	Amount            decimal.Decimal `json:"amount"`
	RelatedDocumentID *uuid.UUID      `json:"related_document_id"`
	PaymentDate       string          `json:"payment_date"`
	Description       *string         `json:"description"`
	CreatedAt         time.Time       `json:"created_at"`
}

func toPaymentResponse(payment *model.Payment) paymentResponse {
	return paymentResponse{
		ID:                payment.ID,
		SubProjectID:      payment.SubProjectID,
		Amount:            payment.Amount,
		RelatedDocumentID: payment.RelatedDocumentID,
		PaymentDate:       dates.FormatJalali(payment.PaymentDate),
		Description:       payment.Description,
		CreatedAt:         payment.CreatedAt,
	}
}

type situationReportRequest struct {
	ReportNumber  int             `json:"report_number" binding:"required"`
	ReportType    string          `json:"report_type" binding:"required"`
	ReportDate    string          `json:"report_date" binding:"required"`
	PaymentAmount decimal.Decimal `json:"payment_amount"`
	Description   *string         `json:"description"`
}

func (req *situationReportRequest) toModel() (*model.SituationReport, error) {
	reportDate, err := dates.ParseJalali(req.ReportDate)
	if err != nil {
		return nil, err
	}
	return &model.SituationReport{
		ReportNumber:  req.ReportNumber,
		ReportType:    req.ReportType,
		ReportDate:    reportDate,
		PaymentAmount: req.PaymentAmount,
		Description:   req.Description,
	}, nil
}

type situationReportResponse struct {
	ID            uuid.UUID       `json:"id"`
	SubProjectID  uuid.UUID       `json:"subproject_id"`
	ReportNumber  int             `json:"report_number"`
	ReportType    string          `json:"report_type"`
	ReportDate    string          `json:"report_date"`
	PaymentAmount decimal.Decimal `json:"payment_amount"`
	Description   *string         `json:"description"`
	CreatedAt     time.Time       `json:"created_at"`
}

func toSituationReportResponse(report *model.SituationReport) situationReportResponse {
	return situationReportResponse{
		ID:            report.ID,
		SubProjectID:  report.SubProjectID,
		ReportNumber:  report.ReportNumber,
		ReportType:    report.ReportType,
		ReportDate:    dates.FormatJalali(report.ReportDate),
		PaymentAmount: report.PaymentAmount,
		Description:   report.Description,
		CreatedAt:     report.CreatedAt,
	}
}

type fundingResponse struct {
	ID                          uuid.UUID        `json:"id"`
	ProjectID                   uuid.UUID        `json:"project_id"`
	CreatedByID                 uuid.UUID        `json:"created_by_id"`
	ExpertID                    *uuid.UUID       `json:"expert_id"`
	ChiefID                     *uuid.UUID       `json:"chief_id"`
	ProvinceSuggestedAmount     decimal.Decimal  `json:"province_suggested_amount"`
	HeadquartersSuggestedAmount *decimal.Decimal `json:"headquarters_suggested_amount"`
	FinalAmount                 *decimal.Decimal `json:"final_amount"`
	Priority                    string           `json:"priority"`
	ProvinceDescription         string           `json:"province_description"`
	ExpertDescription           string           `json:"expert_description"`
	ExpertRejectionReason       string           `json:"expert_rejection_reason"`
	ChiefRejectionReason        string           `json:"chief_rejection_reason"`
	Status                      string           `json:"status"`
	CreatedAt                   time.Time        `json:"created_at"`
	SubmittedAt                 *time.Time       `json:"submitted_at"`
	ApprovedAt                  *time.Time       `json:"approved_at"`
	ArchivedAt                  *time.Time       `json:"archived_at"`
}

func toFundingResponse(request *model.FundingRequest) fundingResponse {
	return fundingResponse{
		ID:                          request.ID,
		ProjectID:                   request.ProjectID,
		CreatedByID:                 request.CreatedByID,
		ExpertID:                    request.ExpertID,
		ChiefID:                     request.ChiefID,
		ProvinceSuggestedAmount:     request.ProvinceSuggestedAmount,
		HeadquartersSuggestedAmount: request.HeadquartersSuggestedAmount,
		FinalAmount:                 request.FinalAmount,
		Priority:                    string(request.Priority),
		ProvinceDescription:         request.ProvinceDescription,
		ExpertDescription:           request.ExpertDescription,
		ExpertRejectionReason:       request.ExpertRejectionReason,
		ChiefRejectionReason:        request.ChiefRejectionReason,
		Status:                      string(request.Status),
		CreatedAt:                   request.CreatedAt,
		SubmittedAt:                 request.SubmittedAt,
		ApprovedAt:                  request.ApprovedAt,
		ArchivedAt:                  request.ArchivedAt,
	}
}

type changeEntryResponse struct {
	FieldName string    `json:"field_name"`
	OldValue  string    `json:"old_value"`
	NewValue  string    `json:"new_value"`
	ChangedBy uuid.UUID `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
}

func toChangeEntryResponses(entries []model.ChangeEntry) []changeEntryResponse {
	out := make([]changeEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, changeEntryResponse{
			FieldName: entry.FieldName,
			OldValue:  entry.OldValue,
			NewValue:  entry.NewValue,
			ChangedBy: entry.ChangedByID,
			ChangedAt: entry.ChangedAt,
		})
	}
	return out
}

type commentResponse struct {
	ID        uuid.UUID `json:"id"`
	FieldName string    `json:"field_name"`
	Comment   string    `json:"comment"`
	AuthorID  uuid.UUID `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

func toCommentResponses(comments []model.RejectionComment) []commentResponse {
	out := make([]commentResponse, 0, len(comments))
	for _, comment := range comments {
		out = append(out, commentResponse{
			ID:        comment.ID,
			FieldName: comment.FieldName,
			Comment:   comment.Comment,
			AuthorID:  comment.AuthorID,
			CreatedAt: comment.CreatedAt,
		})
	}
	return out
}
