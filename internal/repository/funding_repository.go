package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/omranyar/portfolio-engine/internal/model"
)

const fundingColumns = `
	id,
	project_id,
	created_by_id,
	expert_id,
	chief_id,
	province_suggested_amount,
	headquarters_suggested_amount,
	final_amount,
	priority,
	province_description,
	expert_description,
	expert_rejection_reason,
	chief_rejection_reason,
	status,
	created_at,
	updated_at,
	submitted_at,
	approved_at,
	archived_at
`

type FundingRepository struct {
	db *gorm.DB
}

func NewFundingRepository(db *gorm.DB) *FundingRepository {
	return &FundingRepository{db: db}
}

func (r *FundingRepository) WithTx(tx *gorm.DB) *FundingRepository {
	return &FundingRepository{db: tx}
}

func (r *FundingRepository) Get(ctx context.Context, id uuid.UUID) (*model.FundingRequest, error) {
	var request model.FundingRequest
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+fundingColumns+`
		FROM funding_requests
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&request).Error
	if err != nil {
		return nil, err
	}
	if request.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &request, nil
}

func (r *FundingRepository) List(ctx context.Context, statuses []model.FundingStatus, provinces []model.Province) ([]model.FundingRequest, error) {
	query := `
		SELECT ` + fundingPrefixedColumns() + `
		FROM funding_requests fr
		JOIN projects p ON p.id = fr.project_id
	`
	var conditions []string
	var args []interface{}
	if len(statuses) > 0 {
		conditions = append(conditions, "fr.status IN ?")
		args = append(args, statuses)
	}
	if len(provinces) > 0 {
		conditions = append(conditions, "p.province IN ?")
		args = append(args, provinces)
	}
	for i, condition := range conditions {
		if i == 0 {
			query += " WHERE " + condition
		} else {
			query += " AND " + condition
		}
	}
	query += " ORDER BY fr.created_at DESC"

	var requests []model.FundingRequest
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func fundingPrefixedColumns() string {
	return `
		fr.id,
		fr.project_id,
		fr.created_by_id,
		fr.expert_id,
		fr.chief_id,
		fr.province_suggested_amount,
		fr.headquarters_suggested_amount,
		fr.final_amount,
		fr.priority,
		fr.province_description,
		fr.expert_description,
		fr.expert_rejection_reason,
		fr.chief_rejection_reason,
		fr.status,
		fr.created_at,
		fr.updated_at,
		fr.submitted_at,
		fr.approved_at,
		fr.archived_at
	`
}

func (r *FundingRepository) Create(ctx context.Context, request *model.FundingRequest) error {
	return r.db.WithContext(ctx).Raw(`
		INSERT INTO funding_requests (
			project_id,
			created_by_id,
			province_suggested_amount,
			priority,
			province_description,
			status
		) VALUES (?, ?, ?, ?, ?, ?)
		RETURNING `+fundingColumns+`
	`,
		request.ProjectID,
		request.CreatedByID,
		request.ProvinceSuggestedAmount,
		request.Priority,
		request.ProvinceDescription,
		model.FundingDraft,
	).Scan(request).Error
}

func (r *FundingRepository) Update(ctx context.Context, request *model.FundingRequest) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE funding_requests
		SET
			expert_id = ?,
			chief_id = ?,
			province_suggested_amount = ?,
			headquarters_suggested_amount = ?,
			final_amount = ?,
			priority = ?,
			province_description = ?,
			expert_description = ?,
			expert_rejection_reason = ?,
			chief_rejection_reason = ?,
			status = ?,
			submitted_at = ?,
			approved_at = ?,
			archived_at = ?,
			updated_at = NOW()
		WHERE id = ?
	`,
		request.ExpertID,
		request.ChiefID,
		request.ProvinceSuggestedAmount,
		request.HeadquartersSuggestedAmount,
		request.FinalAmount,
		request.Priority,
		request.ProvinceDescription,
		request.ExpertDescription,
		request.ExpertRejectionReason,
		request.ChiefRejectionReason,
		request.Status,
		request.SubmittedAt,
		request.ApprovedAt,
		request.ArchivedAt,
		request.ID,
	).Error
}

// ArchiveApproved moves every approved request to archived in one statement
// and returns the affected ids.
func (r *FundingRepository) ArchiveApproved(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Raw(`
		UPDATE funding_requests
		SET status = ?, archived_at = NOW(), updated_at = NOW()
		WHERE status = ?
		RETURNING id
	`, model.FundingArchived, model.FundingApproved).Scan(&ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *FundingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Exec(`DELETE FROM funding_requests WHERE id = ?`, id).Error
}
