package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/omranyar/portfolio-engine/internal/model"
)

const subProjectColumns = `
	id,
	project_id,
	number,
	name,
	type,
	state,
	physical_progress,
	remaining_work,
	description,
	supporting_charity,
	related_sub_project_id,
	relationship_type,
	relationship_delay,
	imaginary_duration,
	imaginary_cost,
	cost_calculation_method,
	has_adjustment,
	adjustment_coefficient,
	predicted_adjustment_amount,
	contract_start_date,
	contract_end_date,
	contract_amount,
	contract_type,
	execution_method,
	contractor_name,
	contractor_id,
	start_date,
	end_date,
	total_payments,
	total_adjustment_amount,
	debt,
	is_submitted,
	is_expert_approved,
	is_approved,
	created_by_id,
	created_at,
	updated_at
`

type SubProjectRepository struct {
	db *gorm.DB
}

func NewSubProjectRepository(db *gorm.DB) *SubProjectRepository {
	return &SubProjectRepository{db: db}
}

func (r *SubProjectRepository) WithTx(tx *gorm.DB) *SubProjectRepository {
	return &SubProjectRepository{db: tx}
}

func (r *SubProjectRepository) Get(ctx context.Context, id uuid.UUID) (*model.SubProject, error) {
	var sub model.SubProject
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+subProjectColumns+`
		FROM subprojects
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&sub).Error
	if err != nil {
		return nil, err
	}
	if sub.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &sub, nil
}

func (r *SubProjectRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.SubProject, error) {
	var subs []model.SubProject
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+subProjectColumns+`
		FROM subprojects
		WHERE project_id = ?
		ORDER BY number
	`, projectID).Scan(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *SubProjectRepository) Create(ctx context.Context, sub *model.SubProject) error {
	return r.db.WithContext(ctx).Raw(`
		INSERT INTO subprojects (
			project_id,
			number,
			name,
			type,
			state,
			physical_progress,
			remaining_work,
			description,
			supporting_charity,
			related_sub_project_id,
			relationship_type,
			relationship_delay,
			imaginary_duration,
			imaginary_cost,
			cost_calculation_method,
			has_adjustment,
			adjustment_coefficient,
			predicted_adjustment_amount,
			contract_start_date,
			contract_end_date,
			contract_amount,
			contract_type,
			execution_method,
			contractor_name,
			contractor_id,
			created_by_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+subProjectColumns+`
	`,
		sub.ProjectID,
		sub.Number,
		sub.Name,
		sub.Type,
		sub.State,
		sub.PhysicalProgress,
		sub.RemainingWork,
		sub.Description,
		sub.SupportingCharity,
		sub.RelatedSubProjectID,
		sub.RelationshipType,
		sub.RelationshipDelay,
		sub.ImaginaryDuration,
		sub.ImaginaryCost,
		sub.CostCalculationMethod,
		sub.HasAdjustment,
		sub.AdjustmentCoefficient,
		sub.PredictedAdjustmentAmount,
		sub.ContractStartDate,
		sub.ContractEndDate,
		sub.ContractAmount,
		sub.ContractType,
		sub.ExecutionMethod,
		sub.ContractorName,
		sub.ContractorID,
		sub.CreatedByID,
	).Scan(sub).Error
}

func (r *SubProjectRepository) Update(ctx context.Context, sub *model.SubProject) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE subprojects
		SET
			name = ?,
			type = ?,
			state = ?,
			physical_progress = ?,
			remaining_work = ?,
			description = ?,
			supporting_charity = ?,
			related_sub_project_id = ?,
			relationship_type = ?,
			relationship_delay = ?,
			imaginary_duration = ?,
			imaginary_cost = ?,
			cost_calculation_method = ?,
			has_adjustment = ?,
			adjustment_coefficient = ?,
			predicted_adjustment_amount = ?,
			contract_start_date = ?,
			contract_end_date = ?,
			contract_amount = ?,
			contract_type = ?,
			execution_method = ?,
			contractor_name = ?,
			contractor_id = ?,
			updated_at = NOW()
		WHERE id = ?
	`,
		sub.Name,
		sub.Type,
		sub.State,
		sub.PhysicalProgress,
		sub.RemainingWork,
		sub.Description,
		sub.SupportingCharity,
		sub.RelatedSubProjectID,
		sub.RelationshipType,
		sub.RelationshipDelay,
		sub.ImaginaryDuration,
		sub.ImaginaryCost,
		sub.CostCalculationMethod,
		sub.HasAdjustment,
		sub.AdjustmentCoefficient,
		sub.PredictedAdjustmentAmount,
		sub.ContractStartDate,
		sub.ContractEndDate,
		sub.ContractAmount,
		sub.ContractType,
		sub.ExecutionMethod,
		sub.ContractorName,
		sub.ContractorID,
		sub.ID,
	).Error
}

// UpdateSchedule writes the computed start and end dates only.
func (r *SubProjectRepository) UpdateSchedule(ctx context.Context, sub *model.SubProject) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE subprojects
		SET
			start_date = ?,
			end_date = ?,
			updated_at = NOW()
		WHERE id = ?
	`, sub.StartDate, sub.EndDate, sub.ID).Error
}

// UpdateFinancials writes the denormalized payment and adjustment sums.
func (r *SubProjectRepository) UpdateFinancials(ctx context.Context, sub *model.SubProject) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE subprojects
		SET
			total_payments = ?,
			total_adjustment_amount = ?,
			debt = ?,
			updated_at = NOW()
		WHERE id = ?
	`, sub.TotalPayments, sub.TotalAdjustmentAmount, sub.Debt, sub.ID).Error
}

func (r *SubProjectRepository) UpdateReviewFlags(ctx context.Context, id uuid.UUID, submitted, expertApproved, approved bool) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE subprojects
		SET
			is_submitted = ?,
			is_expert_approved = ?,
			is_approved = ?,
			updated_at = NOW()
		WHERE id = ?
	`, submitted, expertApproved, approved, id).Error
}

func (r *SubProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Exec(`DELETE FROM subprojects WHERE id = ?`, id).Error
}

// Dependents lists the sibling numbers whose schedule hangs off the given
// subproject. A non-empty result blocks deletion.
func (r *SubProjectRepository) Dependents(ctx context.Context, id uuid.UUID) ([]int, error) {
	var numbers []int
	err := r.db.WithContext(ctx).Raw(`
		SELECT number
		FROM subprojects
		WHERE related_sub_project_id = ?
		ORDER BY number
	`, id).Scan(&numbers).Error
	if err != nil {
		return nil, err
	}
	return numbers, nil
}
