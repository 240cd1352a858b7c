package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/omranyar/portfolio-engine/internal/model"
)

const projectColumns = `
	id,
	program_id,
	project_id,
	name,
	project_type,
	province,
	city,
	area_size,
	site_area,
	wall_length,
	notables,
	floor,
	estimated_opening_time,
	overall_status,
	physical_progress,
	cash_national,
	cash_province,
	cash_charity,
	cash_travel,
	treasury_national,
	treasury_province,
	treasury_travel,
	cached_total_debt,
	cached_required_credit_contracts,
	cached_required_credit_project,
	is_submitted,
	is_expert_approved,
	is_approved,
	created_by_id,
	created_at,
	updated_at
`

// projectRow flattens the allocation pools for scanning.
type projectRow struct {
	ID        uuid.UUID
	ProgramID *uuid.UUID
	ProjectID string

	Name        string
	ProjectType model.ProjectType
	Province    model.Province
	City        string

	AreaSize   *decimal.Decimal
	SiteArea   *decimal.Decimal
	WallLength *decimal.Decimal
	Notables   *decimal.Decimal
	Floor      *int

	EstimatedOpeningTime *time.Time
	OverallStatus        model.ProjectStatus
	PhysicalProgress     decimal.Decimal

	CashNational     decimal.Decimal
	CashProvince     decimal.Decimal
	CashCharity      decimal.Decimal
	CashTravel       decimal.Decimal
	TreasuryNational decimal.Decimal
	TreasuryProvince decimal.Decimal
	TreasuryTravel   decimal.Decimal

	CachedTotalDebt               decimal.Decimal
	CachedRequiredCreditContracts decimal.Decimal
	CachedRequiredCreditProject   decimal.Decimal

	IsSubmitted      bool
	IsExpertApproved bool
	IsApproved       bool

	CreatedByID uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (row projectRow) toModel() model.Project {
	return model.Project{
		ID:                   row.ID,
		ProgramID:            row.ProgramID,
		ProjectID:            row.ProjectID,
		Name:                 row.Name,
		ProjectType:          row.ProjectType,
		Province:             row.Province,
		City:                 row.City,
		AreaSize:             row.AreaSize,
		SiteArea:             row.SiteArea,
		WallLength:           row.WallLength,
		Notables:             row.Notables,
		Floor:                row.Floor,
		EstimatedOpeningTime: row.EstimatedOpeningTime,
		OverallStatus:        row.OverallStatus,
		PhysicalProgress:     row.PhysicalProgress,
		Allocations: model.AllocationPools{
			CashNational:     row.CashNational,
			CashProvince:     row.CashProvince,
			CashCharity:      row.CashCharity,
			CashTravel:       row.CashTravel,
			TreasuryNational: row.TreasuryNational,
			TreasuryProvince: row.TreasuryProvince,
			TreasuryTravel:   row.TreasuryTravel,
		},
		CachedTotalDebt:               row.CachedTotalDebt,
		CachedRequiredCreditContracts: row.CachedRequiredCreditContracts,
		CachedRequiredCreditProject:   row.CachedRequiredCreditProject,
		IsSubmitted:                   row.IsSubmitted,
		IsExpertApproved:              row.IsExpertApproved,
		IsApproved:                    row.IsApproved,
		CreatedByID:                   row.CreatedByID,
		CreatedAt:                     row.CreatedAt,
		UpdatedAt:                     row.UpdatedAt,
	}
}

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) WithTx(tx *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: tx}
}

func (r *ProjectRepository) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var row projectRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+projectColumns+`
		FROM projects
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	project := row.toModel()
	return &project, nil
}

// Lock loads the project row FOR UPDATE. Callers must hold an open
// transaction; cache recomputation serializes on this lock.
func (r *ProjectRepository) Lock(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var row projectRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+projectColumns+`
		FROM projects
		WHERE id = ?
		FOR UPDATE
	`, id).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	project := row.toModel()
	return &project, nil
}

func (r *ProjectRepository) GetByCode(ctx context.Context, code string) (*model.Project, error) {
	var row projectRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+projectColumns+`
		FROM projects
		WHERE project_id = ?
		LIMIT 1
	`, code).Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	project := row.toModel()
	return &project, nil
}

func (r *ProjectRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM projects WHERE project_id = ?
	`, code).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ProjectRepository) ListByProgram(ctx context.Context, programID uuid.UUID) ([]model.Project, error) {
	var rows []projectRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+projectColumns+`
		FROM projects
		WHERE program_id = ?
		ORDER BY project_id
	`, programID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	projects := make([]model.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, row.toModel())
	}
	return projects, nil
}

func (r *ProjectRepository) List(ctx context.Context, provinces []model.Province) ([]model.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
	`
	var args []interface{}
	if len(provinces) > 0 {
		query += " WHERE province IN ?"
		args = append(args, provinces)
	}
	query += " ORDER BY created_at DESC"

	var rows []projectRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	projects := make([]model.Project, 0, len(rows))
	for _, row := range rows {
		projects = append(projects, row.toModel())
	}
	return projects, nil
}

func (r *ProjectRepository) Create(ctx context.Context, project *model.Project) error {
	var row projectRow
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO projects (
			program_id,
			project_id,
			name,
			project_type,
			province,
			city,
			area_size,
			site_area,
			wall_length,
			notables,
			floor,
			estimated_opening_time,
			cash_national,
			cash_province,
			cash_charity,
			cash_travel,
			treasury_national,
			treasury_province,
			treasury_travel,
			created_by_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+projectColumns+`
	`,
		project.ProgramID,
		project.ProjectID,
		project.Name,
		project.ProjectType,
		project.Province,
		project.City,
		project.AreaSize,
		project.SiteArea,
		project.WallLength,
		project.Notables,
		project.Floor,
		project.EstimatedOpeningTime,
		project.Allocations.CashNational,
		project.Allocations.CashProvince,
		project.Allocations.CashCharity,
		project.Allocations.CashTravel,
		project.Allocations.TreasuryNational,
		project.Allocations.TreasuryProvince,
		project.Allocations.TreasuryTravel,
		project.CreatedByID,
	).Scan(&row).Error
	if err != nil {
		return err
	}
	*project = row.toModel()
	return nil
}

func (r *ProjectRepository) Update(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE projects
		SET
			program_id = ?,
			name = ?,
			project_type = ?,
			province = ?,
			city = ?,
			area_size = ?,
			site_area = ?,
			wall_length = ?,
			notables = ?,
			floor = ?,
			estimated_opening_time = ?,
			cash_national = ?,
			cash_province = ?,
			cash_charity = ?,
			cash_travel = ?,
			treasury_national = ?,
			treasury_province = ?,
			treasury_travel = ?,
			updated_at = NOW()
		WHERE id = ?
	`,
		project.ProgramID,
		project.Name,
		project.ProjectType,
		project.Province,
		project.City,
		project.AreaSize,
		project.SiteArea,
		project.WallLength,
		project.Notables,
		project.Floor,
		project.EstimatedOpeningTime,
		project.Allocations.CashNational,
		project.Allocations.CashProvince,
		project.Allocations.CashCharity,
		project.Allocations.CashTravel,
		project.Allocations.TreasuryNational,
		project.Allocations.TreasuryProvince,
		project.Allocations.TreasuryTravel,
		project.ID,
	).Error
}

// UpdateDerived writes the propagated status, progress and caches.
func (r *ProjectRepository) UpdateDerived(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE projects
		SET
			overall_status = ?,
			physical_progress = ?,
			cached_total_debt = ?,
			cached_required_credit_contracts = ?,
			cached_required_credit_project = ?,
			updated_at = NOW()
		WHERE id = ?
	`,
		project.OverallStatus,
		project.PhysicalProgress,
		project.CachedTotalDebt,
		project.CachedRequiredCreditContracts,
		project.CachedRequiredCreditProject,
		project.ID,
	).Error
}

func (r *ProjectRepository) UpdateReviewFlags(ctx context.Context, id uuid.UUID, submitted, expertApproved, approved bool) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE projects
		SET
			is_submitted = ?,
			is_expert_approved = ?,
			is_approved = ?,
			updated_at = NOW()
		WHERE id = ?
	`, submitted, expertApproved, approved, id).Error
}

func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Exec(`DELETE FROM projects WHERE id = ?`, id).Error
}

// CountSubProjects reports how many subprojects still reference the project.
func (r *ProjectRepository) CountSubProjects(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM subprojects WHERE project_id = ?
	`, id).Scan(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
