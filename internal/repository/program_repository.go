package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/omranyar/portfolio-engine/internal/model"
)

const programColumns = `
	id,
	program_id,
	title,
	program_type,
	province,
	city,
	license_state,
	license_code,
	address,
	longitude,
	latitude,
	description,
	opening_date,
	overall_physical_progress,
	is_submitted,
	is_expert_approved,
	is_approved,
	created_by_id,
	created_at,
	updated_at
`

type ProgramRepository struct {
	db *gorm.DB
}

func NewProgramRepository(db *gorm.DB) *ProgramRepository {
	return &ProgramRepository{db: db}
}

// WithTx binds the repository to an open transaction.
func (r *ProgramRepository) WithTx(tx *gorm.DB) *ProgramRepository {
	return &ProgramRepository{db: tx}
}

func (r *ProgramRepository) Get(ctx context.Context, id uuid.UUID) (*model.Program, error) {
	var program model.Program
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+programColumns+`
		FROM programs
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&program).Error
	if err != nil {
		return nil, err
	}
	if program.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &program, nil
}

func (r *ProgramRepository) GetByCode(ctx context.Context, code string) (*model.Program, error) {
	var program model.Program
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+programColumns+`
		FROM programs
		WHERE program_id = ?
		LIMIT 1
	`, code).Scan(&program).Error
	if err != nil {
		return nil, err
	}
	if program.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &program, nil
}

func (r *ProgramRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM programs WHERE program_id = ?
	`, code).Scan(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ProgramRepository) List(ctx context.Context, provinces []model.Province) ([]model.Program, error) {
	query := `
		SELECT ` + programColumns + `
		FROM programs
	`
	var args []interface{}
	if len(provinces) > 0 {
		query += " WHERE province IN ?"
		args = append(args, provinces)
	}
	query += " ORDER BY created_at DESC"

	var programs []model.Program
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&programs).Error; err != nil {
		return nil, err
	}
	return programs, nil
}

func (r *ProgramRepository) Create(ctx context.Context, program *model.Program) error {
	return r.db.WithContext(ctx).Raw(`
		INSERT INTO programs (
			program_id,
			title,
			program_type,
			province,
			city,
			license_state,
			license_code,
			address,
			longitude,
			latitude,
			description,
			created_by_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING `+programColumns+`
	`,
		program.ProgramID,
		program.Title,
		program.ProgramType,
		program.Province,
		program.City,
		program.LicenseState,
		program.LicenseCode,
		program.Address,
		program.Longitude,
		program.Latitude,
		program.Description,
		program.CreatedByID,
	).Scan(program).Error
}

func (r *ProgramRepository) Update(ctx context.Context, program *model.Program) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE programs
		SET
			title = ?,
			program_type = ?,
			province = ?,
			city = ?,
			license_state = ?,
			license_code = ?,
			address = ?,
			longitude = ?,
			latitude = ?,
			description = ?,
			updated_at = NOW()
		WHERE id = ?
	`,
		program.Title,
		program.ProgramType,
		program.Province,
		program.City,
		program.LicenseState,
		program.LicenseCode,
		program.Address,
		program.Longitude,
		program.Latitude,
		program.Description,
		program.ID,
	).Error
}

// UpdateDerived writes the propagated fields only.
func (r *ProgramRepository) UpdateDerived(ctx context.Context, program *model.Program) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE programs
		SET
			opening_date = ?,
			overall_physical_progress = ?,
			updated_at = NOW()
		WHERE id = ?
	`, program.OpeningDate, program.OverallPhysicalProgress, program.ID).Error
}

func (r *ProgramRepository) UpdateReviewFlags(ctx context.Context, id uuid.UUID, submitted, expertApproved, approved bool) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE programs
		SET
			is_submitted = ?,
			is_expert_approved = ?,
			is_approved = ?,
			updated_at = NOW()
		WHERE id = ?
	`, submitted, expertApproved, approved, id).Error
}

func (r *ProgramRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Exec(`DELETE FROM programs WHERE id = ?`, id).Error
}

// CountProjects reports how many projects still reference the program.
func (r *ProgramRepository) CountProjects(ctx context.Context, id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM projects WHERE program_id = ?
	`, id).Scan(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
