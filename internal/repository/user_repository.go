package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/omranyar/portfolio-engine/internal/model"
)

const userColumns = `
	id,
	username,
	email,
	role,
	province,
	phone_number,
	first_name,
	last_name,
	is_active,
	created_at
`

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) WithTx(tx *gorm.DB) *UserRepository {
	return &UserRepository{db: tx}
}

func (r *UserRepository) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+userColumns+`
		FROM users
		WHERE id = ?
		LIMIT 1
	`, id).Scan(&user).Error
	if err != nil {
		return nil, err
	}
	if user.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

// FirstExpertForProvince picks the expert the funding pipeline routes
// requests from the given province to. Assignment order is creation order.
func (r *UserRepository) FirstExpertForProvince(ctx context.Context, province model.Province) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+prefixedUserColumns("u")+`
		FROM users u
		JOIN expert_provinces ep ON ep.expert_id = u.id
		WHERE ep.province = ? AND u.role = ? AND u.is_active
		ORDER BY u.created_at
		LIMIT 1
	`, province, model.RoleExpert).Scan(&user).Error
	if err != nil {
		return nil, err
	}
	if user.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

// FirstChiefExecutive picks the chief executive funding requests escalate to.
func (r *UserRepository) FirstChiefExecutive(ctx context.Context) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Raw(`
		SELECT `+userColumns+`
		FROM users
		WHERE role = ? AND is_active
		ORDER BY created_at
		LIMIT 1
	`, model.RoleChiefExecutive).Scan(&user).Error
	if err != nil {
		return nil, err
	}
	if user.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

// ExpertProvinces lists the provinces assigned to the expert.
func (r *UserRepository) ExpertProvinces(ctx context.Context, expertID uuid.UUID) ([]model.Province, error) {
	var provinces []model.Province
	err := r.db.WithContext(ctx).Raw(`
		SELECT province
		FROM expert_provinces
		WHERE expert_id = ?
		ORDER BY province
	`, expertID).Scan(&provinces).Error
	if err != nil {
		return nil, err
	}
	return provinces, nil
}

func prefixedUserColumns(alias string) string {
	return alias + `.id,
		` + alias + `.username,
		` + alias + `.email,
		` + alias + `.role,
		` + alias + `.province,
		` + alias + `.phone_number,
		` + alias + `.first_name,
		` + alias + `.last_name,
		` + alias + `.is_active,
		` + alias + `.created_at`
}
