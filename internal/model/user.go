package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin              Role = "ADMIN"
	RoleCEO                Role = "CEO"
	RoleChiefExecutive     Role = "CHIEF_EXECUTIVE"
	RoleViceChiefExecutive Role = "VICE_CHIEF_EXECUTIVE"
	RoleExpert             Role = "EXPERT"
	RoleProvinceManager    Role = "PROVINCE_MANAGER"
)

type User struct {
	ID          uuid.UUID
	Username    string
	Email       string
	Role        Role
	Province    *Province
	PhoneNumber *string
	FirstName   *string
	LastName    *string
	IsActive    bool
	CreatedAt   time.Time
}

// ExpertProvince assigns an expert reviewer to a province. The funding
// pipeline picks the first assignment matching the project's province.
type ExpertProvince struct {
	ID       uuid.UUID
	ExpertID uuid.UUID
	Province Province
}

// Principal is the authenticated caller as carried by the access token.
type Principal struct {
	UserID    uuid.UUID
	Username  string
	Role      Role
	Provinces []Province
}

func (p Principal) IsAdmin() bool              { return p.Role == RoleAdmin }
func (p Principal) IsCEO() bool                { return p.Role == RoleCEO }
func (p Principal) IsChiefExecutive() bool     { return p.Role == RoleChiefExecutive }
func (p Principal) IsViceChiefExecutive() bool { return p.Role == RoleViceChiefExecutive }
func (p Principal) IsExpert() bool             { return p.Role == RoleExpert }
func (p Principal) IsProvinceManager() bool    { return p.Role == RoleProvinceManager }

// HasProvince reports whether the principal is assigned to the given
// province. Admin, CEO and chief executive cover every province.
func (p Principal) HasProvince(province Province) bool {
	if p.IsAdmin() || p.IsCEO() || p.IsChiefExecutive() {
		return true
	}
	for _, assigned := range p.Provinces {
		if assigned == province {
			return true
		}
	}
	return false
}

// CanModify is the authorization predicate for entity mutations: owners,
// admins, vice chiefs, and experts assigned to the entity's province.
func (p Principal) CanModify(ownerID uuid.UUID, province Province) bool {
	if p.IsAdmin() || p.IsViceChiefExecutive() {
		return true
	}
	if p.UserID == ownerID {
		return true
	}
	if p.IsExpert() && p.HasProvince(province) {
		return true
	}
	return false
}
