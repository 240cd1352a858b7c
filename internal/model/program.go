package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Program is the top of the Program -> Project -> SubProject hierarchy.
// OpeningDate and OverallPhysicalProgress are derived; the propagation
// pipeline keeps them in step with child projects.
type Program struct {
	ID          uuid.UUID
	ProgramID   string // unique 6-digit business code
	Title       string
	ProgramType ProgramType
	Province    Province
	City        string

	LicenseState LicenseState
	LicenseCode  string

	Address     *string
	Longitude   *decimal.Decimal
	Latitude    *decimal.Decimal
	Description *string

	OpeningDate             *time.Time
	OverallPhysicalProgress decimal.Decimal

	IsSubmitted      bool
	IsExpertApproved bool
	IsApproved       bool

	CreatedByID uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProgramOpeningDate is the maximum estimated_opening_time over child
// projects, or nil when no child carries one.
func ProgramOpeningDate(projects []Project) *time.Time {
	var latest *time.Time
	for i := range projects {
		candidate := projects[i].EstimatedOpeningTime
		if candidate == nil {
			continue
		}
		if latest == nil || candidate.After(*latest) {
			value := *candidate
			latest = &value
		}
	}
	return latest
}
