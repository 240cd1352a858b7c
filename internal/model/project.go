package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxSubProjects caps the number of subproject slots per project.
const MaxSubProjects = 10

// AllocationPools holds the seven named credit pools of a project, each a
// non-negative whole-rial amount.
type AllocationPools struct {
	CashNational     decimal.Decimal
	CashProvince     decimal.Decimal
	CashCharity      decimal.Decimal
	CashTravel       decimal.Decimal
	TreasuryNational decimal.Decimal
	TreasuryProvince decimal.Decimal
	TreasuryTravel   decimal.Decimal
}

func (a AllocationPools) TotalCash() decimal.Decimal {
	return a.CashNational.Add(a.CashProvince).Add(a.CashCharity).Add(a.CashTravel)
}

func (a AllocationPools) TotalTreasury() decimal.Decimal {
	return a.TreasuryNational.Add(a.TreasuryProvince).Add(a.TreasuryTravel)
}

type Project struct {
	ID        uuid.UUID
	ProgramID *uuid.UUID // nullable only for legacy rows predating programs
	ProjectID string     // unique 6-digit business code

	Name        string
	ProjectType ProjectType
	Province    Province // mirrored from the owning program on save
	City        string   // mirrored from the owning program on save

	AreaSize   *decimal.Decimal
	SiteArea   *decimal.Decimal
	WallLength *decimal.Decimal
	Notables   *decimal.Decimal
	Floor      *int

	EstimatedOpeningTime *time.Time
	OverallStatus        ProjectStatus
	PhysicalProgress     decimal.Decimal // [0,100], two decimals

	Allocations AllocationPools

	// Denormalized for reporting throughput; always equal to the pure
	// recomputation after a successful mutation.
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

// ProjectStatusOf derives the overall status from child states:
// active beats funded beats inactive.
func ProjectStatusOf(subprojects []SubProject) ProjectStatus {
	hasFunded := false
	for i := range subprojects {
		switch subprojects[i].State {
		case SubProjectStateActive:
			return ProjectStatusActive
		case SubProjectStateFunded:
			hasFunded = true
		}
	}
	if hasFunded {
		return ProjectStatusFunded
	}
	return ProjectStatusInactive
}

// NextSubProjectNumber returns the lowest free slot in [1, MaxSubProjects],
// or 0 when every slot is taken.
func NextSubProjectNumber(existing []SubProject) int {
	taken := make(map[int]bool, len(existing))
	for i := range existing {
		taken[existing[i].Number] = true
	}
	for n := 1; n <= MaxSubProjects; n++ {
		if !taken[n] {
			return n
		}
	}
	return 0
}
