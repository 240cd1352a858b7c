package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxAdjustmentPercent caps the contractual adjustment coefficient.
var MaxAdjustmentPercent = decimal.NewFromInt(25)

// SubProject is one construction phase of a project. The contract block
// (start, end, amount, type, execution method) is all-or-nothing: the engine
// treats the row as contracted only when every field is present.
type SubProject struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	Number    int // unique within the project, in [1, MaxSubProjects]

	Name             *string
	Type             SubProjectType
	State            SubProjectState
	PhysicalProgress decimal.Decimal // [0,100]
	RemainingWork    *string
	Description      *string

	SupportingCharity bool

	// Dependency block.
	RelatedSubProjectID *uuid.UUID
	RelationshipType    *RelationshipType
	RelationshipDelay   *int // days, may be negative

	// Non-contract block, mutually exclusive with the contract block.
	ImaginaryDuration     *int // days
	ImaginaryCost         *decimal.Decimal
	CostCalculationMethod *string

	// Adjustment block. The coefficient is a percent in [0, 25] and is
	// meaningful only while HasAdjustment is set.
	HasAdjustment             bool
	AdjustmentCoefficient     decimal.Decimal
	PredictedAdjustmentAmount decimal.Decimal

	// Contract block.
	ContractStartDate *time.Time
	ContractEndDate   *time.Time
	ContractAmount    *decimal.Decimal
	ContractType      *ContractType
	ExecutionMethod   *ExecutionMethod
	ContractorName    *string
	ContractorID      *string

	// Computed schedule.
	StartDate *time.Time
	EndDate   *time.Time

	// Denormalized sums over child payments and adjustment reports.
	TotalPayments         decimal.Decimal
	TotalAdjustmentAmount decimal.Decimal
	Debt                  decimal.Decimal

	IsSubmitted      bool
	IsExpertApproved bool
	IsApproved       bool

	CreatedByID uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasContract reports whether the contract block is fully present.
func (s *SubProject) HasContract() bool {
	return s.ContractStartDate != nil &&
		s.ContractEndDate != nil &&
		s.ContractAmount != nil && s.ContractAmount.IsPositive() &&
		s.ContractType != nil && *s.ContractType != ContractTypeNone &&
		s.ExecutionMethod != nil
}

// EffectiveAdjustmentPercent is the adjustment coefficient when adjustment
// is enabled, zero otherwise.
func (s *SubProject) EffectiveAdjustmentPercent() decimal.Decimal {
	if !s.HasAdjustment {
		return decimal.Zero
	}
	return s.AdjustmentCoefficient
}

// FinalContractAmount is contract_amount scaled by the adjustment percent
// for contracted subprojects, and the imaginary cost otherwise.
func (s *SubProject) FinalContractAmount() decimal.Decimal {
	if !s.HasContract() {
		if s.ImaginaryCost != nil {
			return *s.ImaginaryCost
		}
		return decimal.Zero
	}
	hundred := decimal.NewFromInt(100)
	factor := hundred.Add(s.EffectiveAdjustmentPercent()).Div(hundred)
	return s.ContractAmount.Mul(factor)
}
