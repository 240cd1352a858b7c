package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type FundingPriority string

const (
	PriorityVeryHigh FundingPriority = "very_high"
	PriorityHigh     FundingPriority = "high"
	PriorityMedium   FundingPriority = "medium"
	PriorityLow      FundingPriority = "low"
	PriorityVeryLow  FundingPriority = "very_low"
)

var FundingPriorities = []FundingPriority{
	PriorityVeryHigh, PriorityHigh, PriorityMedium, PriorityLow, PriorityVeryLow,
}

func (p FundingPriority) Valid() bool {
	for _, known := range FundingPriorities {
		if p == known {
			return true
		}
	}
	return false
}

type FundingStatus string

const (
	FundingDraft          FundingStatus = "draft"
	FundingSentToExpert   FundingStatus = "sent_to_expert"
	FundingExpertRejected FundingStatus = "expert_rejected"
	FundingExpertApproved FundingStatus = "expert_approved"
	FundingSentToChief    FundingStatus = "sent_to_chief"
	FundingChiefRejected  FundingStatus = "chief_rejected"
	FundingApproved       FundingStatus = "approved"
	FundingArchived       FundingStatus = "archived"
)

// fundingTransitions is the legal edge set of the request state machine.
// Archived is terminal.
var fundingTransitions = map[FundingStatus][]FundingStatus{
	FundingDraft:          {FundingSentToExpert},
	FundingSentToExpert:   {FundingExpertApproved, FundingExpertRejected},
	FundingExpertRejected: {FundingSentToExpert},
	FundingExpertApproved: {FundingSentToChief},
	FundingSentToChief:    {FundingApproved, FundingChiefRejected},
	FundingChiefRejected:  {FundingSentToChief},
	FundingApproved:       {FundingArchived},
	FundingArchived:       {},
}

func (s FundingStatus) CanTransitionTo(next FundingStatus) bool {
	for _, allowed := range fundingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// FundingRequest routes a credit request from a province manager through an
// expert reviewer to a chief executive.
type FundingRequest struct {
	ID        uuid.UUID
	ProjectID uuid.UUID

	CreatedByID uuid.UUID
	ExpertID    *uuid.UUID
	ChiefID     *uuid.UUID

	ProvinceSuggestedAmount     decimal.Decimal
	HeadquartersSuggestedAmount *decimal.Decimal
	FinalAmount                 *decimal.Decimal

	Priority            FundingPriority
	ProvinceDescription string
	ExpertDescription   string

	ExpertRejectionReason string
	ChiefRejectionReason  string

	Status FundingStatus

	CreatedAt   time.Time
	UpdatedAt   time.Time
	SubmittedAt *time.Time
	ApprovedAt  *time.Time
	ArchivedAt  *time.Time
}

// ResolveFinalAmount returns the amount a chief approval settles on when no
// explicit figure is given: headquarters suggestion first, then the
// province suggestion.
func (r *FundingRequest) ResolveFinalAmount(explicit *decimal.Decimal) decimal.Decimal {
	if explicit != nil {
		return *explicit
	}
	if r.FinalAmount != nil {
		return *r.FinalAmount
	}
	if r.HeadquartersSuggestedAmount != nil {
		return *r.HeadquartersSuggestedAmount
	}
	return r.ProvinceSuggestedAmount
}
