package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestFundingTransitions(t *testing.T) {
	legal := []struct {
		from, to FundingStatus
	}{
		{FundingDraft, FundingSentToExpert},
		{FundingSentToExpert, FundingExpertApproved},
		{FundingSentToExpert, FundingExpertRejected},
		{FundingExpertRejected, FundingSentToExpert},
		{FundingExpertApproved, FundingSentToChief},
		{FundingSentToChief, FundingApproved},
		{FundingSentToChief, FundingChiefRejected},
		{FundingChiefRejected, FundingSentToChief},
		{FundingApproved, FundingArchived},
	}
	for _, tc := range legal {
		assert.True(t, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}

	illegal := []struct {
		from, to FundingStatus
	}{
		{FundingDraft, FundingApproved},
		{FundingDraft, FundingExpertApproved},
		{FundingSentToExpert, FundingApproved},
		{FundingExpertRejected, FundingExpertApproved},
		{FundingExpertApproved, FundingApproved},
		{FundingChiefRejected, FundingDraft},
		{FundingApproved, FundingDraft},
		{FundingArchived, FundingDraft},
		{FundingArchived, FundingApproved},
	}
	for _, tc := range illegal {
		assert.False(t, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestFundingPriorityValid(t *testing.T) {
	assert.True(t, PriorityVeryHigh.Valid())
	assert.True(t, PriorityLow.Valid())
	assert.False(t, FundingPriority("urgent").Valid())
}

func TestResolveFinalAmountPrecedence(t *testing.T) {
	province := dec(100)
	headquarters := dec(200)
	settled := dec(300)
	explicit := dec(400)

	request := FundingRequest{ProvinceSuggestedAmount: province}
	assert.True(t, request.ResolveFinalAmount(nil).Equal(province))

	request.HeadquartersSuggestedAmount = &headquarters
	assert.True(t, request.ResolveFinalAmount(nil).Equal(headquarters))

	request.FinalAmount = &settled
	assert.True(t, request.ResolveFinalAmount(nil).Equal(settled))

	assert.True(t, request.ResolveFinalAmount(&explicit).Equal(explicit))
}
