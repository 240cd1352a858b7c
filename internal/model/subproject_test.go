package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func fullContract() SubProject {
	start := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	amount := decimal.NewFromInt(1000)
	contractType := ContractTypeUnitPrice
	method := ExecutionPublicTenderThreeParty
	return SubProject{
		Number:            1,
		Type:              SubProjectTypeFoundation,
		State:             SubProjectStateActive,
		ContractStartDate: &start,
		ContractEndDate:   &end,
		ContractAmount:    &amount,
		ContractType:      &contractType,
		ExecutionMethod:   &method,
	}
}

func TestHasContractAllOrNothing(t *testing.T) {
	sub := fullContract()
	assert.True(t, sub.HasContract())

	missing := fullContract()
	missing.ContractStartDate = nil
	assert.False(t, missing.HasContract())

	missing = fullContract()
	missing.ContractEndDate = nil
	assert.False(t, missing.HasContract())

	missing = fullContract()
	missing.ContractAmount = nil
	assert.False(t, missing.HasContract())

	missing = fullContract()
	zero := decimal.Zero
	missing.ContractAmount = &zero
	assert.False(t, missing.HasContract())

	missing = fullContract()
	none := ContractTypeNone
	missing.ContractType = &none
	assert.False(t, missing.HasContract())

	missing = fullContract()
	missing.ExecutionMethod = nil
	assert.False(t, missing.HasContract())
}

func TestEffectiveAdjustmentPercent(t *testing.T) {
	sub := fullContract()
	sub.AdjustmentCoefficient = decimal.NewFromInt(15)
	assert.True(t, sub.EffectiveAdjustmentPercent().IsZero(), "disabled adjustment contributes nothing")

	sub.HasAdjustment = true
	assert.True(t, sub.EffectiveAdjustmentPercent().Equal(decimal.NewFromInt(15)))
}

func TestFinalContractAmount(t *testing.T) {
	sub := fullContract()
	assert.True(t, sub.FinalContractAmount().Equal(decimal.NewFromInt(1000)))

	sub.HasAdjustment = true
	sub.AdjustmentCoefficient = decimal.NewFromInt(25)
	assert.True(t, sub.FinalContractAmount().Equal(decimal.NewFromInt(1250)))
}

func TestFinalContractAmountUncontracted(t *testing.T) {
	cost := decimal.NewFromInt(700)
	sub := SubProject{ImaginaryCost: &cost}
	assert.True(t, sub.FinalContractAmount().Equal(cost))

	bare := SubProject{}
	assert.True(t, bare.FinalContractAmount().IsZero())
}
