package service

import (
	"github.com/shopspring/decimal"

	"github.com/omranyar/portfolio-engine/internal/model"
)

// ProjectPhysicalProgress is the weighted mean of subproject progress,
// weighted by final contract amount (imaginary cost for uncontracted
// phases). Zero total weight yields zero. Rounded to two decimals.
func ProjectPhysicalProgress(subs []model.SubProject) decimal.Decimal {
	totalWeight := decimal.Zero
	weighted := decimal.Zero
	for i := range subs {
		weight := subs[i].FinalContractAmount()
		if !weight.IsPositive() {
			continue
		}
		totalWeight = totalWeight.Add(weight)
		weighted = weighted.Add(weight.Mul(subs[i].PhysicalProgress))
	}
	if !totalWeight.IsPositive() {
		return decimal.Zero
	}
	return weighted.Div(totalWeight).Round(2)
}

// ProgramPhysicalProgress is the weighted mean of project progress, each
// project weighted by its total contract amount.
func ProgramPhysicalProgress(projects []model.Project, contractAmounts map[string]decimal.Decimal) decimal.Decimal {
	totalWeight := decimal.Zero
	weighted := decimal.Zero
	for i := range projects {
		weight := contractAmounts[projects[i].ID.String()]
		if !weight.IsPositive() {
			continue
		}
		totalWeight = totalWeight.Add(weight)
		weighted = weighted.Add(weight.Mul(projects[i].PhysicalProgress))
	}
	if !totalWeight.IsPositive() {
		return decimal.Zero
	}
	return weighted.Div(totalWeight).Round(2)
}
