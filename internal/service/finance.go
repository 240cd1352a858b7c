package service

import (
	"github.com/shopspring/decimal"

	"github.com/omranyar/portfolio-engine/internal/model"
)

var hundred = decimal.NewFromInt(100)

// SubProjectFinance aggregates a subproject's financial children into the
// four base amounts every derived quantity is built from.
type SubProjectFinance struct {
	TotalAdvancePayments   decimal.Decimal
	SituationReportAmount  decimal.Decimal
	TotalAdjustmentReports decimal.Decimal
	TotalPaymentAmount     decimal.Decimal
}

// CollectSubProjectFinance folds the subproject's financial documents and
// payments into a SubProjectFinance. The situation-report amount is the
// approved amount of the highest-numbered permanent report, falling back to
// the highest-numbered temporary report.
func CollectSubProjectFinance(docs []model.FinancialDocument, payments []model.Payment) SubProjectFinance {
	var f SubProjectFinance

	var bestPermanent, bestTemporary *model.FinancialDocument
	for i := range docs {
		doc := &docs[i]
		switch doc.DocumentType {
		case model.DocumentTypeAdvancePayment:
			f.TotalAdvancePayments = f.TotalAdvancePayments.Add(doc.ApprovedAmount)
		case model.DocumentTypeAdjustmentReport:
			f.TotalAdjustmentReports = f.TotalAdjustmentReports.Add(doc.ApprovedAmount)
		case model.DocumentTypePermanentReport:
			if bestPermanent == nil || doc.DocumentNumber > bestPermanent.DocumentNumber {
				bestPermanent = doc
			}
		case model.DocumentTypeTemporaryReport:
			if bestTemporary == nil || doc.DocumentNumber > bestTemporary.DocumentNumber {
				bestTemporary = doc
			}
		}
	}
	switch {
	case bestPermanent != nil:
		f.SituationReportAmount = bestPermanent.ApprovedAmount
	case bestTemporary != nil:
		f.SituationReportAmount = bestTemporary.ApprovedAmount
	}

	for i := range payments {
		f.TotalPaymentAmount = f.TotalPaymentAmount.Add(payments[i].Amount)
	}
	return f
}

// SubProjectDebt is what is owed to the contractor: approvals minus
// payments, floored at zero. Uncontracted subprojects carry no debt.
func SubProjectDebt(sub *model.SubProject, f SubProjectFinance) decimal.Decimal {
	if !sub.HasContract() {
		return decimal.Zero
	}
	debt := f.TotalAdvancePayments.
		Add(f.SituationReportAmount).
		Add(f.TotalAdjustmentReports).
		Sub(f.TotalPaymentAmount)
	if debt.IsNegative() {
		return decimal.Zero
	}
	return debt
}

// FinancialProgressAmount is payments net of adjustment reports, floored at
// zero.
func FinancialProgressAmount(f SubProjectFinance) decimal.Decimal {
	amount := f.TotalPaymentAmount.Sub(f.TotalAdjustmentReports)
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}

// FinancialProgressPercentage is the progress amount over the final
// contract amount, clamped to [0,100] and rounded to two decimals.
// Uncontracted subprojects report zero.
func FinancialProgressPercentage(sub *model.SubProject, f SubProjectFinance) decimal.Decimal {
	if !sub.HasContract() {
		return decimal.Zero
	}
	final := sub.FinalContractAmount()
	if !final.IsPositive() {
		return decimal.Zero
	}
	pct := FinancialProgressAmount(f).Mul(hundred).Div(final).Round(2)
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}

// RequiredCreditForContractCompletion may be negative when the contractor
// has been overpaid; the sign is preserved for reporting.
func RequiredCreditForContractCompletion(sub *model.SubProject, f SubProjectFinance) decimal.Decimal {
	return sub.FinalContractAmount().
		Add(f.TotalAdjustmentReports).
		Add(sub.PredictedAdjustmentAmount).
		Sub(f.TotalPaymentAmount)
}

// ProjectCaches carries the three denormalized amounts stored on the
// project row.
type ProjectCaches struct {
	TotalDebt               decimal.Decimal
	RequiredCreditContracts decimal.Decimal
	RequiredCreditProject   decimal.Decimal
}

// ComputeProjectCaches rebuilds the project caches from its subprojects and
// their finances. Subprojects missing from the finance map contribute their
// denormalized counters only through imaginary cost.
func ComputeProjectCaches(subs []model.SubProject, finance map[string]SubProjectFinance) ProjectCaches {
	var caches ProjectCaches
	for i := range subs {
		sub := &subs[i]
		f := finance[sub.ID.String()]

		caches.TotalDebt = caches.TotalDebt.Add(SubProjectDebt(sub, f))

		if sub.HasContract() {
			required := RequiredCreditForContractCompletion(sub, f)
			caches.RequiredCreditContracts = caches.RequiredCreditContracts.Add(required)
			caches.RequiredCreditProject = caches.RequiredCreditProject.Add(required)
		} else if sub.ImaginaryCost != nil {
			caches.RequiredCreditProject = caches.RequiredCreditProject.Add(*sub.ImaginaryCost)
		}
	}
	return caches
}

// LatestSituationReportAmount is the payment amount of the
// highest-numbered legacy situation report, zero when there is none.
func LatestSituationReportAmount(reports []model.SituationReport) decimal.Decimal {
	var latest *model.SituationReport
	for i := range reports {
		if latest == nil || reports[i].ReportNumber > latest.ReportNumber {
			latest = &reports[i]
		}
	}
	if latest == nil {
		return decimal.Zero
	}
	return latest.PaymentAmount
}

// LatestPaymentViews carries the project-level "latest payment" total
// computed from both candidate sources. The legacy situation-report table
// and the financial-document table disagree on which is authoritative, so
// both are reported.
type LatestPaymentViews struct {
	FromDocuments        decimal.Decimal
	FromSituationReports decimal.Decimal
}

// ProjectTotalContractAmount sums final contract amounts over contracted
// subprojects; it weighs the program-level progress mean.
func ProjectTotalContractAmount(subs []model.SubProject) decimal.Decimal {
	total := decimal.Zero
	for i := range subs {
		if subs[i].HasContract() {
			total = total.Add(subs[i].FinalContractAmount())
		}
	}
	return total
}
