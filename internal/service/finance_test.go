package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omranyar/portfolio-engine/internal/model"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func contractedSubProject(amount int64) model.SubProject {
	start := time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 6, 0)
	contractAmount := d(amount)
	contractType := model.ContractTypeLumpSum
	method := model.ExecutionPublicTenderProvincial
	return model.SubProject{
		ID:                uuid.New(),
		ProjectID:         uuid.New(),
		Number:            1,
		Type:              model.SubProjectTypeSkeleton,
		State:             model.SubProjectStateActive,
		ContractStartDate: &start,
		ContractEndDate:   &end,
		ContractAmount:    &contractAmount,
		ContractType:      &contractType,
		ExecutionMethod:   &method,
	}
}

func doc(docType model.DocumentType, number int, approved int64) model.FinancialDocument {
	return model.FinancialDocument{
		ID:             uuid.New(),
		DocumentType:   docType,
		DocumentNumber: number,
		ApprovedAmount: d(approved),
	}
}

func TestCollectSubProjectFinance(t *testing.T) {
	docs := []model.FinancialDocument{
		doc(model.DocumentTypeAdvancePayment, 1, 100),
		doc(model.DocumentTypeAdvancePayment, 2, 50),
		doc(model.DocumentTypeTemporaryReport, 1, 200),
		doc(model.DocumentTypeTemporaryReport, 3, 400),
		doc(model.DocumentTypeTemporaryReport, 2, 300),
		doc(model.DocumentTypeAdjustmentReport, 1, 30),
	}
	payments := []model.Payment{
		{Amount: d(120)},
		{Amount: d(80)},
	}

	f := CollectSubProjectFinance(docs, payments)
	assert.True(t, f.TotalAdvancePayments.Equal(d(150)))
	assert.True(t, f.SituationReportAmount.Equal(d(400)), "highest-numbered temporary report wins")
	assert.True(t, f.TotalAdjustmentReports.Equal(d(30)))
	assert.True(t, f.TotalPaymentAmount.Equal(d(200)))
}

func TestCollectSubProjectFinancePermanentBeatsTemporary(t *testing.T) {
	docs := []model.FinancialDocument{
		doc(model.DocumentTypeTemporaryReport, 9, 900),
		doc(model.DocumentTypePermanentReport, 1, 500),
		doc(model.DocumentTypePermanentReport, 2, 700),
	}
	f := CollectSubProjectFinance(docs, nil)
	assert.True(t, f.SituationReportAmount.Equal(d(700)))
}

func TestCollectSubProjectFinanceEmpty(t *testing.T) {
	f := CollectSubProjectFinance(nil, nil)
	assert.True(t, f.TotalAdvancePayments.IsZero())
	assert.True(t, f.SituationReportAmount.IsZero())
	assert.True(t, f.TotalAdjustmentReports.IsZero())
	assert.True(t, f.TotalPaymentAmount.IsZero())
}

func TestSubProjectDebt(t *testing.T) {
	sub := contractedSubProject(1000)
	f := SubProjectFinance{
		TotalAdvancePayments:   d(100),
		SituationReportAmount:  d(400),
		TotalAdjustmentReports: d(50),
		TotalPaymentAmount:     d(300),
	}
	assert.True(t, SubProjectDebt(&sub, f).Equal(d(250)))
}

func TestSubProjectDebtFlooredAtZero(t *testing.T) {
	sub := contractedSubProject(1000)
	f := SubProjectFinance{
		SituationReportAmount: d(100),
		TotalPaymentAmount:    d(500),
	}
	assert.True(t, SubProjectDebt(&sub, f).IsZero())
}

func TestSubProjectDebtUncontracted(t *testing.T) {
	sub := model.SubProject{ID: uuid.New()}
	f := SubProjectFinance{SituationReportAmount: d(100)}
	assert.True(t, SubProjectDebt(&sub, f).IsZero())
}

func TestFinancialProgressAmount(t *testing.T) {
	f := SubProjectFinance{TotalPaymentAmount: d(500), TotalAdjustmentReports: d(120)}
	assert.True(t, FinancialProgressAmount(f).Equal(d(380)))

	f = SubProjectFinance{TotalPaymentAmount: d(50), TotalAdjustmentReports: d(120)}
	assert.True(t, FinancialProgressAmount(f).IsZero())
}

func TestFinancialProgressPercentage(t *testing.T) {
	sub := contractedSubProject(1000)
	f := SubProjectFinance{TotalPaymentAmount: d(250)}
	assert.Equal(t, "25", FinancialProgressPercentage(&sub, f).String())
}

func TestFinancialProgressPercentageClamped(t *testing.T) {
	sub := contractedSubProject(100)
	f := SubProjectFinance{TotalPaymentAmount: d(250)}
	assert.True(t, FinancialProgressPercentage(&sub, f).Equal(d(100)))
}

func TestFinancialProgressPercentageUncontracted(t *testing.T) {
	sub := model.SubProject{}
	f := SubProjectFinance{TotalPaymentAmount: d(250)}
	assert.True(t, FinancialProgressPercentage(&sub, f).IsZero())
}

func TestRequiredCreditForContractCompletion(t *testing.T) {
	sub := contractedSubProject(1000)
	sub.PredictedAdjustmentAmount = d(80)
	f := SubProjectFinance{
		TotalAdjustmentReports: d(20),
		TotalPaymentAmount:     d(400),
	}
	assert.True(t, RequiredCreditForContractCompletion(&sub, f).Equal(d(700)))
}

func TestRequiredCreditMayBeNegative(t *testing.T) {
	sub := contractedSubProject(100)
	f := SubProjectFinance{TotalPaymentAmount: d(500)}
	required := RequiredCreditForContractCompletion(&sub, f)
	assert.True(t, required.Equal(d(-400)))
}

func TestComputeProjectCaches(t *testing.T) {
	contracted := contractedSubProject(1000)
	imaginaryCost := d(300)
	uncontracted := model.SubProject{ID: uuid.New(), ImaginaryCost: &imaginaryCost}
	bare := model.SubProject{ID: uuid.New()}

	finance := map[string]SubProjectFinance{
		contracted.ID.String(): {
			SituationReportAmount: d(400),
			TotalPaymentAmount:    d(250),
		},
	}

	caches := ComputeProjectCaches([]model.SubProject{contracted, uncontracted, bare}, finance)
	assert.True(t, caches.TotalDebt.Equal(d(150)))
	assert.True(t, caches.RequiredCreditContracts.Equal(d(750)))
	assert.True(t, caches.RequiredCreditProject.Equal(d(1050)), "project credit adds imaginary costs")
}

func TestLatestSituationReportAmount(t *testing.T) {
	reports := []model.SituationReport{
		{ReportNumber: 1, PaymentAmount: d(100)},
		{ReportNumber: 3, PaymentAmount: d(300)},
		{ReportNumber: 2, PaymentAmount: d(200)},
	}
	assert.True(t, LatestSituationReportAmount(reports).Equal(d(300)))
	assert.True(t, LatestSituationReportAmount(nil).IsZero())
}

func TestProjectTotalContractAmount(t *testing.T) {
	a := contractedSubProject(1000)
	b := contractedSubProject(500)
	b.HasAdjustment = true
	b.AdjustmentCoefficient = d(10)
	imaginaryCost := d(999)
	c := model.SubProject{ID: uuid.New(), ImaginaryCost: &imaginaryCost}

	total := ProjectTotalContractAmount([]model.SubProject{a, b, c})
	require.True(t, total.Equal(d(1550)), "got %s", total)
}
