package pdf

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omranyar/portfolio-engine/internal/model"
)

func TestGenerateMemo(t *testing.T) {
	final := decimal.NewFromInt(5000000000)
	approvedAt := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)
	request := model.FundingRequest{
		ID:                      uuid.New(),
		ProjectID:               uuid.New(),
		ProvinceSuggestedAmount: decimal.NewFromInt(4000000000),
		FinalAmount:             &final,
		Priority:                model.PriorityHigh,
		ProvinceDescription:     "Foundation work stalled for lack of credit.",
		Status:                  model.FundingApproved,
		CreatedAt:               time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		ApprovedAt:              &approvedAt,
	}
	project := model.Project{
		ID:            request.ProjectID,
		ProjectID:     "654321",
		Name:          "Yazd mountain rescue base",
		Province:      model.ProvinceYazd,
		City:          "Yazd",
		OverallStatus: model.ProjectStatusActive,
	}

	data, err := NewGenerator().Generate(request, project)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestGenerateMemoUnsettledRequest(t *testing.T) {
	request := model.FundingRequest{
		ID:                      uuid.New(),
		ProjectID:               uuid.New(),
		ProvinceSuggestedAmount: decimal.NewFromInt(1000),
		Priority:                model.PriorityMedium,
		Status:                  model.FundingDraft,
		CreatedAt:               time.Now(),
	}
	project := model.Project{ID: request.ProjectID, ProjectID: "222222"}

	data, err := NewGenerator().Generate(request, project)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
