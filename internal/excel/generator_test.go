package excel

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/omranyar/portfolio-engine/internal/model"
)

func TestGenerateWorkbook(t *testing.T) {
	project := model.Project{
		ID:               uuid.New(),
		ProjectID:        "123456",
		Name:             "Fars rescue base main building",
		Province:         model.ProvinceFars,
		City:             "Shiraz",
		ProjectType:      model.ProjectTypeConstruction,
		OverallStatus:    model.ProjectStatusActive,
		PhysicalProgress: decimal.NewFromInt(40),
	}
	name := "Skeleton"
	sub := model.SubProject{
		ID:               uuid.New(),
		ProjectID:        project.ID,
		Number:           1,
		Name:             &name,
		Type:             model.SubProjectTypeSkeleton,
		State:            model.SubProjectStateActive,
		PhysicalProgress: decimal.NewFromInt(40),
	}

	data, err := NewGenerator().Generate(
		[]model.Project{project},
		map[string][]model.SubProject{project.ID.String(): {sub}},
	)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer file.Close()

	sheets := file.GetSheetList()
	require.Len(t, sheets, 2)
	assert.Equal(t, "Summary", sheets[0])

	code, err := file.GetCellValue(sheets[1], "B1")
	require.NoError(t, err)
	assert.Equal(t, "123456", code)
}

func TestGenerateEmptyPortfolio(t *testing.T) {
	data, err := NewGenerator().Generate(nil, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestSheetNamesUnique(t *testing.T) {
	first := model.Project{ID: uuid.New(), ProjectID: "111111", Name: "Base"}
	second := model.Project{ID: uuid.New(), ProjectID: "111111", Name: "Base"}

	data, err := NewGenerator().Generate([]model.Project{first, second}, nil)
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer file.Close()

	sheets := file.GetSheetList()
	seen := map[string]bool{}
	for _, sheet := range sheets {
		assert.False(t, seen[sheet], "duplicate sheet %q", sheet)
		seen[sheet] = true
	}
	assert.Len(t, sheets, 3)
}
