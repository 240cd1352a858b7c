package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/omranyar/portfolio-engine/internal/model"
)

func TestProjectPhysicalProgressWeightedMean(t *testing.T) {
	a := contractedSubProject(1000)
	a.PhysicalProgress = d(50)
	b := contractedSubProject(3000)
	b.PhysicalProgress = d(90)

	// (1000*50 + 3000*90) / 4000 = 80
	got := ProjectPhysicalProgress([]model.SubProject{a, b})
	assert.True(t, got.Equal(d(80)), "got %s", got)
}

func TestProjectPhysicalProgressUsesImaginaryCostWeight(t *testing.T) {
	contracted := contractedSubProject(1000)
	contracted.PhysicalProgress = d(100)

	imaginaryCost := d(1000)
	uncontracted := model.SubProject{
		ID:               uuid.New(),
		ImaginaryCost:    &imaginaryCost,
		PhysicalProgress: d(0),
	}

	got := ProjectPhysicalProgress([]model.SubProject{contracted, uncontracted})
	assert.True(t, got.Equal(d(50)), "got %s", got)
}

func TestProjectPhysicalProgressZeroWeight(t *testing.T) {
	bare := model.SubProject{ID: uuid.New(), PhysicalProgress: d(70)}
	assert.True(t, ProjectPhysicalProgress([]model.SubProject{bare}).IsZero())
	assert.True(t, ProjectPhysicalProgress(nil).IsZero())
}

func TestProjectPhysicalProgressRounded(t *testing.T) {
	a := contractedSubProject(1)
	a.PhysicalProgress = d(0)
	b := contractedSubProject(2)
	b.PhysicalProgress = d(100)

	// 200/3 = 66.67 after rounding
	got := ProjectPhysicalProgress([]model.SubProject{a, b})
	assert.Equal(t, "66.67", got.String())
}

func TestProgramPhysicalProgress(t *testing.T) {
	first := model.Project{ID: uuid.New(), PhysicalProgress: d(40)}
	second := model.Project{ID: uuid.New(), PhysicalProgress: d(80)}
	third := model.Project{ID: uuid.New(), PhysicalProgress: d(100)}

	weights := map[string]decimal.Decimal{
		first.ID.String():  d(1000),
		second.ID.String(): d(1000),
		// third has no contracted work and carries no weight
	}

	got := ProgramPhysicalProgress([]model.Project{first, second, third}, weights)
	assert.True(t, got.Equal(d(60)), "got %s", got)
}

func TestProgramPhysicalProgressNoWeights(t *testing.T) {
	projects := []model.Project{{ID: uuid.New(), PhysicalProgress: d(55)}}
	assert.True(t, ProgramPhysicalProgress(projects, map[string]decimal.Decimal{}).IsZero())
}
