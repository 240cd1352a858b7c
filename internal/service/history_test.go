package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omranyar/portfolio-engine/internal/model"
)

func TestDiffProgramNoChanges(t *testing.T) {
	old := model.Program{Title: "Fars rescue base", ProgramType: model.ProgramTypeRoadRescueBase}
	updated := old
	assert.Empty(t, DiffProgram(&old, &updated))
}

func TestDiffProgramTracksFields(t *testing.T) {
	old := model.Program{
		Title:        "Fars rescue base",
		ProgramType:  model.ProgramTypeRoadRescueBase,
		LicenseState: model.LicenseStateNotHeld,
	}
	updated := old
	updated.Title = "Fars road rescue base"
	updated.LicenseState = model.LicenseStateHeld
	updated.IsSubmitted = true

	diffs := DiffProgram(&old, &updated)
	require.Len(t, diffs, 3)

	byField := map[string]FieldDiff{}
	for _, diff := range diffs {
		byField[diff.Field] = diff
	}
	assert.Equal(t, "Fars rescue base", byField["title"].Old)
	assert.Equal(t, "Fars road rescue base", byField["title"].New)
	assert.Equal(t, string(model.LicenseStateHeld), byField["license_state"].New)
	assert.Equal(t, "true", byField["is_submitted"].New)
}

func TestDiffProjectTracksProgram(t *testing.T) {
	old := model.Project{Name: "Main building", PhysicalProgress: d(10)}
	updated := old
	updated.PhysicalProgress = d(25)

	diffs := DiffProject(&old, &updated)
	require.Len(t, diffs, 1)
	assert.Equal(t, "physical_progress", diffs[0].Field)
	assert.Equal(t, "10", diffs[0].Old)
	assert.Equal(t, "25", diffs[0].New)
}

func TestDiffSubProjectContractFields(t *testing.T) {
	old := contractedSubProject(1000)
	updated := old
	amount := d(1200)
	updated.ContractAmount = &amount
	updated.State = model.SubProjectStateTemporaryHandover

	diffs := DiffSubProject(&old, &updated)
	byField := map[string]FieldDiff{}
	for _, diff := range diffs {
		byField[diff.Field] = diff
	}
	require.Contains(t, byField, "contract_amount")
	assert.Equal(t, "1000", byField["contract_amount"].Old)
	assert.Equal(t, "1200", byField["contract_amount"].New)
	require.Contains(t, byField, "state")
	assert.Equal(t, string(model.SubProjectStateTemporaryHandover), byField["state"].New)
	assert.Len(t, diffs, 2)
}
