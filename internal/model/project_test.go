package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectStatusOf(t *testing.T) {
	assert.Equal(t, ProjectStatusInactive, ProjectStatusOf(nil))

	assert.Equal(t, ProjectStatusInactive, ProjectStatusOf([]SubProject{
		{State: SubProjectStateSuspended},
		{State: SubProjectStateFinalHandover},
	}))

	assert.Equal(t, ProjectStatusFunded, ProjectStatusOf([]SubProject{
		{State: SubProjectStateSuspended},
		{State: SubProjectStateFunded},
	}))

	assert.Equal(t, ProjectStatusActive, ProjectStatusOf([]SubProject{
		{State: SubProjectStateFunded},
		{State: SubProjectStateActive},
	}))
}

func TestNextSubProjectNumber(t *testing.T) {
	assert.Equal(t, 1, NextSubProjectNumber(nil))

	assert.Equal(t, 3, NextSubProjectNumber([]SubProject{
		{Number: 1}, {Number: 2}, {Number: 4},
	}))

	full := make([]SubProject, MaxSubProjects)
	for i := range full {
		full[i] = SubProject{Number: i + 1}
	}
	assert.Equal(t, 0, NextSubProjectNumber(full))
}

func TestAllocationPoolsTotals(t *testing.T) {
	pools := AllocationPools{
		CashNational:     dec(100),
		CashProvince:     dec(200),
		CashCharity:      dec(50),
		CashTravel:       dec(25),
		TreasuryNational: dec(1000),
		TreasuryProvince: dec(500),
		TreasuryTravel:   dec(10),
	}
	assert.True(t, pools.TotalCash().Equal(dec(375)))
	assert.True(t, pools.TotalTreasury().Equal(dec(1510)))
}

func TestProgramOpeningDate(t *testing.T) {
	assert.Nil(t, ProgramOpeningDate(nil))

	early := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	projects := []Project{
		{EstimatedOpeningTime: &early},
		{},
		{EstimatedOpeningTime: &late},
	}
	got := ProgramOpeningDate(projects)
	require.NotNil(t, got)
	assert.True(t, got.Equal(late))

	// Result is a copy, not an alias into the slice.
	*got = early
	assert.True(t, projects[2].EstimatedOpeningTime.Equal(late))
}
