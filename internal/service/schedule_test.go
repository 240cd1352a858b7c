package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omranyar/portfolio-engine/internal/model"
)

var scheduleToday = time.Date(2025, time.August, 30, 14, 30, 0, 0, time.UTC)

func relatedTo(sub *model.SubProject, target uuid.UUID, rel model.RelationshipType, delay int) {
	sub.RelatedSubProjectID = &target
	sub.RelationshipType = &rel
	sub.RelationshipDelay = &delay
}

func TestResolveSchedulesContractedUsesContractDates(t *testing.T) {
	sub := contractedSubProject(1000)
	subs := []model.SubProject{sub}

	require.NoError(t, ResolveSchedules(subs, scheduleToday))
	require.NotNil(t, subs[0].StartDate)
	require.NotNil(t, subs[0].EndDate)
	assert.True(t, subs[0].StartDate.Equal(*sub.ContractStartDate))
	assert.True(t, subs[0].EndDate.Equal(*sub.ContractEndDate))
}

func TestResolveSchedulesFloatingStartsToday(t *testing.T) {
	duration := 90
	sub := model.SubProject{ID: uuid.New(), ImaginaryDuration: &duration}
	subs := []model.SubProject{sub}

	require.NoError(t, ResolveSchedules(subs, scheduleToday))
	require.NotNil(t, subs[0].StartDate)
	wantStart := time.Date(2025, time.August, 30, 0, 0, 0, 0, time.UTC)
	assert.True(t, subs[0].StartDate.Equal(wantStart))
	assert.True(t, subs[0].EndDate.Equal(wantStart.AddDate(0, 0, 90)))
}

func TestResolveSchedulesDefaultDuration(t *testing.T) {
	sub := model.SubProject{ID: uuid.New()}
	subs := []model.SubProject{sub}

	require.NoError(t, ResolveSchedules(subs, scheduleToday))
	require.NotNil(t, subs[0].EndDate)
	assert.Equal(t, DefaultImaginaryDuration, int(subs[0].EndDate.Sub(*subs[0].StartDate).Hours()/24))
}

func TestResolveSchedulesAfterChain(t *testing.T) {
	anchor := contractedSubProject(1000)

	duration := 30
	dependent := model.SubProject{ID: uuid.New(), ImaginaryDuration: &duration}
	relatedTo(&dependent, anchor.ID, model.RelationshipAfter, 10)

	// Dependent listed first: resolution must still settle.
	subs := []model.SubProject{dependent, anchor}
	require.NoError(t, ResolveSchedules(subs, scheduleToday))

	require.NotNil(t, subs[0].StartDate)
	wantStart := anchor.ContractEndDate.AddDate(0, 0, 10)
	assert.True(t, subs[0].StartDate.Equal(wantStart))
	assert.True(t, subs[0].EndDate.Equal(wantStart.AddDate(0, 0, 30)))
}

func TestResolveSchedulesBefore(t *testing.T) {
	anchor := contractedSubProject(1000)

	duration := 20
	dependent := model.SubProject{ID: uuid.New(), ImaginaryDuration: &duration}
	relatedTo(&dependent, anchor.ID, model.RelationshipBefore, 5)

	subs := []model.SubProject{anchor, dependent}
	require.NoError(t, ResolveSchedules(subs, scheduleToday))

	require.NotNil(t, subs[1].EndDate)
	wantEnd := anchor.ContractStartDate.AddDate(0, 0, -5)
	assert.True(t, subs[1].EndDate.Equal(wantEnd))
	assert.True(t, subs[1].StartDate.Equal(wantEnd.AddDate(0, 0, -20)))
}

func TestResolveSchedulesStartWithAndEndWith(t *testing.T) {
	anchor := contractedSubProject(1000)

	duration := 15
	startWith := model.SubProject{ID: uuid.New(), ImaginaryDuration: &duration}
	relatedTo(&startWith, anchor.ID, model.RelationshipStartWith, 0)

	endWith := model.SubProject{ID: uuid.New(), ImaginaryDuration: &duration}
	relatedTo(&endWith, anchor.ID, model.RelationshipEndWith, 0)

	subs := []model.SubProject{anchor, startWith, endWith}
	require.NoError(t, ResolveSchedules(subs, scheduleToday))

	assert.True(t, subs[1].StartDate.Equal(*anchor.ContractStartDate))
	assert.True(t, subs[2].EndDate.Equal(*anchor.ContractEndDate))
}

func TestResolveSchedulesTransitiveChain(t *testing.T) {
	anchor := contractedSubProject(1000)

	duration := 10
	first := model.SubProject{ID: uuid.New(), ImaginaryDuration: &duration}
	relatedTo(&first, anchor.ID, model.RelationshipAfter, 0)

	second := model.SubProject{ID: uuid.New(), ImaginaryDuration: &duration}
	relatedTo(&second, first.ID, model.RelationshipAfter, 0)

	// Reverse order forces multiple passes.
	subs := []model.SubProject{second, first, anchor}
	require.NoError(t, ResolveSchedules(subs, scheduleToday))

	require.NotNil(t, subs[0].StartDate)
	wantStart := anchor.ContractEndDate.AddDate(0, 0, 10)
	assert.True(t, subs[0].StartDate.Equal(wantStart))
}

func TestResolveSchedulesCycleDoesNotConverge(t *testing.T) {
	a := model.SubProject{ID: uuid.New()}
	b := model.SubProject{ID: uuid.New()}
	relatedTo(&a, b.ID, model.RelationshipAfter, 0)
	relatedTo(&b, a.ID, model.RelationshipAfter, 0)

	err := ResolveSchedules([]model.SubProject{a, b}, scheduleToday)
	assert.ErrorIs(t, err, ErrInvariantViolation)
}

func TestValidateRelationAcceptsSibling(t *testing.T) {
	anchor := contractedSubProject(1000)
	sub := model.SubProject{ID: uuid.New()}
	relatedTo(&sub, anchor.ID, model.RelationshipAfter, 0)

	err := ValidateRelation(&sub, []model.SubProject{anchor, sub})
	assert.NoError(t, err)
}

func TestValidateRelationRejectsSelf(t *testing.T) {
	sub := model.SubProject{ID: uuid.New()}
	relatedTo(&sub, sub.ID, model.RelationshipAfter, 0)

	err := ValidateRelation(&sub, []model.SubProject{sub})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidateRelationRejectsNonSibling(t *testing.T) {
	stranger := uuid.New()
	sub := model.SubProject{ID: uuid.New()}
	relatedTo(&sub, stranger, model.RelationshipAfter, 0)

	err := ValidateRelation(&sub, []model.SubProject{sub})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidateRelationRejectsCycle(t *testing.T) {
	a := model.SubProject{ID: uuid.New()}
	b := model.SubProject{ID: uuid.New()}
	c := model.SubProject{ID: uuid.New()}
	relatedTo(&b, a.ID, model.RelationshipAfter, 0)
	relatedTo(&c, b.ID, model.RelationshipAfter, 0)

	// Pointing a at c closes a -> c -> b -> a.
	relatedTo(&a, c.ID, model.RelationshipAfter, 0)
	err := ValidateRelation(&a, []model.SubProject{a, b, c})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidateRelationTypeWithoutTarget(t *testing.T) {
	rel := model.RelationshipAfter
	sub := model.SubProject{ID: uuid.New(), RelationshipType: &rel}

	err := ValidateRelation(&sub, []model.SubProject{sub})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidateRelationTargetWithoutType(t *testing.T) {
	anchor := contractedSubProject(1000)
	target := anchor.ID
	sub := model.SubProject{ID: uuid.New(), RelatedSubProjectID: &target}

	err := ValidateRelation(&sub, []model.SubProject{anchor, sub})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestValidateRelationFloatingWithoutTarget(t *testing.T) {
	rel := model.RelationshipFloating
	sub := model.SubProject{ID: uuid.New(), RelationshipType: &rel}

	assert.NoError(t, ValidateRelation(&sub, []model.SubProject{sub}))
}
