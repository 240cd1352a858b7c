package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omranyar/portfolio-engine/internal/model"
)

func principal(role model.Role, provinces ...model.Province) model.Principal {
	return model.Principal{UserID: uuid.New(), Role: role, Provinces: provinces}
}

func TestReviewFlagsState(t *testing.T) {
	assert.Equal(t, ReviewDraft, ReviewFlags{}.State())
	assert.Equal(t, ReviewSubmitted, ReviewFlags{Submitted: true}.State())
	assert.Equal(t, ReviewExpertApproved, ReviewFlags{Submitted: true, ExpertApproved: true}.State())
	assert.Equal(t, ReviewApproved, ReviewFlags{Submitted: true, ExpertApproved: true, Approved: true}.State())
}

func TestSubmitByOwner(t *testing.T) {
	p := principal(model.RoleProvinceManager, model.ProvinceFars)

	flags, err := ReviewTransition(ReviewFlags{}, ActionSubmit, p, true, model.ProvinceFars)
	require.NoError(t, err)
	assert.Equal(t, ReviewSubmitted, flags.State())
}

func TestSubmitRequiresOwner(t *testing.T) {
	p := principal(model.RoleProvinceManager, model.ProvinceFars)

	_, err := ReviewTransition(ReviewFlags{}, ActionSubmit, p, false, model.ProvinceFars)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestSubmitFromSubmitted(t *testing.T) {
	p := principal(model.RoleProvinceManager, model.ProvinceFars)

	_, err := ReviewTransition(ReviewFlags{Submitted: true}, ActionSubmit, p, true, model.ProvinceFars)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestExpertApprove(t *testing.T) {
	expert := principal(model.RoleExpert, model.ProvinceFars)

	flags, err := ReviewTransition(ReviewFlags{Submitted: true}, ActionExpertApprove, expert, false, model.ProvinceFars)
	require.NoError(t, err)
	assert.Equal(t, ReviewExpertApproved, flags.State())
}

func TestExpertApproveWrongProvince(t *testing.T) {
	expert := principal(model.RoleExpert, model.ProvinceYazd)

	_, err := ReviewTransition(ReviewFlags{Submitted: true}, ActionExpertApprove, expert, false, model.ProvinceFars)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestExpertApproveRequiresExpert(t *testing.T) {
	admin := principal(model.RoleAdmin)

	_, err := ReviewTransition(ReviewFlags{Submitted: true}, ActionExpertApprove, admin, false, model.ProvinceFars)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestApproveByViceChief(t *testing.T) {
	vice := principal(model.RoleViceChiefExecutive)
	current := ReviewFlags{Submitted: true, ExpertApproved: true}

	flags, err := ReviewTransition(current, ActionApprove, vice, false, model.ProvinceFars)
	require.NoError(t, err)
	assert.Equal(t, ReviewApproved, flags.State())
}

func TestApproveRequiresExpertApproval(t *testing.T) {
	admin := principal(model.RoleAdmin)

	_, err := ReviewTransition(ReviewFlags{Submitted: true}, ActionApprove, admin, false, model.ProvinceFars)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestRejectFromSubmittedByExpert(t *testing.T) {
	expert := principal(model.RoleExpert, model.ProvinceFars)

	flags, err := ReviewTransition(ReviewFlags{Submitted: true}, ActionReject, expert, false, model.ProvinceFars)
	require.NoError(t, err)
	assert.Equal(t, ReviewDraft, flags.State())
}

func TestRejectFromExpertApprovedNeedsSeniorRole(t *testing.T) {
	expert := principal(model.RoleExpert, model.ProvinceFars)
	current := ReviewFlags{Submitted: true, ExpertApproved: true}

	_, err := ReviewTransition(current, ActionReject, expert, false, model.ProvinceFars)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	vice := principal(model.RoleViceChiefExecutive)
	flags, err := ReviewTransition(current, ActionReject, vice, false, model.ProvinceFars)
	require.NoError(t, err)
	assert.Equal(t, ReviewDraft, flags.State())
}

func TestRejectFromDraft(t *testing.T) {
	admin := principal(model.RoleAdmin)

	_, err := ReviewTransition(ReviewFlags{}, ActionReject, admin, false, model.ProvinceFars)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestRedraftByOwner(t *testing.T) {
	p := principal(model.RoleProvinceManager, model.ProvinceFars)
	current := ReviewFlags{Submitted: true, ExpertApproved: true, Approved: true}

	flags, err := ReviewTransition(current, ActionRedraft, p, true, model.ProvinceFars)
	require.NoError(t, err)
	assert.Equal(t, ReviewDraft, flags.State())
}

func TestRedraftRequiresApprovedState(t *testing.T) {
	p := principal(model.RoleProvinceManager, model.ProvinceFars)

	_, err := ReviewTransition(ReviewFlags{Submitted: true}, ActionRedraft, p, true, model.ProvinceFars)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestRedraftRequiresOwner(t *testing.T) {
	admin := principal(model.RoleAdmin)
	current := ReviewFlags{Submitted: true, ExpertApproved: true, Approved: true}

	_, err := ReviewTransition(current, ActionRedraft, admin, false, model.ProvinceFars)
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestUnknownAction(t *testing.T) {
	admin := principal(model.RoleAdmin)

	_, err := ReviewTransition(ReviewFlags{}, ReviewAction("promote"), admin, false, model.ProvinceFars)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

type fakeCommentStore struct {
	comments  []model.RejectionComment
	deleteErr error
}

func (s *fakeCommentStore) DeleteComments(ctx context.Context, kind model.EntityKind, id uuid.UUID) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	kept := s.comments[:0]
	for _, comment := range s.comments {
		if comment.EntityKind != kind || comment.EntityID != id {
			kept = append(kept, comment)
		}
	}
	s.comments = kept
	return nil
}

func (s *fakeCommentStore) CreateComment(ctx context.Context, comment *model.RejectionComment) error {
	s.comments = append(s.comments, *comment)
	return nil
}

func TestReplaceCommentsDropsEarlierCycle(t *testing.T) {
	store := &fakeCommentStore{}
	id := uuid.New()
	firstReviewer := uuid.New()
	secondReviewer := uuid.New()

	err := replaceComments(context.Background(), store, model.KindProject, id, firstReviewer,
		[]CommentInput{{Field: "name", Comment: "too vague"}, {Field: "city", Comment: "missing"}})
	require.NoError(t, err)
	require.Len(t, store.comments, 2)

	err = replaceComments(context.Background(), store, model.KindProject, id, secondReviewer,
		[]CommentInput{{Field: "province", Comment: "wrong province"}})
	require.NoError(t, err)

	require.Len(t, store.comments, 1)
	assert.Equal(t, "province", store.comments[0].FieldName)
	assert.Equal(t, secondReviewer, store.comments[0].AuthorID)
}

func TestReplaceCommentsScopedToEntity(t *testing.T) {
	store := &fakeCommentStore{}
	rejected := uuid.New()
	other := uuid.New()
	reviewer := uuid.New()

	require.NoError(t, replaceComments(context.Background(), store, model.KindProject, other, reviewer,
		[]CommentInput{{Field: "name", Comment: "unrelated"}}))
	require.NoError(t, replaceComments(context.Background(), store, model.KindProject, rejected, reviewer,
		[]CommentInput{{Field: "city", Comment: "missing"}}))

	require.Len(t, store.comments, 2)
	assert.Equal(t, other, store.comments[0].EntityID)
	assert.Equal(t, rejected, store.comments[1].EntityID)
}

func TestReplaceCommentsDeleteFailureWritesNothing(t *testing.T) {
	store := &fakeCommentStore{deleteErr: errors.New("connection lost")}

	err := replaceComments(context.Background(), store, model.KindProgram, uuid.New(), uuid.New(),
		[]CommentInput{{Field: "title", Comment: "rename"}})
	require.Error(t, err)
	assert.Empty(t, store.comments)
}
