package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/omranyar/portfolio-engine/internal/model"
	"github.com/omranyar/portfolio-engine/internal/repository"
	"github.com/omranyar/portfolio-engine/internal/sms"
)

// CommentInput is one field-level objection supplied with a rejection.
type CommentInput struct {
	Field   string
	Comment string
}

// ReviewService drives the submit/approve/reject workflow shared by
// programs, projects, and subprojects.
type ReviewService struct {
	db          *gorm.DB
	programs    *repository.ProgramRepository
	projects    *repository.ProjectRepository
	subProjects *repository.SubProjectRepository
	history     *repository.HistoryRepository
	users       *repository.UserRepository
	dispatcher  sms.Dispatcher
	log         zerolog.Logger
}

func NewReviewService(
	db *gorm.DB,
	programs *repository.ProgramRepository,
	projects *repository.ProjectRepository,
	subProjects *repository.SubProjectRepository,
	history *repository.HistoryRepository,
	users *repository.UserRepository,
	dispatcher sms.Dispatcher,
	log zerolog.Logger,
) *ReviewService {
	return &ReviewService{
		db:          db,
		programs:    programs,
		projects:    projects,
		subProjects: subProjects,
		history:     history,
		users:       users,
		dispatcher:  dispatcher,
		log:         log,
	}
}

// reviewTarget is the workflow-relevant slice of a reviewable entity.
type reviewTarget struct {
	flags    ReviewFlags
	ownerID  uuid.UUID
	province model.Province
	label    string
}

func (s *ReviewService) loadTarget(ctx context.Context, kind model.EntityKind, id uuid.UUID) (*reviewTarget, error) {
	switch kind {
	case model.KindProgram:
		program, err := s.programs.Get(ctx, id)
		if err != nil {
			return nil, notFound(err)
		}
		return &reviewTarget{
			flags:    ReviewFlags{Submitted: program.IsSubmitted, ExpertApproved: program.IsExpertApproved, Approved: program.IsApproved},
			ownerID:  program.CreatedByID,
			province: program.Province,
			label:    program.Title,
		}, nil
	case model.KindProject:
		project, err := s.projects.Get(ctx, id)
		if err != nil {
			return nil, notFound(err)
		}
		return &reviewTarget{
			flags:    ReviewFlags{Submitted: project.IsSubmitted, ExpertApproved: project.IsExpertApproved, Approved: project.IsApproved},
			ownerID:  project.CreatedByID,
			province: project.Province,
			label:    project.Name,
		}, nil
	case model.KindSubProject:
		sub, err := s.subProjects.Get(ctx, id)
		if err != nil {
			return nil, notFound(err)
		}
		project, err := s.projects.Get(ctx, sub.ProjectID)
		if err != nil {
			return nil, notFound(err)
		}
		label := fmt.Sprintf("%s #%d", project.Name, sub.Number)
		if sub.Name != nil {
			label = *sub.Name
		}
		return &reviewTarget{
			flags:    ReviewFlags{Submitted: sub.IsSubmitted, ExpertApproved: sub.IsExpertApproved, Approved: sub.IsApproved},
			ownerID:  sub.CreatedByID,
			province: project.Province,
			label:    label,
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown entity kind %q", ErrValidation, kind)
	}
}

func (s *ReviewService) saveFlags(ctx context.Context, tx *gorm.DB, kind model.EntityKind, id uuid.UUID, flags ReviewFlags) error {
	switch kind {
	case model.KindProgram:
		return s.programs.WithTx(tx).UpdateReviewFlags(ctx, id, flags.Submitted, flags.ExpertApproved, flags.Approved)
	case model.KindProject:
		return s.projects.WithTx(tx).UpdateReviewFlags(ctx, id, flags.Submitted, flags.ExpertApproved, flags.Approved)
	case model.KindSubProject:
		return s.subProjects.WithTx(tx).UpdateReviewFlags(ctx, id, flags.Submitted, flags.ExpertApproved, flags.Approved)
	default:
		return fmt.Errorf("%w: unknown entity kind %q", ErrValidation, kind)
	}
}

// Submit moves a draft entity into review. Owner only.
func (s *ReviewService) Submit(ctx context.Context, p model.Principal, kind model.EntityKind, id uuid.UUID) error {
	return s.apply(ctx, p, kind, id, ActionSubmit, nil)
}

// ExpertApprove records the provincial expert's sign-off.
func (s *ReviewService) ExpertApprove(ctx context.Context, p model.Principal, kind model.EntityKind, id uuid.UUID) error {
	return s.apply(ctx, p, kind, id, ActionExpertApprove, nil)
}

// Approve finalizes the review and wipes any standing rejection comments.
func (s *ReviewService) Approve(ctx context.Context, p model.Principal, kind model.EntityKind, id uuid.UUID) error {
	return s.apply(ctx, p, kind, id, ActionApprove, nil)
}

// Reject sends the entity back to draft, recording the reviewer's
// field-level comments in the same transaction.
func (s *ReviewService) Reject(ctx context.Context, p model.Principal, kind model.EntityKind, id uuid.UUID, comments []CommentInput) error {
	if len(comments) == 0 {
		return fmt.Errorf("%w: rejection requires at least one comment", ErrValidation)
	}
	return s.apply(ctx, p, kind, id, ActionReject, comments)
}

// Redraft pulls an approved entity back to draft for editing. Owner only;
// standing comments are cleared.
func (s *ReviewService) Redraft(ctx context.Context, p model.Principal, kind model.EntityKind, id uuid.UUID) error {
	return s.apply(ctx, p, kind, id, ActionRedraft, nil)
}

func (s *ReviewService) apply(ctx context.Context, p model.Principal, kind model.EntityKind, id uuid.UUID, action ReviewAction, comments []CommentInput) error {
	target, err := s.loadTarget(ctx, kind, id)
	if err != nil {
		return err
	}

	next, err := ReviewTransition(target.flags, action, p, p.UserID == target.ownerID, target.province)
	if err != nil {
		return err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.saveFlags(ctx, tx, kind, id, next); err != nil {
			return err
		}
		switch action {
		case ActionReject:
			if err := replaceComments(ctx, s.history.WithTx(tx), kind, id, p.UserID, comments); err != nil {
				return err
			}
		case ActionApprove, ActionRedraft:
			if err := s.history.WithTx(tx).DeleteComments(ctx, kind, id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info().
		Str("kind", string(kind)).
		Str("entity_id", id.String()).
		Str("action", string(action)).
		Str("state", string(next.State())).
		Msg("review action applied")

	if action == ActionReject {
		s.notifyRejection(ctx, target, kind)
	}
	return nil
}

// commentWriter is the slice of the history repository the rejection path
// writes through.
type commentWriter interface {
	DeleteComments(ctx context.Context, kind model.EntityKind, id uuid.UUID) error
	CreateComment(ctx context.Context, comment *model.RejectionComment) error
}

// replaceComments swaps an entity's standing comments for the new set. Each
// rejection carries the full current objection list, so comments from an
// earlier review cycle never accumulate.
func replaceComments(ctx context.Context, store commentWriter, kind model.EntityKind, id uuid.UUID, author uuid.UUID, comments []CommentInput) error {
	if err := store.DeleteComments(ctx, kind, id); err != nil {
		return err
	}
	for _, input := range comments {
		comment := model.RejectionComment{
			EntityKind: kind,
			EntityID:   id,
			FieldName:  input.Field,
			Comment:    input.Comment,
			AuthorID:   author,
		}
		if err := store.CreateComment(ctx, &comment); err != nil {
			return err
		}
	}
	return nil
}

// notifyRejection texts the owner. Delivery failures are logged, never
// surfaced: the rejection has already committed.
func (s *ReviewService) notifyRejection(ctx context.Context, target *reviewTarget, kind model.EntityKind) {
	owner, err := s.users.Get(ctx, target.ownerID)
	if err != nil || owner.PhoneNumber == nil {
		return
	}
	message := fmt.Sprintf("Your %s %q was returned for revision. Please review the comments.", kind, target.label)
	if err := s.dispatcher.Send(ctx, *owner.PhoneNumber, message); err != nil {
		s.log.Warn().Err(err).Str("recipient", *owner.PhoneNumber).Msg("rejection sms failed")
	}
}

// ListComments returns the standing rejection comments on an entity.
func (s *ReviewService) ListComments(ctx context.Context, kind model.EntityKind, id uuid.UUID) ([]model.RejectionComment, error) {
	return s.history.ListComments(ctx, kind, id)
}

// ListHistory returns the recorded field changes of an entity, newest first.
func (s *ReviewService) ListHistory(ctx context.Context, kind model.EntityKind, id uuid.UUID) ([]model.ChangeEntry, error) {
	return s.history.ListChanges(ctx, kind, id)
}
