package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/omranyar/portfolio-engine/internal/model"
	"github.com/omranyar/portfolio-engine/internal/repository"
	"github.com/omranyar/portfolio-engine/internal/sms"
)

// FundingService drives credit requests through the
// draft -> expert -> chief pipeline.
type FundingService struct {
	requests   *repository.FundingRepository
	projects   *repository.ProjectRepository
	users      *repository.UserRepository
	dispatcher sms.Dispatcher
	log        zerolog.Logger
	now        func() time.Time
}

func NewFundingService(
	requests *repository.FundingRepository,
	projects *repository.ProjectRepository,
	users *repository.UserRepository,
	dispatcher sms.Dispatcher,
	log zerolog.Logger,
) *FundingService {
	return &FundingService{
		requests:   requests,
		projects:   projects,
		users:      users,
		dispatcher: dispatcher,
		log:        log,
		now:        time.Now,
	}
}

func (s *FundingService) Get(ctx context.Context, id uuid.UUID) (*model.FundingRequest, error) {
	request, err := s.requests.Get(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return request, nil
}

func (s *FundingService) List(ctx context.Context, p model.Principal, statuses []model.FundingStatus) ([]model.FundingRequest, error) {
	var provinces []model.Province
	if p.IsProvinceManager() || p.IsExpert() {
		provinces = p.Provinces
	}
	return s.requests.List(ctx, statuses, provinces)
}

func (s *FundingService) Create(ctx context.Context, p model.Principal, request *model.FundingRequest) error {
	project, err := s.projects.Get(ctx, request.ProjectID)
	if err != nil {
		return notFound(err)
	}
	if !p.HasProvince(project.Province) {
		return fmt.Errorf("%w: province %s", ErrPermissionDenied, project.Province)
	}
	if !request.ProvinceSuggestedAmount.IsPositive() {
		return fmt.Errorf("%w: suggested amount must be positive", ErrValidation)
	}
	if !request.Priority.Valid() {
		return fmt.Errorf("%w: unknown priority %q", ErrValidation, request.Priority)
	}
	request.CreatedByID = p.UserID
	if err := s.requests.Create(ctx, request); err != nil {
		return err
	}
	s.log.Info().
		Str("request_id", request.ID.String()).
		Str("project", project.ProjectID).
		Msg("funding request created")
	return nil
}

// UpdateDraft lets the owner rework the request while it sits in draft or
// either rejected state.
func (s *FundingService) UpdateDraft(ctx context.Context, p model.Principal, request *model.FundingRequest) error {
	current, err := s.requests.Get(ctx, request.ID)
	if err != nil {
		return notFound(err)
	}
	switch current.Status {
	case model.FundingDraft, model.FundingExpertRejected:
		if current.CreatedByID != p.UserID && !p.IsAdmin() {
			return ErrPermissionDenied
		}
	case model.FundingChiefRejected:
		// After a chief rejection the assigned expert reworks the figures.
		if (current.ExpertID == nil || *current.ExpertID != p.UserID) && !p.IsAdmin() {
			return ErrPermissionDenied
		}
	default:
		return fmt.Errorf("%w: edit in state %s", ErrInvalidTransition, current.Status)
	}
	if !request.ProvinceSuggestedAmount.IsPositive() {
		return fmt.Errorf("%w: suggested amount must be positive", ErrValidation)
	}
	if !request.Priority.Valid() {
		return fmt.Errorf("%w: unknown priority %q", ErrValidation, request.Priority)
	}

	current.ProvinceSuggestedAmount = request.ProvinceSuggestedAmount
	current.HeadquartersSuggestedAmount = request.HeadquartersSuggestedAmount
	current.Priority = request.Priority
	current.ProvinceDescription = request.ProvinceDescription
	current.ExpertDescription = request.ExpertDescription
	return s.requests.Update(ctx, current)
}

// SubmitToExpert routes the request to a reviewer: the explicit expert if
// given, otherwise the first expert assigned to the project's province.
func (s *FundingService) SubmitToExpert(ctx context.Context, p model.Principal, id uuid.UUID, expertID *uuid.UUID) error {
	request, err := s.requests.Get(ctx, id)
	if err != nil {
		return notFound(err)
	}
	if request.CreatedByID != p.UserID && !p.IsAdmin() {
		return ErrPermissionDenied
	}
	if !request.Status.CanTransitionTo(model.FundingSentToExpert) {
		return fmt.Errorf("%w: submit from %s", ErrInvalidTransition, request.Status)
	}

	project, err := s.projects.Get(ctx, request.ProjectID)
	if err != nil {
		return notFound(err)
	}

	expert := expertID
	if expert == nil {
		assigned, err := s.users.FirstExpertForProvince(ctx, project.Province)
		if err != nil {
			return fmt.Errorf("%w: no expert assigned to %s", ErrValidation, project.Province)
		}
		expert = &assigned.ID
	} else {
		provinces, err := s.users.ExpertProvinces(ctx, *expert)
		if err != nil {
			return err
		}
		if !coversProvince(provinces, project.Province) {
			return fmt.Errorf("%w: expert is not assigned to %s", ErrValidation, project.Province)
		}
	}

	request.ExpertID = expert
	request.Status = model.FundingSentToExpert
	submitted := s.now()
	request.SubmittedAt = &submitted
	return s.requests.Update(ctx, request)
}

// ExpertApprove records the expert's figures and moves the request onward.
func (s *FundingService) ExpertApprove(ctx context.Context, p model.Principal, id uuid.UUID, headquartersAmount *decimal.Decimal, description string) error {
	request, err := s.requests.Get(ctx, id)
	if err != nil {
		return notFound(err)
	}
	if err := s.requireExpert(p, request); err != nil {
		return err
	}
	if !request.Status.CanTransitionTo(model.FundingExpertApproved) {
		return fmt.Errorf("%w: expert_approve from %s", ErrInvalidTransition, request.Status)
	}
	if headquartersAmount != nil && !headquartersAmount.IsPositive() {
		return fmt.Errorf("%w: headquarters amount must be positive", ErrValidation)
	}

	request.HeadquartersSuggestedAmount = headquartersAmount
	request.ExpertDescription = description
	request.ExpertRejectionReason = ""
	request.Status = model.FundingExpertApproved
	return s.requests.Update(ctx, request)
}

func (s *FundingService) ExpertReject(ctx context.Context, p model.Principal, id uuid.UUID, reason string) error {
	request, err := s.requests.Get(ctx, id)
	if err != nil {
		return notFound(err)
	}
	if err := s.requireExpert(p, request); err != nil {
		return err
	}
	if !request.Status.CanTransitionTo(model.FundingExpertRejected) {
		return fmt.Errorf("%w: expert_reject from %s", ErrInvalidTransition, request.Status)
	}
	if reason == "" {
		return fmt.Errorf("%w: rejection reason is required", ErrValidation)
	}

	request.ExpertRejectionReason = reason
	request.Status = model.FundingExpertRejected
	if err := s.requests.Update(ctx, request); err != nil {
		return err
	}
	s.notifyOwner(ctx, request, fmt.Sprintf("Funding request returned by the expert: %s", reason))
	return nil
}

// SendToChief escalates an expert-approved request: the explicit chief if
// given, otherwise the first active chief executive.
func (s *FundingService) SendToChief(ctx context.Context, p model.Principal, id uuid.UUID, chiefID *uuid.UUID) error {
	request, err := s.requests.Get(ctx, id)
	if err != nil {
		return notFound(err)
	}
	if err := s.requireExpert(p, request); err != nil {
		return err
	}
	if !request.Status.CanTransitionTo(model.FundingSentToChief) {
		return fmt.Errorf("%w: send_to_chief from %s", ErrInvalidTransition, request.Status)
	}

	chief := chiefID
	if chief == nil {
		assigned, err := s.users.FirstChiefExecutive(ctx)
		if err != nil {
			return fmt.Errorf("%w: no chief executive available", ErrValidation)
		}
		chief = &assigned.ID
	}

	request.ChiefID = chief
	request.Status = model.FundingSentToChief
	return s.requests.Update(ctx, request)
}

// ChiefApprove settles the final amount, defaulting to the headquarters
// suggestion and then the province suggestion, and stamps approved_at.
func (s *FundingService) ChiefApprove(ctx context.Context, p model.Principal, id uuid.UUID, finalAmount *decimal.Decimal) error {
	request, err := s.requests.Get(ctx, id)
	if err != nil {
		return notFound(err)
	}
	if err := s.requireChief(p, request); err != nil {
		return err
	}
	if !request.Status.CanTransitionTo(model.FundingApproved) {
		return fmt.Errorf("%w: chief_approve from %s", ErrInvalidTransition, request.Status)
	}
	if finalAmount != nil && !finalAmount.IsPositive() {
		return fmt.Errorf("%w: final amount must be positive", ErrValidation)
	}

	settled := request.ResolveFinalAmount(finalAmount)
	request.FinalAmount = &settled
	request.ChiefRejectionReason = ""
	request.Status = model.FundingApproved
	approved := s.now()
	request.ApprovedAt = &approved
	if err := s.requests.Update(ctx, request); err != nil {
		return err
	}
	s.log.Info().
		Str("request_id", request.ID.String()).
		Str("final_amount", settled.String()).
		Msg("funding request approved")
	s.notifyOwner(ctx, request, fmt.Sprintf("Funding request approved for %s rials.", settled))
	return nil
}

func (s *FundingService) ChiefReject(ctx context.Context, p model.Principal, id uuid.UUID, reason string) error {
	request, err := s.requests.Get(ctx, id)
	if err != nil {
		return notFound(err)
	}
	if err := s.requireChief(p, request); err != nil {
		return err
	}
	if !request.Status.CanTransitionTo(model.FundingChiefRejected) {
		return fmt.Errorf("%w: chief_reject from %s", ErrInvalidTransition, request.Status)
	}
	if reason == "" {
		return fmt.Errorf("%w: rejection reason is required", ErrValidation)
	}

	request.ChiefRejectionReason = reason
	request.Status = model.FundingChiefRejected
	return s.requests.Update(ctx, request)
}

// ArchiveApproved bulk-moves every approved request to the terminal
// archived state.
func (s *FundingService) ArchiveApproved(ctx context.Context, p model.Principal) (int, error) {
	if !p.IsAdmin() && !p.IsChiefExecutive() {
		return 0, ErrPermissionDenied
	}
	ids, err := s.requests.ArchiveApproved(ctx)
	if err != nil {
		return 0, err
	}
	s.log.Info().Int("archived", len(ids)).Msg("approved funding requests archived")
	return len(ids), nil
}

// coversProvince reports whether an expert's assignment list includes the
// project's province.
func coversProvince(provinces []model.Province, province model.Province) bool {
	for _, assigned := range provinces {
		if assigned == province {
			return true
		}
	}
	return false
}

func (s *FundingService) requireExpert(p model.Principal, request *model.FundingRequest) error {
	if p.IsAdmin() {
		return nil
	}
	if !p.IsExpert() || request.ExpertID == nil || *request.ExpertID != p.UserID {
		return fmt.Errorf("%w: requires the assigned expert", ErrPermissionDenied)
	}
	return nil
}

func (s *FundingService) requireChief(p model.Principal, request *model.FundingRequest) error {
	if p.IsAdmin() {
		return nil
	}
	if !p.IsChiefExecutive() {
		return fmt.Errorf("%w: requires a chief executive", ErrPermissionDenied)
	}
	return nil
}

func (s *FundingService) notifyOwner(ctx context.Context, request *model.FundingRequest, message string) {
	owner, err := s.users.Get(ctx, request.CreatedByID)
	if err != nil || owner.PhoneNumber == nil {
		return
	}
	if err := s.dispatcher.Send(ctx, *owner.PhoneNumber, message); err != nil {
		s.log.Warn().Err(err).Str("recipient", *owner.PhoneNumber).Msg("funding sms failed")
	}
}
