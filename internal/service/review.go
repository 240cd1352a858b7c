package service

import (
	"fmt"

	"github.com/omranyar/portfolio-engine/internal/model"
)

// ReviewState is the review position of a program, project, or subproject,
// encoded on the entity as three booleans.
type ReviewState string

const (
	ReviewDraft          ReviewState = "draft"
	ReviewSubmitted      ReviewState = "submitted"
	ReviewExpertApproved ReviewState = "expert_approved"
	ReviewApproved       ReviewState = "approved"
)

// ReviewFlags mirrors the is_submitted / is_expert_approved / is_approved
// columns shared by the three reviewable entity kinds.
type ReviewFlags struct {
	Submitted      bool
	ExpertApproved bool
	Approved       bool
}

func (f ReviewFlags) State() ReviewState {
	switch {
	case f.Approved:
		return ReviewApproved
	case f.ExpertApproved:
		return ReviewExpertApproved
	case f.Submitted:
		return ReviewSubmitted
	default:
		return ReviewDraft
	}
}

func flagsFor(state ReviewState) ReviewFlags {
	switch state {
	case ReviewSubmitted:
		return ReviewFlags{Submitted: true}
	case ReviewExpertApproved:
		return ReviewFlags{Submitted: true, ExpertApproved: true}
	case ReviewApproved:
		return ReviewFlags{Submitted: true, ExpertApproved: true, Approved: true}
	default:
		return ReviewFlags{}
	}
}

type ReviewAction string

const (
	ActionSubmit        ReviewAction = "submit"
	ActionExpertApprove ReviewAction = "expert_approve"
	ActionApprove       ReviewAction = "approve"
	ActionReject        ReviewAction = "reject"
	ActionRedraft       ReviewAction = "redraft"
)

// ReviewTransition applies a workflow action to the current flags, checking
// both the state machine and the actor's authority. province is the
// entity's province, isOwner whether the principal created the entity.
func ReviewTransition(flags ReviewFlags, action ReviewAction, p model.Principal, isOwner bool, province model.Province) (ReviewFlags, error) {
	state := flags.State()

	switch action {
	case ActionSubmit:
		if state != ReviewDraft {
			return flags, fmt.Errorf("%w: submit from %s", ErrInvalidTransition, state)
		}
		if !isOwner {
			return flags, fmt.Errorf("%w: only the owner may submit", ErrPermissionDenied)
		}
		return flagsFor(ReviewSubmitted), nil

	case ActionExpertApprove:
		if state != ReviewSubmitted {
			return flags, fmt.Errorf("%w: expert_approve from %s", ErrInvalidTransition, state)
		}
		if !p.IsExpert() || !p.HasProvince(province) {
			return flags, fmt.Errorf("%w: requires the expert assigned to %s", ErrPermissionDenied, province)
		}
		return flagsFor(ReviewExpertApproved), nil

	case ActionApprove:
		if state != ReviewExpertApproved {
			return flags, fmt.Errorf("%w: approve from %s", ErrInvalidTransition, state)
		}
		if !p.IsAdmin() && !p.IsViceChiefExecutive() {
			return flags, fmt.Errorf("%w: requires admin or vice chief", ErrPermissionDenied)
		}
		return flagsFor(ReviewApproved), nil

	case ActionReject:
		switch state {
		case ReviewSubmitted:
			if !p.IsExpert() && !p.IsViceChiefExecutive() && !p.IsAdmin() {
				return flags, fmt.Errorf("%w: requires expert, vice chief, or admin", ErrPermissionDenied)
			}
		case ReviewExpertApproved:
			if !p.IsAdmin() && !p.IsViceChiefExecutive() {
				return flags, fmt.Errorf("%w: requires admin or vice chief", ErrPermissionDenied)
			}
		default:
			return flags, fmt.Errorf("%w: reject from %s", ErrInvalidTransition, state)
		}
		return flagsFor(ReviewDraft), nil

	case ActionRedraft:
		if state != ReviewApproved {
			return flags, fmt.Errorf("%w: redraft from %s", ErrInvalidTransition, state)
		}
		if !isOwner {
			return flags, fmt.Errorf("%w: only the owner may redraft", ErrPermissionDenied)
		}
		return flagsFor(ReviewDraft), nil

	default:
		return flags, fmt.Errorf("%w: unknown action %q", ErrInvalidTransition, action)
	}
}
