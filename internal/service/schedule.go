package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/omranyar/portfolio-engine/internal/model"
)

// DefaultImaginaryDuration is assumed when an uncontracted subproject
// carries no estimated duration.
const DefaultImaginaryDuration = 180

// maxSchedulePasses bounds the fixed-point iteration over a project's
// dependency graph. With at most MaxSubProjects nodes any acyclic chain
// settles well within the bound.
const maxSchedulePasses = 10

func durationDays(sub *model.SubProject) int {
	if sub.ImaginaryDuration != nil && *sub.ImaginaryDuration > 0 {
		return *sub.ImaginaryDuration
	}
	return DefaultImaginaryDuration
}

func delayDays(sub *model.SubProject) int {
	if sub.RelationshipDelay != nil {
		return *sub.RelationshipDelay
	}
	return 0
}

// computeScheduleOnce derives start/end for one subproject given its
// relation target (nil when unrelated). It reports whether dates were
// assigned; a dependent whose target has no dates yet stays unresolved.
func computeScheduleOnce(sub *model.SubProject, related *model.SubProject, today time.Time) bool {
	if sub.HasContract() {
		start := *sub.ContractStartDate
		end := *sub.ContractEndDate
		sub.StartDate = &start
		sub.EndDate = &end
		return true
	}

	d := durationDays(sub)

	if related != nil && sub.RelationshipType != nil && *sub.RelationshipType != model.RelationshipFloating {
		if related.StartDate == nil || related.EndDate == nil {
			return false
		}
		delta := delayDays(sub)
		var start, end time.Time
		switch *sub.RelationshipType {
		case model.RelationshipAfter:
			start = related.EndDate.AddDate(0, 0, delta)
			end = start.AddDate(0, 0, d)
		case model.RelationshipBefore:
			end = related.StartDate.AddDate(0, 0, -delta)
			start = end.AddDate(0, 0, -d)
		case model.RelationshipStartWith:
			start = related.StartDate.AddDate(0, 0, delta)
			end = start.AddDate(0, 0, d)
		case model.RelationshipEndWith:
			end = related.EndDate.AddDate(0, 0, delta)
			start = end.AddDate(0, 0, -d)
		default:
			return false
		}
		sub.StartDate = &start
		sub.EndDate = &end
		return true
	}

	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, d)
	sub.StartDate = &start
	sub.EndDate = &end
	return true
}

// ResolveSchedules recomputes start/end dates for every subproject of a
// project, iterating until dependents settle. Cyclic relations are rejected
// at validation time, so persisted data converges within the pass bound;
// hitting the bound means a cycle reached storage anyway.
func ResolveSchedules(subs []model.SubProject, today time.Time) error {
	byID := make(map[uuid.UUID]*model.SubProject, len(subs))
	for i := range subs {
		byID[subs[i].ID] = &subs[i]
	}

	for pass := 0; pass < maxSchedulePasses; pass++ {
		pending := false
		for i := range subs {
			sub := &subs[i]
			var related *model.SubProject
			if sub.RelatedSubProjectID != nil {
				related = byID[*sub.RelatedSubProjectID]
			}
			if !computeScheduleOnce(sub, related, today) {
				pending = true
			}
		}
		if !pending {
			return nil
		}
	}
	return fmt.Errorf("%w: subproject schedules did not converge", ErrInvariantViolation)
}

// ValidateRelation checks a candidate dependency edge: the target must be a
// sibling, must not be the subproject itself, and must not close a cycle in
// the project's relation graph.
func ValidateRelation(sub *model.SubProject, siblings []model.SubProject) error {
	if sub.RelatedSubProjectID == nil {
		if sub.RelationshipType != nil && *sub.RelationshipType != model.RelationshipFloating {
			return fmt.Errorf("%w: relationship type set without a related subproject", ErrValidation)
		}
		return nil
	}
	if sub.RelationshipType == nil {
		return fmt.Errorf("%w: related subproject set without a relationship type", ErrValidation)
	}

	target := *sub.RelatedSubProjectID
	if target == sub.ID {
		return fmt.Errorf("%w: subproject cannot relate to itself", ErrValidation)
	}

	next := make(map[uuid.UUID]*uuid.UUID, len(siblings))
	targetIsSibling := false
	for i := range siblings {
		if siblings[i].ID == sub.ID {
			continue
		}
		next[siblings[i].ID] = siblings[i].RelatedSubProjectID
		if siblings[i].ID == target {
			targetIsSibling = true
		}
	}
	if !targetIsSibling {
		return fmt.Errorf("%w: related subproject must belong to the same project", ErrValidation)
	}

	// Walk the chain from the target; reaching the candidate again means the
	// new edge would close a cycle.
	seen := map[uuid.UUID]bool{sub.ID: true}
	current := &target
	for current != nil {
		if seen[*current] {
			return fmt.Errorf("%w: relationship would create a cycle", ErrValidation)
		}
		seen[*current] = true
		current = next[*current]
	}
	return nil
}
