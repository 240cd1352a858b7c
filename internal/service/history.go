package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/omranyar/portfolio-engine/internal/model"
)

// FieldDiff is one tracked-field change between the persisted and the
// incoming state of an entity.
type FieldDiff struct {
	Field string
	Old   string
	New   string
}

func diffString(diffs []FieldDiff, field, oldVal, newVal string) []FieldDiff {
	if oldVal != newVal {
		diffs = append(diffs, FieldDiff{Field: field, Old: oldVal, New: newVal})
	}
	return diffs
}

func diffBool(diffs []FieldDiff, field string, oldVal, newVal bool) []FieldDiff {
	if oldVal != newVal {
		diffs = append(diffs, FieldDiff{Field: field, Old: boolText(oldVal), New: boolText(newVal)})
	}
	return diffs
}

func diffDecimal(diffs []FieldDiff, field string, oldVal, newVal decimal.Decimal) []FieldDiff {
	if !oldVal.Equal(newVal) {
		diffs = append(diffs, FieldDiff{Field: field, Old: oldVal.String(), New: newVal.String()})
	}
	return diffs
}

func boolText(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

func textOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func dateOrEmpty(v *time.Time) string {
	if v == nil {
		return ""
	}
	return v.Format("2006-01-02")
}

func decimalOrEmpty(v *decimal.Decimal) string {
	if v == nil {
		return ""
	}
	return v.String()
}

func intOrEmpty(v *int) string {
	if v == nil {
		return ""
	}
	return decimal.NewFromInt(int64(*v)).String()
}

// DiffProgram compares the tracked program fields.
func DiffProgram(old, updated *model.Program) []FieldDiff {
	var diffs []FieldDiff
	diffs = diffString(diffs, "title", old.Title, updated.Title)
	diffs = diffString(diffs, "program_type", string(old.ProgramType), string(updated.ProgramType))
	diffs = diffString(diffs, "license_state", string(old.LicenseState), string(updated.LicenseState))
	diffs = diffString(diffs, "license_code", old.LicenseCode, updated.LicenseCode)
	diffs = diffString(diffs, "description", textOrEmpty(old.Description), textOrEmpty(updated.Description))
	diffs = diffBool(diffs, "is_approved", old.IsApproved, updated.IsApproved)
	diffs = diffBool(diffs, "is_submitted", old.IsSubmitted, updated.IsSubmitted)
	return diffs
}

// DiffProject compares the tracked project fields.
func DiffProject(old, updated *model.Project) []FieldDiff {
	var diffs []FieldDiff
	diffs = diffString(diffs, "name", old.Name, updated.Name)
	diffs = diffString(diffs, "province", string(old.Province), string(updated.Province))
	diffs = diffString(diffs, "city", old.City, updated.City)
	diffs = diffString(diffs, "project_type", string(old.ProjectType), string(updated.ProjectType))
	oldProgram, newProgram := "", ""
	if old.ProgramID != nil {
		oldProgram = old.ProgramID.String()
	}
	if updated.ProgramID != nil {
		newProgram = updated.ProgramID.String()
	}
	diffs = diffString(diffs, "program", oldProgram, newProgram)
	diffs = diffDecimal(diffs, "physical_progress", old.PhysicalProgress, updated.PhysicalProgress)
	diffs = diffBool(diffs, "is_approved", old.IsApproved, updated.IsApproved)
	diffs = diffBool(diffs, "is_submitted", old.IsSubmitted, updated.IsSubmitted)
	return diffs
}

// DiffSubProject compares the tracked subproject fields.
func DiffSubProject(old, updated *model.SubProject) []FieldDiff {
	var diffs []FieldDiff
	diffs = diffString(diffs, "sub_project_type", string(old.Type), string(updated.Type))
	diffs = diffString(diffs, "state", string(old.State), string(updated.State))
	diffs = diffDecimal(diffs, "physical_progress", old.PhysicalProgress, updated.PhysicalProgress)
	diffs = diffString(diffs, "remaining_work", textOrEmpty(old.RemainingWork), textOrEmpty(updated.RemainingWork))
	diffs = diffString(diffs, "contract_start_date", dateOrEmpty(old.ContractStartDate), dateOrEmpty(updated.ContractStartDate))
	diffs = diffString(diffs, "contract_end_date", dateOrEmpty(old.ContractEndDate), dateOrEmpty(updated.ContractEndDate))
	diffs = diffString(diffs, "contract_amount", decimalOrEmpty(old.ContractAmount), decimalOrEmpty(updated.ContractAmount))
	oldType, newType := "", ""
	if old.ContractType != nil {
		oldType = string(*old.ContractType)
	}
	if updated.ContractType != nil {
		newType = string(*updated.ContractType)
	}
	diffs = diffString(diffs, "contract_type", oldType, newType)
	oldMethod, newMethod := "", ""
	if old.ExecutionMethod != nil {
		oldMethod = string(*old.ExecutionMethod)
	}
	if updated.ExecutionMethod != nil {
		newMethod = string(*updated.ExecutionMethod)
	}
	diffs = diffString(diffs, "execution_method", oldMethod, newMethod)
	diffs = diffBool(diffs, "has_adjustment", old.HasAdjustment, updated.HasAdjustment)
	diffs = diffDecimal(diffs, "adjustment_coefficient", old.AdjustmentCoefficient, updated.AdjustmentCoefficient)
	diffs = diffString(diffs, "start_date", dateOrEmpty(old.StartDate), dateOrEmpty(updated.StartDate))
	diffs = diffString(diffs, "end_date", dateOrEmpty(old.EndDate), dateOrEmpty(updated.EndDate))
	diffs = diffString(diffs, "imaginary_duration", intOrEmpty(old.ImaginaryDuration), intOrEmpty(updated.ImaginaryDuration))
	diffs = diffString(diffs, "relationship_delay", intOrEmpty(old.RelationshipDelay), intOrEmpty(updated.RelationshipDelay))
	oldRel, newRel := "", ""
	if old.RelationshipType != nil {
		oldRel = string(*old.RelationshipType)
	}
	if updated.RelationshipType != nil {
		newRel = string(*updated.RelationshipType)
	}
	diffs = diffString(diffs, "relationship_type", oldRel, newRel)
	oldRef, newRef := "", ""
	if old.RelatedSubProjectID != nil {
		oldRef = old.RelatedSubProjectID.String()
	}
	if updated.RelatedSubProjectID != nil {
		newRef = updated.RelatedSubProjectID.String()
	}
	diffs = diffString(diffs, "related_subproject", oldRef, newRef)
	return diffs
}
