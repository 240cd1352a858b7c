package excel

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/omranyar/portfolio-engine/internal/dates"
	"github.com/omranyar/portfolio-engine/internal/model"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate builds the portfolio workbook: a summary sheet over every
// project plus one detail sheet per project listing its subprojects.
func (g *Generator) Generate(projects []model.Project, subsByProject map[string][]model.SubProject) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Summary"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, projects); err != nil {
		return nil, err
	}

	usedNames := map[string]struct{}{summarySheet: {}}
	for i := range projects {
		project := &projects[i]
		sheetName := buildSheetName(project, usedNames)
		usedNames[sheetName] = struct{}{}

		file.NewSheet(sheetName)
		subs := subsByProject[project.ID.String()]
		if err := g.writeDetail(file, sheetName, project, subs); err != nil {
			return nil, err
		}
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, sheet string, projects []model.Project) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Projects")
	set("B1", len(projects))
	set("A2", "Total cash allocation")
	set("B2", sumAllocations(projects, model.AllocationPools.TotalCash))
	set("A3", "Total treasury allocation")
	set("B3", sumAllocations(projects, model.AllocationPools.TotalTreasury))
	set("A4", "Total outstanding debt")
	set("B4", sumDebt(projects))

	tableRow := 6
	headers := []string{
		"Code",
		"Name",
		"Province",
		"City",
		"Type",
		"Status",
		"Physical progress %",
		"Estimated opening",
		"Total cash",
		"Total treasury",
		"Total debt",
		"Required credit (contracts)",
		"Required credit (project)",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, tableRow)
		set(cell, header)
	}

	for i := range projects {
		project := &projects[i]
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), project.ProjectID)
		set(fmt.Sprintf("B%d", row), project.Name)
		set(fmt.Sprintf("C%d", row), string(project.Province))
		set(fmt.Sprintf("D%d", row), project.City)
		set(fmt.Sprintf("E%d", row), string(project.ProjectType))
		set(fmt.Sprintf("F%d", row), string(project.OverallStatus))
		set(fmt.Sprintf("G%d", row), formatDecimal(project.PhysicalProgress))
		set(fmt.Sprintf("H%d", row), formatDatePtr(project.EstimatedOpeningTime))
		set(fmt.Sprintf("I%d", row), formatDecimal(project.Allocations.TotalCash()))
		set(fmt.Sprintf("J%d", row), formatDecimal(project.Allocations.TotalTreasury()))
		set(fmt.Sprintf("K%d", row), formatDecimal(project.CachedTotalDebt))
		set(fmt.Sprintf("L%d", row), formatDecimal(project.CachedRequiredCreditContracts))
		set(fmt.Sprintf("M%d", row), formatDecimal(project.CachedRequiredCreditProject))
	}

	_ = file.SetColWidth(sheet, "A", "A", 12)
	_ = file.SetColWidth(sheet, "B", "B", 40)
	_ = file.SetColWidth(sheet, "C", "F", 22)
	_ = file.SetColWidth(sheet, "G", "H", 18)
	_ = file.SetColWidth(sheet, "I", "M", 22)
	return nil
}

func (g *Generator) writeDetail(file *excelize.File, sheet string, project *model.Project, subs []model.SubProject) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Project code")
	set("B1", project.ProjectID)
	set("A2", "Name")
	set("B2", project.Name)
	set("A3", "Province")
	set("B3", string(project.Province))
	set("A4", "Status")
	set("B4", string(project.OverallStatus))
	set("A5", "Physical progress %")
	set("B5", formatDecimal(project.PhysicalProgress))
	set("A6", "Subprojects")
	set("B6", len(subs))

	tableRow := 8
	headers := []string{
		"No",
		"Name",
		"Type",
		"State",
		"Physical progress %",
		"Start",
		"End",
		"Contract amount",
		"Adjustment %",
		"Final contract amount",
		"Total payments",
		"Debt",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, tableRow)
		set(cell, header)
	}

	for i := range subs {
		sub := &subs[i]
		row := tableRow + 1 + i
		set(fmt.Sprintf("A%d", row), sub.Number)
		set(fmt.Sprintf("B%d", row), formatString(sub.Name))
		set(fmt.Sprintf("C%d", row), string(sub.Type))
		set(fmt.Sprintf("D%d", row), string(sub.State))
		set(fmt.Sprintf("E%d", row), formatDecimal(sub.PhysicalProgress))
		set(fmt.Sprintf("F%d", row), formatDatePtr(sub.StartDate))
		set(fmt.Sprintf("G%d", row), formatDatePtr(sub.EndDate))
		set(fmt.Sprintf("H%d", row), formatDecimalPtr(sub.ContractAmount))
		set(fmt.Sprintf("I%d", row), formatDecimal(sub.EffectiveAdjustmentPercent()))
		set(fmt.Sprintf("J%d", row), formatDecimal(sub.FinalContractAmount()))
		set(fmt.Sprintf("K%d", row), formatDecimal(sub.TotalPayments))
		set(fmt.Sprintf("L%d", row), formatDecimal(sub.Debt))
	}

	_ = file.SetColWidth(sheet, "A", "A", 6)
	_ = file.SetColWidth(sheet, "B", "B", 36)
	_ = file.SetColWidth(sheet, "C", "D", 26)
	_ = file.SetColWidth(sheet, "E", "G", 16)
	_ = file.SetColWidth(sheet, "H", "L", 22)
	return nil
}

func buildSheetName(project *model.Project, used map[string]struct{}) string {
	base := strings.TrimSpace(project.ProjectID)
	if base == "" {
		base = project.ID.String()
	}
	if name := strings.TrimSpace(project.Name); name != "" {
		base = base + " - " + name
	}
	base = sanitizeSheetName(base)

	if len(base) > 31 {
		base = base[:31]
	}

	candidate := base
	counter := 2
	for {
		if _, exists := used[candidate]; !exists {
			return candidate
		}
		suffix := fmt.Sprintf("-%d", counter)
		trimmed := base
		if len(trimmed)+len(suffix) > 31 {
			trimmed = trimmed[:31-len(suffix)]
		}
		candidate = trimmed + suffix
		counter++
	}
}

func sanitizeSheetName(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "Project"
	}

	replacer := strings.NewReplacer(
		"[", "-",
		"]", "-",
		":", "-",
		"*", "-",
		"?", "-",
		"/", "-",
		"\\", "-",
	)
	value = replacer.Replace(value)
	value = strings.TrimSpace(value)
	if value == "" {
		return "Project"
	}
	return value
}

func formatDatePtr(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return dates.FormatJalali(*t)
}

func formatString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func formatDecimal(value decimal.Decimal) string {
	return value.StringFixed(2)
}

func formatDecimalPtr(value *decimal.Decimal) string {
	if value == nil {
		return ""
	}
	return value.StringFixed(2)
}

func sumAllocations(projects []model.Project, pick func(model.AllocationPools) decimal.Decimal) string {
	total := decimal.Zero
	for i := range projects {
		total = total.Add(pick(projects[i].Allocations))
	}
	return total.StringFixed(2)
}

func sumDebt(projects []model.Project) string {
	total := decimal.Zero
	for i := range projects {
		total = total.Add(projects[i].CachedTotalDebt)
	}
	return total.StringFixed(2)
}
