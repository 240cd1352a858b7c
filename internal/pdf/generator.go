package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/omranyar/portfolio-engine/internal/dates"
	"github.com/omranyar/portfolio-engine/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

// Generate renders the approval memo for a funding request. Only approved
// and archived requests carry a settled amount; earlier states render with
// the latest suggestion instead.
func (g *Generator) Generate(request model.FundingRequest, project model.Project) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, "Funding Request Memo", "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Request %s, status: %s", shortID(request.ID.String()), statusLabel(request.Status)), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Issued %s", formatDate(request.CreatedAt)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Project", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)
	for _, line := range []string{
		fmt.Sprintf("Code: %s", project.ProjectID),
		fmt.Sprintf("Name: %s", safeValue(project.Name)),
		fmt.Sprintf("Province: %s", string(project.Province)),
		fmt.Sprintf("City: %s", safeValue(project.City)),
		fmt.Sprintf("Status: %s", string(project.OverallStatus)),
	} {
		pdf.MultiCell(0, 5, line, "", "L", false)
	}
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Amounts", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)

	headers := []string{"Stage", "Amount (IRR)"}
	colWidths := []float64{90, 80}
	drawTableRow(pdf, g.fontName, headers, colWidths, true)
	drawTableRow(pdf, g.fontName, []string{"Province suggestion", formatAmount(request.ProvinceSuggestedAmount)}, colWidths, false)
	drawTableRow(pdf, g.fontName, []string{"Headquarters suggestion", formatAmountPtr(request.HeadquartersSuggestedAmount)}, colWidths, false)
	drawTableRow(pdf, g.fontName, []string{"Final approved", formatAmountPtr(request.FinalAmount)}, colWidths, false)
	pdf.Ln(2)

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, fmt.Sprintf("Priority: %s", priorityLabel(request.Priority)), "", 1, "L", false, 0, "")
	if request.SubmittedAt != nil {
		pdf.CellFormat(0, 6, fmt.Sprintf("Submitted: %s", formatDate(*request.SubmittedAt)), "", 1, "L", false, 0, "")
	}
	if request.ApprovedAt != nil {
		pdf.CellFormat(0, 6, fmt.Sprintf("Approved: %s", formatDate(*request.ApprovedAt)), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	addDescriptionBlock(pdf, g.fontName, "Province justification", request.ProvinceDescription)
	addDescriptionBlock(pdf, g.fontName, "Expert assessment", request.ExpertDescription)

	pdf.Ln(4)
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Signatures", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	signatureBlock(pdf, g.fontName, "Province manager")
	signatureBlock(pdf, g.fontName, "Headquarters expert")
	signatureBlock(pdf, g.fontName, "Chief executive")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addDescriptionBlock(pdf *gofpdf.Fpdf, fontName, title, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont(fontName, "", 10)
	pdf.MultiCell(0, 5, body, "", "L", false)
	pdf.Ln(2)
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, cols []string, widths []float64, header bool) {
	style := ""
	if header {
		style = "B"
	}
	pdf.SetFont(fontName, style, 10)
	for i, col := range cols {
		align := "L"
		if i > 0 {
			align = "R"
		}
		pdf.CellFormat(widths[i], 8, col, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)
}

func signatureBlock(pdf *gofpdf.Fpdf, fontName, label string) {
	pdf.SetFont(fontName, "", 11)
	pdf.CellFormat(0, 8, fmt.Sprintf("%s: ______________________", label), "", 1, "L", false, 0, "")
}

func statusLabel(status model.FundingStatus) string {
	return strings.ReplaceAll(string(status), "_", " ")
}

func priorityLabel(priority model.FundingPriority) string {
	return strings.ReplaceAll(string(priority), "_", " ")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func formatAmount(value decimal.Decimal) string {
	return value.StringFixed(0)
}

func formatAmountPtr(value *decimal.Decimal) string {
	if value == nil {
		return "-"
	}
	return value.StringFixed(0)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return dates.FormatJalali(t)
}
