package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"
	"p9e.in/abpts/config"
	"p9e.in/abpts/models"
	"p9e.in/abpts/utils"
)

// recommendations is the fixed advisory block closing every weekly
// report. The wording is part of the report contract; do not edit
// casually.
var recommendations = []string{
	"Focus on opportunities with urgent deadlines to ensure timely submissions",
	"Review non-compliant items to improve overall compliance rate",
	"Allocate resources to high-priority opportunities in drafting stage",
	"Monitor portal access for timely RFP updates",
}

// ExportPortfolioToExcel exports the opportunity portfolio and its
// summary statistics as a two-sheet workbook
func ExportPortfolioToExcel(w http.ResponseWriter, r *http.Request) {
	var opportunities []models.Opportunity
	if err := config.DB.Order("created_at").Find(&opportunities).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	now := time.Now()
	summary := utils.Summarize(opportunities, now)

	excelFile, err := buildPortfolioWorkbook(summary, opportunities)
	if err != nil {
		http.Error(w, "Failed to generate Excel file", http.StatusInternalServerError)
		return
	}

	buffer, err := excelFile.WriteToBuffer()
	if err != nil {
		http.Error(w, "Failed to write Excel file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("ABPTS_Data_%s.xlsx", now.Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))

	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

// GeneratePortfolioReport renders the weekly stakeholder report as a PDF
func GeneratePortfolioReport(w http.ResponseWriter, r *http.Request) {
	var opportunities []models.Opportunity
	if err := config.DB.Order("created_at").Find(&opportunities).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	now := time.Now()
	summary := utils.Summarize(opportunities, now)

	pdfData, err := buildWeeklyReport(summary, opportunities, now)
	if err != nil {
		http.Error(w, "Failed to generate PDF file: "+err.Error(), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("ABPTS_Report_%s.pdf", now.Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(pdfData)))

	w.WriteHeader(http.StatusOK)
	w.Write(pdfData)
}

// buildWeeklyReport renders the fixed-section stakeholder report. Pure
// function of its inputs plus the supplied clock: the clock only feeds
// the header date and the embedded PDF metadata dates, so identical
// inputs on the same day produce identical bytes.
//
// Layout is A4 portrait in millimetres. Sections flow down the page and
// break onto a fresh page (without repeating headers) whenever the
// cursor passes the page-height guard.
func buildWeeklyReport(summary models.StatisticsSummary, opportunities []models.Opportunity, now time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(now)
	pdf.SetModificationDate(now)
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 20)
	title := "ABPTS Weekly Report"
	pdf.Text(105-pdf.GetStringWidth(title)/2, 20, title)

	pdf.SetFont("Helvetica", "", 12)
	generated := fmt.Sprintf("Generated: %s", now.Format("1/2/2006"))
	pdf.Text(105-pdf.GetStringWidth(generated)/2, 30, generated)

	// Executive Summary
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(20, 45, "Executive Summary")

	pdf.SetFont("Helvetica", "", 11)
	yPos := 55.0
	pdf.Text(20, yPos, fmt.Sprintf("Total Opportunities: %d", summary.TotalOpportunities))
	yPos += 8
	pdf.Text(20, yPos, fmt.Sprintf("Win Rate: %d%%", summary.WinRate))
	yPos += 8
	pdf.Text(20, yPos, fmt.Sprintf("Average Compliance: %d%%", summary.AverageCompliance))
	yPos += 8
	pdf.Text(20, yPos, fmt.Sprintf("Urgent Deadlines: %d", summary.UrgentDeadlines))
	yPos += 15

	// Status Breakdown
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(20, yPos, "Opportunities by Status")
	yPos += 10

	pdf.SetFont("Helvetica", "", 11)
	for _, status := range sortedStatuses(summary.StatusCounts) {
		pdf.Text(25, yPos, fmt.Sprintf("%s: %d", status, summary.StatusCounts[status]))
		yPos += 8
	}
	yPos += 10

	// Active Opportunities: first 10 not yet resolved to Won/Lost, in
	// collection order. Submitted opportunities still count as active
	// here, unlike in the urgency predicates.
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(20, yPos, "Active Opportunities")
	yPos += 10

	pdf.SetFont("Helvetica", "", 10)
	for _, opp := range activeOpportunities(opportunities, 10) {
		if yPos > 270 {
			pdf.AddPage()
			yPos = 20
		}
		pdf.Text(25, yPos, fmt.Sprintf("- %s - %s", opp.Client, opp.ProjectType))
		yPos += 6
		pdf.Text(27, yPos, fmt.Sprintf("  Status: %s | Deadline: %s",
			opp.Status, opp.SubmissionDeadline.Time().Format("1/2/2006")))
		yPos += 8
	}

	// Recommendations
	yPos += 10
	if yPos > 250 {
		pdf.AddPage()
		yPos = 20
	}
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(20, yPos, "Recommendations")
	yPos += 10

	pdf.SetFont("Helvetica", "", 11)
	for _, rec := range recommendations {
		if yPos > 270 {
			pdf.AddPage()
			yPos = 20
		}
		lines := pdf.SplitText("- "+rec, 170)
		for i, line := range lines {
			pdf.Text(25, yPos+float64(i)*6, line)
		}
		yPos += float64(len(lines))*6 + 4
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// buildPortfolioWorkbook generates the two-sheet tabular export: one row
// per opportunity in collection order, then the summary restated as
// metric/value rows.
func buildPortfolioWorkbook(summary models.StatisticsSummary, opportunities []models.Opportunity) (*excelize.File, error) {
	f := excelize.NewFile()

	oppSheet := "Opportunities"
	index, err := f.NewSheet(oppSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#4472C4"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	headers := []string{
		"Client", "Project Type", "RFP Release Date", "Submission Deadline",
		"Proposal Owner", "Status", "Compliance %", "Priority", "Industry", "Budget",
	}
	for colIdx, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		f.SetCellValue(oppSheet, cell, header)
		f.SetCellStyle(oppSheet, cell, cell, headerStyle)
		col, _ := excelize.ColumnNumberToName(colIdx + 1)
		f.SetColWidth(oppSheet, col, col, 20)
	}

	for rowIdx, opp := range opportunities {
		values := []interface{}{
			opp.Client,
			opp.ProjectType,
			opp.RFPReleaseDate,
			opp.SubmissionDeadline.Time().Format("2006-01-02 15:04:05"),
			opp.ProposalOwner,
			string(opp.Status),
			opp.CompliancePercentage,
			string(opp.PriorityLevel),
			orNA(opp.Industry),
			orNA(opp.Budget),
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(oppSheet, cell, value)
		}
	}

	statsSheet := "Statistics"
	if _, err := f.NewSheet(statsSheet); err != nil {
		return nil, err
	}
	f.SetCellValue(statsSheet, "A1", "Metric")
	f.SetCellValue(statsSheet, "B1", "Value")
	f.SetCellStyle(statsSheet, "A1", "B1", headerStyle)
	f.SetColWidth(statsSheet, "A", "B", 25)

	type metricRow struct {
		metric string
		value  interface{}
	}
	rows := []metricRow{
		{"Total Opportunities", summary.TotalOpportunities},
		{"Win Rate", fmt.Sprintf("%d%%", summary.WinRate)},
		{"Average Compliance", fmt.Sprintf("%d%%", summary.AverageCompliance)},
		{"Urgent Deadlines", summary.UrgentDeadlines},
	}
	for _, status := range sortedStatuses(summary.StatusCounts) {
		rows = append(rows, metricRow{fmt.Sprintf("%s Count", status), summary.StatusCounts[status]})
	}

	for rowIdx, row := range rows {
		metricCell, _ := excelize.CoordinatesToCellName(1, rowIdx+2)
		valueCell, _ := excelize.CoordinatesToCellName(2, rowIdx+2)
		f.SetCellValue(statsSheet, metricCell, row.metric)
		f.SetCellValue(statsSheet, valueCell, row.value)
	}

	f.DeleteSheet("Sheet1")

	return f, nil
}

// activeOpportunities selects opportunities not yet resolved to Won or
// Lost, in collection order, capped at limit. Submitted opportunities
// are still active for reporting purposes even though their deadlines no
// longer drive urgency.
func activeOpportunities(opportunities []models.Opportunity, limit int) []models.Opportunity {
	active := make([]models.Opportunity, 0, limit)
	for _, opp := range opportunities {
		if opp.Status == models.StatusWon || opp.Status == models.StatusLost {
			continue
		}
		active = append(active, opp)
		if len(active) == limit {
			break
		}
	}
	return active
}

// sortedStatuses fixes an iteration order for the sparse status map so
// both artifacts come out identical run to run.
func sortedStatuses(counts map[models.OpportunityStatus]int) []models.OpportunityStatus {
	statuses := make([]models.OpportunityStatus, 0, len(counts))
	for status := range counts {
		statuses = append(statuses, status)
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i] < statuses[j] })
	return statuses
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
