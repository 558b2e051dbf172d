// Package export writes analysis reports to Excel workbooks.
package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/careernexus/career-engine/internal/pipeline"
)

// ExportReport writes the analysis report to an .xlsx workbook at outputPath.
// The extension is appended when missing.
func ExportReport(report *pipeline.Report, outputPath string) error {
	if report == nil {
		return fmt.Errorf("nil report")
	}

	f := excelize.NewFile()
	defer f.Close()

	if !strings.HasSuffix(strings.ToLower(outputPath), ".xlsx") {
		outputPath = outputPath + ".xlsx"
	}
	outputPath = filepath.Clean(outputPath)

	summarySheet := "Summary"
	breakdownSheet := "Score Breakdown"
	gapSheet := "Skill Gap"
	planSheet := "Development Plan"

	f.SetSheetName("Sheet1", summarySheet)
	f.NewSheet(breakdownSheet)
	f.NewSheet(gapSheet)
	f.NewSheet(planSheet)

	if err := createSummarySheet(f, summarySheet, report); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}
	if err := createBreakdownSheet(f, breakdownSheet, report); err != nil {
		return fmt.Errorf("failed to create score breakdown sheet: %w", err)
	}
	if err := createGapSheet(f, gapSheet, report); err != nil {
		return fmt.Errorf("failed to create skill gap sheet: %w", err)
	}
	if err := createPlanSheet(f, planSheet, report); err != nil {
		return fmt.Errorf("failed to create development plan sheet: %w", err)
	}

	if err := f.SaveAs(outputPath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
}

func labelStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
}

// createSummarySheet writes the headline numbers and extracted profile stats.
func createSummarySheet(f *excelize.File, sheetName string, report *pipeline.Report) error {
	f.SetColWidth(sheetName, "A", "A", 28)
	f.SetColWidth(sheetName, "B", "B", 50)

	header, err := headerStyle(f)
	if err != nil {
		return err
	}
	label, err := labelStyle(f)
	if err != nil {
		return err
	}

	row := 1
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Resume Analysis Report")
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), header)
	f.MergeCell(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row))
	row += 2

	entries := []struct {
		label string
		value any
	}{
		{"Generated:", time.Now().Format("2006-01-02 15:04:05")},
		{"Overall Score:", fmt.Sprintf("%.2f / 100", report.OverallScore)},
		{"ATS Status:", report.ATSStatus},
		{"Primary Career:", report.PrimaryCareer.Role},
		{"Match Percentage:", fmt.Sprintf("%.2f%%", report.PrimaryCareer.MatchPercentage)},
		{"Confidence:", report.PrimaryCareer.Confidence},
		{"Alternate Roles:", strings.Join(report.AlternateRoles, ", ")},
		{"Skills Found:", report.Stats.SkillsCount},
		{"ATS Keywords Found:", report.Stats.KeywordsCount},
		{"Word Count:", report.Stats.WordCount},
		{"Contact Info Present:", report.Stats.HasContactInfo},
	}
	for _, e := range entries {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), e.label)
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), label)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), e.value)
		row++
	}

	row++
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Improvement Suggestions:")
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), header)
	f.MergeCell(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row))
	row++
	for i, suggestion := range report.ImprovementSuggestions {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), suggestion)
		row++
	}

	return nil
}

// createBreakdownSheet writes the four weighted components.
func createBreakdownSheet(f *excelize.File, sheetName string, report *pipeline.Report) error {
	f.SetColWidth(sheetName, "A", "A", 25)
	f.SetColWidth(sheetName, "B", "D", 15)

	header, err := headerStyle(f)
	if err != nil {
		return err
	}

	headers := []string{"Component", "Score", "Weight %", "Contribution"}
	for col, h := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+col)))
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, header)
	}

	b := report.Breakdown
	components := []struct {
		name                        string
		score, weight, contribution float64
	}{
		{"Skill Relevance", b.SkillRelevance.Score, b.SkillRelevance.Weight, b.SkillRelevance.Contribution},
		{"Keywords & ATS", b.KeywordsATS.Score, b.KeywordsATS.Weight, b.KeywordsATS.Contribution},
		{"Projects & Experience", b.ProjectsExperience.Score, b.ProjectsExperience.Weight, b.ProjectsExperience.Contribution},
		{"Structure", b.Structure.Score, b.Structure.Weight, b.Structure.Contribution},
	}
	for i, c := range components {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), c.name)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), c.score)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), c.weight)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), c.contribution)
	}

	totalRow := len(components) + 2
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", totalRow), "Overall")
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", totalRow), b.OverallScore)

	return nil
}

// createGapSheet writes matched and missing skills for the primary career.
func createGapSheet(f *excelize.File, sheetName string, report *pipeline.Report) error {
	f.SetColWidth(sheetName, "A", "B", 30)

	header, err := headerStyle(f)
	if err != nil {
		return err
	}

	if report.SkillGap == nil {
		f.SetCellValue(sheetName, "A1", "No skill gap analysis available")
		return nil
	}
	g := report.SkillGap

	headers := []string{"Skill", "Status"}
	for col, h := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+col)))
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, header)
	}

	row := 2
	for _, skill := range g.MatchedSkills {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), skill)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), "Matched")
		row++
	}
	for _, skill := range g.MissingCritical {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), skill)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), "Missing (critical)")
		row++
	}
	for _, skill := range g.MissingNiceToHave {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), skill)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), "Missing (nice to have)")
		row++
	}

	row++
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Gap Percentage")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), g.GapPercentage)
	row++
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Skill Match Percentage")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), g.SkillMatchPercentage)

	return nil
}

// createPlanSheet writes the prioritized learning recommendations.
func createPlanSheet(f *excelize.File, sheetName string, report *pipeline.Report) error {
	f.SetColWidth(sheetName, "A", "A", 20)
	f.SetColWidth(sheetName, "B", "B", 10)
	f.SetColWidth(sheetName, "C", "C", 30)
	f.SetColWidth(sheetName, "D", "D", 60)

	header, err := headerStyle(f)
	if err != nil {
		return err
	}

	if report.SkillDevelopmentPlan == nil {
		f.SetCellValue(sheetName, "A1", "No development plan available")
		return nil
	}
	plan := report.SkillDevelopmentPlan

	headers := []string{"Skill", "Priority", "Reason", "Suggested Action"}
	for col, h := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+col)))
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, header)
	}

	for i, rec := range plan.Recommendations {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), rec.Skill)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), rec.Priority)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), rec.Reason)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), rec.SuggestedAction)
	}

	row := len(plan.Recommendations) + 3
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Timeline")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), plan.Timeline)
	row += 2
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Next Steps")
	for i, step := range plan.NextSteps {
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row+i), step)
	}

	return nil
}
