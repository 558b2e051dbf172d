package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/careernexus/career-engine/internal/gap"
	"github.com/careernexus/career-engine/internal/matching"
	"github.com/careernexus/career-engine/internal/pipeline"
	"github.com/careernexus/career-engine/internal/roadmap"
	"github.com/careernexus/career-engine/internal/scoring"
)

func sampleReport() *pipeline.Report {
	return &pipeline.Report{
		Skills:       []string{"Python", "Sql", "Excel"},
		OverallScore: 72.5,
		ATSStatus:    "Average",
		Breakdown: scoring.Breakdown{
			OverallScore:       72.5,
			ATSStatus:          "Average",
			SkillRelevance:     scoring.Component{Score: 80, Weight: 40, Contribution: 32},
			KeywordsATS:        scoring.Component{Score: 60, Weight: 30, Contribution: 18},
			ProjectsExperience: scoring.Component{Score: 75, Weight: 20, Contribution: 15},
			Structure:          scoring.Component{Score: 75, Weight: 10, Contribution: 7.5},
		},
		PrimaryCareer: matching.Match{
			Role:              "Data Analyst",
			MatchPercentage:   61.0,
			Confidence:        matching.ConfidenceMedium,
			ConfidenceMessage: "Good fit! Some skill development needed.",
		},
		AlternateRoles: []string{"Business Analyst", "Data Scientist"},
		SkillGap: &gap.Analysis{
			TargetRole:           "Data Analyst",
			GapPercentage:        40,
			SkillMatchPercentage: 60,
			MissingCritical:      []string{"Power Bi", "Statistics", "Tableau"},
			StrengthAreas:        []string{"Strong programming foundation"},
		},
		SkillDevelopmentPlan: &gap.DevelopmentPlan{
			Timeline: "2-3 months focused learning",
		},
		ImprovementSuggestions: []string{"Add more relevant technical skills to your resume"},
	}
}

func TestPrintScoreBreakdown(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoreBreakdown(sampleReport())
	output := buf.String()

	assert.Contains(t, output, "RESUME SCORE")
	assert.Contains(t, output, "72.50")
	assert.Contains(t, output, "Average")
	assert.Contains(t, output, "weight 40%")
}

func TestPrintScoreBreakdown_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoreBreakdown(nil)

	assert.Empty(t, buf.String())
}

func TestPrintCareerMatch(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCareerMatch(sampleReport())
	output := buf.String()

	assert.Contains(t, output, "CAREER MATCH")
	assert.Contains(t, output, "Data Analyst")
	assert.Contains(t, output, "61.00%")
	assert.Contains(t, output, "Medium")
	assert.Contains(t, output, "Business Analyst")
	assert.Contains(t, output, "Python, Sql, Excel")
}

func TestPrintSkillGap(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkillGap(sampleReport())
	output := buf.String()

	assert.Contains(t, output, "SKILL GAP")
	assert.Contains(t, output, "Power Bi")
	assert.Contains(t, output, "Strong programming foundation")
	assert.Contains(t, output, "2-3 months focused learning")
}

func TestPrintSkillGap_NoGapAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := sampleReport()
	report.SkillGap = nil
	p.PrintSkillGap(report)

	assert.Empty(t, buf.String())
}

func TestPrintRoadmap(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	r := roadmap.Build(roadmap.Input{
		Career:         "Data Analyst",
		MissingSkills:  []string{"Power BI", "Tableau"},
		Path:           roadmap.PathPlacement,
		Confidence:     82,
		ResumeScore:    65,
		ReadinessScore: 58,
	})
	p.PrintRoadmap(r)
	output := buf.String()

	assert.Contains(t, output, "CAREER ROADMAP")
	assert.Contains(t, output, "Data Analyst")
	assert.Contains(t, output, "Foundation Phase [open]")
	assert.Contains(t, output, "Portfolio Phase [locked]")
	assert.Contains(t, output, "XP: 0 /")
}

func TestPrintSuggestions_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSuggestions(nil)
	output := buf.String()

	assert.Contains(t, output, "NO IMPROVEMENT SUGGESTIONS")
}

func TestPrintSuggestions_Truncated(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	long := strings.Repeat("improve everything about this resume ", 3)
	p.PrintSuggestions([]string{long})
	output := buf.String()

	assert.Contains(t, output, "IMPROVEMENT SUGGESTIONS")
	assert.Contains(t, output, "...")
}

func TestPrintBox_Characters(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoreBreakdown(sampleReport())
	output := buf.String()

	assert.True(t, strings.Contains(output, "┌"))
	assert.True(t, strings.Contains(output, "└"))
	assert.True(t, strings.Contains(output, "│"))
}
