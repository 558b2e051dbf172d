// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/careernexus/career-engine/internal/pipeline"
	"github.com/careernexus/career-engine/internal/roadmap"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoreBreakdown outputs the overall score and per-component breakdown.
func (p *Printer) PrintScoreBreakdown(report *pipeline.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:  %.2f / 100 (%s)\n", report.OverallScore, report.ATSStatus))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Skills:       %6.2f  (weight %.0f%%)\n",
		report.Breakdown.SkillRelevance.Score, report.Breakdown.SkillRelevance.Weight))
	sb.WriteString(fmt.Sprintf("Keywords:     %6.2f  (weight %.0f%%)\n",
		report.Breakdown.KeywordsATS.Score, report.Breakdown.KeywordsATS.Weight))
	sb.WriteString(fmt.Sprintf("Experience:   %6.2f  (weight %.0f%%)\n",
		report.Breakdown.ProjectsExperience.Score, report.Breakdown.ProjectsExperience.Weight))
	sb.WriteString(fmt.Sprintf("Structure:    %6.2f  (weight %.0f%%)",
		report.Breakdown.Structure.Score, report.Breakdown.Structure.Weight))

	p.printBox("RESUME SCORE", sb.String())
}

// PrintCareerMatch outputs the primary career match and alternates.
func (p *Printer) PrintCareerMatch(report *pipeline.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Primary:     %s (%.2f%%)\n",
		report.PrimaryCareer.Role, report.PrimaryCareer.MatchPercentage))
	sb.WriteString(fmt.Sprintf("Confidence:  %s\n", report.PrimaryCareer.Confidence))
	sb.WriteString(fmt.Sprintf("  %s\n", report.PrimaryCareer.ConfidenceMessage))

	if len(report.AlternateRoles) > 0 {
		sb.WriteString("\nAlternates:\n")
		for _, role := range report.AlternateRoles {
			sb.WriteString(fmt.Sprintf("  • %s\n", role))
		}
	}

	if len(report.Skills) > 0 {
		skills := strings.Join(report.Skills, ", ")
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nSkills found: %s", skills))
	}

	p.printBox("CAREER MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSkillGap outputs the gap analysis and development plan summary.
func (p *Printer) PrintSkillGap(report *pipeline.Report) {
	if report == nil || report.SkillGap == nil {
		return
	}
	g := report.SkillGap

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Target role:  %s\n", g.TargetRole))
	sb.WriteString(fmt.Sprintf("Match:        %.2f%%  (gap %.2f%%)\n", g.SkillMatchPercentage, g.GapPercentage))
	sb.WriteString("\n")

	if len(g.MissingCritical) > 0 {
		sb.WriteString("Critical gaps:\n")
		count := min(len(g.MissingCritical), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", g.MissingCritical[i]))
		}
		if len(g.MissingCritical) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(g.MissingCritical)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(g.StrengthAreas) > 0 {
		sb.WriteString("Strengths:\n")
		count := min(len(g.StrengthAreas), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", g.StrengthAreas[i]))
		}
	}

	if report.SkillDevelopmentPlan != nil {
		sb.WriteString(fmt.Sprintf("\nTimeline: %s", report.SkillDevelopmentPlan.Timeline))
	}

	p.printBox("SKILL GAP", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRoadmap outputs the phase plan with lock state and progress.
func (p *Printer) PrintRoadmap(r *roadmap.Roadmap) {
	if r == nil || len(r.Phases) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Career:  %s  (path: %s)\n", r.Career, r.Path))
	sb.WriteString(fmt.Sprintf("Health:  %s\n", r.Health.Status))
	sb.WriteString("\n")

	for i, phase := range r.Phases {
		state := "open"
		if phase.Locked {
			state = "locked"
		}
		sb.WriteString(fmt.Sprintf("%d. %s [%s]\n", phase.Number, phase.Name, state))
		sb.WriteString(fmt.Sprintf("   %d/%d tasks, %.0f%%\n",
			phase.CompletedTasks, len(phase.Tasks), phase.ProgressPercent))
		if i < len(r.Phases)-1 {
			sb.WriteString("\n")
		}
	}

	sb.WriteString(fmt.Sprintf("\nXP: %d / %d", r.Stats.CurrentXP, r.Stats.TotalXP))

	p.printBox("CAREER ROADMAP", sb.String())
}

// PrintSuggestions outputs improvement suggestions, if any.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintSuggestions(suggestions []string) {
	if len(suggestions) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO IMPROVEMENT SUGGESTIONS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d suggestions:\n\n", len(suggestions)))

	for i, s := range suggestions {
		if len(s) > 50 {
			s = s[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", s))
		if i < len(suggestions)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("IMPROVEMENT SUGGESTIONS", sb.String())
}

// PrintReport prints the complete analysis, section by section.
func (p *Printer) PrintReport(report *pipeline.Report) {
	if report == nil {
		return
	}
	p.PrintScoreBreakdown(report)
	p.PrintCareerMatch(report)
	p.PrintSkillGap(report)
	p.PrintSuggestions(report.ImprovementSuggestions)
}
