package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/careernexus/career-engine/internal/gap"
	"github.com/careernexus/career-engine/internal/observability"
	"github.com/careernexus/career-engine/internal/pipeline"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <resume.pdf>",
	Short: "Analyze a resume PDF end-to-end",
	Long:  "Extract text from a resume PDF, score it, match it to career roles, and report the skill gap against the primary (or a chosen) career role.",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

var (
	analyzeRole    string
	analyzeJSON    bool
	analyzeVerbose bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeRole, "role", "r", "", "Target career role for gap analysis (defaults to the best match)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the full report as JSON")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print the full boxed report instead of the summary")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, args []string) error {
	tax, err := loadTaxonomy()
	if err != nil {
		return err
	}

	engine := pipeline.New(tax)
	report, err := engine.Analyze(args[0])
	if err != nil {
		return fmt.Errorf("failed to analyze resume: %w", err)
	}

	// A --role override replaces the gap section computed for the primary match.
	if analyzeRole != "" {
		analysis, err := gap.New(tax).AnalyzeGap(report.Skills, analyzeRole)
		if err != nil {
			return err
		}
		plan := gap.DevelopmentPlanFor(analysis)
		report.SkillGap = &analysis
		report.SkillDevelopmentPlan = &plan
	}

	return printReport(report, analyzeJSON, analyzeVerbose)
}

func printReport(report *pipeline.Report, asJSON, verbose bool) error {
	if asJSON {
		jsonBytes, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}

	if verbose {
		observability.NewPrinter(os.Stdout).PrintReport(report)
		return nil
	}

	_, _ = fmt.Fprintf(os.Stdout, "Overall score:  %.2f / 100 (%s)\n", report.OverallScore, report.ATSStatus)
	_, _ = fmt.Fprintf(os.Stdout, "Primary career: %s (%.1f%% match, %s confidence)\n",
		report.PrimaryCareer.Role, report.PrimaryCareer.MatchPercentage, report.PrimaryCareer.Confidence)
	if report.SkillGap != nil {
		_, _ = fmt.Fprintf(os.Stdout, "Skill gap:      %.1f%% (%d skills to learn)\n",
			report.SkillGap.GapPercentage, report.SkillGap.MissingCount)
	}
	for _, suggestion := range report.ImprovementSuggestions {
		_, _ = fmt.Fprintf(os.Stdout, "  - %s\n", suggestion)
	}
	return nil
}
