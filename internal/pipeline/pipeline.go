// Package pipeline wires extraction, parsing, scoring, matching and gap
// analysis into a single resume analysis. One call is one independent
// computation: the Engine holds only immutable taxonomy-derived state and is
// safe for concurrent use.
package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/careernexus/career-engine/internal/extraction"
	"github.com/careernexus/career-engine/internal/gap"
	"github.com/careernexus/career-engine/internal/matching"
	"github.com/careernexus/career-engine/internal/parsing"
	"github.com/careernexus/career-engine/internal/roadmap"
	"github.com/careernexus/career-engine/internal/scoring"
	"github.com/careernexus/career-engine/internal/taxonomy"
)

// Report is the full analysis for one resume, the shape an HTTP response or
// an exported workbook consumes. SkillGap and SkillDevelopmentPlan are nil
// when the primary career is the fallback role: there is no meaningful gap
// against a role nobody matched.
type Report struct {
	Skills                 []string             `json:"skills"`
	Keywords               []string             `json:"keywords"`
	Education              []string             `json:"education"`
	Projects               []string             `json:"projects"`
	Experience             []string             `json:"experience"`
	Stats                  parsing.Stats        `json:"stats"`
	OverallScore           float64              `json:"overall_score"`
	ATSStatus              string               `json:"ats_status"`
	Breakdown              scoring.Breakdown    `json:"breakdown"`
	PrimaryCareer          matching.Match       `json:"primary_career"`
	AlternateRoles         []string             `json:"alternate_roles"`
	SkillGap               *gap.Analysis        `json:"skill_gap,omitempty"`
	SkillDevelopmentPlan   *gap.DevelopmentPlan `json:"skill_development_plan,omitempty"`
	ImprovementSuggestions []string             `json:"improvement_suggestions"`
}

// Engine runs the full analysis pipeline over a shared taxonomy.
type Engine struct {
	tax       *taxonomy.Taxonomy
	extractor *parsing.Extractor
	matcher   *matching.Matcher
	analyzer  *gap.Analyzer
}

// New builds an Engine. Skill patterns are compiled once here, not per call.
func New(tax *taxonomy.Taxonomy) *Engine {
	return &Engine{
		tax:       tax,
		extractor: parsing.NewExtractor(tax),
		matcher:   matching.New(tax),
		analyzer:  gap.New(tax),
	}
}

// Analyze extracts text from the PDF at path and runs the full pipeline.
// Extraction failure aborts the whole analysis; nothing downstream can run
// without text.
func (e *Engine) Analyze(path string) (*Report, error) {
	text, err := extraction.Extract(path)
	if err != nil {
		return nil, err
	}
	return e.AnalyzeText(text), nil
}

// AnalyzeText runs everything downstream of extraction. It never fails:
// sparse input produces a well-formed, legitimately low-scoring report.
func (e *Engine) AnalyzeText(text string) *Report {
	profile := e.extractor.Parse(text)
	breakdown := scoring.Score(profile)
	primary := e.matcher.PrimaryCareer(profile.Skills)

	report := &Report{
		Skills:                 profile.Skills,
		Keywords:               profile.Keywords,
		Education:              profile.Education,
		Projects:               profile.Projects,
		Experience:             profile.Experience,
		Stats:                  profile.Stats,
		OverallScore:           breakdown.OverallScore,
		ATSStatus:              breakdown.ATSStatus,
		Breakdown:              breakdown,
		PrimaryCareer:          primary,
		AlternateRoles:         e.matcher.AlternateRoles(profile.Skills),
		ImprovementSuggestions: scoring.Suggestions(breakdown),
	}

	if primary.Role != matching.FallbackRole {
		analysis, err := e.analyzer.AnalyzeGap(profile.Skills, primary.Role)
		if err == nil {
			plan := gap.DevelopmentPlanFor(analysis)
			report.SkillGap = &analysis
			report.SkillDevelopmentPlan = &plan
		}
	}
	return report
}

// Roadmap builds a career roadmap from a finished report. The primary match
// percentage stands in for both confidence and readiness; missing skills and
// strengths come from the report's gap analysis when one was produced.
func (e *Engine) Roadmap(report *Report, path, experienceLevel string) *roadmap.Roadmap {
	in := roadmap.Input{
		Career:          report.PrimaryCareer.Role,
		ExperienceLevel: experienceLevel,
		Path:            path,
		Confidence:      report.PrimaryCareer.MatchPercentage,
		ResumeScore:     report.OverallScore,
		ReadinessScore:  report.PrimaryCareer.MatchPercentage,
	}
	if report.SkillGap != nil {
		in.MissingSkills = append(append([]string{}, report.SkillGap.MissingCritical...),
			report.SkillGap.MissingNiceToHave...)
		in.StrengthSkills = report.SkillGap.MatchedSkills
	}
	return roadmap.Build(in)
}

// BatchResult pairs one input path with its analysis or failure.
type BatchResult struct {
	Path   string  `json:"path"`
	Report *Report `json:"report,omitempty"`
	Err    error   `json:"-"`
}

// AnalyzeBatch analyzes many resumes concurrently, at most limit at a time
// (limit <= 0 means no bound). Per-file failures are recorded in the result
// slice rather than aborting the batch; the only error returned is context
// cancellation. Results keep input order.
func (e *Engine) AnalyzeBatch(ctx context.Context, paths []string, limit int) ([]BatchResult, error) {
	results := make([]BatchResult, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report, err := e.Analyze(path)
			if err != nil {
				err = fmt.Errorf("analyze %s: %w", path, err)
			}
			results[i] = BatchResult{Path: path, Report: report, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
