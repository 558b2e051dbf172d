package gap

import (
	"fmt"
	"strings"

	"github.com/careernexus/career-engine/internal/parsing"
)

const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"

	maxCriticalRecommendations   = 5
	maxNiceToHaveRecommendations = 3
)

// Recommendation is one prioritized learning item.
type Recommendation struct {
	Skill           string `json:"skill"`
	Priority        string `json:"priority"`
	Reason          string `json:"reason"`
	SuggestedAction string `json:"suggested_action"`
}

// DevelopmentPlan is a structured learning plan derived from an Analysis.
type DevelopmentPlan struct {
	Timeline           string           `json:"timeline"`
	TotalSkillsToLearn int              `json:"total_skills_to_learn"`
	Recommendations    []Recommendation `json:"recommendations"`
	NextSteps          []string         `json:"next_steps"`
}

// LearningRecommendations returns up to five high-priority items for critical
// skills followed by up to three medium-priority items for nice-to-have
// skills. Inputs are expected in the display order produced by AnalyzeGap.
func LearningRecommendations(missingCritical, missingNiceToHave []string) []Recommendation {
	var recs []Recommendation
	for _, skill := range capSlice(missingCritical, maxCriticalRecommendations) {
		recs = append(recs, Recommendation{
			Skill:           skill,
			Priority:        PriorityHigh,
			Reason:          "Required for the role",
			SuggestedAction: learningAction(strings.ToLower(skill)),
		})
	}
	for _, skill := range capSlice(missingNiceToHave, maxNiceToHaveRecommendations) {
		recs = append(recs, Recommendation{
			Skill:           skill,
			Priority:        PriorityMedium,
			Reason:          "Enhances your competitiveness",
			SuggestedAction: learningAction(strings.ToLower(skill)),
		})
	}
	return recs
}

// DevelopmentPlanFor builds the plan for a completed gap analysis. Timeline
// scales with how many critical skills are missing.
func DevelopmentPlanFor(analysis Analysis) DevelopmentPlan {
	critical := analysis.MissingCritical
	niceToHave := analysis.MissingNiceToHave

	var timeline string
	switch {
	case len(critical) >= 5:
		timeline = "3-6 months intensive learning"
	case len(critical) >= 2:
		timeline = "2-3 months focused learning"
	default:
		timeline = "1-2 months skill development"
	}

	return DevelopmentPlan{
		Timeline:           timeline,
		TotalSkillsToLearn: len(critical) + len(niceToHave),
		Recommendations:    LearningRecommendations(critical, niceToHave),
		NextSteps: []string{
			"Start with high-priority skills first",
			"Build practical projects to demonstrate each skill",
			"Update your resume as you learn new skills",
			"Consider getting certifications for critical skills",
		},
	}
}

// actionGroup maps a family of skills to a suggested-action template. The
// skill placeholder is formatted per group (title case, or upper case for
// acronym-heavy groups like cloud platforms and databases).
type actionGroup struct {
	skills   []string
	template string
	upper    bool
	verbatim bool
}

var actionGroups = []actionGroup{
	{skills: []string{"python", "java", "javascript", "typescript"},
		template: "Complete online course on %s and build 2-3 projects"},
	{skills: []string{"react", "angular", "vue", "django", "flask", "spring boot"},
		template: "Take %s tutorial and build a full-stack application"},
	{skills: []string{"pandas", "numpy", "tensorflow", "pytorch", "scikit-learn"},
		template: "Learn %s through practical data projects on Kaggle"},
	{skills: []string{"aws", "azure", "gcp"},
		template: "Get %s certification (Cloud Practitioner or Associate level)", upper: true},
	{skills: []string{"docker", "kubernetes", "jenkins"},
		template: "Complete hands-on %s labs and deploy a sample application"},
	{skills: []string{"sql", "mongodb", "postgresql", "mysql"},
		template: "Practice %s queries and database design on LeetCode/HackerRank", upper: true},
	{skills: []string{"tableau", "power bi"},
		template: "Create 3 interactive dashboards using %s with real datasets"},
	{skills: []string{"communication", "leadership", "teamwork"},
		template: "Develop %s through team projects and public speaking practice", verbatim: true},
}

func learningAction(skill string) string {
	for _, g := range actionGroups {
		for _, s := range g.skills {
			if skill != s {
				continue
			}
			name := parsing.Title(skill)
			if g.upper {
				name = strings.ToUpper(skill)
			} else if g.verbatim {
				name = skill
			}
			return fmt.Sprintf(g.template, name)
		}
	}
	return fmt.Sprintf("Learn %s through online courses and practical projects", parsing.Title(skill))
}

func capSlice(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
