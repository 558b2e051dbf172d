// Package scoring computes ATS-style resume scores from a parsed profile.
// All functions are pure and deterministic; a sparse resume scores low, it
// never errors.
package scoring

import (
	"fmt"
	"math"

	"github.com/careernexus/career-engine/internal/parsing"
)

// Weights of the four score components.
const (
	skillRelevanceWeight     = 0.40
	keywordsATSWeight        = 0.30
	projectsExperienceWeight = 0.20
	structureWeight          = 0.10
)

// Count targets and penalty floors.
const (
	skillsForFullScore   = 20
	keywordsForFullScore = 15
	minSkills            = 3
	minKeywords          = 5
	entriesForFullHalf   = 3 // projects or experience entries worth the full 50 points
)

// ATS status bands on the overall score.
const (
	atsPoorThreshold    = 40
	atsAverageThreshold = 70
)

// ATS status labels.
const (
	StatusPoor      = "Poor"
	StatusAverage   = "Average"
	StatusOptimized = "ATS-Optimized"
)

// Component is one weighted sub-score of the breakdown.
type Component struct {
	Score        float64 `json:"score"`
	Weight       float64 `json:"weight"` // percent
	Contribution float64 `json:"contribution"`
}

// Breakdown is the full scoring result for one resume.
type Breakdown struct {
	OverallScore       float64   `json:"overall_score"`
	ATSStatus          string    `json:"ats_status"`
	ATSMessage         string    `json:"ats_message"`
	ATSColor           string    `json:"ats_color"`
	SkillRelevance     Component `json:"skill_relevance"`
	KeywordsATS        Component `json:"keywords_ats"`
	ProjectsExperience Component `json:"projects_experience"`
	Structure          Component `json:"structure"`
}

// SkillScore rewards breadth up to a ceiling of 20 skills and penalizes
// resumes with fewer than 3 as under-specified. Range [0,100].
func SkillScore(skillsCount int) float64 {
	if skillsCount == 0 {
		return 0
	}
	score := math.Min(100, float64(skillsCount)/skillsForFullScore*100)
	if skillsCount < minSkills {
		penalty := float64(minSkills-skillsCount) * 10
		score = math.Max(0, score-penalty)
	}
	return round2(score)
}

// KeywordScore scores action-verb coverage linearly: 15 keywords = 100, with
// a floor penalty below 5. Range [0,100].
func KeywordScore(keywordsCount int) float64 {
	if keywordsCount == 0 {
		return 0
	}
	score := math.Min(100, float64(keywordsCount)/keywordsForFullScore*100)
	if keywordsCount < minKeywords {
		penalty := float64(minKeywords-keywordsCount) * 5
		score = math.Max(0, score-penalty)
	}
	return round2(score)
}

// ProjectsExperienceScore gives projects and experience 50 points each
// (3 entries = full half), with a 1.1x synergy bonus when both are present.
// Exactly zero when both are absent.
func ProjectsExperienceScore(projectsCount, experienceCount int) float64 {
	if projectsCount == 0 && experienceCount == 0 {
		return 0
	}
	projectScore := math.Min(50, float64(projectsCount)/entriesForFullHalf*50)
	experienceScore := math.Min(50, float64(experienceCount)/entriesForFullHalf*50)
	total := projectScore + experienceScore
	if projectsCount > 0 && experienceCount > 0 {
		total = math.Min(100, total*1.1)
	}
	return round2(total)
}

// StructureScore is an additive point budget: contact info 30, word-count
// band up to 40 (200-800 words ideal, 100-199/801-1200 acceptable, any other
// non-zero length 10), plus 15 each for having any skill and any keyword.
func StructureScore(stats parsing.Stats) float64 {
	score := 0.0
	if stats.HasContactInfo {
		score += 30
	}
	switch wc := stats.WordCount; {
	case wc >= 200 && wc <= 800:
		score += 40
	case wc >= 100 && wc < 200, wc > 800 && wc <= 1200:
		score += 25
	case wc > 0:
		score += 10
	}
	if stats.SkillsCount > 0 {
		score += 15
	}
	if stats.KeywordsCount > 0 {
		score += 15
	}
	return round2(math.Min(100, score))
}

// Score combines the four sub-scores into the weighted overall breakdown.
func Score(p *parsing.Profile) Breakdown {
	skill := SkillScore(len(p.Skills))
	keywords := KeywordScore(len(p.Keywords))
	projectsExp := ProjectsExperienceScore(len(p.Projects), len(p.Experience))
	structure := StructureScore(p.Stats)

	overall := round2(skill*skillRelevanceWeight +
		keywords*keywordsATSWeight +
		projectsExp*projectsExperienceWeight +
		structure*structureWeight)

	b := Breakdown{
		OverallScore:       overall,
		SkillRelevance:     component(skill, skillRelevanceWeight),
		KeywordsATS:        component(keywords, keywordsATSWeight),
		ProjectsExperience: component(projectsExp, projectsExperienceWeight),
		Structure:          component(structure, structureWeight),
	}

	switch {
	case overall < atsPoorThreshold:
		b.ATSStatus = StatusPoor
		b.ATSMessage = "Your resume needs significant improvement for ATS systems"
		b.ATSColor = "red"
	case overall < atsAverageThreshold:
		b.ATSStatus = StatusAverage
		b.ATSMessage = "Your resume is decent but could be optimized for ATS"
		b.ATSColor = "yellow"
	default:
		b.ATSStatus = StatusOptimized
		b.ATSMessage = "Your resume is well-optimized for ATS systems!"
		b.ATSColor = "green"
	}

	return b
}

func component(score, weight float64) Component {
	return Component{
		Score:        score,
		Weight:       weight * 100,
		Contribution: round2(score * weight),
	}
}

// Suggestion tiers: below 60 needs work, below 80 could be polished.
const (
	needsWorkThreshold = 60
	polishThreshold    = 80
	maxSuggestions     = 5
)

// Suggestions returns up to 5 improvement suggestions in priority order
// (skills, keywords, projects/experience, structure). A resume with every
// sub-score at 80 or above gets exactly one tailoring tip.
func Suggestions(b Breakdown) []string {
	var out []string

	switch {
	case b.SkillRelevance.Score < needsWorkThreshold:
		out = append(out, fmt.Sprintf(
			"Add more relevant skills to your resume. Current skill score: %g/100. Include both technical and soft skills.",
			b.SkillRelevance.Score))
	case b.SkillRelevance.Score < polishThreshold:
		out = append(out, "Expand your skills section with more specific technologies and tools you've used.")
	}

	switch {
	case b.KeywordsATS.Score < needsWorkThreshold:
		out = append(out, fmt.Sprintf(
			"Use more action verbs and result-oriented language. Current keyword score: %g/100. Include words like 'developed', 'implemented', 'improved', 'achieved'.",
			b.KeywordsATS.Score))
	case b.KeywordsATS.Score < polishThreshold:
		out = append(out, "Add more quantifiable achievements and action-oriented descriptions to improve ATS compatibility.")
	}

	switch {
	case b.ProjectsExperience.Score < needsWorkThreshold:
		out = append(out, fmt.Sprintf(
			"Add more projects and work experience. Current score: %g/100. Include at least 2-3 significant projects and any relevant work experience.",
			b.ProjectsExperience.Score))
	case b.ProjectsExperience.Score < polishThreshold:
		out = append(out, "Elaborate on your existing projects and experience with more technical details and outcomes.")
	}

	switch {
	case b.Structure.Score < needsWorkThreshold:
		out = append(out, fmt.Sprintf(
			"Improve resume structure and completeness. Current score: %g/100. Ensure you have clear sections for Education, Skills, Projects, and Experience.",
			b.Structure.Score))
	case b.Structure.Score < polishThreshold:
		out = append(out, "Round out the resume basics: contact details, a focused length, and clearly labeled sections.")
	}

	if len(out) == 0 {
		out = append(out, "Excellent resume! Consider tailoring it for specific job descriptions for even better results.")
	}
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
