// Package gap diffs a candidate's skills against a target role's
// requirements and turns the result into a prioritized development plan.
package gap

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/careernexus/career-engine/internal/parsing"
	"github.com/careernexus/career-engine/internal/taxonomy"
)

// UnknownRoleError indicates the target role is not in the taxonomy. It is a
// soft failure: callers surface "no gap data available" rather than aborting
// the whole report.
type UnknownRoleError struct {
	Role string
}

func (e *UnknownRoleError) Error() string {
	return fmt.Sprintf("role %q not found", e.Role)
}

// Analysis is the result of one gap analysis.
// GapPercentage and SkillMatchPercentage always sum to 100: the latter is
// derived from the former, never computed independently.
type Analysis struct {
	TargetRole           string   `json:"target_role"`
	MatchedSkills        []string `json:"matched_skills"`
	MatchedCount         int      `json:"matched_count"`
	MissingCritical      []string `json:"missing_critical"`
	MissingNiceToHave    []string `json:"missing_nice_to_have"`
	MissingCount         int      `json:"missing_count"`
	GapPercentage        float64  `json:"gap_percentage"`
	SkillMatchPercentage float64  `json:"skill_match_percentage"`
	StrengthAreas        []string `json:"strength_areas"`
}

// Analyzer performs gap analysis against a taxonomy. Safe for concurrent use.
type Analyzer struct {
	tax *taxonomy.Taxonomy
}

// New creates an Analyzer over the given taxonomy.
func New(tax *taxonomy.Taxonomy) *Analyzer {
	return &Analyzer{tax: tax}
}

// AnalyzeGap diffs the user's skills against the target role's required and
// preferred sets. Missing required skills are critical; missing preferred
// skills are nice-to-have. Returns *UnknownRoleError for roles outside the
// taxonomy.
func (a *Analyzer) AnalyzeGap(skills []string, targetRole string) (Analysis, error) {
	role, ok := a.tax.Role(targetRole)
	if !ok {
		return Analysis{TargetRole: targetRole}, &UnknownRoleError{Role: targetRole}
	}

	userSet := make(map[string]bool, len(skills))
	for _, s := range parsing.Lower(skills) {
		userSet[s] = true
	}

	matchedRequired, missingRequired := partition(role.RequiredSkills, userSet)
	matchedPreferred, missingPreferred := partition(role.PreferredSkills, userSet)

	matched := append(matchedRequired, matchedPreferred...)

	totalRequirement := len(role.RequiredSkills) + len(role.PreferredSkills)
	var gapPct float64
	if totalRequirement > 0 {
		gapPct = round2(float64(totalRequirement-len(matched)) / float64(totalRequirement) * 100)
	}

	return Analysis{
		TargetRole:           targetRole,
		MatchedSkills:        titleSorted(matched),
		MatchedCount:         len(matched),
		MissingCritical:      titleSorted(missingRequired),
		MissingNiceToHave:    titleSorted(missingPreferred),
		MissingCount:         len(missingRequired) + len(missingPreferred),
		GapPercentage:        gapPct,
		SkillMatchPercentage: round2(100 - gapPct),
		StrengthAreas:        strengthAreas(matched),
	}, nil
}

func partition(roleSkills []string, userSet map[string]bool) (matched, missing []string) {
	for _, s := range roleSkills {
		if userSet[s] {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}
	return matched, missing
}

func titleSorted(skills []string) []string {
	out := make([]string, len(skills))
	for i, s := range skills {
		out[i] = parsing.Title(s)
	}
	sort.Strings(out)
	return out
}

// strengthRule labels a capability area when any of its skills matched.
type strengthRule struct {
	label  string
	skills []string
}

// Rules apply independently and in order; a profile can earn several labels.
var strengthRules = []strengthRule{
	{"Strong programming foundation", []string{"python", "java", "javascript", "c++", "c#", "typescript"}},
	{"Solid data analysis capabilities", []string{"sql", "pandas", "numpy", "data analysis", "statistics"}},
	{"Advanced machine learning expertise", []string{"machine learning", "deep learning", "tensorflow", "pytorch"}},
	{"Proficient in web development", []string{"react", "angular", "vue", "node.js", "html", "css"}},
	{"Cloud infrastructure knowledge", []string{"aws", "azure", "gcp", "docker", "kubernetes"}},
	{"Excellent soft skills and collaboration", []string{"communication", "leadership", "teamwork", "project management"}},
}

const fallbackStrength = "Developing technical expertise"

func strengthAreas(matched []string) []string {
	matchedSet := make(map[string]bool, len(matched))
	for _, s := range matched {
		matchedSet[strings.ToLower(s)] = true
	}

	var out []string
	for _, rule := range strengthRules {
		for _, s := range rule.skills {
			if matchedSet[s] {
				out = append(out, rule.label)
				break
			}
		}
	}
	if len(out) == 0 {
		out = []string{fallbackStrength}
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
