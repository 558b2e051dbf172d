// Package matching ranks career roles against a candidate's extracted skills.
package matching

import (
	"math"
	"sort"
	"strings"

	"github.com/careernexus/career-engine/internal/parsing"
	"github.com/careernexus/career-engine/internal/taxonomy"
)

// Required skills dominate the match because they are non-negotiable
// job-posting criteria.
const (
	requiredWeight  = 70.0
	preferredWeight = 30.0
)

// Confidence tiers on the match percentage.
const (
	highConfidenceThreshold   = 70
	mediumConfidenceThreshold = 50
)

// Confidence labels.
const (
	ConfidenceHigh   = "High"
	ConfidenceMedium = "Medium"
	ConfidenceLow    = "Low"
)

// FallbackRole is returned when no role scores above zero or the taxonomy is
// empty.
const FallbackRole = "General Entry-Level"

// Match is the result of ranking one role against a skill set. Computed
// fresh per query; never persisted.
type Match struct {
	Role                 string   `json:"role"`
	MatchPercentage      float64  `json:"match_percentage"`
	RequiredSkillsMatch  int      `json:"required_skills_match"`
	RequiredSkillsTotal  int      `json:"required_skills_total"`
	PreferredSkillsMatch int      `json:"preferred_skills_match"`
	PreferredSkillsTotal int      `json:"preferred_skills_total"`
	MatchedSkills        []string `json:"matched_skills"`
	Confidence           string   `json:"confidence,omitempty"`
	ConfidenceMessage    string   `json:"confidence_message,omitempty"`
}

// Matcher ranks the taxonomy's roles. Safe for concurrent use.
type Matcher struct {
	tax *taxonomy.Taxonomy
}

// New creates a Matcher over the given taxonomy.
func New(tax *taxonomy.Taxonomy) *Matcher {
	return &Matcher{tax: tax}
}

// MatchRole computes the match percentage for a single role:
// (required matches / required total) * 70 + (preferred matches / preferred
// total) * 30, each term zero when its denominator is zero. The second
// return is false when the role is not in the taxonomy.
func (m *Matcher) MatchRole(skills []string, roleName string) (Match, bool) {
	role, ok := m.tax.Role(roleName)
	if !ok {
		return Match{}, false
	}

	userSkills := parsing.Lower(skills)
	userSet := make(map[string]bool, len(userSkills))
	for _, s := range userSkills {
		userSet[s] = true
	}

	requiredMatches := countMatches(role.RequiredSkills, userSet)
	preferredMatches := countMatches(role.PreferredSkills, userSet)

	var pct float64
	if len(role.RequiredSkills) > 0 {
		pct += float64(requiredMatches) / float64(len(role.RequiredSkills)) * requiredWeight
	}
	if len(role.PreferredSkills) > 0 {
		pct += float64(preferredMatches) / float64(len(role.PreferredSkills)) * preferredWeight
	}

	return Match{
		Role:                 roleName,
		MatchPercentage:      round2(pct),
		RequiredSkillsMatch:  requiredMatches,
		RequiredSkillsTotal:  len(role.RequiredSkills),
		PreferredSkillsMatch: preferredMatches,
		PreferredSkillsTotal: len(role.PreferredSkills),
		MatchedSkills:        matchedSkills(userSkills, role),
	}, true
}

// TopMatches ranks every role by match percentage, descending. Ties keep the
// taxonomy's catalog order; the stable sort makes that a defined behavior,
// not an accident of map iteration.
func (m *Matcher) TopMatches(skills []string, n int) []Match {
	matches := make([]Match, 0, len(m.tax.Roles()))
	for _, name := range m.tax.RoleNames() {
		match, _ := m.MatchRole(skills, name)
		matches = append(matches, match)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchPercentage > matches[j].MatchPercentage
	})

	if n > 0 && len(matches) > n {
		matches = matches[:n]
	}
	return matches
}

// PrimaryCareer returns the best-matching role with a confidence tier
// attached. Never fails: an empty taxonomy or an all-zero ranking yields the
// General Entry-Level fallback.
func (m *Matcher) PrimaryCareer(skills []string) Match {
	top := m.TopMatches(skills, 1)
	if len(top) == 0 || top[0].MatchPercentage == 0 {
		return Match{
			Role:              FallbackRole,
			MatchPercentage:   0,
			Confidence:        ConfidenceLow,
			ConfidenceMessage: "Add more skills to your resume for better matching.",
		}
	}

	primary := top[0]
	switch {
	case primary.MatchPercentage >= highConfidenceThreshold:
		primary.Confidence = ConfidenceHigh
		primary.ConfidenceMessage = "Excellent fit! You have most of the required skills."
	case primary.MatchPercentage >= mediumConfidenceThreshold:
		primary.Confidence = ConfidenceMedium
		primary.ConfidenceMessage = "Good fit! Some skill development needed."
	default:
		primary.Confidence = ConfidenceLow
		primary.ConfidenceMessage = "Potential fit but significant skill gaps exist."
	}
	return primary
}

// AlternateRoles returns the 2nd and 3rd best role names. Fewer ranked roles
// degrade gracefully to fewer alternates.
func (m *Matcher) AlternateRoles(skills []string) []string {
	top := m.TopMatches(skills, 3)
	var out []string
	for i := 1; i < len(top); i++ {
		out = append(out, top[i].Role)
	}
	return out
}

func countMatches(roleSkills []string, userSet map[string]bool) int {
	n := 0
	for _, s := range roleSkills {
		if userSet[s] {
			n++
		}
	}
	return n
}

// matchedSkills keeps the user's skill order and Title-Cases for display.
func matchedSkills(userSkills []string, role taxonomy.RoleRequirements) []string {
	roleSet := make(map[string]bool, len(role.RequiredSkills)+len(role.PreferredSkills))
	for _, s := range role.RequiredSkills {
		roleSet[s] = true
	}
	for _, s := range role.PreferredSkills {
		roleSet[s] = true
	}

	var out []string
	for _, s := range userSkills {
		if roleSet[strings.ToLower(s)] {
			out = append(out, parsing.Title(s))
		}
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
