// Package taxonomy provides the static skill and career-role catalogs that
// drive resume parsing, scoring, and role matching. A Taxonomy is immutable
// after construction and safe to share across concurrent requests; components
// receive it as an explicit dependency rather than reading package globals,
// so tests can substitute a smaller catalog.
package taxonomy

import (
	"fmt"
	"sort"
)

// RoleRequirements describes the skill profile of a single career role.
// Skill strings are lowercase canonical form.
type RoleRequirements struct {
	Role            string   `json:"role"`
	RequiredSkills  []string `json:"required_skills"`
	PreferredSkills []string `json:"preferred_skills"`
	Keywords        []string `json:"keywords"`
}

// Taxonomy is the immutable catalog of skills, ATS keywords, and role
// requirements. Role order is significant: it is the deterministic tie-break
// when two roles score the same match percentage.
type Taxonomy struct {
	categories  map[string][]string
	allSkills   []string
	skillSet    map[string]bool
	atsKeywords []string
	roles       []RoleRequirements
	roleIndex   map[string]int
}

// Config is the raw shape a Taxonomy is built from, either the compiled-in
// defaults or a JSON override file.
type Config struct {
	Categories  map[string][]string `json:"categories"`
	ATSKeywords []string            `json:"ats_keywords"`
	Roles       []RoleRequirements  `json:"roles"`
}

// New builds a Taxonomy from a Config. Every role must declare at least one
// required skill. Role skills that are absent from the category catalog are
// allowed (soft invariant, matching the source data).
func New(cfg Config) (*Taxonomy, error) {
	t := &Taxonomy{
		categories: make(map[string][]string, len(cfg.Categories)),
		skillSet:   make(map[string]bool),
		roleIndex:  make(map[string]int, len(cfg.Roles)),
	}

	for category, skills := range cfg.Categories {
		list := make([]string, len(skills))
		copy(list, skills)
		t.categories[category] = list
		for _, s := range skills {
			if !t.skillSet[s] {
				t.skillSet[s] = true
				t.allSkills = append(t.allSkills, s)
			}
		}
	}
	sort.Strings(t.allSkills)

	t.atsKeywords = make([]string, len(cfg.ATSKeywords))
	copy(t.atsKeywords, cfg.ATSKeywords)

	for i, role := range cfg.Roles {
		if role.Role == "" {
			return nil, fmt.Errorf("taxonomy: role at index %d has no name", i)
		}
		if len(role.RequiredSkills) == 0 {
			return nil, fmt.Errorf("taxonomy: role %q has no required skills", role.Role)
		}
		if _, dup := t.roleIndex[role.Role]; dup {
			return nil, fmt.Errorf("taxonomy: duplicate role %q", role.Role)
		}
		t.roleIndex[role.Role] = len(t.roles)
		t.roles = append(t.roles, role)
	}

	return t, nil
}

// AllSkills returns every catalog skill (lowercase, sorted, deduplicated).
func (t *Taxonomy) AllSkills() []string {
	out := make([]string, len(t.allSkills))
	copy(out, t.allSkills)
	return out
}

// HasSkill reports whether the lowercase skill is in the catalog.
func (t *Taxonomy) HasSkill(skill string) bool {
	return t.skillSet[skill]
}

// ATSKeywords returns the action/result verbs used for ATS scoring.
func (t *Taxonomy) ATSKeywords() []string {
	out := make([]string, len(t.atsKeywords))
	copy(out, t.atsKeywords)
	return out
}

// Categories returns the category names, sorted.
func (t *Taxonomy) Categories() []string {
	out := make([]string, 0, len(t.categories))
	for c := range t.categories {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// SkillsInCategory returns the skills of one category in catalog order.
func (t *Taxonomy) SkillsInCategory(category string) []string {
	skills, ok := t.categories[category]
	if !ok {
		return nil
	}
	out := make([]string, len(skills))
	copy(out, skills)
	return out
}

// Roles returns all role requirements in catalog order.
func (t *Taxonomy) Roles() []RoleRequirements {
	out := make([]RoleRequirements, len(t.roles))
	copy(out, t.roles)
	return out
}

// RoleNames returns all role names in catalog order.
func (t *Taxonomy) RoleNames() []string {
	out := make([]string, len(t.roles))
	for i, r := range t.roles {
		out[i] = r.Role
	}
	return out
}

// Role looks up the requirements for a role by name.
func (t *Taxonomy) Role(name string) (RoleRequirements, bool) {
	i, ok := t.roleIndex[name]
	if !ok {
		return RoleRequirements{}, false
	}
	return t.roles[i], true
}
