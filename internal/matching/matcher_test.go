package matching

import (
	"testing"

	"github.com/careernexus/career-engine/internal/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallTaxonomy(t *testing.T) *taxonomy.Taxonomy {
	t.Helper()
	tax, err := taxonomy.New(taxonomy.Config{
		Categories: map[string][]string{
			"programming": {"python", "sql", "go", "javascript"},
		},
		Roles: []taxonomy.RoleRequirements{
			{
				Role:            "Analyst",
				RequiredSkills:  []string{"python", "sql"},
				PreferredSkills: []string{"go"},
			},
			{
				Role:           "Developer",
				RequiredSkills: []string{"javascript", "go"},
			},
		},
	})
	require.NoError(t, err)
	return tax
}

func TestMatchRole_SplitWeights(t *testing.T) {
	m := New(smallTaxonomy(t))

	match, ok := m.MatchRole([]string{"Python", "Sql", "Go"}, "Analyst")
	require.True(t, ok)
	assert.Equal(t, 100.0, match.MatchPercentage) // 2/2*70 + 1/1*30
	assert.Equal(t, 2, match.RequiredSkillsMatch)
	assert.Equal(t, 1, match.PreferredSkillsMatch)
	assert.Equal(t, []string{"Python", "Sql", "Go"}, match.MatchedSkills)
}

func TestMatchRole_PreferredOnly(t *testing.T) {
	tax, err := taxonomy.New(taxonomy.Config{
		Categories: map[string][]string{"x": {"a", "b", "c"}},
		Roles: []taxonomy.RoleRequirements{{
			Role:            "Role",
			RequiredSkills:  []string{"z1", "z2", "z3", "z4", "z5"},
			PreferredSkills: []string{"a", "b", "c"},
		}},
	})
	require.NoError(t, err)
	m := New(tax)

	// 0/5 required, 3/3 preferred -> exactly 30, Low confidence.
	match, ok := m.MatchRole([]string{"A", "B", "C"}, "Role")
	require.True(t, ok)
	assert.Equal(t, 30.0, match.MatchPercentage)

	primary := m.PrimaryCareer([]string{"A", "B", "C"})
	assert.Equal(t, ConfidenceLow, primary.Confidence)
}

func TestMatchRole_UnknownRole(t *testing.T) {
	m := New(smallTaxonomy(t))
	_, ok := m.MatchRole([]string{"Python"}, "Astronaut")
	assert.False(t, ok)
}

func TestMatchRole_Idempotent(t *testing.T) {
	m := New(smallTaxonomy(t))
	a, _ := m.MatchRole([]string{"Python", "Go"}, "Analyst")
	b, _ := m.MatchRole([]string{"Python", "Go"}, "Analyst")
	assert.Equal(t, a, b)
}

func TestTopMatches_OrderAndTieBreak(t *testing.T) {
	m := New(smallTaxonomy(t))

	top := m.TopMatches([]string{"Python", "Sql"}, 0)
	require.Len(t, top, 2)
	assert.Equal(t, "Analyst", top[0].Role)
	assert.Equal(t, 70.0, top[0].MatchPercentage)

	// With no skills at all, every role scores zero and catalog order is the
	// tie-break.
	top = m.TopMatches(nil, 0)
	require.Len(t, top, 2)
	assert.Equal(t, "Analyst", top[0].Role)
	assert.Equal(t, "Developer", top[1].Role)
}

func TestPrimaryCareer_ConfidenceTiers(t *testing.T) {
	m := New(smallTaxonomy(t))

	// 100% -> High
	primary := m.PrimaryCareer([]string{"Python", "Sql", "Go"})
	assert.Equal(t, "Analyst", primary.Role)
	assert.Equal(t, ConfidenceHigh, primary.Confidence)

	// 2/2*70 = 70 -> High boundary is inclusive
	primary = m.PrimaryCareer([]string{"Python", "Sql"})
	assert.Equal(t, 70.0, primary.MatchPercentage)
	assert.Equal(t, ConfidenceHigh, primary.Confidence)

	// 1/2*70 = 35 -> Low
	primary = m.PrimaryCareer([]string{"Python"})
	assert.Equal(t, ConfidenceLow, primary.Confidence)
}

func TestPrimaryCareer_FallbackWhenNothingMatches(t *testing.T) {
	m := New(smallTaxonomy(t))

	primary := m.PrimaryCareer([]string{"Cobol"})
	assert.Equal(t, FallbackRole, primary.Role)
	assert.Equal(t, 0.0, primary.MatchPercentage)
	assert.Equal(t, ConfidenceLow, primary.Confidence)
}

func TestPrimaryCareer_EmptyTaxonomy(t *testing.T) {
	tax, err := taxonomy.New(taxonomy.Config{})
	require.NoError(t, err)
	m := New(tax)

	primary := m.PrimaryCareer([]string{"Python"})
	assert.Equal(t, FallbackRole, primary.Role)
}

func TestAlternateRoles(t *testing.T) {
	m := New(smallTaxonomy(t))

	// Two roles ranked: exactly one alternate.
	alts := m.AlternateRoles([]string{"Python", "Sql"})
	assert.Equal(t, []string{"Developer"}, alts)

	// Default taxonomy has ten roles: two alternates.
	full := New(taxonomy.Default())
	alts = full.AlternateRoles([]string{"Python", "Sql", "Excel"})
	assert.Len(t, alts, 2)
}

func TestMatchRole_ScenarioDataAnalyst(t *testing.T) {
	m := New(taxonomy.Default())

	match, ok := m.MatchRole([]string{"Python", "Sql"}, "Data Analyst")
	require.True(t, ok)
	assert.Equal(t, 2, match.RequiredSkillsMatch)
	assert.Equal(t, 10, match.RequiredSkillsTotal)
	assert.Equal(t, 0, match.PreferredSkillsMatch)
	assert.Equal(t, 14.0, match.MatchPercentage) // 2/10*70
}
