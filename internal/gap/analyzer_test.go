package gap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careernexus/career-engine/internal/taxonomy"
)

func TestAnalyzeGap_DataAnalyst(t *testing.T) {
	a := New(taxonomy.Default())

	analysis, err := a.AnalyzeGap([]string{"Python", "SQL"}, "Data Analyst")
	require.NoError(t, err)

	assert.Equal(t, "Data Analyst", analysis.TargetRole)
	assert.Equal(t, []string{"Python", "Sql"}, analysis.MatchedSkills)
	assert.Equal(t, 2, analysis.MatchedCount)

	// 10 required + 5 preferred, 2 matched.
	assert.Len(t, analysis.MissingCritical, 8)
	assert.Len(t, analysis.MissingNiceToHave, 5)
	assert.Equal(t, 13, analysis.MissingCount)
	assert.InDelta(t, 86.67, analysis.GapPercentage, 0.001)
	assert.InDelta(t, 13.33, analysis.SkillMatchPercentage, 0.001)

	assert.Equal(t, []string{
		"Data Analysis", "Data Visualization", "Excel", "Numpy",
		"Pandas", "Power Bi", "Statistics", "Tableau",
	}, analysis.MissingCritical)
}

func TestAnalyzeGap_UnknownRole(t *testing.T) {
	a := New(taxonomy.Default())

	_, err := a.AnalyzeGap([]string{"python"}, "Quant Trader")
	require.Error(t, err)

	var unknownErr *UnknownRoleError
	require.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, "Quant Trader", unknownErr.Role)
}

func TestAnalyzeGap_FullMatch(t *testing.T) {
	tax := taxonomy.Default()
	a := New(tax)

	role, ok := tax.Role("Data Analyst")
	require.True(t, ok)
	skills := append(append([]string{}, role.RequiredSkills...), role.PreferredSkills...)

	analysis, err := a.AnalyzeGap(skills, "Data Analyst")
	require.NoError(t, err)

	assert.Equal(t, 15, analysis.MatchedCount)
	assert.Empty(t, analysis.MissingCritical)
	assert.Empty(t, analysis.MissingNiceToHave)
	assert.Zero(t, analysis.GapPercentage)
	assert.InDelta(t, 100, analysis.SkillMatchPercentage, 0.001)
}

func TestAnalyzeGap_GapAndMatchSumTo100(t *testing.T) {
	a := New(taxonomy.Default())

	for _, skills := range [][]string{
		{},
		{"python"},
		{"python", "sql", "excel"},
		{"sql", "excel", "python", "tableau", "power bi", "r", "sas"},
	} {
		analysis, err := a.AnalyzeGap(skills, "Data Analyst")
		require.NoError(t, err)
		assert.InDelta(t, 100, analysis.GapPercentage+analysis.SkillMatchPercentage, 0.001)
	}
}

func TestStrengthAreas(t *testing.T) {
	tests := []struct {
		name    string
		matched []string
		want    []string
	}{
		{
			name:    "none matched falls back",
			matched: nil,
			want:    []string{"Developing technical expertise"},
		},
		{
			name:    "unrecognized skills fall back",
			matched: []string{"figma", "jira"},
			want:    []string{"Developing technical expertise"},
		},
		{
			name:    "programming only",
			matched: []string{"python"},
			want:    []string{"Strong programming foundation"},
		},
		{
			name:    "multiple areas keep rule order",
			matched: []string{"docker", "sql", "react"},
			want: []string{
				"Solid data analysis capabilities",
				"Proficient in web development",
				"Cloud infrastructure knowledge",
			},
		},
		{
			name:    "title-cased input still matches",
			matched: []string{"Machine Learning", "Leadership"},
			want: []string{
				"Advanced machine learning expertise",
				"Excellent soft skills and collaboration",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, strengthAreas(tt.matched))
		})
	}
}

func TestLearningRecommendations_PriorityAndCaps(t *testing.T) {
	critical := []string{"Python", "Sql", "Tableau", "Aws", "Docker", "Excel", "Pandas"}
	niceToHave := []string{"R", "Sas", "Dashboards", "Reporting"}

	recs := LearningRecommendations(critical, niceToHave)
	require.Len(t, recs, 8)

	for i, r := range recs[:5] {
		assert.Equal(t, critical[i], r.Skill)
		assert.Equal(t, PriorityHigh, r.Priority)
		assert.Equal(t, "Required for the role", r.Reason)
	}
	for i, r := range recs[5:] {
		assert.Equal(t, niceToHave[i], r.Skill)
		assert.Equal(t, PriorityMedium, r.Priority)
		assert.Equal(t, "Enhances your competitiveness", r.Reason)
	}
}

func TestLearningAction(t *testing.T) {
	tests := []struct {
		skill string
		want  string
	}{
		{"python", "Complete online course on Python and build 2-3 projects"},
		{"react", "Take React tutorial and build a full-stack application"},
		{"spring boot", "Take Spring Boot tutorial and build a full-stack application"},
		{"pandas", "Learn Pandas through practical data projects on Kaggle"},
		{"aws", "Get AWS certification (Cloud Practitioner or Associate level)"},
		{"kubernetes", "Complete hands-on Kubernetes labs and deploy a sample application"},
		{"sql", "Practice SQL queries and database design on LeetCode/HackerRank"},
		{"power bi", "Create 3 interactive dashboards using Power Bi with real datasets"},
		{"leadership", "Develop leadership through team projects and public speaking practice"},
		{"git", "Learn Git through online courses and practical projects"},
	}
	for _, tt := range tests {
		t.Run(tt.skill, func(t *testing.T) {
			assert.Equal(t, tt.want, learningAction(tt.skill))
		})
	}
}

func TestDevelopmentPlanFor_Timeline(t *testing.T) {
	tests := []struct {
		name     string
		critical []string
		want     string
	}{
		{"five critical", []string{"a", "b", "c", "d", "e"}, "3-6 months intensive learning"},
		{"two critical", []string{"a", "b"}, "2-3 months focused learning"},
		{"one critical", []string{"a"}, "1-2 months skill development"},
		{"no critical", nil, "1-2 months skill development"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := DevelopmentPlanFor(Analysis{MissingCritical: tt.critical})
			assert.Equal(t, tt.want, plan.Timeline)
		})
	}
}

func TestDevelopmentPlanFor_Totals(t *testing.T) {
	plan := DevelopmentPlanFor(Analysis{
		MissingCritical:   []string{"Python", "Sql"},
		MissingNiceToHave: []string{"R"},
	})

	assert.Equal(t, 3, plan.TotalSkillsToLearn)
	assert.Len(t, plan.Recommendations, 3)
	assert.Equal(t, []string{
		"Start with high-priority skills first",
		"Build practical projects to demonstrate each skill",
		"Update your resume as you learn new skills",
		"Consider getting certifications for critical skills",
	}, plan.NextSteps)
}
