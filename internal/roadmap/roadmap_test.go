package roadmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analystInput() Input {
	return Input{
		Career:          "Data Analyst",
		MissingSkills:   []string{"Power BI", "Advanced Excel", "SQL", "Machine Learning"},
		StrengthSkills:  []string{"Python", "Excel"},
		ExperienceLevel: "Fresher",
		Path:            PathPlacement,
		Confidence:      82,
		ResumeScore:     65,
		ReadinessScore:  58,
	}
}

func phaseByID(t *testing.T, r *Roadmap, id string) *Phase {
	t.Helper()
	for i := range r.Phases {
		if r.Phases[i].ID == id {
			return &r.Phases[i]
		}
	}
	t.Fatalf("phase %q not found", id)
	return nil
}

func taskIDs(p *Phase) []string {
	ids := make([]string, len(p.Tasks))
	for i, task := range p.Tasks {
		ids[i] = task.ID
	}
	return ids
}

func TestBuild_PhasePartition(t *testing.T) {
	r := Build(analystInput())
	require.Len(t, r.Phases, 4)

	assert.Equal(t, []string{
		"skill-power-bi", "skill-advanced-excel", "skill-sql", "skill-machine-learning",
	}, taskIDs(phaseByID(t, r, "foundation")))
	assert.Equal(t, []string{"portfolio-projects", "resume-optimization"},
		taskIDs(phaseByID(t, r, "portfolio")))
	assert.Equal(t, []string{"interview-preparation"},
		taskIDs(phaseByID(t, r, "industry")))
	assert.Equal(t, []string{"job-execution"},
		taskIDs(phaseByID(t, r, "execution")))
}

func TestBuild_SkillPlanTable(t *testing.T) {
	r := Build(Input{
		Career:        "Data Analyst",
		MissingSkills: []string{"Power BI", "Python", "Statistics", "Figma"},
		Path:          PathPlacement,
	})

	foundation := phaseByID(t, r, "foundation")
	require.Len(t, foundation.Tasks, 4)

	powerBI := foundation.Tasks[0]
	assert.Equal(t, 21, powerBI.EstimatedDays)
	assert.Equal(t, 300, powerBI.XPReward)

	python := foundation.Tasks[1]
	assert.Equal(t, 28, python.EstimatedDays)
	assert.Equal(t, 350, python.XPReward)

	statistics := foundation.Tasks[2]
	assert.Equal(t, 35, statistics.EstimatedDays)
	assert.Equal(t, 400, statistics.XPReward)

	// Unknown skills get the generic plan.
	figma := foundation.Tasks[3]
	assert.Equal(t, "skill-figma", figma.ID)
	assert.Equal(t, 21, figma.EstimatedDays)
	assert.Equal(t, 300, figma.XPReward)
	assert.Contains(t, figma.Reason, "Figma is a valuable skill for Data Analyst roles")
}

func TestBuild_ExecutionTaskPerPath(t *testing.T) {
	tests := []struct {
		path   string
		wantID string
		wantXP int
	}{
		{PathInternship, "internship-targeting", 1000},
		{PathPlacement, "job-execution", 2000},
		{PathStudies, "further-studies", 2000},
		{"sabbatical", "job-execution", 2000},
		{"", "job-execution", 2000},
	}
	for _, tt := range tests {
		t.Run("path "+tt.path, func(t *testing.T) {
			in := analystInput()
			in.Path = tt.path
			r := Build(in)

			execution := phaseByID(t, r, "execution")
			require.Len(t, execution.Tasks, 1)
			assert.Equal(t, tt.wantID, execution.Tasks[0].ID)
			assert.Equal(t, tt.wantXP, execution.Tasks[0].XPReward)
		})
	}
}

func TestBuild_InternshipApplicationsTask(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		level string
		want  bool
	}{
		{"internship fresher", PathInternship, "Fresher", true},
		{"internship student", PathInternship, "Student", true},
		{"internship professional", PathInternship, "Professional", false},
		{"placement fresher", PathPlacement, "Fresher", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := analystInput()
			in.Path = tt.path
			in.ExperienceLevel = tt.level
			r := Build(in)

			ids := taskIDs(phaseByID(t, r, "industry"))
			if tt.want {
				assert.Equal(t, []string{"interview-preparation", "internship-applications"}, ids)
			} else {
				assert.Equal(t, []string{"interview-preparation"}, ids)
			}
		})
	}
}

func TestBuild_InterviewPrepDaysByLevel(t *testing.T) {
	in := analystInput()
	in.ExperienceLevel = "Student"
	r := Build(in)
	assert.Equal(t, 30, phaseByID(t, r, "industry").Tasks[0].EstimatedDays)

	in.ExperienceLevel = "Fresher"
	r = Build(in)
	assert.Equal(t, 21, phaseByID(t, r, "industry").Tasks[0].EstimatedDays)
}

func TestBuild_InitialLockState(t *testing.T) {
	r := Build(analystInput())

	assert.False(t, phaseByID(t, r, "foundation").Locked)
	assert.True(t, phaseByID(t, r, "portfolio").Locked)
	assert.True(t, phaseByID(t, r, "industry").Locked)
	assert.True(t, phaseByID(t, r, "execution").Locked)

	for _, task := range phaseByID(t, r, "portfolio").Tasks {
		assert.True(t, task.Locked)
	}
	for _, task := range phaseByID(t, r, "foundation").Tasks {
		assert.False(t, task.Locked)
	}
}

func TestBuild_Stats(t *testing.T) {
	r := Build(analystInput())

	// 4 skill tasks (300+250+300+400) + portfolio 500 + resume 200 +
	// interview 400 + execution 2000.
	assert.Equal(t, Stats{
		TotalTasks: 8,
		TotalXP:    4350,
	}, r.Stats)
}

func TestCompleteTask_UnlocksNextPhase(t *testing.T) {
	in := analystInput()
	r := Build(in)

	// One of four foundation tasks: 25% < 50%, portfolio stays locked.
	xp, err := CompleteTask(r, "skill-power-bi", in.ReadinessScore, in.Confidence)
	require.NoError(t, err)
	assert.Equal(t, 300, xp)
	assert.True(t, phaseByID(t, r, "portfolio").Locked)

	// Second task hits 50%, portfolio unlocks; industry still needs 70% of
	// portfolio.
	_, err = CompleteTask(r, "skill-sql", in.ReadinessScore, in.Confidence)
	require.NoError(t, err)
	assert.False(t, phaseByID(t, r, "portfolio").Locked)
	assert.True(t, phaseByID(t, r, "industry").Locked)

	// Half of portfolio is below the 70% threshold.
	_, err = CompleteTask(r, "portfolio-projects", in.ReadinessScore, in.Confidence)
	require.NoError(t, err)
	assert.True(t, phaseByID(t, r, "industry").Locked)

	_, err = CompleteTask(r, "resume-optimization", in.ReadinessScore, in.Confidence)
	require.NoError(t, err)
	assert.False(t, phaseByID(t, r, "industry").Locked)
	assert.True(t, phaseByID(t, r, "execution").Locked)

	_, err = CompleteTask(r, "interview-preparation", in.ReadinessScore, in.Confidence)
	require.NoError(t, err)
	assert.False(t, phaseByID(t, r, "execution").Locked)
}

func TestCompleteTask_Errors(t *testing.T) {
	in := analystInput()
	r := Build(in)

	_, err := CompleteTask(r, "skill-juggling", in.ReadinessScore, in.Confidence)
	var notFound *TaskNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "skill-juggling", notFound.TaskID)

	_, err = CompleteTask(r, "portfolio-projects", in.ReadinessScore, in.Confidence)
	var locked *TaskLockedError
	require.ErrorAs(t, err, &locked)
	assert.Equal(t, "Portfolio Phase", locked.Phase)
}

func TestCompleteTask_Idempotent(t *testing.T) {
	in := analystInput()
	r := Build(in)

	xp, err := CompleteTask(r, "skill-power-bi", in.ReadinessScore, in.Confidence)
	require.NoError(t, err)
	assert.Equal(t, 300, xp)

	xp, err = CompleteTask(r, "skill-power-bi", in.ReadinessScore, in.Confidence)
	require.NoError(t, err)
	assert.Zero(t, xp)
	assert.Equal(t, 300, r.Stats.CurrentXP)
	assert.Equal(t, 1, r.Stats.CompletedTasks)
}

func TestHealthStatus(t *testing.T) {
	tests := []struct {
		name       string
		readiness  float64
		confidence float64
		completed  int
		total      int
		want       string
	}{
		{"all thresholds met", 70, 75, 7, 10, HealthOnTrack},
		{"middle tier", 50, 60, 4, 10, HealthNeedsAttention},
		{"high scores but no completion", 90, 90, 0, 10, HealthOffTrack},
		{"low everything", 20, 30, 0, 10, HealthOffTrack},
		{"completion exactly 60 misses top tier", 80, 80, 6, 10, HealthNeedsAttention},
		{"no tasks at all", 80, 80, 0, 0, HealthOffTrack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := healthStatus(tt.readiness, tt.confidence, tt.completed, tt.total)
			assert.Equal(t, tt.want, h.Status)
		})
	}
}

func TestImpactPreview(t *testing.T) {
	p := impactPreview(4, 65, 58)

	// min(25, 4*4+5) = 21, min(30, 15+4*3) = 27.
	assert.Equal(t, Scores{Resume: 21, Readiness: 27}, p.Improvements)
	assert.Equal(t, Scores{Resume: 86, Readiness: 85}, p.EstimatedScores)
	assert.Equal(t, 6, p.TimelineWeeks)
	assert.Equal(t, "83%", p.SuccessProbability)
}

func TestImpactPreview_ClampedAt100(t *testing.T) {
	p := impactPreview(10, 95, 90)

	assert.Equal(t, Scores{Resume: 25, Readiness: 30}, p.Improvements)
	assert.Equal(t, Scores{Resume: 100, Readiness: 100}, p.EstimatedScores)
}

func TestBuild_NoMissingSkills(t *testing.T) {
	in := analystInput()
	in.MissingSkills = nil
	r := Build(in)

	assert.Empty(t, phaseByID(t, r, "foundation").Tasks)
	assert.Equal(t, 4, r.Stats.TotalTasks)
}
