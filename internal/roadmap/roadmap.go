// Package roadmap turns a skill gap, target career and execution path into a
// four-phase task plan with dependency locking, XP accounting and health
// metrics. Roadmaps are rebuilt from scratch on every request; nothing here
// persists between calls.
package roadmap

import (
	"fmt"
	"time"
)

// Execution paths.
const (
	PathInternship = "internship"
	PathPlacement  = "placement"
	PathStudies    = "studies"
)

// Task statuses.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Health statuses.
const (
	HealthOnTrack        = "On Track"
	HealthNeedsAttention = "Needs Attention"
	HealthOffTrack       = "Off Track"
)

// Task is a single actionable roadmap item.
type Task struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Priority      string   `json:"priority"`
	Reason        string   `json:"reason"`
	Impact        string   `json:"impact"`
	Metric        string   `json:"metric"`
	EstimatedDays int      `json:"estimatedDays"`
	Resources     []string `json:"resources"`
	XPReward      int      `json:"xpReward"`
	Status        string   `json:"status"`
	Locked        bool     `json:"locked"`
}

// Phase is an ordered group of tasks. Phases form a strict linear chain:
// phase n+1 stays locked until phase n's progress reaches its unlock
// threshold. Lock state is derived, never stored authoritatively; see
// Recalculate.
type Phase struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Number          int     `json:"number"`
	Duration        string  `json:"duration"`
	Description     string  `json:"description"`
	Tasks           []Task  `json:"tasks"`
	CompletedTasks  int     `json:"completedTasks"`
	Locked          bool    `json:"locked"`
	UnlockCondition string  `json:"unlockCondition,omitempty"`
	ProgressPercent float64 `json:"progressPercent"`
}

// Health summarizes whether the candidate is progressing toward the target
// role, joining readiness, confidence and task completion.
type Health struct {
	Status          string  `json:"status"`
	CompletionRate  float64 `json:"completionRate"`
	ReadinessScore  float64 `json:"readinessScore"`
	ConfidenceScore float64 `json:"confidenceScore"`
	Reason          string  `json:"reason"`
}

// Scores pairs a resume score with a readiness score.
type Scores struct {
	Resume    float64 `json:"resume"`
	Readiness float64 `json:"readiness"`
}

// ImpactPreview projects the score improvements expected from completing the
// roadmap. The deltas are a function of the missing-skill count only.
type ImpactPreview struct {
	CurrentScores      Scores `json:"currentScores"`
	EstimatedScores    Scores `json:"estimatedScores"`
	Improvements       Scores `json:"improvements"`
	TimelineWeeks      int    `json:"timelineWeeks"`
	SuccessProbability string `json:"successProbability"`
}

// Stats aggregates task and XP counters across all phases.
type Stats struct {
	TotalTasks        int     `json:"totalTasks"`
	CompletedTasks    int     `json:"completedTasks"`
	TotalXP           int     `json:"totalXP"`
	CurrentXP         int     `json:"currentXP"`
	CompletionPercent float64 `json:"completionPercent"`
}

// Roadmap is the full generated plan.
type Roadmap struct {
	Career          string        `json:"career"`
	Confidence      float64       `json:"confidence"`
	Path            string        `json:"path"`
	ExperienceLevel string        `json:"experienceLevel"`
	Phases          []Phase       `json:"phases"`
	Health          Health        `json:"health"`
	ImpactPreview   ImpactPreview `json:"impactPreview"`
	Stats           Stats         `json:"stats"`
	GeneratedAt     time.Time     `json:"generatedAt"`
}

// TaskNotFoundError reports a completion request for a task id that does not
// exist in the roadmap.
type TaskNotFoundError struct {
	TaskID string
}

func (e *TaskNotFoundError) Error() string {
	return fmt.Sprintf("task %q not found in roadmap", e.TaskID)
}

// TaskLockedError reports a completion request for a task in a phase that has
// not been unlocked yet.
type TaskLockedError struct {
	TaskID string
	Phase  string
}

func (e *TaskLockedError) Error() string {
	return fmt.Sprintf("task %q is locked until the %s phase unlocks", e.TaskID, e.Phase)
}
