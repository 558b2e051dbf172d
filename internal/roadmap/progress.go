package roadmap

import (
	"fmt"
	"math"
)

// Unlock thresholds: phase 2 opens at 50% of phase 1; phases 3 and 4 open at
// 70% of the preceding phase.
var unlockThresholds = []float64{50, 70, 70}

// Recalculate derives per-phase progress and lock state, health and stats
// from the current task statuses. Phase 1 is always unlocked; phase n+1
// unlocks once phase n's progress reaches its threshold. Task lock state
// mirrors the owning phase. Call this after every task-status change.
func Recalculate(r *Roadmap, readinessScore, confidenceScore float64) {
	totalTasks, completedTasks := 0, 0
	totalXP, currentXP := 0, 0

	for i := range r.Phases {
		p := &r.Phases[i]

		completed := 0
		for _, t := range p.Tasks {
			totalXP += t.XPReward
			if t.Status == StatusCompleted {
				completed++
				currentXP += t.XPReward
			}
		}
		p.CompletedTasks = completed
		p.ProgressPercent = percent(completed, len(p.Tasks))

		if i == 0 {
			p.Locked = false
		} else {
			prev := r.Phases[i-1]
			p.Locked = prev.ProgressPercent < unlockThresholds[i-1]
		}
		for j := range p.Tasks {
			p.Tasks[j].Locked = p.Locked
		}

		totalTasks += len(p.Tasks)
		completedTasks += completed
	}

	r.Health = healthStatus(readinessScore, confidenceScore, completedTasks, totalTasks)
	r.Stats = Stats{
		TotalTasks:        totalTasks,
		CompletedTasks:    completedTasks,
		TotalXP:           totalXP,
		CurrentXP:         currentXP,
		CompletionPercent: percent(completedTasks, totalTasks),
	}
}

// CompleteTask marks the task as completed and re-derives phase locks,
// health and stats. Completing an already-completed task is a no-op that
// yields zero XP. Tasks in locked phases cannot be completed.
func CompleteTask(r *Roadmap, taskID string, readinessScore, confidenceScore float64) (xpGained int, err error) {
	for i := range r.Phases {
		p := &r.Phases[i]
		for j := range p.Tasks {
			t := &p.Tasks[j]
			if t.ID != taskID {
				continue
			}
			if p.Locked {
				return 0, &TaskLockedError{TaskID: taskID, Phase: p.Name}
			}
			if t.Status == StatusCompleted {
				return 0, nil
			}
			t.Status = StatusCompleted
			Recalculate(r, readinessScore, confidenceScore)
			return t.XPReward, nil
		}
	}
	return 0, &TaskNotFoundError{TaskID: taskID}
}

func healthStatus(readinessScore, confidenceScore float64, completedTasks, totalTasks int) Health {
	completionRate := percent(completedTasks, totalTasks)

	var status, reason string
	switch {
	case readinessScore >= 70 && confidenceScore >= 75 && completionRate > 60:
		status = HealthOnTrack
		reason = fmt.Sprintf("Excellent progress! Readiness at %.0f%% and completing tasks consistently.", readinessScore)
	case readinessScore >= 50 && confidenceScore >= 60 && completionRate > 30:
		status = HealthNeedsAttention
		reason = "Good start! Maintain momentum. Focus on completing more tasks to improve readiness."
	default:
		status = HealthOffTrack
		reason = "Get started now! Complete initial tasks to build momentum and confidence."
	}

	return Health{
		Status:          status,
		CompletionRate:  completionRate,
		ReadinessScore:  round1(readinessScore),
		ConfidenceScore: round1(confidenceScore),
		Reason:          reason,
	}
}

func impactPreview(missingSkillsCount int, resumeScore, readinessScore float64) ImpactPreview {
	resumeImprovement := math.Min(25, float64(missingSkillsCount)*4+5)
	readinessImprovement := math.Min(30, 15+float64(missingSkillsCount)*3)

	estimatedResume := math.Min(100, resumeScore+resumeImprovement)
	estimatedReadiness := math.Min(100, readinessScore+readinessImprovement)

	timelineWeeks := (missingSkillsCount*3 + 12) / 4
	successProbability := math.Min(95, 40+estimatedReadiness/100*50)

	return ImpactPreview{
		CurrentScores:      Scores{Resume: round1(resumeScore), Readiness: round1(readinessScore)},
		EstimatedScores:    Scores{Resume: round1(estimatedResume), Readiness: round1(estimatedReadiness)},
		Improvements:       Scores{Resume: round1(resumeImprovement), Readiness: round1(readinessImprovement)},
		TimelineWeeks:      timelineWeeks,
		SuccessProbability: fmt.Sprintf("%.0f%%", math.Round(successProbability)),
	}
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(part) / float64(total) * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
