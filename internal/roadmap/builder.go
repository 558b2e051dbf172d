package roadmap

import (
	"fmt"
	"strings"
	"time"
)

// Input carries everything roadmap generation needs. MissingSkills and
// StrengthSkills come from gap analysis; the scores come from resume scoring
// and role matching.
type Input struct {
	Career          string
	MissingSkills   []string
	StrengthSkills  []string
	ExperienceLevel string
	Path            string
	Confidence      float64
	ResumeScore     float64
	ReadinessScore  float64
}

// skillPlan fixes the effort estimate and reward for learning one skill.
type skillPlan struct {
	days   int
	xp     int
	reason string
	impact string
}

var skillPlans = map[string]skillPlan{
	"Power BI": {
		days:   21,
		xp:     300,
		reason: "Power BI is critical for Data Analyst roles - essential for visualization and reporting",
		impact: "Resume score +10-15%. Direct match with job requirements.",
	},
	"Advanced Excel": {
		days:   14,
		xp:     250,
		reason: "Foundation tool for data manipulation and pivot tables",
		impact: "Resume score +8%. Core skill expected in most analyst roles.",
	},
	"Machine Learning": {
		days:   28,
		xp:     400,
		reason: "Differentiator for senior analyst and data scientist roles",
		impact: "Resume score +15%. Opens opportunities for advanced positions.",
	},
	"SQL": {
		days:   21,
		xp:     300,
		reason: "Backbone of data analysis - essential for database queries",
		impact: "Resume score +10%. Required for 95% of data roles.",
	},
	"Python": {
		days:   28,
		xp:     350,
		reason: "Most in-demand programming language for data roles",
		impact: "Resume score +12%. Highly valued in analytics teams.",
	},
	"Tableau": {
		days:   18,
		xp:     280,
		reason: "Industry-standard visualization tool competing with Power BI",
		impact: "Resume score +10%. Increases versatility in visualization skills.",
	},
	"Statistics": {
		days:   35,
		xp:     400,
		reason: "Foundation for hypothesis testing and data insights",
		impact: "Resume score +13%. Essential for analytical credibility.",
	},
	"Data Visualization": {
		days:   21,
		xp:     280,
		reason: "Critical skill for communicating insights to stakeholders",
		impact: "Resume score +11%. Improves presentation impact.",
	},
}

const (
	defaultSkillDays = 21
	defaultSkillXP   = 300
)

// Build generates a complete roadmap from the input. It never fails: unknown
// paths fall back to placement, unknown skills fall back to a generic
// learning plan, and an empty missing-skill list simply yields no skill
// tasks.
func Build(in Input) *Roadmap {
	path := in.Path
	if path != PathInternship && path != PathPlacement && path != PathStudies {
		path = PathPlacement
	}

	tasks := generateTasks(in.Career, in.MissingSkills, in.ExperienceLevel, path)
	phases := organizePhases(tasks, path, in.ExperienceLevel, in.Career)

	r := &Roadmap{
		Career:          in.Career,
		Confidence:      in.Confidence,
		Path:            path,
		ExperienceLevel: in.ExperienceLevel,
		Phases:          phases,
		GeneratedAt:     time.Now().UTC(),
	}
	Recalculate(r, in.ReadinessScore, in.Confidence)
	r.ImpactPreview = impactPreview(len(in.MissingSkills), in.ResumeScore, in.ReadinessScore)
	return r
}

func generateTasks(career string, missingSkills []string, experienceLevel, path string) []Task {
	var tasks []Task

	for _, skill := range missingSkills {
		plan, ok := skillPlans[skill]
		if !ok {
			plan = skillPlan{
				days:   defaultSkillDays,
				xp:     defaultSkillXP,
				reason: fmt.Sprintf("%s is a valuable skill for %s roles", skill, career),
				impact: fmt.Sprintf("Resume score +10%%. Fills gap in %s expertise.", skill),
			}
		}
		tasks = append(tasks, Task{
			ID:            "skill-" + slugify(skill),
			Title:         fmt.Sprintf("Master %s for %s", skill, career),
			Description:   fmt.Sprintf("Complete comprehensive training in %s. Learn through hands-on projects, online courses, and real-world applications.", skill),
			Priority:      "High",
			Reason:        plan.reason,
			Impact:        plan.impact,
			Metric:        "resume",
			EstimatedDays: plan.days,
			Resources: []string{
				skill + " Official Documentation",
				"Udemy/Coursera " + skill + " Courses",
				"Real-world " + skill + " Projects",
				"Practice Exercises & Quizzes",
			},
			XPReward: plan.xp,
			Status:   StatusPending,
		})
	}

	tasks = append(tasks, Task{
		ID:            "portfolio-projects",
		Title:         fmt.Sprintf("Build %s Portfolio Projects", career),
		Description:   fmt.Sprintf("Create 2-3 end-to-end %s projects showcasing skill application. Include data analysis, visualizations, and insights.", career),
		Priority:      "High",
		Reason:        "Portfolio is strongest proof of skills - differentiator between candidates",
		Impact:        "Resume score +20%. Interview confidence +30%. Portfolio projects are top hiring criteria.",
		Metric:        "portfolio",
		EstimatedDays: 28,
		Resources: []string{
			"GitHub Portfolio Setup",
			"Public Dataset Sources (Kaggle, UCI)",
			career + " Case Study Repositories",
			"Project Documentation Best Practices",
		},
		XPReward: 500,
		Status:   StatusPending,
	})

	tasks = append(tasks, Task{
		ID:            "resume-optimization",
		Title:         "Optimize Resume for ATS & Hiring",
		Description:   fmt.Sprintf("Tailor resume to %s role. Use ATS-friendly formatting, highlight achievements with metrics, and optimize for keyword matching.", career),
		Priority:      "High",
		Reason:        "Resume is first impression - must pass ATS screening and impress hiring managers",
		Impact:        "Resume score +15%. 40% more interview callbacks with optimized resume.",
		Metric:        "resume",
		EstimatedDays: 5,
		Resources: []string{
			"ATS Resume Templates",
			"LinkedIn Profile Optimization",
			"Action Verb Best Practices",
			"Achievement Quantification Guide",
		},
		XPReward: 200,
		Status:   StatusPending,
	})

	interviewDays := 21
	if experienceLevel == "Student" {
		interviewDays = 30
	}
	tasks = append(tasks, Task{
		ID:            "interview-preparation",
		Title:         fmt.Sprintf("Prepare for %s Technical Interviews", career),
		Description:   fmt.Sprintf("Master interview questions specific to %s roles. Practice case studies, technical problems, and behavioral scenarios.", career),
		Priority:      "High",
		Reason:        "Interview is decisive stage - must demonstrate competency and confidence",
		Impact:        "Interview readiness +35%. Confidence score +25%. Pass 90%+ of interviews with preparation.",
		Metric:        "interview",
		EstimatedDays: interviewDays,
		Resources: []string{
			career + " Interview Questions Database",
			"Case Study Walkthroughs",
			"Mock Interview Sessions",
			"Communication Skills Training",
		},
		XPReward: 400,
		Status:   StatusPending,
	})

	if path == PathInternship && (experienceLevel == "Student" || experienceLevel == "Fresher") {
		tasks = append(tasks, Task{
			ID:            "internship-applications",
			Title:         fmt.Sprintf("Apply to %s Internships", career),
			Description:   "Target internships at startups and tier-1 companies. Apply to 15-20 positions.",
			Priority:      "High",
			Reason:        "Internship bridges academics to jobs. 60% of interns get converted to full-time offers.",
			Impact:        "Readiness score +25%. Real-world experience begins.",
			Metric:        "readiness",
			EstimatedDays: 30,
			Resources: []string{
				"Internshala",
				"LinkedIn",
				"Company career pages",
			},
			XPReward: 1000,
			Status:   StatusPending,
		})
	}

	tasks = append(tasks, executionTask(career, path))
	return tasks
}

func executionTask(career, path string) Task {
	switch path {
	case PathInternship:
		return Task{
			ID:            "internship-targeting",
			Title:         "Target & Secure Internship",
			Description:   "Create list of target companies, customize applications, practice interviews, and execute internship search strategy.",
			Priority:      "High",
			Reason:        "Internship provides real experience and first-resume entry point",
			Impact:        "First professional experience +40%. CV foundation built.",
			Metric:        "experience",
			EstimatedDays: 60,
			Resources: []string{
				"Internship Portal Guides (LinkedIn, Unstop, AngelList)",
				"Cover Letter Templates",
				"Company Research Framework",
				"Offer Negotiation Guide",
			},
			XPReward: 1000,
			Status:   StatusPending,
		}
	case PathStudies:
		return Task{
			ID:            "further-studies",
			Title:         "Pursue Higher Studies",
			Description:   fmt.Sprintf("Prepare for Master's or advanced certification in %s specialization. Research programs, prepare applications.", career),
			Priority:      "High",
			Reason:        "Advanced education opens senior roles and specialization opportunities",
			Impact:        "Career advancement +50%. Salary growth potential +30-40%.",
			Metric:        "education",
			EstimatedDays: 120,
			Resources: []string{
				"Program Research Framework",
				"IELTS/GRE Preparation",
				"SOP Writing Guide",
				"Application Timeline Planner",
			},
			XPReward: 2000,
			Status:   StatusPending,
		}
	default:
		return Task{
			ID:            "job-execution",
			Title:         "Execute Job Search & Land Offer",
			Description:   fmt.Sprintf("Build targeting strategy for %s roles, submit applications, pass interviews, and negotiate offer.", career),
			Priority:      "High",
			Reason:        "Job placement is end goal - requires systematic execution and persistence",
			Impact:        "Successfully land job with 40%+ higher salary through preparation.",
			Metric:        "experience",
			EstimatedDays: 90,
			Resources: []string{
				"Job Portal Strategy (LinkedIn, Indeed, Naukri)",
				"Company Target List Builder",
				"Salary Negotiation Framework",
				"Offer Comparison Tool",
			},
			XPReward: 2000,
			Status:   StatusPending,
		}
	}
}

// organizePhases routes each task into one of the four fixed phases. Special
// task ids are checked before the metric tag, so resume-optimization lands in
// the Portfolio phase even though its metric is "resume".
func organizePhases(tasks []Task, path, experienceLevel, career string) []Phase {
	phases := []Phase{
		{
			ID:          "foundation",
			Name:        "Foundation Phase",
			Number:      1,
			Duration:    "3-4 weeks",
			Description: "Master core skills required for your target role. Build strong technical foundation.",
		},
		{
			ID:              "portfolio",
			Name:            "Portfolio Phase",
			Number:          2,
			Duration:        "4 weeks",
			Description:     "Build real-world projects to demonstrate skills. Create portfolio pieces.",
			UnlockCondition: "Complete 50% of Foundation Phase",
		},
		{
			ID:              "industry",
			Name:            "Industry Readiness",
			Number:          3,
			Duration:        "3 weeks",
			Description:     "Prepare for interviews and industry standards. Polish communication skills.",
			UnlockCondition: "Complete 70% of Portfolio Phase",
		},
		{
			ID:              "execution",
			Name:            "Execution Phase",
			Number:          4,
			Duration:        "2-3 months",
			Description:     "Execute your path - job search, internships, or further studies.",
			UnlockCondition: "Complete 70% of Industry Readiness Phase",
		},
	}

	for _, t := range tasks {
		switch {
		case t.ID == "portfolio-projects", t.ID == "resume-optimization":
			phases[1].Tasks = append(phases[1].Tasks, t)
		case t.ID == "interview-preparation", t.ID == "internship-applications":
			phases[2].Tasks = append(phases[2].Tasks, t)
		case t.Metric == "resume":
			phases[0].Tasks = append(phases[0].Tasks, t)
		default:
			phases[3].Tasks = append(phases[3].Tasks, t)
		}
	}
	return phases
}

func slugify(skill string) string {
	return strings.ReplaceAll(strings.ToLower(skill), " ", "-")
}
