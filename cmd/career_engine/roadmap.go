package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/careernexus/career-engine/internal/gap"
	"github.com/careernexus/career-engine/internal/matching"
	"github.com/careernexus/career-engine/internal/observability"
	"github.com/careernexus/career-engine/internal/roadmap"
	"github.com/careernexus/career-engine/internal/scoring"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Build a learning roadmap for a career role",
	Long:  "Build a phased, gamified learning roadmap for a target career role from a comma-separated list of current skills.",
	RunE:  runRoadmap,
}

var (
	roadmapCareer string
	roadmapPath   string
	roadmapSkills string
	roadmapLevel  string
	roadmapJSON   bool
)

func init() {
	roadmapCmd.Flags().StringVarP(&roadmapCareer, "career", "c", "", "Target career role (required)")
	roadmapCmd.Flags().StringVarP(&roadmapPath, "path", "p", roadmap.PathPlacement, "Career path: internship, placement, or studies")
	roadmapCmd.Flags().StringVarP(&roadmapSkills, "skills", "s", "", "Comma-separated list of current skills")
	roadmapCmd.Flags().StringVarP(&roadmapLevel, "level", "l", "Fresher", "Experience level (Student, Fresher, Experienced)")
	roadmapCmd.Flags().BoolVar(&roadmapJSON, "json", false, "Print the roadmap as JSON")
	_ = roadmapCmd.MarkFlagRequired("career")

	rootCmd.AddCommand(roadmapCmd)
}

func runRoadmap(_ *cobra.Command, _ []string) error {
	switch roadmapPath {
	case roadmap.PathInternship, roadmap.PathPlacement, roadmap.PathStudies:
	default:
		return fmt.Errorf("invalid path %q: must be internship, placement, or studies", roadmapPath)
	}

	tax, err := loadTaxonomy()
	if err != nil {
		return err
	}

	var skills []string
	for _, skill := range strings.Split(roadmapSkills, ",") {
		if skill = strings.TrimSpace(skill); skill != "" {
			skills = append(skills, skill)
		}
	}

	analysis, err := gap.New(tax).AnalyzeGap(skills, roadmapCareer)
	if err != nil {
		return err
	}
	match, _ := matching.New(tax).MatchRole(skills, roadmapCareer)

	missing := append(append([]string{}, analysis.MissingCritical...), analysis.MissingNiceToHave...)
	result := roadmap.Build(roadmap.Input{
		Career:          roadmapCareer,
		MissingSkills:   missing,
		StrengthSkills:  analysis.MatchedSkills,
		ExperienceLevel: roadmapLevel,
		Path:            roadmapPath,
		Confidence:      match.MatchPercentage,
		ResumeScore:     scoring.SkillScore(len(skills)),
		ReadinessScore:  match.MatchPercentage,
	})

	if roadmapJSON {
		jsonBytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal roadmap: %w", err)
		}
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintRoadmap(result)
	return nil
}
