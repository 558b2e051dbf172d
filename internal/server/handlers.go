package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/careernexus/career-engine/internal/roadmap"
	"github.com/careernexus/career-engine/internal/scoring"
)

// handleAnalyzeResume accepts a multipart PDF upload (field "resume"), runs
// the full analysis pipeline, and returns the aggregate report. The upload is
// written to a temp file for the duration of the request only.
func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, &ErrInvalidUpload{Message: "missing file field \"resume\""})
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		s.errorResponse(w, &ErrInvalidUpload{Message: "only PDF resumes are supported"})
		return
	}

	tmp, err := os.CreateTemp("", "resume-*.pdf")
	if err != nil {
		s.errorResponse(w, fmt.Errorf("create temp file: %w", err))
		return
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		s.errorResponse(w, fmt.Errorf("save upload: %w", err))
		return
	}
	tmp.Close()

	report, err := s.engine.Analyze(tmp.Name())
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	s.successResponse(w, http.StatusOK, report)
}

// handleListRoles returns the taxonomy's role catalog.
func (s *Server) handleListRoles(w http.ResponseWriter, _ *http.Request) {
	s.successResponse(w, http.StatusOK, map[string]any{
		"roles": s.tax.Roles(),
	})
}

// RoadmapRequest is the query-parameter form of a roadmap build request.
type RoadmapRequest struct {
	CareerRole      string   `json:"careerRole" validate:"required"`
	Path            string   `json:"path" validate:"omitempty,oneof=internship placement studies"`
	Skills          []string `json:"skills"`
	ExperienceLevel string   `json:"experienceLevel"`
}

// handleGetRoadmap builds a roadmap for the given career role, path and
// skill list (?careerRole=...&path=...&skills=a,b,c). Unknown roles are 404.
func (s *Server) handleGetRoadmap(w http.ResponseWriter, r *http.Request) {
	req := RoadmapRequest{
		CareerRole:      r.URL.Query().Get("careerRole"),
		Path:            r.URL.Query().Get("path"),
		ExperienceLevel: r.URL.Query().Get("experienceLevel"),
	}
	if raw := r.URL.Query().Get("skills"); raw != "" {
		for _, skill := range strings.Split(raw, ",") {
			if skill = strings.TrimSpace(skill); skill != "" {
				req.Skills = append(req.Skills, skill)
			}
		}
	}
	if req.Path == "" {
		req.Path = roadmap.PathPlacement
	}
	if req.ExperienceLevel == "" {
		req.ExperienceLevel = "Fresher"
	}

	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, validationError(err))
		return
	}

	analysis, err := s.analyzer.AnalyzeGap(req.Skills, req.CareerRole)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	match, _ := s.matcher.MatchRole(req.Skills, req.CareerRole)

	missing := append(append([]string{}, analysis.MissingCritical...), analysis.MissingNiceToHave...)
	result := roadmap.Build(roadmap.Input{
		Career:          req.CareerRole,
		MissingSkills:   missing,
		StrengthSkills:  analysis.MatchedSkills,
		ExperienceLevel: req.ExperienceLevel,
		Path:            req.Path,
		Confidence:      match.MatchPercentage,
		ResumeScore:     scoring.SkillScore(len(req.Skills)),
		ReadinessScore:  match.MatchPercentage,
	})

	s.successResponse(w, http.StatusOK, result)
}

// CompleteTaskRequest carries the client's roadmap snapshot plus the scores
// needed to recompute health. Nothing is persisted server-side; the updated
// snapshot goes back to the caller.
type CompleteTaskRequest struct {
	Roadmap         roadmap.Roadmap `json:"roadmap" validate:"required"`
	ReadinessScore  float64         `json:"readinessScore" validate:"gte=0,lte=100"`
	ConfidenceScore float64         `json:"confidenceScore" validate:"gte=0,lte=100"`
}

// CompleteTaskResponse is the updated state after a completion.
type CompleteTaskResponse struct {
	TaskID   string           `json:"taskId"`
	Status   string           `json:"status"`
	XPGained int              `json:"xpGained"`
	Roadmap  *roadmap.Roadmap `json:"roadmap"`
}

// handleCompleteTask marks a task completed in the supplied roadmap snapshot,
// re-derives phase locks, health and stats, and returns the XP delta with the
// updated structure.
func (s *Server) handleCompleteTask(w http.ResponseWriter, r *http.Request) {
	taskID := r.PathValue("id")

	var req CompleteTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, validationError(err))
		return
	}

	xp, err := roadmap.CompleteTask(&req.Roadmap, taskID, req.ReadinessScore, req.ConfidenceScore)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	s.successResponse(w, http.StatusOK, CompleteTaskResponse{
		TaskID:   taskID,
		Status:   roadmap.StatusCompleted,
		XPGained: xp,
		Roadmap:  &req.Roadmap,
	})
}

// validationError converts a validator error into the API error type,
// reporting the first failing field.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &ErrValidation{Field: verrs[0].Field(), Message: "failed " + verrs[0].Tag() + " validation"}
	}
	return &ErrValidation{Field: "request", Message: err.Error()}
}
