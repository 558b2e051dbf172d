// Package server provides the HTTP REST API for the career engine.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/careernexus/career-engine/internal/gap"
	"github.com/careernexus/career-engine/internal/matching"
	"github.com/careernexus/career-engine/internal/pipeline"
	"github.com/careernexus/career-engine/internal/taxonomy"
)

// Server represents the HTTP server
type Server struct {
	httpServer     *http.Server
	engine         *pipeline.Engine
	tax            *taxonomy.Taxonomy
	matcher        *matching.Matcher
	analyzer       *gap.Analyzer
	validator      *validator.Validate
	maxUploadBytes int64
}

// Config holds server configuration
type Config struct {
	Port           int
	MaxUploadBytes int64
}

// New creates a new server instance
func New(cfg Config, tax *taxonomy.Taxonomy) *Server {
	maxUpload := cfg.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = 10 << 20
	}

	s := &Server{
		engine:         pipeline.New(tax),
		tax:            tax,
		matcher:        matching.New(tax),
		analyzer:       gap.New(tax),
		validator:      validator.New(),
		maxUploadBytes: maxUpload,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/resume/analyze", s.handleAnalyzeResume)
	mux.HandleFunc("GET /api/career/roles", s.handleListRoles)
	mux.HandleFunc("GET /api/career/roadmap", s.handleGetRoadmap)
	mux.HandleFunc("POST /api/career/roadmap/task/{id}/complete", s.handleCompleteTask)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRequestID(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// Handler exposes the configured handler chain for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// withRequestID tags every request with an id, echoed in the response header.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r)
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// envelope is the uniform response wrapper: {success, data} on success,
// {success, error} on failure.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// successResponse writes data in a success envelope
func (s *Server) successResponse(w http.ResponseWriter, status int, data any) {
	s.jsonResponse(w, status, envelope{Success: true, Data: data})
}

// errorResponse writes an error envelope with the status mapped from err
func (s *Server) errorResponse(w http.ResponseWriter, err error) {
	s.jsonResponse(w, HTTPStatus(err), envelope{Success: false, Error: err.Error()})
}
