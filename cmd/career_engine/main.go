// Package main provides the entry point for the Career Engine CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/careernexus/career-engine/internal/taxonomy"
)

var rootCmd = &cobra.Command{
	Use:   "career_engine",
	Short: "Career Engine resume analysis and guidance",
	Long:  "Career Engine scores resumes against ATS criteria, matches skills to career roles, analyzes skill gaps, and builds gamified learning roadmaps.",
}

var taxonomyPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&taxonomyPath, "taxonomy", "",
		"Path to a taxonomy override JSON file (defaults to TAXONOMY_PATH env var)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadTaxonomy resolves the override path from the flag, then the environment,
// and falls back to the compiled-in catalog.
func loadTaxonomy() (*taxonomy.Taxonomy, error) {
	path := taxonomyPath
	if path == "" {
		path = os.Getenv("TAXONOMY_PATH")
	}
	tax, err := taxonomy.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load taxonomy: %w", err)
	}
	return tax, nil
}
