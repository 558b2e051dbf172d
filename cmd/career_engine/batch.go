package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/careernexus/career-engine/internal/config"
	"github.com/careernexus/career-engine/internal/pipeline"
)

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Analyze every resume PDF in a directory",
	Long:  "Analyze all PDF files in a directory concurrently and print one result line per file. Files that fail to parse are reported without aborting the batch.",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatch,
}

var (
	batchConcurrency int
	batchJSON        bool
)

func init() {
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Maximum resumes analyzed in parallel (defaults to BATCH_CONCURRENCY env var)")
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "Print all reports as a JSON array")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, args []string) error {
	tax, err := loadTaxonomy()
	if err != nil {
		return err
	}

	concurrency := batchConcurrency
	if concurrency <= 0 {
		cfg, err := config.FromEnv()
		if err != nil {
			return err
		}
		concurrency = cfg.BatchConcurrency
	}

	entries, err := os.ReadDir(args[0])
	if err != nil {
		return fmt.Errorf("failed to read directory: %w", err)
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		paths = append(paths, filepath.Join(args[0], entry.Name()))
	}
	if len(paths) == 0 {
		return fmt.Errorf("no PDF files found in %s", args[0])
	}

	results, err := pipeline.New(tax).AnalyzeBatch(context.Background(), paths, concurrency)
	if err != nil {
		return err
	}

	if batchJSON {
		type batchEntry struct {
			Path   string           `json:"path"`
			Report *pipeline.Report `json:"report,omitempty"`
			Error  string           `json:"error,omitempty"`
		}
		out := make([]batchEntry, 0, len(results))
		for _, res := range results {
			entry := batchEntry{Path: res.Path, Report: res.Report}
			if res.Err != nil {
				entry.Error = res.Err.Error()
			}
			out = append(out, entry)
		}
		jsonBytes, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			_, _ = fmt.Fprintf(os.Stdout, "%-40s ERROR: %v\n", filepath.Base(res.Path), res.Err)
			continue
		}
		_, _ = fmt.Fprintf(os.Stdout, "%-40s score=%.2f  career=%s (%.1f%%)\n",
			filepath.Base(res.Path), res.Report.OverallScore,
			res.Report.PrimaryCareer.Role, res.Report.PrimaryCareer.MatchPercentage)
	}
	_, _ = fmt.Fprintf(os.Stdout, "\nAnalyzed %d resumes (%d failed)\n", len(results), failed)

	return nil
}
