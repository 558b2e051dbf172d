package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/careernexus/career-engine/internal/export"
	"github.com/careernexus/career-engine/internal/pipeline"
)

var exportCmd = &cobra.Command{
	Use:   "export <resume.pdf>",
	Short: "Analyze a resume and export the report to an Excel workbook",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var exportOut string

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "report.xlsx", "Output workbook path")

	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	tax, err := loadTaxonomy()
	if err != nil {
		return err
	}

	report, err := pipeline.New(tax).Analyze(args[0])
	if err != nil {
		return fmt.Errorf("failed to analyze resume: %w", err)
	}

	if err := export.ExportReport(report, exportOut); err != nil {
		return fmt.Errorf("failed to export report: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Report written to %s\n", exportOut)
	return nil
}
