package main

import (
	"github.com/spf13/cobra"

	"github.com/careernexus/career-engine/internal/config"
	"github.com/careernexus/career-engine/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for resume analysis, career role listings, and roadmap generation.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (defaults to PORT env var, then 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if taxonomyPath != "" {
		cfg.TaxonomyPath = taxonomyPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	tax, err := loadTaxonomy()
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Port:           cfg.Port,
		MaxUploadBytes: cfg.MaxUploadBytes,
	}, tax)

	return srv.Start()
}
