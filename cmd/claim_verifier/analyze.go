package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/claim-verifier/internal/config"
	"github.com/jonathan/claim-verifier/internal/extract"
	"github.com/jonathan/claim-verifier/internal/logger"
	"github.com/jonathan/claim-verifier/internal/observability"
	"github.com/jonathan/claim-verifier/internal/pipeline"
	"github.com/jonathan/claim-verifier/internal/types"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full analysis pipeline on a resume",
	Long: `Runs claim extraction, and conditionally GitHub evidence collection, evidence validation, and job-fit scoring.

Claim extraction always runs. Evidence collection and validation run only when --github is supplied; job-fit scoring additionally requires at least one --job file. The combined result is printed to stdout as JSON.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath string
	analyzeResume     string
	analyzeGitHub     string
	analyzeJobFiles   []string
	analyzeAPIKey     string
	analyzeToken      string
	analyzeModel      string
	analyzeOutputDir  string
	analyzeVerbose    bool
	analyzeJSONLogs   bool
)

func init() {
	// Config file flag (processed first)
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCommand.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume file (PDF, DOCX, or plain text)")
	analyzeCommand.Flags().StringVarP(&analyzeGitHub, "github", "g", "", "GitHub profile URL or username (optional)")
	analyzeCommand.Flags().StringArrayVarP(&analyzeJobFiles, "job", "j", nil, "Path to a job specification text file (repeatable)")
	analyzeCommand.Flags().StringVar(&analyzeModel, "model", "", "Gemini model override")
	analyzeCommand.Flags().StringVarP(&analyzeOutputDir, "output-dir", "o", "", "Root directory for per-run artifact output (optional)")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print formatted stage summaries")
	analyzeCommand.Flags().BoolVar(&analyzeJSONLogs, "json-logs", false, "Emit logs as JSON instead of console format")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	analyzeCommand.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// GitHub token raises the unauthenticated rate limit
	analyzeCommand.Flags().StringVar(&analyzeToken, "github-token", "", "GitHub API token (optional, defaults to GITHUB_TOKEN env var)")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("resume") {
		cfg.Resume = analyzeResume
	}
	if cmd.Flags().Changed("github") {
		cfg.GitHubURL = analyzeGitHub
	}
	if cmd.Flags().Changed("job") {
		cfg.JobFiles = analyzeJobFiles
	}
	if cmd.Flags().Changed("api-key") {
		cfg.GeminiAPIKey = analyzeAPIKey
	}
	if cmd.Flags().Changed("github-token") {
		cfg.GitHubToken = analyzeToken
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = analyzeModel
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.OutputDir = analyzeOutputDir
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = analyzeVerbose
	}
	if cmd.Flags().Changed("json-logs") {
		cfg.JSONLogs = analyzeJSONLogs
	}

	// Step 3: Validate merged configuration
	if cfg.Resume == "" {
		return fmt.Errorf("a resume file is required (--resume or config file)")
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Step 4: Read inputs
	resumeText, err := extract.FromFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	jobSpecs := make([]string, 0, len(cfg.JobFiles))
	for _, jobFile := range cfg.JobFiles {
		data, err := os.ReadFile(jobFile)
		if err != nil {
			return fmt.Errorf("failed to read job file %s: %w", jobFile, err)
		}
		jobSpecs = append(jobSpecs, strings.TrimSpace(string(data)))
	}

	// Step 5: Run the pipeline
	response, err := pipeline.Run(ctx, pipeline.Options{
		Request: types.AnalysisRequest{
			ResumeText:        resumeText,
			GitHubIdentifier:  cfg.GitHubURL,
			JobSpecifications: jobSpecs,
			GitHubToken:       cfg.Token(),
			GeminiAPIKey:      cfg.GeminiKey(),
		},
		Model:     cfg.Model,
		OutputDir: cfg.OutputDir,
		Logger:    log,
	})
	if err != nil {
		return err
	}

	// Step 6: Report
	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintClaims(response.CVClaims)
		printer.PrintEvidence(response.GitHubEvidence)
		printer.PrintEvidenceValidation(response.EvidenceValidation)
		printer.PrintJobFit(response.JobFit)
	}

	encoded, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	fmt.Println(string(encoded))
	return nil
}
