// Package pipeline provides the high-level orchestration for the claim
// verification process: claim extraction, GitHub evidence collection,
// evidence validation, and job-fit scoring.
package pipeline

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/claim-verifier/internal/github"
	"github.com/jonathan/claim-verifier/internal/llm"
	"github.com/jonathan/claim-verifier/internal/stages"
	"github.com/jonathan/claim-verifier/internal/types"
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Options holds configuration for running the pipeline
type Options struct {
	Request types.AnalysisRequest

	// Model overrides the default Gemini model when the pipeline builds
	// its own client.
	Model string

	// LLMClient, when set, is used instead of constructing a Gemini
	// client from the request's API key. Tests inject stubs here.
	LLMClient llm.Client

	// GitHubOptions overrides the GitHub API client configuration.
	// Tests point this at a local fixture server.
	GitHubOptions *github.Options

	// OutputDir, when non-empty, is the root under which per-run
	// artifact directories are written.
	OutputDir string

	Logger     *zap.Logger
	OnProgress ProgressCallback
}

var validate = validator.New()

// Run executes the pipeline for one request. Claim extraction always
// runs; evidence collection and validation run only when a GitHub
// identifier was supplied; job-fit scoring runs only when job
// specifications were supplied on top of that. Any stage failure aborts
// the whole request: no partial response is ever returned.
func Run(ctx context.Context, opts Options) (*types.AnalysisResponse, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	if err := validate.Struct(&opts.Request); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	runID := uuid.New().String()
	emit := func(step, message string) {
		log.Info(message, zap.String("step", step), zap.String("run_id", runID))
		if opts.OnProgress != nil {
			opts.OnProgress(ProgressEvent{Step: step, Message: message, RunID: runID})
		}
	}

	client := opts.LLMClient
	if client == nil {
		if opts.Request.GeminiAPIKey == "" {
			return nil, fmt.Errorf("gemini API key is required")
		}
		var err error
		client, err = llm.NewClient(ctx, llm.DefaultConfig().WithModel(opts.Model), opts.Request.GeminiAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
	}

	emit("extract_claims", "extracting claims from resume text")
	claims, err := stages.ExtractClaims(ctx, client, opts.Request.ResumeText)
	if err != nil {
		return nil, err
	}
	response := &types.AnalysisResponse{CVClaims: claims}

	if opts.Request.GitHubIdentifier == "" {
		emit("done", "no GitHub identifier supplied; returning claims only")
		writeArtifacts(opts.OutputDir, runID, response, log)
		return response, nil
	}

	emit("collect_evidence", "collecting GitHub repository evidence")
	collector := github.NewCollector(github.NewClient(opts.Request.GitHubToken, opts.GitHubOptions), log)
	bundle, err := collector.CollectEvidence(ctx, opts.Request.GitHubIdentifier)
	if err != nil {
		return nil, fmt.Errorf("failed to collect GitHub evidence: %w", err)
	}
	response.GitHubEvidence = bundle

	emit("validate_evidence", "validating claims against GitHub evidence")
	validation, err := stages.ValidateEvidence(ctx, client, claims, bundle)
	if err != nil {
		return nil, err
	}
	response.EvidenceValidation = validation
	bundle.CVMatchScore = &validation.MatchScore
	bundle.CVMatchSummary = validation.Summary

	jobSpecs := opts.Request.FilteredJobSpecs()
	if len(jobSpecs) == 0 {
		emit("done", "no job specifications supplied; returning claims and evidence validation")
		writeArtifacts(opts.OutputDir, runID, response, log)
		return response, nil
	}

	emit("score_job_fit", fmt.Sprintf("scoring fit against %d job specification(s)", len(jobSpecs)))
	jobFit, err := stages.ScoreJobFit(ctx, client, validation.SkillBreakdown, jobSpecs)
	if err != nil {
		return nil, err
	}
	response.JobFit = jobFit

	emit("done", "pipeline complete")
	writeArtifacts(opts.OutputDir, runID, response, log)
	return response, nil
}
