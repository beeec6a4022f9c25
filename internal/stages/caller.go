// Package stages implements the three LLM-mediated pipeline stages: claim
// extraction from resume text, validation of claims against GitHub
// evidence, and job-fit scoring of the validated skills.
//
// Every stage shares the same response handling (unwrap a possible code
// fence, parse as JSON) and then applies its own schema validator, so
// per-field error messages carry the stage that owns the schema.
package stages

import (
	"context"
	"encoding/json"

	"github.com/jonathan/claim-verifier/internal/llm"
)

// Stage name constants used in error messages.
const (
	StageClaimExtraction    = "claim_extraction"
	StageEvidenceValidation = "evidence_validation"
	StageJobFit             = "job_fit"
)

// callForJSON sends the prompt and returns the parsed but unvalidated
// response object. Schema validation is the caller's job.
func callForJSON(ctx context.Context, client llm.Client, stage, prompt string) (map[string]any, error) {
	text, err := client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, &APICallError{Stage: stage, Message: "failed to generate content", Cause: err}
	}

	cleaned := llm.CleanJSONBlock(text)

	var parsed map[string]any
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return nil, &ResponseParseError{Stage: stage, Cause: err}
	}
	return parsed, nil
}
