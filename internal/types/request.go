package types

import "strings"

// AnalysisRequest is the inbound boundary consumed by the pipeline. Upstream
// plumbing (file upload, form parsing) has already happened by the time one
// of these exists.
type AnalysisRequest struct {
	ResumeText        string   `json:"resume_text" validate:"required"`
	GitHubIdentifier  string   `json:"github_identifier,omitempty"`
	JobSpecifications []string `json:"job_specifications,omitempty"`

	GitHubToken  string `json:"-"`
	GeminiAPIKey string `json:"-"`
}

// FilteredJobSpecs returns the job specifications with empty and
// whitespace-only entries removed, trimmed, in submission order.
func (r *AnalysisRequest) FilteredJobSpecs() []string {
	var specs []string
	for _, s := range r.JobSpecifications {
		if t := strings.TrimSpace(s); t != "" {
			specs = append(specs, t)
		}
	}
	return specs
}

// AnalysisResponse is the structured object returned to the persistence/UI
// layer. cv_claims is always present; the other sections are omitted (not
// null-filled) when their stage did not run.
type AnalysisResponse struct {
	CVClaims           *CVClaims                 `json:"cv_claims"`
	GitHubEvidence     *EvidenceBundle           `json:"github_evidence,omitempty"`
	EvidenceValidation *EvidenceValidationResult `json:"evidence_validation,omitempty"`
	JobFit             *JobFitResult             `json:"job_fit,omitempty"`
}
