package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jonathan/claim-verifier/internal/schemas"
	"github.com/jonathan/claim-verifier/internal/types"
)

// writeArtifacts persists each response section plus the complete
// response under rootDir/runID. Artifact writing is best-effort: a
// failure is logged but never fails the request.
func writeArtifacts(rootDir, runID string, response *types.AnalysisResponse, log *zap.Logger) {
	if rootDir == "" {
		return
	}
	dir, err := WriteArtifacts(rootDir, runID, response)
	if err != nil {
		log.Warn("failed to write run artifacts", zap.Error(err))
		return
	}
	log.Info("wrote run artifacts", zap.String("dir", dir))
}

// WriteArtifacts writes the response sections to rootDir/runID and
// returns the created directory. Each section is checked against its
// artifact schema; a mismatch fails the write so that malformed
// artifacts never land on disk.
func WriteArtifacts(rootDir, runID string, response *types.AnalysisResponse) (string, error) {
	dir := filepath.Join(rootDir, runID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	if err := writeSection(dir, "cv_claims.json", schemas.CVClaims, response.CVClaims); err != nil {
		return "", err
	}
	if response.GitHubEvidence != nil {
		// No artifact schema for the evidence bundle: repository evidence
		// fields are all independently nullable.
		if err := writeJSON(dir, "github_evidence.json", response.GitHubEvidence); err != nil {
			return "", err
		}
	}
	if response.EvidenceValidation != nil {
		if err := writeSection(dir, "evidence_validation.json", schemas.EvidenceValidation, response.EvidenceValidation); err != nil {
			return "", err
		}
	}
	if response.JobFit != nil {
		if err := writeSection(dir, "job_fit.json", schemas.JobFit, response.JobFit); err != nil {
			return "", err
		}
	}
	if err := writeJSON(dir, "complete_response.json", response); err != nil {
		return "", err
	}

	return dir, nil
}

func writeSection(dir, filename, schemaName string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if err := schemas.Validate(schemaName, data); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, filename), data, 0o644)
}

func writeJSON(dir, filename string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, filename), data, 0o644)
}
