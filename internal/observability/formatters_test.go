package observability

import (
	"bytes"
	"testing"

	"github.com/jonathan/claim-verifier/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintClaims(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	claims := &types.CVClaims{
		Skills: []types.SkillClaim{
			{Name: "React", Category: types.CategoryCode, MentionCount: 3},
			{Name: "Docker", Category: types.CategoryTool, MentionCount: 1},
		},
		Projects: []types.ProjectClaim{
			{Name: "webapp", Technologies: []string{"React", "TypeScript"}},
		},
		Certifications: []string{"CCNA"},
	}

	p.PrintClaims(claims)
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED CV CLAIMS")
	assert.Contains(t, output, "React")
	assert.Contains(t, output, "mentioned 3x")
	assert.Contains(t, output, "webapp")
	assert.Contains(t, output, "CCNA")
}

func TestPrintClaims_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintClaims(nil)

	assert.Empty(t, buf.String())
}

func TestPrintEvidence(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	bundle := &types.EvidenceBundle{
		Type: "repositories",
		Data: []types.RepositoryEvidenceEntry{
			{
				Repo: types.RepositorySummary{Name: "webapp"},
				Evidence: &types.RepositoryEvidence{
					Languages:    map[string]int{"JavaScript": 1000},
					Dependencies: []string{"react"},
				},
			},
			{
				Repo:     types.RepositorySummary{Name: "broken"},
				Evidence: nil,
			},
		},
	}

	p.PrintEvidence(bundle)
	output := buf.String()

	assert.Contains(t, output, "GITHUB EVIDENCE")
	assert.Contains(t, output, "Repositories scanned: 2")
	assert.Contains(t, output, "webapp")
	assert.Contains(t, output, "broken (no evidence)")
}

func TestPrintEvidenceValidation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.EvidenceValidationResult{
		MatchScore: 75,
		Summary:    "Most code skills verified.",
		SkillBreakdown: []types.SkillBreakdownItem{
			{Skill: "React", Category: "code", SupportLevel: types.DirectlySupported},
			{Skill: "Terraform", Category: "tool", SupportLevel: types.NotVerifiableViaGithub},
		},
	}

	p.PrintEvidenceValidation(result)
	output := buf.String()

	assert.Contains(t, output, "EVIDENCE VALIDATION")
	assert.Contains(t, output, "Match score: 75/100")
	assert.Contains(t, output, "directly_supported")
}

func TestPrintJobFit(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.JobFitResult{
		PreferredRole:           "Job 2",
		RoleMatchScores:         map[string]float64{"Job 1": 40, "Job 2": 90},
		SkillCoveragePercentage: 80,
		Summary:                 "Job 2 aligns with verified skills.",
		MatchedSkills:           []string{"React"},
		MissingSkills:           []string{"Rust"},
	}

	p.PrintJobFit(result)
	output := buf.String()

	assert.Contains(t, output, "JOB FIT")
	assert.Contains(t, output, "Preferred role:  Job 2")
	assert.Contains(t, output, "Job 1: 40")
	assert.Contains(t, output, "Matched: React")
	assert.Contains(t, output, "Missing: Rust")
}
