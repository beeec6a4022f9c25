package stages

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathan/claim-verifier/internal/llm"
	"github.com/jonathan/claim-verifier/internal/prompts"
	"github.com/jonathan/claim-verifier/internal/types"
)

// ValidateEvidence compares extracted CV claims against the GitHub
// evidence bundle. Scoring is driven by explicit numeric rules in the
// prompt: only code-category skills contribute, at 100/50/0 percent
// credit for direct/indirect/unverifiable support, and zero code skills
// pin the score to 0.
func ValidateEvidence(ctx context.Context, client llm.Client, claims *types.CVClaims, bundle *types.EvidenceBundle) (*types.EvidenceValidationResult, error) {
	claimsJSON, err := json.MarshalIndent(claims, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal CV claims: %w", err)
	}
	bundleJSON, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal evidence bundle: %w", err)
	}

	template := prompts.MustGet("stages.json", "validate-evidence")
	prompt := prompts.Format(template, map[string]string{
		"CVClaims":       string(claimsJSON),
		"GitHubEvidence": string(bundleJSON),
	})

	raw, err := callForJSON(ctx, client, StageEvidenceValidation, prompt)
	if err != nil {
		return nil, err
	}

	return ValidateEvidencePayload(raw)
}

// ValidateEvidencePayload checks an untrusted evidence-validation
// response field by field.
func ValidateEvidencePayload(raw map[string]any) (*types.EvidenceValidationResult, error) {
	const stage = StageEvidenceValidation

	score, serr := numberInRange(stage, raw, "match_score", 0, 100)
	if serr != nil {
		return nil, serr
	}
	summary, serr := nonEmptyString(stage, raw, "summary")
	if serr != nil {
		return nil, serr
	}
	breakdownRaw, serr := arrayField(stage, raw, "skill_breakdown")
	if serr != nil {
		return nil, serr
	}

	result := &types.EvidenceValidationResult{
		MatchScore:     score,
		Summary:        summary,
		SkillBreakdown: make([]types.SkillBreakdownItem, 0, len(breakdownRaw)),
	}

	for i, item := range breakdownRaw {
		entry, ok := item.(map[string]any)
		if !ok {
			return nil, &SchemaError{Stage: stage, Field: fmt.Sprintf("skill_breakdown[%d]", i), Message: "must be an object"}
		}
		skill, serr := nonEmptyString(stage, entry, "skill")
		if serr != nil {
			serr.Field = fmt.Sprintf("skill_breakdown[%d].%s", i, serr.Field)
			return nil, serr
		}
		category, serr := nonEmptyString(stage, entry, "category")
		if serr != nil {
			serr.Field = fmt.Sprintf("skill_breakdown[%d].%s", i, serr.Field)
			return nil, serr
		}
		level, serr := nonEmptyString(stage, entry, "support_level")
		if serr != nil {
			serr.Field = fmt.Sprintf("skill_breakdown[%d].%s", i, serr.Field)
			return nil, serr
		}
		if !types.ValidSupportLevel(level) {
			return nil, &SchemaError{
				Stage: stage, Field: fmt.Sprintf("skill_breakdown[%d].support_level", i),
				Message: "must be one of: directly_supported, indirectly_supported, not_verifiable_via_github",
			}
		}
		notes, serr := nonEmptyString(stage, entry, "notes")
		if serr != nil {
			serr.Field = fmt.Sprintf("skill_breakdown[%d].%s", i, serr.Field)
			return nil, serr
		}

		result.SkillBreakdown = append(result.SkillBreakdown, types.SkillBreakdownItem{
			Skill:        skill,
			Category:     category,
			SupportLevel: types.SupportLevel(level),
			Notes:        notes,
		})
	}

	return result, nil
}
