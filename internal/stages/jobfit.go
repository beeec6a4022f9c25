package stages

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/claim-verifier/internal/llm"
	"github.com/jonathan/claim-verifier/internal/prompts"
	"github.com/jonathan/claim-verifier/internal/types"
)

// JobLabel returns the label for the 1-based job index, e.g. "Job 1".
func JobLabel(i int) string {
	return fmt.Sprintf("Job %d", i)
}

// ScoreJobFit compares the validated skill breakdown against one or more
// job specifications. It takes the adjudicated breakdown rather than raw
// CV claims; support levels from the previous stage are not re-derived.
func ScoreJobFit(ctx context.Context, client llm.Client, breakdown []types.SkillBreakdownItem, jobSpecs []string) (*types.JobFitResult, error) {
	if len(jobSpecs) == 0 {
		return nil, &APICallError{Stage: StageJobFit, Message: "at least one job specification is required"}
	}

	breakdownJSON, err := json.MarshalIndent(breakdown, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal skill breakdown: %w", err)
	}

	var specSections []string
	var schemaLines []string
	for i, spec := range jobSpecs {
		specSections = append(specSections, fmt.Sprintf("Job Specification %d:\n%s", i+1, spec))
		schemaLines = append(schemaLines, fmt.Sprintf("%q: number", JobLabel(i+1)))
	}

	template := prompts.MustGet("stages.json", "job-fit")
	prompt := prompts.Format(template, map[string]string{
		"JobCount":         fmt.Sprintf("%d", len(jobSpecs)),
		"SkillBreakdown":   string(breakdownJSON),
		"JobSpecsSection":  strings.Join(specSections, "\n\n"),
		"ScoreSchemaLines": strings.Join(schemaLines, ",\n    "),
	})

	raw, err := callForJSON(ctx, client, StageJobFit, prompt)
	if err != nil {
		return nil, err
	}

	return ValidateJobFitPayload(raw, len(jobSpecs))
}

// ValidateJobFitPayload checks an untrusted job-fit response field by
// field. jobCount pins the exact set of labels role_match_scores must
// contain.
func ValidateJobFitPayload(raw map[string]any, jobCount int) (*types.JobFitResult, error) {
	const stage = StageJobFit

	preferredRole, serr := nonEmptyString(stage, raw, "preferred_role")
	if serr != nil {
		return nil, serr
	}
	scoresRaw, serr := objectField(stage, raw, "role_match_scores")
	if serr != nil {
		return nil, serr
	}

	scores := make(map[string]float64, jobCount)
	for i := 1; i <= jobCount; i++ {
		label := JobLabel(i)
		score, ok := scoresRaw[label].(float64)
		if !ok || score < 0 || score > 100 {
			return nil, &SchemaError{
				Stage: stage, Field: fmt.Sprintf("role_match_scores[%q]", label),
				Message: "match score must be a number between 0 and 100",
			}
		}
		scores[label] = score
	}

	coverage, serr := numberInRange(stage, raw, "skill_coverage_percentage", 0, 100)
	if serr != nil {
		return nil, serr
	}
	summary, serr := nonEmptyString(stage, raw, "summary")
	if serr != nil {
		return nil, serr
	}
	matchedRaw, serr := arrayField(stage, raw, "matched_skills")
	if serr != nil {
		return nil, serr
	}
	missingRaw, serr := arrayField(stage, raw, "missing_skills")
	if serr != nil {
		return nil, serr
	}

	return &types.JobFitResult{
		PreferredRole:           preferredRole,
		RoleMatchScores:         scores,
		SkillCoveragePercentage: coverage,
		Summary:                 summary,
		MatchedSkills:           stringSlice(matchedRaw),
		MissingSkills:           stringSlice(missingRaw),
	}, nil
}
