package stages

import (
	"context"
	"fmt"

	"github.com/jonathan/claim-verifier/internal/llm"
	"github.com/jonathan/claim-verifier/internal/prompts"
	"github.com/jonathan/claim-verifier/internal/types"
)

// ExtractClaims turns resume plain text into structured CV claims. Only
// explicitly stated skills, projects, and certifications are extracted;
// the prompt forbids inference and fabrication.
func ExtractClaims(ctx context.Context, client llm.Client, resumeText string) (*types.CVClaims, error) {
	template := prompts.MustGet("stages.json", "extract-claims")
	prompt := prompts.Format(template, map[string]string{
		"ResumeText": resumeText,
	})

	raw, err := callForJSON(ctx, client, StageClaimExtraction, prompt)
	if err != nil {
		return nil, err
	}

	return ValidateClaimsPayload(raw)
}

// ValidateClaimsPayload checks an untrusted claim-extraction response
// field by field and converts it into CVClaims.
func ValidateClaimsPayload(raw map[string]any) (*types.CVClaims, error) {
	const stage = StageClaimExtraction

	skillsRaw, serr := arrayField(stage, raw, "skills")
	if serr != nil {
		return nil, serr
	}

	claims := &types.CVClaims{
		Skills:         make([]types.SkillClaim, 0, len(skillsRaw)),
		Projects:       []types.ProjectClaim{},
		Certifications: []string{},
	}

	for i, item := range skillsRaw {
		skill, ok := item.(map[string]any)
		if !ok {
			return nil, &SchemaError{Stage: stage, Field: fmt.Sprintf("skills[%d]", i), Message: "must be an object"}
		}
		name, serr := nonEmptyString(stage, skill, "name")
		if serr != nil {
			serr.Field = fmt.Sprintf("skills[%d].%s", i, serr.Field)
			return nil, serr
		}
		category, serr := nonEmptyString(stage, skill, "category")
		if serr != nil {
			serr.Field = fmt.Sprintf("skills[%d].%s", i, serr.Field)
			return nil, serr
		}
		if !types.ValidSkillCategory(category) {
			return nil, &SchemaError{
				Stage: stage, Field: fmt.Sprintf("skills[%d].category", i),
				Message: "must be one of: code, tool, networking, certification",
			}
		}
		count, ok := skill["mention_count"].(float64)
		if !ok || count < 1 {
			return nil, &SchemaError{
				Stage: stage, Field: fmt.Sprintf("skills[%d].mention_count", i),
				Message: "must be a positive number",
			}
		}

		claims.Skills = append(claims.Skills, types.SkillClaim{
			Name:         name,
			Category:     types.SkillCategory(category),
			MentionCount: int(count),
		})
	}

	projectsRaw, serr := arrayField(stage, raw, "projects")
	if serr != nil {
		return nil, serr
	}
	for i, item := range projectsRaw {
		project, ok := item.(map[string]any)
		if !ok {
			return nil, &SchemaError{Stage: stage, Field: fmt.Sprintf("projects[%d]", i), Message: "must be an object"}
		}
		name, serr := nonEmptyString(stage, project, "name")
		if serr != nil {
			serr.Field = fmt.Sprintf("projects[%d].%s", i, serr.Field)
			return nil, serr
		}
		techRaw, serr := arrayField(stage, project, "technologies")
		if serr != nil {
			serr.Field = fmt.Sprintf("projects[%d].%s", i, serr.Field)
			return nil, serr
		}
		claims.Projects = append(claims.Projects, types.ProjectClaim{
			Name:         name,
			Technologies: stringSlice(techRaw),
		})
	}

	certsRaw, serr := arrayField(stage, raw, "certifications")
	if serr != nil {
		return nil, serr
	}
	claims.Certifications = stringSlice(certsRaw)

	return claims, nil
}
