// Package types provides type definitions for structured data used throughout the claim-verifier system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SkillCategory classifies a claimed skill into one of the four closed categories.
type SkillCategory string

// Skill category constants. Every extracted skill carries exactly one of these.
const (
	CategoryCode          SkillCategory = "code"
	CategoryTool          SkillCategory = "tool"
	CategoryNetworking    SkillCategory = "networking"
	CategoryCertification SkillCategory = "certification"
)

// ValidSkillCategory reports whether s is one of the four recognized categories.
func ValidSkillCategory(s string) bool {
	switch SkillCategory(s) {
	case CategoryCode, CategoryTool, CategoryNetworking, CategoryCertification:
		return true
	}
	return false
}

// SkillClaim represents a single explicitly stated skill extracted from resume text
type SkillClaim struct {
	Name         string        `json:"name"`
	Category     SkillCategory `json:"category"`
	MentionCount int           `json:"mention_count"`
}

// ProjectClaim represents an explicitly stated project and its technologies
type ProjectClaim struct {
	Name         string   `json:"name"`
	Technologies []string `json:"technologies"`
}

// CVClaims holds everything extracted from one resume. Created once per
// submitted resume and never modified afterward.
type CVClaims struct {
	Skills         []SkillClaim   `json:"skills"`
	Projects       []ProjectClaim `json:"projects"`
	Certifications []string       `json:"certifications"`
}

// CodeSkills returns the subset of skills in the code category.
func (c *CVClaims) CodeSkills() []SkillClaim {
	var out []SkillClaim
	for _, s := range c.Skills {
		if s.Category == CategoryCode {
			out = append(out, s)
		}
	}
	return out
}
