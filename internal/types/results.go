package types

// SupportLevel is the three-way classification of whether GitHub evidence
// backs a claimed skill.
type SupportLevel string

// Support level constants
const (
	DirectlySupported      SupportLevel = "directly_supported"
	IndirectlySupported    SupportLevel = "indirectly_supported"
	NotVerifiableViaGithub SupportLevel = "not_verifiable_via_github"
)

// ValidSupportLevel reports whether s is one of the three recognized levels.
func ValidSupportLevel(s string) bool {
	switch SupportLevel(s) {
	case DirectlySupported, IndirectlySupported, NotVerifiableViaGithub:
		return true
	}
	return false
}

// SkillBreakdownItem is one adjudicated skill in an evidence validation result
type SkillBreakdownItem struct {
	Skill        string       `json:"skill"`
	Category     string       `json:"category"`
	SupportLevel SupportLevel `json:"support_level"`
	Notes        string       `json:"notes"`
}

// EvidenceValidationResult compares CV claims against GitHub evidence
type EvidenceValidationResult struct {
	MatchScore     float64              `json:"match_score"`
	Summary        string               `json:"summary"`
	SkillBreakdown []SkillBreakdownItem `json:"skill_breakdown"`
}

// JobFitResult scores the validated candidate skills against N job
// specifications. RoleMatchScores has exactly one entry per submitted job,
// keyed "Job 1".."Job N".
type JobFitResult struct {
	PreferredRole           string             `json:"preferred_role"`
	RoleMatchScores         map[string]float64 `json:"role_match_scores"`
	SkillCoveragePercentage float64            `json:"skill_coverage_percentage"`
	Summary                 string             `json:"summary"`
	MatchedSkills           []string           `json:"matched_skills"`
	MissingSkills           []string           `json:"missing_skills"`
}
