package types

// RepositorySummary identifies one GitHub repository at fetch time
type RepositorySummary struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Fork     bool   `json:"fork"`
	PushedAt string `json:"pushed_at"`
}

// CommitInfo is one entry in a repository's recent commit history.
// Author falls back from the commit author's login to the git author name
// to "unknown"; Date is nil when neither author nor committer carried one.
type CommitInfo struct {
	Author  string  `json:"author"`
	Date    *string `json:"date"`
	Message string  `json:"message"`
}

// RepositoryEvidence is the per-repository signal bundle. Every field is
// independently optional: a missing signal degrades to its zero shape
// ({} for languages, [] for root files and commits, null for
// dependencies, imports, and the readme excerpt) without affecting the
// others.
type RepositoryEvidence struct {
	Languages     map[string]int `json:"languages"`
	RootFiles     []string       `json:"root_files"`
	Dependencies  []string       `json:"dependencies"`
	Imports       []string       `json:"imports"`
	RecentCommits []CommitInfo   `json:"recent_commits"`
	ReadmeExcerpt *string        `json:"readme_excerpt"`
}

// RepositoryEvidenceEntry pairs a repository's identity with its evidence.
// Evidence is nil only when the whole evidence fetch for that repository
// failed; partial evidence (all sub-fields empty) is a distinct state.
type RepositoryEvidenceEntry struct {
	Repo     RepositorySummary   `json:"repo"`
	Evidence *RepositoryEvidence `json:"evidence"`
}

// EvidenceBundle is the full result of scanning one GitHub profile, one
// entry per owned repository in the host's listing order.
type EvidenceBundle struct {
	Type string                    `json:"type"`
	Data []RepositoryEvidenceEntry `json:"data"`

	// Convenience fields copied from evidence validation when it ran.
	CVMatchScore   *float64 `json:"cv_match_score,omitempty"`
	CVMatchSummary string   `json:"cv_match_summary,omitempty"`
}
