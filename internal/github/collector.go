package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/jonathan/claim-verifier/internal/types"
)

// maxCommits caps the recent-commit history collected per repository.
const maxCommits = 20

// readmeExcerptLimit caps the decoded README excerpt length in bytes.
const readmeExcerptLimit = 2000

// Collector walks a GitHub profile's repositories and assembles an
// evidence bundle. Repositories are fetched strictly sequentially: the
// evidence scan trades latency for predictable rate-limit consumption.
type Collector struct {
	client *Client
	logger *zap.Logger
}

// NewCollector creates a Collector around an API client. A nil logger
// disables logging.
func NewCollector(client *Client, logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{client: client, logger: logger}
}

// apiRepo is the slice of the repository listing payload we consume.
type apiRepo struct {
	Name     string `json:"name"`
	HTMLURL  string `json:"html_url"`
	Fork     bool   `json:"fork"`
	PushedAt string `json:"pushed_at"`
}

// contentItem is one entry in a repository contents listing.
type contentItem struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	DownloadURL string `json:"download_url"`
}

// apiCommit mirrors the commit listing payload.
type apiCommit struct {
	Author *struct {
		Login string `json:"login"`
	} `json:"author"`
	Commit struct {
		Message string `json:"message"`
		Author  *struct {
			Name string `json:"name"`
			Date string `json:"date"`
		} `json:"author"`
		Committer *struct {
			Date string `json:"date"`
		} `json:"committer"`
	} `json:"commit"`
}

// ExtractUsername normalizes a profile URL or raw handle into a GitHub
// username. URLs must point at github.com and carry at least one path
// segment; bare handles may carry a leading "@".
func ExtractUsername(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", &InvalidInputError{Message: "GitHub profile URL or username is required"}
	}

	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		parsed, err := url.Parse(trimmed)
		if err != nil || !strings.Contains(parsed.Host, "github.com") {
			return "", &NotGitHubURLError{URL: trimmed}
		}
		segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
		if len(segments) == 0 || segments[0] == "" {
			return "", &UsernameError{URL: trimmed}
		}
		return segments[0], nil
	}

	return strings.TrimPrefix(trimmed, "@"), nil
}

// CollectEvidence scans every repository owned by the profile and returns
// the evidence bundle, ordered as the host listed them. A failure to list
// repositories fails the whole scan; a failure inside one repository only
// nils out that entry's evidence.
func (c *Collector) CollectEvidence(ctx context.Context, profileURLOrHandle string) (*types.EvidenceBundle, error) {
	username, err := ExtractUsername(profileURLOrHandle)
	if err != nil {
		return nil, err
	}

	c.logger.Info("listing repositories", zap.String("username", username))

	rawRepos, err := c.client.listAll(ctx, "/users/"+username+"/repos")
	if err != nil {
		return nil, err
	}

	entries := make([]types.RepositoryEvidenceEntry, 0, len(rawRepos))
	for _, raw := range rawRepos {
		var repo apiRepo
		if err := json.Unmarshal(raw, &repo); err != nil {
			return nil, fmt.Errorf("failed to decode repository listing: %w", err)
		}

		summary := types.RepositorySummary{
			Name:     repo.Name,
			URL:      repo.HTMLURL,
			Fork:     repo.Fork,
			PushedAt: repo.PushedAt,
		}

		evidence, err := c.repoEvidence(ctx, username, repo.Name)
		if err != nil {
			c.logger.Warn("evidence fetch failed for repository",
				zap.String("repo", repo.Name), zap.Error(err))
			entries = append(entries, types.RepositoryEvidenceEntry{Repo: summary, Evidence: nil})
			continue
		}

		c.logger.Debug("collected evidence", zap.String("repo", repo.Name))
		entries = append(entries, types.RepositoryEvidenceEntry{Repo: summary, Evidence: evidence})
	}

	return &types.EvidenceBundle{Type: "repositories", Data: entries}, nil
}

// repoEvidence runs the six evidence sub-fetches for one repository.
// Every sub-fetch degrades to its empty shape on failure so that one
// missing signal never blanks out the others. Only context cancellation
// aborts the sequence.
func (c *Collector) repoEvidence(ctx context.Context, owner, repo string) (*types.RepositoryEvidence, error) {
	evidence := &types.RepositoryEvidence{}

	steps := []func(context.Context, string, string, *types.RepositoryEvidence){
		c.fetchLanguages,
		c.fetchRootFiles,
		c.fetchDependencies,
		c.fetchImports,
		c.fetchRecentCommits,
		c.fetchReadmeExcerpt,
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		step(ctx, owner, repo, evidence)
	}
	return evidence, nil
}

func (c *Collector) fetchLanguages(ctx context.Context, owner, repo string, ev *types.RepositoryEvidence) {
	languages := map[string]int{}
	if err := c.client.getJSON(ctx, fmt.Sprintf("/repos/%s/%s/languages", owner, repo), &languages); err != nil {
		c.logger.Debug("language fetch degraded", zap.String("repo", repo), zap.Error(err))
		languages = map[string]int{}
	}
	ev.Languages = languages
}

func (c *Collector) fetchRootFiles(ctx context.Context, owner, repo string, ev *types.RepositoryEvidence) {
	ev.RootFiles = []string{}
	contents, err := c.rootContents(ctx, owner, repo)
	if err != nil {
		c.logger.Debug("root file fetch degraded", zap.String("repo", repo), zap.Error(err))
		return
	}
	for _, item := range contents {
		if item.Type == "file" {
			ev.RootFiles = append(ev.RootFiles, item.Name)
		}
	}
}

func (c *Collector) fetchDependencies(ctx context.Context, owner, repo string, ev *types.RepositoryEvidence) {
	contents, err := c.rootContents(ctx, owner, repo)
	if err != nil {
		c.logger.Debug("dependency fetch degraded", zap.String("repo", repo), zap.Error(err))
		return
	}

	var names []string
	for _, manifest := range manifestNames {
		item, ok := findFile(contents, manifest)
		if !ok || item.DownloadURL == "" {
			continue
		}
		content, err := c.client.fetchRaw(ctx, item.DownloadURL)
		if err != nil {
			continue
		}
		names = append(names, parseManifest(manifest, content)...)
	}

	if deduped := dedupe(names); len(deduped) > 0 {
		ev.Dependencies = deduped
	}
}

func (c *Collector) fetchImports(ctx context.Context, owner, repo string, ev *types.RepositoryEvidence) {
	contents, err := c.rootContents(ctx, owner, repo)
	if err != nil {
		c.logger.Debug("import fetch degraded", zap.String("repo", repo), zap.Error(err))
		return
	}

	set := newImportSet()
	for _, item := range contents {
		if item.Type != "file" || !isSourceFile(item.Name) || item.DownloadURL == "" {
			continue
		}
		content, err := c.client.fetchRaw(ctx, item.DownloadURL)
		if err != nil {
			continue
		}
		set.scanImports(content)
	}
	ev.Imports = set.symbols()
}

func (c *Collector) fetchRecentCommits(ctx context.Context, owner, repo string, ev *types.RepositoryEvidence) {
	ev.RecentCommits = []types.CommitInfo{}

	var commits []apiCommit
	endpoint := fmt.Sprintf("/repos/%s/%s/commits?per_page=%d", owner, repo, maxCommits)
	if err := c.client.getJSON(ctx, endpoint, &commits); err != nil {
		c.logger.Debug("commit fetch degraded", zap.String("repo", repo), zap.Error(err))
		return
	}
	if len(commits) > maxCommits {
		commits = commits[:maxCommits]
	}

	for _, commit := range commits {
		info := types.CommitInfo{
			Author:  "unknown",
			Message: commit.Commit.Message,
		}
		if commit.Author != nil && commit.Author.Login != "" {
			info.Author = commit.Author.Login
		} else if commit.Commit.Author != nil && commit.Commit.Author.Name != "" {
			info.Author = commit.Commit.Author.Name
		}
		if commit.Commit.Author != nil && commit.Commit.Author.Date != "" {
			date := commit.Commit.Author.Date
			info.Date = &date
		} else if commit.Commit.Committer != nil && commit.Commit.Committer.Date != "" {
			date := commit.Commit.Committer.Date
			info.Date = &date
		}
		ev.RecentCommits = append(ev.RecentCommits, info)
	}
}

func (c *Collector) fetchReadmeExcerpt(ctx context.Context, owner, repo string, ev *types.RepositoryEvidence) {
	contents, err := c.rootContents(ctx, owner, repo)
	if err != nil {
		c.logger.Debug("readme fetch degraded", zap.String("repo", repo), zap.Error(err))
		return
	}

	var readmeName string
	for _, item := range contents {
		lower := strings.ToLower(item.Name)
		if item.Type == "file" && (lower == "readme.md" || lower == "readme") {
			readmeName = item.Name
			break
		}
	}
	if readmeName == "" {
		return
	}

	var file struct {
		Content  string `json:"content"`
		Encoding string `json:"encoding"`
	}
	endpoint := fmt.Sprintf("/repos/%s/%s/contents/%s", owner, repo, readmeName)
	if err := c.client.getJSON(ctx, endpoint, &file); err != nil {
		c.logger.Debug("readme fetch degraded", zap.String("repo", repo), zap.Error(err))
		return
	}
	if file.Encoding != "base64" {
		return
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(file.Content, "\n", ""))
	if err != nil {
		return
	}
	excerpt := string(decoded)
	if len(excerpt) > readmeExcerptLimit {
		// Back up to a rune boundary so the cut never splits a
		// multibyte character.
		cut := readmeExcerptLimit
		for cut > 0 && !utf8.RuneStart(excerpt[cut]) {
			cut--
		}
		excerpt = excerpt[:cut]
	}
	ev.ReadmeExcerpt = &excerpt
}

// rootContents lists a repository's root directory.
func (c *Collector) rootContents(ctx context.Context, owner, repo string) ([]contentItem, error) {
	var contents []contentItem
	endpoint := fmt.Sprintf("/repos/%s/%s/contents", owner, repo)
	if err := c.client.getJSON(ctx, endpoint, &contents); err != nil {
		return nil, err
	}
	return contents, nil
}

func findFile(contents []contentItem, name string) (contentItem, bool) {
	for _, item := range contents {
		if item.Type == "file" && item.Name == name {
			return item, true
		}
	}
	return contentItem{}, false
}
