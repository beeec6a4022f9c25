// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags or environment variables.
type Config struct {
	// Inputs
	Resume    string   `json:"resume,omitempty"`     // Path to resume file (PDF, DOCX, or TXT)
	GitHubURL string   `json:"github_url,omitempty"` // GitHub profile URL or handle
	JobFiles  []string `json:"job_files,omitempty"`  // Paths to job specification text files

	// Credentials
	GeminiAPIKey string `json:"gemini_api_key,omitempty"` // Gemini API key (falls back to GEMINI_API_KEY)
	GitHubToken  string `json:"github_token,omitempty"`   // GitHub token (falls back to GITHUB_TOKEN)

	// Behavior
	Model     string `json:"model,omitempty"`      // Override the default Gemini model
	OutputDir string `json:"output_dir,omitempty"` // Root directory for per-run artifacts
	Verbose   bool   `json:"verbose,omitempty"`    // Print detailed summaries
	JSONLogs  bool   `json:"json_logs,omitempty"`  // Emit logs as JSON
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required
// fields are enforced later, after merging with flags and environment.
func (c *Config) Validate() error {
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	for _, jobFile := range c.JobFiles {
		if _, err := os.Stat(jobFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", jobFile)
		}
	}
	return nil
}

// GeminiKey resolves the API key: explicit config value first, then the
// GEMINI_API_KEY environment variable.
func (c *Config) GeminiKey() string {
	if c.GeminiAPIKey != "" {
		return c.GeminiAPIKey
	}
	return os.Getenv("GEMINI_API_KEY")
}

// Token resolves the GitHub token: explicit config value first, then the
// GITHUB_TOKEN environment variable. An empty result is allowed;
// unauthenticated collection runs against a lower quota.
func (c *Config) Token() string {
	if c.GitHubToken != "" {
		return c.GitHubToken
	}
	return os.Getenv("GITHUB_TOKEN")
}
