package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"github_url": "https://github.com/octocat",
		"model": "gemini-2.0-flash",
		"verbose": true
	}`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/octocat", cfg.GitHubURL)
	assert.Equal(t, "gemini-2.0-flash", cfg.Model)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestValidate_MissingResume(t *testing.T) {
	cfg := &Config{Resume: filepath.Join(t.TempDir(), "absent.pdf")}
	assert.Error(t, cfg.Validate())
}

func TestValidate_Empty(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestGeminiKey_EnvFallback(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg := &Config{}
	assert.Equal(t, "env-key", cfg.GeminiKey())

	cfg.GeminiAPIKey = "explicit"
	assert.Equal(t, "explicit", cfg.GeminiKey())
}

func TestToken_EnvFallback(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "env-token")

	cfg := &Config{}
	assert.Equal(t, "env-token", cfg.Token())

	cfg.GitHubToken = "explicit"
	assert.Equal(t, "explicit", cfg.Token())
}
