package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ValidPrompt(t *testing.T) {
	ClearCache()

	prompt, err := Get("stages.json", "extract-claims")
	require.NoError(t, err)
	assert.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "Extract ONLY explicit technical skills")
}

func TestGet_AllStagePrompts(t *testing.T) {
	ClearCache()

	for _, key := range []string{"extract-claims", "validate-evidence", "job-fit"} {
		prompt, err := Get("stages.json", key)
		require.NoError(t, err, "prompt %s", key)
		assert.NotEmpty(t, prompt)
	}
}

func TestGet_InvalidFile(t *testing.T) {
	ClearCache()

	_, err := Get("nonexistent.json", "some-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestGet_InvalidKey(t *testing.T) {
	ClearCache()

	_, err := Get("stages.json", "nonexistent-key")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestMustGet_Panics(t *testing.T) {
	ClearCache()

	assert.Panics(t, func() {
		MustGet("stages.json", "nonexistent-key")
	})
}

func TestFormat_Placeholders(t *testing.T) {
	template := "Resume text:\n{{.ResumeText}}\nEnd."
	result := Format(template, map[string]string{"ResumeText": "Go developer"})
	assert.Equal(t, "Resume text:\nGo developer\nEnd.", result)
}

func TestFormat_MissingKeyLeavesPlaceholder(t *testing.T) {
	template := "{{.Known}} and {{.Unknown}}"
	result := Format(template, map[string]string{"Known": "x"})
	assert.Equal(t, "x and {{.Unknown}}", result)
}
