package llm

import (
	"testing"
)

func TestCleanJSONBlock_MarkdownCodeBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "code block with language",
			input:    "```javascript\n{\"key\": \"value\"}\n```",
			expected: `{"key": "value"}`,
		},
		{
			name:     "plain JSON",
			input:    `{"key": "value"}`,
			expected: `{"key": "value"}`,
		},
		{
			name:     "surrounding whitespace",
			input:    "  \n{\"key\": \"value\"}\n  ",
			expected: `{"key": "value"}`,
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanJSONBlock(tt.input)
			if result != tt.expected {
				t.Errorf("CleanJSONBlock() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestCleanJSONBlock_Idempotent(t *testing.T) {
	inputs := []string{
		"```json\n{\"a\": 1}\n```",
		"```\n[1, 2, 3]\n```",
		`{"a": 1}`,
	}

	for _, input := range inputs {
		once := CleanJSONBlock(input)
		twice := CleanJSONBlock(once)
		if once != twice {
			t.Errorf("CleanJSONBlock not idempotent for %q: once=%q twice=%q", input, once, twice)
		}
	}
}
