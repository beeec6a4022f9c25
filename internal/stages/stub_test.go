package stages

import (
	"context"
	"errors"
)

// stubClient is a deterministic llm.Client for tests. It replays canned
// responses in order and records every prompt it was sent.
type stubClient struct {
	responses []string
	err       error
	prompts   []string
}

func (s *stubClient) GenerateJSON(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	if len(s.prompts) > len(s.responses) {
		return "", errors.New("stub exhausted")
	}
	return s.responses[len(s.prompts)-1], nil
}

func (s *stubClient) Model() string { return "stub-model" }

func (s *stubClient) Close() error { return nil }
