package github

import "fmt"

// InvalidInputError indicates an empty or unusable profile identifier
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// NotGitHubURLError indicates a URL that does not point at github.com
type NotGitHubURLError struct {
	URL string
}

func (e *NotGitHubURLError) Error() string {
	return fmt.Sprintf("URL must be a GitHub profile URL: %s", e.URL)
}

// UsernameError indicates a GitHub URL whose path could not be parsed into a handle
type UsernameError struct {
	URL string
}

func (e *UsernameError) Error() string {
	return fmt.Sprintf("could not extract username from URL: %s", e.URL)
}

// NotFoundError maps an HTTP 404 from the GitHub API
type NotFoundError struct {
	Endpoint string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("GitHub user or resource not found: %s", e.Endpoint)
}

// RateLimitError maps an HTTP 403 from the GitHub API. Remaining and Reset
// carry the quota headers when the response included them.
type RateLimitError struct {
	Endpoint  string
	Remaining string
	Reset     string
}

func (e *RateLimitError) Error() string {
	msg := "GitHub API rate limit exceeded. Consider using a GitHub personal access token."
	if e.Remaining != "" || e.Reset != "" {
		msg = fmt.Sprintf("%s (remaining=%s, reset=%s)", msg, e.Remaining, e.Reset)
	}
	return msg
}

// APIError maps any other non-2xx response from the GitHub API
type APIError struct {
	Endpoint   string
	StatusCode int
	Status     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("GitHub API error: %d %s", e.StatusCode, e.Status)
}
