package stages

import "fmt"

// APICallError represents a failure calling the generative model
type APICallError struct {
	Stage   string
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: API call failed: %s: %v", e.Stage, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: API call failed: %s", e.Stage, e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// ResponseParseError represents a model response that was not valid JSON
// after unwrapping any code fence.
type ResponseParseError struct {
	Stage string
	Cause error
}

func (e *ResponseParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse LLM response: %v", e.Stage, e.Cause)
}

func (e *ResponseParseError) Unwrap() error {
	return e.Cause
}

// SchemaError represents a parsed response that violated the stage's
// schema. Field names the offending location in the payload.
type SchemaError struct {
	Stage   string
	Field   string
	Message string
}

func (e *SchemaError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: invalid response format: %s: %s", e.Stage, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: invalid response format: %s", e.Stage, e.Message)
}
