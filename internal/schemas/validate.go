// Package schemas provides JSON Schema validation for the structured
// artifacts the pipeline writes to disk. Stage responses are validated
// field by field where they are produced; this package is a second line
// of defense over the persisted files.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// Artifact schema names accepted by Validate.
const (
	CVClaims           = "cv_claims"
	EvidenceValidation = "evidence_validation"
	JobFit             = "job_fit"
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Name    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Name, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Name, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// Validate checks a JSON document against one of the embedded artifact
// schemas. Returns nil on success, a *ValidationError when the document
// does not match, or a *SchemaLoadError when the schema itself is broken.
func Validate(name string, document []byte) error {
	schemaBytes, err := schemaFiles.ReadFile(name + ".schema.json")
	if err != nil {
		return &SchemaLoadError{Name: name, Message: "unknown schema", Cause: err}
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaBytes)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{Name: name, Message: "validation could not run", Cause: err}
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
