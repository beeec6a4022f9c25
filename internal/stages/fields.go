package stages

import "fmt"

// Field accessors for untrusted map[string]any payloads. Each returns a
// *SchemaError (with the stage and field filled in) instead of trusting
// the shape.

func nonEmptyString(stage string, m map[string]any, field string) (string, *SchemaError) {
	v, ok := m[field]
	if !ok {
		return "", &SchemaError{Stage: stage, Field: field, Message: "missing required field"}
	}
	s, ok := v.(string)
	if !ok {
		return "", &SchemaError{Stage: stage, Field: field, Message: "must be a string"}
	}
	if s == "" {
		return "", &SchemaError{Stage: stage, Field: field, Message: "must be a non-empty string"}
	}
	return s, nil
}

func numberInRange(stage string, m map[string]any, field string, min, max float64) (float64, *SchemaError) {
	v, ok := m[field]
	if !ok {
		return 0, &SchemaError{Stage: stage, Field: field, Message: "missing required field"}
	}
	n, ok := v.(float64)
	if !ok {
		return 0, &SchemaError{Stage: stage, Field: field, Message: "must be a number"}
	}
	if n < min || n > max {
		return 0, &SchemaError{
			Stage: stage, Field: field,
			Message: fmt.Sprintf("must be a number between %g and %g", min, max),
		}
	}
	return n, nil
}

func arrayField(stage string, m map[string]any, field string) ([]any, *SchemaError) {
	v, ok := m[field]
	if !ok {
		return nil, &SchemaError{Stage: stage, Field: field, Message: "missing or invalid array"}
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, &SchemaError{Stage: stage, Field: field, Message: "missing or invalid array"}
	}
	return arr, nil
}

func objectField(stage string, m map[string]any, field string) (map[string]any, *SchemaError) {
	v, ok := m[field]
	if !ok {
		return nil, &SchemaError{Stage: stage, Field: field, Message: "missing or invalid object"}
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, &SchemaError{Stage: stage, Field: field, Message: "missing or invalid object"}
	}
	return obj, nil
}

// stringSlice converts an []any of strings, tolerating non-string
// elements by stringifying them (element types are unchecked by contract).
func stringSlice(arr []any) []string {
	out := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			out = append(out, s)
		} else {
			out = append(out, fmt.Sprintf("%v", v))
		}
	}
	return out
}
