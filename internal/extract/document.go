// Package extract converts uploaded resume documents into plain text.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"code.sajari.com/docconv"
)

// UnsupportedTypeError indicates a document format we cannot convert
type UnsupportedTypeError struct {
	Extension string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %s (upload a PDF or DOCX file)", e.Extension)
}

// EmptyDocumentError indicates a document that converted to no usable text
type EmptyDocumentError struct {
	Path string
}

func (e *EmptyDocumentError) Error() string {
	return fmt.Sprintf("could not extract text from file: %s", e.Path)
}

// FromFile extracts plain text from a resume document on disk. PDF and
// word-processor formats go through docconv; plain text is read directly.
func FromFile(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var text string
	switch ext {
	case ".pdf", ".docx", ".doc", ".rtf", ".odt":
		res, err := docconv.ConvertPath(path)
		if err != nil {
			return "", fmt.Errorf("failed to parse document %s: %w", path, err)
		}
		text = res.Body
	case ".txt":
		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read text file %s: %w", path, err)
		}
		text = string(content)
	default:
		return "", &UnsupportedTypeError{Extension: ext}
	}

	if strings.TrimSpace(text) == "" {
		return "", &EmptyDocumentError{Path: path}
	}
	return text, nil
}
