package github

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanImports_JSStringLiteral(t *testing.T) {
	set := newImportSet()
	set.scanImports("import 'react'\nfrom \"lodash\"\nconst x = 1")

	assert.Contains(t, set.symbols(), "react")
	assert.Contains(t, set.symbols(), "lodash")
}

func TestScanImports_PythonTopLevelSegment(t *testing.T) {
	set := newImportSet()
	set.scanImports("import numpy.linalg\nfrom django.db import models")

	// The Python heuristic keeps the top segment; the Java heuristic also
	// fires on the same line and keeps the full dotted name.
	assert.Contains(t, set.symbols(), "numpy")
	assert.Contains(t, set.symbols(), "django")
	assert.Contains(t, set.symbols(), "numpy.linalg")
}

func TestScanImports_JavaDottedName(t *testing.T) {
	set := newImportSet()
	set.scanImports("import java.util.List;")

	// The Java heuristic keeps the dotted name; the Python heuristic also
	// fires on the same line and keeps the top segment.
	assert.Contains(t, set.symbols(), "java.util.List")
	assert.Contains(t, set.symbols(), "java")
}

func TestScanImports_IgnoresIndentedLines(t *testing.T) {
	set := newImportSet()
	set.scanImports("    import hidden\nx = 2")

	assert.Nil(t, set.symbols())
}

func TestImportSet_CapAt50(t *testing.T) {
	set := newImportSet()
	var sb strings.Builder
	for i := 0; i < 80; i++ {
		fmt.Fprintf(&sb, "import pkg%d\n", i)
	}
	set.scanImports(sb.String())

	assert.Len(t, set.symbols(), maxImports)
	// Insertion order survives truncation.
	assert.Equal(t, "pkg0", set.symbols()[0])
	assert.Equal(t, "pkg49", set.symbols()[maxImports-1])
}

func TestImportSet_Dedupes(t *testing.T) {
	set := newImportSet()
	set.scanImports("import os\nimport os\nimport sys")

	assert.Equal(t, []string{"os", "sys"}, set.symbols())
}

func TestImportSet_EmptyIsNil(t *testing.T) {
	set := newImportSet()
	assert.Nil(t, set.symbols())
}

func TestIsSourceFile(t *testing.T) {
	assert.True(t, isSourceFile("main.go"))
	assert.True(t, isSourceFile("app.tsx"))
	assert.True(t, isSourceFile("lib.rs"))
	assert.False(t, isSourceFile("README.md"))
	assert.False(t, isSourceFile("Makefile"))
}
