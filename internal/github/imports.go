package github

import (
	"regexp"
	"strings"
)

// maxImports caps the number of import symbols collected per repository.
const maxImports = 50

// sourceExtensions are the root-level source file extensions scanned for
// import statements.
var sourceExtensions = []string{".js", ".ts", ".jsx", ".tsx", ".py", ".java", ".go", ".rs"}

// Three line-level heuristics, applied independently to every line:
// a JS/TS import with a string-literal module path, a Python import or
// from clause (only the top-level package is kept), and a Java dotted
// import. Lines may legitimately match more than one.
var (
	jsImportRe   = regexp.MustCompile(`^(?:import|from)\s+['"]([^'"]+)['"]`)
	pyImportRe   = regexp.MustCompile(`^(?:import|from)\s+([a-zA-Z0-9_.]+)`)
	javaImportRe = regexp.MustCompile(`^import\s+([a-zA-Z0-9_.]+)`)
)

// isSourceFile reports whether a file name has a recognized source extension.
func isSourceFile(name string) bool {
	for _, ext := range sourceExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// importSet accumulates deduplicated import symbols in insertion order,
// refusing additions past the cap.
type importSet struct {
	seen  map[string]bool
	order []string
}

func newImportSet() *importSet {
	return &importSet{seen: make(map[string]bool)}
}

func (s *importSet) add(symbol string) {
	if symbol == "" || s.seen[symbol] || len(s.order) >= maxImports {
		return
	}
	s.seen[symbol] = true
	s.order = append(s.order, symbol)
}

// scanImports applies the import heuristics to one source file's content.
func (s *importSet) scanImports(content string) {
	for _, line := range strings.Split(content, "\n") {
		if m := jsImportRe.FindStringSubmatch(line); m != nil {
			s.add(m[1])
		}
		if m := pyImportRe.FindStringSubmatch(line); m != nil {
			s.add(strings.Split(m[1], ".")[0])
		}
		if m := javaImportRe.FindStringSubmatch(line); m != nil {
			s.add(m[1])
		}
	}
}

// symbols returns the collected imports, or nil when none were found.
func (s *importSet) symbols() []string {
	if len(s.order) == 0 {
		return nil
	}
	return s.order
}
