package github

import (
	"encoding/json"
	"sort"
	"strings"
)

// manifestNames lists recognized dependency manifest files in priority
// order. Only package.json, requirements.txt, and Pipfile are parsed for
// names today; the rest are recognized so their presence shows up in root
// file listings, but no parser exists for them yet.
var manifestNames = []string{
	"package.json",
	"requirements.txt",
	"Pipfile",
	"pom.xml",
	"build.gradle",
	"Cargo.toml",
	"go.mod",
}

// versionOperators are the characters that begin a version specifier in
// requirements.txt / Pipfile lines.
const versionOperators = ">=<!"

// parseManifest extracts dependency names from a manifest file's content.
// Unrecognized or unparseable manifests yield no names.
func parseManifest(filename, content string) []string {
	switch filename {
	case "package.json":
		return parsePackageJSON(content)
	case "requirements.txt", "Pipfile":
		return parseRequirementLines(content)
	default:
		return nil
	}
}

// parsePackageJSON merges the dependencies and devDependencies keys.
// Each section is sorted so identical manifests always yield the same
// dependency order.
func parsePackageJSON(content string) []string {
	var pkg struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal([]byte(content), &pkg); err != nil {
		return nil
	}

	var names []string
	for name := range pkg.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)

	var dev []string
	for name := range pkg.DevDependencies {
		if _, dup := pkg.Dependencies[name]; !dup {
			dev = append(dev, name)
		}
	}
	sort.Strings(dev)

	return append(names, dev...)
}

// parseRequirementLines extracts package names line by line, skipping
// blanks and comments and stripping everything from the first version
// operator onward.
func parseRequirementLines(content string) []string {
	var names []string
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if idx := strings.IndexAny(trimmed, versionOperators); idx >= 0 {
			trimmed = trimmed[:idx]
		}
		if name := strings.TrimSpace(trimmed); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// dedupe preserves first-occurrence order.
func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	var out []string
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
