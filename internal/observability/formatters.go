// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/claim-verifier/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintClaims outputs a human-readable summary of the extracted CV claims.
func (p *Printer) PrintClaims(claims *types.CVClaims) {
	if claims == nil {
		return
	}

	var sb strings.Builder

	if len(claims.Skills) > 0 {
		sb.WriteString("Skills:\n")
		count := min(len(claims.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			skill := claims.Skills[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s, mentioned %dx)\n", skill.Name, skill.Category, skill.MentionCount))
		}
		if len(claims.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(claims.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(claims.Projects) > 0 {
		sb.WriteString("Projects:\n")
		count := min(len(claims.Projects), 3)
		for i := 0; i < count; i++ {
			project := claims.Projects[i]
			sb.WriteString(fmt.Sprintf("  • %s", project.Name))
			if len(project.Technologies) > 0 {
				sb.WriteString(fmt.Sprintf(" [%s]", strings.Join(project.Technologies, ", ")))
			}
			sb.WriteString("\n")
		}
		if len(claims.Projects) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(claims.Projects)-3))
		}
		sb.WriteString("\n")
	}

	if len(claims.Certifications) > 0 {
		sb.WriteString(fmt.Sprintf("Certifications: %s\n", strings.Join(claims.Certifications, ", ")))
	}

	if sb.Len() == 0 {
		sb.WriteString("No claims extracted")
	}

	p.printBox("EXTRACTED CV CLAIMS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEvidence outputs a per-repository summary of the collected
// GitHub evidence. Repositories whose scan failed show as "no evidence".
func (p *Printer) PrintEvidence(bundle *types.EvidenceBundle) {
	if bundle == nil || len(bundle.Data) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Repositories scanned: %d\n\n", len(bundle.Data)))

	count := min(len(bundle.Data), maxItemsToShow)
	for i := 0; i < count; i++ {
		entry := bundle.Data[i]
		if entry.Evidence == nil {
			sb.WriteString(fmt.Sprintf("  • %s (no evidence)\n", entry.Repo.Name))
			continue
		}
		sb.WriteString(fmt.Sprintf("  • %s: %d languages, %d deps, %d imports, %d commits\n",
			entry.Repo.Name,
			len(entry.Evidence.Languages),
			len(entry.Evidence.Dependencies),
			len(entry.Evidence.Imports),
			len(entry.Evidence.RecentCommits)))
	}
	if len(bundle.Data) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(bundle.Data)-maxItemsToShow))
	}

	p.printBox("GITHUB EVIDENCE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintEvidenceValidation outputs the adjudicated match score and the
// per-skill support levels.
func (p *Printer) PrintEvidenceValidation(result *types.EvidenceValidationResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match score: %.0f/100\n", result.MatchScore))
	sb.WriteString("\n")

	if len(result.SkillBreakdown) > 0 {
		sb.WriteString("Skill breakdown:\n")
		count := min(len(result.SkillBreakdown), maxItemsToShow)
		for i := 0; i < count; i++ {
			item := result.SkillBreakdown[i]
			sb.WriteString(fmt.Sprintf("  • %s: %s\n", item.Skill, item.SupportLevel))
		}
		if len(result.SkillBreakdown) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.SkillBreakdown)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(result.Summary)
	p.printBox("EVIDENCE VALIDATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobFit outputs the per-job match scores and the preferred role.
func (p *Printer) PrintJobFit(result *types.JobFitResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Preferred role:  %s\n", result.PreferredRole))
	sb.WriteString(fmt.Sprintf("Skill coverage:  %.0f%%\n", result.SkillCoveragePercentage))
	sb.WriteString("\n")

	if len(result.RoleMatchScores) > 0 {
		sb.WriteString("Role match scores:\n")
		for i := 1; i <= len(result.RoleMatchScores); i++ {
			label := fmt.Sprintf("Job %d", i)
			if score, ok := result.RoleMatchScores[label]; ok {
				sb.WriteString(fmt.Sprintf("  • %s: %.0f\n", label, score))
			}
		}
		sb.WriteString("\n")
	}

	if len(result.MatchedSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Matched: %s\n", strings.Join(result.MatchedSkills, ", ")))
	}
	if len(result.MissingSkills) > 0 {
		sb.WriteString(fmt.Sprintf("Missing: %s\n", strings.Join(result.MissingSkills, ", ")))
	}

	p.printBox("JOB FIT", strings.TrimSuffix(sb.String(), "\n"))
}
