package report

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tsawler/pagelint/lint"
)

// severityIcons are the console markers, chosen to line up in a fixed
// two-character column.
var severityIcons = map[lint.Severity]string{
	lint.SeverityError:   "!!",
	lint.SeverityWarning: "--",
	lint.SeverityInfo:    "  ",
}

// Console renders the terminal report: a banner with severity counts
// followed by one itemized block per issue.
func Console(pdfPath string, issues []lint.Issue) string {
	if len(issues) == 0 {
		return "No layout issues found."
	}

	var b strings.Builder

	fmt.Fprintf(&b, "\nLayout Analysis: %s\n", filepath.Base(pdfPath))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	errors, warnings, infos := lint.CountBySeverity(issues)
	fmt.Fprintf(&b, "Found %d error(s), %d warning(s), %d info(s)\n\n", errors, warnings, infos)

	for i := range issues {
		issue := &issues[i]
		fmt.Fprintf(&b, "[%s] %s: %s\n", severityIcons[issue.Severity], issue.Ref(), issue.Kind)
		fmt.Fprintf(&b, "    %s\n", issue.Description)
		if issue.FixSuggestion != "" {
			fmt.Fprintf(&b, "    Fix: %s\n", issue.FixSuggestion)
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// jsonReport fixes the field order of the machine-readable report.
type jsonReport struct {
	PDF         string       `json:"pdf"`
	TotalIssues int          `json:"total_issues"`
	Errors      int          `json:"errors"`
	Warnings    int          `json:"warnings"`
	Infos       int          `json:"infos"`
	Issues      []lint.Issue `json:"issues"`
}

// JSON renders the report as indented JSON with a stable field order.
func JSON(pdfPath string, issues []lint.Issue) (string, error) {
	errors, warnings, infos := lint.CountBySeverity(issues)

	if issues == nil {
		issues = []lint.Issue{}
	}

	out, err := json.MarshalIndent(jsonReport{
		PDF:         pdfPath,
		TotalIssues: len(issues),
		Errors:      errors,
		Warnings:    warnings,
		Infos:       infos,
		Issues:      issues,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}
	return string(out), nil
}

// Markdown renders the report grouped into one section per severity,
// worst first. Severities with no issues get no section.
func Markdown(pdfPath string, issues []lint.Issue) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Layout Analysis: %s\n\n", filepath.Base(pdfPath))
	fmt.Fprintf(&b, "**Total issues:** %d\n\n", len(issues))

	for _, severity := range []lint.Severity{lint.SeverityError, lint.SeverityWarning, lint.SeverityInfo} {
		var group []*lint.Issue
		for i := range issues {
			if issues[i].Severity == severity {
				group = append(group, &issues[i])
			}
		}
		if len(group) == 0 {
			continue
		}

		fmt.Fprintf(&b, "## %ss (%d)\n\n", titleCase(severity.String()), len(group))
		for _, issue := range group {
			fmt.Fprintf(&b, "### %s: %s\n", issue.Ref(), issue.Kind)
			fmt.Fprintf(&b, "%s\n", issue.Description)
			if issue.FixSuggestion != "" {
				fmt.Fprintf(&b, "\n**Fix:** %s\n", issue.FixSuggestion)
			}
			b.WriteString("\n")
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
