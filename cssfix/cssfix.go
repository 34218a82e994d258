package cssfix

import (
	"fmt"
	"strings"

	"github.com/tsawler/pagelint/lint"
)

// Generate builds the advisory CSS fragment for the given issues. Issues
// of kinds with no stylesheet remedy are ignored.
func Generate(issues []lint.Issue) string {
	var b strings.Builder

	b.WriteString("/* Auto-generated pagination fixes */\n")
	b.WriteString("/* Review and merge into style.css */\n\n")

	added := map[string]bool{}

	for i := range issues {
		issue := &issues[i]

		switch issue.Kind {
		case lint.KindStrandedHeading:
			if added["heading"] {
				continue
			}
			added["heading"] = true
			fmt.Fprintf(&b, "/* Fix stranded headings (e.g., page %d) */\n", issue.Page)
			b.WriteString("h3, h4 {\n")
			b.WriteString("  break-after: avoid-page;\n")
			b.WriteString("  page-break-after: avoid;\n")
			b.WriteString("}\n\n")

		case lint.KindSplitTable:
			if added["table"] {
				continue
			}
			added["table"] = true
			fmt.Fprintf(&b, "/* Fix split tables (e.g., page %d) */\n", issue.Page)
			b.WriteString("table {\n")
			b.WriteString("  break-inside: avoid-page;\n")
			b.WriteString("  page-break-inside: avoid;\n")
			b.WriteString("}\n\n")

		case lint.KindOrphan, lint.KindWidow:
			if added["orphan_widow"] {
				continue
			}
			added["orphan_widow"] = true
			fmt.Fprintf(&b, "/* Fix orphans/widows (e.g., page %d) */\n", issue.Page)
			b.WriteString("p {\n")
			b.WriteString("  orphans: 4;\n")
			b.WriteString("  widows: 4;\n")
			b.WriteString("}\n\n")

		case lint.KindExcessiveWhitespace:
			details, ok := issue.Details.(lint.WhitespaceDetails)
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "/* Page %d: %v%% empty */\n", issue.Page, details.EmptyPercentage)
			fmt.Fprintf(&b, "/* Cause: %s */\n", details.LikelyCause)
			if issue.FixSuggestion != "" {
				fmt.Fprintf(&b, "/* Suggestion: %s */\n", issue.FixSuggestion)
			}
			b.WriteString("\n")
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}
