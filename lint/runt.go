package lint

import (
	"fmt"
	"strings"
)

// checkRunts flags a single short word stranded alone on a paragraph's
// last line. The preceding line must be substantially wider, which is what
// separates a runt from a deliberate one-word line like a list item.
func (a *Analyzer) checkRunts(ctx pageContext) []Issue {
	if len(ctx.lines) < 2 {
		return nil
	}

	var issues []Issue

	for i := 1; i < len(ctx.lines); i++ {
		line := &ctx.lines[i]
		text := trimmedText(line)
		if len(strings.Fields(text)) != 1 || len(text) >= a.config.RuntMaxWordLen {
			continue
		}

		prev := &ctx.lines[i-1]
		if prev.Width() > line.Width()*a.config.RuntWidthRatio {
			issues = append(issues, Issue{
				Kind:        KindRunt,
				Page:        ctx.page.Number,
				Severity:    SeverityWarning,
				Description: fmt.Sprintf("Runt: '%s' alone on line", text),
				Details: RuntDetails{
					Word: text,
					Page: ctx.page.Number,
				},
				FixSuggestion: "Rewrite to add words or tighten previous line",
			})
		}
	}

	return issues
}
