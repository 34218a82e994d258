package lint

import (
	"fmt"

	"github.com/tsawler/pagelint/layout"
)

// checkOrphansWidows flags short paragraph fragments isolated at a page
// top (orphan) or bottom (widow). A fragment only counts when the text
// confirms a paragraph continuation: the fragment's first line - or for
// widows, the next page's first line - starts with a lowercase letter.
// The last page of a document can never produce a widow.
func (a *Analyzer) checkOrphansWidows(ctx pageContext) []Issue {
	if len(ctx.lines) < 2 {
		return nil
	}

	contentTop := a.config.ContentTop()
	contentBottom := a.config.ContentBottom()
	slack := a.config.ContentBoxSlack
	band := a.config.OrphanWidowBand

	var contentLines []*layout.Line
	for i := range ctx.lines {
		line := &ctx.lines[i]
		if line.Top >= contentTop-slack && line.Bottom <= contentBottom+slack {
			contentLines = append(contentLines, line)
		}
	}
	if len(contentLines) == 0 {
		return nil
	}

	var issues []Issue

	// Orphan: a thin band of lines at the page top continuing a paragraph
	// from the previous page.
	var firstLines []*layout.Line
	for _, line := range contentLines {
		if line.Top < contentTop+band {
			firstLines = append(firstLines, line)
		}
	}
	if len(firstLines) > 0 && len(firstLines) < a.config.OrphanMinLines {
		text := trimmedText(firstLines[0])
		if text != "" && startsLower(text) {
			issues = append(issues, Issue{
				Kind:        KindOrphan,
				Page:        ctx.page.Number,
				Severity:    SeverityWarning,
				Description: fmt.Sprintf("Possible orphan: %d line(s) at page top", len(firstLines)),
				Details: OrphanWidowDetails{
					LineCount:   len(firstLines),
					TextPreview: truncate(text, 60),
				},
				FixSuggestion: "Increase orphans CSS value or adjust preceding content",
			})
		}
	}

	// Widow: a thin band at the page bottom whose paragraph demonstrably
	// continues onto the next page.
	if ctx.next != nil {
		var lastLines []*layout.Line
		for _, line := range contentLines {
			if line.Bottom > contentBottom-band {
				lastLines = append(lastLines, line)
			}
		}
		if len(lastLines) > 0 && len(lastLines) < a.config.WidowMinLines && len(ctx.nextLines) > 0 {
			nextFirst := trimmedText(&ctx.nextLines[0])
			if nextFirst != "" && startsLower(nextFirst) {
				preview := trimmedText(lastLines[len(lastLines)-1])
				issues = append(issues, Issue{
					Kind:        KindWidow,
					Page:        ctx.page.Number,
					Severity:    SeverityWarning,
					Description: fmt.Sprintf("Possible widow: %d line(s) at page bottom", len(lastLines)),
					Details: OrphanWidowDetails{
						LineCount:   len(lastLines),
						TextPreview: truncate(preview, 60),
					},
					FixSuggestion: "Increase widows CSS value or add page-break-before",
				})
			}
		}
	}

	return issues
}
