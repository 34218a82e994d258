package lint

import (
	"fmt"
	"math"

	"github.com/tsawler/pagelint/layout"
)

// checkStrandedHeadings flags section headings sitting in the danger zone
// near the page foot with fewer than two body lines after them on the same
// page. The first and last CoverPages pages are exempt: covers and front
// matter place display text near page edges on purpose.
func (a *Analyzer) checkStrandedHeadings(ctx pageContext) []Issue {
	if ctx.index < a.config.CoverPages || ctx.index >= ctx.pageCount-a.config.CoverPages {
		return nil
	}
	if len(ctx.lines) == 0 {
		return nil
	}

	contentBottom := a.config.ContentBottom()
	dangerZone := contentBottom - a.config.ContentHeight()*a.config.HeadingDangerZonePct

	var issues []Issue

	for i := range ctx.lines {
		line := &ctx.lines[i]
		if !layout.IsSectionHeading(line) || line.Bottom <= dangerZone {
			continue
		}

		following := 0
		for j := i + 1; j < len(ctx.lines); j++ {
			next := &ctx.lines[j]
			if trimmedText(next) != "" && !layout.IsHeading(next) {
				following++
			}
		}

		if following < 2 {
			headingText := trimmedText(line)
			issues = append(issues, Issue{
				Kind:        KindStrandedHeading,
				Page:        ctx.page.Number,
				Severity:    SeverityError,
				Description: fmt.Sprintf("Heading at page bottom: \"%s...\"", truncate(headingText, a.config.HeadingTruncateLen)),
				Details: StrandedHeadingDetails{
					HeadingText:        headingText,
					FollowingLines:     following,
					PositionFromBottom: math.Round((contentBottom-line.Bottom)*10) / 10,
				},
				FixSuggestion: "Add page-break-before to this heading or adjust preceding content",
			})
		}
	}

	return issues
}
