package lint

import (
	"fmt"
	"math"

	"github.com/tsawler/pagelint/layout"
)

// whitespaceFixes maps a classified cause to its remediation advice.
var whitespaceFixes = map[WhitespaceCause]string{
	CauseHeadingPushedToNextPage: "Adjust content before heading to fill space",
	CauseTableAvoidSplit:         "Consider splitting table or adjusting preceding content",
	CausePageBreakRule:           "Review page-break-before rules",
}

// checkWhitespace flags pages whose content stops well short of the bottom
// margin. Pages with neither text nor tables are presumed intentionally
// blank and skipped. Only bottom whitespace counts: space at the top of a
// page is normal for chapter openings.
func (a *Analyzer) checkWhitespace(ctx pageContext) []Issue {
	if ctx.page.IsEmpty() {
		return nil
	}

	contentTop := a.config.ContentTop()
	contentBottom := a.config.ContentBottom()
	contentHeight := a.config.ContentHeight()

	minY := contentBottom
	maxY := contentTop

	for i := range ctx.lines {
		if ctx.lines[i].Top < minY {
			minY = ctx.lines[i].Top
		}
		if ctx.lines[i].Bottom > maxY {
			maxY = ctx.lines[i].Bottom
		}
	}
	for _, table := range ctx.page.Tables {
		if table.Top < minY {
			minY = table.Top
		}
		if table.Bottom > maxY {
			maxY = table.Bottom
		}
	}

	emptyAtBottom := contentBottom - maxY
	if emptyAtBottom <= contentHeight*a.config.WhitespaceThreshold {
		return nil
	}

	emptyPct := math.Round(emptyAtBottom/contentHeight*1000) / 10

	cause := CausePageBreakRule
	if len(ctx.lines) > 0 && layout.IsHeading(&ctx.lines[len(ctx.lines)-1]) {
		cause = CauseHeadingPushedToNextPage
	}
	if len(ctx.page.Tables) > 0 {
		cause = CauseTableAvoidSplit
	}

	return []Issue{{
		Kind:        KindExcessiveWhitespace,
		Page:        ctx.page.Number,
		Severity:    SeverityWarning,
		Description: fmt.Sprintf("Page has %v%% empty space at bottom", emptyPct),
		Details: WhitespaceDetails{
			EmptyPercentage: emptyPct,
			LikelyCause:     cause,
			EmptyHeightPt:   math.Round(emptyAtBottom*10) / 10,
		},
		FixSuggestion: whitespaceFixes[cause],
	}}
}
