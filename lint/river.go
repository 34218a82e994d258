package lint

import (
	"fmt"
	"math"

	"github.com/tsawler/pagelint/layout"
)

// checkRivers looks for word gaps vertically aligned across three
// consecutive lines, the white channels that form in justified text. Each
// three-line window reports at most one river; overlapping windows along a
// longer channel each report their own.
func (a *Analyzer) checkRivers(ctx pageContext) []Issue {
	if len(ctx.lines) < 3 {
		return nil
	}

	var issues []Issue

	for i := 0; i+2 < len(ctx.lines); i++ {
		x, found := a.findAlignedGap(&ctx.lines[i], &ctx.lines[i+1], &ctx.lines[i+2])
		if !found {
			continue
		}

		issues = append(issues, Issue{
			Kind:        KindRiver,
			Page:        ctx.page.Number,
			Location:    fmt.Sprintf("Page %d, lines %d-%d", ctx.page.Number, i+1, i+3),
			Severity:    SeverityInfo,
			Description: fmt.Sprintf("Possible river at x=%.0fpt", x),
			Details: RiverDetails{
				XPosition: x,
				Page:      ctx.page.Number,
				Lines:     [3]int{i + 1, i + 2, i + 3},
			},
			FixSuggestion: "Adjust word spacing or rewrite text",
		})
	}

	return issues
}

// findAlignedGap returns the first word-gap x-position in line a that
// transitively aligns with gaps in lines b and c within the configured
// tolerance.
func (a *Analyzer) findAlignedGap(l1, l2, l3 *layout.Line) (float64, bool) {
	tol := a.config.RiverAlignTolerance

	for _, g1 := range l1.Gaps {
		for _, g2 := range l2.Gaps {
			if math.Abs(g1-g2) >= tol {
				continue
			}
			for _, g3 := range l3.Gaps {
				if math.Abs(g2-g3) < tol {
					return g1, true
				}
			}
		}
	}

	return 0, false
}
