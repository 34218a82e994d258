package lint

import "fmt"

// checkSplitTables flags tables that run off the bottom of a page and
// continue at the top of the next. One match per source table is enough;
// the scan of the next page's tables stops at the first hit.
func (a *Analyzer) checkSplitTables(ctx pageContext) []Issue {
	if ctx.next == nil || len(ctx.page.Tables) == 0 {
		return nil
	}

	contentBottom := a.config.ContentBottom()

	var issues []Issue

	for _, table := range ctx.page.Tables {
		if table.Bottom <= contentBottom-a.config.TableBottomProximity {
			continue
		}

		for _, nextTable := range ctx.next.Tables {
			if nextTable.Top < a.config.MarginTop+a.config.TableTopProximity {
				issues = append(issues, Issue{
					Kind:        KindSplitTable,
					Page:        ctx.page.Number,
					Severity:    SeverityWarning,
					Description: fmt.Sprintf("Table split across pages %d-%d", ctx.page.Number, ctx.next.Number),
					Details: SplitTableDetails{
						StartPage: ctx.page.Number,
						EndPage:   ctx.next.Number,
					},
					FixSuggestion: "OK if headers repeat; otherwise use break-inside: avoid or split manually",
				})
				break
			}
		}
	}

	return issues
}
