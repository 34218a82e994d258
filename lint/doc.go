// Package lint implements the layout-quality detector pipeline for
// rendered PDF geometry.
//
// The [Analyzer] runs six independent detectors over a document in a
// single sequential pass:
//
//   - stranded headings - a section heading near the page foot with no
//     body text beneath it (Error)
//   - split tables - a table continuing at the top of the next page
//     (Warning)
//   - excessive whitespace - a page whose content stops well short of the
//     bottom margin (Warning)
//   - orphans and widows - short paragraph fragments isolated at a page
//     top or bottom (Warning)
//   - runts - a single short word alone on a paragraph's last line
//     (Warning)
//   - rivers - vertically aligned word gaps running through three
//     consecutive lines (Info)
//
// Detectors never look more than one page ahead or behind, never interact
// with each other, and only append to the run's issue list; the final
// stable sort by page number makes the output order independent of
// detector order.
//
//	cfg := lint.DefaultConfig()
//	issues, err := lint.Analyze(doc, cfg)
//	code := lint.ExitCode(issues, false)
//
// Every empirically tuned constant (cluster tolerance, proximity bands,
// danger-zone fraction) is an overridable [Config] field. These are
// heuristics calibrated against real book output, not formal guarantees;
// the engine is a linter and does not promise zero false positives.
package lint
