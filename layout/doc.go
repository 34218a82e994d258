// Package layout builds ordered text lines from a page's raw characters
// and classifies lines as headings.
//
// The [Builder] clusters characters into lines by vertical position:
//
//	builder := layout.NewBuilder()
//	lines := builder.Build(page.Chars)
//
// Lines are ephemeral: they are rebuilt for each page during an analysis
// pass and discarded once the detectors have run. Output order matches
// visual top-to-bottom reading order for single-column layouts;
// multi-column layouts are not specially handled.
//
// Two classifiers operate on built lines:
//
//   - [IsHeading] - broad signal: bold font name or font size above 13pt
//   - [IsSectionHeading] - strict: filters out decorative cover text and
//     running-header fragments that would cause false positives in
//     stranded-heading detection
package layout
