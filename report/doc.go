// Package report renders a frozen issue list for people and machines.
//
// Three renderers cover the common consumers: Console for terminal runs,
// JSON for CI pipelines and tooling, Markdown for review documents. All
// three are pure functions of the document path and the issue list and
// never reorder or mutate what the analyzer produced.
package report
