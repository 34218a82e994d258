package lint

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/pagelint/layout"
	"github.com/tsawler/pagelint/model"
)

// Analyzer runs the detector pipeline over a document.
type Analyzer struct {
	config  Config
	builder *layout.Builder
}

// NewAnalyzer creates an analyzer after validating the config.
func NewAnalyzer(config Config) (*Analyzer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Analyzer{
		config: config,
		builder: layout.NewBuilderWithConfig(layout.Config{
			ClusterTolerance: config.LineClusterTolerance,
			WordGapMin:       config.WordGapMin,
			DefaultFontSize:  layout.DefaultConfig().DefaultFontSize,
		}),
	}, nil
}

// Analyze validates the config and runs the full pipeline with a fresh
// analyzer. It is the package's main entry point.
func Analyze(doc *model.Document, config Config) ([]Issue, error) {
	analyzer, err := NewAnalyzer(config)
	if err != nil {
		return nil, err
	}
	return analyzer.Analyze(doc), nil
}

// pageContext is the sliding window a detector sees: the current page with
// its built lines, plus the next page when one exists. No detector ever
// holds more than these two pages.
type pageContext struct {
	index     int // 0-based position in the document
	pageCount int
	page      *model.Page
	lines     []layout.Line
	next      *model.Page
	nextLines []layout.Line
}

// Analyze scans the document page by page and returns the frozen issue
// list, stable-sorted by page number ascending. Re-running on the same
// document and config yields an identical list.
func (a *Analyzer) Analyze(doc *model.Document) []Issue {
	var issues []Issue

	n := doc.PageCount()
	if n == 0 {
		return issues
	}

	curLines := a.builder.Build(doc.Pages[0].Chars)

	for i := 0; i < n; i++ {
		ctx := pageContext{
			index:     i,
			pageCount: n,
			page:      &doc.Pages[i],
			lines:     curLines,
		}
		if i+1 < n {
			ctx.next = &doc.Pages[i+1]
			ctx.nextLines = a.builder.Build(ctx.next.Chars)
		}

		issues = append(issues, a.checkStrandedHeadings(ctx)...)
		issues = append(issues, a.checkSplitTables(ctx)...)
		issues = append(issues, a.checkWhitespace(ctx)...)
		issues = append(issues, a.checkOrphansWidows(ctx)...)
		issues = append(issues, a.checkRunts(ctx)...)
		issues = append(issues, a.checkRivers(ctx)...)

		curLines = ctx.nextLines
	}

	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Page < issues[j].Page
	})

	return issues
}

// truncate shortens text to at most n runes.
func truncate(text string, n int) string {
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	runes := []rune(text)
	return string(runes[:n])
}

// startsLower reports whether the text's first rune is a lowercase letter,
// the signal that a line continues a paragraph rather than starting one.
func startsLower(text string) bool {
	r, _ := utf8.DecodeRuneInString(text)
	return unicode.IsLower(r)
}

// trimmedText returns the line's text with surrounding whitespace removed.
func trimmedText(line *layout.Line) string {
	return strings.TrimSpace(line.Text)
}
