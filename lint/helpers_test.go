package lint

import (
	"github.com/tsawler/pagelint/model"
)

// testConfig returns a config with round-number geometry: a 400x600pt page
// with 50pt top/bottom margins, so the content box runs from y=50 to
// y=550 (content height 500) and the heading danger zone starts at y=475.
func testConfig() Config {
	cfg := DefaultConfig()
	cfg.PageWidth = 400
	cfg.PageHeight = 600
	cfg.MarginTop = 50
	cfg.MarginBottom = 50
	cfg.MarginSides = 40
	return cfg
}

// textChars lays out the text as consecutive 6pt-wide characters starting
// at x0, including space characters, so built lines keep word boundaries.
func textChars(text string, top, x0, size float64, fontName string) []model.Char {
	chars := make([]model.Char, 0, len(text))
	x := x0
	for _, r := range text {
		chars = append(chars, model.Char{
			Text:     string(r),
			Top:      top,
			Bottom:   top + size,
			X0:       x,
			X1:       x + 6,
			FontSize: size,
			FontName: fontName,
		})
		x += 6
	}
	return chars
}

// bodyChars lays out body text in the default 11pt regular face.
func bodyChars(text string, top, x0 float64) []model.Char {
	return textChars(text, top, x0, 11, "Lora-Regular")
}

// pageOf builds a page from character groups.
func pageOf(number int, charGroups ...[]model.Char) model.Page {
	page := model.Page{Number: number, Width: 400, Height: 600}
	for _, group := range charGroups {
		page.Chars = append(page.Chars, group...)
	}
	return page
}

// docOf wraps pages into a document.
func docOf(pages ...model.Page) *model.Document {
	return &model.Document{Path: "test.pdf", Pages: pages}
}

// paddedDoc returns a document with the given page placed at 1-indexed
// position pos, surrounded by enough empty pages to make the page count
// total. Interior detector checks need padding past the cover-page skip.
func paddedDoc(page model.Page, pos, total int) *model.Document {
	doc := &model.Document{Path: "test.pdf"}
	for i := 1; i <= total; i++ {
		if i == pos {
			page.Number = i
			doc.Pages = append(doc.Pages, page)
		} else {
			doc.Pages = append(doc.Pages, model.Page{Number: i, Width: 400, Height: 600})
		}
	}
	return doc
}

// issuesOfKind filters issues by kind.
func issuesOfKind(issues []Issue, kind Kind) []Issue {
	var out []Issue
	for _, issue := range issues {
		if issue.Kind == kind {
			out = append(out, issue)
		}
	}
	return out
}

// mustAnalyze runs the pipeline with the test config.
func mustAnalyze(doc *model.Document) []Issue {
	issues, err := Analyze(doc, testConfig())
	if err != nil {
		panic(err)
	}
	return issues
}
