package layout

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// sectionKeywords are substrings that typically mark a real section title
// ("Chapter 3", "How It Works", "The Long Road", ...).
var sectionKeywords = []string{
	"chapter", "part", "appendix", "section",
	"the ", "how ", "why ", "what ",
}

// IsHeading reports whether the line looks like a heading in the broad
// sense: a bold font name or a font size above 13pt. It is an auxiliary
// signal only; use IsSectionHeading when false positives matter.
func IsHeading(line *Line) bool {
	if strings.Contains(strings.ToLower(line.FontName), "bold") {
		return true
	}
	return line.FontSize > 13
}

// IsSectionHeading reports whether the line is a genuine section heading
// rather than decorative cover text, a running header fragment, or a
// single-word label. The stricter rules exist because the stranded-heading
// detector emits Errors: feeding it cover artwork would flood a report.
func IsSectionHeading(line *Line) bool {
	text := strings.TrimSpace(line.Text)
	fontName := strings.ToLower(line.FontName)

	if !strings.Contains(fontName, "bold") && line.FontSize <= 12 {
		return false
	}

	if len(text) < 3 {
		return false
	}

	// ALL CAPS short runs are decorative ("PUBLISHER NAME").
	if isAllUpper(text) && len(text) < 30 {
		return false
	}

	// Single words are labels or running-header fragments, not titles.
	if len(strings.Fields(text)) < 2 {
		return false
	}

	first, _ := utf8.DecodeRuneInString(text)
	if !unicode.IsLetter(first) && !unicode.IsDigit(first) {
		return false
	}

	lower := strings.ToLower(text)
	for _, kw := range sectionKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}

	// Otherwise accept anything title-length: longer runs are paragraphs.
	return len(text) >= 3 && len(text) <= 80
}

// isAllUpper reports whether the text contains no lowercase letters and at
// least one uppercase letter.
func isAllUpper(text string) bool {
	hasUpper := false
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasUpper = true
		}
	}
	return hasUpper
}
