package lint

import "testing"

func TestRuntDetected(t *testing.T) {
	doc := docOf(pageOf(1,
		bodyChars("The quick brown fox jumped over the lazy sleeping dog and", 100, 60),
		bodyChars("slept.", 115, 60),
		bodyChars("Continuationfillertextbelow", 430, 60),
	))

	issues := issuesOfKind(mustAnalyze(doc), KindRunt)
	if len(issues) != 1 {
		t.Fatalf("got %d runt issues, want 1", len(issues))
	}

	issue := issues[0]
	if issue.Severity != SeverityWarning {
		t.Errorf("Severity = %v, want warning", issue.Severity)
	}
	if issue.Description != "Runt: 'slept.' alone on line" {
		t.Errorf("Description = %q", issue.Description)
	}

	details, ok := issue.Details.(RuntDetails)
	if !ok {
		t.Fatalf("Details has type %T", issue.Details)
	}
	if details.Word != "slept." {
		t.Errorf("Word = %q", details.Word)
	}
	if details.Page != 1 {
		t.Errorf("Page = %d, want 1", details.Page)
	}
}

func TestRuntLongWordIgnored(t *testing.T) {
	// A long single word is a deliberate line, not a runt.
	doc := docOf(pageOf(1,
		bodyChars("The quick brown fox jumped over the lazy sleeping dog and", 100, 60),
		bodyChars("incomprehensibilities", 115, 60),
		bodyChars("Continuationfillertextbelow", 430, 60),
	))

	if issues := issuesOfKind(mustAnalyze(doc), KindRunt); len(issues) != 0 {
		t.Fatalf("got %d issues, want 0", len(issues))
	}
}

func TestRuntPreviousLineNarrow(t *testing.T) {
	// The previous line is not twice as wide, so the short line reads as
	// intentional layout rather than a dangling paragraph tail.
	doc := docOf(pageOf(1,
		bodyChars("Go on", 100, 60),
		bodyChars("over", 115, 60),
		bodyChars("Continuationfillertextbelow", 430, 60),
	))

	if issues := issuesOfKind(mustAnalyze(doc), KindRunt); len(issues) != 0 {
		t.Fatalf("got %d issues, want 0", len(issues))
	}
}

func TestRuntFirstLineIgnored(t *testing.T) {
	// A short word on the first line of a page has no previous line to
	// compare against.
	doc := docOf(pageOf(1,
		bodyChars("dog.", 100, 60),
		bodyChars("The quick brown fox jumped over the lazy sleeping dog and", 115, 60),
		bodyChars("Continuationfillertextbelow", 430, 60),
	))

	if issues := issuesOfKind(mustAnalyze(doc), KindRunt); len(issues) != 0 {
		t.Fatalf("got %d issues, want 0", len(issues))
	}
}
