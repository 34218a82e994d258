package lint

import (
	"strings"
	"testing"
)

// The test geometry puts the danger zone at y >= 475; a 14pt heading at
// top 463 bottoms out at 477, just inside it.

func TestStrandedHeadingDetected(t *testing.T) {
	page := pageOf(6, textChars("Chapter Seven", 463, 60, 14, "Lora-Bold"))
	issues := issuesOfKind(mustAnalyze(paddedDoc(page, 6, 12)), KindStrandedHeading)

	if len(issues) != 1 {
		t.Fatalf("got %d stranded heading issues, want 1", len(issues))
	}

	issue := issues[0]
	if issue.Page != 6 {
		t.Errorf("Page = %d, want 6", issue.Page)
	}
	if issue.Severity != SeverityError {
		t.Errorf("Severity = %v, want error", issue.Severity)
	}
	if !strings.Contains(issue.Description, "Chapter Seven") {
		t.Errorf("Description = %q, want heading text", issue.Description)
	}

	details, ok := issue.Details.(StrandedHeadingDetails)
	if !ok {
		t.Fatalf("Details has type %T", issue.Details)
	}
	if details.HeadingText != "Chapter Seven" {
		t.Errorf("HeadingText = %q", details.HeadingText)
	}
	if details.FollowingLines != 0 {
		t.Errorf("FollowingLines = %d, want 0", details.FollowingLines)
	}
	if details.PositionFromBottom != 73.0 {
		t.Errorf("PositionFromBottom = %f, want 73.0", details.PositionFromBottom)
	}
}

func TestStrandedHeadingWithBodyBelow(t *testing.T) {
	page := pageOf(6,
		textChars("Chapter Seven", 463, 60, 14, "Lora-Bold"),
		bodyChars("continuationtextgoeshere", 490, 60),
		bodyChars("continuationtextgoeshere", 505, 60),
	)
	issues := issuesOfKind(mustAnalyze(paddedDoc(page, 6, 12)), KindStrandedHeading)

	if len(issues) != 0 {
		t.Fatalf("got %d issues, want 0 when two body lines follow", len(issues))
	}
}

func TestStrandedHeadingFollowedByHeading(t *testing.T) {
	// A heading after the heading does not count as body text.
	page := pageOf(6,
		textChars("Chapter Seven", 463, 60, 14, "Lora-Bold"),
		textChars("The First Morning", 490, 60, 14, "Lora-Bold"),
	)
	issues := issuesOfKind(mustAnalyze(paddedDoc(page, 6, 12)), KindStrandedHeading)

	if len(issues) != 2 {
		t.Fatalf("got %d issues, want 2 (both headings stranded)", len(issues))
	}
}

func TestStrandedHeadingCoverPagesExempt(t *testing.T) {
	page := pageOf(2, textChars("Chapter Seven", 463, 60, 14, "Lora-Bold"))
	issues := issuesOfKind(mustAnalyze(paddedDoc(page, 2, 12)), KindStrandedHeading)

	if len(issues) != 0 {
		t.Fatalf("got %d issues on a front-matter page, want 0", len(issues))
	}
}

func TestStrandedHeadingBackMatterExempt(t *testing.T) {
	page := pageOf(10, textChars("Chapter Seven", 463, 60, 14, "Lora-Bold"))
	issues := issuesOfKind(mustAnalyze(paddedDoc(page, 10, 12)), KindStrandedHeading)

	if len(issues) != 0 {
		t.Fatalf("got %d issues on a back-matter page, want 0", len(issues))
	}
}

func TestHeadingAboveDangerZoneIgnored(t *testing.T) {
	page := pageOf(6, textChars("Chapter Seven", 200, 60, 14, "Lora-Bold"))
	issues := issuesOfKind(mustAnalyze(paddedDoc(page, 6, 12)), KindStrandedHeading)

	if len(issues) != 0 {
		t.Fatalf("got %d issues for a mid-page heading, want 0", len(issues))
	}
}
