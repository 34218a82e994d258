package lint

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"

	"github.com/tsawler/pagelint/model"
)

// multiIssueDoc produces issues on several pages: a whitespace warning on
// page 1, a split table on page 2, and a widow on page 3.
func multiIssueDoc() *model.Document {
	page1 := pageOf(1, bodyChars("Shortopeningpagecontent", 100, 60))
	page2 := model.Page{
		Number: 2, Width: 400, Height: 600,
		Tables: []model.TableBox{{X0: 60, Top: 100, X1: 340, Bottom: 540}},
	}
	page3 := model.Page{
		Number: 3, Width: 400, Height: 600,
		Tables: []model.TableBox{{X0: 60, Top: 70, X1: 340, Bottom: 200}},
	}
	page3.Chars = append(page3.Chars, bodyChars("The paragraph began down here", 400, 60)...)
	page3.Chars = append(page3.Chars, bodyChars("and its final line trailed off", 520, 60)...)
	page4 := pageOf(4, bodyChars("with the ending on the last page", 100, 60),
		bodyChars("Andanewsectionstartinglater", 400, 60))

	return docOf(page1, page2, page3, page4)
}

func TestAnalyzeOrderedByPage(t *testing.T) {
	issues := mustAnalyze(multiIssueDoc())
	if len(issues) < 3 {
		t.Fatalf("got %d issues, want at least 3", len(issues))
	}

	for i := 1; i < len(issues); i++ {
		if issues[i].Page < issues[i-1].Page {
			t.Fatalf("issues out of order: page %d before page %d",
				issues[i-1].Page, issues[i].Page)
		}
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	doc := multiIssueDoc()

	first := mustAnalyze(doc)
	second := mustAnalyze(doc)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("two runs over the same document disagree")
	}

	firstJSON, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	secondJSON, err := json.Marshal(second)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !bytes.Equal(firstJSON, secondJSON) {
		t.Fatal("serialized runs differ")
	}
}

func TestAnalyzeEmptyDocument(t *testing.T) {
	if issues := mustAnalyze(docOf()); len(issues) != 0 {
		t.Fatalf("got %d issues for an empty document, want 0", len(issues))
	}
}

func TestAnalyzeInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.WhitespaceThreshold = 2

	if _, err := Analyze(docOf(), cfg); err == nil {
		t.Fatal("expected config validation error")
	}
	if _, err := NewAnalyzer(cfg); err == nil {
		t.Fatal("expected config validation error from constructor")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"a longer heading string", 8, "a longer"},
		{"héllo wörld", 7, "héllo w"},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestStartsLower(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"and then", true},
		{"And then", false},
		{"42 paces", false},
		{"", false},
		{"über alles", true},
	}

	for _, tt := range tests {
		if got := startsLower(tt.in); got != tt.want {
			t.Errorf("startsLower(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
