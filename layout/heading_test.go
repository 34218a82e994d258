package layout

import "testing"

func TestIsHeading(t *testing.T) {
	tests := []struct {
		name     string
		fontName string
		fontSize float64
		want     bool
	}{
		{"bold font", "Lora-Bold", 11, true},
		{"bold lowercase in name", "lora-bold-italic", 10, true},
		{"large font", "Lora-Regular", 14, true},
		{"size exactly 13", "Lora-Regular", 13, false},
		{"body text", "Lora-Regular", 11, false},
	}

	for _, tt := range tests {
		line := &Line{Text: "Some text", FontName: tt.fontName, FontSize: tt.fontSize}
		if got := IsHeading(line); got != tt.want {
			t.Errorf("%s: IsHeading() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsSectionHeading(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		fontName string
		fontSize float64
		want     bool
	}{
		{"chapter title", "Chapter 3: The Long Road", "Lora-Bold", 14, true},
		{"keyword heading", "How It All Works", "Lora-Bold", 12, true},
		{"plain title by length", "Getting Started Quickly", "Lora-Bold", 12, true},
		{"not bold not large", "Chapter 3: The Long Road", "Lora-Regular", 11, false},
		{"too short", "Ch", "Lora-Bold", 14, false},
		{"all caps decorative", "PUBLISHER NAME", "Lora-Bold", 14, false},
		{"long all caps allowed", "THE COMPLETE GUIDE TO PROFESSIONAL TYPESETTING", "Lora-Bold", 14, true},
		{"single word", "Biggest", "Lora-Bold", 14, false},
		{"starts with symbol", "* Notes and Asides", "Lora-Bold", 14, false},
		{"starts with digit", "3 Simple Rules", "Lora-Bold", 14, true},
		{"keyword match overrides length", "The quick brown fox jumps over the lazy dog while the narrator keeps going on and on", "Lora-Bold", 14, true},
		{"over 80 chars without keyword", "Velvety crimson sunsets shimmering across quiet mirrored lakes beyond distant blue hills", "Lora-Bold", 14, false},
		{"size over 12 not bold", "Why Margins Matter", "Lora-Regular", 12.5, true},
	}

	for _, tt := range tests {
		line := &Line{Text: tt.text, FontName: tt.fontName, FontSize: tt.fontSize}
		if got := IsSectionHeading(line); got != tt.want {
			t.Errorf("%s: IsSectionHeading(%q) = %v, want %v", tt.name, tt.text, got, tt.want)
		}
	}
}

func TestIsAllUpper(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"ALL CAPS", true},
		{"Mixed Case", false},
		{"lowercase", false},
		{"123 456", false},
		{"A1 B2", true},
	}

	for _, tt := range tests {
		if got := isAllUpper(tt.text); got != tt.want {
			t.Errorf("isAllUpper(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
