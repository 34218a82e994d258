package productspec

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultTargetSpec(t *testing.T) {
	spec := DefaultTargetSpec()

	if spec.Page.Width != 148 || spec.Page.Height != 210 {
		t.Errorf("page = %+v, want 148x210", spec.Page)
	}
	if spec.Margins.Top != 20 || spec.Margins.Bottom != 25 || spec.Margins.Outer != 15 {
		t.Errorf("margins = %+v, want 20/25/15", spec.Margins)
	}
}

func TestMMToPoints(t *testing.T) {
	// 148mm A5 width converts to 419.53pt (rounded).
	got := 148 * MMToPoints
	if math.Abs(got-419.5282) > 0.01 {
		t.Errorf("148mm = %fpt, want ~419.53", got)
	}
}

func TestParseTargetSpec(t *testing.T) {
	data := []byte(`{
		"page": {"width": 152.4, "height": 228.6},
		"margins": {"top": 18, "bottom": 22, "outer": 14}
	}`)

	spec, err := ParseTargetSpec(data)
	if err != nil {
		t.Fatalf("ParseTargetSpec failed: %v", err)
	}

	if spec.Page.Width != 152.4 || spec.Page.Height != 228.6 {
		t.Errorf("page = %+v", spec.Page)
	}
	if spec.Margins.Top != 18 || spec.Margins.Bottom != 22 || spec.Margins.Outer != 14 {
		t.Errorf("margins = %+v", spec.Margins)
	}
}

func TestParseTargetSpecPartialKeepsDefaults(t *testing.T) {
	data := []byte(`{"margins": {"bottom": 30}}`)

	spec, err := ParseTargetSpec(data)
	if err != nil {
		t.Fatalf("ParseTargetSpec failed: %v", err)
	}

	if spec.Page.Width != 148 || spec.Page.Height != 210 {
		t.Errorf("expected default page, got %+v", spec.Page)
	}
	if spec.Margins.Bottom != 30 {
		t.Errorf("Bottom = %f, want 30", spec.Margins.Bottom)
	}
	if spec.Margins.Top != 20 || spec.Margins.Outer != 15 {
		t.Errorf("expected default top/outer margins, got %+v", spec.Margins)
	}
}

func TestParseTargetSpecRejectsUnknownKeys(t *testing.T) {
	data := []byte(`{"margin": {"top": 20}}`)

	if _, err := ParseTargetSpec(data); err == nil {
		t.Error("expected schema error for unknown key")
	} else if !strings.Contains(err.Error(), "invalid target spec") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseTargetSpecRejectsBadTypes(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"string width", `{"page": {"width": "wide"}}`},
		{"negative margin", `{"margins": {"top": -5}}`},
		{"zero width", `{"page": {"width": 0}}`},
	}

	for _, tt := range tests {
		if _, err := ParseTargetSpec([]byte(tt.data)); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestLoadTargetSpec(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "target.json")
	content := []byte(`{"page": {"width": 210, "height": 297}}`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	spec, err := LoadTargetSpec(path)
	if err != nil {
		t.Fatalf("LoadTargetSpec failed: %v", err)
	}
	if spec.Page.Width != 210 || spec.Page.Height != 297 {
		t.Errorf("page = %+v, want 210x297", spec.Page)
	}
}

func TestLoadTargetSpecMissingFile(t *testing.T) {
	if _, err := LoadTargetSpec("no-such-spec.json"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestTrimSizeByName(t *testing.T) {
	ts, err := TrimSizeByName("us_trade")
	if err != nil {
		t.Fatalf("TrimSizeByName failed: %v", err)
	}
	if ts.Width != 6.0 || ts.Height != 9.0 {
		t.Errorf("us_trade = %fx%f, want 6x9", ts.Width, ts.Height)
	}
	if ts.Code != "0600X0900" {
		t.Errorf("Code = %q, want 0600X0900", ts.Code)
	}
}

func TestTrimSizeByNameUnknown(t *testing.T) {
	if _, err := TrimSizeByName("tabloid"); err == nil {
		t.Error("expected error for unknown trim size")
	}
}

func TestTrimSizeNamesSorted(t *testing.T) {
	names := TrimSizeNames()
	if len(names) != len(TrimSizes) {
		t.Fatalf("expected %d names, got %d", len(TrimSizes), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %q >= %q", names[i-1], names[i])
		}
	}
}

func TestTrimSizeSpec(t *testing.T) {
	ts := TrimSizes["us_trade"]
	spec := ts.Spec()

	if math.Abs(spec.Page.Width-152.4) > 0.001 {
		t.Errorf("Width = %fmm, want 152.4", spec.Page.Width)
	}
	if math.Abs(spec.Page.Height-228.6) > 0.001 {
		t.Errorf("Height = %fmm, want 228.6", spec.Page.Height)
	}
	// Margins stay at the defaults.
	if spec.Margins != DefaultTargetSpec().Margins {
		t.Errorf("margins = %+v, want defaults", spec.Margins)
	}
}

func TestGutterPoints(t *testing.T) {
	ts := TrimSizes["us_trade"]
	if got := ts.GutterPoints(); got != 54 {
		t.Errorf("GutterPoints() = %f, want 54 (0.75in)", got)
	}
}

func TestSafetyMarginMM(t *testing.T) {
	if got := SafetyMarginMM(); got != 12.7 {
		t.Errorf("SafetyMarginMM() = %f, want 12.7", got)
	}
}
