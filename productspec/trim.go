package productspec

import (
	"fmt"
	"sort"
)

// Conversion factors and print-production constants. Bleed, safety margin,
// and trim variance come from print-on-demand vendor requirements.
const (
	InchToMM     = 25.4
	InchToPoints = 72.0

	BleedInches        = 0.125 // all sides
	SafetyMarginInches = 0.5   // minimum from trim edge
	TrimVarianceInches = 0.125 // printing tolerance
)

// TrimSize is a named book trim size. Dimensions are in inches, matching
// vendor catalogs.
type TrimSize struct {
	Name     string
	Code     string // vendor package code segment, e.g. "0600X0900"
	Width    float64
	Height   float64
	MinPages int
	Gutter   float64 // inside (spine) margin in inches, varies by page count
}

// TrimSizes maps short keys to the standard print-on-demand trim sizes.
var TrimSizes = map[string]TrimSize{
	"pocket":       {Name: "Pocket Book", Code: "0425X0687", Width: 4.25, Height: 6.875, MinPages: 32, Gutter: 0.5},
	"digest":       {Name: "Digest", Code: "0550X0850", Width: 5.5, Height: 8.5, MinPages: 32, Gutter: 0.625},
	"novella":      {Name: "Novella", Code: "0500X0800", Width: 5.0, Height: 8.0, MinPages: 32, Gutter: 0.625},
	"a5":           {Name: "A5", Code: "0583X0827", Width: 5.83, Height: 8.27, MinPages: 32, Gutter: 0.625},
	"us_trade":     {Name: "US Trade", Code: "0600X0900", Width: 6.0, Height: 9.0, MinPages: 32, Gutter: 0.75},
	"royal":        {Name: "Royal", Code: "0614X0921", Width: 6.14, Height: 9.21, MinPages: 32, Gutter: 0.75},
	"executive":    {Name: "Executive", Code: "0700X1000", Width: 7.0, Height: 10.0, MinPages: 32, Gutter: 0.875},
	"crown_quarto": {Name: "Crown Quarto", Code: "0744X0968", Width: 7.44, Height: 9.68, MinPages: 32, Gutter: 0.875},
	"a4":           {Name: "A4", Code: "0827X1169", Width: 8.27, Height: 11.69, MinPages: 32, Gutter: 1.0},
	"us_letter":    {Name: "US Letter", Code: "0850X1100", Width: 8.5, Height: 11.0, MinPages: 32, Gutter: 1.0},
	"small_square": {Name: "Small Square", Code: "0750X0750", Width: 7.5, Height: 7.5, MinPages: 32, Gutter: 0.75},
	"square":       {Name: "Square", Code: "0850X0850", Width: 8.5, Height: 8.5, MinPages: 32, Gutter: 0.875},
}

// TrimSizeByName returns the trim size registered under the given key.
func TrimSizeByName(name string) (TrimSize, error) {
	ts, ok := TrimSizes[name]
	if !ok {
		return TrimSize{}, fmt.Errorf("unknown trim size %q (known: %v)", name, TrimSizeNames())
	}
	return ts, nil
}

// TrimSizeNames returns the registered trim size keys, sorted.
func TrimSizeNames() []string {
	names := make([]string, 0, len(TrimSizes))
	for name := range TrimSizes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Spec converts the trim size into a millimeter-based target spec using
// the default A5 margin set. The gutter is an inside-margin concern the
// symmetric lint geometry does not model; use GutterPoints when laying out
// spine-side content.
func (ts TrimSize) Spec() TargetSpec {
	spec := DefaultTargetSpec()
	spec.Page = PageSize{
		Width:  ts.Width * InchToMM,
		Height: ts.Height * InchToMM,
	}
	return spec
}

// GutterPoints returns the inside margin in PDF points.
func (ts TrimSize) GutterPoints() float64 {
	return ts.Gutter * InchToPoints
}

// SafetyMarginMM returns the vendor minimum content distance from the trim
// edge, in millimeters.
func SafetyMarginMM() float64 {
	return SafetyMarginInches * InchToMM
}
