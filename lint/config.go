package lint

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/tsawler/pagelint/productspec"
)

// Config holds the page geometry and detector thresholds for one analysis
// run. It is constructed once and never mutated during the run.
//
// The tolerance fields are empirically tuned against real book output.
// They are exposed rather than hard-coded so a product with unusual
// geometry can recalibrate, but the defaults are the tested values.
type Config struct {
	// Page geometry in points.
	PageWidth    float64 `validate:"gt=0"`
	PageHeight   float64 `validate:"gt=0"`
	MarginTop    float64 `validate:"gte=0"`
	MarginBottom float64 `validate:"gte=0"`
	MarginSides  float64 `validate:"gte=0"`

	// OrphanMinLines and WidowMinLines are the minimum fragment sizes at a
	// page top/bottom that do not count as orphans/widows.
	OrphanMinLines int `validate:"gte=1"`
	WidowMinLines  int `validate:"gte=1"`

	// WhitespaceThreshold is the fraction of content height that may sit
	// empty at a page bottom before the page is flagged.
	WhitespaceThreshold float64 `validate:"gte=0,lte=1"`

	// HeadingDangerZonePct is the fraction of content height from the
	// bottom within which a section heading needs following body text.
	HeadingDangerZonePct float64 `validate:"gte=0,lte=1"`

	// CoverPages is how many pages at each end of the document are treated
	// as cover/front-matter, exempt from stranded-heading checks.
	CoverPages int `validate:"gte=0"`

	// LineClusterTolerance is the vertical tolerance in points for
	// grouping characters into lines.
	LineClusterTolerance float64 `validate:"gt=0"`

	// TableBottomProximity / TableTopProximity are the distances in points
	// from the content bottom / top margin within which table edges count
	// as touching a page boundary.
	TableBottomProximity float64 `validate:"gte=0"`
	TableTopProximity    float64 `validate:"gte=0"`

	// OrphanWidowBand is the depth in points of the page-top and
	// page-bottom bands inspected for paragraph fragments.
	OrphanWidowBand float64 `validate:"gte=0"`

	// ContentBoxSlack expands the content box when selecting lines for
	// orphan/widow checks, absorbing sub-point rounding in extraction.
	ContentBoxSlack float64 `validate:"gte=0"`

	// WordGapMin is the minimum inter-character gap in points that counts
	// as a word space for river detection.
	WordGapMin float64 `validate:"gt=0"`

	// RiverAlignTolerance is how close word-gap midpoints on consecutive
	// lines must be, in points, to count as vertically aligned.
	RiverAlignTolerance float64 `validate:"gt=0"`

	// RuntMaxWordLen is the maximum character length of a word that can be
	// a runt; RuntWidthRatio is how many times wider the preceding line
	// must be.
	RuntMaxWordLen int     `validate:"gte=1"`
	RuntWidthRatio float64 `validate:"gt=0"`

	// HeadingTruncateLen bounds heading text quoted in descriptions.
	HeadingTruncateLen int `validate:"gte=1"`
}

// DefaultConfig returns the A5 default geometry (148x210mm trim, 20/25/15mm
// margins) with the tuned detector thresholds.
func DefaultConfig() Config {
	return ConfigFromTargetSpec(productspec.DefaultTargetSpec())
}

// ConfigFromTargetSpec derives a Config from a millimeter-based print
// product specification, converting at 1mm = 2.83465pt.
func ConfigFromTargetSpec(spec productspec.TargetSpec) Config {
	return Config{
		PageWidth:    spec.Page.Width * productspec.MMToPoints,
		PageHeight:   spec.Page.Height * productspec.MMToPoints,
		MarginTop:    spec.Margins.Top * productspec.MMToPoints,
		MarginBottom: spec.Margins.Bottom * productspec.MMToPoints,
		MarginSides:  spec.Margins.Outer * productspec.MMToPoints,

		OrphanMinLines:       3,
		WidowMinLines:        3,
		WhitespaceThreshold:  0.30,
		HeadingDangerZonePct: 0.15,

		CoverPages:           5,
		LineClusterTolerance: 5,
		TableBottomProximity: 30,
		TableTopProximity:    50,
		OrphanWidowBand:      40,
		ContentBoxSlack:      10,
		WordGapMin:           3,
		RiverAlignTolerance:  5,
		RuntMaxWordLen:       15,
		RuntWidthRatio:       2,
		HeadingTruncateLen:   50,
	}
}

var validate = validator.New()

// Validate checks the config's field constraints plus the cross-field
// invariant that the margins leave vertical room for content.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.MarginTop+c.MarginBottom >= c.PageHeight {
		return fmt.Errorf("invalid config: margins (%.1f + %.1f) leave no content height on a %.1fpt page",
			c.MarginTop, c.MarginBottom, c.PageHeight)
	}
	return nil
}

// ContentTop returns the top edge of the content box.
func (c Config) ContentTop() float64 {
	return c.MarginTop
}

// ContentBottom returns the bottom edge of the content box.
func (c Config) ContentBottom() float64 {
	return c.PageHeight - c.MarginBottom
}

// ContentHeight returns the vertical extent of the content box.
func (c Config) ContentHeight() float64 {
	return c.ContentBottom() - c.ContentTop()
}
