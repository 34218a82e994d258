package lint

import "fmt"

// Kind identifies the defect class an issue belongs to. The string values
// appear verbatim in serialized reports.
type Kind string

const (
	KindStrandedHeading     Kind = "stranded_heading"
	KindSplitTable          Kind = "split_table"
	KindExcessiveWhitespace Kind = "excessive_whitespace"
	KindOrphan              Kind = "orphan"
	KindWidow               Kind = "widow"
	KindRunt                Kind = "runt"
	KindRiver               Kind = "river"
	KindLowResolution       Kind = "low_resolution"
	KindRGBImage            Kind = "rgb_image"
	KindImageError          Kind = "image_error"
)

// Issue is one detected layout defect. Issues are created by a detector
// and never mutated afterwards; the analysis run freezes the collection
// once all detectors have finished.
type Issue struct {
	Kind Kind `json:"type"`

	// Page is the 1-indexed page the issue was found on, or 0 for
	// file-scoped issues (the image preflight checks).
	Page int `json:"page,omitempty"`

	// Location names the issue's position when Page alone is not enough:
	// the image file name for file-scoped issues, or a page-and-lines
	// reference for rivers.
	Location string `json:"location,omitempty"`

	Severity    Severity `json:"severity"`
	Description string   `json:"description"`

	// Details is the kind-specific payload; each Kind has exactly one
	// payload type.
	Details Details `json:"details,omitempty"`

	FixSuggestion string `json:"fix_suggestion,omitempty"`
}

// Ref returns a human-readable position reference for the issue.
func (i *Issue) Ref() string {
	if i.Location != "" {
		return i.Location
	}
	return fmt.Sprintf("Page %d", i.Page)
}

// Details is the tagged-variant payload carried by an Issue. Exactly one
// concrete payload struct exists per issue kind, giving compile-time field
// safety where the wire format keeps a free-form object.
type Details interface {
	isDetails()
}

// StrandedHeadingDetails accompanies KindStrandedHeading.
type StrandedHeadingDetails struct {
	HeadingText        string  `json:"heading_text"`
	FollowingLines     int     `json:"following_lines"`
	PositionFromBottom float64 `json:"position_from_bottom"`
}

// SplitTableDetails accompanies KindSplitTable.
type SplitTableDetails struct {
	StartPage int `json:"start_page"`
	EndPage   int `json:"end_page"`
}

// WhitespaceCause classifies the probable reason a page ran short.
type WhitespaceCause string

const (
	CauseTableAvoidSplit         WhitespaceCause = "table_avoid_split"
	CauseHeadingPushedToNextPage WhitespaceCause = "heading_pushed_to_next_page"
	CausePageBreakRule           WhitespaceCause = "page_break_rule"
)

// WhitespaceDetails accompanies KindExcessiveWhitespace.
type WhitespaceDetails struct {
	EmptyPercentage float64         `json:"empty_percentage"`
	LikelyCause     WhitespaceCause `json:"likely_cause"`
	EmptyHeightPt   float64         `json:"empty_height_pt"`
}

// OrphanWidowDetails accompanies KindOrphan and KindWidow.
type OrphanWidowDetails struct {
	LineCount   int    `json:"line_count"`
	TextPreview string `json:"text_preview"`
}

// RuntDetails accompanies KindRunt.
type RuntDetails struct {
	Word string `json:"word"`
	Page int    `json:"page"`
}

// RiverDetails accompanies KindRiver.
type RiverDetails struct {
	XPosition float64 `json:"x_position"`
	Page      int     `json:"page"`
	Lines     [3]int  `json:"lines"` // 1-indexed line positions on the page
}

// ImageDetails accompanies KindLowResolution and KindRGBImage.
type ImageDetails struct {
	File        string  `json:"file"`
	DPIX        float64 `json:"dpi_x"`
	DPIY        float64 `json:"dpi_y"`
	PixelWidth  int     `json:"pixel_width"`
	PixelHeight int     `json:"pixel_height"`
	Mode        string  `json:"mode"`
}

// ImageErrorDetails accompanies KindImageError.
type ImageErrorDetails struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

func (StrandedHeadingDetails) isDetails() {}
func (SplitTableDetails) isDetails()      {}
func (WhitespaceDetails) isDetails()      {}
func (OrphanWidowDetails) isDetails()     {}
func (RuntDetails) isDetails()            {}
func (RiverDetails) isDetails()           {}
func (ImageDetails) isDetails()           {}
func (ImageErrorDetails) isDetails()      {}

// CountBySeverity tallies issues per severity level.
func CountBySeverity(issues []Issue) (errors, warnings, infos int) {
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		case SeverityInfo:
			infos++
		}
	}
	return errors, warnings, infos
}

// ExitCode derives the process exit status from an analysis result:
// 0 when the issue list is empty, 1 when issues exist but none is an
// Error, 2 when any Error is present. Strict mode upgrades 1 to 2.
// Fatal run errors (exit 3) are not represented as issues and are the
// caller's concern.
func ExitCode(issues []Issue, strict bool) int {
	if len(issues) == 0 {
		return 0
	}
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return 2
		}
	}
	if strict {
		return 2
	}
	return 1
}
