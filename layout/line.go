package layout

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/pagelint/model"
)

// Line represents a single line of text assembled from a page's characters.
type Line struct {
	// Text is the concatenated character text, NFC-normalized.
	Text string

	// Top and Bottom are the vertical extent (min/max over characters).
	Top    float64
	Bottom float64

	// X0 and X1 are the horizontal extent (min/max over characters).
	X0 float64
	X1 float64

	// FontSize is the maximum font size observed among the line's
	// characters. Headings dominate mixed-size runs this way.
	FontSize float64

	// FontName is taken from the first character with a non-empty name.
	FontName string

	// Gaps are the x-midpoints of inter-character gaps wide enough to be
	// word spaces, used by river detection.
	Gaps []float64
}

// Width returns the horizontal extent of the line.
func (l *Line) Width() float64 {
	return l.X1 - l.X0
}

// WordCount returns the number of whitespace-separated words in the line.
func (l *Line) WordCount() int {
	return len(strings.Fields(l.Text))
}

// IsEmpty returns true if the line has no visible text.
func (l *Line) IsEmpty() bool {
	return strings.TrimSpace(l.Text) == ""
}

// Config holds tuning parameters for line building.
type Config struct {
	// ClusterTolerance is the vertical distance in points within which a
	// character's rounded top joins the current line cluster (default: 5).
	ClusterTolerance float64

	// WordGapMin is the minimum horizontal gap in points between adjacent
	// characters to count as a word space (default: 3).
	WordGapMin float64

	// DefaultFontSize is assumed when no character reports a size
	// (default: 11).
	DefaultFontSize float64
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		ClusterTolerance: 5.0,
		WordGapMin:       3.0,
		DefaultFontSize:  11.0,
	}
}

// Builder clusters a page's characters into ordered text lines.
type Builder struct {
	config Config
}

// NewBuilder creates a line builder with default configuration.
func NewBuilder() *Builder {
	return &Builder{config: DefaultConfig()}
}

// NewBuilderWithConfig creates a line builder with custom configuration.
func NewBuilderWithConfig(config Config) *Builder {
	return &Builder{config: config}
}

// Build clusters the given characters into lines ordered top to bottom.
// The input slice is not modified.
func (b *Builder) Build(chars []model.Char) []Line {
	if len(chars) == 0 {
		return nil
	}

	sorted := make([]model.Char, len(chars))
	copy(sorted, chars)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, tj := math.Round(sorted[i].Top), math.Round(sorted[j].Top)
		if ti != tj {
			return ti < tj
		}
		return sorted[i].X0 < sorted[j].X0
	})

	var lines []Line
	var cluster []model.Char
	anchorTop := 0.0

	for _, ch := range sorted {
		charTop := math.Round(ch.Top)
		if len(cluster) == 0 {
			cluster = append(cluster, ch)
			anchorTop = charTop
			continue
		}

		if math.Abs(charTop-anchorTop) < b.config.ClusterTolerance {
			cluster = append(cluster, ch)
		} else {
			lines = append(lines, b.makeLine(cluster))
			cluster = []model.Char{ch}
			anchorTop = charTop
		}
	}

	if len(cluster) > 0 {
		lines = append(lines, b.makeLine(cluster))
	}

	return lines
}

// makeLine assembles a Line from one cluster of characters.
func (b *Builder) makeLine(chars []model.Char) Line {
	line := Line{
		Top:    chars[0].Top,
		Bottom: chars[0].Bottom,
		X0:     chars[0].X0,
		X1:     chars[0].X1,
	}

	var sb strings.Builder
	for _, ch := range chars {
		sb.WriteString(ch.Text)

		if ch.Top < line.Top {
			line.Top = ch.Top
		}
		if ch.Bottom > line.Bottom {
			line.Bottom = ch.Bottom
		}
		if ch.X0 < line.X0 {
			line.X0 = ch.X0
		}
		if ch.X1 > line.X1 {
			line.X1 = ch.X1
		}

		if ch.FontSize > line.FontSize {
			line.FontSize = ch.FontSize
		}
		if line.FontName == "" && ch.FontName != "" {
			line.FontName = ch.FontName
		}
	}

	if line.FontSize == 0 {
		line.FontSize = b.config.DefaultFontSize
	}

	line.Text = norm.NFC.String(sb.String())
	line.Gaps = b.findWordGaps(chars)

	return line
}

// findWordGaps returns the x-midpoints of gaps wide enough to be word
// spaces between horizontally adjacent characters.
func (b *Builder) findWordGaps(chars []model.Char) []float64 {
	if len(chars) < 2 {
		return nil
	}

	byX := make([]model.Char, len(chars))
	copy(byX, chars)
	sort.SliceStable(byX, func(i, j int) bool {
		return byX[i].X0 < byX[j].X0
	})

	var gaps []float64
	for i := 1; i < len(byX); i++ {
		if strings.TrimSpace(byX[i].Text) == "" {
			continue
		}
		gap := byX[i].X0 - byX[i-1].X1
		if gap > b.config.WordGapMin {
			gaps = append(gaps, (byX[i-1].X1+byX[i].X0)/2)
		}
	}

	return gaps
}
