package preflight

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	// Decoders registered for image.DecodeConfig.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/tsawler/pagelint/lint"
)

// Config holds the tunable parameters for the image checks.
type Config struct {
	// MinDPI is the resolution floor for print, applied to both axes.
	MinDPI float64 `validate:"gt=0"`

	// Extensions lists the file extensions (lowercase, with dot) treated
	// as raster images. Files with other extensions are skipped silently.
	Extensions []string
}

// DefaultConfig returns the print-production defaults: a 300 DPI floor
// over the common raster formats.
func DefaultConfig() Config {
	return Config{
		MinDPI:     300,
		Extensions: []string{".jpg", ".jpeg", ".png", ".tif", ".tiff", ".bmp", ".webp"},
	}
}

// Checker runs preflight image checks over a directory tree.
type Checker struct {
	config     Config
	extensions map[string]bool
}

// NewChecker creates a checker with the default configuration.
func NewChecker() *Checker {
	return NewCheckerWithConfig(DefaultConfig())
}

// NewCheckerWithConfig creates a checker with a custom configuration.
func NewCheckerWithConfig(config Config) *Checker {
	extensions := make(map[string]bool, len(config.Extensions))
	for _, ext := range config.Extensions {
		extensions[strings.ToLower(ext)] = true
	}
	return &Checker{config: config, extensions: extensions}
}

// Check walks dir recursively and returns one issue per defect found in
// the image files beneath it. A missing or unreadable directory is a
// fatal input error, not an issue.
func (c *Checker) Check(dir string) ([]lint.Issue, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open image directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("image path %s is not a directory", dir)
	}

	var issues []lint.Issue

	walkErr := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() || !c.extensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		issues = append(issues, c.checkFile(path)...)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("failed to scan image directory: %w", walkErr)
	}

	return issues, nil
}

// checkFile inspects a single image file. Decode failures produce an
// image_error issue rather than aborting the run: one bad file should
// not hide findings about the rest.
func (c *Checker) checkFile(path string) []lint.Issue {
	name := filepath.Base(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return []lint.Issue{imageError(path, name, err)}
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return []lint.Issue{imageError(path, name, err)}
	}

	dpiX, dpiY := resolution(data, format)
	mode := colorMode(cfg.ColorModel)

	var issues []lint.Issue

	if dpiX < c.config.MinDPI || dpiY < c.config.MinDPI {
		issues = append(issues, lint.Issue{
			Kind:     lint.KindLowResolution,
			Location: name,
			Severity: lint.SeverityError,
			Description: fmt.Sprintf("Image resolution %gx%g DPI below %g DPI",
				dpiX, dpiY, c.config.MinDPI),
			Details: lint.ImageDetails{
				File:        path,
				DPIX:        dpiX,
				DPIY:        dpiY,
				PixelWidth:  cfg.Width,
				PixelHeight: cfg.Height,
				Mode:        mode,
			},
			FixSuggestion: fmt.Sprintf("Replace with %g+ DPI image or reduce print size", c.config.MinDPI),
		})
	}

	if mode == "RGB" {
		issues = append(issues, lint.Issue{
			Kind:        lint.KindRGBImage,
			Location:    name,
			Severity:    lint.SeverityWarning,
			Description: "Image is RGB, should be CMYK for print",
			Details: lint.ImageDetails{
				File:        path,
				DPIX:        dpiX,
				DPIY:        dpiY,
				PixelWidth:  cfg.Width,
				PixelHeight: cfg.Height,
				Mode:        mode,
			},
			FixSuggestion: "Convert to CMYK color profile",
		})
	}

	return issues
}

func imageError(path, name string, err error) lint.Issue {
	return lint.Issue{
		Kind:        lint.KindImageError,
		Location:    name,
		Severity:    lint.SeverityError,
		Description: fmt.Sprintf("Could not read image: %v", err),
		Details:     lint.ImageErrorDetails{File: path, Error: err.Error()},
	}
}

// colorMode classifies a decoded image's color model for print purposes.
// Anything that is not CMYK, grayscale or indexed counts as RGB,
// including RGB-with-alpha and YCbCr variants.
func colorMode(model color.Model) string {
	switch model {
	case color.CMYKModel:
		return "CMYK"
	case color.GrayModel, color.Gray16Model:
		return "Gray"
	}
	if _, ok := model.(color.Palette); ok {
		return "Indexed"
	}
	return "RGB"
}
