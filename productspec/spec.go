package productspec

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"
)

// MMToPoints is the conversion factor from millimeters to PDF points.
const MMToPoints = 2.83465

// PageSize is a page's trim dimensions in millimeters.
type PageSize struct {
	Width  float64 `json:"width" validate:"gt=0"`
	Height float64 `json:"height" validate:"gt=0"`
}

// Margins are the page margins in millimeters. Outer is the margin on the
// non-spine side; the engine treats it as the symmetric side margin.
type Margins struct {
	Top    float64 `json:"top" validate:"gte=0"`
	Bottom float64 `json:"bottom" validate:"gte=0"`
	Outer  float64 `json:"outer" validate:"gte=0"`
}

// TargetSpec is a millimeter-based print product specification.
type TargetSpec struct {
	Page    PageSize `json:"page"`
	Margins Margins  `json:"margins"`
}

// DefaultTargetSpec returns the A5 default target: 148x210mm trim with
// 20mm top, 25mm bottom, and 15mm side margins.
func DefaultTargetSpec() TargetSpec {
	return TargetSpec{
		Page:    PageSize{Width: 148, Height: 210},
		Margins: Margins{Top: 20, Bottom: 25, Outer: 15},
	}
}

// targetSpecSchema is the JSON Schema a target spec file must satisfy.
// Unknown keys are rejected so a typo ("margin" for "margins") fails loudly
// instead of silently falling back to defaults.
const targetSpecSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"page": {
			"type": "object",
			"properties": {
				"width": {"type": "number", "exclusiveMinimum": 0},
				"height": {"type": "number", "exclusiveMinimum": 0}
			},
			"additionalProperties": false
		},
		"margins": {
			"type": "object",
			"properties": {
				"top": {"type": "number", "minimum": 0},
				"bottom": {"type": "number", "minimum": 0},
				"outer": {"type": "number", "minimum": 0}
			},
			"additionalProperties": false
		}
	},
	"additionalProperties": false
}`

// LoadTargetSpec reads a target spec from a JSON file. The document is
// validated against the embedded schema before decoding; fields absent from
// the file take the A5 defaults.
func LoadTargetSpec(path string) (TargetSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return TargetSpec{}, fmt.Errorf("failed to read target spec: %w", err)
	}
	return ParseTargetSpec(data)
}

// ParseTargetSpec validates and decodes a target spec from memory.
func ParseTargetSpec(data []byte) (TargetSpec, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(targetSpecSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return TargetSpec{}, fmt.Errorf("failed to validate target spec: %w", err)
	}
	if !result.Valid() {
		return TargetSpec{}, fmt.Errorf("invalid target spec: %s", formatSchemaErrors(result))
	}

	spec := DefaultTargetSpec()

	// Decode over a scratch struct so absent fields keep defaults while
	// explicit zeroes are still caught by the schema/validation above.
	var raw struct {
		Page *struct {
			Width  *float64 `json:"width"`
			Height *float64 `json:"height"`
		} `json:"page"`
		Margins *struct {
			Top    *float64 `json:"top"`
			Bottom *float64 `json:"bottom"`
			Outer  *float64 `json:"outer"`
		} `json:"margins"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return TargetSpec{}, fmt.Errorf("failed to parse target spec: %w", err)
	}

	if raw.Page != nil {
		if raw.Page.Width != nil {
			spec.Page.Width = *raw.Page.Width
		}
		if raw.Page.Height != nil {
			spec.Page.Height = *raw.Page.Height
		}
	}
	if raw.Margins != nil {
		if raw.Margins.Top != nil {
			spec.Margins.Top = *raw.Margins.Top
		}
		if raw.Margins.Bottom != nil {
			spec.Margins.Bottom = *raw.Margins.Bottom
		}
		if raw.Margins.Outer != nil {
			spec.Margins.Outer = *raw.Margins.Outer
		}
	}

	return spec, nil
}

// formatSchemaErrors joins schema validation failures into one message.
func formatSchemaErrors(result *gojsonschema.Result) string {
	msg := ""
	for i, desc := range result.Errors() {
		if i > 0 {
			msg += "; "
		}
		msg += desc.String()
	}
	return msg
}
