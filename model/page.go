package model

// Char represents a single positioned character extracted from a page.
// Field names in the JSON form follow the extraction tool's conventions
// (size, fontname) so dumps can be consumed without translation.
type Char struct {
	Text     string  `json:"text"`
	Top      float64 `json:"top"`
	Bottom   float64 `json:"bottom"`
	X0       float64 `json:"x0"`
	X1       float64 `json:"x1"`
	FontSize float64 `json:"size"`
	FontName string  `json:"fontname"`
}

// TableBox is the bounding box of a table detected on a page. The engine
// only reads table geometry; detection itself belongs to the collaborator.
type TableBox struct {
	X0     float64 `json:"x0"`
	Top    float64 `json:"top"`
	X1     float64 `json:"x1"`
	Bottom float64 `json:"bottom"`
}

// Rect returns the table box as a Rect.
func (t TableBox) Rect() Rect {
	return Rect{X0: t.X0, Top: t.Top, X1: t.X1, Bottom: t.Bottom}
}

// Page holds one page's extracted geometry.
type Page struct {
	// Number is the 1-indexed page number.
	Number int `json:"number"`

	// Width and Height are the page dimensions in points.
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// Chars are the page's characters, in extraction stream order.
	// The lint pipeline never relies on this order; the line builder
	// re-sorts geometrically.
	Chars []Char `json:"chars"`

	// Tables are the detected table bounding boxes on this page.
	Tables []TableBox `json:"tables"`
}

// IsEmpty returns true if the page has neither characters nor tables.
func (p *Page) IsEmpty() bool {
	return len(p.Chars) == 0 && len(p.Tables) == 0
}

// Document is the ordered page set for one analysis run.
type Document struct {
	// Path is the source PDF the geometry was extracted from.
	Path string `json:"path"`

	// Pages in document order, 1-indexed by their Number field.
	Pages []Page `json:"pages"`
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	if d == nil {
		return 0
	}
	return len(d.Pages)
}
