package model

import "math"

// Rect represents a rectangle in top-left-origin page coordinates.
// Top < Bottom and X0 < X1 for any non-degenerate rectangle.
type Rect struct {
	X0     float64 // Left edge
	Top    float64 // Upper edge (smaller value = closer to page head)
	X1     float64 // Right edge
	Bottom float64 // Lower edge
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Area returns the area of the rectangle.
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// IsValid returns true if the rectangle has positive dimensions.
func (r Rect) IsValid() bool {
	return r.Width() > 0 && r.Height() > 0
}

// Intersects checks if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return !(r.X1 < other.X0 ||
		r.X0 > other.X1 ||
		r.Bottom < other.Top ||
		r.Top > other.Bottom)
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		X0:     math.Min(r.X0, other.X0),
		Top:    math.Min(r.Top, other.Top),
		X1:     math.Max(r.X1, other.X1),
		Bottom: math.Max(r.Bottom, other.Bottom),
	}
}

// Expand grows the rectangle by a margin on all sides.
func (r Rect) Expand(margin float64) Rect {
	return Rect{
		X0:     r.X0 - margin,
		Top:    r.Top - margin,
		X1:     r.X1 + margin,
		Bottom: r.Bottom + margin,
	}
}

// Contains checks if a point lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X0 && x <= r.X1 && y >= r.Top && y <= r.Bottom
}
