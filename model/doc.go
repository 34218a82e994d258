// Package model defines the geometry primitives and the per-page input
// contract the analysis engine consumes from its PDF-parsing collaborator.
//
// All coordinates are PDF user-space points with the page origin at the
// top-left corner: Top increases downward, so a line near the foot of the
// page has a larger Top than one near the head. This matches the geometry
// dumps produced by common extraction tools and is the coordinate space
// every detector in the lint package works in.
//
// The central types are:
//
//   - [Char] - a single positioned character with font metadata
//   - [TableBox] - the bounding box of a detected table
//   - [Page] - one page's characters and tables plus its dimensions
//   - [Document] - the ordered page set for one analysis run
//
// A Document is typically loaded from a JSON geometry dump via [Load]:
//
//	doc, err := model.Load("book.geometry.json")
//	if err != nil {
//	    // missing or corrupt input - fatal for the run
//	}
package model
