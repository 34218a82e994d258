// Package productspec describes print-on-demand product targets: trim
// sizes, margins, and the millimeter-based target specification the lint
// engine derives its page geometry from.
//
// A target spec can be built three ways:
//
//   - [DefaultTargetSpec] - the A5 default (148x210mm, 20/25/15mm margins)
//   - [LoadTargetSpec] - from a JSON file, validated against an embedded
//     JSON Schema before decoding
//   - [TrimSize.Spec] - from a named print-product trim size
//
// All dimensions in a TargetSpec are millimeters; use [MMToPoints] to
// convert to PDF points.
package productspec
