// Package preflight validates raster source images for print production.
//
// The checks are file-scoped and independent of any page geometry: every
// image file under a directory is decoded for its pixel dimensions and
// color model, and its embedded resolution metadata is read to verify the
// print-quality DPI floor. Findings are reported as lint issues so they
// flow through the same reporting and exit-code pipeline as the layout
// detectors.
//
// # Supported formats
//
// JPEG, PNG, TIFF, BMP and WebP files are recognized by extension. DPI
// metadata is read from the JFIF APP0 segment (JPEG), the pHYs chunk
// (PNG) and the resolution IFD tags (TIFF); formats without resolution
// metadata fall back to the conventional 72x72 screen default.
package preflight
