// Package buffer implements the pure, grapheme-accurate document model the
// editor renders.
//
// Coordinates are 0-based (Row, GraphemeCol) in grapheme clusters.
// Ranges are half-open selections in document coordinates: [Start, End).
// Byte offsets (see ByteOffsetFromPos) count '\n' as one byte between rows.
package buffer
