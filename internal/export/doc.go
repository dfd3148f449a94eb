// Package export writes curves and rendered frames to files: SVG snapshots
// of the composited canvas, animated GIFs of the reveal, and CSV or JSON
// point dumps.
package export
