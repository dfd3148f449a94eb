// Package curve samples quadratic polynomials into ordered point sequences.
//
//   - [Quadratic]: y = A*x^2 + B*x + C
//   - [Generate]: evenly spaced samples across a bounding rectangle
//   - [Curve]: the immutable result, in parameterisation order
//
// # Example
//
//	bounds := geom.NewRectFromCenter(geom.Pt(0, 0), 1024, 768).Pad(50)
//	c, err := curve.Generate(200, bounds, curve.Reference)
//
// Generation is pure: identical inputs always yield identical curves.
package curve
