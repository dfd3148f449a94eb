// Package geom provides the 2D canvas-space primitives shared by the curve
// generator, the animation driver and the render hosts.
//
// Canvas space has its origin at the center of the drawable area, with +x
// to the right and +y up. Hosts that address pixels from the top-left corner
// convert with [Rect.ToScreen].
package geom
