// Package viz is the terminal host for the curve animation.
//
// The package implements a Bubble Tea program that replays driver frames
// onto a Braille canvas:
//
//   - [Model]: the Bubble Tea model owning the driver and the frame clock
//   - [Canvas]: Braille-based pixel canvas with a text overlay
//   - [BrailleSurface]: adapts a Canvas to the driver's surface interface
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Space - Pause/Resume the frame clock
//	R     - Restart the reveal
//	T     - Cycle color themes
//	?     - Show help overlay
//	Q/Esc - Quit
package viz
