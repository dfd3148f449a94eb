// Package anim drives the progressive reveal of a sampled curve.
//
// A [Driver] owns the curve and a reveal index. Hosts call [Driver.Advance]
// with their elapsed frame count, then [Driver.Render] to obtain the frame's
// draw [Command] list, and replay it onto a [Surface] with [Draw]. The
// backdrop (background, axes and labels) is emitted once, on the first
// render; every frame then redraws the revealed segments on top of it, so
// surfaces must keep their contents between frames.
//
// # Thread Safety
//
// Driver is NOT safe for concurrent use. It is meant to be owned by a single
// host loop.
package anim
