// Package easing maps easing names to gween tween functions. Only easings
// that never move backwards are registered, so a reveal driven through them
// stays non-decreasing.
package easing

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tanema/gween/ease"
)

// Linear is the identity easing.
const Linear = "linear"

var ErrUnknown = errors.New("easing: unknown easing")

var funcs = map[string]ease.TweenFunc{
	Linear:         ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
	"in-sine":      ease.InSine,
	"out-sine":     ease.OutSine,
	"in-out-sine":  ease.InOutSine,
	"in-expo":      ease.InExpo,
	"out-expo":     ease.OutExpo,
}

// Lookup returns the tween function registered under name. The empty name
// resolves to Linear.
func Lookup(name string) (ease.TweenFunc, error) {
	if name == "" {
		name = Linear
	}
	fn, ok := funcs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknown, name, Names())
	}
	return fn, nil
}

// Names returns the registered easings in sorted order.
func Names() []string {
	names := make([]string, 0, len(funcs))
	for name := range funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Progress maps elapsed frames onto [0, 1] over a run lasting duration
// frames, shaped by fn.
func Progress(fn ease.TweenFunc, elapsed, duration float64) float64 {
	if duration <= 0 || elapsed >= duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	p := float64(fn(float32(elapsed), 0, 1, float32(duration)))
	return min(max(p, 0), 1)
}
