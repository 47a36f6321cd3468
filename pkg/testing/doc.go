// Package testing provides helpers for testing render objects and
// animations in this module.
//
// # Animation Testing
//
// Control time for deterministic animation tests:
//
//	clk := ringtest.UseFakeClock(t)
//	ring.Animate(progressring.AnimationSpec{To: 1, Duration: time.Second})
//	clk.Advance(500 * time.Millisecond)
//	animation.StepTickers()
//
// # Paint Assertions
//
// Record what a render object paints and inspect the operations:
//
//	ops := ringtest.PaintOps(ring, graphics.Size{Width: 200, Height: 200})
//	paths := ringtest.Filter(ops, "drawPath")
//
// Compare whole render trees with [CaptureSnapshot] and [Snapshot.Diff].
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import ringtest "github.com/go-drift/progressring/pkg/testing"
package testing
