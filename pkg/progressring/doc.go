// Package progressring implements a circular progress ring render box.
//
// A RingView draws two concentric strokes: a background ring that is always
// complete and a progress ring trimmed to the current progress fraction,
// starting at 12 o'clock. An arbitrary child can be centered inside the
// ring in the largest square that fits within the inner stroke edge.
//
// # Creation
//
//	ring, err := progressring.New(progressring.DefaultStyle())
//	if err != nil {
//	    return err
//	}
//	ring.SetProgress(0.3)
//	ring.Layout(layout.Tight(graphics.Size{Width: 200, Height: 200}), false)
//
// # Animation
//
// Animate interpolates the drawn stroke end without touching the stored
// progress, so Progress and PresentationProgress may differ while an
// animation runs or after a forward-filled animation completes:
//
//	ring.Animate(progressring.AnimationSpec{
//	    From:     0,
//	    To:       1,
//	    Duration: 5 * time.Second,
//	})
//
// Animations are driven by animation.StepTickers from the host frame loop.
package progressring
