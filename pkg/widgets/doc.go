// Package widgets provides the small render boxes that sit around and inside
// a progress ring.
//
//   - [Label] draws a single line of text centered in whatever size its
//     parent gives it, the usual content placed with
//     progressring.RingView.PlaceCentered.
//   - [Center] fills its space with a background color and centers a child
//     at a fixed size, the root of a demo screen.
//
// Both are plain render objects: construct them, attach them to a parent
// and drive layout and paint through the layout package.
//
//	label := widgets.NewLabel("0", 28, graphics.ColorLightGray)
//	ring.PlaceCentered(label)
//	root := widgets.NewCenter(ring, graphics.Size{Width: 200, Height: 200}, graphics.ColorWhite)
package widgets
