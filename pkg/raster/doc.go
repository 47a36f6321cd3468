// Package raster replays display lists onto a gogpu/gg software context to
// produce images.
//
//	recorder := &graphics.PictureRecorder{}
//	canvas := recorder.BeginRecording(size)
//	ring.Paint(&layout.PaintContext{Canvas: canvas})
//	img, err := raster.Render(recorder.EndRecording(), graphics.ColorWhite)
//
// Text is drawn with the Go Regular font.
package raster
