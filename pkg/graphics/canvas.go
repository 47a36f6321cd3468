package graphics

// TextStyle describes how a single line of text is drawn.
type TextStyle struct {
	Color    Color
	FontSize float64
}

// Canvas records or renders drawing commands.
type Canvas interface {
	// Save pushes the current transform state.
	Save()

	// Restore pops the most recent transform state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// Scale scales the coordinate system by the given factors.
	Scale(sx, sy float64)

	// Rotate rotates the coordinate system by radians.
	Rotate(radians float64)

	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawCircle draws a circle with the provided paint.
	DrawCircle(center Offset, radius float64, paint Paint)

	// DrawPath draws a path with the provided paint.
	DrawPath(path *Path, paint Paint)

	// DrawText draws a single line of text centered on center.
	DrawText(text string, center Offset, style TextStyle)

	// Size returns the size of the canvas in pixels.
	Size() Size
}
