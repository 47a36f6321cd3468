package testing

import (
	"fmt"
	"math"

	"github.com/go-drift/progressring/pkg/graphics"
	"github.com/go-drift/progressring/pkg/layout"
)

// DisplayOp represents a serialized canvas drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`

	// Path holds the recorded path for drawPath ops so tests can measure it.
	Path *graphics.Path `json:"-"`
}

// serializingCanvas implements graphics.Canvas and records ops as DisplayOp.
type serializingCanvas struct {
	ops  []DisplayOp
	size graphics.Size
}

func (c *serializingCanvas) Save() {
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *serializingCanvas) Restore() {
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *serializingCanvas) Translate(dx, dy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "translate",
		Params: sortedMap("dx", round2(dx), "dy", round2(dy)),
	})
}

func (c *serializingCanvas) Scale(sx, sy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "scale",
		Params: sortedMap("sx", round2(sx), "sy", round2(sy)),
	})
}

func (c *serializingCanvas) Rotate(radians float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "rotate",
		Params: sortedMap("radians", round2(radians)),
	})
}

func (c *serializingCanvas) Clear(color graphics.Color) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clear",
		Params: sortedMap("color", serializeColor(color)),
	})
}

func (c *serializingCanvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "drawRect",
		Params: withPaint(sortedMap("rect", serializeRect(rect)), paint),
	})
}

func (c *serializingCanvas) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawCircle",
		Params: withPaint(sortedMap(
			"cx", round2(center.X),
			"cy", round2(center.Y),
			"radius", round2(radius),
		), paint),
	})
}

func (c *serializingCanvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	params := sortedMap("commands", len(path.Commands))
	if start, ok := path.StartPoint(); ok {
		params["start"] = [2]float64{round2(start.X), round2(start.Y)}
	}
	if end, ok := path.EndPoint(); ok {
		params["end"] = [2]float64{round2(end.X), round2(end.Y)}
	}
	c.ops = append(c.ops, DisplayOp{
		Op:     "drawPath",
		Params: withPaint(params, paint),
		Path:   path.Clone(),
	})
}

func (c *serializingCanvas) DrawText(text string, center graphics.Offset, style graphics.TextStyle) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawText",
		Params: sortedMap(
			"text", text,
			"cx", round2(center.X),
			"cy", round2(center.Y),
			"color", serializeColor(style.Color),
			"fontSize", round2(style.FontSize),
		),
	})
}

func (c *serializingCanvas) Size() graphics.Size {
	return c.size
}

// RecordOps replays a DisplayList through the serializing canvas.
func RecordOps(dl *graphics.DisplayList) []DisplayOp {
	canvas := &serializingCanvas{size: dl.Size()}
	dl.Paint(canvas)
	return canvas.ops
}

// PaintOps paints a laid-out render object and returns its operations.
func PaintOps(ro layout.RenderObject, size graphics.Size) []DisplayOp {
	canvas := &serializingCanvas{size: size}
	ro.Paint(&layout.PaintContext{Canvas: canvas})
	return canvas.ops
}

// Filter returns the operations with the given op name, in order.
func Filter(ops []DisplayOp, name string) []DisplayOp {
	var out []DisplayOp
	for _, op := range ops {
		if op.Op == name {
			out = append(out, op)
		}
	}
	return out
}

// --- Serialization helpers ---

func withPaint(params map[string]any, paint graphics.Paint) map[string]any {
	params["color"] = serializeColor(paint.Color)
	params["style"] = paint.Style.String()
	if paint.Style == graphics.PaintStyleStroke {
		params["strokeWidth"] = round2(paint.StrokeWidth)
		params["cap"] = paint.StrokeCap.String()
	}
	return params
}

func serializeRect(r graphics.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
