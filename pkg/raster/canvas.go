package raster

import (
	"github.com/gogpu/gg"

	"github.com/go-drift/progressring/pkg/errors"
	"github.com/go-drift/progressring/pkg/graphics"
)

// Canvas implements graphics.Canvas on top of a gg context.
//
// Drawing errors from gg are kept and reported by Err; the first one wins.
type Canvas struct {
	ctx   *gg.Context
	size  graphics.Size
	fonts *fontCache
	err   error
}

// NewCanvas wraps ctx. Sizes are taken from the context.
func NewCanvas(ctx *gg.Context) *Canvas {
	return &Canvas{
		ctx:   ctx,
		size:  graphics.Size{Width: float64(ctx.Width()), Height: float64(ctx.Height())},
		fonts: defaultFonts,
	}
}

// Err returns the first drawing error, if any.
func (c *Canvas) Err() error {
	return c.err
}

func (c *Canvas) setErr(op string, err error) {
	if err != nil && c.err == nil {
		c.err = &errors.Error{Op: op, Kind: errors.KindRender, Err: err}
	}
}

func (c *Canvas) Save() {
	c.ctx.Push()
}

func (c *Canvas) Restore() {
	c.ctx.Pop()
}

func (c *Canvas) Translate(dx, dy float64) {
	c.ctx.Translate(dx, dy)
}

func (c *Canvas) Scale(sx, sy float64) {
	c.ctx.Scale(sx, sy)
}

func (c *Canvas) Rotate(radians float64) {
	c.ctx.Rotate(radians)
}

func (c *Canvas) Clear(color graphics.Color) {
	c.ctx.ClearWithColor(gg.FromColor(color.NRGBA()))
}

func (c *Canvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	c.ctx.ClearPath()
	c.ctx.DrawRectangle(rect.Left, rect.Top, rect.Width(), rect.Height())
	c.finish("raster.DrawRect", paint)
}

func (c *Canvas) DrawCircle(center graphics.Offset, radius float64, paint graphics.Paint) {
	c.ctx.ClearPath()
	c.ctx.DrawCircle(center.X, center.Y, radius)
	c.finish("raster.DrawCircle", paint)
}

func (c *Canvas) DrawPath(path *graphics.Path, paint graphics.Paint) {
	if path.IsEmpty() {
		return
	}
	c.ctx.ClearPath()
	for _, cmd := range path.Commands {
		a := cmd.Args
		switch cmd.Op {
		case graphics.PathOpMoveTo:
			c.ctx.MoveTo(a[0], a[1])
		case graphics.PathOpLineTo:
			c.ctx.LineTo(a[0], a[1])
		case graphics.PathOpCubicTo:
			c.ctx.CubicTo(a[0], a[1], a[2], a[3], a[4], a[5])
		case graphics.PathOpClose:
			c.ctx.ClosePath()
		}
	}
	c.finish("raster.DrawPath", paint)
}

// DrawText draws text centered on center, in the current transform.
func (c *Canvas) DrawText(s string, center graphics.Offset, style graphics.TextStyle) {
	if s == "" || style.FontSize <= 0 {
		return
	}
	face, err := c.fonts.face(style.FontSize)
	if err != nil {
		c.setErr("raster.DrawText", err)
		return
	}
	c.ctx.SetFont(face)
	c.ctx.SetColor(style.Color.NRGBA())
	c.ctx.DrawStringAnchored(s, center.X, center.Y, 0.5, 0.5)
}

func (c *Canvas) Size() graphics.Size {
	return c.size
}

func (c *Canvas) finish(op string, paint graphics.Paint) {
	c.ctx.SetColor(paint.Color.NRGBA())
	if paint.Style == graphics.PaintStyleStroke {
		c.ctx.SetLineWidth(paint.StrokeWidth)
		c.ctx.SetLineCap(lineCap(paint.StrokeCap))
		c.ctx.SetLineJoin(lineJoin(paint.StrokeJoin))
		c.setErr(op, c.ctx.Stroke())
		return
	}
	c.setErr(op, c.ctx.Fill())
}

func lineCap(sc graphics.StrokeCap) gg.LineCap {
	switch sc {
	case graphics.CapRound:
		return gg.LineCapRound
	case graphics.CapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}

func lineJoin(join graphics.StrokeJoin) gg.LineJoin {
	switch join {
	case graphics.JoinRound:
		return gg.LineJoinRound
	case graphics.JoinBevel:
		return gg.LineJoinBevel
	default:
		return gg.LineJoinMiter
	}
}

var _ graphics.Canvas = (*Canvas)(nil)
