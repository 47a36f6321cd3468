package raster

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"log/slog"
	"math"

	"github.com/gogpu/gg"

	"github.com/go-drift/progressring/pkg/errors"
	"github.com/go-drift/progressring/pkg/graphics"
)

// SetLogger forwards l to gg's internal logger. Nil silences it.
func SetLogger(l *slog.Logger) {
	gg.SetLogger(l)
}

// Render replays dl onto a fresh context of the display list's size, filled
// with background first. The first drawing error recorded by the canvas
// (see [Canvas.Err]) is returned instead of a partial image.
func Render(dl *graphics.DisplayList, background graphics.Color) (*image.RGBA, error) {
	ctx, err := paint("raster.Render", dl, background)
	if err != nil {
		return nil, err
	}
	defer ctx.Close()
	return toRGBA(ctx.Image()), nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out
}

// SavePNG renders dl like Render and writes the result to path. Drawing
// errors are returned the same way and nothing is written.
func SavePNG(path string, dl *graphics.DisplayList, background graphics.Color) error {
	ctx, err := paint("raster.SavePNG", dl, background)
	if err != nil {
		return err
	}
	defer ctx.Close()
	if err := ctx.SavePNG(path); err != nil {
		return &errors.Error{Op: "raster.SavePNG", Kind: errors.KindRender, Err: err}
	}
	return nil
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func paint(op string, dl *graphics.DisplayList, background graphics.Color) (*gg.Context, error) {
	size := dl.Size()
	w, h := int(math.Ceil(size.Width)), int(math.Ceil(size.Height))
	if w <= 0 || h <= 0 {
		return nil, errors.New(op, errors.KindRender, "invalid size %vx%v", size.Width, size.Height)
	}

	ctx := gg.NewContext(w, h)
	canvas := NewCanvas(ctx)
	canvas.Clear(background)
	dl.Paint(canvas)
	if err := canvas.Err(); err != nil {
		ctx.Close()
		return nil, err
	}
	if err := ctx.FlushGPU(); err != nil {
		ctx.Close()
		return nil, &errors.Error{Op: op, Kind: errors.KindRender, Err: err}
	}
	return ctx, nil
}
