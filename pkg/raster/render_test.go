package raster

import (
	stderrors "errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-drift/progressring/pkg/errors"
	"github.com/go-drift/progressring/pkg/graphics"
	"github.com/go-drift/progressring/pkg/layout"
	"github.com/go-drift/progressring/pkg/progressring"
	"github.com/go-drift/progressring/pkg/widgets"
)

func recordRing(t *testing.T, progress float64, label string) *graphics.DisplayList {
	t.Helper()
	ring, err := progressring.New(progressring.DefaultStyle())
	if err != nil {
		t.Fatal(err)
	}
	ring.SetProgress(progress)
	if label != "" {
		ring.PlaceCentered(widgets.NewLabel(label, 28, graphics.ColorBlack))
	}
	size := graphics.Size{Width: 200, Height: 200}
	ring.Layout(layout.Tight(size), false)

	recorder := &graphics.PictureRecorder{}
	ring.Paint(&layout.PaintContext{Canvas: recorder.BeginRecording(size)})
	return recorder.EndRecording()
}

func near(got color.RGBA, want graphics.Color) bool {
	w := want.NRGBA()
	d := func(a, b uint8) bool { return math.Abs(float64(a)-float64(b)) <= 3 }
	return d(got.R, w.R) && d(got.G, w.G) && d(got.B, w.B)
}

// pointAt returns the ring centerline pixel at the given fraction clockwise
// from the top.
func pointAt(fraction float64) (int, int) {
	angle := 3*math.Pi/2 + fraction*2*math.Pi
	return int(math.Round(100 + 90*math.Cos(angle))), int(math.Round(100 + 90*math.Sin(angle)))
}

func TestRenderRingPixels(t *testing.T) {
	img, err := Render(recordRing(t, 0.3, ""), graphics.ColorWhite)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 200, 200) {
		t.Fatalf("bounds = %v", got)
	}

	tests := []struct {
		name     string
		fraction float64
		want     graphics.Color
	}{
		{"top", 0.02, progressring.DefaultRingColor},
		{"one sixth", 1.0 / 6, progressring.DefaultRingColor},
		{"bottom", 0.5, progressring.DefaultBackgroundRingColor},
		{"left", 0.75, progressring.DefaultBackgroundRingColor},
	}
	for _, tt := range tests {
		x, y := pointAt(tt.fraction)
		if got := img.RGBAAt(x, y); !near(got, tt.want) {
			t.Errorf("%s (%d,%d) = %v, want %v", tt.name, x, y, got, tt.want.NRGBA())
		}
	}

	if got := img.RGBAAt(100, 100); !near(got, graphics.ColorWhite) {
		t.Errorf("center = %v, want white", got)
	}
	if got := img.RGBAAt(2, 2); !near(got, graphics.ColorWhite) {
		t.Errorf("corner = %v, want white", got)
	}
}

// inkBounds returns the bounding box of dark pixels in img.
func inkBounds(img *image.RGBA) image.Rectangle {
	var box image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if c.R < 128 && c.G < 128 && c.B < 128 {
				box = box.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return box
}

func TestRenderLabel(t *testing.T) {
	img, err := Render(recordRing(t, 0, "8"), graphics.ColorWhite)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	box := inkBounds(img)
	if box.Empty() {
		t.Fatal("no label pixels rendered")
	}
	mid := image.Pt((box.Min.X+box.Max.X)/2, (box.Min.Y+box.Max.Y)/2)
	if mid.X < 94 || mid.X > 106 || mid.Y < 94 || mid.Y > 106 {
		t.Errorf("label ink %v centered at %v, want near (100,100)", box, mid)
	}
}

func TestRenderTextUnderTranslate(t *testing.T) {
	recorder := &graphics.PictureRecorder{}
	canvas := recorder.BeginRecording(graphics.Size{Width: 200, Height: 200})
	canvas.Save()
	canvas.Translate(50, 50)
	canvas.DrawText("8", graphics.Offset{X: 50, Y: 50}, graphics.TextStyle{Color: graphics.ColorBlack, FontSize: 28})
	canvas.Restore()

	img, err := Render(recorder.EndRecording(), graphics.ColorWhite)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	box := inkBounds(img)
	if box.Empty() || !box.In(image.Rect(80, 80, 120, 120)) {
		t.Errorf("glyph ink = %v, want inside (80,80)-(120,120)", box)
	}
}

func TestRenderInvalidSize(t *testing.T) {
	recorder := &graphics.PictureRecorder{}
	recorder.BeginRecording(graphics.Size{})
	_, err := Render(recorder.EndRecording(), graphics.ColorWhite)

	var e *errors.Error
	if !stderrors.As(err, &e) || e.Kind != errors.KindRender {
		t.Errorf("err = %v, want KindRender", err)
	}
}

func TestRenderReportsDrawingErrors(t *testing.T) {
	broken := &fontCache{err: stderrors.New("no font")}
	broken.once.Do(func() {})
	prev := defaultFonts
	defaultFonts = broken
	t.Cleanup(func() { defaultFonts = prev })

	dl := recordRing(t, 0.5, "3")
	if _, err := Render(dl, graphics.ColorWhite); err == nil {
		t.Fatal("Render succeeded with a broken font")
	} else {
		var e *errors.Error
		if !stderrors.As(err, &e) || e.Kind != errors.KindRender || e.Op != "raster.DrawText" {
			t.Errorf("err = %v, want raster.DrawText render error", err)
		}
	}

	path := filepath.Join(t.TempDir(), "broken.png")
	if err := SavePNG(path, dl, graphics.ColorWhite); err == nil {
		t.Error("SavePNG succeeded with a broken font")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("png written despite error: %v", err)
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ring.png")
	if err := SavePNG(path, recordRing(t, 0.5, ""), graphics.ColorWhite); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(200, 200) {
		t.Errorf("size = %v", got)
	}
}

func TestWritePNG(t *testing.T) {
	img, err := Render(recordRing(t, 1, ""), graphics.ColorWhite)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "full.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := WritePNG(f, img); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	f.Close()

	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Errorf("png not written: %v", err)
	}
}
