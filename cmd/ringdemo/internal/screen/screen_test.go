package screen

import (
	stderrors "errors"
	"image"
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/progressring/pkg/animation"
	"github.com/go-drift/progressring/pkg/errors"
	"github.com/go-drift/progressring/pkg/graphics"
	"github.com/go-drift/progressring/pkg/layout"
	"github.com/go-drift/progressring/pkg/raster"
	ringtest "github.com/go-drift/progressring/pkg/testing"
)

type state struct {
	Count    time.Duration
	Label    string
	Progress float64
	Running  bool
	Cycle    int
}

func snapshot(s *DemoScreen) state {
	return state{
		Count:    s.Count(),
		Label:    s.LabelText(),
		Progress: math.Round(s.Ring().Progress()*1000) / 1000,
		Running:  s.Running(),
		Cycle:    s.Cycle(),
	}
}

func newScreen(t *testing.T, opts Options) *DemoScreen {
	t.Helper()
	s, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestTimerCycle(t *testing.T) {
	s := newScreen(t, DefaultOptions())

	steps := []struct {
		advance time.Duration
		want    state
	}{
		{0, state{Label: "0", Running: true, Cycle: 1}},
		{50 * time.Millisecond, state{Count: 50 * time.Millisecond, Label: "0", Progress: 0.005, Running: true, Cycle: 1}},
		{3200 * time.Millisecond, state{Count: 3250 * time.Millisecond, Label: "3", Progress: 0.325, Running: true, Cycle: 1}},
		{6750 * time.Millisecond, state{Count: 10 * time.Second, Label: "10", Progress: 1, Running: false, Cycle: 1}},
		{999 * time.Millisecond, state{Count: 10 * time.Second, Label: "10", Progress: 1, Running: false, Cycle: 1}},
		// The new cycle resets the label; progress waits for the first fire.
		{time.Millisecond, state{Label: "0", Progress: 1, Running: true, Cycle: 2}},
		{50 * time.Millisecond, state{Count: 50 * time.Millisecond, Label: "0", Progress: 0.005, Running: true, Cycle: 2}},
	}
	for i, step := range steps {
		s.Advance(step.advance)
		if diff := cmp.Diff(step.want, snapshot(s)); diff != "" {
			t.Fatalf("step %d (+%v) mismatch (-want +got):\n%s", i, step.advance, diff)
		}
	}
}

func TestAdvanceLargeStepFiresEveryEvent(t *testing.T) {
	s := newScreen(t, DefaultOptions())
	// Cycle 1 ends at 10s, cycle 2 runs 11s..21s, cycle 3 starts at 22s.
	s.Advance(25 * time.Second)

	want := state{Count: 3 * time.Second, Label: "3", Progress: 0.3, Running: true, Cycle: 3}
	if diff := cmp.Diff(want, snapshot(s)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if s.Elapsed() != 25*time.Second {
		t.Errorf("Elapsed = %v", s.Elapsed())
	}
}

func TestAdvanceIgnoresNegativeStep(t *testing.T) {
	s := newScreen(t, DefaultOptions())
	s.Advance(time.Second)
	s.Advance(-time.Hour)
	if s.Elapsed() != time.Second || s.Count() != time.Second {
		t.Errorf("elapsed %v count %v, want 1s", s.Elapsed(), s.Count())
	}
}

func TestZeroRestartDelay(t *testing.T) {
	opts := DefaultOptions()
	opts.Max = 100 * time.Millisecond
	opts.RestartDelay = 0
	s := newScreen(t, opts)

	s.Advance(100 * time.Millisecond)
	want := state{Label: "0", Progress: 1, Running: true, Cycle: 2}
	if diff := cmp.Diff(want, snapshot(s)); diff != "" {
		t.Errorf("expected immediate restart (-want +got):\n%s", diff)
	}
}

func TestNewValidatesOptions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"zero width", func(o *Options) { o.Width = 0 }},
		{"negative ring", func(o *Options) { o.RingSize = -1 }},
		{"zero interval", func(o *Options) { o.Interval = 0 }},
		{"max below interval", func(o *Options) { o.Max = time.Millisecond }},
		{"negative delay", func(o *Options) { o.RestartDelay = -time.Second }},
		{"bad stroke", func(o *Options) { o.Style.StrokeWidth = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)
			_, err := New(opts)
			var e *errors.Error
			if !stderrors.As(err, &e) || e.Kind != errors.KindConfig {
				t.Errorf("err = %v, want KindConfig", err)
			}
		})
	}
}

func TestFrameRecordsScreen(t *testing.T) {
	s := newScreen(t, DefaultOptions())
	s.Advance(2500 * time.Millisecond)

	ops := ringtest.RecordOps(s.Frame())
	rects := ringtest.Filter(ops, "drawRect")
	if len(rects) != 1 || rects[0].Params["color"] != "0xFFFFFFFF" {
		t.Fatalf("background rect = %v", rects)
	}
	if paths := ringtest.Filter(ops, "drawPath"); len(paths) != 2 {
		t.Fatalf("expected background and progress paths, got %d", len(paths))
	}
	texts := ringtest.Filter(ops, "drawText")
	if len(texts) != 1 || texts[0].Params["text"] != "2" {
		t.Fatalf("label = %v", texts)
	}

	// The ring sits in the middle of the 320x320 screen.
	translates := ringtest.Filter(ops, "translate")
	if len(translates) == 0 || translates[0].Params["dx"] != 60.0 || translates[0].Params["dy"] != 60.0 {
		t.Errorf("ring offset = %v", translates)
	}
}

func TestFrameReusesCleanRecording(t *testing.T) {
	s := newScreen(t, DefaultOptions())
	first := s.Frame()
	if again := s.Frame(); again != first {
		t.Error("expected clean frame to be reused")
	}
	s.Advance(50 * time.Millisecond)
	if next := s.Frame(); next == first {
		t.Error("expected a new recording after the timer fired")
	}
}

func TestIntroSweep(t *testing.T) {
	opts := DefaultOptions()
	opts.IntroDuration = 2 * time.Second
	s := newScreen(t, opts)
	stop := s.Start()
	defer stop()

	if !animation.Now().Equal(s.Now()) {
		t.Fatal("screen clock not installed")
	}

	s.Advance(time.Second)
	ring := s.Ring()
	if got := ring.PresentationProgress(); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("presentation at 1s = %v, want 0.5", got)
	}
	if got := ring.Progress(); math.Abs(got-0.1) > 1e-9 {
		t.Errorf("model progress at 1s = %v, want 0.1", got)
	}

	s.Advance(time.Second)
	if got := ring.PresentationProgress(); math.Abs(got-0.2) > 1e-9 {
		t.Errorf("presentation after intro = %v, want model value 0.2", got)
	}
}

func TestStopRestoresClock(t *testing.T) {
	fake := ringtest.UseFakeClock(t)
	s := newScreen(t, DefaultOptions())
	stop := s.Start()
	s.Advance(time.Hour)
	stop()

	if !animation.Now().Equal(fake.Now()) {
		t.Errorf("clock not restored: %v", animation.Now())
	}
	s.Stop()
}

func TestFrameLabelInsideRing(t *testing.T) {
	opts := DefaultOptions()
	opts.LabelColor = graphics.ColorBlack
	s := newScreen(t, opts)
	s.Advance(5 * time.Second)
	if s.LabelText() != "5" {
		t.Fatalf("label = %q, want 5", s.LabelText())
	}

	img, err := raster.Render(s.Frame(), s.Background())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	data, ok := s.Ring().ParentData().(*layout.BoxParentData)
	if !ok {
		t.Fatal("ring has no offset in the screen")
	}
	container := s.Ring().Geometry().Container.Translate(data.Offset.X, data.Offset.Y)

	var ink image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if c.R < 128 && c.G < 128 && c.B < 128 {
				ink = ink.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	if ink.Empty() {
		t.Fatal("no label pixels rendered")
	}
	bounds := image.Rect(
		int(math.Floor(container.Left)), int(math.Floor(container.Top)),
		int(math.Ceil(container.Right)), int(math.Ceil(container.Bottom)),
	)
	if !ink.In(bounds) {
		t.Errorf("label ink %v outside ring container %v", ink, bounds)
	}
}
