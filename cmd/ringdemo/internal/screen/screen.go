// Package screen implements the ringdemo countdown screen: a progress ring
// filled by a repeating timer, with the elapsed whole seconds shown in its
// center.
package screen

import (
	"strconv"
	"time"

	"github.com/go-drift/progressring/pkg/animation"
	"github.com/go-drift/progressring/pkg/errors"
	"github.com/go-drift/progressring/pkg/graphics"
	"github.com/go-drift/progressring/pkg/layout"
	"github.com/go-drift/progressring/pkg/progressring"
	"github.com/go-drift/progressring/pkg/widgets"
)

// Options configures a DemoScreen.
type Options struct {
	Width, Height int
	Background    graphics.Color

	RingSize float64
	Style    progressring.Style

	LabelColor graphics.Color
	LabelSize  float64

	// Interval is the timer period. Each fire adds Interval to the elapsed
	// count.
	Interval time.Duration
	// Max is the count at which a cycle ends.
	Max time.Duration
	// RestartDelay is the pause between the end of a cycle and the next.
	RestartDelay time.Duration

	// IntroDuration, when positive, plays a one-off 0 to 1 sweep of the
	// progress ring on Start.
	IntroDuration time.Duration
	IntroCurve    func(float64) float64
}

// DefaultOptions returns the stock demo: a 200 point ring on a white
// screen counting to ten seconds in 50ms steps.
func DefaultOptions() Options {
	return Options{
		Width:        320,
		Height:       320,
		Background:   graphics.ColorWhite,
		RingSize:     200,
		Style:        progressring.DefaultStyle(),
		LabelColor:   graphics.ColorLightGray,
		LabelSize:    28,
		Interval:     50 * time.Millisecond,
		Max:          10 * time.Second,
		RestartDelay: time.Second,
	}
}

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// DemoScreen owns the render tree of the demo and its timer state. Time only
// moves when Advance is called.
type DemoScreen struct {
	opts  Options
	owner *layout.PipelineOwner
	root  *widgets.Center
	ring  *progressring.RingView
	label *widgets.Label

	elapsed   time.Duration // screen time
	count     time.Duration // timer count within the current cycle
	nextFire  time.Duration // screen time of the next timer fire or restart
	running   bool          // false while waiting for the restart delay
	cycle     int
	restore   func()
	recorder  graphics.PictureRecorder
	lastFrame *graphics.DisplayList
}

// New builds the screen and starts the first timer cycle.
func New(opts Options) (*DemoScreen, error) {
	switch {
	case opts.Width <= 0 || opts.Height <= 0:
		return nil, errors.New("screen.New", errors.KindConfig, "screen size %dx%d must be positive", opts.Width, opts.Height)
	case opts.RingSize <= 0:
		return nil, errors.New("screen.New", errors.KindConfig, "ring size %v must be positive", opts.RingSize)
	case opts.Interval <= 0:
		return nil, errors.New("screen.New", errors.KindConfig, "timer interval %v must be positive", opts.Interval)
	case opts.Max < opts.Interval:
		return nil, errors.New("screen.New", errors.KindConfig, "timer max %v is shorter than the interval %v", opts.Max, opts.Interval)
	case opts.RestartDelay < 0:
		return nil, errors.New("screen.New", errors.KindConfig, "restart delay %v is negative", opts.RestartDelay)
	}

	ring, err := progressring.New(opts.Style)
	if err != nil {
		return nil, err
	}
	s := &DemoScreen{
		opts:  opts,
		owner: &layout.PipelineOwner{},
		ring:  ring,
		label: widgets.NewLabel("", opts.LabelSize, opts.LabelColor),
	}
	ring.PlaceCentered(s.label)
	s.root = widgets.NewCenter(ring, graphics.Size{Width: opts.RingSize, Height: opts.RingSize}, opts.Background)
	s.root.SetOwner(s.owner)
	s.startCycle()
	return s, nil
}

// Now reports the screen clock. A DemoScreen is an animation.Clock.
func (s *DemoScreen) Now() time.Time {
	return epoch.Add(s.elapsed)
}

// Start installs the screen as the animation clock and plays the intro sweep
// if one is configured. The returned function restores the previous clock.
func (s *DemoScreen) Start() (stop func()) {
	prev := animation.SetClock(s)
	s.restore = func() { animation.SetClock(prev) }
	if s.opts.IntroDuration > 0 {
		s.ring.Animate(progressring.AnimationSpec{
			From:     0,
			To:       1,
			Duration: s.opts.IntroDuration,
			FillMode: progressring.FillRemoved,
			Curve:    s.opts.IntroCurve,
		})
	}
	return s.Stop
}

// Stop restores the clock that was active before Start.
func (s *DemoScreen) Stop() {
	if s.restore != nil {
		s.restore()
		s.restore = nil
	}
}

// Advance moves screen time forward by dt, firing every timer event that
// falls inside the step and then stepping running animations.
func (s *DemoScreen) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	target := s.elapsed + dt
	for s.nextFire <= target {
		s.elapsed = s.nextFire
		if s.running {
			s.fire()
		} else {
			s.startCycle()
		}
	}
	s.elapsed = target
	animation.StepTickers()
}

func (s *DemoScreen) startCycle() {
	s.cycle++
	s.count = 0
	s.running = true
	s.nextFire = s.elapsed + s.opts.Interval
	s.label.SetText("0")
}

func (s *DemoScreen) fire() {
	s.count += s.opts.Interval
	s.label.SetText(strconv.Itoa(int(s.count / time.Second)))
	s.ring.SetProgress(float64(s.count) / float64(s.opts.Max))
	if s.count >= s.opts.Max {
		s.running = false
		s.nextFire = s.elapsed + s.opts.RestartDelay
		return
	}
	s.nextFire = s.elapsed + s.opts.Interval
}

// Frame lays out the tree if needed and records it into a display list.
// Clean frames reuse the previous recording.
func (s *DemoScreen) Frame() *graphics.DisplayList {
	size := s.Size()
	s.owner.FlushLayoutForRoot(s.root, layout.Tight(size))
	if s.lastFrame != nil && !s.owner.NeedsPaint() && !s.root.NeedsPaint() {
		return s.lastFrame
	}
	canvas := s.recorder.BeginRecording(size)
	s.root.Paint(&layout.PaintContext{Canvas: canvas})
	s.owner.FlushPaint()
	clearPaint(s.root)
	s.lastFrame = s.recorder.EndRecording()
	return s.lastFrame
}

func clearPaint(obj layout.RenderObject) {
	if c, ok := obj.(interface{ ClearNeedsPaint() }); ok {
		c.ClearNeedsPaint()
	}
	if v, ok := obj.(layout.ChildVisitor); ok {
		v.VisitChildren(clearPaint)
	}
}

// Size is the screen size in pixels.
func (s *DemoScreen) Size() graphics.Size {
	return graphics.Size{Width: float64(s.opts.Width), Height: float64(s.opts.Height)}
}

// Background is the screen fill color.
func (s *DemoScreen) Background() graphics.Color {
	return s.opts.Background
}

// Elapsed is the total screen time.
func (s *DemoScreen) Elapsed() time.Duration {
	return s.elapsed
}

// Count is the timer count within the current cycle.
func (s *DemoScreen) Count() time.Duration {
	return s.count
}

// Running reports whether the timer is counting, as opposed to waiting out
// the restart delay.
func (s *DemoScreen) Running() bool {
	return s.running
}

// Cycle is the 1-based number of the current timer cycle.
func (s *DemoScreen) Cycle() int {
	return s.cycle
}

// LabelText is the text currently shown in the ring.
func (s *DemoScreen) LabelText() string {
	return s.label.Text()
}

// Ring exposes the progress ring.
func (s *DemoScreen) Ring() *progressring.RingView {
	return s.ring
}
