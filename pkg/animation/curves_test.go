package animation_test

import (
	"math"
	"testing"

	"github.com/go-drift/progressring/pkg/animation"
)

func TestCurvesHitEndpoints(t *testing.T) {
	curves := map[string]func(float64) float64{
		"linear":      animation.LinearCurve,
		"ease":        animation.Ease,
		"ease-in":     animation.EaseIn,
		"ease-out":    animation.EaseOut,
		"ease-in-out": animation.EaseInOut,
		"spring":      animation.SpringCurve(animation.DefaultSpringFrequency, animation.DefaultSpringDamping),
	}
	for name, curve := range curves {
		if got := curve(0); got != 0 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := curve(1); got != 1 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestSpringCurveOvershoots(t *testing.T) {
	curve := animation.SpringCurve(animation.DefaultSpringFrequency, animation.DefaultSpringDamping)
	peak := 0.0
	for i := 0; i <= 200; i++ {
		peak = math.Max(peak, curve(float64(i)/200))
	}
	if peak <= 1 {
		t.Errorf("underdamped spring peak = %v, want > 1", peak)
	}
}

func TestSpringCurveCriticallyDampedIsMonotonic(t *testing.T) {
	curve := animation.SpringCurve(animation.DefaultSpringFrequency, 1)
	prev := 0.0
	for i := 1; i <= 200; i++ {
		v := curve(float64(i) / 200)
		if v < prev-1e-9 {
			t.Fatalf("curve decreased at t=%v: %v < %v", float64(i)/200, v, prev)
		}
		if v > 1+1e-9 {
			t.Fatalf("critically damped spring overshot: %v", v)
		}
		prev = v
	}
}

func TestCurveByNameUnknown(t *testing.T) {
	if _, ok := animation.CurveByName("bounce"); ok {
		t.Error("CurveByName(bounce) should fail")
	}
	for _, name := range []string{"", "linear", "ease", "ease-in", "ease-out", "ease-in-out", "spring"} {
		if c, ok := animation.CurveByName(name); !ok || c == nil {
			t.Errorf("CurveByName(%q) = nil, %v", name, ok)
		}
	}
}
