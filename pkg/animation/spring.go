package animation

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	// DefaultSpringFrequency is the angular frequency used by the "spring" curve.
	DefaultSpringFrequency = 6.0
	// DefaultSpringDamping is the damping ratio used by the "spring" curve.
	// Values below 1 overshoot before settling.
	DefaultSpringDamping = 0.5

	springFPS        = 120
	springMaxSamples = springFPS * 10
	springSettle     = 1e-3
)

// SpringCurve returns an easing curve that follows a damped spring moving
// from 0 to 1. The spring is simulated once with harmonica; the settle time
// is stretched over the animation's duration so the curve always ends at
// exactly 1.
func SpringCurve(frequency, damping float64) func(float64) float64 {
	spring := harmonica.NewSpring(harmonica.FPS(springFPS), frequency, damping)

	samples := []float64{0}
	pos, vel := 0.0, 0.0
	for len(samples) < springMaxSamples {
		pos, vel = spring.Update(pos, vel, 1)
		samples = append(samples, pos)
		if math.Abs(pos-1) < springSettle && math.Abs(vel) < springSettle {
			break
		}
	}
	samples[len(samples)-1] = 1

	last := float64(len(samples) - 1)
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		x := t * last
		i := int(x)
		frac := x - float64(i)
		return samples[i] + (samples[i+1]-samples[i])*frac
	}
}
