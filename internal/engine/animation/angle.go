package animation

import (
	gomath "math"
	"time"
)

// AngleAnimator turns a 2D rotation at constant angular speed, always
// taking the shorter way around.
type AngleAnimator struct {
	start      float32
	end        float32
	current    float32
	elapsed    float32
	duration   float32
	revsPerSec float32
}

// NewAngleAnimator returns an animator resting at Portrait (0°). The
// duration is raised to the time a half turn takes at revolutionsPerSecond,
// so the clock never cuts a turn short.
func NewAngleAnimator(duration time.Duration, revolutionsPerSecond float32) *AngleAnimator {
	d := float32(duration.Seconds())
	if revolutionsPerSecond > 0 {
		d = max(d, halfTurnSeconds(revolutionsPerSecond))
	}
	a := &AngleAnimator{
		duration:   d,
		revsPerSec: revolutionsPerSecond,
	}
	a.Reset(Portrait)
	return a
}

func (a *AngleAnimator) OnRotate(o DeviceOrientation) {
	a.start = a.current
	a.end = o.Angle()
	a.elapsed = 0
}

func (a *AngleAnimator) Reset(o DeviceOrientation) {
	a.end = o.Angle()
	a.start = a.end
	a.current = a.end
	a.elapsed = 0
}

// Update steps the angle by 360·revsPerSec·dt degrees. The angle snaps to
// the target once elapsed reaches the duration, or as soon as a step crosses
// or lands on it.
func (a *AngleAnimator) Update(dt float32) {
	dir := rotationDirection(a.current, a.end)
	if dir == 0 || dt <= 0 {
		return
	}

	a.elapsed += dt
	if a.elapsed >= a.duration {
		a.elapsed = a.duration
		a.current = a.end
		return
	}

	a.current = wrapDegrees(a.current + 360*a.revsPerSec*dt*dir)
	if rotationDirection(a.current, a.end) != dir {
		a.current = a.end
	}
}

func (a *AngleAnimator) Done() bool       { return a.current == a.end }
func (a *AngleAnimator) Elapsed() float32 { return a.elapsed }

// Duration returns the effective turn duration in seconds.
func (a *AngleAnimator) Duration() float32 { return a.duration }

// Current returns the angle in degrees, in [0, 360).
func (a *AngleAnimator) Current() float32 { return a.current }

// Target returns the angle the animator is heading to.
func (a *AngleAnimator) Target() float32 { return a.end }

// rotationDirection returns +1 (counterclockwise), -1 or 0 for the shorter
// arc from current to end. A half turn goes forward when end is ahead.
func rotationDirection(current, end float32) float32 {
	delta := end - current
	switch {
	case delta == 0:
		return 0
	case delta > 0 && delta <= 180, delta < -180:
		return 1
	default:
		return -1
	}
}

func halfTurnSeconds(revolutionsPerSecond float32) float32 {
	return 180 / (360 * revolutionsPerSecond)
}

func wrapDegrees(deg float32) float32 {
	w := float32(gomath.Mod(float64(deg), 360))
	if w < 0 {
		w += 360
	}
	if w >= 360 {
		w -= 360
	}
	return w
}
