package animation

import (
	"time"

	"github.com/Faultbox/hellocone/pkg/math"
)

// QuatTarget returns the rotation carrying the reference up axis onto o.Up().
// PortraitUpsideDown is a half turn about +Z.
func QuatTarget(o DeviceOrientation) math.Quat {
	return math.QuatFromVectors(math.UnitY, o.Up())
}

// QuatAnimator slerps a 3D rotation over a fixed duration.
type QuatAnimator struct {
	start    math.Quat
	end      math.Quat
	current  math.Quat
	elapsed  float32
	duration float32
}

// NewQuatAnimator returns an animator resting at Portrait.
func NewQuatAnimator(duration time.Duration) *QuatAnimator {
	a := &QuatAnimator{duration: float32(duration.Seconds())}
	a.Reset(Portrait)
	return a
}

func (a *QuatAnimator) OnRotate(o DeviceOrientation) {
	a.start = a.current
	a.end = QuatTarget(o)
	a.elapsed = 0
}

func (a *QuatAnimator) Reset(o DeviceOrientation) {
	a.end = QuatTarget(o)
	a.start = a.end
	a.current = a.end
	a.elapsed = 0
}

func (a *QuatAnimator) Update(dt float32) {
	if a.current == a.end || dt <= 0 {
		return
	}

	a.elapsed += dt
	if a.elapsed >= a.duration {
		a.elapsed = a.duration
		a.current = a.end
		return
	}

	a.current = a.start.Slerp(a.end, a.elapsed/a.duration)
}

func (a *QuatAnimator) Done() bool       { return a.current == a.end }
func (a *QuatAnimator) Elapsed() float32 { return a.elapsed }

// Current returns the rotation to apply this frame.
func (a *QuatAnimator) Current() math.Quat { return a.current }

// Target returns the rotation the animator is heading to.
func (a *QuatAnimator) Target() math.Quat { return a.end }
