package animation

import (
	"testing"
	"time"

	"github.com/Faultbox/hellocone/pkg/math"
)

const frame = float32(1) / 60

func TestOrientationString(t *testing.T) {
	tests := []struct {
		o    DeviceOrientation
		want string
	}{
		{Unknown, "Unknown"},
		{Portrait, "Portrait"},
		{PortraitUpsideDown, "PortraitUpsideDown"},
		{LandscapeLeft, "LandscapeLeft"},
		{LandscapeRight, "LandscapeRight"},
		{FaceUp, "FaceUp"},
		{FaceDown, "FaceDown"},
		{DeviceOrientation(42), "DeviceOrientation(42)"},
	}
	for _, tt := range tests {
		if got := tt.o.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", int(tt.o), got, tt.want)
		}
	}
}

func TestParseOrientation(t *testing.T) {
	tests := []struct {
		in   string
		want DeviceOrientation
	}{
		{"Portrait", Portrait},
		{"portrait", Portrait},
		{"upside-down", PortraitUpsideDown},
		{"PortraitUpsideDown", PortraitUpsideDown},
		{"landscape-left", LandscapeLeft},
		{"landscape_right", LandscapeRight},
		{"face up", FaceUp},
		{"FACE-DOWN", FaceDown},
		{"unknown", Unknown},
	}
	for _, tt := range tests {
		got, err := ParseOrientation(tt.in)
		if err != nil {
			t.Errorf("ParseOrientation(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseOrientation(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseOrientation("sideways"); err == nil {
		t.Error("expected error for unknown orientation")
	}
}

func TestQuatTargetTable(t *testing.T) {
	tests := []struct {
		o    DeviceOrientation
		want math.Vec3
	}{
		{Unknown, math.Vec3{X: 0, Y: 1, Z: 0}},
		{Portrait, math.Vec3{X: 0, Y: 1, Z: 0}},
		{PortraitUpsideDown, math.Vec3{X: 0, Y: -1, Z: 0}},
		{LandscapeLeft, math.Vec3{X: 1, Y: 0, Z: 0}},
		{LandscapeRight, math.Vec3{X: -1, Y: 0, Z: 0}},
		{FaceUp, math.Vec3{X: 0, Y: 0, Z: 1}},
		{FaceDown, math.Vec3{X: 0, Y: 0, Z: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.o.String(), func(t *testing.T) {
			q := QuatTarget(tt.o)
			if got := q.Rotate(math.UnitY); !got.ApproxEqual(tt.want, 1e-5) {
				t.Errorf("up rotated to %v, want %v", got, tt.want)
			}
		})
	}

	if got := QuatTarget(Portrait); got != math.QuatIdentity() {
		t.Errorf("Portrait target = %v, want identity", got)
	}
	want := math.Quat{X: 0, Y: 0, Z: 1, W: 0}
	if got := QuatTarget(PortraitUpsideDown); got != want {
		t.Errorf("PortraitUpsideDown target = %v, want %v", got, want)
	}
}

func TestAngleTargetTable(t *testing.T) {
	tests := []struct {
		o    DeviceOrientation
		want float32
	}{
		{Unknown, 0},
		{Portrait, 0},
		{FaceUp, 0},
		{FaceDown, 0},
		{LandscapeRight, 90},
		{PortraitUpsideDown, 180},
		{LandscapeLeft, 270},
	}
	for _, tt := range tests {
		if got := tt.o.Angle(); got != tt.want {
			t.Errorf("%v.Angle() = %v, want %v", tt.o, got, tt.want)
		}

		a := NewAngleAnimator(250*time.Millisecond, 1)
		a.OnRotate(tt.o)
		if a.Target() != tt.want {
			t.Errorf("%v: target %v, want %v", tt.o, a.Target(), tt.want)
		}
	}
}

func TestQuatAnimatorSnapsAtDuration(t *testing.T) {
	a := NewQuatAnimator(250 * time.Millisecond)
	if !a.Done() {
		t.Fatal("new animator should be at rest")
	}

	a.OnRotate(LandscapeLeft)
	if a.Done() {
		t.Fatal("animator should be moving after OnRotate")
	}

	a.Update(0.1)
	if a.Done() {
		t.Fatal("animator finished early")
	}
	if a.Elapsed() != 0.1 {
		t.Errorf("elapsed = %v, want 0.1", a.Elapsed())
	}
	mid := a.Current()
	want := math.QuatIdentity().Slerp(QuatTarget(LandscapeLeft), a.Elapsed()/0.25)
	if !mid.ApproxEqual(want, 1e-6) {
		t.Errorf("current = %v, want %v", mid, want)
	}

	a.Update(0.2)
	if a.Current() != QuatTarget(LandscapeLeft) {
		t.Errorf("current = %v, want exact target", a.Current())
	}
	if a.Elapsed() != 0.25 {
		t.Errorf("elapsed = %v, want clamp to 0.25", a.Elapsed())
	}
	if !a.Done() {
		t.Error("animator should be done")
	}
}

func TestQuatAnimatorIdempotentWhenDone(t *testing.T) {
	a := NewQuatAnimator(250 * time.Millisecond)
	a.OnRotate(FaceUp)
	a.Update(1)

	cur, el := a.Current(), a.Elapsed()
	for i := 0; i < 10; i++ {
		a.Update(frame)
	}
	if a.Current() != cur || a.Elapsed() != el {
		t.Errorf("state changed after terminal: %v/%v -> %v/%v", cur, el, a.Current(), a.Elapsed())
	}
}

func TestQuatAnimatorRetargetStartsFromCurrent(t *testing.T) {
	a := NewQuatAnimator(250 * time.Millisecond)
	a.OnRotate(LandscapeLeft)
	a.Update(0.125)
	mid := a.Current()

	a.OnRotate(LandscapeRight)
	if a.Elapsed() != 0 {
		t.Errorf("elapsed = %v, want 0 after retarget", a.Elapsed())
	}
	if a.Current() != mid {
		t.Errorf("retarget moved the pose: %v -> %v", mid, a.Current())
	}

	a.Update(frame)
	want := mid.Slerp(QuatTarget(LandscapeRight), frame/0.25)
	if !a.Current().ApproxEqual(want, 1e-6) {
		t.Errorf("current = %v, want %v", a.Current(), want)
	}
}

func TestQuatAnimatorSameTargetIsNoop(t *testing.T) {
	a := NewQuatAnimator(250 * time.Millisecond)
	a.OnRotate(Portrait)
	a.Update(frame)
	if a.Elapsed() != 0 {
		t.Errorf("elapsed = %v, want 0 when already at target", a.Elapsed())
	}
}

func TestQuatAnimatorReset(t *testing.T) {
	a := NewQuatAnimator(250 * time.Millisecond)
	a.OnRotate(FaceDown)
	a.Update(0.05)

	a.Reset(LandscapeRight)
	if !a.Done() || a.Current() != QuatTarget(LandscapeRight) {
		t.Errorf("Reset did not jump to target: %v", a.Current())
	}
}

func TestAngleZeroToHalfTurn(t *testing.T) {
	a := NewAngleAnimator(250*time.Millisecond, 1)
	a.OnRotate(PortraitUpsideDown)

	prev := a.Current()
	for i := 0; i < 100 && !a.Done(); i++ {
		a.Update(frame)
		cur := a.Current()
		if cur < prev {
			t.Fatalf("step %d: angle decreased %v -> %v", i, prev, cur)
		}
		if cur > 180 {
			t.Fatalf("step %d: angle %v overshot 180", i, cur)
		}
		if !a.Done() && a.Elapsed() >= a.Duration() {
			t.Fatalf("step %d: elapsed %v reached duration while still at %v", i, a.Elapsed(), cur)
		}
		prev = cur
	}

	if a.Current() != 180 {
		t.Errorf("final angle = %v, want exactly 180", a.Current())
	}
	if a.Elapsed() > a.Duration() {
		t.Errorf("elapsed = %v exceeds duration %v", a.Elapsed(), a.Duration())
	}
}

func TestAngleDurationCoversHalfTurn(t *testing.T) {
	tests := []struct {
		duration time.Duration
		rps      float32
		want     float32
	}{
		{250 * time.Millisecond, 1, 0.5},
		{250 * time.Millisecond, 2, 0.25},
		{2 * time.Second, 1, 2},
	}
	for _, tt := range tests {
		a := NewAngleAnimator(tt.duration, tt.rps)
		if a.Duration() != tt.want {
			t.Errorf("NewAngleAnimator(%v, %v).Duration() = %v, want %v", tt.duration, tt.rps, a.Duration(), tt.want)
		}
	}
}

func TestAngleSnapsAtDuration(t *testing.T) {
	t.Run("at duration", func(t *testing.T) {
		a := NewAngleAnimator(250*time.Millisecond, 1)
		a.OnRotate(PortraitUpsideDown)
		a.Update(a.Duration())
		if a.Current() != 180 || !a.Done() {
			t.Errorf("angle = %v done=%v, want 180 and done", a.Current(), a.Done())
		}
		if a.Elapsed() != a.Duration() {
			t.Errorf("elapsed = %v, want %v", a.Elapsed(), a.Duration())
		}
	})

	// A whole revolution per tick would wrap back to the start angle.
	t.Run("after duration", func(t *testing.T) {
		a := NewAngleAnimator(250*time.Millisecond, 1)
		a.OnRotate(LandscapeRight)
		for i := 0; i < 5; i++ {
			a.Update(1)
		}
		if a.Current() != 90 || !a.Done() {
			t.Errorf("angle = %v done=%v, want 90 and done", a.Current(), a.Done())
		}
		if a.Elapsed() != a.Duration() {
			t.Errorf("elapsed = %v, want clamp to %v", a.Elapsed(), a.Duration())
		}
	})

	t.Run("mid turn", func(t *testing.T) {
		a := NewAngleAnimator(250*time.Millisecond, 1)
		a.OnRotate(LandscapeRight)
		a.Update(0.1)
		a.Update(1)
		if a.Current() != 90 {
			t.Errorf("angle = %v, want 90", a.Current())
		}
	})
}

func TestAngleDirectionFromZero(t *testing.T) {
	tests := []struct {
		o       DeviceOrientation
		wantDir float32
	}{
		{LandscapeRight, 1},     // 0 -> 90
		{PortraitUpsideDown, 1}, // 0 -> 180
		{LandscapeLeft, -1},     // 0 -> 270 goes back through 360
		{FaceUp, 0},
	}
	for _, tt := range tests {
		t.Run(tt.o.String(), func(t *testing.T) {
			a := NewAngleAnimator(250*time.Millisecond, 1)
			a.OnRotate(tt.o)
			a.Update(frame)

			var want float32
			switch tt.wantDir {
			case 1:
				want = 6
			case -1:
				want = 354
			}
			if diff := a.Current() - want; diff > 1e-3 || diff < -1e-3 {
				t.Errorf("after one frame angle = %v, want %v", a.Current(), want)
			}
		})
	}
}

func TestRotationDirection(t *testing.T) {
	tests := []struct {
		current, end float32
		want         float32
	}{
		{0, 0, 0},
		{0, 90, 1},
		{0, 180, 1},  // +180 goes forward
		{180, 0, -1}, // -180 goes backward
		{0, 270, -1},
		{270, 0, 1},
		{90, 0, -1},
		{350, 10, 1},
		{10, 350, -1},
	}
	for _, tt := range tests {
		if got := rotationDirection(tt.current, tt.end); got != tt.want {
			t.Errorf("rotationDirection(%v, %v) = %v, want %v", tt.current, tt.end, got, tt.want)
		}
	}
}

func TestAngleWrapsAndSnaps(t *testing.T) {
	a := NewAngleAnimator(250*time.Millisecond, 1)
	a.Reset(LandscapeLeft)
	a.OnRotate(Portrait) // 270 -> 0 goes forward through 360

	for i := 0; i < 100 && !a.Done(); i++ {
		a.Update(frame)
		if c := a.Current(); c < 0 || c >= 360 {
			t.Fatalf("angle %v outside [0, 360)", c)
		}
		if c := a.Current(); c != 0 && c < 270 {
			t.Fatalf("angle %v went the long way", c)
		}
	}
	if a.Current() != 0 {
		t.Errorf("final angle = %v, want 0", a.Current())
	}
}

func TestAngleIdempotentWhenDone(t *testing.T) {
	a := NewAngleAnimator(250*time.Millisecond, 1)
	a.OnRotate(LandscapeRight)
	for i := 0; i < 60; i++ {
		a.Update(frame)
	}
	if a.Current() != 90 {
		t.Fatalf("angle = %v, want 90", a.Current())
	}
	el := a.Elapsed()
	a.Update(frame)
	if a.Current() != 90 || a.Elapsed() != el {
		t.Errorf("state changed after terminal")
	}
}

func TestWrapDegrees(t *testing.T) {
	tests := []struct{ in, want float32 }{
		{0, 0},
		{360, 0},
		{365, 5},
		{-6, 354},
		{-720, 0},
	}
	for _, tt := range tests {
		if got := wrapDegrees(tt.in); got != tt.want {
			t.Errorf("wrapDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

var (
	_ Animator = (*QuatAnimator)(nil)
	_ Animator = (*AngleAnimator)(nil)
)
