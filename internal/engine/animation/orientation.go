// Package animation drives the model's orientation toward the device's
// physical orientation.
package animation

import (
	"fmt"
	"strings"

	"github.com/Faultbox/hellocone/pkg/math"
)

// DeviceOrientation is the physical orientation reported by the host.
type DeviceOrientation int

const (
	Unknown DeviceOrientation = iota
	Portrait
	PortraitUpsideDown
	LandscapeLeft
	LandscapeRight
	FaceUp
	FaceDown
)

var orientationNames = [...]string{
	Unknown:            "Unknown",
	Portrait:           "Portrait",
	PortraitUpsideDown: "PortraitUpsideDown",
	LandscapeLeft:      "LandscapeLeft",
	LandscapeRight:     "LandscapeRight",
	FaceUp:             "FaceUp",
	FaceDown:           "FaceDown",
}

func (o DeviceOrientation) String() string {
	if o < 0 || int(o) >= len(orientationNames) {
		return fmt.Sprintf("DeviceOrientation(%d)", int(o))
	}
	return orientationNames[o]
}

// ParseOrientation accepts the String form as well as kebab/snake case
// ("landscape-left", "face_up") and "upside-down".
func ParseOrientation(s string) (DeviceOrientation, error) {
	key := strings.ToLower(s)
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	switch key {
	case "unknown":
		return Unknown, nil
	case "portrait":
		return Portrait, nil
	case "portraitupsidedown", "upsidedown":
		return PortraitUpsideDown, nil
	case "landscapeleft":
		return LandscapeLeft, nil
	case "landscaperight":
		return LandscapeRight, nil
	case "faceup":
		return FaceUp, nil
	case "facedown":
		return FaceDown, nil
	}
	return Unknown, fmt.Errorf("unknown orientation %q", s)
}

// Up returns the direction the model's up axis should point in.
func (o DeviceOrientation) Up() math.Vec3 {
	switch o {
	case PortraitUpsideDown:
		return math.Vec3{X: 0, Y: -1, Z: 0}
	case LandscapeLeft:
		return math.Vec3{X: 1, Y: 0, Z: 0}
	case LandscapeRight:
		return math.Vec3{X: -1, Y: 0, Z: 0}
	case FaceUp:
		return math.Vec3{X: 0, Y: 0, Z: 1}
	case FaceDown:
		return math.Vec3{X: 0, Y: 0, Z: -1}
	default:
		return math.UnitY
	}
}

// Angle returns the in-plane rotation in degrees for the 2D model.
// Flat orientations have no in-plane component and map to 0.
func (o DeviceOrientation) Angle() float32 {
	switch o {
	case LandscapeRight:
		return 90
	case PortraitUpsideDown:
		return 180
	case LandscapeLeft:
		return 270
	default:
		return 0
	}
}

// Animator eases the model from its current orientation toward a target.
type Animator interface {
	// OnRotate starts a new transition from the current pose toward o.
	OnRotate(o DeviceOrientation)
	// Reset jumps straight to o with no transition.
	Reset(o DeviceOrientation)
	// Update advances the transition by dt seconds.
	Update(dt float32)
	// Done reports whether the current pose equals the target.
	Done() bool
	// Elapsed returns seconds spent in the current transition, capped at the duration.
	Elapsed() float32
}
