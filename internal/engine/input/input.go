// Package input translates SDL2 events into renderer host events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/hellocone/internal/engine/animation"
	"github.com/Faultbox/hellocone/pkg/math"
)

// EventType identifies what the host should do with an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventRotate
	EventFingerDown
	EventFingerUp
	EventFingerMove
	EventCapture
)

// Event represents a processed input event.
type Event struct {
	Type        EventType
	Orientation animation.DeviceOrientation
	// Pos is the touch location in window coordinates. For EventFingerMove,
	// From is where the finger was before the motion.
	Pos    math.Vec2
	From   math.Vec2
	Width  int
	Height int
}

// orientationKeys lets a keyboard stand in for a device that can be turned.
var orientationKeys = map[sdl.Scancode]animation.DeviceOrientation{
	sdl.SCANCODE_UP:       animation.Portrait,
	sdl.SCANCODE_DOWN:     animation.PortraitUpsideDown,
	sdl.SCANCODE_LEFT:     animation.LandscapeLeft,
	sdl.SCANCODE_RIGHT:    animation.LandscapeRight,
	sdl.SCANCODE_PAGEUP:   animation.FaceUp,
	sdl.SCANCODE_PAGEDOWN: animation.FaceDown,
}

// Input handles all input processing.
type Input struct {
	events []Event
	width  int
	height int
}

// New creates a new input handler for a window of the given size.
func New(width, height int) *Input {
	return &Input{
		events: make([]Event, 0, 16),
		width:  width,
		height: height,
	}
}

// Update polls SDL events and converts them to host events.
// Returns true if the app should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		e, ok := i.Translate(event)
		if !ok {
			continue
		}
		i.events = append(i.events, e)
		if e.Type == EventQuit {
			quit = true
		}
	}

	return quit
}

// Translate converts one SDL event. ok is false for events the host ignores.
func (i *Input) Translate(event sdl.Event) (ev Event, ok bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			i.width, i.height = int(e.Data1), int(e.Data2)
			return Event{Type: EventWindowResize, Width: i.width, Height: i.height}, true
		}

	case *sdl.DisplayEvent:
		if e.Event == sdl.DISPLAYEVENT_ORIENTATION {
			return Event{Type: EventRotate, Orientation: displayOrientation(int(e.Data1))}, true
		}

	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
			return Event{}, false
		}
		switch e.Keysym.Scancode {
		case sdl.SCANCODE_ESCAPE:
			return Event{Type: EventQuit}, true
		case sdl.SCANCODE_F12:
			return Event{Type: EventCapture}, true
		}
		if o, found := orientationKeys[e.Keysym.Scancode]; found {
			return Event{Type: EventRotate, Orientation: o}, true
		}

	case *sdl.MouseButtonEvent:
		if e.Button != sdl.BUTTON_LEFT {
			return Event{}, false
		}
		pos := math.Vec2{X: float32(e.X), Y: float32(e.Y)}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			return Event{Type: EventFingerDown, Pos: pos}, true
		}
		return Event{Type: EventFingerUp, Pos: pos}, true

	case *sdl.MouseMotionEvent:
		if e.State&sdl.ButtonLMask() == 0 {
			return Event{}, false
		}
		return Event{
			Type: EventFingerMove,
			Pos:  math.Vec2{X: float32(e.X), Y: float32(e.Y)},
			From: math.Vec2{X: float32(e.X - e.XRel), Y: float32(e.Y - e.YRel)},
		}, true

	case *sdl.TouchFingerEvent:
		// Finger coordinates are normalized to [0, 1]
		pos := i.toWindow(e.X, e.Y)
		switch e.Type {
		case sdl.FINGERDOWN:
			return Event{Type: EventFingerDown, Pos: pos}, true
		case sdl.FINGERUP:
			return Event{Type: EventFingerUp, Pos: pos}, true
		case sdl.FINGERMOTION:
			return Event{Type: EventFingerMove, Pos: pos, From: i.toWindow(e.X-e.DX, e.Y-e.DY)}, true
		}
	}

	return Event{}, false
}

func (i *Input) toWindow(x, y float32) math.Vec2 {
	return math.Vec2{X: x * float32(i.width), Y: y * float32(i.height)}
}

// displayOrientation maps SDL_DisplayOrientation to a device orientation.
func displayOrientation(o int) animation.DeviceOrientation {
	switch o {
	case int(sdl.ORIENTATION_PORTRAIT):
		return animation.Portrait
	case int(sdl.ORIENTATION_PORTRAIT_FLIPPED):
		return animation.PortraitUpsideDown
	case int(sdl.ORIENTATION_LANDSCAPE):
		return animation.LandscapeLeft
	case int(sdl.ORIENTATION_LANDSCAPE_FLIPPED):
		return animation.LandscapeRight
	default:
		return animation.Unknown
	}
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}
